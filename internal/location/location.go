// Package location models the page location whose pasteId query parameter
// selects edit mode. The active identifier is owned by the UI; a Location is
// only where that identifier is serialized to and read from.
package location

import (
	"net/url"

	"github.com/pkg/errors"
)

// ParamPasteID is the query parameter holding the active paste identifier.
const ParamPasteID = "pasteId"

// Location is an immutable page URL.
type Location struct {
	u url.URL
}

// Parse accepts a full URL ("http://host/?pasteId=7"), a path with query
// ("/?pasteId=7"), a bare query ("?pasteId=7"), or "" for the root page.
func Parse(raw string) (Location, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return Location{}, errors.Wrapf(err, "parse location %q", raw)
	}
	if u.Path == "" && u.Opaque == "" {
		u.Path = "/"
	}
	return Location{u: *u}, nil
}

// Root returns the root page location with no query.
func Root() Location {
	return Location{u: url.URL{Path: "/"}}
}

// PasteID returns the pasteId parameter, or "" when absent.
func (l Location) PasteID() string {
	return l.u.Query().Get(ParamPasteID)
}

// WithPasteID returns a copy with pasteId set to id. An empty id removes the
// parameter. Other query parameters are preserved.
func (l Location) WithPasteID(id string) Location {
	q := l.u.Query()
	if id == "" {
		q.Del(ParamPasteID)
	} else {
		q.Set(ParamPasteID, id)
	}
	u := l.u
	u.RawQuery = q.Encode()
	if u.Path == "" && u.Opaque == "" {
		u.Path = "/"
	}
	return Location{u: u}
}

// String serializes the location.
func (l Location) String() string {
	return l.u.String()
}
