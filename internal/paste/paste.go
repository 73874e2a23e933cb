// Package paste defines the Paste entity exchanged with the backend and the
// payload sent when saving one.
package paste

import (
	"strings"
	"time"

	"pastepad/internal/jsonutil"
)

// TimestampLayout is ISO 8601 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// ID is a backend-assigned paste identifier. Backends return it either as a
// JSON string or a number; both decode to the same textual form.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	s, err := jsonutil.ScalarString(data)
	if err != nil {
		return err
	}
	*id = ID(s)
	return nil
}

// String returns the identifier as used in request paths.
func (id ID) String() string { return string(id) }

// Paste is a titled block of text persisted by the backend.
type Paste struct {
	ID        ID     `json:"id,omitempty"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// DisplayTitle returns the title, or a placeholder for untitled pastes.
func (p Paste) DisplayTitle() string {
	if t := strings.TrimSpace(p.Title); t != "" {
		return t
	}
	return "(untitled)"
}

// Draft is the body of a create or update request.
type Draft struct {
	Title     string `json:"title"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt"`
}

// NewDraft builds a save payload stamped with now. The timestamp is
// regenerated on every save, including updates.
func NewDraft(title, content string, now time.Time) Draft {
	return Draft{
		Title:     title,
		Content:   content,
		CreatedAt: FormatTimestamp(now),
	}
}

// FormatTimestamp renders t in TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
