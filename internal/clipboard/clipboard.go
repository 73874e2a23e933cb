// Package clipboard writes text to the system clipboard.
//
// The native clipboard (xclip/xsel/wl-copy, pbcopy, Windows API) is tried
// first. When it is unavailable, for example over SSH, the text is sent to the
// terminal as an OSC 52 escape sequence, which most modern terminals forward to
// the local clipboard.
package clipboard

import (
	"io"

	atotto "github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/pkg/errors"
)

// System is a best-effort clipboard writer.
type System struct {
	// Terminal receives the OSC 52 fallback sequence. Nil disables the fallback.
	Terminal io.Writer

	native      func(string) error
	unsupported bool
}

// NewSystem returns a writer that falls back to OSC 52 on terminal.
func NewSystem(terminal io.Writer) *System {
	return &System{
		Terminal:    terminal,
		native:      atotto.WriteAll,
		unsupported: atotto.Unsupported,
	}
}

// WriteAll copies text. It returns an error only when neither the native
// clipboard nor the terminal fallback accepted the text.
func (s *System) WriteAll(text string) error {
	var nativeErr error
	if s.unsupported {
		nativeErr = errors.New("no native clipboard utility found")
	} else if nativeErr = s.native(text); nativeErr == nil {
		return nil
	}

	if s.Terminal == nil {
		return errors.Wrap(nativeErr, "write clipboard")
	}
	if _, err := osc52.New(text).WriteTo(s.Terminal); err != nil {
		return errors.Wrapf(err, "write clipboard via OSC 52 (native: %v)", nativeErr)
	}
	return nil
}
