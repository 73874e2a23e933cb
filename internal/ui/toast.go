package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToastKind selects the toast style.
type ToastKind int

const (
	ToastSuccess ToastKind = iota
	ToastError
)

// ToastPosition is the screen edge a toast is anchored to.
type ToastPosition int

const (
	ToastTopCenter ToastPosition = iota
	ToastTopRight
)

// Toast is a transient notification.
type Toast struct {
	ID       int
	Kind     ToastKind
	Message  string
	Position ToastPosition
}

// MaxToasts is how many toasts are shown at once. Older ones are dropped.
const MaxToasts = 3

// ToastStack holds the visible toasts, oldest first.
type ToastStack struct {
	Items []Toast
	// TTL is how long a toast stays up. Zero keeps toasts until dismissed
	// with Esc or pushed out by newer ones.
	TTL    time.Duration
	nextID int
}

// Push adds a toast and returns the command that expires it, or nil when TTL
// is zero.
func (s *ToastStack) Push(kind ToastKind, message string, pos ToastPosition) tea.Cmd {
	s.nextID++
	id := s.nextID
	s.Items = append(s.Items, Toast{ID: id, Kind: kind, Message: message, Position: pos})
	if len(s.Items) > MaxToasts {
		s.Items = append(s.Items[:0], s.Items[len(s.Items)-MaxToasts:]...)
	}
	if s.TTL <= 0 {
		return nil
	}
	return tea.Tick(s.TTL, func(time.Time) tea.Msg {
		return toastExpiredMsg{ID: id}
	})
}

// Remove drops the toast with id. Unknown ids are ignored.
func (s *ToastStack) Remove(id int) {
	for i, t := range s.Items {
		if t.ID == id {
			s.Items = append(s.Items[:i], s.Items[i+1:]...)
			return
		}
	}
}

// Clear dismisses every toast.
func (s *ToastStack) Clear() {
	s.Items = nil
}

// Len returns the number of visible toasts.
func (s *ToastStack) Len() int {
	return len(s.Items)
}

// View renders each toast on its own row, placed horizontally by position
// within width.
func (s *ToastStack) View(width int) string {
	if len(s.Items) == 0 {
		return ""
	}
	rows := make([]string, 0, len(s.Items))
	for _, t := range s.Items {
		style := Styles.ToastSuccess
		if t.Kind == ToastError {
			style = Styles.ToastError
		}
		box := style.Render(t.Message)
		align := lipgloss.Center
		if t.Position == ToastTopRight {
			align = lipgloss.Right
		}
		if width > 0 {
			box = lipgloss.PlaceHorizontal(width, align, box)
		}
		rows = append(rows, box)
	}
	return strings.Join(rows, "\n")
}
