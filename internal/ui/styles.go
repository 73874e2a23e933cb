package ui

import (
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, focused borders
	ColorHighlight = "205" // Magenta - selected items, keys
	ColorDanger    = "196" // Red - error toasts
	ColorSuccess   = "42"  // Green - success toasts
	ColorMuted     = "241" // Gray - hints, placeholders
	ColorText      = "252" // Light gray - normal text
	ColorDim       = "238" // Dark gray - unfocused borders
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title   lipgloss.Style // Bold accent - header and modal titles
	Muted   lipgloss.Style
	Normal  lipgloss.Style
	Hint    lipgloss.Style
	Empty   lipgloss.Style // Empty state text (muted, italic)
	Section lipgloss.Style

	// Field frames around the title input, content editor and list
	Field        lipgloss.Style
	FieldFocused lipgloss.Style

	// Window chrome above the content editor
	Chrome     lipgloss.Style
	ChromeDots lipgloss.Style

	// Action controls
	Button      lipgloss.Style
	ButtonReset lipgloss.Style
	Key         lipgloss.Style

	// Modal box
	Box lipgloss.Style

	// Toasts
	ToastSuccess lipgloss.Style
	ToastError   lipgloss.Style
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Section: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Field: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1),
	FieldFocused: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1),
	Chrome: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Padding(0, 1),
	ChromeDots: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Button: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color(ColorAccent)).
		Padding(0, 2),
	ButtonReset: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)).
		Background(lipgloss.Color(ColorDim)).
		Padding(0, 2),
	Key: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	ToastSuccess: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorSuccess)).
		Foreground(lipgloss.Color(ColorSuccess)).
		Padding(0, 1),
	ToastError: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDanger)).
		Foreground(lipgloss.Color(ColorDanger)).
		Padding(0, 1),
}

// NewCompactListDelegate returns a delegate with zero spacing and shared styles.
func NewCompactListDelegate() list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)
	d.ShowDescription = true
	d.Styles.SelectedTitle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	d.Styles.SelectedDesc = Styles.Muted
	d.Styles.NormalTitle = Styles.Normal
	d.Styles.NormalDesc = Styles.Muted
	return d
}
