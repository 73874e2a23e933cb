package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a screen region with its own model, update and render, in Bubble
// Tea's style. Update returns the View so implementations can swap themselves.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
