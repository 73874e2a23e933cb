package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// OpenPasteModal asks for a paste identifier to open, standing in for
// following a ?pasteId= link.
type OpenPasteModal struct {
	input textinput.Model
}

// Ensure OpenPasteModal implements View.
var _ View = (*OpenPasteModal)(nil)

// NewOpenPasteModal creates the modal with its input focused.
func NewOpenPasteModal() *OpenPasteModal {
	ti := textinput.New()
	ti.Placeholder = "paste id"
	ti.Width = 32
	ti.Cursor.SetMode(cursor.CursorStatic)
	ti.Focus()
	return &OpenPasteModal{input: ti}
}

// Init implements View.
func (m *OpenPasteModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *OpenPasteModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m, msgCmd(DismissModalMsg{})
		case "enter":
			id := strings.TrimSpace(m.input.Value())
			if id == "" {
				return m, nil
			}
			return m, msgCmd(NavigateMsg{ID: id})
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements View.
func (m *OpenPasteModal) View() string {
	content := Styles.Title.Render("Open paste") + "\n\n"
	content += m.input.View() + "\n\n"
	content += Styles.Hint.Render("Enter: open  Esc: cancel")
	return Styles.Box.Render(content)
}
