package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	h.Styles.ShortSeparator = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted))
	return h
}

// RenderKeybindHelp produces the transient hint bar shown after the leader
// key, filtered by mode. With a deeper buffer (e.g. "C-x p") it shows the
// next-level hints.
func RenderKeybindHelp(keyHandler *KeyHandler, mode EditMode) string {
	if keyHandler == nil || !keyHandler.LeaderWaiting {
		return ""
	}
	bindings := NewKeyMap(keyHandler.Registry, keyHandler, mode).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	helpContent := newHelpModel().ShortHelpView(bindings)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)

	prefix := strings.Join(keyHandler.Buffer, " ")
	if prefix == "" {
		prefix = keyHandler.LeaderSeq
	}
	return boxStyle.Render(Styles.Muted.Render(prefix) + " " + helpContent)
}

// RenderShortcutFooter lists the single-key shortcuts offered in mode.
func RenderShortcutFooter(registry *KeybindRegistry, mode EditMode, width int) string {
	bindings := NewKeyMap(registry, nil, mode).ShortHelp()
	if len(bindings) == 0 {
		return ""
	}
	h := newHelpModel()
	h.Width = width
	return h.ShortHelpView(bindings)
}
