package ui

import (
	"context"

	"pastepad/internal/paste"

	tea "github.com/charmbracelet/bubbletea"
)

// loadPastesCmd fetches the full paste list.
func loadPastesCmd(api PasteAPI) tea.Cmd {
	return func() tea.Msg {
		pastes, err := api.List(context.Background())
		return PastesLoadedMsg{Pastes: pastes, Err: err}
	}
}

// loadPasteCmd fetches one paste. The result is tagged with id and seq so the
// handler can tell whether it is still wanted.
func loadPasteCmd(api PasteAPI, id string, seq uint64) tea.Cmd {
	return func() tea.Msg {
		p, err := api.Get(context.Background(), id)
		return PasteLoadedMsg{ID: id, Seq: seq, Paste: p, Err: err}
	}
}

// savePasteCmd issues exactly one request: PUT when id is set, POST otherwise.
func savePasteCmd(api PasteAPI, id string, d paste.Draft) tea.Cmd {
	return func() tea.Msg {
		if id != "" {
			p, err := api.Update(context.Background(), id, d)
			return PasteSavedMsg{Updated: true, Paste: p, Err: err}
		}
		p, err := api.Create(context.Background(), d)
		return PasteSavedMsg{Updated: false, Paste: p, Err: err}
	}
}

// copyCmd writes text to the clipboard.
func copyCmd(cb Clipboard, text string) tea.Cmd {
	return func() tea.Msg {
		return ClipboardWrittenMsg{Err: cb.WriteAll(text)}
	}
}

// msgCmd wraps a message in a command, for keybind registration.
func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
