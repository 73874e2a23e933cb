package ui

import (
	"strings"

	"pastepad/internal/logx"
	"pastepad/internal/paste"
	"pastepad/internal/pasteapi"

	tea "github.com/charmbracelet/bubbletea"
)

// Toast messages.
const (
	MsgPasteCreated = "Paste created successfully!"
	MsgPasteUpdated = "Paste updated successfully!"
	MsgSaveFailed   = "Failed to save paste."
	MsgCopied       = "Copied to Clipboard"
)

// handlePastesLoaded replaces the list. A failed fetch keeps the previous
// list and is only logged.
func (a *appModelAdapter) handlePastesLoaded(msg PastesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logx.Error().Err(msg.Err).Msg("load paste list")
		return a, nil
	}
	a.List.SetPastes(msg.Pastes)
	if a.ActiveID != "" {
		a.List.SelectID(a.ActiveID)
	}
	logx.Debug().Int("count", len(msg.Pastes)).Msg("paste list loaded")
	return a, nil
}

// handlePasteLoaded fills the editor from a fetched paste, unless the active
// identifier has moved on since the request was issued.
func (a *appModelAdapter) handlePasteLoaded(msg PasteLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.Seq != a.loadSeq || msg.ID != a.ActiveID {
		logx.Debug().
			Str("id", msg.ID).
			Uint64("seq", msg.Seq).
			Uint64("current_seq", a.loadSeq).
			Msg("discarding stale paste load")
		return a, nil
	}
	if pasteapi.IsNotFound(msg.Err) {
		logx.Warn().Str("id", msg.ID).Msg("paste not found")
		return a, nil
	}
	if msg.Err != nil {
		logx.Error().Err(msg.Err).Str("id", msg.ID).Msg("load paste")
		return a, nil
	}
	a.Editor.SetTitle(msg.Paste.Title)
	a.Editor.SetContent(msg.Paste.Content)
	return a, nil
}

// handleNavigate makes msg.ID the active identifier and loads it. Navigating
// to the identifier that is already active does nothing.
func (a *appModelAdapter) handleNavigate(msg NavigateMsg) (tea.Model, tea.Cmd) {
	if a.Overlays.Len() > 0 {
		a.Overlays.Pop()
	}
	id := strings.TrimSpace(msg.ID)
	if id == "" || id == a.ActiveID {
		return a, nil
	}
	a.setActiveID(id)
	a.List.SelectID(id)
	a.Focus.SetFocus(FocusTitle)
	logx.Info().Str("id", id).Str("location", a.Location.String()).Msg("open paste")
	return a, loadPasteCmd(a.API, id, a.loadSeq)
}

// handleSave sends the editor contents: PUT when an identifier is active,
// POST otherwise.
func (a *appModelAdapter) handleSave() (tea.Model, tea.Cmd) {
	d := paste.NewDraft(a.Editor.Title(), a.Editor.Content(), a.now())
	logx.Info().
		Str("id", a.ActiveID).
		Str("mode", a.Mode().String()).
		Int("content_len", len(d.Content)).
		Msg("save paste")
	return a, savePasteCmd(a.API, a.ActiveID, d)
}

// handlePasteSaved clears the editor and reloads the list on success. On
// failure the fields are kept so the user can retry.
func (a *appModelAdapter) handlePasteSaved(msg PasteSavedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logx.Error().Err(msg.Err).Bool("update", msg.Updated).Msg("save paste")
		return a, a.pushToast(ToastError, MsgSaveFailed, ToastTopCenter)
	}

	text := MsgPasteCreated
	if msg.Updated {
		text = MsgPasteUpdated
	}
	logx.Info().Str("id", msg.Paste.ID.String()).Bool("update", msg.Updated).Msg("paste saved")
	a.Editor.Clear()
	a.setActiveID("")
	return a, tea.Batch(
		a.pushToast(ToastSuccess, text, ToastTopCenter),
		loadPastesCmd(a.API),
	)
}

// handleReset abandons the current edit without any network call.
func (a *appModelAdapter) handleReset() (tea.Model, tea.Cmd) {
	a.Editor.Clear()
	a.setActiveID("")
	logx.Debug().Msg("editor reset")
	return a, nil
}

// handleClipboardWritten shows the copy toast. Write errors are only logged.
func (a *appModelAdapter) handleClipboardWritten(msg ClipboardWrittenMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		logx.Warn().Err(msg.Err).Msg("write clipboard")
	}
	return a, a.pushToast(ToastSuccess, MsgCopied, ToastTopRight)
}
