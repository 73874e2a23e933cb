package ui

import "pastepad/internal/paste"

// PastesLoadedMsg carries the result of GET /pastes.
type PastesLoadedMsg struct {
	Pastes []paste.Paste
	Err    error
}

// PasteLoadedMsg carries the result of GET /pastes/{id}. ID and Seq identify
// the request so late responses for an abandoned identifier can be dropped.
type PasteLoadedMsg struct {
	ID    string
	Seq   uint64
	Paste paste.Paste
	Err   error
}

// PasteSavedMsg carries the result of a create (POST) or update (PUT).
type PasteSavedMsg struct {
	Updated bool
	Paste   paste.Paste
	Err     error
}

// NavigateMsg makes ID the active identifier, as following a ?pasteId= link
// would.
type NavigateMsg struct {
	ID string
}

// SaveMsg creates or updates the paste in the editor (C-s).
type SaveMsg struct{}

// ResetMsg clears the editor and the active identifier (C-n).
type ResetMsg struct{}

// CopyMsg copies the editor content to the clipboard (C-y).
type CopyMsg struct{}

// ClipboardWrittenMsg reports the outcome of a clipboard write.
type ClipboardWrittenMsg struct {
	Err error
}

// ReloadMsg refetches the paste list (C-r).
type ReloadMsg struct{}

// ShowOpenPasteMsg opens the open-by-identifier modal (C-o).
type ShowOpenPasteMsg struct{}

// DismissModalMsg is sent when user cancels a modal (Esc).
type DismissModalMsg struct{}

// FocusNextMsg and FocusPrevMsg rotate focus (tab / shift+tab).
type FocusNextMsg struct{}

type FocusPrevMsg struct{}

// toastExpiredMsg removes the toast with the given id.
type toastExpiredMsg struct {
	ID int
}
