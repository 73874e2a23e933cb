// Package ui is the pastepad editor page as a Bubble Tea program.
//
// AppModel holds the page state: the title and content fields (EditorView),
// the paste list (PasteListView), toasts, and the active paste identifier,
// which is mirrored into the page location's pasteId parameter. Backend
// calls run as tea.Cmds and report back as messages handled in
// app_handlers_paste.go.
//
// Supporting pieces:
//   - View: a region with its own Init/Update/View
//   - KeybindRegistry and KeyHandler: single-key shortcuts and C-x leader
//     sequences, filtered by EditMode
//   - FocusManager: tab order across title, content and list
//   - OverlayStack: modals such as OpenPasteModal
//   - ToastStack: notifications with optional expiry
package ui
