package ui

import (
	"context"
	"strings"
	"time"

	"pastepad/internal/clipboard"
	"pastepad/internal/location"
	"pastepad/internal/logx"
	"pastepad/internal/paste"
	"pastepad/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// PasteAPI is the backend the editor talks to. *pasteapi.Client implements it.
type PasteAPI interface {
	List(ctx context.Context) ([]paste.Paste, error)
	Get(ctx context.Context, id string) (paste.Paste, error)
	Create(ctx context.Context, d paste.Draft) (paste.Paste, error)
	Update(ctx context.Context, id string, d paste.Draft) (paste.Paste, error)
}

// Clipboard receives copied content. *clipboard.System implements it.
type Clipboard interface {
	WriteAll(text string) error
}

// Options configures NewAppModel.
type Options struct {
	API       PasteAPI
	Clipboard Clipboard // nil uses the native clipboard without fallback
	Location  location.Location
	ToastTTL  time.Duration // zero keeps toasts on screen
	Now       func() time.Time
}

// AppModel is the paste editor page. It owns the title and content fields,
// the paste list, and the active identifier; Location mirrors ActiveID in its
// pasteId parameter.
type AppModel struct {
	Editor     *EditorView
	List       *PasteListView
	Toasts     ToastStack
	Overlays   OverlayStack
	Focus      *FocusManager
	KeyHandler *KeyHandler
	API        PasteAPI
	Clipboard  Clipboard
	Location   location.Location
	ActiveID   string

	// loadSeq is bumped whenever the active identifier changes; a load
	// result carrying an older value is stale.
	loadSeq uint64
	now     func() time.Time
	width   int
	height  int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model. A pasteId in
// opts.Location starts the editor in update mode.
func NewAppModel(opts Options) *AppModel {
	a := &AppModel{
		Editor:    NewEditorView(),
		List:      NewPasteListView(),
		Toasts:    ToastStack{TTL: opts.ToastTTL},
		API:       opts.API,
		Clipboard: opts.Clipboard,
		Location:  opts.Location,
		now:       opts.Now,
	}
	if a.Clipboard == nil {
		a.Clipboard = clipboard.NewSystem(nil)
	}
	if a.now == nil {
		a.now = time.Now
	}
	if a.Location == (location.Location{}) {
		a.Location = location.Root()
	}
	if id := a.Location.PasteID(); id != "" {
		a.setActiveID(id)
	}

	a.Focus = NewFocusManager(FocusTitle, FocusContent, FocusList)
	a.Focus.OnChange = func(_, to string) {
		a.Editor.Focus(to)
		a.List.SetFocused(to == FocusList)
	}
	a.KeyHandler = NewKeyHandler(newKeybindRegistry())
	return a
}

func newKeybindRegistry() *KeybindRegistry {
	updateOnly := []EditMode{ModeUpdate}
	reg := NewKeybindRegistry()
	reg.BindWithDesc("ctrl+s", msgCmd(SaveMsg{}), "Save")
	reg.BindWithDescForMode("ctrl+n", msgCmd(ResetMsg{}), ResetLabel, updateOnly)
	reg.BindWithDesc("ctrl+y", msgCmd(CopyMsg{}), CopyLabel)
	reg.BindWithDesc("ctrl+o", msgCmd(ShowOpenPasteMsg{}), "Open")
	reg.BindWithDesc("ctrl+r", msgCmd(ReloadMsg{}), "Reload")
	reg.BindWithDesc("tab", msgCmd(FocusNextMsg{}), "Next field")
	reg.Bind("shift+tab", msgCmd(FocusPrevMsg{}))
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")

	reg.BindWithDesc("C-x s", msgCmd(SaveMsg{}), "Save")
	reg.BindWithDescForMode("C-x n", msgCmd(ResetMsg{}), ResetLabel, updateOnly)
	reg.BindWithDesc("C-x y", msgCmd(CopyMsg{}), CopyLabel)
	reg.BindWithDesc("C-x o", msgCmd(ShowOpenPasteMsg{}), "Open")
	reg.BindWithDesc("C-x r", msgCmd(ReloadMsg{}), "Reload")
	reg.BindWithDesc("C-x q", tea.Quit, "Quit")
	return reg
}

// Mode reports whether the editor creates or updates.
func (m *AppModel) Mode() EditMode {
	return modeFor(m.ActiveID)
}

// setActiveID makes id the active identifier, writes it to the location and
// invalidates in-flight loads. An empty id returns to create mode.
func (m *AppModel) setActiveID(id string) {
	m.ActiveID = id
	m.Location = m.Location.WithPasteID(id)
	m.loadSeq++
	m.Editor.Mode = m.Mode()
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	logx.Info().
		Str("location", a.Location.String()).
		Str("mode", a.Mode().String()).
		Msg("editor started")
	cmds := []tea.Cmd{loadPastesCmd(a.API)}
	if a.ActiveID != "" {
		cmds = append(cmds, loadPasteCmd(a.API, a.ActiveID, a.loadSeq))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.resize(msg.Width, msg.Height)
		return a, nil
	case tea.KeyMsg:
		return a.handleKey(msg)
	case PastesLoadedMsg:
		return a.handlePastesLoaded(msg)
	case PasteLoadedMsg:
		return a.handlePasteLoaded(msg)
	case NavigateMsg:
		return a.handleNavigate(msg)
	case SaveMsg:
		return a.handleSave()
	case PasteSavedMsg:
		return a.handlePasteSaved(msg)
	case ResetMsg:
		return a.handleReset()
	case CopyMsg:
		return a, copyCmd(a.Clipboard, a.Editor.Content())
	case ClipboardWrittenMsg:
		return a.handleClipboardWritten(msg)
	case ReloadMsg:
		return a, loadPastesCmd(a.API)
	case ShowOpenPasteMsg:
		a.Overlays.Push(Overlay{View: NewOpenPasteModal(), Dismiss: "esc"})
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case FocusNextMsg:
		a.Focus.Next()
		return a, nil
	case FocusPrevMsg:
		a.Focus.Prev()
		return a, nil
	case toastExpiredMsg:
		a.Toasts.Remove(msg.ID)
		a.layout()
		return a, nil
	}

	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	_, cmd := a.Editor.Update(msg)
	return a, cmd
}

// handleKey routes keys: open modal first, then keybinds, then the focused
// region.
func (a *appModelAdapter) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}
	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(msg.String()) {
			a.Overlays.Pop()
			return a, nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	}

	a.KeyHandler.Mode = a.Mode()
	if consumed, cmd := a.KeyHandler.Handle(msg); consumed {
		return a, cmd
	}
	if msg.String() == "esc" && a.Toasts.Len() > 0 {
		a.Toasts.Clear()
		a.layout()
		return a, nil
	}

	if a.Focus.Current == FocusList {
		if msg.String() == "enter" {
			if p, ok := a.List.Selected(); ok && p.ID != "" {
				return a, msgCmd(NavigateMsg{ID: p.ID.String()})
			}
			return a, nil
		}
		_, cmd := a.List.Update(msg)
		return a, cmd
	}
	_, cmd := a.Editor.Update(msg)
	return a, cmd
}

func (a *appModelAdapter) resize(width, height int) {
	a.width, a.height = width, height
	a.layout()
}

// layout sizes the editor and list to the rows left between the header, the
// visible toasts and the footer. It waits for the first window size.
func (m *AppModel) layout() {
	if m.width == 0 && m.height == 0 {
		return
	}
	listWidth := m.width / 3
	if listWidth < 24 {
		listWidth = 24
	}
	if listWidth > 40 {
		listWidth = 40
	}
	body := m.height - 3 - m.toastRows()
	m.Editor.SetSize(m.width-listWidth-1, body)
	m.List.SetSize(listWidth, body)
}

func (m *AppModel) toastRows() int {
	if m.Toasts.Len() == 0 {
		return 0
	}
	return lipgloss.Height(m.Toasts.View(m.width))
}

// pushToast shows a toast and makes room for it.
func (m *AppModel) pushToast(kind ToastKind, message string, pos ToastPosition) tea.Cmd {
	cmd := m.Toasts.Push(kind, message, pos)
	m.layout()
	return cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	if a.Overlays.Len() > 0 {
		return a.Overlays.Render(a.width, a.height)
	}

	var b strings.Builder
	b.WriteString(a.header())
	b.WriteString("\n")
	if toasts := a.Toasts.View(a.width); toasts != "" {
		b.WriteString(toasts)
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, a.Editor.View(), " ", a.List.View()))
	b.WriteString("\n")
	if a.KeyHandler.LeaderWaiting {
		b.WriteString(RenderKeybindHelp(a.KeyHandler, a.Mode()))
	} else {
		b.WriteString(RenderShortcutFooter(a.KeyHandler.Registry, a.Mode(), a.width))
	}
	return b.String()
}

func (a *appModelAdapter) header() string {
	title := Styles.Title.Render("pastepad")
	mode := Styles.Section.Render(a.Mode().String())
	room := a.width - lipgloss.Width(title) - lipgloss.Width(mode) - 4
	if a.width <= 0 {
		room = 60
	}
	loc := Styles.Muted.Render(textutil.PadRightVisual(a.Location.String(), room))
	return title + "  " + loc + "  " + mode
}
