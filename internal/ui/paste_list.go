package ui

import (
	"fmt"
	"strings"

	"pastepad/internal/paste"
	"pastepad/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// pasteItem implements list.Item for paste.Paste.
type pasteItem struct {
	p     paste.Paste
	width int
}

func (i pasteItem) FilterValue() string { return i.p.Title }
func (i pasteItem) Title() string {
	return textutil.Truncate(i.p.DisplayTitle(), i.width)
}
func (i pasteItem) Description() string {
	line := "#" + i.p.ID.String()
	if first := textutil.FirstLine(i.p.Content); first != "" {
		line += "  " + first
	}
	return textutil.Truncate(line, i.width)
}

// PasteListView shows the pastes returned by the backend, in backend order.
type PasteListView struct {
	list    list.Model
	Pastes  []paste.Paste
	focused bool
}

// Ensure PasteListView implements View.
var _ View = (*PasteListView)(nil)

// NewPasteListView creates an empty list. Pastes arrive via SetPastes.
func NewPasteListView() *PasteListView {
	l := list.New(nil, NewCompactListDelegate(), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.SetSize(32, 20)
	return &PasteListView{list: l}
}

// Init implements View.
func (v *PasteListView) Init() tea.Cmd {
	return nil
}

// Update implements View. Enter is handled by the app.
func (v *PasteListView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

// SetPastes replaces the list contents and keeps the cursor in range.
func (v *PasteListView) SetPastes(pastes []paste.Paste) {
	idx := v.list.Index()
	v.Pastes = pastes
	v.updateItems()
	if idx >= len(pastes) {
		idx = len(pastes) - 1
	}
	if idx >= 0 {
		v.list.Select(idx)
	}
}

// Selected returns the paste under the cursor.
func (v *PasteListView) Selected() (paste.Paste, bool) {
	idx := v.list.Index()
	if idx < 0 || idx >= len(v.Pastes) {
		return paste.Paste{}, false
	}
	return v.Pastes[idx], true
}

// SelectID moves the cursor to the paste with identifier id. It reports
// whether the paste is in the list.
func (v *PasteListView) SelectID(id string) bool {
	for i, p := range v.Pastes {
		if p.ID.String() == id {
			v.list.Select(i)
			return true
		}
	}
	return false
}

// SetFocused toggles the focused frame.
func (v *PasteListView) SetFocused(f bool) {
	v.focused = f
}

// SetSize fits the list into width columns and height rows, including its frame.
func (v *PasteListView) SetSize(width, height int) {
	v.list.SetSize(width-Styles.Field.GetHorizontalFrameSize(), height-Styles.Field.GetVerticalFrameSize()-1)
	v.updateItems()
}

// View implements View.
func (v *PasteListView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Section.Render(fmt.Sprintf("Pastes (%d)", len(v.Pastes))))
	b.WriteString("\n")
	if len(v.Pastes) == 0 {
		b.WriteString(Styles.Empty.Render("No pastes yet"))
	} else {
		b.WriteString(v.list.View())
	}
	frame := Styles.Field
	if v.focused {
		frame = Styles.FieldFocused
	}
	return frame.Render(b.String())
}

func (v *PasteListView) updateItems() {
	width := v.list.Width() - 2
	items := make([]list.Item, len(v.Pastes))
	for i, p := range v.Pastes {
		items[i] = pasteItem{p: p, width: width}
	}
	v.list.SetItems(items)
}
