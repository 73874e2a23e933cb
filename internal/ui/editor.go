package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Focus targets, in tab order.
const (
	FocusTitle   = "title"
	FocusContent = "content"
	FocusList    = "list"
)

const (
	TitlePlaceholder   = "Title"
	ContentPlaceholder = "Write Your Content Here...."
	ResetLabel         = "New paste"
	CopyLabel          = "Copy"
)

// EditorView is the title field, the content editor with its window chrome,
// and the action row. Its Mode decides the action label and whether the reset
// control is shown.
type EditorView struct {
	title   textinput.Model
	content textarea.Model
	Mode    EditMode
	focused string
	width   int
}

// Ensure EditorView implements View.
var _ View = (*EditorView)(nil)

// NewEditorView creates an editor with the title field focused.
func NewEditorView() *EditorView {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = TitlePlaceholder
	ti.CharLimit = 0
	ti.Cursor.SetMode(cursor.CursorStatic)

	ta := textarea.New()
	ta.Prompt = ""
	ta.Placeholder = ContentPlaceholder
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.FocusedStyle.CursorLine = lipgloss.NewStyle()
	ta.Cursor.SetMode(cursor.CursorStatic)

	e := &EditorView{title: ti, content: ta}
	e.SetSize(64, 16)
	e.Focus(FocusTitle)
	return e
}

// Init implements View.
func (e *EditorView) Init() tea.Cmd {
	return nil
}

// Update implements View. Keys go to the focused field only.
func (e *EditorView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	switch e.focused {
	case FocusTitle:
		e.title, cmd = e.title.Update(msg)
	case FocusContent:
		e.content, cmd = e.content.Update(msg)
	}
	return e, cmd
}

// Title returns the title text.
func (e *EditorView) Title() string { return e.title.Value() }

// Content returns the content text.
func (e *EditorView) Content() string { return e.content.Value() }

// SetTitle replaces the title text.
func (e *EditorView) SetTitle(s string) { e.title.SetValue(s) }

// SetContent replaces the content text.
func (e *EditorView) SetContent(s string) { e.content.SetValue(s) }

// Clear empties both fields.
func (e *EditorView) Clear() {
	e.title.SetValue("")
	e.content.Reset()
}

// Focus moves keyboard focus to FocusTitle or FocusContent. Any other id
// blurs both fields.
func (e *EditorView) Focus(id string) {
	e.title.Blur()
	e.content.Blur()
	e.focused = ""
	switch id {
	case FocusTitle:
		e.title.Focus()
	case FocusContent:
		e.content.Focus()
	default:
		return
	}
	e.focused = id
}

// Focused returns the focused field id, or "" when neither has focus.
func (e *EditorView) Focused() string { return e.focused }

// SetSize fits the editor into width columns and height rows.
func (e *EditorView) SetSize(width, height int) {
	e.width = width
	inner := width - Styles.Field.GetHorizontalFrameSize()
	if inner < 10 {
		inner = 10
	}
	e.title.Width = inner
	e.content.SetWidth(inner)
	// title box (3) + chrome (1) + content frame (2) + action row (2)
	h := height - 8
	if h < 3 {
		h = 3
	}
	e.content.SetHeight(h)
}

// View implements View.
func (e *EditorView) View() string {
	var b strings.Builder
	b.WriteString(e.frame(FocusTitle).Render(e.title.View()))
	b.WriteString("\n")
	b.WriteString(e.chrome())
	b.WriteString("\n")
	b.WriteString(e.frame(FocusContent).Render(e.content.View()))
	b.WriteString("\n\n")
	b.WriteString(e.actions())
	return b.String()
}

func (e *EditorView) frame(id string) lipgloss.Style {
	if e.focused == id {
		return Styles.FieldFocused
	}
	return Styles.Field
}

// chrome renders the window bar above the content editor: three dots on the
// left and the copy control on the right.
func (e *EditorView) chrome() string {
	left := Styles.ChromeDots.Render("● ● ●")
	right := Styles.Key.Render(displayKey("ctrl+y")) + " " + Styles.Muted.Render(CopyLabel)
	gap := e.width - lipgloss.Width(left) - lipgloss.Width(right) - Styles.Chrome.GetHorizontalFrameSize()
	if gap < 1 {
		gap = 1
	}
	return Styles.Chrome.Render(left + strings.Repeat(" ", gap) + right)
}

func (e *EditorView) actions() string {
	row := Styles.Button.Render(e.Mode.ActionLabel()) + " " + Styles.Hint.Render(displayKey("ctrl+s"))
	if e.Mode == ModeUpdate {
		row += "   " + Styles.ButtonReset.Render(ResetLabel) + " " + Styles.Hint.Render(displayKey("ctrl+n"))
	}
	return row
}
