package ui

import (
	"strings"
	"testing"

	"pastepad/internal/paste"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditorView_ContentRoundTrip(t *testing.T) {
	e := NewEditorView()
	body := strings.Repeat("line\n", 150) + "last"

	e.SetTitle("Notes")
	e.SetContent(body)

	assert.Equal(t, "Notes", e.Title())
	assert.Equal(t, body, e.Content(), "long content is not clipped")

	e.Clear()
	assert.Empty(t, e.Title())
	assert.Empty(t, e.Content())
}

func TestEditorView_KeysReachFocusedFieldOnly(t *testing.T) {
	e := NewEditorView()

	e.Update(keyMsg("abc"))
	e.Focus(FocusContent)
	e.Update(keyMsg("xyz"))
	e.Focus(FocusList)
	e.Update(keyMsg("ignored"))

	assert.Equal(t, "abc", e.Title())
	assert.Equal(t, "xyz", e.Content())
	assert.Empty(t, e.Focused())
}

func TestEditorView_RenderContract(t *testing.T) {
	e := NewEditorView()

	create := e.View()
	assert.Contains(t, create, "Create My Paste")
	assert.Contains(t, create, TitlePlaceholder)
	assert.NotContains(t, create, ResetLabel)

	e.Mode = ModeUpdate
	update := e.View()
	assert.Contains(t, update, "Update Paste")
	assert.Contains(t, update, ResetLabel)
}

func TestPasteListView_SelectionAndRender(t *testing.T) {
	v := NewPasteListView()
	assert.Contains(t, v.View(), "No pastes yet")
	_, ok := v.Selected()
	assert.False(t, ok)

	v.SetPastes([]paste.Paste{
		{ID: "1", Title: "first", Content: "\n  hello\nworld"},
		{ID: "2", Title: ""},
	})
	assert.True(t, v.SelectID("2"))
	assert.False(t, v.SelectID("9"))
	p, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, paste.ID("2"), p.ID)

	out := v.View()
	assert.Contains(t, out, "Pastes (2)")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "#1  hello")
	assert.Contains(t, out, "(untitled)")

	// Shrinking the list keeps the cursor in range.
	v.SetPastes([]paste.Paste{{ID: "1"}})
	p, ok = v.Selected()
	require.True(t, ok)
	assert.Equal(t, paste.ID("1"), p.ID)
}
