package ui

import "testing"

func TestFocusManager_Rotation(t *testing.T) {
	var changes []string
	f := NewFocusManager(FocusTitle, FocusContent, FocusList)
	f.OnChange = func(from, to string) { changes = append(changes, from+">"+to) }

	if f.Current != FocusTitle {
		t.Fatalf("initial focus = %q", f.Current)
	}
	if got := f.Next(); got != FocusContent {
		t.Errorf("Next = %q, want content", got)
	}
	f.Next()
	if got := f.Next(); got != FocusTitle {
		t.Errorf("Next should wrap to title, got %q", got)
	}
	if got := f.Prev(); got != FocusList {
		t.Errorf("Prev should wrap to list, got %q", got)
	}
	if len(changes) != 4 {
		t.Errorf("expected 4 focus changes, got %v", changes)
	}
}

func TestFocusManager_SetFocus(t *testing.T) {
	calls := 0
	f := NewFocusManager(FocusTitle, FocusContent)
	f.OnChange = func(string, string) { calls++ }

	if f.SetFocus("nope") {
		t.Error("unknown id should be rejected")
	}
	if !f.SetFocus(FocusTitle) || calls != 0 {
		t.Errorf("refocusing the current id should not fire OnChange (calls=%d)", calls)
	}
	if !f.SetFocus(FocusContent) || calls != 1 {
		t.Errorf("SetFocus(content): calls=%d", calls)
	}
}

func TestFocusManager_Empty(t *testing.T) {
	var f FocusManager
	if f.Next() != "" || f.Prev() != "" {
		t.Error("empty order should yield no focus")
	}
}
