package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToastStack_PushWithoutTTL(t *testing.T) {
	var s ToastStack
	cmd := s.Push(ToastSuccess, "saved", ToastTopCenter)

	assert.Nil(t, cmd, "zero TTL schedules no expiry")
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "saved", s.Items[0].Message)
}

func TestToastStack_ExpiryRemovesOnlyItsToast(t *testing.T) {
	s := ToastStack{TTL: time.Millisecond}
	first := s.Push(ToastSuccess, "one", ToastTopCenter)
	s.Push(ToastError, "two", ToastTopCenter)
	require.NotNil(t, first)

	msg, ok := first().(toastExpiredMsg)
	require.True(t, ok)
	s.Remove(msg.ID)

	require.Equal(t, 1, s.Len())
	assert.Equal(t, "two", s.Items[0].Message)

	s.Remove(msg.ID)
	assert.Equal(t, 1, s.Len(), "removing twice is harmless")
}

func TestToastStack_ViewPlacement(t *testing.T) {
	var s ToastStack
	s.Push(ToastSuccess, "center", ToastTopCenter)
	s.Push(ToastSuccess, "right", ToastTopRight)

	lines := strings.Split(s.View(40), "\n")
	require.Len(t, lines, 6, "two bordered toasts of three rows each")
	for _, l := range lines {
		assert.Equal(t, 40, lipgloss.Width(l))
	}

	centerMid := lines[1]
	rightMid := lines[4]
	assert.Contains(t, centerMid, "center")
	assert.Contains(t, rightMid, "right")
	assert.True(t, strings.HasSuffix(strings.TrimRight(rightMid, " "), "│"))
	assert.Equal(t, rightMid, strings.TrimRight(rightMid, " "), "right toast touches the edge")
	assert.NotEqual(t, centerMid, strings.TrimRight(centerMid, " "), "centered toast leaves room on the right")
}

func TestToastStack_ViewEmpty(t *testing.T) {
	var s ToastStack
	assert.Empty(t, s.View(80))
}

func TestToastStack_DropsOldestPastCap(t *testing.T) {
	var s ToastStack
	for _, m := range []string{"a", "b", "c", "d"} {
		s.Push(ToastSuccess, m, ToastTopCenter)
	}
	assert.Equal(t, []string{"b", "c", "d"}, toastMessages(&s))

	s.Clear()
	assert.Zero(t, s.Len())
	assert.Empty(t, s.View(80))
}
