package ui

// EditMode is derived from the active identifier: no identifier means a new
// paste is being composed.
type EditMode int

const (
	ModeCreate EditMode = iota
	ModeUpdate
)

func (m EditMode) String() string {
	switch m {
	case ModeCreate:
		return "Create"
	case ModeUpdate:
		return "Update"
	default:
		return "Unknown"
	}
}

// ActionLabel is the text of the save control for this mode.
func (m EditMode) ActionLabel() string {
	if m == ModeUpdate {
		return "Update Paste"
	}
	return "Create My Paste"
}

func modeFor(activeID string) EditMode {
	if activeID == "" {
		return ModeCreate
	}
	return ModeUpdate
}
