package callback

import "strconv"

// TrackerStatus is the document state reported by a save callback.
// Value 5 is not used by the protocol.
type TrackerStatus int

const (
	StatusEditing            TrackerStatus = 1
	StatusMustSave           TrackerStatus = 2
	StatusCorrupted          TrackerStatus = 3
	StatusClosed             TrackerStatus = 4
	StatusForceSave          TrackerStatus = 6
	StatusCorruptedForceSave TrackerStatus = 7
)

// Known reports whether s is one of the protocol statuses.
func (s TrackerStatus) Known() bool {
	switch s {
	case StatusEditing, StatusMustSave, StatusCorrupted, StatusClosed, StatusForceSave, StatusCorruptedForceSave:
		return true
	}
	return false
}

func (s TrackerStatus) String() string {
	switch s {
	case StatusEditing:
		return "editing"
	case StatusMustSave:
		return "must_save"
	case StatusCorrupted:
		return "corrupted"
	case StatusClosed:
		return "closed"
	case StatusForceSave:
		return "force_save"
	case StatusCorruptedForceSave:
		return "corrupted_force_save"
	default:
		return "unknown(" + strconv.Itoa(int(s)) + ")"
	}
}

// ForceSaveType tells what triggered a force save.
type ForceSaveType int

const (
	ForceSaveCommand ForceSaveType = 0
	ForceSaveButton  ForceSaveType = 1
	ForceSaveTimer   ForceSaveType = 2
	ForceSaveForm    ForceSaveType = 3
)

// ActionType is the kind of user action in Callback.Actions.
type ActionType int

const (
	ActionDisconnect ActionType = 0
	ActionConnect    ActionType = 1
	ActionForceSave  ActionType = 2
)
