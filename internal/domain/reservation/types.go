package reservation

import "strings"

type Status string

const (
	StatusRequested Status = "Requested"
	StatusPending   Status = "Pending"
	StatusBooked    Status = "Booked"
	StatusDone      Status = "Done"
	StatusCompleted Status = "Completed"
	StatusCancelled Status = "Cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusPending, StatusBooked, StatusDone, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func ParseStatus(s string) (Status, error) {
	st := Status(strings.TrimSpace(s))
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// Action is the key the remote API expects in the action form field.
type Action string

const (
	ActionConfirm          Action = "Confirm"
	ActionCancel           Action = "Cancel"
	ActionMarkAsDone       Action = "MarkAsDone"
	ActionRestoreToBooked  Action = "RestoreToBooked"
	ActionRestoreToPending Action = "RestoreToPending"
)

var actionLabels = map[Action]string{
	ActionConfirm:          "Confirm",
	ActionCancel:           "Cancel",
	ActionMarkAsDone:       "Mark as done",
	ActionRestoreToBooked:  "Restore to Booked",
	ActionRestoreToPending: "Restore to Pending",
}

func (a Action) String() string {
	return string(a)
}

func (a Action) Label() string {
	return actionLabels[a]
}

func (a Action) IsValid() bool {
	_, ok := actionLabels[a]
	return ok
}

// ParseAction accepts either the key or the display label.
func ParseAction(s string) (Action, error) {
	s = strings.TrimSpace(s)
	if a := Action(s); a.IsValid() {
		return a, nil
	}
	for a, label := range actionLabels {
		if strings.EqualFold(label, s) {
			return a, nil
		}
	}
	return "", ErrInvalidAction
}
