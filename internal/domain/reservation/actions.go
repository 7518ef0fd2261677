package reservation

var allowedActions = map[Status][]Action{
	StatusBooked:    {ActionCancel, ActionMarkAsDone},
	StatusCancelled: {ActionRestoreToBooked, ActionRestoreToPending},
	StatusCompleted: {ActionRestoreToBooked},
	StatusPending:   {ActionConfirm, ActionCancel, ActionMarkAsDone},
	StatusRequested: {ActionConfirm, ActionCancel, ActionMarkAsDone, ActionRestoreToBooked},
	StatusDone:      {ActionRestoreToBooked},
}

var actionTargets = map[Action]Status{
	ActionConfirm:          StatusBooked,
	ActionCancel:           StatusCancelled,
	ActionMarkAsDone:       StatusDone,
	ActionRestoreToBooked:  StatusBooked,
	ActionRestoreToPending: StatusPending,
}

// AllowedActions returns a copy of the actions offered for the status.
func AllowedActions(s Status) []Action {
	actions := allowedActions[s]
	out := make([]Action, len(actions))
	copy(out, actions)
	return out
}

func IsAllowed(s Status, a Action) bool {
	for _, candidate := range allowedActions[s] {
		if candidate == a {
			return true
		}
	}
	return false
}

func NextStatus(s Status, a Action) (Status, error) {
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	if !a.IsValid() {
		return "", ErrInvalidAction
	}
	if !IsAllowed(s, a) {
		return "", ErrActionNotAllowed
	}
	return actionTargets[a], nil
}
