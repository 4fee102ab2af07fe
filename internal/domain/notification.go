package domain

type NotifyState string

const (
	StateIdle     NotifyState = ""
	StateNotified NotifyState = "notified"
)

func (s NotifyState) Label() string {
	if s == StateNotified {
		return "notified"
	}
	return "idle"
}

// Decision is the outcome of one pass through the no-assignments state machine.
type Decision struct {
	Next NotifyState
	// Persist is false only when the stored state must be left untouched.
	Persist             bool
	Deliver             bool
	NoAssignmentsNotice bool
}

func Decide(current NotifyState, recordCount int) Decision {
	if recordCount > 0 {
		return Decision{Next: StateIdle, Persist: true, Deliver: true}
	}

	if current == StateNotified {
		return Decision{Next: StateNotified}
	}

	return Decision{
		Next:                StateNotified,
		Persist:             true,
		Deliver:             true,
		NoAssignmentsNotice: true,
	}
}
