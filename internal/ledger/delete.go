package ledger

// DeletePhase is the state of the two-phase delete.
type DeletePhase int

const (
	// DeleteIdle means no delete awaits confirmation.
	DeleteIdle DeletePhase = iota
	// DeletePending means a target id awaits Confirm or Cancel.
	DeletePending
)

func (p DeletePhase) String() string {
	switch p {
	case DeleteIdle:
		return "idle"
	case DeletePending:
		return "pending"
	default:
		return "unknown"
	}
}

// DeleteState is the {Idle, PendingDelete(id)} state machine. The zero value
// is Idle. Transitions return the next state and never fail.
type DeleteState struct {
	phase  DeletePhase
	target int64
}

// Phase returns the current phase.
func (s DeleteState) Phase() DeletePhase {
	return s.phase
}

// Pending returns the target id while a delete is pending.
func (s DeleteState) Pending() (int64, bool) {
	if s.phase != DeletePending {
		return 0, false
	}
	return s.target, true
}

// Request moves to PendingDelete(id) from any state.
func (s DeleteState) Request(id int64) DeleteState {
	return DeleteState{phase: DeletePending, target: id}
}

// Confirm returns to Idle. The caller removes the target it read from
// Pending beforehand.
func (s DeleteState) Confirm() DeleteState {
	return DeleteState{}
}

// Cancel returns to Idle.
func (s DeleteState) Cancel() DeleteState {
	return DeleteState{}
}
