package ticket

// Status represents the workflow state of a Ticket. The workflow is a strict
// linear state machine:
//
//	OPEN --> IN_PROGRESS --> CLOSED
//
// Transitions only move forward. CLOSED is terminal.
type Status string

const (
	StatusOpen       Status = "OPEN"
	StatusInProgress Status = "IN_PROGRESS"
	StatusClosed     Status = "CLOSED"
)

// IsValid returns true if the status is one of the defined constants.
func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusClosed:
		return true
	default:
		return false
	}
}

// Advance returns the next workflow state and true, or the receiver and false
// when the status is terminal (or not a defined constant).
func (s Status) Advance() (Status, bool) {
	switch s {
	case StatusOpen:
		return StatusInProgress, true
	case StatusInProgress:
		return StatusClosed, true
	default:
		return s, false
	}
}

// CanTransition reports whether moving from s to target respects the
// forward-only workflow. Staying in place is allowed; moving backward is not.
func (s Status) CanTransition(target Status) bool {
	if !s.IsValid() || !target.IsValid() {
		return false
	}
	return s.rank() <= target.rank()
}

// rank orders statuses along the workflow. Valid statuses only.
func (s Status) rank() int {
	switch s {
	case StatusOpen:
		return 0
	case StatusInProgress:
		return 1
	default:
		return 2
	}
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
