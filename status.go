package statemachine

import "github.com/enetx/g"

// Status is the outcome reported by ChangeState and Tick.
type Status int

const (
	// NullOwner means the machine has no owner attached; nothing was done.
	NullOwner Status = iota
	// StateChanged means ChangeState performed a transition.
	StateChanged
	// StateUnchanged means ChangeState was asked for the current state; no callbacks ran.
	StateUnchanged
	// TickSuccess means Tick ran, with or without an update callback bound.
	TickSuccess
)

func (s Status) String() string {
	switch s {
	case NullOwner:
		return "NullOwner"
	case StateChanged:
		return "StateChanged"
	case StateUnchanged:
		return "StateUnchanged"
	case TickSuccess:
		return "TickSuccess"
	default:
		return g.Format("Status({})", int(s)).Std()
	}
}

// Err converts the status into an error for callers that prefer error flow.
// NullOwner yields *ErrNullOwner, every other status yields nil.
func (s Status) Err() error {
	if s == NullOwner {
		return &ErrNullOwner{}
	}

	return nil
}
