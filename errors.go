package statemachine

// ErrNullOwner is returned by Status.Err when an operation was refused because
// the state machine has no owner attached. It is the only failure the state
// machine defines.
type ErrNullOwner struct{}

func (*ErrNullOwner) Error() string {
	return "statemachine: no owner attached"
}
