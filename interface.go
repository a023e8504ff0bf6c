package statemachine

// Machine is the owner-agnostic driving surface of a StateMachine.
// It lets a loop tick machines bound to different owner types together.
type Machine[S comparable] interface {
	ChangeState(next S) Status
	Tick(deltaTime float64) Status
	Current() S
}

// Interface compliance check.
var _ Machine[int] = (*StateMachine[int, struct{}])(nil)
