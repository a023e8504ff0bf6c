package statemachine

import "github.com/enetx/g"

type (
	// EnterFunc is called against the owner when a state is entered.
	// Method expressions such as (*Enemy).EnterIdle satisfy it directly.
	EnterFunc[O any] func(owner *O)
	// UpdateFunc is called against the owner on every Tick while its state is current.
	UpdateFunc[O any] func(owner *O, deltaTime float64)
	// ExitFunc is called against the owner when a state is left.
	ExitFunc[O any] func(owner *O)

	// TransitionHook is a global callback called on every genuine transition.
	// It runs after the exit callback of the old state and before the enter
	// callback of the new one, when Current already reports the new state.
	// A hook that calls ChangeState redirects the transition: the enter
	// callback of the original target does not run.
	TransitionHook[S comparable] func(from, to S)

	// Callbacks is the registration record of a single state.
	// Any slot may be nil, a nil slot is skipped silently.
	Callbacks[O any] struct {
		OnEnter  EnterFunc[O]
		OnUpdate UpdateFunc[O]
		OnExit   ExitFunc[O]
	}

	// Behavior bundles the three lifecycle callbacks of a state as methods.
	Behavior[O any] interface {
		Enter(owner *O)
		Update(owner *O, deltaTime float64)
		Exit(owner *O)
	}

	// StateMachine binds states of type S to lifecycle callbacks executed
	// against a borrowed owner of type O.
	//
	// The machine never copies or frees the owner, it only keeps the pointer.
	// A nil owner makes ChangeState and Tick report NullOwner.
	// StateMachine is not safe for concurrent use.
	StateMachine[S comparable, O any] struct {
		owner        *O
		initial      S
		current      S
		states       g.Map[S, Callbacks[O]]
		order        g.Slice[S]
		onTransition g.Slice[TransitionHook[S]]
		transitions  uint64
	}
)
