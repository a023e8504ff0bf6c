// Package statemachine provides a generic finite state machine that binds
// states to on-enter, on-update and on-exit callbacks executed against an
// owning object. It is meant for per-frame loops: the caller drives every
// transition with ChangeState and every update with Tick, and the machine
// dispatches synchronously on the caller's goroutine.
//
// It is built with types and utilities from the github.com/enetx/g library.
package statemachine

import (
	"maps"
	"slices"

	"github.com/enetx/g"
)

// New creates a state machine bound to owner and starting in initial.
// The initial state does not need to be registered. A nil owner leaves the
// machine detached until Attach is called.
func New[S comparable, O any](owner *O, initial S) *StateMachine[S, O] {
	return &StateMachine[S, O]{
		owner:        owner,
		initial:      initial,
		current:      initial,
		states:       g.NewMap[S, Callbacks[O]](),
		order:        g.NewSlice[S](),
		onTransition: g.NewSlice[TransitionHook[S]](),
	}
}

// Clone creates a new machine bound to owner, in the initial state, with a
// copy of the registrations and transition hooks.
// Later registrations on either machine do not affect the other.
func (m *StateMachine[S, O]) Clone(owner *O) *StateMachine[S, O] {
	return &StateMachine[S, O]{
		owner:        owner,
		initial:      m.initial,
		current:      m.initial,
		states:       maps.Clone(m.states),
		order:        m.order.Clone(),
		onTransition: m.onTransition.Clone(),
	}
}

// Attach binds the machine to owner, replacing any previous owner.
// Attaching nil is the same as Detach.
func (m *StateMachine[S, O]) Attach(owner *O) *StateMachine[S, O] {
	m.owner = owner
	return m
}

// Detach clears the owner. Until a new owner is attached, ChangeState and
// Tick return NullOwner without side effects.
func (m *StateMachine[S, O]) Detach() *StateMachine[S, O] {
	m.owner = nil
	return m
}

// Owner returns the attached owner, if any.
func (m *StateMachine[S, O]) Owner() g.Option[*O] {
	if m.owner == nil {
		return g.None[*O]()
	}

	return g.Some(m.owner)
}

// HasOwner reports whether an owner is attached.
func (m *StateMachine[S, O]) HasOwner() bool { return m.owner != nil }

// RegisterState stores the callbacks for state. Any of them may be nil.
// Registering a state again replaces all three callbacks.
func (m *StateMachine[S, O]) RegisterState(
	state S,
	onEnter EnterFunc[O],
	onUpdate UpdateFunc[O],
	onExit ExitFunc[O],
) *StateMachine[S, O] {
	return m.Register(state, Callbacks[O]{OnEnter: onEnter, OnUpdate: onUpdate, OnExit: onExit})
}

// Register stores the callback record for state, replacing any previous one.
func (m *StateMachine[S, O]) Register(state S, cbs Callbacks[O]) *StateMachine[S, O] {
	if !m.states.Contains(state) {
		m.order.Push(state)
	}

	m.states[state] = cbs

	return m
}

// RegisterBehavior registers the methods of b as the callbacks for state.
// A nil behavior registers the state with no callbacks.
func (m *StateMachine[S, O]) RegisterBehavior(state S, b Behavior[O]) *StateMachine[S, O] {
	if b == nil {
		return m.Register(state, Callbacks[O]{})
	}

	return m.Register(state, Callbacks[O]{OnEnter: b.Enter, OnUpdate: b.Update, OnExit: b.Exit})
}

// Unregister removes the callbacks of state. The current state is left as is.
func (m *StateMachine[S, O]) Unregister(state S) *StateMachine[S, O] {
	if !m.states.Contains(state) {
		return m
	}

	delete(m.states, state)
	m.order = slices.DeleteFunc(m.order, func(s S) bool { return s == state })

	return m
}

// OnTransition registers a global transition hook. A nil hook is ignored.
func (m *StateMachine[S, O]) OnTransition(hook TransitionHook[S]) *StateMachine[S, O] {
	if hook == nil {
		return m
	}

	m.onTransition.Push(hook)
	return m
}

// Registered reports whether state has a registration record.
func (m *StateMachine[S, O]) Registered(state S) bool { return m.states.Contains(state) }

// Lookup returns the registration record of state, if any.
func (m *StateMachine[S, O]) Lookup(state S) g.Option[Callbacks[O]] { return m.states.Get(state) }

// States returns the registered states in the order they were first registered.
func (m *StateMachine[S, O]) States() g.Slice[S] { return m.order.Clone() }

// Current returns the current state.
func (m *StateMachine[S, O]) Current() S { return m.current }

// SetState sets the current state manually, without triggering any callbacks.
// It works whether or not an owner is attached.
func (m *StateMachine[S, O]) SetState(state S) { m.current = state }

// Reset returns the machine to the state it was created with, without
// triggering any callbacks. Registrations and the owner are kept.
func (m *StateMachine[S, O]) Reset() { m.current = m.initial }

// ChangeState transitions to next.
//
// Without an owner it returns NullOwner and does nothing. If next is already
// the current state it returns StateUnchanged and runs no callbacks.
// Otherwise the exit callback of the current state runs to completion, the
// current state becomes next, the transition hooks run, then the enter
// callback of next runs, and StateChanged is returned. Unregistered states
// behave as states with no callbacks.
//
// Both callbacks receive the owner attached when ChangeState was called.
// Callbacks may call back into the machine; nested transitions are processed
// in place and are not guarded against loops. If a transition hook starts
// another transition, that nested ChangeState has already entered its own
// target, so the enter callback of next is skipped.
func (m *StateMachine[S, O]) ChangeState(next S) Status {
	owner := m.owner
	if owner == nil {
		return NullOwner
	}

	if next == m.current {
		return StateUnchanged
	}

	previous := m.current

	if exit := m.states[previous].OnExit; exit != nil {
		exit(owner)
	}

	m.current = next
	m.transitions++
	seq := m.transitions

	for _, hook := range m.onTransition {
		hook(previous, next)
	}

	if m.transitions != seq {
		return StateChanged
	}

	if enter := m.states[next].OnEnter; enter != nil {
		enter(owner)
	}

	return StateChanged
}

// Tick runs the update callback of the current state with deltaTime.
//
// Without an owner it returns NullOwner. Otherwise it returns TickSuccess,
// including when the current state has no update callback, in which case
// nothing runs.
func (m *StateMachine[S, O]) Tick(deltaTime float64) Status {
	if m.owner == nil {
		return NullOwner
	}

	if update := m.states[m.current].OnUpdate; update != nil {
		update(m.owner, deltaTime)
	}

	return TickSuccess
}
