package statemachine_test

import (
	"testing"

	sm "github.com/enetx/statemachine"
)

func TestStateMachine_ToDOT(t *testing.T) {
	m := newEnemyMachine(&enemy{})
	m.ChangeState(moving)
	m.SetState(attacking)

	dot := m.ToDOT()

	assertTrue(t, dot.Contains("digraph StateMachine {\n"))
	assertTrue(t, dot.Contains(`__start -> "0" [label=" initial"];`))
	assertTrue(t, dot.Contains(`"0" [label="0", tooltip="OnEnter\nOnUpdate\nOnExit"];`))
	assertTrue(t, dot.Contains(`"1" [label="1", tooltip="OnEnter\nOnUpdate"];`))
	assertTrue(t, dot.Contains(`"2" [label="2", fillcolor="#90ee90", shape=doublecircle];`))
}

func TestStateMachine_ToDOTUnregisteredInitial(t *testing.T) {
	m := sm.New(&enemy{}, "boot").
		RegisterState("run", nil, nil, nil)
	m.SetState("run")

	dot := m.ToDOT()

	assertTrue(t, dot.Contains(`"boot" [label="boot", style=dashed];`))
	assertTrue(t, dot.Contains(`"run" [label="run", fillcolor="#90ee90", shape=doublecircle];`))
}
