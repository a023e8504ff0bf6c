package statemachine_test

import (
	"fmt"

	sm "github.com/enetx/statemachine"
)

type door struct{ open bool }

func (d *door) Open() { d.open = true }
func (d *door) Close() { d.open = false }

func ExampleStateMachine_ChangeState() {
	d := &door{}

	m := sm.New(d, "closed").
		RegisterState("open", (*door).Open, nil, (*door).Close)

	fmt.Println(m.ChangeState("open"), d.open)
	fmt.Println(m.ChangeState("open"), d.open)
	fmt.Println(m.ChangeState("closed"), d.open)
	fmt.Println(m.Detach().ChangeState("open"), d.open)
	// Output:
	// StateChanged true
	// StateUnchanged true
	// StateChanged false
	// NullOwner false
}

func ExampleStateMachine_Tick() {
	type ship struct{ x float64 }

	s := &ship{}
	m := sm.New(s, "cruise").
		RegisterState("cruise", nil, func(s *ship, dt float64) { s.x += 10 * dt }, nil)

	for range 4 {
		m.Tick(0.25)
	}

	fmt.Println(s.x)
	// Output:
	// 10
}
