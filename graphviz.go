package statemachine

import (
	"fmt"
	"strconv"

	"github.com/enetx/g"
)

// ToDOT generates a DOT language string representation of the state machine for visualization.
// Every state can reach every other one, so only states are drawn: the current
// state is highlighted, unregistered ones are dashed, and each node tooltip lists
// its bound callbacks.
func (m *StateMachine[S, O]) ToDOT() g.String {
	b := g.NewBuilder()

	b.WriteString("digraph StateMachine {\n")
	b.WriteString("  rankdir=LR;\n")
	b.WriteString(
		"  node [shape=circle, style=filled, fillcolor=\"#f8f8f8\", color=\"#444444\", fontname=\"Helvetica\"];\n",
	)
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=10];\n\n")

	b.WriteString("  __start [shape=point, style=invis];\n")
	b.WriteString(g.Format("  __start -> {} [label=\" initial\"];\n\n", dotID(m.initial)))

	nodes := m.order.Clone()
	for _, extra := range []S{m.initial, m.current} {
		if !nodes.Contains(extra) {
			nodes.Push(extra)
		}
	}

	for _, state := range nodes {
		var attrs g.Slice[g.String]
		attrs.Push(g.Format("label={}", dotID(state)))

		cbs, registered := m.states[state]

		switch {
		case state == m.current:
			attrs.Push("fillcolor=\"#90ee90\"", "shape=doublecircle")
		case !registered:
			attrs.Push("style=dashed")
		}

		var tooltips g.Slice[g.String]

		if cbs.OnEnter != nil {
			tooltips.Push("OnEnter")
		}

		if cbs.OnUpdate != nil {
			tooltips.Push("OnUpdate")
		}

		if cbs.OnExit != nil {
			tooltips.Push("OnExit")
		}

		if tooltips.NotEmpty() {
			attrs.Push(g.Format("tooltip=\"{}\"", tooltips.Join("\\n")))
		}

		b.WriteString(g.Format("  {} [{}];\n", dotID(state), attrs.Join(", ")))
	}

	b.WriteString("}\n")

	return b.String()
}

// dotID renders a state as a quoted DOT identifier.
func dotID[S comparable](state S) g.String {
	return g.String(strconv.Quote(fmt.Sprint(state)))
}
