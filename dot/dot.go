/*
Package dot renders finite automata in the DOT language of Graphviz.

The renderer is a pure consumer of an automaton's states, transitions,
start state and final states. Final states are drawn as double circles,
an arrow from an invisible node points to the start state, and all
transitions between the same pair of states are merged into a single
edge, labelled with the list of symbols:

   dot -Tpng nfa.dot > nfa.png

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package dot

import (
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/npillmayer/chomsky/automaton"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to the core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// entry is the name of the invisible node pointing to the start state.
// It is extended by underscores if a state has the same name.
const entry = "__start"

func entryNode(a *automaton.Automaton) string {
	node := entry
	for a.IsState(node) {
		node += "_"
	}
	return strconv.Quote(node)
}

type config struct {
	name    string
	rankdir string
	size    string
}

// Option configures Render.
type Option func(*config)

// Name sets the name of the digraph. The default is "finite_automaton".
func Name(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// Vertical lays out the graph from top to bottom instead of from left to right.
func Vertical() Option {
	return func(c *config) {
		c.rankdir = "TB"
	}
}

// Size sets the maximum drawing size in inches, e.g. "10,5".
// An empty size lets Graphviz decide.
func Size(size string) Option {
	return func(c *config) {
		c.size = size
	}
}

type edge struct {
	from, to string
}

// Render writes a as a DOT digraph to w.
func Render(w io.Writer, a *automaton.Automaton, opts ...Option) error {
	c := &config{name: "finite_automaton", rankdir: "LR", size: "10,5"}
	for _, opt := range opts {
		opt(c)
	}
	var b strings.Builder
	b.WriteString("digraph " + strconv.Quote(c.name) + " {\n")
	b.WriteString("  rankdir=" + c.rankdir + ";\n")
	if c.size != "" {
		b.WriteString("  size=" + strconv.Quote(c.size) + ";\n")
	}
	start := entryNode(a)
	b.WriteString("\n  " + start + " [shape=none, label=\"\"];\n")
	b.WriteString("  " + start + " -> " + strconv.Quote(a.Start()) + ";\n\n")
	for _, q := range a.States() {
		shape := "circle"
		if a.IsFinal(q) {
			shape = "doublecircle"
		}
		b.WriteString("  " + strconv.Quote(q) + " [shape=" + shape + "];\n")
	}
	labels := make(map[edge][]string)
	for _, k := range a.Keys() { // keys are sorted by symbol per state
		for _, to := range a.Destinations(k.From, k.Symbol) {
			e := edge{from: k.From, to: to}
			labels[e] = append(labels[e], string(k.Symbol))
		}
	}
	edges := make([]edge, 0, len(labels))
	for e := range labels {
		edges = append(edges, e)
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].from != edges[j].from {
			return edges[i].from < edges[j].from
		}
		return edges[i].to < edges[j].to
	})
	if len(edges) > 0 {
		b.WriteString("\n")
	}
	for _, e := range edges {
		label := strings.Join(labels[e], ", ")
		b.WriteString("  " + strconv.Quote(e.from) + " -> " + strconv.Quote(e.to) +
			" [label=" + strconv.Quote(label) + "];\n")
	}
	b.WriteString("}\n")
	T().Debugf("rendered %d states and %d edges to DOT", len(a.States()), len(edges))
	_, err := io.WriteString(w, b.String())
	return err
}
