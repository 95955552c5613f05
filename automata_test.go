package chomsky

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// --- ad hoc type for testing purposes----------------------------------

type delta map[string]map[rune][]string // will implement Delta

func (d delta) Destinations(state string, symbol rune) []string {
	return d[state][symbol]
}

// ----------------------------------------------------------------------

func TestFrontier1(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	f := NewFrontier()
	if !f.Empty() {
		t.Error("new frontier without states should be empty")
	}
	f.Add("q1", "q0", "q1")
	if f.Size() != 2 {
		t.Errorf("frontier should contain 2 states, has %d", f.Size())
	}
	if !f.Contains("q0") || f.Contains("q2") {
		t.Errorf("frontier membership is wrong: %v", f)
	}
	if f.String() != "{q0, q1}" {
		t.Errorf("expected frontier to print as {q0, q1}, is %s", f)
	}
	f.Clear()
	if !f.Empty() {
		t.Error("cleared frontier should be empty")
	}
}

func TestFrontierAdvance(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	d := delta{
		"q0": {'a': {"q0", "q1"}},
		"q1": {'b': {"q2"}},
	}
	f := NewPooledFrontier("q0")
	defer f.Release()
	next := NewPooledFrontier()
	defer next.Release()
	f.Advance(d, 'a', next)
	if got := next.String(); got != "{q0, q1}" {
		t.Errorf("expected {q0, q1} after reading 'a', have %s", got)
	}
	next.Advance(d, 'b', f)
	if got := f.String(); got != "{q2}" {
		t.Errorf("expected {q2} after reading 'b', have %s", got)
	}
	f.Advance(d, 'b', next)
	if !next.Empty() {
		t.Errorf("expected automaton to die on 'b' in q2, frontier is %s", next)
	}
	if !f.Intersects(func(s string) bool { return s == "q2" }) {
		t.Error("frontier {q2} should intersect with {q2}")
	}
}

func TestPooledFrontierIsCleared(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	f := NewPooledFrontier("q0", "q7")
	f.Release()
	g := NewPooledFrontier()
	defer g.Release()
	if !g.Empty() {
		t.Errorf("frontier fresh from the pool should be empty, is %s", g)
	}
}
