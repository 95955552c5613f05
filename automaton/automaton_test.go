package automaton

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// variant20 is the 4-state NFA from lab 2, variant 20.
func variant20(t *testing.T) *Automaton {
	fa, err := New(
		[]string{"q0", "q1", "q2", "q3"},
		[]rune("abc"),
		map[Key][]string{
			{"q0", 'a'}: {"q0", "q1"},
			{"q1", 'b'}: {"q2"},
			{"q2", 'a'}: {"q2"},
			{"q2", 'c'}: {"q3"},
			{"q3", 'c'}: {"q3"},
		},
		"q0",
		[]string{"q3"},
	)
	if err != nil {
		t.Fatalf("cannot create variant 20 NFA: %v", err)
	}
	return fa
}

// words returns all words over alphabet with length up to n.
func words(alphabet []rune, n int) []string {
	all := []string{""}
	level := []string{""}
	for i := 0; i < n; i++ {
		var next []string
		for _, w := range level {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		all = append(all, next...)
		level = next
	}
	return all
}

func TestNewAutomaton(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	fa := variant20(t)
	if got := strings.Join(fa.States(), ","); got != "q0,q1,q2,q3" {
		t.Errorf("expected states q0…q3, have %s", got)
	}
	if string(fa.Alphabet()) != "abc" {
		t.Errorf("expected alphabet abc, have %s", string(fa.Alphabet()))
	}
	if fa.Start() != "q0" || !fa.IsFinal("q3") || fa.IsFinal("q0") {
		t.Errorf("start or final states are wrong")
	}
	if len(fa.Keys()) != 5 {
		t.Errorf("expected 5 transitions, have %d", len(fa.Keys()))
	}
	if !strings.Contains(fa.String(), "δ(q0, a) = {q0, q1}") {
		t.Errorf("expected δ(q0, a) in listing:\n%s", fa)
	}
	t.Logf("\n%s", fa)
}

func TestAutomatonIsImmutable(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	delta := map[Key][]string{{"q0", 'a'}: {"q1"}}
	fa, err := New([]string{"q0", "q1"}, []rune("a"), delta, "q0", []string{"q1"})
	if err != nil {
		t.Fatal(err)
	}
	delta[Key{"q0", 'a'}][0] = "q0"
	delta[Key{"q1", 'a'}] = []string{"q1"}
	fa.Transitions()[Key{"q0", 'a'}][0] = "q0"
	fa.Destinations("q0", 'a')[0] = "q0"
	if !fa.Accepts("a") || fa.Accepts("aa") {
		t.Error("automaton has been changed from the outside")
	}
}

func TestMergedDestinations(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	fa, err := New([]string{"q0", "q1"}, []rune("ab"), map[Key][]string{
		{"q0", 'a'}: {"q1", "q1"},
		{"q0", 'b'}: {},
	}, "q0", []string{"q1"})
	if err != nil {
		t.Fatal(err)
	}
	if !fa.IsDeterministic() {
		t.Error("duplicate destinations should be merged")
	}
	if fa.Destinations("q0", 'b') != nil {
		t.Error("transition without destinations should be dropped")
	}
}

func TestMalformedAutomaton(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	states := []string{"q0", "q1"}
	tests := []struct {
		name   string
		delta  map[Key][]string
		start  string
		finals []string
	}{
		{"start", nil, "q9", nil},
		{"final", nil, "q0", []string{"q9"}},
		{"from", map[Key][]string{{"q9", 'a'}: {"q1"}}, "q0", nil},
		{"to", map[Key][]string{{"q0", 'a'}: {"q9"}}, "q0", nil},
		{"symbol", map[Key][]string{{"q0", 'z'}: {"q1"}}, "q0", nil},
	}
	for _, test := range tests {
		_, err := New(states, []rune("a"), test.delta, test.start, test.finals)
		if !errors.Is(err, ErrMalformedAutomaton) {
			t.Errorf("%s: expected ErrMalformedAutomaton, have %v", test.name, err)
		}
	}
}

func TestNormalizedSymbols(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	// U+212B ANGSTROM SIGN normalizes to U+00C5
	fa, err := New([]string{"q0", "q1"}, []rune{'\u212b'}, map[Key][]string{
		{"q0", '\u212b'}: {"q1"},
	}, "q0", []string{"q1"})
	if err != nil {
		t.Fatal(err)
	}
	if !fa.InAlphabet('\u00c5') {
		t.Errorf("expected alphabet to contain U+00C5, is %q", fa.Alphabet())
	}
	for _, input := range []string{"\u212b", "\u00c5"} {
		if !fa.Accepts(input) {
			t.Errorf("expected %+q to be accepted", input)
		}
	}
	if fa.Accepts("A\u030a") {
		t.Error("expected A + U+030A to be read as two symbols")
	}
}
