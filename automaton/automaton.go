package automaton

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/chomsky"
)

// ErrMalformedAutomaton is returned by New for inconsistent automaton data.
var ErrMalformedAutomaton = errors.New("malformed automaton")

// Key is the left side of a transition δ(From, Symbol).
type Key struct {
	From   string
	Symbol rune
}

func (k Key) String() string {
	return fmt.Sprintf("δ(%s, %c)", k.From, k.Symbol)
}

// delta is the transition relation. Destinations are sorted and free of
// duplicates, and no key maps to an empty list.
type delta map[Key][]string

// Destinations is part of interface chomsky.Delta.
func (d delta) Destinations(state string, symbol rune) []string {
	return d[Key{From: state, Symbol: symbol}]
}

// Automaton is a finite automaton (Q, Σ, δ, q₀, F).
//
// Automata are immutable. They are created by New, which copies all its
// arguments, and every accessor returns a copy of the internal data.
type Automaton struct {
	states   map[string]struct{}
	alphabet map[rune]struct{}
	delta    delta
	start    string
	finals   map[string]struct{}
}

// New creates an automaton from states Q, alphabet Σ, transitions δ, a start
// state and final states F. A transition maps a Key to the set of its
// destination states; duplicate destinations are merged and keys with no
// destinations are dropped.
//
// Symbols are NFC-normalized one by one (see chomsky.NormSymbol), which
// matters only for the few runes with a singleton canonical decomposition,
// like U+212B ANGSTROM SIGN.
//
// New returns an error wrapping ErrMalformedAutomaton if the start state,
// a final state or a transition refers to an unknown state, or if a
// transition uses a symbol outside of the alphabet.
func New(states []string, alphabet []rune, transitions map[Key][]string,
	start string, finals []string) (*Automaton, error) {
	a := &Automaton{
		states:   make(map[string]struct{}, len(states)),
		alphabet: make(map[rune]struct{}, len(alphabet)),
		delta:    make(delta, len(transitions)),
		start:    start,
		finals:   make(map[string]struct{}, len(finals)),
	}
	for _, q := range states {
		a.states[q] = struct{}{}
	}
	for _, r := range alphabet {
		a.alphabet[chomsky.NormSymbol(r)] = struct{}{}
	}
	if !a.IsState(start) {
		return nil, fmt.Errorf("%w: start state %q is not a state", ErrMalformedAutomaton, start)
	}
	for _, q := range finals {
		if !a.IsState(q) {
			return nil, fmt.Errorf("%w: final state %q is not a state", ErrMalformedAutomaton, q)
		}
		a.finals[q] = struct{}{}
	}
	for key, dests := range transitions {
		key.Symbol = chomsky.NormSymbol(key.Symbol)
		if !a.IsState(key.From) {
			return nil, fmt.Errorf("%w: %s from unknown state", ErrMalformedAutomaton, key)
		}
		if !a.InAlphabet(key.Symbol) {
			return nil, fmt.Errorf("%w: %s reads unknown symbol", ErrMalformedAutomaton, key)
		}
		for _, p := range dests {
			if !a.IsState(p) {
				return nil, fmt.Errorf("%w: %s leads to unknown state %q", ErrMalformedAutomaton, key, p)
			}
		}
		if merged := union(a.delta[key], dests); len(merged) > 0 {
			a.delta[key] = merged
		}
	}
	tracer().Debugf("created automaton with %d states and %d transitions", len(a.states), len(a.delta))
	return a, nil
}

// union merges two lists of states into a new sorted list without duplicates.
func union(l1, l2 []string) []string {
	set := make(map[string]struct{}, len(l1)+len(l2))
	for _, q := range l1 {
		set[q] = struct{}{}
	}
	for _, q := range l2 {
		set[q] = struct{}{}
	}
	return sortedStates(set)
}

// IsState is true if q ∈ Q.
func (a *Automaton) IsState(q string) bool {
	_, ok := a.states[q]
	return ok
}

// InAlphabet is true if r ∈ Σ.
func (a *Automaton) InAlphabet(r rune) bool {
	_, ok := a.alphabet[r]
	return ok
}

// IsFinal is true if q ∈ F.
func (a *Automaton) IsFinal(q string) bool {
	_, ok := a.finals[q]
	return ok
}

// States returns Q in lexicographic order.
func (a *Automaton) States() []string {
	return sortedStates(a.states)
}

// Alphabet returns Σ in ascending order.
func (a *Automaton) Alphabet() []rune {
	runes := make([]rune, 0, len(a.alphabet))
	for r := range a.alphabet {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

// Start returns the start state.
func (a *Automaton) Start() string {
	return a.start
}

// Finals returns F in lexicographic order.
func (a *Automaton) Finals() []string {
	return sortedStates(a.finals)
}

// Keys returns the left sides of all transitions, ordered by state and
// then by symbol.
func (a *Automaton) Keys() []Key {
	keys := make([]Key, 0, len(a.delta))
	for k := range a.delta {
		keys = append(keys, k)
	}
	sortKeys(keys)
	return keys
}

// Destinations returns δ(state, symbol) in lexicographic order, or nil if
// there is no transition.
func (a *Automaton) Destinations(state string, symbol rune) []string {
	dests := a.delta.Destinations(state, symbol)
	if dests == nil {
		return nil
	}
	return append([]string(nil), dests...)
}

// Transitions returns a copy of δ.
func (a *Automaton) Transitions() map[Key][]string {
	t := make(map[Key][]string, len(a.delta))
	for k, dests := range a.delta {
		t[k] = append([]string(nil), dests...)
	}
	return t
}

func (a *Automaton) String() string {
	var b strings.Builder
	b.WriteString("Finite Automaton:\n")
	fmt.Fprintf(&b, "  States (Q): {%s}\n", strings.Join(a.States(), ", "))
	symbols := make([]string, 0, len(a.alphabet))
	for _, r := range a.Alphabet() {
		symbols = append(symbols, string(r))
	}
	fmt.Fprintf(&b, "  Alphabet (Σ): {%s}\n", strings.Join(symbols, ", "))
	fmt.Fprintf(&b, "  Start state (q0): %s\n", a.start)
	fmt.Fprintf(&b, "  Final states (F): {%s}\n", strings.Join(a.Finals(), ", "))
	b.WriteString("  Transitions (δ):")
	for _, k := range a.Keys() {
		fmt.Fprintf(&b, "\n    %s = {%s}", k, strings.Join(a.delta[k], ", "))
	}
	return b.String()
}

// --- Helpers ----------------------------------------------------------

func sortedStates(set map[string]struct{}) []string {
	states := make([]string, 0, len(set))
	for q := range set {
		states = append(states, q)
	}
	sort.Strings(states)
	return states
}

func sortKeys(keys []Key) {
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].From != keys[j].From {
			return keys[i].From < keys[j].From
		}
		return keys[i].Symbol < keys[j].Symbol
	})
}
