package automaton

import (
	"github.com/npillmayer/chomsky"
)

// Accepts is true if the automaton accepts input.
//
// All runs of a non-deterministic automaton are simulated at once: starting
// from {q₀}, every input symbol advances the frontier of reachable states.
// If the frontier ever becomes empty, input is rejected immediately. After
// the last symbol, input is accepted if the frontier contains a final state.
// Consequently the empty input is accepted if and only if q₀ ∈ F.
//
// Every rune of input is a symbol. Symbols are normalized one by one, as by
// New; neighbouring runes never compose, so a combining mark is read as a
// symbol of its own.
func (a *Automaton) Accepts(input string) bool {
	current := chomsky.NewPooledFrontier(a.start)
	next := chomsky.NewPooledFrontier()
	defer func() {
		current.Release()
		next.Release()
	}()
	for _, r := range input {
		symbol := chomsky.NormSymbol(r)
		current.Advance(a.delta, symbol, next)
		current, next = next, current
		if current.Empty() {
			tracer().Debugf("no move on %q, rejecting %q", symbol, input)
			return false
		}
		tracer().Debugf("read %q, frontier = %v", symbol, current)
	}
	return current.Intersects(a.IsFinal)
}

// IsDeterministic is true if every transition has exactly one destination.
// Missing transitions are permitted, i.e. δ may be a partial function.
func (a *Automaton) IsDeterministic() bool {
	for _, dests := range a.delta {
		if len(dests) != 1 {
			return false
		}
	}
	return true
}

// NonDeterministicKeys returns the keys of all transitions with more than one
// destination, ordered by state and symbol.
func (a *Automaton) NonDeterministicKeys() []Key {
	var keys []Key
	for k, dests := range a.delta {
		if len(dests) > 1 {
			keys = append(keys, k)
		}
	}
	sortKeys(keys)
	return keys
}
