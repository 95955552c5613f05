package automaton

import (
	"fmt"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/chomsky"
)

// ToDFA creates a deterministic automaton accepting the same language as a,
// by subset construction.
//
// States of the DFA are sets of states of a. Starting with {q₀}, every set
// S not yet processed is advanced by every symbol of the alphabet. The
// resulting set T becomes a new DFA state, if it has not been seen before,
// and δ'(S, a) = T is recorded. An empty T results in no transition, thus
// the DFA will be partial. A DFA state is final if it contains a final
// state of a.
//
// DFA states are named D0, D1, … in order of their size and then of their
// sorted content. The map returned along with the DFA tells the set of
// states of a for every DFA state.
func (a *Automaton) ToDFA() (*Automaton, map[string]StateSet) {
	alphabet := a.Alphabet()
	start := NewStateSet(a.start)
	discovered := map[string]StateSet{start.Key(): start}
	type transition struct {
		from, to StateSet
		symbol   rune
	}
	var transitions []transition
	worklist := linkedlistqueue.New()
	worklist.Enqueue(start)
	frontier := chomsky.NewPooledFrontier()
	next := chomsky.NewPooledFrontier()
	defer func() {
		frontier.Release()
		next.Release()
	}()
	for !worklist.Empty() {
		v, _ := worklist.Dequeue()
		subset := v.(StateSet)
		frontier.Clear()
		frontier.Add(subset.Values()...)
		for _, symbol := range alphabet {
			frontier.Advance(a.delta, symbol, next)
			if next.Empty() {
				continue
			}
			target := NewStateSet(next.Values()...)
			if seen, ok := discovered[target.Key()]; ok {
				target = seen
			} else {
				discovered[target.Key()] = target
				worklist.Enqueue(target)
				tracer().Debugf("subset construction: %v --%c--> %v (new)", subset, symbol, target)
			}
			transitions = append(transitions, transition{from: subset, to: target, symbol: symbol})
		}
	}
	// name DFA states by rank
	ranked := treeset.NewWith(compareStateSets)
	for _, subset := range discovered {
		ranked.Add(subset)
	}
	names := make(map[string]string, ranked.Size())
	subsets := make(map[string]StateSet, ranked.Size())
	states := make([]string, 0, ranked.Size())
	var finals []string
	for i, v := range ranked.Values() {
		subset := v.(StateSet)
		name := fmt.Sprintf("D%d", i)
		names[subset.Key()] = name
		subsets[name] = subset
		states = append(states, name)
		if subset.Intersects(a.IsFinal) {
			finals = append(finals, name)
		}
		tracer().Debugf("subset construction: %s = %v", name, subset)
	}
	dfaDelta := make(map[Key][]string, len(transitions))
	for _, t := range transitions {
		dfaDelta[Key{From: names[t.from.Key()], Symbol: t.symbol}] = []string{names[t.to.Key()]}
	}
	dfa, err := New(states, alphabet, dfaDelta, names[start.Key()], finals)
	if err != nil { // cannot happen, all states have been discovered
		panic(err)
	}
	tracer().Infof("subset construction created DFA with %d states from NFA with %d states",
		len(states), len(a.states))
	return dfa, subsets
}
