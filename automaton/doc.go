/*
Package automaton implements finite automata over single-rune alphabets.

An Automaton may be non-deterministic: a transition maps a pair
(state, symbol) to a set of destination states. Membership is tested by
simulating all runs at once, propagating the frontier of states reachable
after each prefix of the input. ToDFA creates an equivalent deterministic
automaton by subset construction.

Automata and regular grammars are converted into each other by
ToRegularGrammar and FromGrammar:

   δ(q, a) = p           ⇔   Q → aP
   δ(q, a) = p, p ∈ F    ⇔   Q → a

Deterministic automata created by ToDFA are partial: a pair (state, symbol)
without any successor has no transition, instead of leading into a
rejecting sink state.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026, the chomsky authors
*/
package automaton

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
