/*
Package grammar implements formal grammars, their classification
by the Chomsky hierarchy and random sentence generation.

A grammar G = (V_N, V_T, P, S) consists of disjoint sets of non-terminal and
terminal symbols, a set of productions and a start symbol. Symbols are
single runes. A production rewrites a left-hand side (one or more symbols)
to a right-hand side, a possibly empty string of symbols:

   S → dA | dC
   A → d  | aB
   B → bC
   C → cA | aS

Classification

Classification inspects the shape of every production once and folds the
shapes into the most restrictive Chomsky type the grammar satisfies. Type 3
accepts the extended linear forms, i.e. a right-hand side may carry more
than one terminal in front of (right-linear) or after (left-linear) its single
non-terminal, as long as the grammar does not mix both forms.

Generation

Sentences are generated by a random walk from the start symbol. This
requires a right-linear grammar and terminates only if a terminal-only
production is reachable from every non-terminal visited.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026, the chomsky authors
*/
package grammar

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
