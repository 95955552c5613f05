/*
Package chomsky is about finite automata, formal grammars and the
classic conversions between them.

Description

A finite automaton is a finite-state transition system over an alphabet
of input symbols, with a single start state and a set of accepting (final)
states. A grammar is a production system over non-terminal and terminal
symbols. Both describe formal languages, and for regular languages the two
representations may be converted into each other.

From the Chomsky hierarchy of grammars:

   Type 0   unrestricted          α → β
   Type 1   context-sensitive     α → β  with |α| ≤ |β|, β ≠ ε
   Type 2   context-free          A → β
   Type 3   regular               A → aB | a   (or A → Ba | a)

Regular grammars (Type 3) and finite automata accept the same class of
languages. Every non-deterministic finite automaton (NFA) has an equivalent
deterministic one (DFA), which may be found by subset construction.

BSD License

Copyright (c) 2026, the chomsky authors

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

Contents

The algorithms live in sub-packages. Package grammar holds grammars,
their classification and sentence generation. Package automaton holds
finite automata, membership testing, the determinism check, subset
construction and the conversions from and to regular grammars. Package dot
renders automata for Graphviz.

Base package chomsky provides the helper type used by the automaton
algorithms: a Frontier is the set of states an automaton may currently be
in. Simulating an NFA without backtracking means propagating a frontier
symbol by symbol:

   F₀ = { q₀ }
   Fᵢ₊₁ = ⋃ δ(q, aᵢ)   for all q ∈ Fᵢ

Frontiers are short-lived and are used in pairs, so we pool them.

Immutability

Automata and grammars are values. Constructors copy their input and
accessors hand out copies, so instances may be shared between goroutines
without locking. Conversions always create new instances.
*/
package chomsky

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// CT traces to the core-tracer.
func CT() tracing.Trace {
	return gtrace.CoreTracer
}
