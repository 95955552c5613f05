package automaton

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/chomsky/grammar"
)

// StartSymbol is the non-terminal the start state maps to in ToRegularGrammar,
// unless it is an input symbol of the automaton.
const StartSymbol = 'S'

// AcceptState is the name of the single final state of an automaton created
// by FromGrammar, unless it is already used as a non-terminal.
const AcceptState = "X"

// ToRegularGrammar creates a right-linear grammar generating the language of a.
//
// Every state is mapped to a non-terminal: the start state to StartSymbol,
// all other states, in lexicographic order, to upper-case letters A, B, …
// skipping StartSymbol, any symbol of the alphabet and any rune which is not
// its own normal form. Automata with more states than there are upper-case
// letters continue with runes of the private use areas. The map of states to
// non-terminals is returned along with the grammar; it is a bijection.
//
// For every transition δ(q, a) ∋ p the grammar has a production Q → aP, and
// an additional production Q → a if p is final. No ε-production is created
// for a final start state.
func (a *Automaton) ToRegularGrammar() (*grammar.Grammar, map[string]rune) {
	nt := a.nonTerminals()
	productions := make(map[string][]string, len(nt))
	for _, key := range a.Keys() {
		lhs := string(nt[key.From])
		for _, p := range a.delta[key] {
			productions[lhs] = append(productions[lhs], string(key.Symbol)+string(nt[p]))
			if a.IsFinal(p) {
				productions[lhs] = append(productions[lhs], string(key.Symbol))
			}
		}
	}
	nonTerminals := make([]rune, 0, len(nt))
	for _, n := range nt {
		nonTerminals = append(nonTerminals, n)
	}
	g, err := grammar.New(nonTerminals, a.Alphabet(), productions, nt[a.start])
	if err != nil { // cannot happen, non-terminals and alphabet are disjoint
		panic(err)
	}
	return g, nt
}

// nonTerminals maps states to non-terminals, start state first.
func (a *Automaton) nonTerminals() map[string]rune {
	nt := make(map[string]rune, len(a.states))
	candidate, upper := 'A'-1, true
	fresh := func() rune {
		for {
			candidate++
			if candidate > unicode.MaxRune {
				if !upper {
					panic("automaton has more states than there are symbols")
				}
				candidate, upper = 0, false
			}
			ok := unicode.Is(unicode.Co, candidate) // private use
			if upper {
				ok = unicode.IsUpper(candidate)
			}
			if ok && candidate != StartSymbol && chomsky.IsNormSymbol(candidate) && !a.InAlphabet(candidate) {
				return candidate
			}
		}
	}
	if a.InAlphabet(StartSymbol) {
		nt[a.start] = fresh()
	} else {
		nt[a.start] = StartSymbol
	}
	for _, q := range a.States() {
		if q != a.start {
			nt[q] = fresh()
		}
	}
	for q, n := range nt {
		tracer().Debugf("state %s → non-terminal %c", q, n)
	}
	return nt
}

// FromGrammar creates an automaton accepting the language generated by a
// right-linear grammar.
//
// States are the non-terminals of g plus a single final state, named
// AcceptState or, if this is a non-terminal, AcceptState with primes
// appended. The start state is the start symbol of g. Productions are
// converted to transitions:
//
//     A → a     ⇒   δ(A, a) ∋ accept
//     A → aB    ⇒   δ(A, a) ∋ B
//
// Extended productions A → a₁…aₙB and A → a₁…aₙ are split into chains of
// transitions over fresh intermediate states A.1, A.2, … which are not final.
// Productions of any other shape cannot be converted; they are skipped and
// reported to the tracer.
func FromGrammar(g *grammar.Grammar) *Automaton {
	accept := AcceptState
	for {
		r, _ := utf8.DecodeRuneInString(accept)
		if utf8.RuneCountInString(accept) != 1 || !g.IsNonTerminal(r) {
			break
		}
		accept += "'"
	}
	states := []string{accept}
	for _, n := range g.NonTerminals() {
		states = append(states, string(n))
	}
	transitions := make(map[Key][]string)
	intermediates := make(map[string]int)
	for _, p := range g.Shapes() {
		r, _ := utf8.DecodeRuneInString(p.LHS)
		if utf8.RuneCountInString(p.LHS) != 1 || !g.IsNonTerminal(r) ||
			(p.Shape != grammar.ShapeTerminal && p.Shape != grammar.ShapeRightLinear) {
			tracer().Errorf("cannot convert %s production %s → %s to transitions", p.Shape, p.LHS, p.RHS)
			continue
		}
		terminals := []rune(p.RHS)
		target := accept
		if p.Shape == grammar.ShapeRightLinear {
			target = string(terminals[len(terminals)-1])
			terminals = terminals[:len(terminals)-1]
		}
		from := p.LHS
		for i, a := range terminals {
			to := target
			if i < len(terminals)-1 {
				intermediates[p.LHS]++
				to = fmt.Sprintf("%s.%d", p.LHS, intermediates[p.LHS])
				states = append(states, to)
			}
			key := Key{From: from, Symbol: a}
			transitions[key] = append(transitions[key], to)
			from = to
		}
	}
	fa, err := New(states, g.Terminals(), transitions, string(g.Start()), []string{accept})
	if err != nil { // cannot happen for a well-formed grammar
		panic(err)
	}
	return fa
}
