package grammar

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/chomsky"
)

// Epsilon is an alternative way to write an empty right-hand side.
const Epsilon = "ε"

// ErrMalformedGrammar is returned by New for inconsistent grammar data.
var ErrMalformedGrammar = errors.New("malformed grammar")

// Grammar is a formal grammar G = (V_N, V_T, P, S).
//
// Grammars are immutable. They are created by New, which copies all its
// arguments, and every accessor returns a copy of the internal data.
type Grammar struct {
	nonTerminals map[rune]struct{}
	terminals    map[rune]struct{}
	productions  map[string][]string // LHS → ordered list of RHS
	start        rune
	table        []Production // shapes, computed once
}

// New creates a grammar from non-terminals V_N, terminals V_T, a production
// table and a start symbol.
//
// Right-hand sides "" and Epsilon both denote the empty word. Duplicate
// right-hand sides for the same left-hand side are dropped, otherwise the
// order of right-hand sides is preserved. All symbols are NFC-normalized one
// by one (see chomsky.NormSymbol), so a combining mark remains a symbol of
// its own.
//
// New returns an error wrapping ErrMalformedGrammar if V_N and V_T are not
// disjoint, if two distinct symbols have the same normal form, if the start
// symbol is not a non-terminal, or if a production uses an unknown symbol.
func New(nonTerminals, terminals []rune, productions map[string][]string, start rune) (*Grammar, error) {
	g := &Grammar{
		nonTerminals: make(map[rune]struct{}, len(nonTerminals)),
		terminals:    make(map[rune]struct{}, len(terminals)),
		productions:  make(map[string][]string, len(productions)),
	}
	given := make(map[rune]rune) // normalized symbol → symbol handed to New
	symbol := func(r rune) (rune, error) {
		n := chomsky.NormSymbol(r)
		if o, ok := given[n]; ok && o != r {
			return 0, fmt.Errorf("%w: symbols %q and %q normalize to the same symbol %q",
				ErrMalformedGrammar, o, r, n)
		}
		given[n] = r
		return n, nil
	}
	for _, r := range nonTerminals {
		n, err := symbol(r)
		if err != nil {
			return nil, err
		}
		g.nonTerminals[n] = struct{}{}
	}
	for _, r := range terminals {
		t, err := symbol(r)
		if err != nil {
			return nil, err
		}
		if g.IsNonTerminal(t) {
			return nil, fmt.Errorf("%w: symbol %q is both terminal and non-terminal", ErrMalformedGrammar, t)
		}
		g.terminals[t] = struct{}{}
	}
	g.start = chomsky.NormSymbol(start)
	if !g.IsNonTerminal(g.start) {
		return nil, fmt.Errorf("%w: start symbol %q is not a non-terminal", ErrMalformedGrammar, start)
	}
	for lhs, rhss := range productions {
		lhs = chomsky.NormSymbols(lhs)
		if lhs == "" || lhs == Epsilon {
			return nil, fmt.Errorf("%w: empty left-hand side", ErrMalformedGrammar)
		}
		if r, ok := g.knownSymbols(lhs); !ok {
			return nil, fmt.Errorf("%w: unknown symbol %q in left-hand side %q", ErrMalformedGrammar, r, lhs)
		}
		list := g.productions[lhs]
		for _, rhs := range rhss {
			rhs = chomsky.NormSymbols(rhs)
			if rhs == Epsilon {
				rhs = ""
			}
			if r, ok := g.knownSymbols(rhs); !ok {
				return nil, fmt.Errorf("%w: unknown symbol %q in production %s → %s",
					ErrMalformedGrammar, r, lhs, rhs)
			}
			if !contains(list, rhs) {
				list = append(list, rhs)
			}
		}
		g.productions[lhs] = list
	}
	g.table = g.shapeTable()
	tracer().Debugf("created grammar with %d non-terminals, %d terminals and %d productions",
		len(g.nonTerminals), len(g.terminals), len(g.table))
	return g, nil
}

// knownSymbols checks that every symbol of s is in V_N ∪ V_T. If not, it
// returns the first offending symbol.
func (g *Grammar) knownSymbols(s string) (rune, bool) {
	for _, r := range s {
		if !g.IsNonTerminal(r) && !g.IsTerminal(r) {
			return r, false
		}
	}
	return 0, true
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}

// IsNonTerminal is true if r ∈ V_N.
func (g *Grammar) IsNonTerminal(r rune) bool {
	_, ok := g.nonTerminals[r]
	return ok
}

// IsTerminal is true if r ∈ V_T.
func (g *Grammar) IsTerminal(r rune) bool {
	_, ok := g.terminals[r]
	return ok
}

// NonTerminals returns V_N in ascending order.
func (g *Grammar) NonTerminals() []rune {
	return sortedRunes(g.nonTerminals)
}

// Terminals returns V_T in ascending order.
func (g *Grammar) Terminals() []rune {
	return sortedRunes(g.terminals)
}

// Start returns the start symbol.
func (g *Grammar) Start() rune {
	return g.start
}

// LHS returns all left-hand sides of productions. The start symbol comes
// first, all other left-hand sides follow in lexicographic order.
func (g *Grammar) LHS() []string {
	lhss := make([]string, 0, len(g.productions))
	start := string(g.start)
	for lhs := range g.productions {
		if lhs != start {
			lhss = append(lhss, lhs)
		}
	}
	sort.Strings(lhss)
	if _, ok := g.productions[start]; ok {
		lhss = append([]string{start}, lhss...)
	}
	return lhss
}

// Productions returns the right-hand sides for lhs, in the order they
// were given to New. The empty word is represented by "".
func (g *Grammar) Productions(lhs string) []string {
	rhss := g.productions[lhs]
	if rhss == nil {
		return nil
	}
	return append([]string(nil), rhss...)
}

// ProductionTable returns a copy of all productions.
func (g *Grammar) ProductionTable() map[string][]string {
	p := make(map[string][]string, len(g.productions))
	for lhs, rhss := range g.productions {
		p[lhs] = append([]string(nil), rhss...)
	}
	return p
}

// isSingleNonTerminal is true if s consists of exactly one non-terminal.
func (g *Grammar) isSingleNonTerminal(s string) bool {
	if utf8.RuneCountInString(s) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return g.IsNonTerminal(r)
}

func (g *Grammar) String() string {
	var b strings.Builder
	b.WriteString("Grammar:\n")
	fmt.Fprintf(&b, "  Non-terminals (V_N): %s\n", runeList(g.NonTerminals()))
	fmt.Fprintf(&b, "  Terminals (V_T): %s\n", runeList(g.Terminals()))
	fmt.Fprintf(&b, "  Start symbol: %c\n", g.start)
	b.WriteString("  Productions:")
	for _, lhs := range g.LHS() {
		rhss := g.Productions(lhs)
		for i, rhs := range rhss {
			if rhs == "" {
				rhss[i] = Epsilon
			}
		}
		fmt.Fprintf(&b, "\n    %s → %s", lhs, strings.Join(rhss, " | "))
	}
	return b.String()
}

// --- Helpers ----------------------------------------------------------

func sortedRunes(set map[rune]struct{}) []rune {
	runes := make([]rune, 0, len(set))
	for r := range set {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return runes
}

func runeList(runes []rune) string {
	s := make([]string, len(runes))
	for i, r := range runes {
		s[i] = string(r)
	}
	return "{" + strings.Join(s, ", ") + "}"
}
