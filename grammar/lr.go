package grammar

import (
	"errors"
	"fmt"

	"github.com/npillmayer/gorgo/lr"
)

// ErrNotContextFree is returned when a grammar with a left-hand side other
// than a single non-terminal is handed to a context-free toolkit.
var ErrNotContextFree = errors.New("grammar is not context-free")

// LRGrammar exports a context-free grammar to gorgo's LR toolkit, e.g. for
// being analysed with lr.Analysis or parsed by an Earley parser.
//
// Terminals become tokens named by the terminal, with the terminal's rune
// as the token value. Productions of the start symbol are entered first.
func (g *Grammar) LRGrammar(name string) (*lr.Grammar, error) {
	if !g.isType2() {
		return nil, fmt.Errorf("%w: cannot export %q", ErrNotContextFree, name)
	}
	b := lr.NewGrammarBuilder(name)
	for _, p := range g.table {
		rule := b.LHS(p.LHS)
		if p.Shape == ShapeEmpty {
			rule.Epsilon()
			continue
		}
		for _, r := range p.RHS {
			if g.IsTerminal(r) {
				rule.T(string(r), int(r))
			} else {
				rule.N(string(r))
			}
		}
		rule.End()
	}
	lrg, err := b.Grammar()
	if err != nil {
		return nil, fmt.Errorf("exporting grammar %q: %w", name, err)
	}
	tracer().Infof("exported grammar %q with %d productions", name, len(g.table))
	return lrg, nil
}

// Lookahead holds the FIRST and FOLLOW sets of a non-terminal. Terminals are
// given as strings, Epsilon marks a non-terminal deriving the empty word
// and EndOfInput the end of a sentence.
type Lookahead struct {
	First, Follow []string
}

// EndOfInput represents the end of a sentence in FOLLOW sets.
const EndOfInput = "$"

// Lookaheads runs gorgo's LR analysis on g and returns the FIRST and FOLLOW
// sets of every left-hand side of g. It fails for grammars which are not
// context-free.
func (g *Grammar) Lookaheads() (map[string]Lookahead, error) {
	lrg, err := g.LRGrammar(string(g.start))
	if err != nil {
		return nil, err
	}
	ga := lr.Analysis(lrg)
	sets := make(map[string]Lookahead, len(g.productions))
	for _, lhs := range g.LHS() {
		sym := lrg.SymbolByName(lhs)
		if sym == nil {
			continue
		}
		sets[lhs] = Lookahead{
			First:  tokenNames(ga.First(sym).AppendTo(nil)),
			Follow: tokenNames(ga.Follow(sym).AppendTo(nil)),
		}
		tracer().Debugf("lookahead %s: FIRST = %v, FOLLOW = %v", lhs, sets[lhs].First, sets[lhs].Follow)
	}
	return sets, nil
}

// tokenNames converts token values of LR analysis back to symbols: terminals
// carry their rune as token value, 0 is ε and negative values mark EOF.
func tokenNames(tokens []int) []string {
	var names []string
	var eof bool
	for _, tok := range tokens {
		switch {
		case tok < 0:
			eof = true
		case tok == lr.EpsilonType:
			names = append(names, Epsilon)
		default:
			names = append(names, string(rune(tok)))
		}
	}
	if eof {
		names = append(names, EndOfInput)
	}
	return names
}
