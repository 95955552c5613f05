package grammar

import (
	"math/rand"
	"strings"
	"time"
)

// Generate derives a random sentence from the start symbol.
//
// The grammar is expected to be right-linear (see IsRightLinear), which is
// not checked. Starting with the start symbol, Generate repeatedly picks one
// of the current symbol's right-hand sides, uniformly at random, emits its
// terminal prefix and continues with a trailing non-terminal. The derivation
// ends with a terminal-only right-hand side or with a non-terminal without
// productions.
//
// Generate will not return for grammars where some reachable non-terminal
// has no terminal-only alternative anywhere down its derivation chain.
//
// rnd is the source of randomness. If rnd is nil, a time-seeded source is used.
// Clients wanting reproducible sentences should supply a seeded source.
func (g *Grammar) Generate(rnd *rand.Rand) string {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	var sentence strings.Builder
	current := string(g.start)
	for {
		rhss := g.productions[current]
		if len(rhss) == 0 {
			break
		}
		rhs := rhss[rnd.Intn(len(rhss))]
		prefix, next := g.splitRightLinear(rhs)
		sentence.WriteString(prefix)
		tracer().Debugf("generate: %s → %s", current, rhs)
		if next == 0 {
			break
		}
		current = string(next)
	}
	return sentence.String()
}

// splitRightLinear splits rhs into its terminals and a trailing non-terminal.
// next is 0 if rhs does not end with a non-terminal. Non-terminals in any
// other position violate right-linearity and are dropped.
func (g *Grammar) splitRightLinear(rhs string) (prefix string, next rune) {
	runes := []rune(rhs)
	if n := len(runes); n > 0 && g.IsNonTerminal(runes[n-1]) {
		next = runes[n-1]
		runes = runes[:n-1]
	}
	var b strings.Builder
	for _, r := range runes {
		if g.IsTerminal(r) {
			b.WriteRune(r)
		} else {
			tracer().Debugf("generate: dropping non-terminal %c in non-right-linear production", r)
		}
	}
	return b.String(), next
}
