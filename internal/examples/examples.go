// Package examples holds the literal grammars and automata of the labs,
// together with test inputs and the verdicts expected for them.
package examples

import (
	"github.com/npillmayer/chomsky/automaton"
	"github.com/npillmayer/chomsky/grammar"
)

// Input is a test string with its expected verdict and a note on the
// derivation (or on why there is none).
type Input struct {
	Text   string
	Accept bool
	Note   string
}

// Lab1Grammar returns the right-linear grammar of lab 1:
//
//     S → dA | dC
//     A → d  | aB
//     B → bC
//     C → cA | aS
func Lab1Grammar() *grammar.Grammar {
	g, err := grammar.New([]rune("SABC"), []rune("abcd"), map[string][]string{
		"S": {"dA", "dC"},
		"A": {"d", "aB"},
		"B": {"bC"},
		"C": {"cA", "aS"},
	}, 'S')
	if err != nil {
		panic(err)
	}
	return g
}

// Lab1Inputs are test strings for the automaton derived from Lab1Grammar.
var Lab1Inputs = []Input{
	{"dd", true, "S → dA, A → d"},
	{"dabcd", true, "S → dA, A → aB, B → bC, C → cA, A → d"},
	{"dabadd", true, "… C → aS, S → dA, A → d"},
	{"dabcabcd", true, "… C → cA, A → aB, B → bC, C → cA, A → d"},
	{"abc", false, "does not start with 'd'"},
	{"dabba", false, "no production for 'b' after B → bC"},
	{"", false, "empty string"},
	{"dabcadd", false, "after C → cA, A → aB no production for 'd'"},
}

// Variant20 returns the NFA of lab 2, variant 20.
func Variant20() *automaton.Automaton {
	fa, err := automaton.New(
		[]string{"q0", "q1", "q2", "q3"},
		[]rune("abc"),
		map[automaton.Key][]string{
			{From: "q0", Symbol: 'a'}: {"q0", "q1"},
			{From: "q2", Symbol: 'a'}: {"q2"},
			{From: "q1", Symbol: 'b'}: {"q2"},
			{From: "q2", Symbol: 'c'}: {"q3"},
			{From: "q3", Symbol: 'c'}: {"q3"},
		},
		"q0",
		[]string{"q3"},
	)
	if err != nil {
		panic(err)
	}
	return fa
}

// Variant20Inputs are test strings for Variant20 and the DFA derived from it.
var Variant20Inputs = []Input{
	{"abc", true, "q0→q1(a), q1→q2(b), q2→q3(c)"},
	{"aabcc", true, "q0→q0(a)→q1(a), q1→q2(b), q2→q3(c)→q3(c)"},
	{"abac", true, "q0→q1(a), q1→q2(b), q2→q2(a), q2→q3(c)"},
	{"abacc", true, "as above, then q3→q3(c)"},
	{"aaabaaac", true, "a's before and after b"},
	{"ab", false, "ends in q2, which is not final"},
	{"acc", false, "no 'c' from q0 or q1"},
	{"b", false, "no 'b' from q0"},
	{"", false, "q0 is not final"},
	{"ababc", false, "no 'b' from q2"},
}
