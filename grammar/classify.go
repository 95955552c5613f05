package grammar

import "unicode/utf8"

// Type is a level of the Chomsky hierarchy.
type Type int8

// Grammar types, from the least to the most restrictive.
const (
	Type0 Type = iota // unrestricted
	Type1             // context-sensitive
	Type2             // context-free
	Type3             // regular
)

func (t Type) String() string {
	switch t {
	case Type3:
		return "Type 3 (Regular Grammar)"
	case Type2:
		return "Type 2 (Context-Free Grammar)"
	case Type1:
		return "Type 1 (Context-Sensitive Grammar)"
	}
	return "Type 0 (Unrestricted Grammar)"
}

// Shape tags the form of a production's right-hand side.
type Shape int8

// Shapes of right-hand sides. Terminal, RightLinear and LeftLinear include
// the extended forms with more than one terminal.
const (
	ShapeOther       Shape = iota // anything else, e.g. two non-terminals
	ShapeEmpty                    // ε
	ShapeTerminal                 // a, abc
	ShapeRightLinear              // aB, abcB
	ShapeLeftLinear               // Ba, Babc
)

func (s Shape) String() string {
	switch s {
	case ShapeEmpty:
		return "empty"
	case ShapeTerminal:
		return "terminal"
	case ShapeRightLinear:
		return "right-linear"
	case ShapeLeftLinear:
		return "left-linear"
	}
	return "other"
}

// Production is a single production LHS → RHS together with the shape of
// its right-hand side.
type Production struct {
	LHS   string
	RHS   string // "" for ε
	Shape Shape
}

// ShapeOf tags a right-hand side, given the grammar's symbols.
func (g *Grammar) ShapeOf(rhs string) Shape {
	runes := []rune(rhs)
	n := len(runes)
	if n == 0 {
		return ShapeEmpty
	}
	if g.allTerminals(runes) {
		return ShapeTerminal
	}
	if n == 1 { // a single non-terminal
		return ShapeOther
	}
	if g.IsNonTerminal(runes[n-1]) && g.allTerminals(runes[:n-1]) {
		return ShapeRightLinear
	}
	if g.IsNonTerminal(runes[0]) && g.allTerminals(runes[1:]) {
		return ShapeLeftLinear
	}
	return ShapeOther
}

func (g *Grammar) allTerminals(runes []rune) bool {
	for _, r := range runes {
		if !g.IsTerminal(r) {
			return false
		}
	}
	return true
}

func (g *Grammar) shapeTable() []Production {
	var table []Production
	for _, lhs := range g.LHS() {
		for _, rhs := range g.productions[lhs] {
			table = append(table, Production{LHS: lhs, RHS: rhs, Shape: g.ShapeOf(rhs)})
		}
	}
	return table
}

// Shapes returns all productions with their shapes, ordered as by LHS().
func (g *Grammar) Shapes() []Production {
	return append([]Production(nil), g.table...)
}

// Classify returns the most restrictive Chomsky type of g.
// Classification is structural only; it performs no derivations.
func (g *Grammar) Classify() Type {
	t := Type0
	switch {
	case g.isType3():
		t = Type3
	case g.isType2():
		t = Type2
	case g.isType1():
		t = Type1
	}
	tracer().Debugf("grammar classified as %s", t)
	return t
}

// isType3 tests for a regular grammar: either entirely right-linear or
// entirely left-linear, where terminal-only productions fit both.
func (g *Grammar) isType3() bool {
	if !g.isType2() {
		return false
	}
	var right, left bool
	for _, p := range g.table {
		switch p.Shape {
		case ShapeTerminal:
		case ShapeRightLinear:
			right = true
		case ShapeLeftLinear:
			left = true
		default:
			return false
		}
	}
	return !(right && left)
}

// isType2 tests for a context-free grammar: every left-hand side is a
// single non-terminal.
func (g *Grammar) isType2() bool {
	for lhs := range g.productions {
		if !g.isSingleNonTerminal(lhs) {
			return false
		}
	}
	return true
}

// isType1 tests for a context-sensitive grammar: no production erases
// symbols, i.e. |α| ≤ |β| and β ≠ ε for all α → β.
func (g *Grammar) isType1() bool {
	for _, p := range g.table {
		if p.Shape == ShapeEmpty {
			return false
		}
		if utf8.RuneCountInString(p.LHS) > utf8.RuneCountInString(p.RHS) {
			return false
		}
	}
	return true
}

// IsRightLinear is true if every left-hand side is a single non-terminal
// and every right-hand side is either terminal-only or right-linear.
// This is the precondition of Generate and of the conversion to an
// automaton.
func (g *Grammar) IsRightLinear() bool {
	if !g.isType2() {
		return false
	}
	for _, p := range g.table {
		if p.Shape != ShapeTerminal && p.Shape != ShapeRightLinear {
			return false
		}
	}
	return true
}
