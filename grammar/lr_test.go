package grammar

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/gorgo/lr"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLRGrammar(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	g, err := New([]rune("S"), []rune("ab"), map[string][]string{
		"S": {"aSb", Epsilon},
	}, 'S')
	if err != nil {
		t.Fatal(err)
	}
	lrg, err := g.LRGrammar("anbn")
	if err != nil {
		t.Fatalf("context-free grammar should export, got %v", err)
	}
	if lrg == nil {
		t.Fatal("exported grammar is nil")
	}
	if ga := lr.Analysis(lrg); ga == nil {
		t.Error("LR analysis of exported grammar is nil")
	}
	lab := labGrammar(t)
	if _, err := lab.LRGrammar("lab"); err != nil {
		t.Errorf("regular grammar should export, got %v", err)
	}
}

func TestLRGrammarRejectsContextSensitive(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	g, err := New([]rune("SAB"), []rune("ab"), map[string][]string{
		"S": {"aAB"}, "AB": {"BA"}, "A": {"a"}, "B": {"b"},
	}, 'S')
	if err != nil {
		t.Fatal(err)
	}
	if _, err := g.LRGrammar("csg"); !errors.Is(err, ErrNotContextFree) {
		t.Errorf("expected ErrNotContextFree, have %v", err)
	}
}

func TestLookaheads(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New()
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	sets, err := labGrammar(t).Lookaheads()
	if err != nil {
		t.Fatal(err)
	}
	for lhs, first := range map[string]string{"S": "d", "A": "ad", "B": "b", "C": "ac"} {
		if got := strings.Join(sets[lhs].First, ""); got != first {
			t.Errorf("expected FIRST(%s) = %q, have %q", lhs, first, got)
		}
		if f := sets[lhs].Follow; len(f) != 1 || f[0] != EndOfInput {
			t.Errorf("expected FOLLOW(%s) = {%s}, have %v", lhs, EndOfInput, f)
		}
	}
	g, err := New([]rune("SA"), []rune("ab"), map[string][]string{
		"S": {"aAb"},
		"A": {"a", Epsilon},
	}, 'S')
	if err != nil {
		t.Fatal(err)
	}
	sets, err = g.Lookaheads()
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Join(sets["A"].First, " "); got != "ε a" {
		t.Errorf("expected FIRST(A) = {ε, a}, have %v", sets["A"].First)
	}
	if got := strings.Join(sets["A"].Follow, " "); got != "b" {
		t.Errorf("expected FOLLOW(A) = {b}, have %v", sets["A"].Follow)
	}
}
