package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestGrammarCmd(t *testing.T) {
	out, err := run(t, "grammar", "--seed", "20", "--count", "3")
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{
		"S → dA | dC",
		"  3. '",
		"Classification: Type 3 (Regular Grammar)",
		"LR analysis:",
		"{a, d}",
		"{$}",
		"Start state (q0): S",
		"δ(A, d) = {X}",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("expected output to contain %q", s)
		}
	}
	if strings.Contains(out, "  4. ") {
		t.Errorf("expected 3 generated strings")
	}
	if n := strings.Count(out, "ACCEPTED"); n != 4 {
		t.Errorf("expected 4 accepted strings, have %d", n)
	}
	if n := strings.Count(out, "REJECTED"); n != 4 {
		t.Errorf("expected 4 rejected strings, have %d", n)
	}
}

func TestGrammarCmdIsReproducible(t *testing.T) {
	out1, _ := run(t, "grammar", "--seed", "7")
	out2, _ := run(t, "grammar", "--seed", "7")
	if out1 != out2 {
		t.Errorf("expected identical output for identical seeds")
	}
}

func TestNFACmd(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "nfa", "--dot", dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{
		"The automaton is non-deterministic:\n  δ(q0, a) = {q0, q1}",
		"q0 → S",
		"Classification: Type 3 (Regular Grammar)",
		"D3 = {q0, q1}",
		"Deterministic: true",
	} {
		if !strings.Contains(out, s) {
			t.Errorf("expected output to contain %q", s)
		}
	}
	if strings.Contains(out, "NO") {
		t.Errorf("NFA and DFA disagree:\n%s", out)
	}
	for _, name := range []string{"nfa", "dfa"} {
		data, err := os.ReadFile(filepath.Join(dir, name+".dot"))
		if err != nil {
			t.Fatal(err)
		}
		if !strings.HasPrefix(string(data), "digraph \""+name+"\" {") {
			t.Errorf("unexpected content of %s.dot:\n%s", name, data)
		}
	}
}

func TestNFACmdWithoutDot(t *testing.T) {
	out, err := run(t, "nfa")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "Graphs written") {
		t.Errorf("expected no graphs without --dot")
	}
}

func TestFlagErrors(t *testing.T) {
	if _, err := run(t, "--trace", "verbose", "nfa"); err == nil {
		t.Errorf("expected error for unknown trace level")
	}
	if _, err := run(t, "grammar", "--count", "-1"); err == nil {
		t.Errorf("expected error for negative count")
	}
	if _, err := run(t, "nfa", "--dot", filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Errorf("expected error for missing dot directory")
	}
}
