package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/npillmayer/chomsky/automaton"
	"github.com/npillmayer/chomsky/dot"
	"github.com/npillmayer/chomsky/internal/examples"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newNFACmd() *cobra.Command {
	var dotDir string

	cmd := &cobra.Command{
		Use:   "nfa",
		Short: "Convert the lab 2 NFA to a regular grammar and to a DFA",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			nfa, dfa := runNFA(cmd.OutOrStdout())
			if dotDir == "" {
				return nil
			}
			if err := writeDot(filepath.Join(dotDir, "nfa.dot"), nfa, dot.Name("nfa")); err != nil {
				return err
			}
			if err := writeDot(filepath.Join(dotDir, "dfa.dot"), dfa, dot.Name("dfa")); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nGraphs written to %s\n", dotDir)
			return nil
		},
	}
	cmd.Flags().StringVar(&dotDir, "dot", "", "directory to write nfa.dot and dfa.dot to")
	return cmd
}

func runNFA(w io.Writer) (nfa, dfa *automaton.Automaton) {
	nfa = examples.Variant20()
	fmt.Fprintln(w, nfa)

	if nfa.IsDeterministic() {
		fmt.Fprintf(w, "\nThe automaton is deterministic.\n")
	} else {
		fmt.Fprintf(w, "\nThe automaton is non-deterministic:\n")
		for _, key := range nfa.NonDeterministicKeys() {
			fmt.Fprintf(w, "  %s = {%s}\n", key, strings.Join(nfa.Destinations(key.From, key.Symbol), ", "))
		}
	}

	g, mapping := nfa.ToRegularGrammar()
	fmt.Fprintf(w, "\nState mapping:\n")
	for _, q := range nfa.States() {
		fmt.Fprintf(w, "  %s → %c\n", q, mapping[q])
	}
	fmt.Fprintln(w, g)
	fmt.Fprintf(w, "\nClassification: %s\n", g.Classify())

	dfa, subsets := nfa.ToDFA()
	fmt.Fprintf(w, "\nSubset construction:\n")
	for _, d := range dfa.States() {
		fmt.Fprintf(w, "  %s = %s\n", d, subsets[d])
	}
	fmt.Fprintln(w, dfa)
	fmt.Fprintf(w, "\nDeterministic: %v\n", dfa.IsDeterministic())

	fmt.Fprintf(w, "\nString validation:\n")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"STRING", "NFA", "DFA", "MATCH"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, input := range examples.Variant20Inputs {
		n, d := nfa.Accepts(input.Text), dfa.Accepts(input.Text)
		match := "yes"
		if n != d {
			match = "NO"
		}
		table.Append([]string{quoted(input.Text), verdict(n), verdict(d), match})
	}
	table.Render()
	return nfa, dfa
}

func writeDot(path string, a *automaton.Automaton, opts ...dot.Option) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dot file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close dot file: %w", cerr)
		}
	}()
	if err = dot.Render(f, a, opts...); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return nil
}
