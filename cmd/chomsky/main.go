// Command chomsky runs the lab examples: a regular grammar with its
// automaton, and a non-deterministic automaton with its grammar and the
// equivalent deterministic automaton.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var traceLevel string

	rootCmd := &cobra.Command{
		Use:          "chomsky",
		Short:        "Finite automata and formal grammars",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseTraceLevel(traceLevel)
			if err != nil {
				return err
			}
			gtrace.CoreTracer = gologadapter.New()
			gtrace.CoreTracer.SetTraceLevel(level)
			gtrace.SyntaxTracer = gologadapter.New()
			gtrace.SyntaxTracer.SetTraceLevel(level)
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&traceLevel, "trace", "error", "trace level (debug, info, error)")

	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newNFACmd())
	return rootCmd
}

func parseTraceLevel(s string) (tracing.TraceLevel, error) {
	switch strings.ToLower(s) {
	case "debug":
		return tracing.LevelDebug, nil
	case "info":
		return tracing.LevelInfo, nil
	case "error":
		return tracing.LevelError, nil
	}
	return tracing.LevelError, fmt.Errorf("unknown trace level %q (expected debug, info or error)", s)
}

func verdict(accepted bool) string {
	if accepted {
		return "ACCEPTED"
	}
	return "REJECTED"
}

func symbolSet(symbols []string) string {
	return "{" + strings.Join(symbols, ", ") + "}"
}

func quoted(s string) string {
	if s == "" {
		return "ε"
	}
	return "'" + s + "'"
}
