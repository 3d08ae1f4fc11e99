// Command actrie is a multi-pattern search tool over the actrie automaton:
// it loads a pattern dictionary, then either scans a text for occurrences or
// renders the trie as a Graphviz digraph.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	patternsPath string
	logLevel     string
	logFile      string
)

var rootCmd = &cobra.Command{
	Use:           "actrie",
	Short:         "Multi-pattern text search using an Aho-Corasick trie",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setupLogging(logLevel, logFile)
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("actrie failed")
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&patternsPath, "patterns", "p", "", "file with one pattern per line")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "also log to this file, with rotation")
	_ = rootCmd.MarkPersistentFlagRequired("patterns")
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(dotCmd)
}
