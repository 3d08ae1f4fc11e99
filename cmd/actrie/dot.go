package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-ahocorasick/actrie"
)

var dotCmd = &cobra.Command{
	Use:   "dot",
	Short: "Write the pattern trie as a Graphviz digraph to stdout",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ac, count, err := loadPatterns(patternsPath)
		if err != nil {
			return err
		}
		log.Debug().Int("patterns", count).
			Uint64("nodes", ac.NumberOfActiveNodes()).
			Msg("dictionary loaded")

		_, err = fmt.Fprint(cmd.OutOrStdout(), actrie.Dot(ac))
		return err
	},
}
