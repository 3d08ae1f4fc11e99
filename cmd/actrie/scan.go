package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/forestrie/go-ahocorasick/actrie"
)

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "Scan a text (file or stdin) for pattern occurrences",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ac, count, err := loadPatterns(patternsPath)
		if err != nil {
			return err
		}
		log.Debug().Int("patterns", count).
			Uint64("nodes", ac.NumberOfActiveNodes()).
			Msg("dictionary loaded")

		in := os.Stdin
		name := "stdin"
		if len(args) == 1 {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open text: %w", err)
			}
			defer f.Close()
			in = f
			name = args[0]
		}

		matches, err := scanStream(ac, in, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		log.Info().Str("text", name).Int("matches", matches).Msg("scan complete")
		return nil
	},
}

// scanStream feeds the text through a Scanner byte by byte, writing one line
// per occurrence: "<begin>\t<end>\t<pattern>".
func scanStream(ac *actrie.AhoCorasick, in io.Reader, out io.Writer) (int, error) {
	r := bufio.NewReader(in)
	w := bufio.NewWriter(out)
	defer w.Flush()

	s := actrie.NewScanner(ac)
	total := 0
	for {
		b, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return total, fmt.Errorf("read text: %w", err)
		}
		for _, m := range s.Next(actrie.Letter(b)) {
			if _, err := fmt.Fprintf(w, "%d\t%d\t%s\n", m.Begin, m.End, actrie.ToString(m.Pattern)); err != nil {
				return total, err
			}
			total++
		}
	}
	return total, w.Flush()
}
