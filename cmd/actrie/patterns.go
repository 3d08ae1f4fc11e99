package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/forestrie/go-ahocorasick/actrie"
)

// loadPatterns builds an automaton from a file of newline-separated patterns.
// Blank lines are skipped; duplicates are harmless no-ops.
func loadPatterns(path string) (*actrie.AhoCorasick, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open patterns: %w", err)
	}
	defer f.Close()

	ac := actrie.New()
	count := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		ac.AddWordString(line)
		count++
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, fmt.Errorf("read patterns: %w", err)
	}
	return ac, count, nil
}
