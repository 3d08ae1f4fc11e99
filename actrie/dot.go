package actrie

import (
	"fmt"
	"sort"
	"strings"
)

// Dot renders the active trie as a Graphviz digraph: one node per active
// arena slot labelled by its index, double circles on terminal nodes, child
// edges labelled with their letter. It is a read-only projection; in
// particular it never resolves suffix links, so it cannot write to the
// automaton even indirectly.
func Dot(ac *AhoCorasick) string {
	var b strings.Builder
	b.WriteString("digraph ahocorasick {\n")
	b.WriteString("  node [shape=circle]\n")
	for i := range ac.nodes {
		n := &ac.nodes[i]
		if !n.active {
			continue
		}
		if n.terminal {
			fmt.Fprintf(&b, "  %d [shape=doublecircle]\n", i)
		} else {
			fmt.Fprintf(&b, "  %d\n", i)
		}
	}
	for i := range ac.nodes {
		n := &ac.nodes[i]
		if !n.active || len(n.children) == 0 {
			continue
		}
		letters := make([]Letter, 0, len(n.children))
		for a := range n.children {
			letters = append(letters, a)
		}
		sort.Slice(letters, func(l, r int) bool { return letters[l] < letters[r] })
		for _, a := range letters {
			fmt.Fprintf(&b, "  %d -> %d [label=%q]\n", i, n.children[a], letterLabel(a))
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// letterLabel renders printable ASCII letters as characters and everything
// else as the raw symbol value.
func letterLabel(a Letter) string {
	if a >= 0x21 && a <= 0x7e {
		return string(rune(a))
	}
	return fmt.Sprintf("%d", a)
}
