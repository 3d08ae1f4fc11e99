package actrie

// AhoCorasick is a trie over words of Letters, augmented with lazily
// maintained suffix links. The zero value is not usable; construct with New.
type AhoCorasick struct {
	nodes       []node
	inactive    []Index
	activeCount uint64

	// epoch stamps memoized suffix links. Every structural mutation bumps it,
	// which invalidates all cached links at once. It starts at 1 so a
	// zero-valued linkEpoch is always stale.
	epoch uint64
}

// New constructs an automaton containing only the root, which corresponds to
// the empty word.
func New() *AhoCorasick {
	ac := &AhoCorasick{}
	ac.nodes = append(ac.nodes, node{})
	ac.resetNode(Root, Undefined, 0)
	ac.activeCount = 1
	ac.epoch = 1
	return ac
}

// Init puts the automaton back into the newly constructed state. Allocated
// slots are kept and recycled rather than released.
func (ac *AhoCorasick) Init() *AhoCorasick {
	ac.inactive = ac.inactive[:0]
	ac.activeCount = uint64(len(ac.nodes))
	for i := Index(len(ac.nodes)) - 1; i > Root; i-- {
		ac.free(i)
	}
	ac.resetNode(Root, Undefined, 0)
	ac.epoch = 1
	return ac
}

// Clone returns a deep copy sharing no state with ac.
func (ac *AhoCorasick) Clone() *AhoCorasick {
	cp := &AhoCorasick{
		nodes:       make([]node, len(ac.nodes)),
		inactive:    append([]Index(nil), ac.inactive...),
		activeCount: ac.activeCount,
		epoch:       ac.epoch,
	}
	copy(cp.nodes, ac.nodes)
	for i := range cp.nodes {
		if ac.nodes[i].children == nil {
			continue
		}
		children := make(map[Letter]Index, len(ac.nodes[i].children))
		for a, c := range ac.nodes[i].children {
			children[a] = c
		}
		cp.nodes[i].children = children
	}
	return cp
}

// AddWord adds w to the trie, creating nodes for any missing path and marking
// the final node terminal. Adding a word already present is a no-op beyond
// the traversal. Returns the index of the node whose signature is w.
func (ac *AhoCorasick) AddWord(w []Letter) Index {
	current := Root
	grew := false
	for _, a := range w {
		c, ok := ac.nodes[current].children[a]
		if !ok {
			c = ac.allocate(current, a)
			grew = true
		}
		current = c
	}
	n := &ac.nodes[current]
	if !grew && n.terminal {
		// Identical word already present: nothing changed, cached suffix
		// links stay valid.
		return current
	}
	n.terminal = true
	ac.epoch++
	return current
}

// AddWordString is AddWord for byte strings.
func (ac *AhoCorasick) AddWordString(s string) Index {
	return ac.AddWord(ToWord(s))
}

// RmWord removes w from the trie. If w is not a currently inserted word this
// is a no-op: Undefined is returned when no node has signature w, and the
// node's (unchanged) index when it exists but is not terminal.
//
// When w is present, the node for w either loses its terminal flag (if it
// still has children, i.e. w is a prefix of another word) or is freed along
// with every ancestor that is left childless, non-terminal and is not the
// root. The returned index is the node that had signature w; it may now be
// inactive, so revalidate before dereferencing it.
func (ac *AhoCorasick) RmWord(w []Letter) Index {
	current := Root
	for _, a := range w {
		c, ok := ac.nodes[current].children[a]
		if !ok {
			return Undefined
		}
		current = c
	}
	n := &ac.nodes[current]
	if !n.terminal {
		return current
	}
	if current == Root || len(n.children) != 0 {
		// Still a prefix of other words (or the empty word at the root):
		// only the terminal flag goes.
		n.terminal = false
		ac.epoch++
		return current
	}
	for i := current; ; {
		p := ac.nodes[i].parent
		a := ac.nodes[i].parentLetter
		ac.free(i)
		delete(ac.nodes[p].children, a)
		if p == Root || ac.nodes[p].terminal || len(ac.nodes[p].children) != 0 {
			break
		}
		i = p
	}
	ac.epoch++
	return current
}

// RmWordString is RmWord for byte strings.
func (ac *AhoCorasick) RmWordString(s string) Index {
	return ac.RmWord(ToWord(s))
}
