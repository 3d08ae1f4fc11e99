package actrie

// node is one arena record. Relations to other nodes are held as plain
// indices; an inactive record keeps no trace of its previous occupant.
type node struct {
	parent       Index
	parentLetter Letter
	children     map[Letter]Index
	terminal     bool
	active       bool

	// suffixLink is meaningful only while linkEpoch == AhoCorasick.epoch.
	suffixLink Index
	linkEpoch  uint64
}

// allocate returns an active node slot wired under parent along a, reusing
// the most recently freed slot before growing the arena.
func (ac *AhoCorasick) allocate(parent Index, a Letter) Index {
	var i Index
	if n := len(ac.inactive); n > 0 {
		i = ac.inactive[n-1]
		ac.inactive = ac.inactive[:n-1]
	} else {
		ac.nodes = append(ac.nodes, node{})
		i = Index(len(ac.nodes) - 1)
	}
	ac.resetNode(i, parent, a)
	ac.nodes[parent].children[a] = i
	ac.activeCount++
	return i
}

// free recycles slot i onto the free list. The caller is responsible for
// unlinking i from its parent's child map first.
func (ac *AhoCorasick) free(i Index) {
	n := &ac.nodes[i]
	n.parent = Undefined
	n.parentLetter = 0
	n.children = nil
	n.terminal = false
	n.active = false
	n.suffixLink = Undefined
	n.linkEpoch = 0
	ac.inactive = append(ac.inactive, i)
	ac.activeCount--
}

func (ac *AhoCorasick) resetNode(i, parent Index, a Letter) {
	n := &ac.nodes[i]
	n.parent = parent
	n.parentLetter = a
	n.children = make(map[Letter]Index)
	n.terminal = false
	n.active = true
	n.suffixLink = Undefined
	n.linkEpoch = 0
}

// NumberOfNodes returns the total arena size, counting both active and
// inactive slots.
func (ac *AhoCorasick) NumberOfNodes() uint64 {
	return uint64(len(ac.nodes))
}

// NumberOfActiveNodes returns the number of nodes currently in the trie.
func (ac *AhoCorasick) NumberOfActiveNodes() uint64 {
	return ac.activeCount
}
