package actrie

// Traverse returns the node reached from current along a, combining the goto
// function (direct child lookup) with the fail function (suffix-link
// fallback): the result is the node whose signature is the longest suffix of
// signature(current)+a present in the trie.
func (ac *AhoCorasick) Traverse(current Index, a Letter) (Index, error) {
	if err := ac.ValidateActiveNodeIndex(current); err != nil {
		return Undefined, err
	}
	return ac.traverseNoChecks(current, a), nil
}

func (ac *AhoCorasick) traverseNoChecks(current Index, a Letter) Index {
	for {
		if c, ok := ac.nodes[current].children[a]; ok {
			return c
		}
		if current == Root {
			return Root
		}
		current = ac.suffixLinkNoChecks(current)
	}
}

// TraverseWordFrom folds Traverse over w starting at start. It never creates
// nodes; a word absent from the trie simply falls back through suffix links.
func (ac *AhoCorasick) TraverseWordFrom(start Index, w []Letter) (Index, error) {
	if err := ac.ValidateActiveNodeIndex(start); err != nil {
		return Undefined, err
	}
	current := start
	for _, a := range w {
		current = ac.traverseNoChecks(current, a)
	}
	return current, nil
}

// TraverseWord folds Traverse over w starting at the root.
func (ac *AhoCorasick) TraverseWord(w []Letter) Index {
	current := Root
	for _, a := range w {
		current = ac.traverseNoChecks(current, a)
	}
	return current
}

// TraverseWordString is TraverseWord for byte strings.
func (ac *AhoCorasick) TraverseWordString(s string) Index {
	return ac.TraverseWord(ToWord(s))
}

// Child returns the child of parent along the edge labelled a, or Undefined
// when no such edge exists. Unlike Traverse it never follows suffix links.
func (ac *AhoCorasick) Child(parent Index, a Letter) (Index, error) {
	if err := ac.ValidateActiveNodeIndex(parent); err != nil {
		return Undefined, err
	}
	if c, ok := ac.nodes[parent].children[a]; ok {
		return c, nil
	}
	return Undefined, nil
}

// Signature reconstructs the word labelling the path from the root to i by
// walking parent links. Cost is linear in the height of i.
func (ac *AhoCorasick) Signature(i Index) ([]Letter, error) {
	if err := ac.ValidateActiveNodeIndex(i); err != nil {
		return nil, err
	}
	return ac.signatureNoChecks(i), nil
}

func (ac *AhoCorasick) signatureNoChecks(i Index) []Letter {
	var w []Letter
	for i != Root {
		w = append(w, ac.nodes[i].parentLetter)
		i = ac.nodes[i].parent
	}
	for l, r := 0, len(w)-1; l < r; l, r = l+1, r-1 {
		w[l], w[r] = w[r], w[l]
	}
	return w
}

// Height returns the length of i's signature. The root has height 0.
func (ac *AhoCorasick) Height(i Index) (uint64, error) {
	if err := ac.ValidateActiveNodeIndex(i); err != nil {
		return 0, err
	}
	var h uint64
	for i != Root {
		i = ac.nodes[i].parent
		h++
	}
	return h, nil
}

// Terminal reports whether i's signature is a currently inserted word.
func (ac *AhoCorasick) Terminal(i Index) (bool, error) {
	if err := ac.ValidateActiveNodeIndex(i); err != nil {
		return false, err
	}
	return ac.nodes[i].terminal, nil
}
