package actrie

// SuffixLink returns the index of the active node whose signature is the
// longest proper suffix of i's signature present in the trie. The root has no
// proper suffix; its suffix link is the root itself.
//
// Links are memoized, so the first resolution after a mutation costs up to
// the node's height and later calls are constant time until the next
// mutation.
func (ac *AhoCorasick) SuffixLink(i Index) (Index, error) {
	if err := ac.ValidateActiveNodeIndex(i); err != nil {
		return Undefined, err
	}
	return ac.suffixLinkNoChecks(i), nil
}

func (ac *AhoCorasick) suffixLinkNoChecks(i Index) Index {
	if i == Root {
		return Root
	}
	n := &ac.nodes[i]
	if n.linkEpoch == ac.epoch {
		return n.suffixLink
	}
	var link Index
	if n.parent == Root {
		// One-letter signatures have only the empty word as proper suffix.
		link = Root
	} else {
		// Follow the parent's (recursively resolved) suffix chain until some
		// node on it has a child along our edge letter. The chain never
		// revisits the parent, so the child found is never i itself.
		a := n.parentLetter
		s := ac.suffixLinkNoChecks(n.parent)
		for {
			if c, ok := ac.nodes[s].children[a]; ok {
				link = c
				break
			}
			if s == Root {
				link = Root
				break
			}
			s = ac.suffixLinkNoChecks(s)
		}
	}
	n.suffixLink = link
	n.linkEpoch = ac.epoch
	return link
}
