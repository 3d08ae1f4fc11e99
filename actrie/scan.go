package actrie

// Match is one occurrence of an inserted word in a scanned text. Begin and
// End are letter offsets; the occurrence is text[Begin:End].
type Match struct {
	Pattern []Letter
	Begin   int
	End     int
}

// Scanner streams a text through an automaton one letter at a time, reporting
// every inserted word that ends at the current position.
//
// A scanner borrows the automaton: mutating the trie invalidates the
// scanner's current state, which must then be discarded or Reset before the
// next call to Next.
type Scanner struct {
	ac    *AhoCorasick
	state Index
	pos   int
}

// NewScanner returns a scanner positioned at the root.
func NewScanner(ac *AhoCorasick) *Scanner {
	return &Scanner{ac: ac, state: Root}
}

// Reset rewinds the scanner to the root and offset zero.
func (s *Scanner) Reset() {
	s.state = Root
	s.pos = 0
}

// Next consumes one letter and returns the matches ending at the new
// position, longest first. Matches are found by walking the suffix-link
// chain from the current node and collecting terminal signatures, so a nil
// return means no inserted word ends here.
func (s *Scanner) Next(a Letter) []Match {
	s.state = s.ac.traverseNoChecks(s.state, a)
	s.pos++
	var matches []Match
	for i := s.state; i != Root; i = s.ac.suffixLinkNoChecks(i) {
		if !s.ac.nodes[i].terminal {
			continue
		}
		w := s.ac.signatureNoChecks(i)
		matches = append(matches, Match{Pattern: w, Begin: s.pos - len(w), End: s.pos})
	}
	return matches
}

// FindAll scans text from the root and returns every occurrence of every
// inserted word, in order of end position.
func FindAll(ac *AhoCorasick, text []Letter) []Match {
	s := NewScanner(ac)
	var all []Match
	for _, a := range text {
		all = append(all, s.Next(a)...)
	}
	return all
}

// FindAllString is FindAll for byte strings.
func FindAllString(ac *AhoCorasick, text string) []Match {
	return FindAll(ac, ToWord(text))
}
