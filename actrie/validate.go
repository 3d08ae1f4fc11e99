package actrie

// ValidateNodeIndex fails with ErrIndexOutOfRange unless i is a slot the
// arena has issued, active or not. Constant time.
func (ac *AhoCorasick) ValidateNodeIndex(i Index) error {
	if i == Undefined || uint64(i) >= uint64(len(ac.nodes)) {
		return &IndexError{Index: i, err: ErrIndexOutOfRange}
	}
	return nil
}

// ValidateActiveNodeIndex fails unless i is an issued slot currently part of
// the trie: ErrIndexOutOfRange for never-issued indices, ErrIndexInactive for
// recycled ones. Constant time.
func (ac *AhoCorasick) ValidateActiveNodeIndex(i Index) error {
	if err := ac.ValidateNodeIndex(i); err != nil {
		return err
	}
	if !ac.nodes[i].active {
		return &IndexError{Index: i, err: ErrIndexInactive}
	}
	return nil
}
