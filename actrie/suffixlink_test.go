package actrie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The worked example from Aho and Corasick's 1975 paper.
func classicTrie(t *testing.T) *AhoCorasick {
	t.Helper()
	ac := New()
	for _, w := range []string{"he", "she", "his", "hers"} {
		ac.AddWordString(w)
	}
	return ac
}

func TestSuffixLinkClassicExample(t *testing.T) {
	ac := classicTrie(t)

	link := func(w string) Index {
		l, err := ac.SuffixLink(ac.TraverseWordString(w))
		require.NoError(t, err)
		return l
	}
	node := func(w string) Index { return ac.TraverseWordString(w) }

	require.Equal(t, node("he"), link("she"))
	require.Equal(t, node("s"), link("hers"))
	require.Equal(t, node("s"), link("his"))
	require.Equal(t, node("h"), link("sh"))
	require.Equal(t, Root, link("h"))
	require.Equal(t, Root, link("her"))
}

func TestSuffixLinkOfRootIsRoot(t *testing.T) {
	ac := New()
	link, err := ac.SuffixLink(Root)
	require.NoError(t, err)
	require.Equal(t, Root, link)
}

func TestSuffixLinkRecomputedAfterMutation(t *testing.T) {
	ac := New()
	ac.AddWordString("she")
	she := ac.TraverseWordString("she")

	link, err := ac.SuffixLink(she)
	require.NoError(t, err)
	require.Equal(t, Root, link)

	// Inserting "he" changes the longest proper suffix of "she" in the trie;
	// the memoized link must not be served stale.
	he := ac.AddWordString("he")
	link, err = ac.SuffixLink(she)
	require.NoError(t, err)
	require.Equal(t, he, link)

	// And removal walks it back.
	ac.RmWordString("he")
	link, err = ac.SuffixLink(she)
	require.NoError(t, err)
	require.Equal(t, Root, link)
}

func TestSuffixLinkRejectsInvalidIndex(t *testing.T) {
	ac := New()
	i := ac.AddWordString("ab")
	ac.RmWordString("ab")

	_, err := ac.SuffixLink(i)
	require.ErrorIs(t, err, ErrIndexInactive)

	_, err = ac.SuffixLink(Index(ac.NumberOfNodes()))
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}
