package actrie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateNodeIndexBounds(t *testing.T) {
	ac := New()
	ac.AddWordString("ab")

	require.NoError(t, ac.ValidateNodeIndex(Root))
	require.NoError(t, ac.ValidateNodeIndex(Index(ac.NumberOfNodes())-1))

	err := ac.ValidateNodeIndex(Index(ac.NumberOfNodes()))
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	require.ErrorIs(t, ac.ValidateNodeIndex(Undefined), ErrIndexOutOfRange)
}

func TestValidateActiveNodeIndexSeesFreedNodes(t *testing.T) {
	ac := New()
	i := ac.AddWordString("ab")

	require.NoError(t, ac.ValidateActiveNodeIndex(i))

	ac.RmWordString("ab")

	// Still a known slot, no longer part of the trie.
	require.NoError(t, ac.ValidateNodeIndex(i))
	err := ac.ValidateActiveNodeIndex(i)
	require.ErrorIs(t, err, ErrIndexInactive)

	var ie *IndexError
	require.ErrorAs(t, err, &ie)
	require.Equal(t, i, ie.Index)
}

func TestValidationFailuresLeaveStructureUnmodified(t *testing.T) {
	ac := classicTrie(t)
	nodes := ac.NumberOfNodes()
	active := ac.NumberOfActiveNodes()

	bad := Index(nodes)
	_, err := ac.Traverse(bad, Letter('h'))
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = ac.Signature(bad)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = ac.Height(bad)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = ac.SuffixLink(bad)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = ac.Child(bad, Letter('h'))
	require.ErrorIs(t, err, ErrIndexOutOfRange)

	require.Equal(t, nodes, ac.NumberOfNodes())
	require.Equal(t, active, ac.NumberOfActiveNodes())
}

func TestArenaReuseLeavesNoTrace(t *testing.T) {
	ac := New()
	ac.AddWordString("a")
	leaf := ac.AddWordString("ab")
	ac.RmWordString("ab")

	// The freed slot is recycled for the next insertion.
	reused := ac.AddWordString("ax")
	require.Equal(t, leaf, reused)

	sig, err := ac.Signature(reused)
	require.NoError(t, err)
	require.Equal(t, "ax", ToString(sig))

	// No stale child edge or terminal state from the previous occupant.
	c, err := ac.Child(reused, Letter('b'))
	require.NoError(t, err)
	require.Equal(t, Undefined, c)

	terminal, err := ac.Terminal(reused)
	require.NoError(t, err)
	require.True(t, terminal)

	require.Equal(t, Undefined, ac.RmWordString("ab"))
}
