package actrie

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindAllStringOverlappingMatches(t *testing.T) {
	ac := classicTrie(t)

	got := FindAllString(ac, "ushers")

	want := []Match{
		{Pattern: ToWord("she"), Begin: 1, End: 4},
		{Pattern: ToWord("he"), Begin: 2, End: 4},
		{Pattern: ToWord("hers"), Begin: 2, End: 6},
	}
	require.Equal(t, want, got)
}

func TestScannerReportsLongestMatchFirst(t *testing.T) {
	ac := New()
	ac.AddWordString("a")
	ac.AddWordString("aa")
	ac.AddWordString("aaa")

	s := NewScanner(ac)
	require.Len(t, s.Next(Letter('a')), 1)
	require.Len(t, s.Next(Letter('a')), 2)

	matches := s.Next(Letter('a'))
	require.Len(t, matches, 3)
	require.Equal(t, "aaa", ToString(matches[0].Pattern))
	require.Equal(t, "aa", ToString(matches[1].Pattern))
	require.Equal(t, "a", ToString(matches[2].Pattern))
	require.Equal(t, 0, matches[0].Begin)
	require.Equal(t, 3, matches[0].End)
}

func TestScannerResetRewinds(t *testing.T) {
	ac := New()
	ac.AddWordString("ab")

	s := NewScanner(ac)
	require.Nil(t, s.Next(Letter('a')))
	require.Len(t, s.Next(Letter('b')), 1)

	s.Reset()
	require.Nil(t, s.Next(Letter('b')))
	require.Nil(t, s.Next(Letter('a')))
	matches := s.Next(Letter('b'))
	require.Len(t, matches, 1)
	require.Equal(t, Match{Pattern: ToWord("ab"), Begin: 1, End: 3}, matches[0])
}

func TestFindAllAfterRemoval(t *testing.T) {
	ac := classicTrie(t)
	ac.RmWordString("he")

	got := FindAllString(ac, "ushers")
	want := []Match{
		{Pattern: ToWord("she"), Begin: 1, End: 4},
		{Pattern: ToWord("hers"), Begin: 2, End: 6},
	}
	require.Equal(t, want, got)
}

func TestFindAllNoMatches(t *testing.T) {
	ac := classicTrie(t)
	require.Nil(t, FindAll(ac, ToWord("xyzxyz")))
}
