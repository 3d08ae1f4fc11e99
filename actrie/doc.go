package actrie

/*

# Aho-Corasick trie primitives (index-addressed, recycling arena)

This package implements the trie-with-suffix-links data structure used by the
Aho-Corasick multi-pattern matching algorithm, supporting incremental insertion
and removal of words.

It follows the same index-addressed style as the rest of our trie and log
structures:

- nodes live in a flat arena and are referred to by `Index`, never by pointer
- `Undefined` is the explicit "no such node" sentinel
- hot paths have unchecked internal forms; validation happens once at each
  public entry that takes a caller-supplied index

## Active and inactive nodes

The arena distinguishes *active* nodes (currently part of the trie) from
*inactive* ones (slots recycled by `RmWord`, kept on a free list and reused by
later insertions before the arena grows). An index handed out by `AddWord` or
`RmWord` stays meaningful only until the next mutating call; revalidate with
`ValidateActiveNodeIndex` before dereferencing it again.

## Suffix links

The suffix link of a node with signature W is the node whose signature is the
longest proper suffix of W present in the trie. Links are computed lazily and
memoized per node, stamped with a structure version that every mutation bumps,
so invalidation is O(1) and a stale link is never served. `Traverse` combines
the child ("goto") lookup with suffix-link ("fail") fallback, which is all the
streaming search in `Scanner` needs.

## Concurrency

The structure is single-writer with no internal locking. Even nominally
read-only calls (`Traverse`, `SuffixLink`, `Scanner.Next`) may memoize suffix
links, so concurrent use requires one external exclusive lock around every
operation.

*/
