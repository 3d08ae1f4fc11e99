package actrie

import (
	"errors"
	"fmt"
)

// Index is a node-arena slot index.
type Index uint32

// Undefined is the explicit "no such node" sentinel.
const Undefined = ^Index(0)

// Root is the index of the root node. The root always exists, is always
// active, and corresponds to the empty word.
const Root Index = 0

// Letter is a single input symbol. Words are arbitrary sequences of
// non-negative integer symbols; byte strings are the special case handled by
// ToWord and ToString.
type Letter uint32

var (
	ErrIndexOutOfRange = errors.New("actrie: node index out of range")
	ErrIndexInactive   = errors.New("actrie: node index inactive")
)

// IndexError reports a validation failure for a caller-supplied node index.
// It unwraps to ErrIndexOutOfRange or ErrIndexInactive.
type IndexError struct {
	Index Index
	err   error
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: %d", e.err, e.Index)
}

func (e *IndexError) Unwrap() error { return e.err }

// ToWord converts a byte string to a word, one letter per byte.
func ToWord(s string) []Letter {
	w := make([]Letter, len(s))
	for i := 0; i < len(s); i++ {
		w[i] = Letter(s[i])
	}
	return w
}

// ToString converts a word back to a byte string. Letters outside the byte
// range are truncated; only use this for words built with ToWord.
func ToString(w []Letter) string {
	b := make([]byte, len(w))
	for i, a := range w {
		b[i] = byte(a)
	}
	return string(b)
}
