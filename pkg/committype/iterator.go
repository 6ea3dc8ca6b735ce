package committype

// Iterator walks the commit types in canonical order, from Breaking to Meta.
// An Iterator is single-pass: once exhausted it stays exhausted, and a new
// one must be created to walk the commit types again. It holds plain cursor
// state and is not safe for concurrent use.
type Iterator struct {
	current Type
	done    bool
}

// NewIterator returns an iterator positioned at the first commit type.
func NewIterator() *Iterator {
	return &Iterator{current: First()}
}

// Next returns the commit type at the current position and advances the
// iterator. The boolean is false once every commit type has been produced.
func (it *Iterator) Next() (Type, bool) {
	if it.done {
		return 0, false
	}

	t := it.current
	if next, ok := t.Next(); ok {
		it.current = next
	} else {
		it.done = true
	}

	return t, true
}

// Remaining returns the exact number of commit types the iterator has not
// produced yet.
func (it *Iterator) Remaining() int {
	if it.done {
		return 0
	}
	return int(Last()-it.current) + 1
}
