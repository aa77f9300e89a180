package chain

import (
	"github.com/tychoish/fun/ers"
)

// The verification helpers audit the structural invariants of a list:
// tracked length against the reachable chain, and agreement between
// the forward (next) and reverse (prev) links. They exist for tests
// and debugging, and are deliberately not called from the mutation
// hot path, so that a usage error is never conflated with container
// corruption.

// CheckLength walks the list front-to-back and compares the number of
// reachable elements with the tracked length, returning an error
// rooted in ErrListCorrupt when they disagree.
func (l *List[T]) CheckLength() error {
	count := 0
	for item := l.Front(); item.Ok(); item = item.Next() {
		count++
	}

	if count != l.Len() {
		return ers.Wrapf(ErrListCorrupt, "walked %d elements with %d tracked", count, l.Len())
	}

	return nil
}

// CheckLinks validates the reverse-direction links of the list: the
// forward traversal from the front and the backward traversal from
// the back must visit the same elements in reverse orders, and the
// neighbor just outside either boundary must be the root object.
// Returns an error rooted in ErrListCorrupt when a link is wrong.
func (l *List[T]) CheckLinks() error {
	if head, tail := l.Front(), l.Back(); head.Previous() != tail.Next() || head.Previous().Ok() {
		return ers.Wrap(ErrListCorrupt, "boundary link does not close on the root")
	}

	forward := &List[*Element[T]]{}
	for item := l.Front(); item.Ok(); item = item.Next() {
		forward.PushBack(item)
	}

	reverse := &List[*Element[T]]{}
	for item := l.Back(); item.Ok(); item = item.Previous() {
		reverse.PushFront(item)
	}

	if !EqualValues(forward, reverse) {
		return ers.Wrap(ErrListCorrupt, "forward and reverse traversals disagree")
	}

	return nil
}
