package chain

import (
	"github.com/tychoish/fun"
	"github.com/tychoish/fun/dt/cmp"
)

// The sorting operations in this file are ascending with regards to
// the provided cmp.LessThan comparator, and all of the pairwise
// decisions use the derived non-strict relation: a is "in order"
// before b whenever !lt(b, a).

// IsSorted reports if the list is sorted from low to high, according
// to the comparator. Lists with fewer than two elements are always
// sorted.
func (l *List[T]) IsSorted(lt cmp.LessThan[T]) bool {
	if l.Len() < 2 {
		return true
	}

	fun.Invariant.Ok(l.Front().Ok(), ErrListCorrupt)

	for item := l.Front().Next(); item.Ok(); item = item.Next() {
		if lt(item.Value(), item.Previous().Value()) {
			return false
		}
	}

	return true
}

// InsertOrdered adds a value to a list that is already sorted with
// regards to the comparator, maintaining the sort order. The value is
// placed immediately before the first element strictly greater than
// it, so a value equal to existing elements lands after them. O(n) in
// the worst case.
//
// If the list is not sorted the result is unspecified.
func (l *List[T]) InsertOrdered(lt cmp.LessThan[T], v T) {
	for item := l.Front(); item.Ok(); item = item.Next() {
		if lt(v, item.Value()) {
			item.Previous().Push(v)
			return
		}
	}

	l.PushBack(v)
}

// SortInsertion returns a new sorted list containing the values of
// the input, built by taking the values in their original order and
// inserting each into an accumulator with InsertOrdered. O(n^2) in
// the worst case, and stable: equal values keep their relative order.
// The receiver is unchanged.
func (l *List[T]) SortInsertion(lt cmp.LessThan[T]) *List[T] {
	out := &List[T]{}
	for item := l.Front(); item.Ok(); item = item.Next() {
		out.InsertOrdered(lt, item.Value())
	}
	return out
}

// Merge combines two sorted lists into a new sorted list containing
// all of the values of both, in O(n+m) time, leaving both inputs
// unchanged. The merge is stable: when heads compare equal the
// receiver's value is taken first.
//
// Both the receiver and the other list must already be sorted with
// regards to the comparator; this is the caller's responsibility and
// is not checked at runtime.
func (l *List[T]) Merge(lt cmp.LessThan[T], other *List[T]) *List[T] {
	return mergeSorted(lt, l.Copy(), other.Copy())
}

// SortMerge returns a new sorted list containing the values of the
// input, leaving the receiver unchanged. O(n log n).
//
// This is a wrapper around one of two equivalent internal strategies
// (recursive and iterative bottom-up merge sort,) which produce
// identical output for identical input; the choice between them is
// not part of the observable contract.
func (l *List[T]) SortMerge(lt cmp.LessThan[T]) *List[T] { return l.sortMergeRecursive(lt) }

// Sort replaces the contents of the list with the merge-sorted
// values, in place.
func (l *List[T]) Sort(lt cmp.LessThan[T]) {
	sorted := l.SortMerge(lt)
	l.Clear()
	l.Extend(sorted)
}

// SplitHalves divides the list into leading and trailing halves,
// preserving relative order in each: right receives the trailing
// Len()/2 elements and left keeps the rest, so for odd lengths the
// extra element stays on the left. Lists with fewer than two elements
// produce (copy, empty). The receiver is unchanged.
func (l *List[T]) SplitHalves() (left, right *List[T]) {
	left = l.Copy()
	right = &List[T]{}

	if l.Len() < 2 {
		return left, right
	}

	for i := l.Len() / 2; i > 0; i-- {
		right.root().Append(left.PopBack())
	}

	return left, right
}

// Explode produces a list of single-element lists, one per value of
// the input, in the original order, consuming a working copy with
// repeated pop-front/push-back. The receiver is unchanged.
func (l *List[T]) Explode() *List[*List[T]] {
	working := l.Copy()

	out := &List[*List[T]]{}
	for !working.IsEmpty() {
		singleton := &List[T]{}
		singleton.Back().Append(working.PopFront())
		out.PushBack(singleton)
	}

	return out
}

func (l *List[T]) sortMergeRecursive(lt cmp.LessThan[T]) *List[T] {
	if l.Len() < 2 {
		return l.Copy()
	}

	left, right := l.SplitHalves()

	// the inductive hypothesis: the algorithm sorts any smaller
	// list, so a stable merge of the sorted halves sorts the whole.
	return mergeSorted(lt, left.sortMergeRecursive(lt), right.sortMergeRecursive(lt))
}

func (l *List[T]) sortMergeIterative(lt cmp.LessThan[T]) *List[T] {
	if l.Len() < 2 {
		return l.Copy()
	}

	// bottom-up: a queue of sorted runs, starting from singletons,
	// merged pairwise from the front until one remains.
	queue := l.Explode()
	for queue.Len() > 1 {
		left := queue.PopFront().Value()
		right := queue.PopFront().Value()
		queue.PushBack(mergeSorted(lt, left, right))
	}

	return queue.PopFront().Value()
}

// mergeSorted consumes both inputs. Ties take from a, which keeps the
// public operations stable toward their receivers.
func mergeSorted[T any](lt cmp.LessThan[T], a, b *List[T]) *List[T] {
	out := &List[T]{}
	for a.Len() != 0 && b.Len() != 0 {
		if lt(b.Front().Value(), a.Front().Value()) {
			out.Back().Append(b.PopFront())
		} else {
			out.Back().Append(a.PopFront())
		}
	}
	out.Extend(a)
	out.Extend(b)

	return out
}
