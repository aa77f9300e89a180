// Package chain provides a doubly linked list implementation with
// value semantics: lists own their elements exclusively, copies are
// always deep, and two lists never share structure. The package also
// provides ordered insertion and the classic list sorting algorithms
// (insertion sort, and merge sort in recursive and iterative forms,)
// along with structural self-verification helpers.
//
// Callers are responsible for their own concurrency control: lists
// and their elements are not safe for access from multiple concurrent
// go routines, and should generally be used with the same care as a
// slice.
package chain

import (
	"github.com/tychoish/fun"
	"github.com/tychoish/fun/ers"
)

// ErrUninitializedList is the content of the panic produced when you
// attempt to perform an operation on a nil list.
const ErrUninitializedList ers.Error = ers.Error("uninitialized list")

// ErrEmptyList is returned by the value accessors (FrontValue,
// BackValue) when the list contains no elements.
const ErrEmptyList ers.Error = ers.Error("empty list")

// ErrListCorrupt is the root of the panics and errors raised when the
// internal consistency checks fail. These indicate a bug in the
// container, never a usage error.
const ErrListCorrupt ers.Error = ers.Error("corrupt list: bad root link, stale element pointer, or wrong length")

// List provides a doubly linked list. The zero value is an empty
// list, ready to use.
//
// Lists exclusively own their elements: Copy and Assign replicate
// values element-by-element, and the sorting operations always build
// their output in fresh lists, so distinct list variables never alias
// the same chain.
type List[T any] struct {
	head   *Element[T]
	length int
}

// Element is the underlying component of a list, provided by the Pop
// operations and the Front/Back accessors. You can use the methods on
// these objects to iterate through the list, and the Ok() method for
// validating zero-valued items.
type Element[T any] struct {
	next *Element[T]
	prev *Element[T]
	list *List[T]
	ok   bool
	item T
}

// NewElement produces an unattached Element that you can use with
// Append. Element.Append(NewElement()) is essentially the same as
// List.PushBack().
func NewElement[T any](val T) *Element[T] { return &Element[T]{item: val, ok: true} }

// Value accesses the element's value. Safe to call on nil elements.
func (e *Element[T]) Value() (out T) {
	if e != nil {
		out = e.item
	}
	return
}

// Ok checks that an element is valid. Invalid elements are produced
// at the ends of iterations (e.g. the list's root object,) and by
// Pop operations on empty lists.
//
// Returns false when the element is nil.
func (e *Element[T]) Ok() bool { return e != nil && e.ok }

// Next produces the next element. This is always non-nil, *unless*
// the element is not a member of a list. At the ends of a list, the
// value is non-nil, but would return false for Ok.
func (e *Element[T]) Next() *Element[T] { return e.next }

// Previous produces the previous element. This is always non-nil,
// *unless* the element is not a member of a list. At the ends of a
// list, the value is non-nil, but would return false for Ok.
func (e *Element[T]) Previous() *Element[T] { return e.prev }

// In checks to see if an element is in the specified list. Because
// elements hold a pointer to their list, this is an O(1) operation.
//
// Returns false when the element is nil.
func (e *Element[T]) In(l *List[T]) bool { return e != nil && e.list != nil && e.list == l }

// Set changes the value of the element in place. Returns true if the
// operation is successful. The operation fails if the Element is the
// root item of a list.
//
// Set is safe to call on nil elements.
func (e *Element[T]) Set(v T) bool {
	if e == nil || e.isRoot() {
		return false
	}

	e.ok = true
	e.item = v
	return true
}

// Append adds the element 'val' after the element 'e', inserting it
// in the next position in the list. Will return 'e' if 'val' is not
// valid for insertion into this list. PushBack, PushFront, and the
// ordered insertion operations are implemented in terms of Append.
func (e *Element[T]) Append(val *Element[T]) *Element[T] {
	if !e.appendable(val) {
		return e
	}

	e.uncheckedAppend(val)
	return val
}

// Push wraps Append, creating the element for the provided value.
func (e *Element[T]) Push(v T) *Element[T] { return e.Append(NewElement(v)) }

// Remove removes the element from its list, returning true if the
// operation was successful. Remove returns false when the element is
// not valid to be removed (e.g. is not part of a list, or is the root
// element of the list.)
func (e *Element[T]) Remove() bool {
	if !e.removable() {
		return false
	}
	e.uncheckedRemove()
	return true
}

// Drop wraps Remove, and additionally, if the remove was successful,
// drops the value and sets the Ok value to false.
func (e *Element[T]) Drop() {
	if e == nil || !e.Remove() {
		return
	}
	e.item = e.zero()
	e.ok = false
}

func (e *Element[T]) isRoot() bool {
	return e.list != nil && e.list.head != nil && e.list.head == e
}

// appendable requires the incoming element to be detached: splicing
// an element that still belongs to a list would leave the old list's
// ring pointing at a stolen member.
func (e *Element[T]) appendable(val *Element[T]) bool {
	return val != nil && val.ok && val.list == nil && e != nil && e.list != nil
}

func (e *Element[T]) removable() bool {
	return e != nil && e.list != nil && e.list.head != e && e.list.length > 0
}

func (e *Element[T]) uncheckedAppend(val *Element[T]) {
	e.list.length++
	val.list = e.list
	val.prev = e
	val.next = e.next
	val.prev.next = val
	val.next.prev = val
}

func (e *Element[T]) uncheckedRemove() {
	e.list.length--
	e.prev.next = e.next
	e.next.prev = e.prev
	e.list = nil
}

func (*Element[T]) zero() (o T) { return }
func (*List[T]) zero() (o T)    { return }

// Len returns the length of the list. As the append/remove operations
// track the length of the list, this is an O(1) operation.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return l.length
}

// IsEmpty returns true when the list has no elements.
func (l *List[T]) IsEmpty() bool { return l.Len() == 0 }

// PushFront creates an element and prepends it to the list. The
// performance of PushFront and PushBack are the same.
func (l *List[T]) PushFront(it T) { l.root().Push(it) }

// PushBack creates an element and appends it to the list. The
// performance of PushFront and PushBack are the same.
func (l *List[T]) PushBack(it T) { l.Back().Push(it) }

// Append adds a variadic sequence of items to the end of the list.
func (l *List[T]) Append(items ...T) {
	for idx := range items {
		l.PushBack(items[idx])
	}
}

// PopFront removes the first element from the list and returns
// it. If the list is empty, this returns a detached non-nil value
// that reports an Ok() false value, and the list is not modified. You
// can use the returned element to produce a C-style iterator over the
// list that removes items during the iteration:
//
//	for e := list.PopFront(); e.Ok(); e = list.PopFront() {
//		// do work
//	}
func (l *List[T]) PopFront() *Element[T] { return l.pop(l.root().next) }

// PopBack removes the last element from the list and returns it. If
// the list is empty, this returns a detached non-nil value that
// reports an Ok() false value, and the list is not modified. You can
// use the returned element to produce a C-style iterator over the
// list that removes items during the iteration:
//
//	for e := list.PopBack(); e.Ok(); e = list.PopBack() {
//		// do work
//	}
func (l *List[T]) PopBack() *Element[T] { return l.pop(l.root().prev) }

// Front returns a pointer to the first element of the list. If the
// list is empty this is the root object, which reports Ok()
// false. The operation is non-destructive. You can use this pointer
// to begin a C-style iteration over the list:
//
//	for e := list.Front(); e.Ok(); e = e.Next() {
//		// operate
//	}
func (l *List[T]) Front() *Element[T] { return l.root().next }

// Back returns a pointer to the last element of the list. If the
// list is empty this is the root object, which reports Ok()
// false. The operation is non-destructive. You can use this pointer
// to begin a C-style iteration over the list:
//
//	for e := list.Back(); e.Ok(); e = e.Previous() {
//		// operate
//	}
func (l *List[T]) Back() *Element[T] { return l.root().prev }

// FrontValue returns the value of the first element of the list, or
// ErrEmptyList when the list has no elements.
//
// The error taxonomy here is deliberate: accessing a boundary value
// of an empty list is a usage error and reports it, while popping
// from an empty list is defined as a harmless no-op.
func (l *List[T]) FrontValue() (T, error) {
	if e := l.Front(); e.Ok() {
		return e.Value(), nil
	}
	return l.zero(), ErrEmptyList
}

// BackValue returns the value of the last element of the list, or
// ErrEmptyList when the list has no elements.
func (l *List[T]) BackValue() (T, error) {
	if e := l.Back(); e.Ok() {
		return e.Value(), nil
	}
	return l.zero(), ErrEmptyList
}

// Clear removes every element from the list, leaving it empty and
// reusable.
func (l *List[T]) Clear() {
	for l.PopBack().Ok() {
		continue
	}

	fun.Invariant.Ok(l.length == 0, ErrListCorrupt)
}

// Equal compares two lists pairwise using the provided equality
// relation for values. Lists of different lengths are unequal without
// traversal. The relation makes the operation usable with element
// types, like lists themselves, that are not comparable.
func (l *List[T]) Equal(other *List[T], eq func(a, b T) bool) bool {
	if l.Len() != other.Len() {
		return false
	}
	if l.Len() == 0 {
		return true
	}

	this, that := l.Front(), other.Front()
	for this.Ok() {
		fun.Invariant.Ok(that.Ok(), ErrListCorrupt)

		if !eq(this.Value(), that.Value()) {
			return false
		}
		this, that = this.Next(), that.Next()
	}

	return true
}

// EqualValues compares two lists of comparable values with the ==
// operator at every position.
func EqualValues[T comparable](a, b *List[T]) bool {
	return a.Equal(b, func(x, y T) bool { return x == y })
}

// Copy duplicates the list, walking the source front-to-back and
// pushing each value onto a fresh list. The element objects in the
// two lists are fully distinct, though if the values are themselves
// references, the values of both lists would be shared.
func (l *List[T]) Copy() *List[T] {
	out := &List[T]{}
	if l.Len() == 0 {
		return out
	}

	for elem := l.Front(); elem.Ok(); elem = elem.Next() {
		out.PushBack(elem.Value())
	}
	return out
}

// Assign replaces the contents of the list with a deep copy of the
// other list's values: the destination is cleared first, then the
// source is walked front-to-back.
func (l *List[T]) Assign(other *List[T]) {
	l.Clear()
	for elem := other.Front(); elem.Ok(); elem = elem.Next() {
		l.PushBack(elem.Value())
	}
}

// Extend removes items from the front of the input list, and appends
// them to the end (back) of the current list.
func (l *List[T]) Extend(input *List[T]) {
	if input.Len() == 0 {
		return
	}

	for elem := input.PopFront(); elem.Ok(); elem = input.PopFront() {
		l.Back().Append(elem)
	}
}

// Slice exports the values in the list to a slice, front-to-back.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.Len())
	if l.Len() == 0 {
		return out
	}

	for elem := l.Front(); elem.Ok(); elem = elem.Next() {
		out = append(out, elem.Value())
	}
	return out
}

func (l *List[T]) root() *Element[T] {
	fun.Invariant.Ok(l != nil, ErrUninitializedList)

	if l.head == nil {
		l.uncheckedSetup()
	}

	return l.head
}

func (l *List[T]) uncheckedSetup() {
	l.head = &Element[T]{}
	l.head.next = l.head
	l.head.prev = l.head
	l.head.list = l
	l.head.ok = false
}

func (l *List[T]) pop(it *Element[T]) *Element[T] {
	if !it.removable() || l.head == nil || it.list.head != l.head {
		return &Element[T]{}
	}

	// when popping the only element both neighbors are the root.
	sole := it.next == it.prev

	it.uncheckedRemove()

	if sole {
		fun.Invariant.Ok(l.length == 0, ErrListCorrupt)
	}

	return it
}
