package chain

import (
	"testing"

	"github.com/tychoish/fun/assert"
	"github.com/tychoish/fun/assert/check"
	"github.com/tychoish/fun/ers"
)

func TestVerification(t *testing.T) {
	t.Run("CleanAfterMutation", func(t *testing.T) {
		list := &List[int]{}

		checkClean := func(t *testing.T) {
			t.Helper()
			check.NotError(t, list.CheckLength())
			check.NotError(t, list.CheckLinks())
		}

		checkClean(t)

		for i := 0; i < 50; i++ {
			if i%2 == 0 {
				list.PushBack(i)
			} else {
				list.PushFront(i)
			}
		}
		checkClean(t)

		list.PopFront()
		list.PopBack()
		checkClean(t)

		list.Front().Next().Remove()
		checkClean(t)

		list.InsertOrdered(func(a, b int) bool { return a < b }, 25)
		checkClean(t)

		list.Clear()
		checkClean(t)
	})
	t.Run("WrongLength", func(t *testing.T) {
		list := &List[int]{}
		list.Append(1, 2, 3)
		list.length++

		err := list.CheckLength()
		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrListCorrupt)
	})
	t.Run("BrokenPrevLink", func(t *testing.T) {
		list := &List[int]{}
		list.Append(1, 2, 3)

		// point the tail's prev pointer past its real
		// predecessor; the forward chain is untouched.
		list.Back().prev = list.Front()

		check.NotError(t, list.CheckLength())
		err := list.CheckLinks()
		assert.Error(t, err)
		assert.ErrorIs(t, err, ErrListCorrupt)
	})
	t.Run("PopDetectsStaleLength", func(t *testing.T) {
		list := &List[int]{}
		list.PushBack(42)
		list.length++

		assert.Panic(t, func() { list.PopFront() })
	})
	t.Run("ClearDetectsStaleLength", func(t *testing.T) {
		list := &List[int]{}
		list.Append(1, 2)
		list.length++

		assert.Panic(t, list.Clear)
	})
	t.Run("EqualDetectsMissingElements", func(t *testing.T) {
		one := &List[int]{}
		one.Append(1, 2)

		two := &List[int]{}
		two.PushBack(1)
		two.length++

		assert.Panic(t, func() { one.Equal(two, func(a, b int) bool { return a == b }) })
	})
	t.Run("PanicsCarryInvariantError", func(t *testing.T) {
		list := &List[int]{}
		list.PushBack(1)
		list.length++

		defer func() {
			err, ok := recover().(error)
			assert.True(t, ok)
			assert.ErrorIs(t, err, ers.ErrInvariantViolation)
			assert.ErrorIs(t, err, ErrListCorrupt)
		}()

		list.PopBack()
	})
}
