// Package list contains the implementation of a generic cursor list: a
// sequence of values with a movable selection, backed by a circular
// doubly-linked chain of nodes anchored on a sentinel.
//
// The list tracks a "current" element, the cursor, which can be any element
// from the first to the last, or a special position meaning that no element is
// selected. Programs never manipulate nodes directly: every operation is
// expressed relative to the cursor, and only element values cross the API.
//
// A list is created with a default value. The default value is returned by Get
// when no element is selected, it is never part of the list content:
//
//	l := list.New(-1)
//	l.InsertAfter(3) // 3 is selected
//	l.InsertAfter(7) // 7 is selected, the list is [3 7]
//
//	l.MoveToFirst()
//	for !l.None() {
//		v := l.Get()
//		...
//		l.StepForward()
//	}
//
// Stepping past either end of the list leaves the list with no selection, and
// stepping again from there reports false, which gives the loop above its exit
// condition.
//
// All operations run in constant time, except Reverse and Range which visit
// every element of the list. Lists are not safe to use concurrently from
// multiple goroutines, programs must synchronize access externally (one mutex
// per list is enough since no operation ever touches another list).
package list

import "errors"

var (
	// ErrNoNodes is returned by insertion methods when the list was configured
	// with a maximum length and is already full.
	ErrNoNodes = errors.New("there are no free nodes left in the list")

	// ErrFreed is the panic value raised when a list is used after a call to
	// Free.
	ErrFreed = errors.New("use of a list after it was freed")
)

// List values are cursor lists of elements of type T.
//
// The zero-value is a valid empty list with no selection, using the zero
// value of T as default element.
type List[T any] struct {
	nodes  nodes[T]
	cursor int
	size   int
	limit  int
	freed  bool
}

// New constructs a new empty list, using def as default element and the list
// of options passed as arguments to configure it.
func New[T any](def T, options ...Option) *List[T] {
	config := DefaultConfig()
	config.Apply(options...)
	return NewWithConfig(def, config)
}

// NewWithConfig is like New but uses a Config instance to pass the list
// configuration instead of a list of options.
func NewWithConfig[T any](def T, config *Config) *List[T] {
	list := new(List[T])
	list.nodes.init(def, config.Capacity)
	if config.MaxLen > 0 {
		list.limit = config.MaxLen
	}
	return list
}

// Len returns the number of elements in the list.
func (list *List[T]) Len() int {
	list.check()
	return list.size
}

// Free releases all the elements of the list.
//
// The list cannot be used after being freed, any subsequent method call
// panics with ErrFreed. Calling Free more than once also panics.
func (list *List[T]) Free() {
	list.check()
	list.nodes = nodes[T]{}
	list.cursor = sentinel
	list.size = 0
	list.freed = true
}

// MoveToFirst selects the first element of the list. The method does nothing
// if the list is empty.
func (list *List[T]) MoveToFirst() {
	list.check()
	if first := list.nodes.at(sentinel).next; first != sentinel {
		list.cursor = first
	}
}

// MoveToLast selects the last element of the list. The method does nothing if
// the list is empty.
func (list *List[T]) MoveToLast() {
	list.check()
	if last := list.nodes.at(sentinel).back; last != sentinel {
		list.cursor = last
	}
}

// None returns true if no element of the list is selected.
func (list *List[T]) None() bool {
	list.check()
	return list.cursor == sentinel
}

// StepForward selects the element following the current one and returns true.
//
// When the last element is selected, StepForward leaves the list with no
// selection and still returns true. The method only returns false, without
// doing anything, if no element was selected when it was called.
func (list *List[T]) StepForward() bool {
	list.check()
	if list.cursor == sentinel {
		return false
	}
	list.cursor = list.nodes.at(list.cursor).next
	return true
}

// StepBackward selects the element preceding the current one and returns
// true.
//
// When the first element is selected, StepBackward leaves the list with no
// selection and still returns true. The method only returns false, without
// doing anything, if no element was selected when it was called.
func (list *List[T]) StepBackward() bool {
	list.check()
	if list.cursor == sentinel {
		return false
	}
	list.cursor = list.nodes.at(list.cursor).back
	return true
}

// Get returns the selected element, or the default element of the list if
// none are selected.
func (list *List[T]) Get() T {
	list.check()
	return list.nodes.at(list.cursor).value
}

// Set overwrites the selected element with v and returns true. If no element
// is selected, the method does nothing and returns false.
func (list *List[T]) Set(v T) bool {
	list.check()
	if list.cursor == sentinel {
		return false
	}
	list.nodes.at(list.cursor).value = v
	return true
}

// SetDefault overwrites the default element returned by Get when no element
// is selected.
func (list *List[T]) SetDefault(v T) {
	list.check()
	list.nodes.at(sentinel).value = v
}

// InsertAfter inserts v right after the selected element, or at the front of
// the list if no element is selected. The new element becomes the selected
// one.
//
// The method returns ErrNoNodes if the list is full, in which case the list
// is left unchanged.
func (list *List[T]) InsertAfter(v T) error {
	list.check()
	if list.full() {
		return ErrNoNodes
	}
	// The sentinel sits before the first element, so splicing after it when
	// nothing is selected inserts at the front.
	i := list.nodes.alloc(v)
	list.nodes.splice(i, list.cursor, list.nodes.at(list.cursor).next)
	list.cursor = i
	list.size++
	return nil
}

// InsertBefore inserts v right before the selected element, or at the back of
// the list if no element is selected. The new element becomes the selected
// one.
//
// The method returns ErrNoNodes if the list is full, in which case the list
// is left unchanged.
func (list *List[T]) InsertBefore(v T) error {
	list.check()
	if list.full() {
		return ErrNoNodes
	}
	i := list.nodes.alloc(v)
	list.nodes.splice(i, list.nodes.at(list.cursor).back, list.cursor)
	list.cursor = i
	list.size++
	return nil
}

// DeleteForward removes the selected element from the list, selects the
// element that followed it and returns true. If the last element is removed,
// no element is selected after the call.
//
// If no element is selected, the method does nothing and returns false.
func (list *List[T]) DeleteForward() bool {
	list.check()
	if list.cursor == sentinel {
		return false
	}
	next := list.nodes.at(list.cursor).next
	list.remove(list.cursor)
	list.cursor = next
	return true
}

// DeleteBackward removes the selected element from the list, selects the
// element that preceded it and returns true. If the first element is removed,
// no element is selected after the call.
//
// If no element is selected, the method does nothing and returns false.
func (list *List[T]) DeleteBackward() bool {
	list.check()
	if list.cursor == sentinel {
		return false
	}
	back := list.nodes.at(list.cursor).back
	list.remove(list.cursor)
	list.cursor = back
	return true
}

// Reverse inverts the order of elements in the list. The selected element
// remains the same, its position in the sequence changes (the first element
// becomes the last, and so on).
func (list *List[T]) Reverse() {
	list.check()
	list.nodes.reverse()
}

// Range calls f for each element of the list, from front to back. The second
// argument passed to f is true for the selected element. If f returns false,
// the iteration is stopped.
//
// The list must not be modified by f.
func (list *List[T]) Range(f func(value T, selected bool) bool) {
	list.check()
	for i := list.nodes.at(sentinel).next; i != sentinel; {
		n := list.nodes.at(i)
		if !f(n.value, i == list.cursor) {
			break
		}
		i = n.next
	}
}

func (list *List[T]) full() bool {
	return list.limit > 0 && list.size >= list.limit
}

func (list *List[T]) remove(i int) {
	list.nodes.unlink(i)
	list.nodes.release(i)
	list.size--
}

func (list *List[T]) check() {
	if list.freed {
		panic(ErrFreed)
	}
	if list.nodes.slots == nil {
		// Zero-value list, the sentinel holds the zero-value of T.
		var zero T
		list.nodes.init(zero, 0)
	}
}
