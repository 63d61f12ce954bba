// Package list implements a generic singly linked list with a before-begin sentinel.
//
// Positions are expressed with iterators. InsertAfter and EraseAfter operate on the element
// that follows a position, so the same code handles the front of the list (via BeforeBegin)
// and any element reached by walking forward.
//
// Preconditions are not checked. Popping an empty list, erasing after the last element or
// dereferencing End is a programming error. Build with the listdebug tag to turn these into
// panics wrapping ErrContractViolation.
package list

import (
	"iter"
	"slices"
)

// List is a singly linked list.
//
// The zero value is an empty list ready to use. A List must not be copied by value once it
// is in use: the sentinel lives inside the struct and BeforeBegin refers to it.
type List[T any] struct {
	head listElem[T] // sentinel. never holds a value and is not counted.
	size int
}

// listElem is an element in the singly linked list.
type listElem[T any] struct {
	next *listElem[T]
	val  T
}

// New returns a list holding vals in the same order.
func New[T any](vals ...T) *List[T] {
	return FromSeq(slices.Values(vals))
}

// FromSeq returns a list holding the values produced by seq in the same order.
func FromSeq[T any](seq iter.Seq[T]) *List[T] {
	l := &List[T]{}
	l.build(seq)

	return l
}

// build replaces the content of an empty list with seq.
// Only front insertion is used: the first pass reverses the input, the second restores it.
func (l *List[T]) build(seq iter.Seq[T]) {
	var reversed, ordered List[T]

	for v := range seq {
		reversed.PushFront(v)
	}

	for e := reversed.head.next; e != nil; e = e.next {
		ordered.PushFront(e.val)
	}

	reversed.Clear()
	l.Swap(&ordered)
}

// Clone returns a deep copy of the list. The copy shares no elements with l.
func (l *List[T]) Clone() *List[T] {
	return FromSeq(l.All())
}

// Assign replaces the content of l with a deep copy of src.
// The copy is built completely before l is touched.
func (l *List[T]) Assign(src *List[T]) {
	if l == src {
		return
	}

	tmp := src.Clone()
	l.Swap(tmp)
	tmp.Clear()
}

// Swap exchanges the content of l and other in constant time.
func (l *List[T]) Swap(other *List[T]) {
	l.head.next, other.head.next = other.head.next, l.head.next
	l.size, other.size = other.size, l.size
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.size
}

// IsEmpty checks if the list is empty.
func (l *List[T]) IsEmpty() bool {
	return l.size == 0
}

// Front returns the first element. The list must not be empty.
func (l *List[T]) Front() T { //nolint:ireturn
	contract(l.head.next != nil, "front", "empty list")

	return l.head.next.val
}

// PushFront adds a new element to the front of the list.
func (l *List[T]) PushFront(val T) {
	l.insertAfter(&l.head, val)
}

// PopFront removes the first element and returns its value. The list must not be empty.
func (l *List[T]) PopFront() T { //nolint:ireturn
	contract(l.head.next != nil, "pop front", "empty list")

	val := l.head.next.val
	l.eraseAfter(&l.head)

	return val
}

// Clear removes all elements from the list.
// Elements are unlinked one by one from the front so that a stale iterator
// does not keep the rest of the chain reachable.
func (l *List[T]) Clear() {
	for e := l.head.next; e != nil; {
		next := e.next
		*e = listElem[T]{}
		e = next
	}

	l.head.next = nil
	l.size = 0
}

// InsertAfter inserts val right after pos and returns an iterator to the new element.
// pos must belong to l and must not be End. BeforeBegin inserts at the front.
func (l *List[T]) InsertAfter(pos Position[T], val T) Iterator[T] {
	e := pos.elem()
	contract(e != nil, "insert after", "end position")
	l.contractOwns(e, "insert after")

	return Iterator[T]{e: l.insertAfter(e, val)}
}

// EraseAfter removes the element that follows pos and returns an iterator to the element
// now following pos, which is End when the last element was removed.
// pos must belong to l and must have a successor.
func (l *List[T]) EraseAfter(pos Position[T]) Iterator[T] {
	e := pos.elem()
	contract(e != nil && e.next != nil, "erase after", "no successor")
	l.contractOwns(e, "erase after")

	l.eraseAfter(e)

	return Iterator[T]{e: e.next}
}

func (l *List[T]) insertAfter(at *listElem[T], val T) *listElem[T] {
	e := &listElem[T]{next: at.next, val: val}
	at.next = e
	l.size++

	return e
}

func (l *List[T]) eraseAfter(at *listElem[T]) {
	victim := at.next
	at.next = victim.next
	*victim = listElem[T]{}
	l.size--
}

// Begin returns an iterator to the first element, or End if the list is empty.
func (l *List[T]) Begin() Iterator[T] {
	return Iterator[T]{e: l.head.next}
}

// End returns the position one past the last element. It is never dereferenceable.
func (l *List[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// BeforeBegin returns the position preceding the first element.
// It is only valid as an argument to InsertAfter and EraseAfter.
func (l *List[T]) BeforeBegin() Iterator[T] {
	return Iterator[T]{e: &l.head}
}

// CBegin is the read-only counterpart of Begin.
func (l *List[T]) CBegin() ConstIterator[T] {
	return ConstIterator[T]{e: l.head.next}
}

// CEnd is the read-only counterpart of End.
func (l *List[T]) CEnd() ConstIterator[T] {
	return ConstIterator[T]{}
}

// CBeforeBegin is the read-only counterpart of BeforeBegin.
func (l *List[T]) CBeforeBegin() ConstIterator[T] {
	return ConstIterator[T]{e: &l.head}
}

// All returns an iterator for all elements in the list.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := l.head.next; e != nil; e = e.next {
			if !yield(e.val) {
				return
			}
		}
	}
}

// Swap exchanges the content of a and b. It is equivalent to a.Swap(b).
func Swap[T any](a, b *List[T]) {
	a.Swap(b)
}
