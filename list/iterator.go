package list

// Position is a location in a List: an element, the before-begin sentinel or the end.
// It is implemented by Iterator and ConstIterator.
type Position[T any] interface {
	elem() *listElem[T]
}

// Iterator is a forward cursor that allows modifying the referenced element.
//
// The zero value equals End. An iterator does not keep its element in the list:
// it becomes invalid once that element is erased.
type Iterator[T any] struct {
	e *listElem[T]
}

func (it Iterator[T]) elem() *listElem[T] { return it.e }

// Equal reports whether it and other refer to the same position.
// other may be either iterator variant.
func (it Iterator[T]) Equal(other Position[T]) bool {
	return it.e == other.elem()
}

// Next returns an iterator to the following position. it must not be End.
func (it Iterator[T]) Next() Iterator[T] {
	contract(it.e != nil, "advance", "end position")

	return Iterator[T]{e: it.e.next}
}

// Inc advances it and returns the new position.
func (it *Iterator[T]) Inc() Iterator[T] {
	*it = it.Next()

	return *it
}

// PostInc advances it and returns the position it had before.
func (it *Iterator[T]) PostInc() Iterator[T] {
	old := *it
	*it = it.Next()

	return old
}

// Value returns the referenced element.
func (it Iterator[T]) Value() T { //nolint:ireturn
	contract(it.e != nil, "dereference", "end position")

	return it.e.val
}

// Set overwrites the referenced element.
func (it Iterator[T]) Set(val T) {
	contract(it.e != nil, "dereference", "end position")

	it.e.val = val
}

// Ptr returns a pointer to the referenced element.
func (it Iterator[T]) Ptr() *T {
	contract(it.e != nil, "dereference", "end position")

	return &it.e.val
}

// Const returns a read-only iterator to the same position.
func (it Iterator[T]) Const() ConstIterator[T] {
	return ConstIterator[T]{e: it.e}
}

// ConstIterator is a forward cursor with read-only access to the referenced element.
type ConstIterator[T any] struct {
	e *listElem[T]
}

func (it ConstIterator[T]) elem() *listElem[T] { return it.e }

// Equal reports whether it and other refer to the same position.
func (it ConstIterator[T]) Equal(other Position[T]) bool {
	return it.e == other.elem()
}

// Next returns an iterator to the following position. it must not be End.
func (it ConstIterator[T]) Next() ConstIterator[T] {
	contract(it.e != nil, "advance", "end position")

	return ConstIterator[T]{e: it.e.next}
}

// Inc advances it and returns the new position.
func (it *ConstIterator[T]) Inc() ConstIterator[T] {
	*it = it.Next()

	return *it
}

// PostInc advances it and returns the position it had before.
func (it *ConstIterator[T]) PostInc() ConstIterator[T] {
	old := *it
	*it = it.Next()

	return old
}

// Value returns the referenced element.
func (it ConstIterator[T]) Value() T { //nolint:ireturn
	contract(it.e != nil, "dereference", "end position")

	return it.e.val
}
