package list

import "cmp"

// Equal reports whether a and b have the same length and equal elements in the same order.
func Equal[T comparable](a, b *List[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is like Equal but uses eq to compare elements.
func EqualFunc[T1, T2 any](a *List[T1], b *List[T2], eq func(T1, T2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}

	x, y := a.head.next, b.head.next
	for ; x != nil; x, y = x.next, y.next {
		if !eq(x.val, y.val) {
			return false
		}
	}

	return true
}

// Compare compares a and b lexicographically.
// The first unequal pair decides. Otherwise the shorter list is less.
// The result is -1, 0 or +1.
func Compare[T cmp.Ordered](a, b *List[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is like Compare but uses cmp to compare elements.
func CompareFunc[T1, T2 any](a *List[T1], b *List[T2], cmp func(T1, T2) int) int {
	x, y := a.head.next, b.head.next
	for ; x != nil && y != nil; x, y = x.next, y.next {
		if c := cmp(x.val, y.val); c != 0 {
			return c
		}
	}

	switch {
	case x == nil && y == nil:
		return 0
	case x == nil:
		return -1
	default:
		return +1
	}
}

func Less[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) < 0
}

func Greater[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) > 0
}

func LessOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) <= 0
}

func GreaterOrEqual[T cmp.Ordered](a, b *List[T]) bool {
	return Compare(a, b) >= 0
}
