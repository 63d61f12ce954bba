package list_test

import (
	"fmt"

	"github.com/percona-lab/slist/list"
)

func Example() {
	l := list.New(1, 2, 3)

	l.InsertAfter(l.Begin(), 42)
	l.PushFront(0)

	for it := l.Begin(); it != l.End(); it.Inc() {
		fmt.Print(it.Value(), " ")
	}
	fmt.Println(l.Len())

	// Remove every even value using the position before it.
	for prev := l.BeforeBegin(); prev.Next() != l.End(); {
		if prev.Next().Value()%2 == 0 {
			l.EraseAfter(prev)
		} else {
			prev.Inc()
		}
	}

	for v := range l.All() {
		fmt.Print(v, " ")
	}
	fmt.Println(l.Len())

	// Output:
	// 0 1 42 2 3 5
	// 1 3 2
}
