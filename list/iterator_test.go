package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/percona-lab/slist/list"
)

func TestIterator(t *testing.T) {
	t.Parallel()

	t.Run("walk", func(t *testing.T) {
		t.Parallel()

		l := list.New(1, 2, 3)

		var got []int
		for it := l.Begin(); it != l.End(); it.Inc() {
			got = append(got, it.Value())
		}

		assert.Equal(t, []int{1, 2, 3}, got)
	})

	t.Run("post increment", func(t *testing.T) {
		t.Parallel()

		l := list.New(1, 2)
		it := l.Begin()

		old := it.PostInc()
		assert.Equal(t, 1, old.Value())
		assert.Equal(t, 2, it.Value())

		assert.Equal(t, 2, it.PostInc().Value())
		assert.Equal(t, l.End(), it)
	})

	t.Run("pre increment", func(t *testing.T) {
		t.Parallel()

		l := list.New(1, 2)
		it := l.BeforeBegin()

		assert.Equal(t, 1, it.Inc().Value())
		assert.Equal(t, 2, it.Inc().Value())
		assert.Equal(t, l.End(), it.Inc())
	})

	t.Run("write through", func(t *testing.T) {
		t.Parallel()

		l := list.New(1, 2, 3)
		for it := l.Begin(); it != l.End(); it.Inc() {
			*it.Ptr() *= 10
		}
		l.Begin().Set(5)

		assert.True(t, list.Equal(list.New(5, 20, 30), l))
	})

	t.Run("member access", func(t *testing.T) {
		t.Parallel()

		type point struct{ X, Y int }

		l := list.New(point{1, 2})
		l.Begin().Ptr().Y = 7

		assert.Equal(t, 7, l.CBegin().Value().Y)
	})

	t.Run("const and mutable compare equal", func(t *testing.T) {
		t.Parallel()

		l := list.New(1, 2)

		assert.True(t, l.Begin().Equal(l.CBegin()))
		assert.True(t, l.CBegin().Equal(l.Begin()))
		assert.True(t, l.End().Equal(l.CEnd()))
		assert.True(t, l.BeforeBegin().Equal(l.CBeforeBegin()))
		assert.True(t, l.Begin().Const() == l.CBegin())
		assert.False(t, l.Begin().Equal(l.CBeforeBegin()))
		assert.False(t, l.Begin().Next().Equal(l.CBegin()))
	})

	t.Run("empty list", func(t *testing.T) {
		t.Parallel()

		var l list.List[string]

		assert.Equal(t, l.End(), l.Begin())
		assert.Equal(t, l.CEnd(), l.CBegin())
		assert.Equal(t, l.End(), l.BeforeBegin().Next())
		assert.True(t, list.Iterator[string]{}.Equal(l.End()))
	})

	t.Run("const walk", func(t *testing.T) {
		t.Parallel()

		l := list.New("a", "b")

		var got []string
		for it := l.CBegin(); !it.Equal(l.CEnd()); it.Inc() {
			got = append(got, it.Value())
		}

		assert.Equal(t, []string{"a", "b"}, got)

		it := l.CBegin()
		assert.Equal(t, "a", it.PostInc().Value())
		assert.Equal(t, "b", it.Value())
	})
}
