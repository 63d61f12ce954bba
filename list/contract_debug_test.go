//go:build listdebug

package list_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percona-lab/slist/errors"
	"github.com/percona-lab/slist/list"
)

func assertViolation(t *testing.T, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a contract violation")

		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, list.ErrContractViolation))
	}()

	fn()
}

func TestContractViolations(t *testing.T) {
	t.Parallel()

	t.Run("pop empty", func(t *testing.T) {
		t.Parallel()

		var l list.List[int]
		assertViolation(t, func() { l.PopFront() })
		assertViolation(t, func() { l.Front() })
	})

	t.Run("erase after last", func(t *testing.T) {
		t.Parallel()

		l := list.New(1)
		assertViolation(t, func() { l.EraseAfter(l.Begin()) })
		assertViolation(t, func() { l.EraseAfter(l.End()) })
	})

	t.Run("insert after end", func(t *testing.T) {
		t.Parallel()

		l := list.New(1)
		assertViolation(t, func() { l.InsertAfter(l.End(), 2) })
	})

	t.Run("foreign position", func(t *testing.T) {
		t.Parallel()

		a, b := list.New(1), list.New(2)
		assertViolation(t, func() { a.InsertAfter(b.Begin(), 3) })
		assertViolation(t, func() { a.InsertAfter(b.BeforeBegin(), 3) })
		assert.Equal(t, 1, a.Len())
		assert.Equal(t, 1, b.Len())
	})

	t.Run("dereference end", func(t *testing.T) {
		t.Parallel()

		l := list.New(1)
		assertViolation(t, func() { l.End().Value() })
		assertViolation(t, func() { l.CEnd().Next() })
	})
}
