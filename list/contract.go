package list

import "github.com/percona-lab/slist/errors"

// ErrContractViolation is the panic cause reported by debug builds (listdebug tag)
// when a precondition of a list operation does not hold.
var ErrContractViolation = errors.New("contract violation")

func contract(cond bool, op, reason string) {
	if debugAssertions && !cond {
		panic(errors.Wrap(ErrContractViolation, op+": "+reason))
	}
}

// contractOwns checks that e is the sentinel or an element of l. It walks the list.
func (l *List[T]) contractOwns(e *listElem[T], op string) {
	if !debugAssertions {
		return
	}

	for n := &l.head; n != nil; n = n.next {
		if n == e {
			return
		}
	}

	panic(errors.Wrap(ErrContractViolation, op+": position from another list"))
}
