// Package script parses and applies short operation scripts to a list of integers.
//
// A script is a comma separated sequence of operations:
//
//	push:V      insert V at the front
//	pop         remove the first element
//	insert:I:V  insert V after position I
//	erase:I     remove the element after position I
//	set:I:V     overwrite the element at position I
//	clear       remove all elements
//
// Positions are zero-based element indexes; -1 is the position before the first element.
// Unlike the list itself, Apply checks every precondition and reports violations as errors.
package script

import (
	"context"
	"strconv"
	"strings"

	"github.com/percona-lab/slist/config"
	"github.com/percona-lab/slist/errors"
	"github.com/percona-lab/slist/list"
	"github.com/percona-lab/slist/log"
	"github.com/percona-lab/slist/metrics"
)

// Kind is an operation name.
type Kind string

const (
	Push   Kind = "push"
	Pop    Kind = "pop"
	Insert Kind = "insert"
	Erase  Kind = "erase"
	Set    Kind = "set"
	Clear  Kind = "clear"
)

// BeforeBegin is the position preceding the first element.
const BeforeBegin = -1

var (
	ErrEmptyList  = errors.New("empty list")
	ErrOutOfRange = errors.New("position out of range")
	ErrTooManyOps = errors.New("too many operations")
)

// Op is a single script operation.
type Op struct {
	Kind  Kind
	Pos   int
	Value int64
}

func (o Op) String() string {
	switch o.Kind {
	case Push:
		return string(o.Kind) + ":" + strconv.FormatInt(o.Value, 10)
	case Insert, Set:
		return string(o.Kind) + ":" + strconv.Itoa(o.Pos) + ":" + strconv.FormatInt(o.Value, 10)
	case Erase:
		return string(o.Kind) + ":" + strconv.Itoa(o.Pos)
	default:
		return string(o.Kind)
	}
}

// ParseError describes a malformed operation or value.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return "parse " + strconv.Quote(e.Input) + ": " + e.Reason
}

// Parse parses a script. An empty string is an empty script.
func Parse(s string) ([]Op, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, config.ValueSeparator)
	if len(fields) > config.MaxScriptOps {
		return nil, ErrTooManyOps
	}

	ops := make([]Op, 0, len(fields))

	for _, field := range fields {
		op, err := parseOp(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}

		ops = append(ops, op)
	}

	return ops, nil
}

func parseOp(s string) (Op, error) {
	name, rest, _ := strings.Cut(s, ":")

	var args []string
	if rest != "" {
		args = strings.Split(rest, ":")
	}

	op := Op{Kind: Kind(name)}

	switch op.Kind {
	case Pop, Clear:
		if len(args) != 0 {
			return Op{}, &ParseError{Input: s, Reason: "unexpected arguments"}
		}

	case Push:
		if len(args) != 1 {
			return Op{}, &ParseError{Input: s, Reason: "expected push:V"}
		}

		v, err := parseValue(args[0])
		if err != nil {
			return Op{}, err
		}

		op.Value = v

	case Erase:
		if len(args) != 1 {
			return Op{}, &ParseError{Input: s, Reason: "expected erase:I"}
		}

		pos, err := parsePos(args[0])
		if err != nil {
			return Op{}, err
		}

		op.Pos = pos

	case Insert, Set:
		if len(args) != 2 { //nolint:mnd
			return Op{}, &ParseError{Input: s, Reason: "expected " + name + ":I:V"}
		}

		pos, err := parsePos(args[0])
		if err != nil {
			return Op{}, err
		}

		v, err := parseValue(args[1])
		if err != nil {
			return Op{}, err
		}

		op.Pos = pos
		op.Value = v

	default:
		return Op{}, &ParseError{Input: s, Reason: "unknown operation"}
	}

	return op, nil
}

func parsePos(s string) (int, error) {
	pos, err := strconv.Atoi(s)
	if err != nil || pos < BeforeBegin {
		return 0, &ParseError{Input: s, Reason: "invalid position"}
	}

	return pos, nil
}

func parseValue(s string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, &ParseError{Input: s, Reason: "invalid value"}
	}

	return v, nil
}

// ParseValues parses a comma separated list of integers.
func ParseValues(s string) ([]int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, config.ValueSeparator)
	vals := make([]int64, 0, len(fields))

	for _, field := range fields {
		v, err := parseValue(strings.TrimSpace(field))
		if err != nil {
			return nil, err
		}

		vals = append(vals, v)
	}

	return vals, nil
}

// Apply runs ops against l in order. It stops at the first operation whose
// precondition does not hold and leaves l as the previous operations left it.
func Apply(ctx context.Context, l *list.List[int64], ops []Op) error {
	lg := log.Ctx(ctx).With(log.Scope("script"))

	for i, op := range ops {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "apply")
		}

		err := apply(l, op)
		if err != nil {
			metrics.AddContractError()

			return errors.Wrapf(err, "op #%d %s", i, op)
		}

		metrics.AddOperation(string(op.Kind))
		lg.With(log.Op(op.String()), log.Int("len", l.Len())).Trace("")
	}

	metrics.SetListSize(l.Len())

	return nil
}

func apply(l *list.List[int64], op Op) error {
	switch op.Kind {
	case Push:
		l.PushFront(op.Value)

	case Pop:
		if l.IsEmpty() {
			return ErrEmptyList
		}

		l.PopFront()

	case Insert:
		if op.Pos >= l.Len() {
			return ErrOutOfRange
		}

		l.InsertAfter(seek(l, op.Pos), op.Value)

	case Erase:
		if op.Pos >= l.Len()-1 {
			return ErrOutOfRange
		}

		l.EraseAfter(seek(l, op.Pos))

	case Set:
		if op.Pos == BeforeBegin || op.Pos >= l.Len() {
			return ErrOutOfRange
		}

		seek(l, op.Pos).Set(op.Value)

	case Clear:
		l.Clear()

	default:
		return errors.Errorf("unknown operation %q", op.Kind)
	}

	return nil
}

// seek returns the iterator at pos. pos must be in [BeforeBegin, l.Len()).
func seek(l *list.List[int64], pos int) list.Iterator[int64] {
	it := l.BeforeBegin()
	for range pos + 1 {
		it.Inc()
	}

	return it
}
