package ast

import (
	"strconv"
	"strings"
)

// NumberKind tells how a number is represented
type NumberKind uint8

// Number representations
const (
	NumberInt NumberKind = iota
	NumberReal
)

func (nk NumberKind) String() string {
	if nk == NumberReal {
		return "real"
	}
	return "int"
}

// Number is a numeric value. Only Int or Real is meaningful, depending on
// Kind.
type Number struct {
	Exact bool
	Kind  NumberKind

	Int  int64
	Real float64
}

// IntNumber returns an exact integer.
func IntNumber(v int64) Number {
	return Number{Exact: true, Kind: NumberInt, Int: v}
}

// RealNumber returns a real number. Reals coming from the reader are marked
// as exact too.
func RealNumber(v float64) Number {
	return Number{Exact: true, Kind: NumberReal, Real: v}
}

// IsInt returns true for integers.
func (n Number) IsInt() bool {
	return n.Kind == NumberInt
}

// Float64 returns the number as a float64, whatever its representation.
func (n Number) Float64() float64 {
	if n.Kind == NumberInt {
		return float64(n.Int)
	}
	return n.Real
}

// Equal reports whether both numbers have the same representation and value.
func (n Number) Equal(m Number) bool {
	if n.Exact != m.Exact || n.Kind != m.Kind {
		return false
	}
	if n.Kind == NumberInt {
		return n.Int == m.Int
	}
	return n.Real == m.Real
}

// String encodes the number in a form the lexer reads back as the same kind:
// reals always carry a dot and never an exponent.
func (n Number) String() string {
	if n.Kind == NumberInt {
		return strconv.FormatInt(n.Int, 10)
	}
	s := strconv.FormatFloat(n.Real, 'f', -1, 64)
	if strings.Trim(s, "-0123456789") == "" {
		s = s + ".0"
	}
	return s
}
