package numeric

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for Fibonacci computation.
var (
	// ErrNegativeIndex is returned for n < 0.
	ErrNegativeIndex = errors.New("numeric: negative Fibonacci index")
	// ErrOverflow is returned when F(n) exceeds the int64 range.
	ErrOverflow = errors.New("numeric: Fibonacci value overflows int64")
	// ErrPrecision is returned when Binet's formula would lose exactness.
	ErrPrecision = errors.New("numeric: Binet formula not exact for index")
	// ErrTooExpensive is returned when naive recursion would take too long.
	ErrTooExpensive = errors.New("numeric: naive recursion too expensive for index")
	// ErrUnknownMethod is returned for an undefined Method.
	ErrUnknownMethod = errors.New("numeric: unknown Fibonacci method")
)

const (
	// MaxFibIndex is the largest n with F(n) <= math.MaxInt64.
	MaxFibIndex = 92
	// MaxBinetIndex is the largest n for which Binet's formula in float64
	// still rounds to the exact value.
	MaxBinetIndex = 60
	// MaxRecursiveIndex bounds the exponential Recursive method.
	MaxRecursiveIndex = 40
)

// Method selects a Fibonacci algorithm.
type Method int

const (
	// Recursive is the naive two-branch recursion.
	Recursive Method = iota
	// DynamicProgramming fills a table bottom-up.
	DynamicProgramming
	// SpaceOptimized keeps only the last two values.
	SpaceOptimized
	// FastDoubling uses the memoized doubling identities.
	FastDoubling
	// Binet rounds the closed form.
	Binet
)

var methodNames = [...]string{
	Recursive:          "recursive",
	DynamicProgramming: "dp",
	SpaceOptimized:     "space-optimized",
	FastDoubling:       "fast-doubling",
	Binet:              "binet",
}

// String returns the short name of m.
func (m Method) String() string {
	if m < 0 || int(m) >= len(methodNames) {
		return fmt.Sprintf("Method(%d)", int(m))
	}

	return methodNames[m]
}

// ParseMethod maps a name produced by Method.String (case-insensitive) to its Method.
func ParseMethod(name string) (Method, error) {
	norm := strings.ToLower(strings.TrimSpace(name))
	for i, n := range methodNames {
		if n == norm {
			return Method(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Methods returns every defined Method in declaration order.
func Methods() []Method {
	out := make([]Method, len(methodNames))
	for i := range methodNames {
		out[i] = Method(i)
	}

	return out
}
