package numeric

import (
	"fmt"
	"math"
)

// Fibonacci returns F(n) (F(0)=0, F(1)=1) computed with method m.
func Fibonacci(n int, m Method) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeIndex, n)
	}
	if n > MaxFibIndex {
		return 0, fmt.Errorf("%w: n=%d exceeds %d", ErrOverflow, n, MaxFibIndex)
	}

	switch m {
	case Recursive:
		if n > MaxRecursiveIndex {
			return 0, fmt.Errorf("%w: n=%d exceeds %d", ErrTooExpensive, n, MaxRecursiveIndex)
		}
		return fibRecursive(n), nil
	case DynamicProgramming:
		return fibTable(n), nil
	case SpaceOptimized:
		return fibTwoVars(n), nil
	case FastDoubling:
		return fibDoubling(n, make(map[int]int)), nil
	case Binet:
		if n > MaxBinetIndex {
			return 0, fmt.Errorf("%w: n=%d exceeds %d", ErrPrecision, n, MaxBinetIndex)
		}
		return fibBinet(n), nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownMethod, int(m))
	}
}

func fibRecursive(n int) int {
	if n <= 1 {
		return n
	}

	return fibRecursive(n-1) + fibRecursive(n-2)
}

func fibTable(n int) int {
	f := make([]int, n+2)
	f[1] = 1
	for i := 2; i <= n; i++ {
		f[i] = f[i-1] + f[i-2]
	}

	return f[n]
}

func fibTwoVars(n int) int {
	if n == 0 {
		return 0
	}
	x, y := 0, 1
	for i := 2; i <= n; i++ {
		x, y = y, x+y
	}

	return y
}

// fibDoubling applies the doubling identities with memo keyed by index.
//
//	n odd,  k = (n+1)/2: F(n) = F(k)² + F(k-1)²
//	n even, k = n/2:     F(n) = (2F(k-1) + F(k))·F(k)
func fibDoubling(n int, memo map[int]int) int {
	switch n {
	case 0:
		return 0
	case 1, 2:
		return 1
	}
	if v, ok := memo[n]; ok {
		return v
	}

	var v int
	if n&1 == 1 {
		k := (n + 1) / 2
		a, b := fibDoubling(k, memo), fibDoubling(k-1, memo)
		v = a*a + b*b
	} else {
		k := n / 2
		a, b := fibDoubling(k, memo), fibDoubling(k-1, memo)
		v = (2*b + a) * a
	}
	memo[n] = v

	return v
}

func fibBinet(n int) int {
	phi := (1 + math.Sqrt(5)) / 2

	return int(math.Round(math.Pow(phi, float64(n)) / math.Sqrt(5)))
}
