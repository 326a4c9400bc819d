// Package numeric collects small integer routines that sit alongside the
// tree algorithms: Euclid's greatest common divisor (recursive and
// iterative), the least common multiple derived from it, and five ways of
// computing Fibonacci numbers.
//
// Fibonacci methods
//
//   - Recursive:          F(n) = F(n-1) + F(n-2); exponential time.
//   - DynamicProgramming: fills a table F[0..n]; O(n) time, O(n) memory.
//   - SpaceOptimized:     keeps only the last two values; O(n) time, O(1) memory.
//   - FastDoubling:       F(2k) = F(k)·(2F(k-1) + F(k)), F(2k-1) = F(k)² + F(k-1)²,
//     memoized; O(log n) distinct subproblems.
//   - Binet:              round(φⁿ/√5); exact only while float64 can hold it.
//
// Errors
//
//   - ErrNegativeIndex  n < 0
//   - ErrOverflow       F(n) does not fit in int64 (n > 92)
//   - ErrPrecision      Binet beyond n = 60
//   - ErrTooExpensive   Recursive beyond n = 40
//   - ErrUnknownMethod  undefined Method
package numeric
