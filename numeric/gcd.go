package numeric

// abs returns |x|; the absolute value of math.MinInt stays negative.
func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

// GCDRecursive returns the greatest common divisor of x and y by Euclid's
// algorithm in its recursive form. Signs are ignored; GCD(0, 0) is 0.
func GCDRecursive(x, y int) int {
	x, y = abs(x), abs(y)
	if x == 0 {
		return y
	}

	return GCDRecursive(y%x, x)
}

// GCDIterative is the loop form of GCDRecursive.
func GCDIterative(x, y int) int {
	x, y = abs(x), abs(y)
	for y != 0 {
		x, y = y, x%y
	}

	return x
}

// LCM returns the least common multiple |x·y| / gcd(x, y), or 0 when
// either argument is 0. Dividing before multiplying keeps intermediate
// values as small as the result.
func LCM(x, y int) int {
	if x == 0 || y == 0 {
		return 0
	}
	x, y = abs(x), abs(y)

	return x / GCDIterative(x, y) * y
}
