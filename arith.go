package gameclock

/*
arith.go contains overflow-checked and floor-rounding integer helpers
shared by all value types in this package.
*/

import "golang.org/x/exp/constraints"

/*
checkedAdd returns the sum of a and b alongside a Boolean value which
is false if the sum overflowed T.
*/
func checkedAdd[T constraints.Signed](a, b T) (T, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return 0, false
	}
	return c, true
}

/*
checkedMul returns the product of a and b alongside a Boolean value
which is false if the product overflowed T.
*/
func checkedMul[T constraints.Signed](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}

	// -MinInt == MinInt; the quotient test below cannot see it.
	if (a == -1 && b == -b) || (b == -1 && a == -a) {
		return 0, false
	}

	c := a * b
	if c/b != a {
		return 0, false
	}
	return c, true
}

/*
floorDiv returns the quotient of a and b rounded toward negative
infinity. b must be positive.
*/
func floorDiv[T constraints.Signed](a, b T) T {
	q := a / b
	if a%b < 0 {
		q--
	}
	return q
}

/*
floorMod returns the modulus of a and b, which always lies in [0, b).
b must be positive.
*/
func floorMod[T constraints.Signed](a, b T) T {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}

func inRange[T constraints.Ordered](v, lo, hi T) bool {
	return lo <= v && v <= hi
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
