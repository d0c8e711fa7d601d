package mathhelp

import "golang.org/x/exp/constraints"

func BetweenInc[T constraints.Ordered](f, p, q T) bool {
	if p <= q {
		return p <= f && f <= q
	}
	return q <= f && f <= p
}

func Pow2(n uint) uint {
	return 1 << n
}

func Pow4(n uint) uint {
	return 1 << (2 * n)
}

func Bool2int(b bool) int {
	if b {
		return 1
	}
	return 0
}
