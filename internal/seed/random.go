package seed

import "math"

// HashString is a 32-bit shift hash (h = h<<5 - h + c, wrapping). Generators
// use it for small stylistic picks keyed on the brand name.
func HashString(s string) int32 {
	var h int32
	for _, c := range s {
		h = h<<5 - h + int32(c)
	}
	return h
}

// HashIndex reduces HashString(s) to [0, n). It returns 0 when n is not
// positive.
func HashIndex(s string, n int) int {
	if n <= 0 {
		return 0
	}
	h := int64(HashString(s))
	if h < 0 {
		h = -h
	}
	return int(h % int64(n))
}

// SeededRandom maps x to [0, 1) by taking the fractional part of
// sin(x)*10000.
//
// The output is deterministic but not uniformly distributed: values cluster
// towards the ends of the interval. It is only used for cosmetic jitter and
// must not drive any choice that needs fairness.
func SeededRandom(x float64) float64 {
	v := math.Sin(x) * 10000
	return v - math.Floor(v)
}

// Stream returns successive SeededRandom values keyed on s.
func Stream(s string) func() float64 {
	x := float64(HashString(s))
	return func() float64 {
		x++
		return SeededRandom(x)
	}
}
