package taskgen

import "math"

// HashString folds s into a non-negative seed using a 31-based
// polynomial rolling hash over wrapping 32-bit arithmetic. The exact
// arithmetic is a reproducibility contract shared with the study's
// analysis scripts and must not change.
func HashString(s string) int {
	var h int32
	for _, c := range s {
		h = h*31 + int32(c)
	}
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return int(v)
}

// SeededRandom returns a generator of floats in [0,1) driven by the
// recurrence s = sin(s) * 10000 over IEEE 754 doubles, yielding the
// fractional part each call. Not a quality PRNG; reproducibility is the
// requirement, not unpredictability.
func SeededRandom(seed int) func() float64 {
	s := float64(seed)
	return func() float64 {
		s = math.Sin(s) * 10000
		return s - math.Floor(s)
	}
}

// SeededShuffle returns a permuted copy of list using a Fisher-Yates
// walk from the top index down, drawing j = floor(rng()*(i+1)) at each
// step. Draw order is part of the determinism contract.
func SeededShuffle[T any](list []T, rng func() float64) []T {
	shuffled := make([]T, len(list))
	copy(shuffled, list)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := int(math.Floor(rng() * float64(i+1)))
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}
