package mathutil

// ClampF limits x to [lo, hi].
func ClampF(x, lo, hi float64) float64 {
	switch {
	case x < lo:
		return lo
	case x > hi:
		return hi
	default:
		return x
	}
}

// Ratio returns num/den clamped to [0, 1]; a non-positive den yields 0.
func Ratio(num, den int) float64 {
	if den <= 0 {
		return 0
	}
	return ClampF(float64(num)/float64(den), 0, 1)
}

// DecayToZero subtracts step from v without going below zero. Values that are
// already zero or negative are returned as 0.
func DecayToZero(v, step float64) float64 {
	if v <= 0 {
		return 0
	}
	v -= step
	if v < 0 {
		return 0
	}
	return v
}
