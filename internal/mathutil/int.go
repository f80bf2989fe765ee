package mathutil

import "math"

// TruncNonNeg converts a float to an int by truncation toward zero, saturating
// negative and NaN inputs at 0 and huge inputs at math.MaxInt32 (search: int-math).
func TruncNonNeg(f float64) int {
	if !(f > 0) {
		return 0
	}
	if f >= math.MaxInt32 {
		return math.MaxInt32
	}
	return int(f)
}
