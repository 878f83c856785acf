// Package format holds numeric formatting helpers shared by the
// serializers.
package format

import "strconv"

// FloatToFixedPrecisionString serializes n with a fixed number of
// decimal places, never in exponent notation.
func FloatToFixedPrecisionString(n float64, prec int) string {
	return strconv.FormatFloat(n, 'f', prec, 64)
}
