// SPDX-License-Identifier: MIT

package matrix

import (
	"math"
	"strconv"
	"strings"
)

// fixedDecimals is the precision of the fractional rendering before trailing
// zeros are trimmed (the classic "%f" precision).
const fixedDecimals = 6

// FormatEntry renders v the way a matrix cell is displayed.
//   - Integral values print their integer part only ("-3", "12").
//   - Other values print with six decimals, trailing zeros and a dangling '.' removed
//     ("2.5", "-0.333333").
//
// Complexity: O(1).
func FormatEntry(v float64) string {
	if v == 0 {
		return "0" // covers -0
	}
	if v == math.Floor(v) {
		return strconv.FormatFloat(v, 'f', 0, 64)
	}
	s := strconv.FormatFloat(v, 'f', fixedDecimals, 64)
	if strings.IndexByte(s, '.') >= 0 {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		// A tiny negative rounds to "-0.000000"; show it as zero.
		s = "0"
	}

	return s
}

// FormatWidth is the number of characters FormatEntry(v) occupies.
func FormatWidth(v float64) int { return len(FormatEntry(v)) }

// maxWidth returns the widest FormatWidth over vals, or 1 for an empty slice.
func maxWidth(vals []float64) int {
	w := 1
	var cur int
	for _, v := range vals {
		if cur = FormatWidth(v); cur > w {
			w = cur
		}
	}

	return w
}
