package engine

import (
	"math"
	"strconv"
	"strings"
)

// Format renders v for the display. Integral values carry no decimal point;
// everything else keeps its shortest decimal form.
func Format(v float64) string {
	if v == 0 {
		// drop the sign of negative zero
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Parse reads display text back into a number.
func Parse(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &CalculationError{Msg: "Invalid input"}
	}
	return v, nil
}
