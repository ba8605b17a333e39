package claims

import (
	"strconv"
	"strings"
)

// Label values produced by DeriveLongStay.
const (
	ShortStay = 0
	LongStay  = 1
	// Undefined marks a row whose stay code is outside the expected domain.
	// Such rows are reported and dropped; they are never coerced to a class.
	Undefined = -1
)

// UndefinedLabel records one row whose stay code could not be mapped to a
// label.
type UndefinedLabel struct {
	Row   int
	Value string
}

// DeriveLongStay maps length-of-stay bucket codes to binary labels. A code
// equal to longCode (the top bucket) is a long stay, an integer code below it
// is a short stay, and anything else is Undefined.
func DeriveLongStay(codes []string, longCode int) ([]int, []UndefinedLabel) {
	labels := make([]int, len(codes))
	var undefined []UndefinedLabel
	for i, raw := range codes {
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		switch {
		case err != nil || v > longCode:
			labels[i] = Undefined
			undefined = append(undefined, UndefinedLabel{Row: i, Value: raw})
		case v == longCode:
			labels[i] = LongStay
		default:
			labels[i] = ShortStay
		}
	}
	return labels, undefined
}
