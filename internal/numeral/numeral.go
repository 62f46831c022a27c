package numeral

import (
	"golang.org/x/text/width"
)

// Fold returns raw with full-width digits narrowed to ASCII. ok is false when
// raw is empty or contains anything other than a decimal digit.
func Fold(raw string) (digits string, ok bool) {
	if raw == "" {
		return "", false
	}
	folded := width.Narrow.String(raw)
	for i := 0; i < len(folded); i++ {
		if folded[i] < '0' || folded[i] > '9' {
			return "", false
		}
	}
	return folded, true
}
