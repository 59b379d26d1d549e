package ticket

import (
	"regexp"
	"strconv"
	"strings"
)

// space matches ASCII whitespace plus the no-break spaces OCR engines emit
// as French thousands separators
const space = `[\s\x{00A0}\x{202F}]`

var (
	// amountWithSpacePattern accepts a space as the separator ("15 500")
	amountWithSpacePattern = regexp.MustCompile(`\d+(?:[.,]|` + space + `)\d{2,3}`)
	amountPattern          = regexp.MustCompile(`\d+[.,]\d{2,3}`)
	spaceRun               = regexp.MustCompile(space + `+`)
)

// parseAmount finds the first number matching pattern in s and converts it to
// a float. The comma becomes the decimal point and whitespace is dropped, so
// "15,500" is 15.5 and "15 500" is 15500.
func parseAmount(pattern *regexp.Regexp, s string) (float64, bool) {
	match := pattern.FindString(s)
	if match == "" {
		return 0, false
	}
	return normalizeNumber(match)
}

func normalizeNumber(s string) (float64, bool) {
	s = strings.ReplaceAll(s, ",", ".")
	s = spaceRun.ReplaceAllString(s, "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
