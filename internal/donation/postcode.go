package donation

import (
	"regexp"
	"strings"
	"unicode"
)

// London postal areas, each followed by the district digit.
var londonPostcode = regexp.MustCompile(`^(E|EC|N|NW|SE|SW|W|WC|BR|CR|DA|EN|HA|IG|KT|RM|SM|TW|UB|WD)\d`)

// NormalizePostcode upper-cases a postcode and strips all whitespace.
func NormalizePostcode(postcode string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, postcode)
}

// ValidPostcode reports whether postcode falls in a London postal area.
func ValidPostcode(postcode string) bool {
	return londonPostcode.MatchString(NormalizePostcode(postcode))
}
