package utils

import "regexp"

// Index numbers are fixed-width decimal strings starting from the seed
// "8374000". Validating the format strictly keeps string and numeric ordering
// in agreement across the observed range.
var indexNumberRe = regexp.MustCompile(`^\d{7,10}$`)

// ValidIndexNumber reports whether s looks like a student index number.
func ValidIndexNumber(s string) bool {
	return indexNumberRe.MatchString(s)
}
