package shape

import "strconv"

// ordinal returns the 1-based, human-readable position label for a
// 0-based index ("1st", "2nd", "3rd", "4th", ...).
func ordinal(i int) string {
	n := i + 1
	var suffix string
	switch n {
	case 1:
		suffix = "st"
	case 2:
		suffix = "nd"
	case 3:
		suffix = "rd"
	default:
		suffix = "th"
	}
	return strconv.Itoa(n) + suffix
}
