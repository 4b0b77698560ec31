// Package ascii provides byte-level character classification shared by the
// URL parser, host parser, and percent-encoding codec.
package ascii

// IsAlpha returns whether b is an ASCII letter.
func IsAlpha(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// IsDigit returns whether b is an ASCII decimal digit.
func IsDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsAlphanumeric returns whether b is an ASCII letter or digit.
func IsAlphanumeric(b byte) bool {
	return IsAlpha(b) || IsDigit(b)
}

// IsHexDigit returns whether b is an ASCII hexadecimal digit.
func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// HexValue returns the value of the hexadecimal digit b.
// The second return is false when b is not a hexadecimal digit.
func HexValue(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	}
	return 0, false
}
