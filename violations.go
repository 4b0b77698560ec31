package weburl

import "github.com/weburl/weburl/logging"

// SyntaxViolation identifies a non-fatal deviation from URL writing
// requirements observed while parsing. Violations never change the parse
// outcome; they are reported through Options.ViolationHandler so callers
// can surface sloppy input.
type SyntaxViolation uint8

const (
	// ViolationBackslash reports a backslash used as a slash in a
	// special-scheme URL.
	ViolationBackslash SyntaxViolation = iota + 1

	// ViolationC0SpaceIgnored reports leading or trailing C0 control or
	// space characters stripped from the input.
	ViolationC0SpaceIgnored

	// ViolationTabOrNewlineIgnored reports embedded tab, CR, or LF bytes
	// removed from the input.
	ViolationTabOrNewlineIgnored

	// ViolationExpectedDoubleSlash reports a special scheme followed by
	// something other than exactly two slashes.
	ViolationExpectedDoubleSlash

	// ViolationExpectedFileDoubleSlash reports a file scheme followed by
	// something other than exactly two slashes.
	ViolationExpectedFileDoubleSlash

	// ViolationEmbeddedCredentials reports a username or password
	// embedded in the URL.
	ViolationEmbeddedCredentials

	// ViolationUnencodedAtSign reports an extra unencoded @ inside the
	// userinfo component.
	ViolationUnencodedAtSign

	// ViolationNonURLCodePoint reports a character outside the URL code
	// point set.
	ViolationNonURLCodePoint

	// ViolationPercentDecode reports a % that is not followed by two
	// hexadecimal digits.
	ViolationPercentDecode

	// ViolationFileWithHostAndWindowsDrive reports a file URL carrying
	// both a host and a Windows drive letter path.
	ViolationFileWithHostAndWindowsDrive
)

// Description returns a human-readable explanation of the violation.
func (v SyntaxViolation) Description() string {
	switch v {
	case ViolationBackslash:
		return `backslash ("\") used as a path separator`
	case ViolationC0SpaceIgnored:
		return "leading or trailing control or space character ignored"
	case ViolationTabOrNewlineIgnored:
		return "tab or newline ignored"
	case ViolationExpectedDoubleSlash:
		return `expected "//" after the scheme`
	case ViolationExpectedFileDoubleSlash:
		return `expected "//" after "file:"`
	case ViolationEmbeddedCredentials:
		return "embedding credentials in a URL is discouraged"
	case ViolationUnencodedAtSign:
		return `unencoded "@" in the userinfo component`
	case ViolationNonURLCodePoint:
		return "character outside the URL code point set"
	case ViolationPercentDecode:
		return `"%" not followed by two hexadecimal digits`
	case ViolationFileWithHostAndWindowsDrive:
		return "file URL with both a host and a Windows drive letter"
	}
	return "unknown syntax violation"
}

func (v SyntaxViolation) String() string {
	return v.Description()
}

// LogViolations returns a ViolationHandler that writes every violation to
// the given logger at Warn.
func LogViolations(logger logging.Logger) func(SyntaxViolation) {
	return func(v SyntaxViolation) {
		logger.Logf(logging.Warn, "url syntax violation: %s", v.Description())
	}
}
