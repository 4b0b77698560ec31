package weburl

// ParseError is the closed set of failures the URL and host parsers can
// report. Values are comparable; callers match with == or errors.Is.
type ParseError uint8

const (
	// ErrEmptyHost is returned when a scheme that requires a host is
	// given an empty one.
	ErrEmptyHost ParseError = iota + 1

	// ErrIdna is returned when UTS #46 domain processing rejects a host.
	ErrIdna

	// ErrInvalidPort is returned for a port that is not a decimal number
	// in the range 0-65535.
	ErrInvalidPort

	// ErrInvalidIPv4Address is returned for a malformed dotted-decimal
	// IPv4 literal.
	ErrInvalidIPv4Address

	// ErrInvalidIPv6Address is returned for a malformed bracketed IPv6
	// literal.
	ErrInvalidIPv6Address

	// ErrInvalidDomainCharacter is returned when a host contains a
	// forbidden character after decoding and domain processing.
	ErrInvalidDomainCharacter

	// ErrRelativeURLWithoutBase is returned when the input has no scheme
	// and no base URL was supplied.
	ErrRelativeURLWithoutBase

	// ErrRelativeURLWithCannotBeABaseBase is returned when the base URL
	// has an opaque, non-hierarchical path and the input is not a
	// fragment-only reference.
	ErrRelativeURLWithCannotBeABaseBase

	// ErrSetHostOnCannotBeABaseURL is returned by SetHost when the URL
	// has an opaque path and so cannot carry an authority.
	ErrSetHostOnCannotBeABaseURL

	// ErrSetterNotAllowed is returned by a setter whose operation is not
	// defined for the URL, such as setting a port on a file URL or
	// credentials on a URL without a host.
	ErrSetterNotAllowed

	// ErrOverflow is returned when a serialization would exceed the
	// 4 GiB addressable by 32-bit component offsets.
	ErrOverflow
)

func (e ParseError) Error() string {
	switch e {
	case ErrEmptyHost:
		return "empty host"
	case ErrIdna:
		return "invalid international domain name"
	case ErrInvalidPort:
		return "invalid port number"
	case ErrInvalidIPv4Address:
		return "invalid IPv4 address"
	case ErrInvalidIPv6Address:
		return "invalid IPv6 address"
	case ErrInvalidDomainCharacter:
		return "invalid domain character"
	case ErrRelativeURLWithoutBase:
		return "relative URL without a base"
	case ErrRelativeURLWithCannotBeABaseBase:
		return "relative URL with a cannot-be-a-base base"
	case ErrSetHostOnCannotBeABaseURL:
		return "a cannot-be-a-base URL doesn't have a host to set"
	case ErrSetterNotAllowed:
		return "operation not allowed on this URL"
	case ErrOverflow:
		return "URL too long"
	}
	return "unknown URL parse error"
}
