package weburl

import (
	"strings"

	"github.com/weburl/weburl/internal/ascii"
)

// Url is a parsed absolute URL. It stores one canonical serialization
// string plus component offsets into it, so accessors are slices rather
// than re-parses. A Url is immutable through its accessors; setters build
// a brand-new serialization and never expose a partially updated value.
//
// Re-parsing String() always reproduces the identical serialization.
type Url struct {
	serialization string

	// Component offsets, in order. Every offset lies on a UTF-8 boundary.
	// schemeEnd is the index of the ":" after the scheme. queryStart and
	// fragmentStart index the "?" and "#" and are 0 when absent, which is
	// unambiguous since neither can start a serialization.
	schemeEnd     uint32
	usernameEnd   uint32
	hostStart     uint32
	hostEnd       uint32
	pathStart     uint32
	queryStart    uint32
	fragmentStart uint32

	host hostInternal
	port int32 // -1 when absent
}

type hostInternal struct {
	kind hostKind
	ipv4 [4]byte
	ipv6 [8]uint16
}

// Parse parses an absolute URL.
func Parse(input string) (*Url, error) {
	return Options{}.Parse(input)
}

// QueryEncodingOverride converts a query string to the bytes that get
// percent-encoded into the serialization, for documents in legacy character
// encodings. It is consulted only for special schemes other than ws and wss;
// everything else is always UTF-8.
type QueryEncodingOverride func(query string) []byte

// Options configures a parse.
type Options struct {
	// Base is the URL against which relative references are resolved.
	Base *Url

	// ViolationHandler receives non-fatal syntax violations. See
	// LogViolations for an adapter that writes them to a logger.
	ViolationHandler func(SyntaxViolation)

	// QueryEncoding overrides the query character encoding for legacy
	// documents. Nil means UTF-8.
	QueryEncoding QueryEncodingOverride
}

// Parse parses input under the options.
func (o Options) Parse(input string) (*Url, error) {
	p := parser{
		base:          o.Base,
		violations:    o.ViolationHandler,
		queryEncoding: o.QueryEncoding,
	}
	return p.parse(input)
}

// Join resolves a reference against u and returns the resulting URL.
func (u *Url) Join(input string) (*Url, error) {
	return Options{Base: u}.Parse(input)
}

// String returns the URL serialization.
func (u *Url) String() string {
	return u.serialization
}

// Scheme returns the lowercased URL scheme, without the trailing ":".
func (u *Url) Scheme() string {
	return u.serialization[:u.schemeEnd]
}

// IsSpecial reports whether the scheme is http, https, ws, wss, ftp,
// or file.
func (u *Url) IsSpecial() bool {
	return schemeTypeOf(u.Scheme()) != schemeNotSpecial
}

// HasAuthority reports whether the serialization carries a "//" authority
// component, possibly with an empty host.
func (u *Url) HasAuthority() bool {
	return strings.HasPrefix(u.serialization[u.schemeEnd+1:], "//")
}

// HasHost reports whether the URL has a non-empty host.
func (u *Url) HasHost() bool {
	return u.hostStart < u.hostEnd
}

// CannotBeABase reports whether the URL has an opaque, non-hierarchical
// path (like mailto: or data: URLs) and so cannot serve as a base for
// relative references.
func (u *Url) CannotBeABase() bool {
	return !strings.HasPrefix(u.serialization[u.schemeEnd+1:], "/")
}

// Authority returns the userinfo, host, and port part of the serialization,
// empty when the URL has no authority.
func (u *Url) Authority() string {
	if !u.HasAuthority() {
		return ""
	}
	return u.serialization[u.schemeEnd+3 : u.pathStart]
}

// Username returns the percent-encoded username, empty when absent.
func (u *Url) Username() string {
	if !u.HasAuthority() {
		return ""
	}
	return u.serialization[u.schemeEnd+3 : u.usernameEnd]
}

// Password returns the percent-encoded password and whether one is present.
func (u *Url) Password() (string, bool) {
	if u.HasAuthority() && u.usernameEnd < uint32(len(u.serialization)) && u.serialization[u.usernameEnd] == ':' {
		return u.serialization[u.usernameEnd+1 : u.hostStart-1], true
	}
	return "", false
}

// HostStr returns the host serialization and whether the URL has an
// authority at all. The host of a file URL or a non-special URL may be the
// empty string.
func (u *Url) HostStr() (string, bool) {
	if !u.HasAuthority() {
		return "", false
	}
	return u.serialization[u.hostStart:u.hostEnd], true
}

// Host returns the parsed host value. The second return is false when the
// URL has no host or an empty one.
func (u *Url) Host() (Host, bool) {
	switch u.host.kind {
	case hostDomain, hostOpaque:
		return Host{kind: u.host.kind, domain: u.serialization[u.hostStart:u.hostEnd]}, true
	case hostIPv4:
		return Host{kind: hostIPv4, ipv4: u.host.ipv4}, true
	case hostIPv6:
		return Host{kind: hostIPv6, ipv6: u.host.ipv6}, true
	}
	return Host{}, false
}

// Domain returns the host when it is a domain, as opposed to an IP address
// or an opaque host.
func (u *Url) Domain() (string, bool) {
	if u.host.kind != hostDomain {
		return "", false
	}
	return u.serialization[u.hostStart:u.hostEnd], true
}

// Port returns the explicit port and whether one is present. Ports equal to
// the scheme's default are dropped during parsing and not reported here.
func (u *Url) Port() (uint16, bool) {
	if u.port < 0 {
		return 0, false
	}
	return uint16(u.port), true
}

// PortOrKnownDefault returns the explicit port, or the scheme's registered
// default (http/ws 80, https/wss 443, ftp 21) when no port is present.
func (u *Url) PortOrKnownDefault() (uint16, bool) {
	if u.port >= 0 {
		return uint16(u.port), true
	}
	return defaultPort(u.Scheme())
}

// Path returns the path component, percent-encoded as serialized. For a
// cannot-be-a-base URL this is the opaque path.
func (u *Url) Path() string {
	return u.serialization[u.pathStart:u.pathEnd()]
}

// PathSegments returns the segments of a hierarchical path, without their
// leading slashes. It returns false for a cannot-be-a-base URL.
func (u *Url) PathSegments() ([]string, bool) {
	if u.CannotBeABase() {
		return nil, false
	}
	path := u.Path()
	if path == "" {
		return []string{}, true
	}
	return strings.Split(path[1:], "/"), true
}

// Query returns the query without its "?" and whether one is present.
func (u *Url) Query() (string, bool) {
	if u.queryStart == 0 {
		return "", false
	}
	end := uint32(len(u.serialization))
	if u.fragmentStart > 0 {
		end = u.fragmentStart
	}
	return u.serialization[u.queryStart+1 : end], true
}

// Fragment returns the fragment without its "#" and whether one is present.
func (u *Url) Fragment() (string, bool) {
	if u.fragmentStart == 0 {
		return "", false
	}
	return u.serialization[u.fragmentStart+1:], true
}

// Equal reports whether two URLs have the same serialization, which for
// canonical serializations is full structural equality.
func (u *Url) Equal(other *Url) bool {
	return u.serialization == other.serialization
}

func (u *Url) pathEnd() uint32 {
	if u.queryStart > 0 {
		return u.queryStart
	}
	if u.fragmentStart > 0 {
		return u.fragmentStart
	}
	return uint32(len(u.serialization))
}

type schemeType uint8

const (
	schemeNotSpecial schemeType = iota
	schemeSpecialNotFile
	schemeFile
)

func schemeTypeOf(scheme string) schemeType {
	switch scheme {
	case "http", "https", "ws", "wss", "ftp":
		return schemeSpecialNotFile
	case "file":
		return schemeFile
	}
	return schemeNotSpecial
}

func defaultPort(scheme string) (uint16, bool) {
	switch scheme {
	case "http", "ws":
		return 80, true
	case "https", "wss":
		return 443, true
	case "ftp":
		return 21, true
	}
	return 0, false
}

// isWindowsDriveLetter reports whether s is exactly an ASCII letter
// followed by ":" or "|".
func isWindowsDriveLetter(s string) bool {
	return len(s) == 2 && ascii.IsAlpha(s[0]) && (s[1] == ':' || s[1] == '|')
}

// startsWithWindowsDriveLetter reports whether s begins with a drive
// letter that is the whole of its path segment.
func startsWithWindowsDriveLetter(s string) bool {
	if len(s) < 2 || !isWindowsDriveLetter(s[:2]) {
		return false
	}
	return len(s) == 2 || s[2] == '/' || s[2] == '\\' || s[2] == '?' || s[2] == '#'
}
