package weburl

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/weburl/weburl/internal/ascii"
	"github.com/weburl/weburl/percent"
)

// parser builds one Url serialization front to back, recording component
// offsets as it goes. Each parse uses a fresh parser value.
type parser struct {
	buf           []byte
	url           Url
	base          *Url
	violations    func(SyntaxViolation)
	queryEncoding QueryEncodingOverride

	// inSetter marks path parsing on behalf of SetPath, where "?" and "#"
	// are ordinary characters to encode rather than delimiters.
	inSetter bool
}

func (p *parser) violation(v SyntaxViolation) {
	if p.violations != nil {
		p.violations(v)
	}
}

func (p *parser) mark() uint32     { return uint32(len(p.buf)) }
func (p *parser) push(c byte)      { p.buf = append(p.buf, c) }
func (p *parser) pushStr(s string) { p.buf = append(p.buf, s...) }

func (p *parser) currentScheme() string {
	return string(p.buf[:p.url.schemeEnd])
}

func (p *parser) finish() (*Url, error) {
	if uint64(len(p.buf)) > math.MaxUint32 {
		return nil, ErrOverflow
	}
	u := p.url
	u.serialization = string(p.buf)
	return &u, nil
}

func (p *parser) parse(input string) (*Url, error) {
	p.url.port = -1
	input = p.cleanInput(input)

	if scheme, rest, ok := parseScheme(input); ok {
		return p.parseWithScheme(scheme, rest)
	}

	// No-scheme state: resolve against the base.
	if p.base == nil {
		return nil, ErrRelativeURLWithoutBase
	}
	if strings.HasPrefix(input, "#") {
		return p.fragmentOnly(p.base, input[1:])
	}
	if p.base.CannotBeABase() {
		return nil, ErrRelativeURLWithCannotBeABaseBase
	}
	t := schemeTypeOf(p.base.Scheme())
	if t == schemeFile {
		return p.parseFile(input, p.base)
	}
	return p.parseRelative(input, t, p.base)
}

// cleanInput strips leading and trailing C0 controls and spaces, then
// removes embedded tabs and newlines. Both are reported as violations but
// never fail the parse.
func (p *parser) cleanInput(input string) string {
	trimmed := strings.TrimFunc(input, func(r rune) bool { return r <= 0x20 })
	if len(trimmed) != len(input) {
		p.violation(ViolationC0SpaceIgnored)
	}
	if strings.ContainsAny(trimmed, "\t\n\r") {
		p.violation(ViolationTabOrNewlineIgnored)
		trimmed = strings.Map(func(r rune) rune {
			if r == '\t' || r == '\n' || r == '\r' {
				return -1
			}
			return r
		}, trimmed)
	}
	return trimmed
}

// parseScheme matches ALPHA (ALPHA|DIGIT|"+"|"-"|".")* ":" and returns the
// lowercased scheme and the input after the colon.
func parseScheme(input string) (scheme, rest string, ok bool) {
	if input == "" || !ascii.IsAlpha(input[0]) {
		return "", "", false
	}
	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case ascii.IsAlphanumeric(c) || c == '+' || c == '-' || c == '.':
		case c == ':':
			return strings.ToLower(input[:i]), input[i+1:], true
		default:
			return "", "", false
		}
	}
	return "", "", false
}

func (p *parser) parseWithScheme(scheme, rest string) (*Url, error) {
	t := schemeTypeOf(scheme)
	switch t {
	case schemeFile:
		if !strings.HasPrefix(rest, "//") {
			p.violation(ViolationExpectedFileDoubleSlash)
		}
		var base *Url
		if p.base != nil && p.base.Scheme() == "file" {
			base = p.base
		}
		return p.parseFile(rest, base)

	case schemeSpecialNotFile:
		slashes := 0
		for slashes < len(rest) && (rest[slashes] == '/' || rest[slashes] == '\\') {
			slashes++
		}
		if p.base != nil && slashes < 2 && p.base.Scheme() == scheme {
			return p.parseRelative(rest, t, p.base)
		}
		if rest[:slashes] != "//" {
			p.violation(ViolationExpectedDoubleSlash)
			if strings.ContainsRune(rest[:slashes], '\\') {
				p.violation(ViolationBackslash)
			}
		}
		p.pushStr(scheme)
		p.url.schemeEnd = p.mark()
		p.push(':')
		return p.afterDoubleSlash(rest[slashes:], t)

	default:
		p.pushStr(scheme)
		p.url.schemeEnd = p.mark()
		p.push(':')
		return p.parseNonSpecial(rest, t)
	}
}

// parseNonSpecial handles the path-or-authority split for schemes without
// special parsing rules.
func (p *parser) parseNonSpecial(input string, t schemeType) (*Url, error) {
	if strings.HasPrefix(input, "//") {
		return p.afterDoubleSlash(input[2:], t)
	}
	pos := p.mark()
	p.url.usernameEnd = pos
	p.url.hostStart = pos
	p.url.hostEnd = pos

	if strings.HasPrefix(input, "/") {
		segs, remaining := p.parsePathSegments(nil, t, input[1:])
		p.writePath(segs, t, false)
		return p.parseQueryAndFragment(remaining)
	}
	p.url.pathStart = pos
	remaining := p.parseOpaquePath(input)
	return p.parseQueryAndFragment(remaining)
}

// parseOpaquePath consumes a cannot-be-a-base path: everything up to the
// first "?" or "#", percent-encoded against the simple set.
func (p *parser) parseOpaquePath(input string) (remaining string) {
	var b strings.Builder
	i := 0
	for i < len(input) {
		c := input[i]
		if c == '?' || c == '#' {
			break
		}
		r, size := utf8.DecodeRuneInString(input[i:])
		p.checkURLCodePoint(r, input[i:])
		percent.AppendEncodedString(&b, input[i:i+size], percent.Simple)
		i += size
	}
	p.pushStr(b.String())
	return input[i:]
}

// afterDoubleSlash parses userinfo, host, and port, then the rest of the
// URL. The authority slashes themselves have been consumed from input.
func (p *parser) afterDoubleSlash(input string, t schemeType) (*Url, error) {
	p.pushStr("//")
	special := t != schemeNotSpecial

	authEnd := len(input)
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == '/' || c == '?' || c == '#' || (special && c == '\\') {
			authEnd = i
			break
		}
	}
	auth := input[:authEnd]

	hostAndPort := auth
	if at := strings.LastIndexByte(auth, '@'); at >= 0 {
		p.violation(ViolationEmbeddedCredentials)
		userinfo := auth[:at]
		if strings.ContainsRune(userinfo, '@') {
			p.violation(ViolationUnencodedAtSign)
		}
		username, password, hasPassword := userinfo, "", false
		if colon := strings.IndexByte(userinfo, ':'); colon >= 0 {
			username, password, hasPassword = userinfo[:colon], userinfo[colon+1:], true
		}
		p.checkURLCodePoints(username)
		p.checkURLCodePoints(password)
		encUser := percent.EncodeString(username, percent.UserInfo)
		encPass := percent.EncodeString(password, percent.UserInfo)
		if encUser != "" || (hasPassword && encPass != "") {
			p.pushStr(encUser)
			p.url.usernameEnd = p.mark()
			if encPass != "" {
				p.push(':')
				p.pushStr(encPass)
			}
			p.push('@')
		} else {
			p.url.usernameEnd = p.mark()
		}
		hostAndPort = auth[at+1:]
	} else {
		p.url.usernameEnd = p.mark()
	}

	hostText := hostAndPort
	portText := ""
	hasPort := false
	inBrackets := false
	for i := 0; i < len(hostAndPort); i++ {
		switch hostAndPort[i] {
		case '[':
			inBrackets = true
		case ']':
			inBrackets = false
		case ':':
			if !inBrackets {
				hostText, portText, hasPort = hostAndPort[:i], hostAndPort[i+1:], true
			}
		}
		if hasPort {
			break
		}
	}

	p.url.hostStart = p.mark()
	if hostText == "" {
		if special {
			return nil, ErrEmptyHost
		}
		p.url.host = hostInternal{kind: hostEmpty}
	} else {
		host, err := parseHost(hostText, special)
		if err != nil {
			return nil, err
		}
		var b strings.Builder
		host.write(&b)
		p.pushStr(b.String())
		p.url.host = hostInternal{kind: host.kind, ipv4: host.ipv4, ipv6: host.ipv6}
	}
	p.url.hostEnd = p.mark()

	if hasPort {
		port, present, err := parsePortText(portText)
		if err != nil {
			return nil, err
		}
		if present {
			if def, ok := defaultPort(p.currentScheme()); ok && def == port {
				present = false
			}
		}
		if present {
			p.url.port = int32(port)
			p.push(':')
			p.pushStr(strconv.Itoa(int(port)))
		}
	}

	segs, remaining := p.parsePathStart(t, input[authEnd:])
	p.writePath(segs, t, true)
	return p.parseQueryAndFragment(remaining)
}

func parsePortText(text string) (uint16, bool, error) {
	if text == "" {
		return 0, false, nil
	}
	value := 0
	for i := 0; i < len(text); i++ {
		if !ascii.IsDigit(text[i]) {
			return 0, false, ErrInvalidPort
		}
		value = value*10 + int(text[i]-'0')
		if value > 0xFFFF {
			return 0, false, ErrInvalidPort
		}
	}
	return uint16(value), true, nil
}

// parsePathStart consumes the single slash that introduces a hierarchical
// path after an authority, tolerating backslash for special schemes.
func (p *parser) parsePathStart(t schemeType, input string) (segs []string, remaining string) {
	special := t != schemeNotSpecial
	remaining = input
	if input != "" && (input[0] == '/' || (special && input[0] == '\\')) {
		if input[0] == '\\' {
			p.violation(ViolationBackslash)
		}
		segs, remaining = p.parsePathSegments(nil, t, input[1:])
	}
	return segs, remaining
}

// parsePathSegments scans path segments from input until "?", "#", or end
// of input, applying the "." and ".." segment semantics over the segments
// accumulated so far. initial carries base-path segments during relative
// resolution; popping never reaches below it being empty, and never removes
// a file URL's Windows drive letter.
func (p *parser) parsePathSegments(initial []string, t schemeType, input string) ([]string, string) {
	segs := initial
	special := t != schemeNotSpecial
	file := t == schemeFile
	for {
		var b strings.Builder
		endsWithSlash := false
		i := 0
		for i < len(input) {
			c := input[i]
			if c == '/' || (special && c == '\\') {
				if c == '\\' {
					p.violation(ViolationBackslash)
				}
				endsWithSlash = true
				i++
				break
			}
			if (c == '?' || c == '#') && !p.inSetter {
				break
			}
			r, size := utf8.DecodeRuneInString(input[i:])
			p.checkURLCodePoint(r, input[i:])
			percent.AppendEncodedString(&b, input[i:i+size], percent.Default)
			i += size
		}
		input = input[i:]
		segment := b.String()
		switch {
		case isDoubleDotSegment(segment):
			keepDrive := file && len(segs) == 1 && isNormalizedWindowsDriveLetter(segs[0])
			if len(segs) > 0 && !keepDrive {
				segs = segs[:len(segs)-1]
			}
			if !endsWithSlash {
				segs = append(segs, "")
			}
		case isSingleDotSegment(segment):
			if !endsWithSlash {
				segs = append(segs, "")
			}
		default:
			if file && len(segs) == 0 && len(segment) == 2 &&
				ascii.IsAlpha(segment[0]) && segment[1] == '|' {
				segment = segment[:1] + ":"
			}
			segs = append(segs, segment)
		}
		if !endsWithSlash {
			break
		}
	}
	return segs, input
}

// writePath writes a hierarchical path and records pathStart. Special
// schemes always serialize at least "/". When the URL has no authority and
// the path would begin with "//", a "/." guard is written first so the
// serialization cannot be misread as carrying an authority; pathStart points
// past the guard.
func (p *parser) writePath(segs []string, t schemeType, hasAuthority bool) {
	if t != schemeNotSpecial && len(segs) == 0 {
		segs = []string{""}
	}
	if !hasAuthority && len(segs) >= 2 && segs[0] == "" {
		p.pushStr("/.")
	}
	p.url.pathStart = p.mark()
	for _, seg := range segs {
		p.push('/')
		p.pushStr(seg)
	}
}

func isSingleDotSegment(seg string) bool {
	return dotDecoded(seg) == "."
}

func isDoubleDotSegment(seg string) bool {
	return dotDecoded(seg) == ".."
}

// dotDecoded lowercases seg and decodes %2e so dot segments are recognized
// in their percent-encoded spellings.
func dotDecoded(seg string) string {
	if len(seg) > 6 {
		return seg
	}
	lower := strings.ToLower(seg)
	return strings.ReplaceAll(lower, "%2e", ".")
}

func isNormalizedWindowsDriveLetter(s string) bool {
	return len(s) == 2 && ascii.IsAlpha(s[0]) && s[1] == ':'
}

// parseFile implements the file-scheme states: optional host, Windows drive
// letter quirks, and base reuse for file-scheme bases.
func (p *parser) parseFile(input string, base *Url) (*Url, error) {
	const t = schemeFile

	if input == "" {
		if base != nil {
			return p.copyBaseWithoutFragment(base)
		}
		p.startFile()
		p.finishEmptyFileHost()
		p.writePath(nil, t, true)
		return p.finish()
	}

	switch input[0] {
	case '/', '\\':
		if input[0] == '\\' {
			p.violation(ViolationBackslash)
		}
		rest := input[1:]
		if rest != "" && (rest[0] == '/' || rest[0] == '\\') {
			if rest[0] == '\\' {
				p.violation(ViolationBackslash)
			}
			return p.parseFileHost(rest[1:])
		}
		// A single slash: an absolute path keeping the base's host.
		p.startFile()
		var segs []string
		if base != nil {
			p.copyFileHost(base)
			if !startsWithWindowsDriveLetter(rest) {
				if first, ok := base.firstPathSegment(); ok && isNormalizedWindowsDriveLetter(first) {
					segs = append(segs, first)
				}
			}
		} else {
			p.finishEmptyFileHost()
		}
		segs, remaining := p.parsePathSegments(segs, t, rest)
		p.writePath(segs, t, true)
		return p.parseQueryAndFragment(remaining)

	case '?':
		if base != nil {
			return p.queryOnly(base, input)
		}
	case '#':
		if base != nil {
			return p.fragmentOnly(base, input[1:])
		}
	}

	// Relative path characters.
	p.startFile()
	var segs []string
	if base != nil && !startsWithWindowsDriveLetter(input) {
		p.copyFileHost(base)
		segs = shortenedBaseSegments(base)
	} else {
		p.finishEmptyFileHost()
	}
	segs, remaining := p.parsePathSegments(segs, t, input)
	p.writePath(segs, t, true)
	return p.parseQueryAndFragment(remaining)
}

func (p *parser) startFile() {
	p.pushStr("file://")
	p.url.schemeEnd = 4
	p.url.usernameEnd = 7
	p.url.hostStart = 7
}

func (p *parser) finishEmptyFileHost() {
	p.url.hostEnd = p.mark()
	p.url.host = hostInternal{kind: hostEmpty}
}

func (p *parser) copyFileHost(base *Url) {
	text, _ := base.HostStr()
	p.pushStr(text)
	p.url.hostEnd = p.mark()
	p.url.host = base.host
	if text == "" {
		p.url.host = hostInternal{kind: hostEmpty}
	}
}

// parseFileHost parses the host of a "file://" URL. A Windows drive letter
// in host position is a path, and a literal "localhost" normalizes away to
// the empty host.
func (p *parser) parseFileHost(input string) (*Url, error) {
	const t = schemeFile
	p.startFile()

	if startsWithWindowsDriveLetter(input) {
		p.violation(ViolationFileWithHostAndWindowsDrive)
		p.finishEmptyFileHost()
		segs, remaining := p.parsePathSegments(nil, t, input)
		p.writePath(segs, t, true)
		return p.parseQueryAndFragment(remaining)
	}

	hostEnd := len(input)
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == '/' || c == '\\' || c == '?' || c == '#' {
			hostEnd = i
			break
		}
	}
	hostText := input[:hostEnd]
	if hostText == "" {
		p.finishEmptyFileHost()
	} else {
		host, err := parseHost(hostText, true)
		if err != nil {
			return nil, err
		}
		if domain, ok := host.Domain(); ok && domain == "localhost" {
			p.finishEmptyFileHost()
		} else {
			var b strings.Builder
			host.write(&b)
			p.pushStr(b.String())
			p.url.hostEnd = p.mark()
			p.url.host = hostInternal{kind: host.kind, ipv4: host.ipv4, ipv6: host.ipv6}
		}
	}

	segs, remaining := p.parsePathStart(t, input[hostEnd:])
	p.writePath(segs, t, true)
	return p.parseQueryAndFragment(remaining)
}

// parseRelative resolves input against a hierarchical base sharing its
// scheme. File bases take the parseFile route instead.
func (p *parser) parseRelative(input string, t schemeType, base *Url) (*Url, error) {
	special := t != schemeNotSpecial

	if input == "" {
		return p.copyBaseWithoutFragment(base)
	}
	switch input[0] {
	case '?':
		return p.queryOnly(base, input)
	case '#':
		return p.fragmentOnly(base, input[1:])
	}

	if input[0] == '/' || (special && input[0] == '\\') {
		if input[0] == '\\' {
			p.violation(ViolationBackslash)
		}
		rest := input[1:]
		if rest != "" && (rest[0] == '/' || (special && rest[0] == '\\')) {
			if rest[0] == '\\' {
				p.violation(ViolationBackslash)
			}
			rest = rest[1:]
			if special {
				// Extra slashes before the authority are skipped.
				for rest != "" && (rest[0] == '/' || rest[0] == '\\') {
					p.violation(ViolationExpectedDoubleSlash)
					rest = rest[1:]
				}
			}
			p.pushStr(base.Scheme())
			p.url.schemeEnd = p.mark()
			p.push(':')
			return p.afterDoubleSlash(rest, t)
		}
		// Absolute path on the base's authority.
		p.copyBasePrefix(base)
		segs, remaining := p.parsePathSegments(nil, t, input[1:])
		p.writePath(segs, t, base.HasAuthority())
		return p.parseQueryAndFragment(remaining)
	}

	// Relative path: the base's path minus its last segment.
	p.copyBasePrefix(base)
	segs, remaining := p.parsePathSegments(shortenedBaseSegments(base), t, input)
	p.writePath(segs, t, base.HasAuthority())
	return p.parseQueryAndFragment(remaining)
}

// copyBasePrefix copies the base serialization up to but excluding its path,
// leaving out any "/." authority guard so writePath can re-derive it.
func (p *parser) copyBasePrefix(base *Url) {
	end := base.pathStart
	if !base.HasAuthority() && end >= base.schemeEnd+3 &&
		base.serialization[end-2:end] == "/." {
		end -= 2
	}
	p.pushStr(base.serialization[:end])
	p.url.schemeEnd = base.schemeEnd
	p.url.usernameEnd = base.usernameEnd
	p.url.hostStart = base.hostStart
	p.url.hostEnd = base.hostEnd
	p.url.host = base.host
	p.url.port = base.port
}

func shortenedBaseSegments(base *Url) []string {
	segs, ok := base.PathSegments()
	if !ok || len(segs) == 0 {
		return nil
	}
	if schemeTypeOf(base.Scheme()) == schemeFile &&
		len(segs) == 1 && isNormalizedWindowsDriveLetter(segs[0]) {
		return segs
	}
	return segs[:len(segs)-1]
}

func (u *Url) firstPathSegment() (string, bool) {
	segs, ok := u.PathSegments()
	if !ok || len(segs) == 0 {
		return "", false
	}
	return segs[0], true
}

func (p *parser) copyBaseWithoutFragment(base *Url) (*Url, error) {
	u := *base
	if u.fragmentStart > 0 {
		u.serialization = u.serialization[:u.fragmentStart]
		u.fragmentStart = 0
	}
	return &u, nil
}

// queryOnly copies the base up to its query and parses a new query and
// fragment from input, which begins with "?".
func (p *parser) queryOnly(base *Url, input string) (*Url, error) {
	end := uint32(len(base.serialization))
	if base.queryStart > 0 {
		end = base.queryStart
	} else if base.fragmentStart > 0 {
		end = base.fragmentStart
	}
	p.adoptBase(base, end)
	return p.parseQueryAndFragment(input)
}

// fragmentOnly copies the base up to its fragment and appends a new one.
func (p *parser) fragmentOnly(base *Url, afterHash string) (*Url, error) {
	end := uint32(len(base.serialization))
	if base.fragmentStart > 0 {
		end = base.fragmentStart
	}
	p.adoptBase(base, end)
	p.parseFragment(afterHash)
	return p.finish()
}

func (p *parser) adoptBase(base *Url, end uint32) {
	p.buf = append(p.buf, base.serialization[:end]...)
	u := *base
	u.serialization = ""
	if u.queryStart >= end {
		u.queryStart = 0
	}
	if u.fragmentStart >= end {
		u.fragmentStart = 0
	}
	p.url = u
}

func (p *parser) parseQueryAndFragment(remaining string) (*Url, error) {
	if remaining == "" {
		return p.finish()
	}
	if remaining[0] == '?' {
		p.url.queryStart = p.mark()
		p.push('?')
		q := remaining[1:]
		frag := ""
		hasFrag := false
		if hash := strings.IndexByte(q, '#'); hash >= 0 {
			q, frag, hasFrag = q[:hash], q[hash+1:], true
		}
		p.checkURLCodePoints(q)
		var bytes []byte
		if p.queryEncoding != nil && legacyQueryEncodable(p.currentScheme()) {
			bytes = p.queryEncoding(q)
		} else {
			bytes = []byte(q)
		}
		p.pushStr(percent.Encode(bytes, percent.Query))
		if hasFrag {
			p.parseFragment(frag)
		}
		return p.finish()
	}
	// remaining[0] == '#'
	p.parseFragment(remaining[1:])
	return p.finish()
}

// legacyQueryEncodable lists the schemes whose query may use a legacy
// character encoding. Everything else is always UTF-8.
func legacyQueryEncodable(scheme string) bool {
	switch scheme {
	case "http", "https", "file", "ftp":
		return true
	}
	return false
}

// parseFragment copies the fragment through without percent-encoding, an
// intended asymmetry with the path and query.
func (p *parser) parseFragment(frag string) {
	p.url.fragmentStart = p.mark()
	p.push('#')
	p.checkURLCodePoints(frag)
	p.pushStr(frag)
}

func (p *parser) checkURLCodePoints(s string) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		p.checkURLCodePoint(r, s[i:])
		i += size
	}
}

func (p *parser) checkURLCodePoint(r rune, rest string) {
	if r == '%' {
		if len(rest) < 3 || !ascii.IsHexDigit(rest[1]) || !ascii.IsHexDigit(rest[2]) {
			p.violation(ViolationPercentDecode)
		}
	} else if !isURLCodePoint(r) {
		p.violation(ViolationNonURLCodePoint)
	}
}

// isURLCodePoint reports membership in the URL code point set: ASCII
// alphanumerics, a fixed punctuation list, and non-control, non-surrogate,
// non-noncharacter Unicode.
func isURLCodePoint(r rune) bool {
	if r < 0x80 {
		switch {
		case ascii.IsAlphanumeric(byte(r)):
			return true
		}
		switch r {
		case '!', '$', '&', '\'', '(', ')', '*', '+', ',', '-',
			'.', '/', ':', ';', '=', '?', '@', '_', '~':
			return true
		}
		return false
	}
	switch {
	case r >= 0xA0 && r <= 0xD7FF,
		r >= 0xE000 && r <= 0xFDCF,
		r >= 0xFDF0 && r <= 0x10FFFD:
		// Noncharacters at the end of each plane are excluded below.
	default:
		return false
	}
	return r&0xFFFE != 0xFFFE
}
