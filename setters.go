package weburl

import (
	"math"
	"net/netip"
	"strconv"
	"strings"

	"github.com/weburl/weburl/internal/ascii"
	"github.com/weburl/weburl/percent"
)

// components is the exploded form of a Url used by setters: one field is
// replaced, then assemble derives a fresh serialization and offsets. A Url
// is never mutated in place, so a failed setter leaves it untouched.
type components struct {
	scheme       string
	hasAuthority bool
	username     string
	password     string
	hasPassword  bool
	host         string
	hostInfo     hostInternal
	port         int32
	path         string
	query        string
	hasQuery     bool
	fragment     string
	hasFragment  bool
}

func (u *Url) components() components {
	password, hasPassword := u.Password()
	host, _ := u.HostStr()
	query, hasQuery := u.Query()
	fragment, hasFragment := u.Fragment()
	return components{
		scheme:       u.Scheme(),
		hasAuthority: u.HasAuthority(),
		username:     u.Username(),
		password:     password,
		hasPassword:  hasPassword,
		host:         host,
		hostInfo:     u.host,
		port:         u.port,
		path:         u.Path(),
		query:        query,
		hasQuery:     hasQuery,
		fragment:     fragment,
		hasFragment:  hasFragment,
	}
}

func (c components) assemble() (*Url, error) {
	var u Url
	var b strings.Builder
	b.WriteString(c.scheme)
	u.schemeEnd = uint32(b.Len())
	b.WriteByte(':')
	if c.hasAuthority {
		b.WriteString("//")
		if c.username != "" || (c.hasPassword && c.password != "") {
			b.WriteString(c.username)
			u.usernameEnd = uint32(b.Len())
			if c.hasPassword && c.password != "" {
				b.WriteByte(':')
				b.WriteString(c.password)
			}
			b.WriteByte('@')
		} else {
			u.usernameEnd = uint32(b.Len())
		}
		u.hostStart = uint32(b.Len())
		b.WriteString(c.host)
		u.hostEnd = uint32(b.Len())
		u.host = c.hostInfo
		u.port = c.port
		if c.port >= 0 {
			b.WriteByte(':')
			b.WriteString(strconv.Itoa(int(c.port)))
		}
	} else {
		pos := uint32(b.Len())
		u.usernameEnd, u.hostStart, u.hostEnd = pos, pos, pos
		u.host = hostInternal{kind: hostNone}
		u.port = -1
		if strings.HasPrefix(c.path, "//") {
			b.WriteString("/.")
		}
	}
	u.pathStart = uint32(b.Len())
	b.WriteString(c.path)
	if c.hasQuery {
		u.queryStart = uint32(b.Len())
		b.WriteByte('?')
		b.WriteString(c.query)
	}
	if c.hasFragment {
		u.fragmentStart = uint32(b.Len())
		b.WriteByte('#')
		b.WriteString(c.fragment)
	}
	if uint64(b.Len()) > math.MaxUint32 {
		return nil, ErrOverflow
	}
	u.serialization = b.String()
	return &u, nil
}

func (u *Url) apply(c components) error {
	rebuilt, err := c.assemble()
	if err != nil {
		return err
	}
	*u = *rebuilt
	return nil
}

// SetScheme changes the scheme. Special and non-special schemes cannot be
// exchanged for one another, a file URL cannot gain credentials or a port,
// and a URL without a host cannot become special.
func (u *Url) SetScheme(scheme string) error {
	lower := strings.ToLower(strings.TrimSuffix(scheme, ":"))
	if lower == "" || !ascii.IsAlpha(lower[0]) {
		return ErrSetterNotAllowed
	}
	for i := 1; i < len(lower); i++ {
		c := lower[i]
		if !ascii.IsAlphanumeric(c) && c != '+' && c != '-' && c != '.' {
			return ErrSetterNotAllowed
		}
	}
	oldType := schemeTypeOf(u.Scheme())
	newType := schemeTypeOf(lower)
	if (newType == schemeNotSpecial) != (oldType == schemeNotSpecial) {
		return ErrSetterNotAllowed
	}
	_, hasPassword := u.Password()
	_, hasPort := u.Port()
	if newType == schemeFile && (u.Username() != "" || hasPassword || hasPort) {
		return ErrSetterNotAllowed
	}
	if oldType == schemeFile && newType == schemeSpecialNotFile && !u.HasHost() {
		return ErrSetterNotAllowed
	}

	c := u.components()
	c.scheme = lower
	if c.port >= 0 {
		if def, ok := defaultPort(lower); ok && int32(def) == c.port {
			c.port = -1
		}
	}
	return u.apply(c)
}

// SetUsername replaces the username, percent-encoding it as needed. It
// fails on URLs that cannot carry credentials.
func (u *Url) SetUsername(username string) error {
	if u.CannotBeABase() || !u.HasHost() {
		return ErrSetterNotAllowed
	}
	c := u.components()
	c.username = percent.EncodeString(username, percent.Username)
	return u.apply(c)
}

// SetPassword replaces the password, percent-encoding it as needed. An
// empty password removes the component.
func (u *Url) SetPassword(password string) error {
	if u.CannotBeABase() || !u.HasHost() {
		return ErrSetterNotAllowed
	}
	c := u.components()
	c.password = percent.EncodeString(password, percent.Password)
	c.hasPassword = c.password != ""
	return u.apply(c)
}

// SetHost replaces the host, parsing input with the URL's scheme rules. An
// empty input clears the host, which only non-special and file URLs allow.
func (u *Url) SetHost(input string) error {
	if u.CannotBeABase() {
		return ErrSetHostOnCannotBeABaseURL
	}
	t := schemeTypeOf(u.Scheme())
	c := u.components()
	if input == "" {
		if t == schemeSpecialNotFile {
			return ErrEmptyHost
		}
		c.host = ""
		c.hostInfo = hostInternal{kind: hostEmpty}
	} else {
		host, err := parseHost(input, t != schemeNotSpecial)
		if err != nil {
			return err
		}
		c.host = host.String()
		c.hostInfo = hostInternal{kind: host.kind, ipv4: host.ipv4, ipv6: host.ipv6}
	}
	c.hasAuthority = true
	return u.apply(c)
}

// SetIPHost replaces the host with an IP address, bypassing host parsing.
func (u *Url) SetIPHost(address netip.Addr) error {
	if u.CannotBeABase() {
		return ErrSetHostOnCannotBeABaseURL
	}
	host := HostFromAddr(address)
	c := u.components()
	c.host = host.String()
	c.hostInfo = hostInternal{kind: host.kind, ipv4: host.ipv4, ipv6: host.ipv6}
	c.hasAuthority = true
	return u.apply(c)
}

// SetPort replaces the port. Setting the scheme's default port clears it
// from the serialization. Ports are not defined for file URLs or URLs
// without a host.
func (u *Url) SetPort(port uint16) error {
	if err := u.checkPortSettable(); err != nil {
		return err
	}
	c := u.components()
	c.port = int32(port)
	if def, ok := defaultPort(c.scheme); ok && def == port {
		c.port = -1
	}
	return u.apply(c)
}

// ClearPort removes the port.
func (u *Url) ClearPort() error {
	if err := u.checkPortSettable(); err != nil {
		return err
	}
	c := u.components()
	c.port = -1
	return u.apply(c)
}

func (u *Url) checkPortSettable() error {
	if u.CannotBeABase() || !u.HasHost() || u.Scheme() == "file" {
		return ErrSetterNotAllowed
	}
	return nil
}

// SetPath replaces the path, re-running the path state on the input. On a
// cannot-be-a-base URL the path is opaque and this is a no-op.
func (u *Url) SetPath(path string) error {
	if u.CannotBeABase() {
		return nil
	}
	t := schemeTypeOf(u.Scheme())
	special := t != schemeNotSpecial
	if strings.HasPrefix(path, "/") {
		path = path[1:]
	} else if special && strings.HasPrefix(path, "\\") {
		path = path[1:]
	}
	p := parser{inSetter: true}
	segs, _ := p.parsePathSegments(nil, t, path)
	if special && len(segs) == 0 {
		segs = []string{""}
	}
	var b strings.Builder
	for _, seg := range segs {
		b.WriteByte('/')
		b.WriteString(seg)
	}
	c := u.components()
	c.path = b.String()
	return u.apply(c)
}

// AppendPathSegments appends segments to a hierarchical path. Each segment
// is percent-encoded so that embedded slashes or escapes cannot split it.
func (u *Url) AppendPathSegments(segments ...string) error {
	if u.CannotBeABase() {
		return ErrSetterNotAllowed
	}
	c := u.components()
	path := c.path
	// An empty trailing segment is replaced rather than extended.
	path = strings.TrimSuffix(path, "/")
	var b strings.Builder
	b.WriteString(path)
	for _, seg := range segments {
		b.WriteByte('/')
		percent.AppendEncodedString(&b, seg, percent.PathSegment)
	}
	c.path = b.String()
	return u.apply(c)
}

// SetQuery replaces the query, percent-encoding it against the query set.
func (u *Url) SetQuery(query string) error {
	c := u.components()
	c.query = percent.EncodeString(query, percent.Query)
	c.hasQuery = true
	return u.apply(c)
}

// ClearQuery removes the query.
func (u *Url) ClearQuery() error {
	c := u.components()
	c.query = ""
	c.hasQuery = false
	return u.apply(c)
}

// SetFragment replaces the fragment. Like parsing, the fragment is stored
// without percent-encoding.
func (u *Url) SetFragment(fragment string) error {
	c := u.components()
	c.fragment = fragment
	c.hasFragment = true
	return u.apply(c)
}

// ClearFragment removes the fragment.
func (u *Url) ClearFragment() error {
	c := u.components()
	c.fragment = ""
	c.hasFragment = false
	return u.apply(c)
}
