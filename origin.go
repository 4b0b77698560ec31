package weburl

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/weburl/weburl/idna"
)

// opaqueOriginCounter mints process-unique identities for opaque origins.
// It only ever increments, so two separately minted opaque origins can
// never compare equal.
var opaqueOriginCounter atomic.Uint64

// Origin is a same-origin comparison key: either a (scheme, host, port)
// tuple or an opaque identity that equals only itself. Compare with ==.
type Origin struct {
	opaque uint64 // nonzero for opaque origins
	scheme string
	host   Host
	port   uint16
}

func newOpaqueOrigin() Origin {
	return Origin{opaque: opaqueOriginCounter.Add(1)}
}

// Origin computes the URL's origin. blob: URLs take the origin of the URL
// carried in their path; ftp, http, https, ws, and wss URLs form a tuple
// origin; everything else, including file:, gets a fresh opaque origin on
// every call.
func (u *Url) Origin() Origin {
	switch scheme := u.Scheme(); scheme {
	case "blob":
		inner, err := Parse(u.Path())
		if err != nil {
			return newOpaqueOrigin()
		}
		return inner.Origin()
	case "ftp", "http", "https", "ws", "wss":
		host, _ := u.Host()
		port, _ := u.PortOrKnownDefault()
		return Origin{scheme: scheme, host: host, port: port}
	default:
		return newOpaqueOrigin()
	}
}

// IsTuple reports whether the origin is a (scheme, host, port) tuple, as
// opposed to an opaque origin.
func (o Origin) IsTuple() bool {
	return o.opaque == 0
}

// ASCIISerialization renders the origin as scheme://host, with the port
// appended when it differs from the scheme's default. Opaque origins
// serialize as "null".
func (o Origin) ASCIISerialization() string {
	if !o.IsTuple() {
		return "null"
	}
	return o.serialize(o.host)
}

// UnicodeSerialization is like ASCIISerialization with a domain host
// rendered in its Unicode form.
func (o Origin) UnicodeSerialization() string {
	if !o.IsTuple() {
		return "null"
	}
	host := o.host
	if host.kind == hostDomain {
		if unicode, err := idna.ToUnicode(host.domain); err == nil {
			host = Host{kind: hostDomain, domain: unicode}
		}
	}
	return o.serialize(host)
}

func (o Origin) serialize(host Host) string {
	var b strings.Builder
	b.WriteString(o.scheme)
	b.WriteString("://")
	host.write(&b)
	if def, ok := defaultPort(o.scheme); !ok || def != o.port {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(o.port)))
	}
	return b.String()
}
