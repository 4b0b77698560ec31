package weburl

import (
	"net/netip"
	"strconv"
	"strings"

	"github.com/weburl/weburl/idna"
	"github.com/weburl/weburl/internal/ascii"
	"github.com/weburl/weburl/percent"
)

type hostKind uint8

const (
	hostNone hostKind = iota
	hostEmpty
	hostDomain
	hostOpaque
	hostIPv4
	hostIPv6
)

// Host is the parsed form of a URL host: an IDNA-normalized domain, an
// IPv4 address, or an IPv6 address. The zero value is the empty host.
// Values are structurally comparable with ==.
type Host struct {
	kind   hostKind
	domain string
	ipv4   [4]byte
	ipv6   [8]uint16
}

// Domain returns the ASCII, lowercase domain and true when the host is a
// domain (or the opaque host of a non-special URL).
func (h Host) Domain() (string, bool) {
	if h.kind == hostDomain || h.kind == hostOpaque {
		return h.domain, true
	}
	return "", false
}

// IPv4 returns the address and true when the host is an IPv4 address.
func (h Host) IPv4() ([4]byte, bool) {
	return h.ipv4, h.kind == hostIPv4
}

// IPv6 returns the address pieces and true when the host is an IPv6 address.
func (h Host) IPv6() ([8]uint16, bool) {
	return h.ipv6, h.kind == hostIPv6
}

// Equal reports structural equality.
func (h Host) Equal(other Host) bool {
	return h == other
}

// String returns the host serialization: the domain text, the dotted
// decimal IPv4 form, or the bracketed compressed IPv6 form.
func (h Host) String() string {
	var b strings.Builder
	h.write(&b)
	return b.String()
}

func (h Host) write(b *strings.Builder) {
	switch h.kind {
	case hostDomain, hostOpaque:
		b.WriteString(h.domain)
	case hostIPv4:
		writeIPv4(b, h.ipv4)
	case hostIPv6:
		b.WriteByte('[')
		writeIPv6(b, h.ipv6)
		b.WriteByte(']')
	}
}

// ParseHost parses a host with the rules of special schemes: bracketed IPv6
// literals, strict dotted-decimal IPv4 literals, and IDNA-processed domains.
func ParseHost(input string) (Host, error) {
	return parseHost(input, true)
}

// HostFromAddr converts an IP address to a Host. IPv4-mapped IPv6 addresses
// stay IPv6.
func HostFromAddr(address netip.Addr) Host {
	if address.Is4() {
		return Host{kind: hostIPv4, ipv4: address.As4()}
	}
	raw := address.As16()
	var pieces [8]uint16
	for i := range pieces {
		pieces[i] = uint16(raw[2*i])<<8 | uint16(raw[2*i+1])
	}
	return Host{kind: hostIPv6, ipv6: pieces}
}

func parseHost(input string, special bool) (Host, error) {
	if strings.HasPrefix(input, "[") {
		if !strings.HasSuffix(input, "]") {
			return Host{}, ErrInvalidIPv6Address
		}
		address, err := parseIPv6(input[1 : len(input)-1])
		if err != nil {
			return Host{}, err
		}
		return Host{kind: hostIPv6, ipv6: address}, nil
	}
	if !special {
		return parseOpaqueHost(input)
	}
	if address, ok := parseIPv4(input); ok {
		return Host{kind: hostIPv4, ipv4: address}, nil
	}

	decoded := percent.DecodeString(input)
	domain, err := idna.ToASCII(string(decoded))
	if err != nil {
		return Host{}, ErrIdna
	}
	if domain == "" {
		return Host{}, ErrEmptyHost
	}
	if strings.ContainsAny(domain, forbiddenDomainChars) {
		return Host{}, ErrInvalidDomainCharacter
	}
	// A domain whose last label is numeric must be a valid IPv4 address.
	if endsInNumber(domain) {
		address, ok := parseIPv4(domain)
		if !ok {
			return Host{}, ErrInvalidIPv4Address
		}
		return Host{kind: hostIPv4, ipv4: address}, nil
	}
	return Host{kind: hostDomain, domain: domain}, nil
}

// Characters that may never appear in a parsed domain, and the subset (all
// but %) that may never appear even in the opaque host of a non-special URL.
const (
	forbiddenDomainChars = "\x00\t\n\r #%/:?@[\\]"
	forbiddenHostChars   = "\x00\t\n\r #/:?@[\\]"
)

func parseOpaqueHost(input string) (Host, error) {
	if input == "" {
		return Host{kind: hostEmpty}, nil
	}
	if strings.ContainsAny(input, forbiddenHostChars) {
		return Host{}, ErrInvalidDomainCharacter
	}
	return Host{kind: hostOpaque, domain: percent.EncodeString(input, percent.Simple)}, nil
}

func endsInNumber(domain string) bool {
	last := domain
	if i := strings.LastIndexByte(strings.TrimSuffix(domain, "."), '.'); i >= 0 {
		last = domain[i+1:]
		last = strings.TrimSuffix(last, ".")
	}
	if last == "" {
		return false
	}
	for i := 0; i < len(last); i++ {
		if !ascii.IsDigit(last[i]) {
			return false
		}
	}
	return true
}

// parseIPv4 accepts only the canonical dotted-decimal form: exactly four
// decimal parts, each 0-255 with no leading zeros. Anything else falls
// through to domain processing.
func parseIPv4(input string) ([4]byte, bool) {
	var address [4]byte
	part := 0
	i := 0
	for part < 4 {
		start := i
		value := 0
		for i < len(input) && ascii.IsDigit(input[i]) {
			value = value*10 + int(input[i]-'0')
			if value > 255 {
				return address, false
			}
			i++
		}
		length := i - start
		if length == 0 || (length > 1 && input[start] == '0') {
			return address, false
		}
		address[part] = byte(value)
		part++
		if part < 4 {
			if i == len(input) || input[i] != '.' {
				return address, false
			}
			i++
		}
	}
	if i != len(input) {
		return address, false
	}
	return address, true
}

func writeIPv4(b *strings.Builder, address [4]byte) {
	for i, octet := range address {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(int(octet)))
	}
}

// parseIPv6 implements the compress-pointer parse of a bracketed IPv6
// literal body: 16-bit hex pieces, at most one :: compression point, and an
// optional embedded IPv4 tail in the last two pieces.
func parseIPv6(input string) ([8]uint16, error) {
	var address [8]uint16
	pieceIndex := 0
	compress := -1
	i := 0
	n := len(input)

	if n > 0 && input[0] == ':' {
		if !strings.HasPrefix(input, "::") {
			return address, ErrInvalidIPv6Address
		}
		i = 2
		pieceIndex = 1
		compress = 1
	}
	for i < n {
		if pieceIndex == 8 {
			return address, ErrInvalidIPv6Address
		}
		if input[i] == ':' {
			if compress >= 0 {
				return address, ErrInvalidIPv6Address
			}
			i++
			pieceIndex++
			compress = pieceIndex
			continue
		}
		value := 0
		length := 0
		for i < n && length < 4 {
			v, ok := ascii.HexValue(input[i])
			if !ok {
				break
			}
			value = value*16 + int(v)
			i++
			length++
		}
		switch {
		case i < n && input[i] == '.':
			// Embedded IPv4 tail, occupying the last two pieces.
			if length == 0 || pieceIndex > 6 {
				return address, ErrInvalidIPv6Address
			}
			i -= length
			numbersSeen := 0
			for i < n {
				if numbersSeen > 0 {
					if input[i] != '.' || numbersSeen == 4 {
						return address, ErrInvalidIPv6Address
					}
					i++
				}
				if i == n || !ascii.IsDigit(input[i]) {
					return address, ErrInvalidIPv6Address
				}
				octet := -1
				for i < n && ascii.IsDigit(input[i]) {
					digit := int(input[i] - '0')
					switch {
					case octet == -1:
						octet = digit
					case octet == 0:
						return address, ErrInvalidIPv6Address
					default:
						octet = octet*10 + digit
					}
					if octet > 255 {
						return address, ErrInvalidIPv6Address
					}
					i++
				}
				address[pieceIndex] = address[pieceIndex]*0x100 + uint16(octet)
				numbersSeen++
				if numbersSeen == 2 || numbersSeen == 4 {
					pieceIndex++
				}
			}
			if numbersSeen != 4 {
				return address, ErrInvalidIPv6Address
			}
			i = n
			continue
		case i < n && input[i] == ':':
			i++
			if i == n {
				return address, ErrInvalidIPv6Address
			}
		case i < n:
			return address, ErrInvalidIPv6Address
		}
		address[pieceIndex] = uint16(value)
		pieceIndex++
	}
	if compress >= 0 {
		swaps := pieceIndex - compress
		pieceIndex = 7
		for pieceIndex != 0 && swaps > 0 {
			address[pieceIndex], address[compress+swaps-1] =
				address[compress+swaps-1], address[pieceIndex]
			pieceIndex--
			swaps--
		}
	} else if pieceIndex != 8 {
		return address, ErrInvalidIPv6Address
	}
	return address, nil
}

// writeIPv6 writes the canonical compressed form: lowercase hex pieces with
// the longest run of two or more zero pieces collapsed to "::", choosing the
// leftmost run on ties. The IPv4-mapped shorthand is never used.
func writeIPv6(b *strings.Builder, address [8]uint16) {
	compressStart, compressLen := -1, 1
	runStart, runLen := -1, 0
	for i := 0; i < 8; i++ {
		if address[i] == 0 {
			if runStart < 0 {
				runStart = i
			}
			runLen++
			if runLen > compressLen {
				compressStart, compressLen = runStart, runLen
			}
		} else {
			runStart, runLen = -1, 0
		}
	}
	const hex = "0123456789abcdef"
	inCompress := false
	for i := 0; i < 8; i++ {
		if inCompress {
			if address[i] == 0 {
				continue
			}
			inCompress = false
		}
		if i == compressStart {
			if i == 0 {
				b.WriteString("::")
			} else {
				b.WriteByte(':')
			}
			inCompress = true
			continue
		}
		piece := address[i]
		started := false
		for shift := 12; shift >= 0; shift -= 4 {
			digit := (piece >> uint(shift)) & 0xF
			if digit != 0 || started || shift == 0 {
				b.WriteByte(hex[digit])
				started = true
			}
		}
		if i != 7 {
			b.WriteByte(':')
		}
	}
}
