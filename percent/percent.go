// Package percent implements the WHATWG URL percent-encoding codec.
//
// Encoding is driven by an EncodeSet, a predicate over byte values naming
// which ASCII bytes must be written as a %XX escape in a given URL component
// context. Bytes outside the ASCII range are always escaped. Decoding never
// fails: a % that is not followed by two hexadecimal digits passes through
// unchanged.
package percent

import (
	"strings"

	"github.com/weburl/weburl/internal/ascii"
)

// An EncodeSet identifies the ASCII bytes that must be percent-encoded in a
// given URL component context. The zero value encodes only non-ASCII bytes.
//
// The named sets below form layered supersets: each is its base set plus the
// listed additional characters.
type EncodeSet struct {
	mask [2]uint64
}

// Contains returns whether byte b must be percent-encoded under the set.
// All bytes outside the ASCII range are encoded regardless of the set.
func (s EncodeSet) Contains(b byte) bool {
	return b > 0x7E || s.mask[b>>6]&(1<<(b&0x3F)) != 0
}

// Add returns the set extended with the given ASCII bytes.
func (s EncodeSet) Add(bytes ...byte) EncodeSet {
	for _, b := range bytes {
		s.mask[b>>6] |= 1 << (b & 0x3F)
	}
	return s
}

func controlSet() EncodeSet {
	var s EncodeSet
	for b := byte(0); b < 0x20; b++ {
		s = s.Add(b)
	}
	return s.Add(0x7F)
}

// The encode sets used by the URL parser and setters.
var (
	// Simple encodes C0 controls and DEL, plus all non-ASCII bytes.
	// It is used for non-relative scheme data.
	Simple = controlSet()

	// Query is used for query strings.
	Query = Simple.Add(' ', '"', '#', '<', '>')

	// Default is used for path segments during parsing.
	Default = Query.Add('`', '?', '{', '}')

	// PathSegment is used for path segments supplied through setters,
	// where a literal / or an escape sequence must not split the segment.
	PathSegment = Default.Add('%', '/')

	// UserInfo is used for the username and password during parsing.
	UserInfo = Default.Add('/', ':', ';', '=', '@', '[', '\\', ']', '^', '|')

	// Password is used when setting the password of a parsed URL.
	Password = UserInfo.Add('%')

	// Username is used when setting the username of a parsed URL.
	Username = Password.Add(':')
)

const upperhex = "0123456789ABCDEF"

// Encode percent-encodes input against the set. The result is ASCII.
func Encode(input []byte, set EncodeSet) string {
	var b strings.Builder
	AppendEncoded(&b, input, set)
	return b.String()
}

// EncodeString percent-encodes the UTF-8 bytes of input against the set.
func EncodeString(input string, set EncodeSet) string {
	var b strings.Builder
	AppendEncodedString(&b, input, set)
	return b.String()
}

// AppendEncoded percent-encodes input against the set, writing to b.
func AppendEncoded(b *strings.Builder, input []byte, set EncodeSet) {
	for _, c := range input {
		appendByte(b, c, set)
	}
}

// AppendEncodedString percent-encodes the UTF-8 bytes of input against the
// set, writing to b.
func AppendEncodedString(b *strings.Builder, input string, set EncodeSet) {
	for i := 0; i < len(input); i++ {
		appendByte(b, input[i], set)
	}
}

func appendByte(b *strings.Builder, c byte, set EncodeSet) {
	if set.Contains(c) {
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xF])
	} else {
		b.WriteByte(c)
	}
}

// Decode percent-decodes input. A % followed by two hexadecimal digits
// decodes to one byte; any other % passes through unchanged, so decoding
// cannot fail.
func Decode(input []byte) []byte {
	out := make([]byte, 0, len(input))
	for i := 0; i < len(input); i++ {
		c := input[i]
		if c == '%' && i+2 < len(input) {
			if hi, ok := ascii.HexValue(input[i+1]); ok {
				if lo, ok := ascii.HexValue(input[i+2]); ok {
					out = append(out, hi<<4|lo)
					i += 2
					continue
				}
			}
		}
		out = append(out, c)
	}
	return out
}

// DecodeString percent-decodes the bytes of input.
func DecodeString(input string) []byte {
	return Decode([]byte(input))
}
