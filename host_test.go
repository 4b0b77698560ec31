package weburl

import (
	"strconv"
	"testing"
)

func TestParseHost(t *testing.T) {
	cases := []struct {
		Input  string
		Expect string
	}{
		{"example.com", "example.com"},
		{"EXAMPLE.com", "example.com"},
		{"ex%61mple.com", "example.com"},
		{"xn--53h.us", "xn--53h.us"},
		{"☕.us", "xn--53h.us"},
		{"bücher.de", "xn--bcher-kva.de"},
		{"192.168.0.1", "192.168.0.1"},
		{"0.0.0.0", "0.0.0.0"},
		{"255.255.255.255", "255.255.255.255"},
		{"[::1]", "[::1]"},
		{"[1:2:3:4:5:6:7:8]", "[1:2:3:4:5:6:7:8]"},
		{"[2001:DB8::1]", "[2001:db8::1]"},
		{"[::ffff:192.0.2.128]", "[::ffff:c000:280]"},
		{"[1:0:0:2::3]", "[1:0:0:2::3]"},
	}
	for i, c := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			host, err := ParseHost(c.Input)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if e, a := c.Expect, host.String(); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestParseHostErrors(t *testing.T) {
	cases := []struct {
		Input string
		Err   ParseError
	}{
		{"", ErrEmptyHost},
		{"a b", ErrInvalidDomainCharacter},
		{"a%23b", ErrInvalidDomainCharacter},
		{"999.0.0.1", ErrInvalidIPv4Address},
		{"192.168.0.01", ErrInvalidIPv4Address},
		{"0x7f.0.0.1", ErrInvalidIPv4Address},
		{"1.2.3.4.5", ErrInvalidIPv4Address},
		{"[::1", ErrInvalidIPv6Address},
		{"[1:2]", ErrInvalidIPv6Address},
		{"[1::2::3]", ErrInvalidIPv6Address},
		{"[12345::]", ErrInvalidIPv6Address},
		{"[1:2:3:4:5:6:7:8:9]", ErrInvalidIPv6Address},
		{"[::1.2.3.4.5]", ErrInvalidIPv6Address},
		{"[::1.2.3]", ErrInvalidIPv6Address},
		{"[::00.1.2.3]", ErrInvalidIPv6Address},
	}
	for i, c := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			host, err := ParseHost(c.Input)
			if err == nil {
				t.Fatalf("expect error, got %v", host)
			}
			if e, a := c.Err, err; e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestHostAccessors(t *testing.T) {
	host, err := ParseHost("example.com")
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	domain, ok := host.Domain()
	if !ok {
		t.Fatalf("expect domain host")
	}
	if e, a := "example.com", domain; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if _, ok := host.IPv4(); ok {
		t.Errorf("expect no IPv4 address")
	}
	if _, ok := host.IPv6(); ok {
		t.Errorf("expect no IPv6 address")
	}

	host, err = ParseHost("127.0.0.1")
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	addr4, ok := host.IPv4()
	if !ok {
		t.Fatalf("expect IPv4 host")
	}
	if e, a := [4]byte{127, 0, 0, 1}, addr4; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}

	host, err = ParseHost("[2001:db8::1]")
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	addr6, ok := host.IPv6()
	if !ok {
		t.Fatalf("expect IPv6 host")
	}
	if e, a := [8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}, addr6; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestHostEqual(t *testing.T) {
	a, err := ParseHost("example.com")
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	b, err := ParseHost("EXAMPLE.com")
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if !a.Equal(b) {
		t.Errorf("expect %v to equal %v", a, b)
	}
	c, err := ParseHost("other.example")
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if a.Equal(c) {
		t.Errorf("expect %v to differ from %v", a, c)
	}
}

// The serializer compresses the longest run of two or more zero pieces,
// preferring the leftmost run on ties, and never uses the IPv4-mapped
// shorthand.
func TestIPv6Serialization(t *testing.T) {
	cases := []struct {
		Pieces [8]uint16
		Expect string
	}{
		{[8]uint16{0, 0, 0, 0, 0, 0, 0, 1}, "[::1]"},
		{[8]uint16{1, 0, 0, 0, 0, 0, 0, 0}, "[1::]"},
		{[8]uint16{0, 0, 0, 0, 0, 0, 0, 0}, "[::]"},
		{[8]uint16{1, 0, 0, 2, 0, 0, 0, 3}, "[1:0:0:2::3]"},
		{[8]uint16{1, 0, 0, 2, 0, 0, 3, 4}, "[1::2:0:0:3:4]"},
		{[8]uint16{1, 2, 3, 4, 5, 0, 6, 7}, "[1:2:3:4:5:0:6:7]"},
		{[8]uint16{0x2001, 0xdb8, 0, 0, 0, 0, 0, 1}, "[2001:db8::1]"},
		{[8]uint16{0xfe80, 1, 2, 3, 4, 5, 6, 7}, "[fe80:1:2:3:4:5:6:7]"},
		{[8]uint16{0, 0, 0, 0, 0, 0xffff, 0xc000, 0x280}, "[::ffff:c000:280]"},
	}
	for i, c := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			host := Host{kind: hostIPv6, ipv6: c.Pieces}
			if e, a := c.Expect, host.String(); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestOpaqueHost(t *testing.T) {
	cases := []struct {
		Input  string
		Expect string
	}{
		{"foo://ho%73t/", "foo://ho%73t/"},
		{"foo://h~st/", "foo://h~st/"},
		{"foo://höst/", "foo://h%C3%B6st/"},
	}
	for i, c := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			u, err := Parse(c.Input)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if e, a := c.Expect, u.String(); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
			if _, ok := u.Domain(); ok {
				t.Errorf("expect opaque host, not a domain")
			}
		})
	}
}

func TestEndsInNumber(t *testing.T) {
	cases := []struct {
		Input  string
		Expect bool
	}{
		{"example.com", false},
		{"example.123", true},
		{"example.123.", true},
		{"123", true},
		{"1.2.3.4", true},
		{"example.1a", false},
		{"", false},
	}
	for i, c := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if e, a := c.Expect, endsInNumber(c.Input); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}
