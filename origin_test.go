package weburl

import (
	"strconv"
	"testing"
)

func TestOriginSerialization(t *testing.T) {
	cases := []struct {
		Input  string
		Expect string
	}{
		{"http://example.com/a/b", "http://example.com"},
		{"http://example.com:8080/", "http://example.com:8080"},
		{"https://example.com/", "https://example.com"},
		{"https://example.com:443/", "https://example.com"},
		{"ftp://example.com/", "ftp://example.com"},
		{"ws://example.com/chat", "ws://example.com"},
		{"http://[::1]:8080/", "http://[::1]:8080"},
		{"http://192.168.0.1/", "http://192.168.0.1"},
		{"blob:https://example.com/0be7a7b0", "https://example.com"},
		{"blob:ftp://example.com/x", "ftp://example.com"},
		// Opaque origins.
		{"file:///etc/hosts", "null"},
		{"mailto:john@example.com", "null"},
		{"blob:not-a-url", "null"},
		{"blob:file:///x", "null"},
	}
	for i, c := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			u, err := Parse(c.Input)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if e, a := c.Expect, u.Origin().ASCIISerialization(); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestOriginEquality(t *testing.T) {
	a := mustParse(t, "http://example.com/x").Origin()
	b := mustParse(t, "http://example.com:80/y").Origin()
	if a != b {
		t.Errorf("expect %v to equal %v", a, b)
	}
	if !a.IsTuple() {
		t.Errorf("expect tuple origin")
	}

	c := mustParse(t, "https://example.com/x").Origin()
	if a == c {
		t.Errorf("expect %v to differ from %v", a, c)
	}
	d := mustParse(t, "http://example.com:8080/x").Origin()
	if a == d {
		t.Errorf("expect %v to differ from %v", a, d)
	}
}

// Every computation of an opaque origin yields a fresh identity that equals
// only itself.
func TestOpaqueOriginIdentity(t *testing.T) {
	u := mustParse(t, "file:///etc/hosts")
	first := u.Origin()
	second := u.Origin()
	if first.IsTuple() || second.IsTuple() {
		t.Fatalf("expect opaque origins, got %v and %v", first, second)
	}
	if first == second {
		t.Errorf("expect distinct opaque origins")
	}
	if first != first {
		t.Errorf("expect an opaque origin to equal itself")
	}
}

func TestOriginUnicodeSerialization(t *testing.T) {
	u := mustParse(t, "http://☕.us/x")
	origin := u.Origin()
	if e, a := "http://xn--53h.us", origin.ASCIISerialization(); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
	if e, a := "http://☕.us", origin.UnicodeSerialization(); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}

	opaque := mustParse(t, "mailto:x").Origin()
	if e, a := "null", opaque.UnicodeSerialization(); e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}
