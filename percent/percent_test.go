package percent

import (
	"strconv"
	"testing"
)

func TestEncodeString(t *testing.T) {
	cases := []struct {
		Input  string
		Set    EncodeSet
		Expect string
	}{
		{"abc", Simple, "abc"},
		{"a b", Simple, "a b"},
		{"a\x00b", Simple, "a%00b"},
		{"a\x7Fb", Simple, "a%7Fb"},
		{"héllo", Simple, "h%C3%A9llo"},
		{"a b\"c", Query, "a%20b%22c"},
		{"a<b>#", Query, "a%3Cb%3E%23"},
		{"a?b`c{d}", Default, "a%3Fb%60c%7Bd%7D"},
		{"a/b%c", PathSegment, "a%2Fb%25c"},
		{"u:p@h", UserInfo, "u%3Ap%40h"},
		{"p%ss", Password, "p%25ss"},
		{"u:ser", Username, "u%3Aser"},
		// The zero set encodes only non-ASCII bytes.
		{"a\x01 \x7Fÿ", EncodeSet{}, "a\x01 \x7F%C3%BF"},
	}
	for i, c := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if e, a := c.Expect, EncodeString(c.Input, c.Set); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	cases := []struct {
		Input  string
		Expect string
	}{
		{"", ""},
		{"abc", "abc"},
		{"a%20b", "a b"},
		{"%C3%A9", "é"},
		{"%41%42%43", "ABC"},
		// Malformed escapes pass through unchanged.
		{"a%2", "a%2"},
		{"a%", "a%"},
		{"a%zzb", "a%zzb"},
		{"100%", "100%"},
		{"%%35", "%5"},
	}
	for i, c := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if e, a := c.Expect, string(DecodeString(c.Input)); e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestDecodeInvertsEncode(t *testing.T) {
	inputs := []string{
		"plain",
		"with space and \"quotes\"",
		"slash/and%percent",
		"unicode ☕ text",
		"\x00\x01\x02\x7F",
	}
	sets := []EncodeSet{Simple, Query, Default, PathSegment, UserInfo, Password, Username}
	for i, input := range inputs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			for _, set := range sets {
				if e, a := input, string(DecodeString(EncodeString(input, set))); e != a {
					t.Errorf("expect %v, got %v", e, a)
				}
			}
		})
	}
}

func TestContains(t *testing.T) {
	if Simple.Contains(' ') {
		t.Errorf("expect space outside the simple set")
	}
	if !Query.Contains(' ') {
		t.Errorf("expect space in the query set")
	}
	if !Simple.Contains(0x1F) {
		t.Errorf("expect control bytes in every set")
	}
	if !Simple.Contains(0x80) {
		t.Errorf("expect non-ASCII bytes encoded regardless of set")
	}
	if Query.Contains('?') {
		t.Errorf("expect ? outside the query set")
	}
	if !Default.Contains('?') {
		t.Errorf("expect ? in the path set")
	}
	custom := Simple.Add('x')
	if !custom.Contains('x') {
		t.Errorf("expect added byte in the set")
	}
	if Simple.Contains('x') {
		t.Errorf("expect Add to leave the receiver set unchanged")
	}
}
