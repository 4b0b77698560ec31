package punycode

import (
	"strconv"
	"testing"
)

var samples = []struct {
	Unicode string
	Encoded string
}{
	{"", ""},
	{"abc", "abc-"},
	{"bücher", "bcher-kva"},
	{"münchen", "mnchen-3ya"},
	{"faß", "fa-hia"},
	{"☕", "53h"},
	{"日本語", "wgv71a119e"},
	{"правда", "80aafi6cg"},
}

func TestEncodeString(t *testing.T) {
	for i, c := range samples {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			encoded, err := EncodeString(c.Unicode)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if e, a := c.Encoded, encoded; e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestDecodeToString(t *testing.T) {
	for i, c := range samples {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			decoded, err := DecodeToString(c.Encoded)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if e, a := c.Unicode, decoded; e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestDecodeBasicOnly(t *testing.T) {
	// A trailing delimiter with no extended part decodes to the basic part.
	decoded, err := DecodeToString("abc-")
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := "abc", decoded; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestDecodeErrors(t *testing.T) {
	cases := []struct {
		Input string
		Err   error
	}{
		// Non-ASCII in the basic part.
		{"ü-x", ErrInvalid},
		// A leading delimiter does not split; "-" is then an invalid digit.
		{"-", ErrInvalid},
		// Characters outside the digit alphabet.
		{"a-b!c", ErrInvalid},
		// Truncated variable-length integer.
		{"a-b", ErrInvalid},
		// Delta too large for 32 bits.
		{"99999999999999999999", ErrOverflow},
	}
	for i, c := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			decoded, err := Decode(c.Input)
			if err == nil {
				t.Fatalf("expect error, got %q", string(decoded))
			}
			if e, a := c.Err, err; e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestEncodeRejectsInvalidRunes(t *testing.T) {
	if _, err := Encode([]rune{0x110000}); err != ErrInvalid {
		t.Errorf("expect %v, got %v", ErrInvalid, err)
	}
	if _, err := Encode([]rune{0xD800}); err != ErrInvalid {
		t.Errorf("expect %v, got %v", ErrInvalid, err)
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"mixed-ascii-и-unicode",
		"☕☕☕",
		"a☕b☕c",
		"ß",
	}
	for i, input := range inputs {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			encoded, err := EncodeString(input)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			decoded, err := DecodeToString(encoded)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if e, a := input, decoded; e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}
