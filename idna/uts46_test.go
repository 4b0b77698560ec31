package idna

import (
	"strconv"
	"strings"
	"testing"
)

func TestToASCII(t *testing.T) {
	cases := []struct {
		Input  string
		Expect string
	}{
		{"example.com", "example.com"},
		{"EXAMPLE.com", "example.com"},
		{"☕.us", "xn--53h.us"},
		{"bücher.de", "xn--bcher-kva.de"},
		{"xn--bcher-kva.de", "xn--bcher-kva.de"},
		{"XN--BCHER-KVA.de", "xn--bcher-kva.de"},
		// Deviation characters stand for themselves without transitional
		// processing.
		{"faß.de", "xn--fa-hia.de"},
		// Ignored code points vanish.
		{"exam\u00ADple.com", "example.com"},
		{"a_b.com", "a_b.com"},
		{"-leading.com", "-leading.com"},
		{"", ""},
		{"xn--", ""},
		{"xn--4db", "xn--4db"},
	}
	for i, c := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			ascii, err := ToASCII(c.Input)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if e, a := c.Expect, ascii; e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestToASCIITransitional(t *testing.T) {
	ascii, err := Config{}.TransitionalProcessing(true).ToASCII("faß.de")
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := "fass.de", ascii; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestToASCIIErrors(t *testing.T) {
	cases := []string{
		// An unpaired combining mark cannot start a label.
		"́a.com",
		// Left-to-right text inside a right-to-left label.
		"אa.com",
		// Punycode that does not decode.
		"xn--a-ecp!.com",
	}
	for i, input := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if _, err := ToASCII(input); err == nil {
				t.Errorf("expect error for %q", input)
			}
		})
	}
}

// A domain is a bidi domain when any of its labels contains right-to-left
// text, whether that label was supplied in Unicode or in Punycode form. Both
// spellings of the same domain must fail the bidi criteria identically.
func TestToASCIIBidiInPunycodeLabel(t *testing.T) {
	cases := []string{
		// A label starting with a European digit in a bidi domain.
		"0à.א",
		"xn--0-sfa.xn--4db",
		// A label that fails to decode could hide right-to-left text.
		"0à.xn--a-ecp!",
	}
	for i, input := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if _, err := ToASCII(input); err == nil {
				t.Errorf("expect error for %q", input)
			}
		})
	}
}

func TestToASCIIStrict(t *testing.T) {
	ascii, err := ToASCIIStrict("example.com")
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := "example.com", ascii; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}

	failing := []string{
		// STD3 disallows ASCII outside letters, digits, and hyphen.
		"a_b.com",
		"a b.com",
		// Labels may not begin or end with a hyphen.
		"-leading.com",
		"trailing-.com",
		// DNS length limits.
		"xn--",
		"",
		strings.Repeat("a", 64) + ".com",
		"a." + strings.Repeat(strings.Repeat("b", 63)+".", 4) + "com",
	}
	for i, input := range failing {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if _, err := ToASCIIStrict(input); err == nil {
				t.Errorf("expect error for %q", input)
			}
		})
	}
}

func TestToUnicode(t *testing.T) {
	cases := []struct {
		Input  string
		Expect string
	}{
		{"xn--53h.us", "☕.us"},
		{"xn--bcher-kva.de", "bücher.de"},
		{"example.com", "example.com"},
		{"EXAMPLE.com", "example.com"},
		{"☕.us", "☕.us"},
	}
	for i, c := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			unicode, err := ToUnicode(c.Input)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if e, a := c.Expect, unicode; e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

// ToUnicode returns its best-effort conversion alongside the error.
func TestToUnicodeBestEffort(t *testing.T) {
	unicode, err := ToUnicode("אa.com")
	if err == nil {
		t.Fatalf("expect error")
	}
	if e, a := "אa.com", unicode; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestCheckHyphens(t *testing.T) {
	cfg := Config{}.CheckHyphens(true)
	if _, err := cfg.ToASCII("-leading.com"); err == nil {
		t.Errorf("expect error for leading hyphen")
	}
	if _, err := cfg.ToASCII("trailing-.com"); err == nil {
		t.Errorf("expect error for trailing hyphen")
	}
	ascii, err := cfg.ToASCII("well-formed.com")
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	if e, a := "well-formed.com", ascii; e != a {
		t.Errorf("expect %v, got %v", e, a)
	}
}

func TestErrorsAccumulate(t *testing.T) {
	// One pass reports every failed criterion, deduplicated.
	_, err := Config{}.
		UseSTD3ASCIIRules(true).
		CheckHyphens(true).
		ToASCII("-a_b-.c_d")
	if err == nil {
		t.Fatalf("expect error")
	}
	msg := err.Error()
	if !strings.Contains(msg, "check hyphens") {
		t.Errorf("expect hyphen failure in %q", msg)
	}
	if !strings.Contains(msg, "disallowed by STD3 ASCII rules") {
		t.Errorf("expect STD3 failure in %q", msg)
	}
	if e, a := 1, strings.Count(msg, "disallowed by STD3 ASCII rules"); e != a {
		t.Errorf("expect %v STD3 failure, got %v in %q", e, a, msg)
	}
}
