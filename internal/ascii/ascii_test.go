package ascii

import (
	"strconv"
	"testing"
)

func TestHexValue(t *testing.T) {
	cases := []struct {
		Input byte
		Value byte
		OK    bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'a', 10, true},
		{'f', 15, true},
		{'A', 10, true},
		{'F', 15, true},
		{'g', 0, false},
		{'G', 0, false},
		{' ', 0, false},
		{0x00, 0, false},
	}
	for i, c := range cases {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			value, ok := HexValue(c.Input)
			if e, a := c.OK, ok; e != a {
				t.Fatalf("expect ok %v, got %v", e, a)
			}
			if e, a := c.Value, value; e != a {
				t.Errorf("expect %v, got %v", e, a)
			}
		})
	}
}

func TestClassification(t *testing.T) {
	for b := byte('a'); b <= 'z'; b++ {
		if !IsAlpha(b) || !IsAlphanumeric(b) {
			t.Errorf("expect %q to be a letter", b)
		}
	}
	for b := byte('A'); b <= 'Z'; b++ {
		if !IsAlpha(b) || !IsAlphanumeric(b) {
			t.Errorf("expect %q to be a letter", b)
		}
	}
	for b := byte('0'); b <= '9'; b++ {
		if IsAlpha(b) || !IsDigit(b) || !IsAlphanumeric(b) || !IsHexDigit(b) {
			t.Errorf("expect %q to be a digit", b)
		}
	}
	for _, b := range []byte{'-', '.', '/', ' ', 0x00, 0x7F, 0xFF} {
		if IsAlpha(b) || IsDigit(b) || IsAlphanumeric(b) {
			t.Errorf("expect %q to be classified as neither letter nor digit", b)
		}
	}
}
