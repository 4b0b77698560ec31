package idna

import "strings"

// errorKind names one UTS #46 validity criterion that an input failed.
type errorKind uint8

const (
	errPunycode errorKind = iota
	errCheckHyphens
	errCheckBidi
	errStartCombiningMark
	errNFC
	errDisallowedByStd3ASCIIRules
	errDisallowedMappedInStd3
	errDisallowedCharacter
	errTooLongForDNS
	errTooShortForDNS
)

func (k errorKind) String() string {
	switch k {
	case errPunycode:
		return "punycode"
	case errCheckHyphens:
		return "check hyphens"
	case errCheckBidi:
		return "check bidi"
	case errStartCombiningMark:
		return "starts with combining mark"
	case errNFC:
		return "not NFC normalized"
	case errDisallowedByStd3ASCIIRules:
		return "disallowed by STD3 ASCII rules"
	case errDisallowedMappedInStd3:
		return "disallowed mapping in STD3"
	case errDisallowedCharacter:
		return "disallowed character"
	case errTooLongForDNS:
		return "too long for DNS"
	case errTooShortForDNS:
		return "too short for DNS"
	}
	return "unknown"
}

// Errors accumulates every validity criterion an input failed, in the order
// the failures were observed. Processing runs to completion rather than
// stopping at the first failure, so a single pass reports everything wrong
// with the input. An empty accumulator means success.
type Errors struct {
	kinds []errorKind
}

func (e *Errors) add(k errorKind) {
	for _, have := range e.kinds {
		if have == k {
			return
		}
	}
	e.kinds = append(e.kinds, k)
}

func (e *Errors) hasErrors() bool {
	return len(e.kinds) > 0
}

func (e *Errors) Error() string {
	if len(e.kinds) == 0 {
		return "idna: no errors"
	}
	var b strings.Builder
	b.WriteString("idna: ")
	for i, k := range e.kinds {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
	}
	return b.String()
}
