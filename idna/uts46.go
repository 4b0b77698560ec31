// Package idna implements UTS #46 (Unicode IDNA Compatibility Processing)
// domain name mapping and validation, the processing model used by URL hosts.
//
// The entry points are ToASCII, ToASCIIStrict, and ToUnicode, or a Config
// value when the individual processing knobs need to be set. Validation
// failures accumulate in an Errors value rather than aborting at the first
// problem.
package idna

//go:generate sh -c "python3 make_uts46_table.py $(go env GOROOT)/src/vendor/golang.org/x/net/idna/tables15.0.0.go > uts46_table.go"

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/bidi"
	"golang.org/x/text/unicode/norm"

	"github.com/weburl/weburl/punycode"
)

const acePrefix = "xn--"

// mappingStatus is the UTS #46 status of a code point range.
type mappingStatus uint8

const (
	statusValid mappingStatus = iota
	statusIgnored
	statusMapped
	statusDeviation
	statusDisallowed
	statusDisallowedStd3Valid
	statusDisallowedStd3Mapped
)

// mappingRange covers the inclusive code point range [from, to]. For mapped
// statuses, the replacement is mappingStr[mapOff : mapOff+mapLen].
type mappingRange struct {
	from, to rune
	status   mappingStatus
	mapOff   uint16
	mapLen   uint8
}

func (m mappingRange) mapping() string {
	return mappingStr[m.mapOff : int(m.mapOff)+int(m.mapLen)]
}

func lookupMapping(r rune) mappingRange {
	lo, hi := 0, len(mappingTable)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		switch m := mappingTable[mid]; {
		case r > m.to:
			lo = mid + 1
		case r < m.from:
			hi = mid
		default:
			return m
		}
	}
	return mappingRange{status: statusDisallowed}
}

// Config selects the optional UTS #46 processing behaviors. The zero value
// matches ToASCII and ToUnicode: non-transitional processing with none of the
// strictness flags enabled.
type Config struct {
	useSTD3ASCIIRules      bool
	transitionalProcessing bool
	verifyDNSLength        bool
	checkHyphens           bool
}

// UseSTD3ASCIIRules controls the UseSTD3ASCIIRules flag: when set, ASCII
// characters outside letters, digits, and hyphen are disallowed rather than
// passed through.
func (c Config) UseSTD3ASCIIRules(v bool) Config {
	c.useSTD3ASCIIRules = v
	return c
}

// TransitionalProcessing controls whether deviation characters map as in
// IDNA2003 (transitional) or stand for themselves (non-transitional).
//
// Deprecated: transitional processing was retired by the WHATWG URL Standard
// and by browsers. It remains only for callers that need to reproduce the
// legacy behavior.
func (c Config) TransitionalProcessing(v bool) Config {
	c.transitionalProcessing = v
	return c
}

// VerifyDNSLength controls whether ToASCII enforces the DNS limits of 63
// bytes per label and 253 bytes for the whole name.
func (c Config) VerifyDNSLength(v bool) Config {
	c.verifyDNSLength = v
	return c
}

// CheckHyphens controls whether labels may begin or end with a hyphen.
func (c Config) CheckHyphens(v bool) Config {
	c.checkHyphens = v
	return c
}

// ToASCII converts a domain to its ASCII form under the default
// configuration, as required for URL host parsing.
func ToASCII(domain string) (string, error) {
	return Config{}.ToASCII(domain)
}

// ToASCIIStrict is ToASCII with the beStrict behaviors enabled: STD3 ASCII
// rules, hyphen restrictions, and DNS length limits.
func ToASCIIStrict(domain string) (string, error) {
	return Config{}.
		UseSTD3ASCIIRules(true).
		CheckHyphens(true).
		VerifyDNSLength(true).
		ToASCII(domain)
}

// ToUnicode converts a domain to its Unicode form under the default
// configuration. The returned string is always usable; when the input fails
// validation the string is the best-effort conversion and the error reports
// what failed.
func ToUnicode(domain string) (string, error) {
	return Config{}.ToUnicode(domain)
}

// ToASCII applies UTS #46 processing and converts every non-ASCII label to
// its Punycode form with the "xn--" prefix.
func (c Config) ToASCII(domain string) (string, error) {
	var errs Errors
	processed := c.process(domain, c.transitionalProcessing, &errs)

	var b strings.Builder
	b.Grow(len(processed))
	for i, label := range strings.Split(processed, ".") {
		if i > 0 {
			b.WriteByte('.')
		}
		if isASCII(label) {
			b.WriteString(label)
			continue
		}
		encoded, err := punycode.EncodeString(label)
		if err != nil {
			errs.add(errPunycode)
			continue
		}
		b.WriteString(acePrefix)
		b.WriteString(encoded)
	}
	result := b.String()

	if c.verifyDNSLength {
		name := strings.TrimSuffix(result, ".")
		if name == "" {
			errs.add(errTooShortForDNS)
		}
		if len(name) > 253 {
			errs.add(errTooLongForDNS)
		}
		for _, label := range strings.Split(name, ".") {
			if label == "" {
				errs.add(errTooShortForDNS)
			}
			if len(label) > 63 {
				errs.add(errTooLongForDNS)
			}
		}
	}
	if errs.hasErrors() {
		return "", &errs
	}
	return result, nil
}

// ToUnicode applies UTS #46 processing without Punycode re-encoding, so
// "xn--" labels come back as their Unicode form.
func (c Config) ToUnicode(domain string) (string, error) {
	var errs Errors
	result := c.process(domain, false, &errs)
	if errs.hasErrors() {
		return result, &errs
	}
	return result, nil
}

// process runs the UTS #46 Processing steps: per-code-point mapping, NFC
// normalization, label splitting with "xn--" decoding, and per-label
// validation. Failures accumulate in errs; the mapped string is returned
// regardless so callers can produce best-effort output.
func (c Config) process(domain string, transitional bool, errs *Errors) string {
	if !c.checkHyphens && simpleASCII(domain) {
		return domain
	}

	var mapped strings.Builder
	mapped.Grow(len(domain))
	for _, r := range domain {
		switch m := lookupMapping(r); m.status {
		case statusValid:
			mapped.WriteRune(r)
		case statusIgnored:
		case statusMapped:
			mapped.WriteString(m.mapping())
		case statusDeviation:
			if transitional {
				mapped.WriteString(m.mapping())
			} else {
				mapped.WriteRune(r)
			}
		case statusDisallowed:
			errs.add(errDisallowedCharacter)
			mapped.WriteRune(r)
		case statusDisallowedStd3Valid:
			if c.useSTD3ASCIIRules {
				errs.add(errDisallowedByStd3ASCIIRules)
			}
			mapped.WriteRune(r)
		case statusDisallowedStd3Mapped:
			if c.useSTD3ASCIIRules {
				errs.add(errDisallowedMappedInStd3)
				mapped.WriteRune(r)
			} else {
				mapped.WriteString(m.mapping())
			}
		}
	}
	normalized := norm.NFC.String(mapped.String())

	// Decode every "xn--" label before validating any label. The bidi
	// criteria apply per label, but only when the domain as a whole contains
	// right-to-left text (RFC 5893 section 1.4), and that text may sit
	// inside a Punycode label anywhere in the domain.
	labels := strings.Split(normalized, ".")
	decoded := make([]decodedLabel, len(labels))
	isBidiDomain := false
	for i, label := range labels {
		d := decodedLabel{text: label, transitional: transitional, validate: true}
		if strings.HasPrefix(label, acePrefix) {
			text, err := punycode.DecodeToString(label[len(acePrefix):])
			if err != nil {
				errs.add(errPunycode)
				// The undecodable label could stand for anything,
				// including right-to-left text.
				isBidiDomain = true
				d.validate = false
			} else {
				if !norm.NFC.IsNormalString(text) {
					errs.add(errNFC)
				}
				// A decoded label is validated non-transitionally
				// even under transitional processing.
				d = decodedLabel{text: text, validate: true}
			}
		}
		if !isBidiDomain && hasRTL(d.text) {
			isBidiDomain = true
		}
		decoded[i] = d
	}

	var validated strings.Builder
	validated.Grow(len(normalized))
	for i, d := range decoded {
		if i > 0 {
			validated.WriteByte('.')
		}
		if d.validate {
			c.validateLabel(d.text, d.transitional, isBidiDomain, errs)
		}
		validated.WriteString(d.text)
	}
	return validated.String()
}

// decodedLabel is one label of the domain after "xn--" decoding, with the
// flags its validation needs. validate is false when the label failed to
// decode and is carried through verbatim.
type decodedLabel struct {
	text         string
	transitional bool
	validate     bool
}

func hasRTL(s string) bool {
	for _, r := range s {
		switch bidiClass(r) {
		case bidi.R, bidi.AL, bidi.AN:
			return true
		}
	}
	return false
}

func (c Config) validateLabel(label string, transitional, isBidiDomain bool, errs *Errors) {
	if label == "" {
		return
	}
	if c.checkHyphens && (label[0] == '-' || label[len(label)-1] == '-') {
		errs.add(errCheckHyphens)
	}
	if first, _ := utf8.DecodeRuneInString(label); unicode.Is(unicode.M, first) {
		errs.add(errStartCombiningMark)
	}
	for _, r := range label {
		ok := false
		switch lookupMapping(r).status {
		case statusValid:
			ok = true
		case statusDeviation:
			ok = !transitional
		case statusDisallowedStd3Valid:
			ok = !c.useSTD3ASCIIRules
		}
		if !ok {
			errs.add(errDisallowedCharacter)
		}
	}
	if !passesBidi(label, isBidiDomain) {
		errs.add(errCheckBidi)
	}
}

func bidiClass(r rune) bidi.Class {
	p, _ := bidi.LookupRune(r)
	return p.Class()
}

// passesBidi implements the RFC 5893 bidi rule as required by UTS #46 V8.
// Labels of a domain with no right-to-left text always pass.
func passesBidi(label string, isBidiDomain bool) bool {
	if !isBidiDomain || label == "" {
		return true
	}
	runes := []rune(label)
	switch bidiClass(runes[0]) {
	case bidi.L:
		for _, r := range runes[1:] {
			switch bidiClass(r) {
			case bidi.L, bidi.EN, bidi.ES, bidi.CS, bidi.ET, bidi.ON, bidi.BN, bidi.NSM:
			default:
				return false
			}
		}
		last := len(runes) - 1
		for last > 0 && bidiClass(runes[last]) == bidi.NSM {
			last--
		}
		switch bidiClass(runes[last]) {
		case bidi.L, bidi.EN:
			return true
		}
		return false
	case bidi.R, bidi.AL:
		sawEN, sawAN := false, false
		for _, r := range runes[1:] {
			switch bidiClass(r) {
			case bidi.EN:
				sawEN = true
			case bidi.AN:
				sawAN = true
			case bidi.R, bidi.AL, bidi.ES, bidi.CS, bidi.ET, bidi.ON, bidi.BN, bidi.NSM:
			default:
				return false
			}
		}
		if sawEN && sawAN {
			return false
		}
		last := len(runes) - 1
		for last > 0 && bidiClass(runes[last]) == bidi.NSM {
			last--
		}
		switch bidiClass(runes[last]) {
		case bidi.R, bidi.AL, bidi.AN, bidi.EN:
			return true
		}
		return false
	}
	return false
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// simpleASCII reports whether the domain is already in its fully processed
// form: lowercase ASCII letters, digits, hyphens, and dots, with no label
// carrying the "xn--" prefix. Such input maps to itself and every label is
// trivially valid, so processing can return it unchanged.
func simpleASCII(s string) bool {
	labelStart := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-':
		case c == '.':
			labelStart = i + 1
		default:
			return false
		}
		if i == labelStart+3 && s[labelStart:i+1] == acePrefix {
			return false
		}
	}
	return true
}
