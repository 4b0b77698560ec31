// Package punycode implements the Bootstring encoding of Unicode code point
// sequences into ASCII labels, as described in RFC 3492.
//
// All internal arithmetic is 32-bit and overflow-checked. Overflow can only
// happen on inputs that take more than 63 encoded bytes, the DNS limit on
// domain name labels, and is reported as ErrOverflow rather than wrapping.
package punycode

import "errors"

// Bootstring parameters for Punycode.
const (
	base        = 36
	tMin        = 1
	tMax        = 26
	skew        = 38
	damp        = 700
	initialBias = 72
	initialN    = 0x80

	maxU32 = 1<<32 - 1
)

var (
	// ErrOverflow is returned when decoding or encoding would exceed
	// 32-bit arithmetic.
	ErrOverflow = errors.New("punycode: overflow")

	// ErrInvalid is returned for malformed input: a non-ASCII byte in the
	// basic portion, a byte that is not a digit in the extended portion,
	// a truncated variable-length integer, or a decoded value that is not
	// a Unicode code point.
	ErrInvalid = errors.New("punycode: invalid input")
)

// adapt is the bias adaptation function of RFC 3492 section 6.1.
func adapt(delta, numPoints uint32, firstTime bool) uint32 {
	if firstTime {
		delta /= damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints
	k := uint32(0)
	for delta > ((base-tMin)*tMax)/2 {
		delta /= base - tMin
		k += base
	}
	return k + ((base-tMin+1)*delta)/(delta+skew)
}

func digitValue(b byte) (uint32, bool) {
	switch {
	case b >= '0' && b <= '9':
		return uint32(b-'0') + 26, true
	case b >= 'A' && b <= 'Z':
		return uint32(b - 'A'), true
	case b >= 'a' && b <= 'z':
		return uint32(b - 'a'), true
	}
	return 0, false
}

func digitChar(value uint32) byte {
	if value < 26 {
		return byte(value) + 'a'
	}
	return byte(value) - 26 + '0'
}

// Decode converts a Punycode label (without any "xn--" prefix) to the code
// point sequence it represents.
func Decode(input string) ([]rune, error) {
	// The basic (ASCII) code points are copied verbatim from before the
	// last delimiter, if any.
	var basic, extended string
	if position := lastDelimiter(input); position > 0 {
		basic, extended = input[:position], input[position+1:]
	} else {
		basic, extended = "", input
	}
	for i := 0; i < len(basic); i++ {
		if basic[i] >= 0x80 {
			return nil, ErrInvalid
		}
	}

	output := make([]rune, 0, len(basic)+len(extended))
	for i := 0; i < len(basic); i++ {
		output = append(output, rune(basic[i]))
	}

	length := uint32(len(basic))
	codePoint := uint32(initialN)
	bias := uint32(initialBias)
	i := uint32(0)
	pos := 0
	for pos < len(extended) {
		previousI := i
		weight := uint32(1)
		k := uint32(base)
		// Decode a generalized variable-length integer into a delta,
		// which gets added to i.
		for {
			if pos == len(extended) {
				return nil, ErrInvalid
			}
			digit, ok := digitValue(extended[pos])
			pos++
			if !ok {
				return nil, ErrInvalid
			}
			if digit > (maxU32-i)/weight {
				return nil, ErrOverflow
			}
			i += digit * weight
			var t uint32
			switch {
			case k <= bias:
				t = tMin
			case k >= bias+tMax:
				t = tMax
			default:
				t = k - bias
			}
			if digit < t {
				break
			}
			if weight > maxU32/(base-t) {
				return nil, ErrOverflow
			}
			weight *= base - t
			k += base
		}

		bias = adapt(i-previousI, length+1, previousI == 0)
		if i/(length+1) > maxU32-codePoint {
			return nil, ErrOverflow
		}
		// i was supposed to wrap around from length+1 to 0,
		// incrementing codePoint each time.
		codePoint += i / (length + 1)
		i %= length + 1
		c := rune(codePoint)
		if !validRune(c) {
			return nil, ErrInvalid
		}
		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = c
		length++
		i++
	}
	return output, nil
}

// DecodeToString is like Decode but returns the result as a string.
func DecodeToString(input string) (string, error) {
	decoded, err := Decode(input)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}

// Encode converts a code point sequence to its Punycode label
// (without any "xn--" prefix).
func Encode(input []rune) (string, error) {
	if uint64(len(input)) > maxU32 {
		return "", ErrOverflow
	}
	for _, c := range input {
		if !validRune(c) {
			return "", ErrInvalid
		}
	}
	output := make([]byte, 0, len(input))

	// Basic (ASCII) code points are emitted as-is.
	inputLength := uint32(len(input))
	basicLength := uint32(0)
	for _, c := range input {
		if c < 0x80 {
			output = append(output, byte(c))
			basicLength++
		}
	}
	if basicLength > 0 {
		output = append(output, '-')
	}

	codePoint := uint32(initialN)
	delta := uint32(0)
	bias := uint32(initialBias)
	processed := basicLength
	for processed < inputLength {
		// All code points below codePoint have been handled already;
		// find the next larger one.
		minCodePoint := uint32(maxU32)
		for _, c := range input {
			if uint32(c) >= codePoint && uint32(c) < minCodePoint {
				minCodePoint = uint32(c)
			}
		}
		if minCodePoint-codePoint > (maxU32-delta)/(processed+1) {
			return "", ErrOverflow
		}
		// Advance the decoder's <codePoint, i> state to <minCodePoint, 0>.
		delta += (minCodePoint - codePoint) * (processed + 1)
		codePoint = minCodePoint
		for _, c := range input {
			if uint32(c) < codePoint {
				delta++
				if delta == 0 {
					return "", ErrOverflow
				}
			}
			if uint32(c) == codePoint {
				// Represent delta as a generalized variable-length integer.
				q := delta
				k := uint32(base)
				for {
					var t uint32
					switch {
					case k <= bias:
						t = tMin
					case k >= bias+tMax:
						t = tMax
					default:
						t = k - bias
					}
					if q < t {
						break
					}
					output = append(output, digitChar(t+(q-t)%(base-t)))
					q = (q - t) / (base - t)
					k += base
				}
				output = append(output, digitChar(q))
				bias = adapt(delta, processed+1, processed == basicLength)
				delta = 0
				processed++
			}
		}
		delta++
		codePoint++
	}
	return string(output), nil
}

// EncodeString is like Encode for a UTF-8 string input.
func EncodeString(input string) (string, error) {
	return Encode([]rune(input))
}

func lastDelimiter(s string) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '-' {
			return i
		}
	}
	return -1
}

func validRune(r rune) bool {
	return r >= 0 && r <= 0x10FFFF && (r < 0xD800 || r > 0xDFFF)
}
