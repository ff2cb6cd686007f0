package bigint

import (
	"fmt"

	"github.com/NolanDeveloper/libint/pkg/stream"
)

const digitAlphabet = "0123456789ABCDEF"

// expansionFactor[b-2] = ceil(32·log(2)/log(b)): the worst-case number
// of base-b digits one 32-bit word contributes, used to size format
// buffers up front.
var expansionFactor = [15]int{32, 21, 16, 14, 13, 12, 11, 11, 10, 10, 9, 9, 9, 9, 8}

// digitValue maps '0'-'9', 'a'-'f', 'A'-'F' to their values.
func digitValue(c byte) (int, bool) {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0'), true
	case 'a' <= c && c <= 'f':
		return 10 + int(c-'a'), true
	case 'A' <= c && c <= 'F':
		return 10 + int(c-'A'), true
	}
	return 0, false
}

func parseDigit(c byte, base int) (int, bool) {
	d, ok := digitValue(c)
	if !ok || d >= base {
		return 0, false
	}
	return d, true
}

// isSpace reports the POSIX whitespace class.
func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// skipWhitespace advances src past whitespace and peeks the byte that
// follows it.
func skipWhitespace(src *stream.Stream) (byte, bool, error) {
	ch, eof, err := src.Lookahead()
	for err == nil && !eof && isSpace(ch) {
		ch, eof, err = src.SkipChar()
	}
	return ch, eof, err
}

// UnsignedFromStream parses an unsigned value in the given base from
// src, consuming digits until the first non-digit. Zero digits yield
// zero; strict callers compare the stream position against the start.
func (l *Lib) UnsignedFromStream(src *stream.Stream, base int) (*Unsigned, error) {
	if l == nil || src == nil {
		return nil, ErrBadArgument
	}
	if base < 2 || base > 16 {
		return nil, fmt.Errorf("%w: base %d out of range 2..16", ErrBadArgument, base)
	}
	result, err := l.UnsignedCreate(0)
	if err != nil {
		return nil, err
	}
	baseConst := l.unsignedConsts[base]
	ch, eof, err := src.Lookahead()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	for !eof {
		d, ok := parseDigit(ch, base)
		if !ok {
			break
		}
		if err := l.UnsignedMulReplace(&result, baseConst); err != nil {
			return nil, err
		}
		if err := l.UnsignedAddReplace(&result, l.unsignedConsts[d]); err != nil {
			return nil, err
		}
		ch, eof, err = src.SkipChar()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	return result, nil
}

// FromStream parses a signed value in the given base from src: optional
// whitespace, an optional '+' or '-', then digits.
func (l *Lib) FromStream(src *stream.Stream, base int) (*Signed, error) {
	if l == nil || src == nil {
		return nil, ErrBadArgument
	}
	if base < 2 || base > 16 {
		return nil, fmt.Errorf("%w: base %d out of range 2..16", ErrBadArgument, base)
	}
	ch, eof, err := skipWhitespace(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	negative := false
	if !eof && (ch == '-' || ch == '+') {
		negative = ch == '-'
		if _, _, err := src.SkipChar(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	magnitude, err := l.UnsignedFromStream(src, base)
	if err != nil {
		return nil, err
	}
	return newSigned(negative, magnitude), nil
}

// UnsignedFromString parses an unsigned value from input. It returns
// the value and the index of the first unconsumed byte.
func (l *Lib) UnsignedFromString(input string, base int) (*Unsigned, int, error) {
	if l == nil {
		return nil, 0, ErrBadArgument
	}
	src := stream.NewFromBuffer([]byte(input))
	x, err := l.UnsignedFromStream(src, base)
	if err != nil {
		return nil, src.Pos(), err
	}
	return x, src.Pos(), nil
}

// FromString parses a signed value from input. It returns the value and
// the index of the first unconsumed byte. A digit-free input parses to
// zero; strict callers check the returned index.
func (l *Lib) FromString(input string, base int) (*Signed, int, error) {
	if l == nil {
		return nil, 0, ErrBadArgument
	}
	src := stream.NewFromBuffer([]byte(input))
	x, err := l.FromStream(src, base)
	if err != nil {
		return nil, src.Pos(), err
	}
	return x, src.Pos(), nil
}

// UnsignedToString formats x in the given base using digits 0-9, A-F.
func (l *Lib) UnsignedToString(x *Unsigned, base int) (string, error) {
	if l == nil || x == nil {
		return "", ErrBadArgument
	}
	return l.formatMagnitude(false, x, base)
}

// ToString formats x in the given base. Negative values get a leading
// '-'; zero formats as "0" with no sign.
func (l *Lib) ToString(x *Signed, base int) (string, error) {
	if l == nil || x == nil {
		return "", ErrBadArgument
	}
	return l.formatMagnitude(x.negative, x.magnitude, base)
}

// formatMagnitude repeatedly divides by the base, collecting remainder
// digits least significant first, then reverses the buffer.
func (l *Lib) formatMagnitude(negative bool, x *Unsigned, base int) (string, error) {
	if base < 2 || base > 16 {
		return "", fmt.Errorf("%w: base %d out of range 2..16", ErrBadArgument, base)
	}
	size := len(x.limbs) * expansionFactor[base-2]
	if negative {
		size++
	}
	buf := make([]byte, 0, size)
	dividend, err := l.UnsignedCopy(x)
	if err != nil {
		return "", err
	}
	baseConst := l.unsignedConsts[base]
	for {
		quotient, remainder, err := l.UnsignedDivMod(dividend, baseConst)
		if err != nil {
			return "", err
		}
		buf = append(buf, digitAlphabet[remainder.limbs[0]])
		dividend = quotient
		if dividend.limbs.isZero() {
			break
		}
	}
	if negative {
		buf = append(buf, '-')
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}
