package bigint

import (
	"fmt"
	"math"
)

// Signed is an arbitrary-precision integer held as a sign and an
// unsigned magnitude. Zero is never negative.
type Signed struct {
	negative  bool
	magnitude *Unsigned
}

// newSigned wraps a magnitude in a Signed, clearing the sign on zero.
func newSigned(negative bool, magnitude *Unsigned) *Signed {
	if magnitude.limbs.isZero() {
		negative = false
	}
	return &Signed{negative: negative, magnitude: magnitude}
}

// Create builds a Signed from a host integer.
func (l *Lib) Create(value int64) (*Signed, error) {
	if l == nil {
		return nil, ErrBadArgument
	}
	negative := value < 0
	mag := uint64(value)
	if negative {
		mag = -mag
	}
	magnitude, err := l.UnsignedCreate(mag)
	if err != nil {
		return nil, err
	}
	return newSigned(negative, magnitude), nil
}

// ToInt64 narrows x to a host integer. It fails with ErrArithmetic
// when x is outside [math.MinInt64, math.MaxInt64].
func (l *Lib) ToInt64(x *Signed) (int64, error) {
	if l == nil || x == nil {
		return 0, ErrBadArgument
	}
	m, err := l.UnsignedToUint64(x.magnitude)
	if err != nil {
		return 0, err
	}
	if x.negative {
		if m > 1<<63 {
			return 0, fmt.Errorf("%w: value does not fit in int64", ErrArithmetic)
		}
		return int64(-m), nil
	}
	if m > math.MaxInt64 {
		return 0, fmt.Errorf("%w: value does not fit in int64", ErrArithmetic)
	}
	return int64(m), nil
}

// Copy returns an independent copy of x.
func (l *Lib) Copy(x *Signed) (*Signed, error) {
	if l == nil || x == nil {
		return nil, ErrBadArgument
	}
	magnitude, err := l.UnsignedCopy(x.magnitude)
	if err != nil {
		return nil, err
	}
	return newSigned(x.negative, magnitude), nil
}

// IsZero reports whether x is zero.
func (l *Lib) IsZero(x *Signed) (bool, error) {
	if l == nil || x == nil {
		return false, ErrBadArgument
	}
	return x.magnitude.limbs.isZero(), nil
}

// Add returns x + y. Equal signs add magnitudes; opposite signs
// subtract the smaller magnitude from the larger, which decides the
// sign.
func (l *Lib) Add(x, y *Signed) (*Signed, error) {
	if l == nil || x == nil || y == nil {
		return nil, ErrBadArgument
	}
	if x.negative == y.negative {
		magnitude, err := l.UnsignedAdd(x.magnitude, y.magnitude)
		if err != nil {
			return nil, err
		}
		return newSigned(x.negative, magnitude), nil
	}
	negative := x.negative
	if x.magnitude.limbs.cmp(y.magnitude.limbs) < 0 {
		x, y = y, x
		negative = !negative
	}
	magnitude, err := l.UnsignedSub(x.magnitude, y.magnitude)
	if err != nil {
		return nil, err
	}
	return newSigned(negative, magnitude), nil
}

// Sub returns x - y. The subtrahend is viewed with its sign flipped;
// the operand itself is not touched.
func (l *Lib) Sub(x, y *Signed) (*Signed, error) {
	if l == nil || x == nil || y == nil {
		return nil, ErrBadArgument
	}
	negated := &Signed{negative: !y.negative, magnitude: y.magnitude}
	return l.Add(x, negated)
}

// Mul returns x · y.
func (l *Lib) Mul(x, y *Signed) (*Signed, error) {
	if l == nil || x == nil || y == nil {
		return nil, ErrBadArgument
	}
	magnitude, err := l.UnsignedMul(x.magnitude, y.magnitude)
	if err != nil {
		return nil, err
	}
	return newSigned(x.negative != y.negative, magnitude), nil
}

// DivModTrunc returns the quotient and remainder of division truncated
// toward zero: the quotient sign is the XOR of the operand signs, the
// remainder takes the dividend's sign.
func (l *Lib) DivModTrunc(x, y *Signed) (*Signed, *Signed, error) {
	if l == nil || x == nil || y == nil {
		return nil, nil, ErrBadArgument
	}
	qm, rm, err := l.UnsignedDivMod(x.magnitude, y.magnitude)
	if err != nil {
		return nil, nil, err
	}
	return newSigned(x.negative != y.negative, qm), newSigned(x.negative, rm), nil
}

// DivTrunc returns the quotient of truncated division.
func (l *Lib) DivTrunc(x, y *Signed) (*Signed, error) {
	q, _, err := l.DivModTrunc(x, y)
	return q, err
}

// ModTrunc returns the remainder of truncated division.
func (l *Lib) ModTrunc(x, y *Signed) (*Signed, error) {
	_, r, err := l.DivModTrunc(x, y)
	return r, err
}

// DivFloor returns the quotient of division rounded toward negative
// infinity: the truncated quotient, minus one when it is negative and
// the division was inexact.
func (l *Lib) DivFloor(x, y *Signed) (*Signed, error) {
	if l == nil || x == nil || y == nil {
		return nil, ErrBadArgument
	}
	qm, rm, err := l.UnsignedDivMod(x.magnitude, y.magnitude)
	if err != nil {
		return nil, err
	}
	negative := x.negative != y.negative
	q := newSigned(negative, qm)
	if negative && !rm.limbs.isZero() {
		return l.Sub(q, l.signedConsts[1])
	}
	return q, nil
}

// ModFloor returns x - y·(x div y), the remainder of floored division.
// It follows the divisor's sign.
func (l *Lib) ModFloor(x, y *Signed) (*Signed, error) {
	if l == nil || x == nil || y == nil {
		return nil, ErrBadArgument
	}
	q, err := l.DivFloor(x, y)
	if err != nil {
		return nil, err
	}
	if err := l.MulReplace(&q, y); err != nil {
		return nil, err
	}
	if err := l.RSubReplace(&q, x); err != nil {
		return nil, err
	}
	return q, nil
}

// DivModFloor returns the quotient and remainder of floored division.
func (l *Lib) DivModFloor(x, y *Signed) (*Signed, *Signed, error) {
	q, err := l.DivFloor(x, y)
	if err != nil {
		return nil, nil, err
	}
	r, err := l.ModFloor(x, y)
	if err != nil {
		return nil, nil, err
	}
	return q, r, nil
}

// Compare returns -1, 0 or +1 as x is less than, equal to or greater
// than y. A negative value is smaller than any non-negative one; two
// negative values compare with the magnitude order reversed.
func (l *Lib) Compare(x, y *Signed) (int, error) {
	if l == nil || x == nil || y == nil {
		return 0, ErrBadArgument
	}
	switch {
	case x.negative && !y.negative:
		return -1, nil
	case !x.negative && y.negative:
		return 1, nil
	case x.negative:
		return y.magnitude.limbs.cmp(x.magnitude.limbs), nil
	}
	return x.magnitude.limbs.cmp(y.magnitude.limbs), nil
}

// Less reports x < y.
func (l *Lib) Less(x, y *Signed) (bool, error) {
	order, err := l.Compare(x, y)
	if err != nil {
		return false, err
	}
	return order < 0, nil
}

// LessOrEqual reports x <= y.
func (l *Lib) LessOrEqual(x, y *Signed) (bool, error) {
	order, err := l.Compare(x, y)
	if err != nil {
		return false, err
	}
	return order <= 0, nil
}

// AddReplace replaces the value in slot x with *x + y. On failure the
// slot keeps its previous value.
func (l *Lib) AddReplace(x **Signed, y *Signed) error {
	if x == nil {
		return ErrBadArgument
	}
	z, err := l.Add(*x, y)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// SubReplace replaces the value in slot x with *x - y.
func (l *Lib) SubReplace(x **Signed, y *Signed) error {
	if x == nil {
		return ErrBadArgument
	}
	z, err := l.Sub(*x, y)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// RSubReplace replaces the value in slot x with y - *x.
func (l *Lib) RSubReplace(x **Signed, y *Signed) error {
	if x == nil {
		return ErrBadArgument
	}
	z, err := l.Sub(y, *x)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// MulReplace replaces the value in slot x with *x · y.
func (l *Lib) MulReplace(x **Signed, y *Signed) error {
	if x == nil {
		return ErrBadArgument
	}
	z, err := l.Mul(*x, y)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// DivReplace replaces the value in slot x with the truncated quotient
// *x / y.
func (l *Lib) DivReplace(x **Signed, y *Signed) error {
	if x == nil {
		return ErrBadArgument
	}
	z, err := l.DivTrunc(*x, y)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// RDivReplace replaces the value in slot x with the truncated quotient
// y / *x.
func (l *Lib) RDivReplace(x **Signed, y *Signed) error {
	if x == nil {
		return ErrBadArgument
	}
	z, err := l.DivTrunc(y, *x)
	if err != nil {
		return err
	}
	*x = z
	return nil
}
