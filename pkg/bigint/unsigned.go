package bigint

import "fmt"

// Unsigned is an arbitrary-precision non-negative integer. Values are
// immutable; operations on a Lib allocate fresh results.
type Unsigned struct {
	limbs limbs
}

// UnsignedCreate builds an Unsigned from a host integer.
func (l *Lib) UnsignedCreate(value uint64) (*Unsigned, error) {
	if l == nil {
		return nil, ErrBadArgument
	}
	return &Unsigned{limbs: fromUint64(value)}, nil
}

// UnsignedToUint64 narrows x to a host integer. It fails with
// ErrArithmetic when x needs more than 64 bits.
func (l *Lib) UnsignedToUint64(x *Unsigned) (uint64, error) {
	if l == nil || x == nil {
		return 0, ErrBadArgument
	}
	if x.limbs.isZero() {
		return 0, nil
	}
	if x.limbs.msb() >= 64 {
		return 0, fmt.Errorf("%w: value does not fit in uint64", ErrArithmetic)
	}
	return x.limbs.toUint64(), nil
}

// UnsignedCopy returns an independent copy of x.
func (l *Lib) UnsignedCopy(x *Unsigned) (*Unsigned, error) {
	if l == nil || x == nil {
		return nil, ErrBadArgument
	}
	return &Unsigned{limbs: x.limbs.clone()}, nil
}

// UnsignedIsZero reports whether x is zero.
func (l *Lib) UnsignedIsZero(x *Unsigned) (bool, error) {
	if l == nil || x == nil {
		return false, ErrBadArgument
	}
	return x.limbs.isZero(), nil
}

// UnsignedCompare returns -1, 0 or +1 as x is less than, equal to or
// greater than y.
func (l *Lib) UnsignedCompare(x, y *Unsigned) (int, error) {
	if l == nil || x == nil || y == nil {
		return 0, ErrBadArgument
	}
	return x.limbs.cmp(y.limbs), nil
}

// UnsignedLess reports x < y.
func (l *Lib) UnsignedLess(x, y *Unsigned) (bool, error) {
	order, err := l.UnsignedCompare(x, y)
	if err != nil {
		return false, err
	}
	return order < 0, nil
}

// UnsignedLessOrEqual reports x <= y.
func (l *Lib) UnsignedLessOrEqual(x, y *Unsigned) (bool, error) {
	order, err := l.UnsignedCompare(x, y)
	if err != nil {
		return false, err
	}
	return order <= 0, nil
}

// UnsignedMostSignificantBit returns the position of the highest set
// bit of x, counted from 0. It fails with ErrArithmetic when x is zero.
func (l *Lib) UnsignedMostSignificantBit(x *Unsigned) (int, error) {
	if l == nil || x == nil {
		return 0, ErrBadArgument
	}
	if x.limbs.isZero() {
		return 0, fmt.Errorf("%w: most significant bit of zero", ErrArithmetic)
	}
	return x.limbs.msb(), nil
}

// UnsignedAdd returns x + y.
func (l *Lib) UnsignedAdd(x, y *Unsigned) (*Unsigned, error) {
	if l == nil || x == nil || y == nil {
		return nil, ErrBadArgument
	}
	return &Unsigned{limbs: x.limbs.add(y.limbs)}, nil
}

// UnsignedSub returns x - y. It fails with ErrArithmetic when x < y.
func (l *Lib) UnsignedSub(x, y *Unsigned) (*Unsigned, error) {
	if l == nil || x == nil || y == nil {
		return nil, ErrBadArgument
	}
	if x.limbs.cmp(y.limbs) < 0 {
		return nil, fmt.Errorf("%w: subtrahend exceeds minuend", ErrArithmetic)
	}
	return &Unsigned{limbs: x.limbs.sub(y.limbs)}, nil
}

// UnsignedWordShift shifts x by whole words: offset >= 0 prepends zero
// words, offset < 0 drops the lowest words. A fully shifted-out value
// is zero.
func (l *Lib) UnsignedWordShift(x *Unsigned, offset int) (*Unsigned, error) {
	if l == nil || x == nil {
		return nil, ErrBadArgument
	}
	return &Unsigned{limbs: x.limbs.wordShift(offset).norm()}, nil
}

// UnsignedBitShift returns x·2^offset for offset >= 0 and x/2^(-offset)
// rounded down for offset < 0.
func (l *Lib) UnsignedBitShift(x *Unsigned, offset int) (*Unsigned, error) {
	if l == nil || x == nil {
		return nil, ErrBadArgument
	}
	return &Unsigned{limbs: x.limbs.bitShift(offset)}, nil
}

// UnsignedMul returns x · y.
func (l *Lib) UnsignedMul(x, y *Unsigned) (*Unsigned, error) {
	if l == nil || x == nil || y == nil {
		return nil, ErrBadArgument
	}
	return &Unsigned{limbs: x.limbs.mul(y.limbs)}, nil
}

// UnsignedDivMod returns the quotient and remainder of x / y. It fails
// with ErrArithmetic when y is zero.
func (l *Lib) UnsignedDivMod(x, y *Unsigned) (*Unsigned, *Unsigned, error) {
	if l == nil || x == nil || y == nil {
		return nil, nil, ErrBadArgument
	}
	if y.limbs.isZero() {
		return nil, nil, fmt.Errorf("%w: division by zero", ErrArithmetic)
	}
	q, r := x.limbs.divmod(y.limbs)
	return &Unsigned{limbs: q}, &Unsigned{limbs: r}, nil
}

// UnsignedDiv returns the quotient of x / y.
func (l *Lib) UnsignedDiv(x, y *Unsigned) (*Unsigned, error) {
	q, _, err := l.UnsignedDivMod(x, y)
	return q, err
}

// UnsignedMod returns the remainder of x / y.
func (l *Lib) UnsignedMod(x, y *Unsigned) (*Unsigned, error) {
	_, r, err := l.UnsignedDivMod(x, y)
	return r, err
}

// UnsignedPow returns x^power by binary exponentiation. x^0 is 1,
// including 0^0.
func (l *Lib) UnsignedPow(x *Unsigned, power uint64) (*Unsigned, error) {
	if l == nil || x == nil {
		return nil, ErrBadArgument
	}
	result := limbs{1}
	base := x.limbs
	for power > 0 {
		if power&1 != 0 {
			result = result.mul(base)
		}
		base = base.mul(base)
		power >>= 1
	}
	return &Unsigned{limbs: result}, nil
}

// UnsignedAddReplace replaces the value in slot x with *x + y. On
// failure the slot keeps its previous value.
func (l *Lib) UnsignedAddReplace(x **Unsigned, y *Unsigned) error {
	if x == nil {
		return ErrBadArgument
	}
	z, err := l.UnsignedAdd(*x, y)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// UnsignedSubReplace replaces the value in slot x with *x - y.
func (l *Lib) UnsignedSubReplace(x **Unsigned, y *Unsigned) error {
	if x == nil {
		return ErrBadArgument
	}
	z, err := l.UnsignedSub(*x, y)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// UnsignedRSubReplace replaces the value in slot x with y - *x.
func (l *Lib) UnsignedRSubReplace(x **Unsigned, y *Unsigned) error {
	if x == nil {
		return ErrBadArgument
	}
	z, err := l.UnsignedSub(y, *x)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// UnsignedBitShiftReplace replaces the value in slot x with the shifted
// value.
func (l *Lib) UnsignedBitShiftReplace(x **Unsigned, offset int) error {
	if x == nil {
		return ErrBadArgument
	}
	z, err := l.UnsignedBitShift(*x, offset)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// UnsignedMulReplace replaces the value in slot x with *x · y.
func (l *Lib) UnsignedMulReplace(x **Unsigned, y *Unsigned) error {
	if x == nil {
		return ErrBadArgument
	}
	z, err := l.UnsignedMul(*x, y)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// UnsignedDivReplace replaces the value in slot x with *x / y.
func (l *Lib) UnsignedDivReplace(x **Unsigned, y *Unsigned) error {
	if x == nil {
		return ErrBadArgument
	}
	z, err := l.UnsignedDiv(*x, y)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// UnsignedRDivReplace replaces the value in slot x with y / *x.
func (l *Lib) UnsignedRDivReplace(x **Unsigned, y *Unsigned) error {
	if x == nil {
		return ErrBadArgument
	}
	z, err := l.UnsignedDiv(y, *x)
	if err != nil {
		return err
	}
	*x = z
	return nil
}

// UnsignedPowReplace replaces the value in slot x with *x^power.
func (l *Lib) UnsignedPowReplace(x **Unsigned, power uint64) error {
	if x == nil {
		return ErrBadArgument
	}
	z, err := l.UnsignedPow(*x, power)
	if err != nil {
		return err
	}
	*x = z
	return nil
}
