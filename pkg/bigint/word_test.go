package bigint

import (
	"math/rand"
	"testing"
)

func TestNorm(t *testing.T) {
	tests := []struct {
		in   limbs
		want int
	}{
		{limbs{0}, 1},
		{limbs{5}, 1},
		{limbs{0, 0, 0}, 1},
		{limbs{1, 0, 0}, 1},
		{limbs{0, 1, 0}, 2},
		{limbs{1, 2, 3}, 3},
	}
	for _, tc := range tests {
		got := tc.in.norm()
		if len(got) != tc.want {
			t.Errorf("norm(%v): got length %d, want %d", tc.in, len(got), tc.want)
		}
		if len(got) > 1 && got[len(got)-1] == 0 {
			t.Errorf("norm(%v): leading zero survived", tc.in)
		}
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 2, 3},
		{-7, 2, -4},
		{7, -2, -4},
		{-7, -2, 3},
		{6, 3, 2},
		{-6, 3, -2},
		{0, 5, 0},
		{-1, 32, -1},
		{-32, 32, -1},
		{-33, 32, -2},
		{31, 32, 0},
	}
	for _, tc := range tests {
		if got := floorDiv(tc.a, tc.b); got != tc.want {
			t.Errorf("floorDiv(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestLimbAddCarryChain(t *testing.T) {
	x := limbs{0xFFFFFFFF, 0xFFFFFFFF}
	got := x.add(limbs{1})
	want := limbs{0, 0, 1}
	if got.cmp(want) != 0 {
		t.Errorf("add carry chain: got %v, want %v", got, want)
	}
}

func TestLimbSubBorrowChain(t *testing.T) {
	x := limbs{0, 0, 1}
	got := x.sub(limbs{1})
	want := limbs{0xFFFFFFFF, 0xFFFFFFFF}
	if got.cmp(want) != 0 {
		t.Errorf("sub borrow chain: got %v, want %v", got, want)
	}
	zero := limbs{7, 3}.sub(limbs{7, 3})
	if !zero.isZero() || len(zero) != 1 {
		t.Errorf("subtract to zero: got %v, want canonical zero", zero)
	}
}

func TestLimbMulCrossWord(t *testing.T) {
	// (2^32 - 1)^2 = 2^64 - 2^33 + 1
	x := limbs{0xFFFFFFFF}
	got := x.mul(x)
	want := limbs{1, 0xFFFFFFFE}
	if got.cmp(want) != 0 {
		t.Errorf("(2^32-1)^2: got %v, want %v", got, want)
	}
	zero := limbs{0}
	if !zero.mul(limbs{5, 6}).isZero() {
		t.Error("0 * x should be zero")
	}
}

func TestBitShiftCrossWord(t *testing.T) {
	// 2^32 + 1 >> 1 = 2^31
	got := limbs{1, 1}.bitShift(-1)
	if got.cmp(limbs{0x80000000}) != 0 {
		t.Errorf("(2^32+1) >> 1: got %v, want [0x80000000]", got)
	}
	// 2^31 << 1 = 2^32
	got = limbs{0x80000000}.bitShift(1)
	if got.cmp(limbs{0, 1}) != 0 {
		t.Errorf("2^31 << 1: got %v, want [0, 1]", got)
	}
	// full shift out
	got = limbs{0xDEADBEEF}.bitShift(-32)
	if !got.isZero() {
		t.Errorf("full shift out: got %v, want zero", got)
	}
	// shift by zero is a copy
	x := limbs{3, 4}
	got = x.bitShift(0)
	if got.cmp(x) != 0 {
		t.Errorf("shift by 0: got %v, want %v", got, x)
	}
	got[0] = 99
	if x[0] != 3 {
		t.Error("shift by 0 shares storage with its input")
	}
}

func TestLimbDivmodAgainstHost(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 2000; i++ {
		a := r.Uint64()
		b := r.Uint64()>>uint(1+r.Intn(63)) + 1
		q, rem := fromUint64(a).divmod(fromUint64(b))
		if got := q.toUint64(); got != a/b {
			t.Fatalf("%d / %d: got %d, want %d", a, b, got, a/b)
		}
		if got := rem.toUint64(); got != a%b {
			t.Fatalf("%d %% %d: got %d, want %d", a, b, got, a%b)
		}
	}
}

func TestWordShift(t *testing.T) {
	x := limbs{1, 2}
	got := x.wordShift(2).norm()
	if got.cmp(limbs{0, 0, 1, 2}) != 0 {
		t.Errorf("word shift by 2: got %v", got)
	}
	got = x.wordShift(-1).norm()
	if got.cmp(limbs{2}) != 0 {
		t.Errorf("word shift by -1: got %v", got)
	}
	got = x.wordShift(-5)
	if !got.isZero() {
		t.Errorf("fully shifted out word shift: got %v, want zero", got)
	}
}
