package bigint

import (
	"errors"
	"testing"
)

func newTestLib(t *testing.T) *Lib {
	t.Helper()
	l, err := Start()
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	return l
}

func TestStartConstants(t *testing.T) {
	l := newTestLib(t)
	for i := 0; i <= 16; i++ {
		u, err := l.UnsignedConst(i)
		if err != nil {
			t.Fatalf("UnsignedConst(%d): %v", i, err)
		}
		v, err := l.UnsignedToUint64(u)
		if err != nil {
			t.Fatalf("UnsignedToUint64(const %d): %v", i, err)
		}
		if v != uint64(i) {
			t.Errorf("unsigned constant %d holds %d", i, v)
		}
		s, err := l.SignedConst(i)
		if err != nil {
			t.Fatalf("SignedConst(%d): %v", i, err)
		}
		w, err := l.ToInt64(s)
		if err != nil {
			t.Fatalf("ToInt64(const %d): %v", i, err)
		}
		if w != int64(i) {
			t.Errorf("signed constant %d holds %d", i, w)
		}
	}
}

func TestConstOutOfRange(t *testing.T) {
	l := newTestLib(t)
	for _, v := range []int{-1, 17, 100} {
		if _, err := l.UnsignedConst(v); !errors.Is(err, ErrBadArgument) {
			t.Errorf("UnsignedConst(%d): got %v, want ErrBadArgument", v, err)
		}
		if _, err := l.SignedConst(v); !errors.Is(err, ErrBadArgument) {
			t.Errorf("SignedConst(%d): got %v, want ErrBadArgument", v, err)
		}
	}
}

func TestFinish(t *testing.T) {
	l := newTestLib(t)
	if err := l.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if _, err := l.UnsignedConst(0); !errors.Is(err, ErrBadArgument) {
		t.Errorf("UnsignedConst after Finish: got %v, want ErrBadArgument", err)
	}
	if _, err := l.SignedConst(0); !errors.Is(err, ErrBadArgument) {
		t.Errorf("SignedConst after Finish: got %v, want ErrBadArgument", err)
	}
}

func TestIndependentContexts(t *testing.T) {
	l1 := newTestLib(t)
	l2 := newTestLib(t)
	if err := l1.Finish(); err != nil {
		t.Fatalf("Finish: %v", err)
	}
	// The second context is unaffected.
	x, err := l2.Create(40)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	two, err := l2.SignedConst(2)
	if err != nil {
		t.Fatalf("SignedConst: %v", err)
	}
	z, err := l2.Add(x, two)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	v, err := l2.ToInt64(z)
	if err != nil {
		t.Fatalf("ToInt64: %v", err)
	}
	if v != 42 {
		t.Errorf("got %d, want 42", v)
	}
}
