package bigint

// Lib is the long-lived context every operation goes through. It owns
// preallocated constants 0..16 of both value types, so inner loops can
// borrow small operands (a base, a digit, 0, 1) without allocating.
// A Lib must not be shared across goroutines without external
// synchronization; distinct contexts are fully independent.
type Lib struct {
	unsignedConsts [constantCount]*Unsigned
	signedConsts   [constantCount]*Signed
}

const constantCount = 17

// Start allocates a context and its constants, unsigned first since
// the signed constants are built on unsigned magnitudes.
func Start() (*Lib, error) {
	l := &Lib{}
	for i := range l.unsignedConsts {
		u, err := l.UnsignedCreate(uint64(i))
		if err != nil {
			return nil, err
		}
		l.unsignedConsts[i] = u
	}
	for i := range l.signedConsts {
		s, err := l.Create(int64(i))
		if err != nil {
			return nil, err
		}
		l.signedConsts[i] = s
	}
	return l, nil
}

// Finish invalidates the context. Values obtained from it, including
// the constants, must not be used afterwards.
func (l *Lib) Finish() error {
	if l == nil {
		return ErrBadArgument
	}
	for i := range l.unsignedConsts {
		l.unsignedConsts[i] = nil
	}
	for i := range l.signedConsts {
		l.signedConsts[i] = nil
	}
	return nil
}

// UnsignedConst borrows the context's unsigned constant for v in 0..16.
func (l *Lib) UnsignedConst(v int) (*Unsigned, error) {
	if l == nil || v < 0 || v >= constantCount || l.unsignedConsts[v] == nil {
		return nil, ErrBadArgument
	}
	return l.unsignedConsts[v], nil
}

// SignedConst borrows the context's signed constant for v in 0..16.
func (l *Lib) SignedConst(v int) (*Signed, error) {
	if l == nil || v < 0 || v >= constantCount || l.signedConsts[v] == nil {
		return nil, ErrBadArgument
	}
	return l.signedConsts[v], nil
}
