package fixuint

type RandSource interface {
	Uint64() uint64
}

// RandU128 generates an unsigned 128-bit random integer from an external source.
func RandU128(source RandSource) (out U128) {
	return U128{hi: source.Uint64(), lo: source.Uint64()}
}

// RandU256 generates an unsigned 256-bit random integer from an external source.
func RandU256(source RandSource) (out U256) {
	return U256{hi: source.Uint64(), hm: source.Uint64(), lm: source.Uint64(), lo: source.Uint64()}
}

// DifferenceU128 subtracts the smaller of a and b from the larger. It can
// not fail.
func DifferenceU128(a, b U128) U128 {
	if a.LessThan(b) {
		a, b = b, a
	}
	d, _ := a.Sub(b)
	return d
}

func LargerU128(a, b U128) U128 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerU128(a, b U128) U128 {
	if b.LessThan(a) {
		return b
	}
	return a
}

// DifferenceU256 subtracts the smaller of a and b from the larger. It can
// not fail.
func DifferenceU256(a, b U256) U256 {
	if a.LessThan(b) {
		a, b = b, a
	}
	d, _ := a.Sub(b)
	return d
}

func LargerU256(a, b U256) U256 {
	if b.GreaterThan(a) {
		return b
	}
	return a
}

func SmallerU256(a, b U256) U256 {
	if b.LessThan(a) {
		return b
	}
	return a
}
