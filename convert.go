package fixuint

import (
	"fmt"

	"github.com/holiman/uint256"
)

// U256From128 zero-extends a U128. It never fails.
func U256From128(in U128) U256 {
	hi, lo := in.Raw()
	return U256{lm: hi, lo: lo}
}

// IsU128 reports whether the upper 128 bits of u are all zero.
func (u U256) IsU128() bool { return u.hi == 0 && u.hm == 0 }

// U128 narrows u, returning ErrOverflow if any of its upper 16 bytes is set.
func (u U256) U128() (U128, error) {
	if !u.IsU128() {
		return U128{}, u.narrowError("u128")
	}
	return U128FromRaw(u.lm, u.lo), nil
}

// U256FromUint256 converts from a holiman/uint256 value, which always fits.
// v must not be nil.
func U256FromUint256(v *uint256.Int) U256 {
	return U256{hi: v[3], hm: v[2], lm: v[1], lo: v[0]}
}

// Uint256 returns a new holiman/uint256 value holding u.
func (u U256) Uint256() *uint256.Int {
	return &uint256.Int{u.lo, u.lm, u.hm, u.hi}
}

// Uint256 returns a new holiman/uint256 value holding u, zero-extended.
func (u U128) Uint256() *uint256.Int {
	return U256From128(u).Uint256()
}

// U128FromUint256 narrows a holiman/uint256 value. It fails with ErrOverflow
// when v needs more than 128 bits, and with ErrArgument when v is nil.
func U128FromUint256(v *uint256.Int) (U128, error) {
	if v == nil {
		return U128{}, fmt.Errorf("fixuint: u128 from nil uint256.Int: %w", ErrArgument)
	}
	return U256FromUint256(v).U128()
}
