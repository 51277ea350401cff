package fixuint

import (
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/shabbyrobe/golib/assert"
)

// TestUint256Differential checks U256 against holiman/uint256, whose
// overflow-reporting variants give an independent view of the same bounds.
func TestUint256Differential(t *testing.T) {
	tt := assert.WrapTB(t)

	for i := 0; i < fuzzIterations; i++ {
		a := accU256FromBigInt(randomBigU256(globalRNG))
		b := accU256FromBigInt(randomBigU256(globalRNG))
		ha, hb := a.Uint256(), b.Uint256()

		sum, err := a.Add(b)
		hsum, overflow := new(uint256.Int).AddOverflow(ha, hb)
		if overflow {
			tt.MustAssert(errors.Is(err, ErrOverflow), "%s + %s: expected overflow, found %v", a, b, err)
		} else {
			tt.MustOK(err)
			tt.MustEqual(U256FromUint256(hsum), sum)
		}

		diff, err := a.Sub(b)
		hdiff, underflow := new(uint256.Int).SubOverflow(ha, hb)
		if underflow {
			tt.MustAssert(errors.Is(err, ErrOverflow), "%s - %s: expected overflow, found %v", a, b, err)
		} else {
			tt.MustOK(err)
			tt.MustEqual(U256FromUint256(hdiff), diff)
		}

		prod, err := a.Mul(b)
		hprod, overflow := new(uint256.Int).MulOverflow(ha, hb)
		if overflow {
			tt.MustAssert(errors.Is(err, ErrOverflow), "%s * %s: expected overflow, found %v", a, b, err)
		} else {
			tt.MustOK(err)
			tt.MustEqual(U256FromUint256(hprod), prod)
		}

		// uint256 quietly returns 0 for a zero divisor, so those are skipped
		// here and left to TestU256DivideByZero.
		if !b.IsZero() {
			q, r, err := a.QuoRem(b)
			tt.MustOK(err)
			tt.MustEqual(U256FromUint256(new(uint256.Int).Div(ha, hb)), q)
			tt.MustEqual(U256FromUint256(new(uint256.Int).Mod(ha, hb)), r)
		}

		tt.MustEqual(ha.Cmp(hb), a.Cmp(b))
		tt.MustEqual(ha.BitLen(), a.BitLen())
		tt.MustEqual(U256FromUint256(new(uint256.Int).And(ha, hb)), a.And(b))
		tt.MustEqual(U256FromUint256(new(uint256.Int).Or(ha, hb)), a.Or(b))
		tt.MustEqual(U256FromUint256(new(uint256.Int).Xor(ha, hb)), a.Xor(b))
		tt.MustEqual(U256FromUint256(new(uint256.Int).Not(ha)), a.Not())

		n := uint(globalRNG.Intn(256))
		tt.MustEqual(U256FromUint256(new(uint256.Int).Rsh(ha, n)), a.Rsh(n))

		hb32 := ha.Bytes32()
		tt.MustEqual(hb32[:], a.Bytes(false))
	}
}
