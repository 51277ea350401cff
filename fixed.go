package fixuint

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// width fixes the byte size of an engine instantiation. Sizes must be a
// multiple of 4 so that every value splits evenly into uint32 lanes.
type width interface {
	size() int
	name() string
}

type width128 struct{}

func (width128) size() int    { return 16 }
func (width128) name() string { return "u128" }

type width256 struct{}

func (width256) size() int    { return 32 }
func (width256) name() string { return "u256" }

func sizeOf[W width]() int {
	var w W
	return w.size()
}

func nameOf[W width]() string {
	var w W
	return w.name()
}

// fixed is a non-negative magnitude that fits in the width described by W.
// A fixed is never modified once built: all arithmetic returns a fresh raw
// *big.Int, which must go back through newFixed before it becomes a value
// again. The zero value is zero.
type fixed[W width] struct {
	mag *big.Int
}

// newFixed takes ownership of raw. This is the single place where both the
// non-negative and the width bound are enforced.
func newFixed[W width](raw *big.Int) (fixed[W], error) {
	if raw.Sign() < 0 {
		return fixed[W]{}, fmt.Errorf("fixuint: %s value %d is negative: %w", nameOf[W](), raw, ErrOverflow)
	}
	if bits := sizeOf[W]() * 8; raw.BitLen() > bits {
		return fixed[W]{}, fmt.Errorf("fixuint: %s value %#x exceeds %d bits: %w", nameOf[W](), raw, bits, ErrOverflow)
	}
	return fixed[W]{mag: raw}, nil
}

func fixedFrom64[W width](v uint64) fixed[W] {
	return fixed[W]{mag: new(big.Int).SetUint64(v)}
}

func fixedFromBig[W width](v *big.Int) (fixed[W], error) {
	if v == nil {
		return fixed[W]{}, fmt.Errorf("fixuint: %s from nil big.Int: %w", nameOf[W](), ErrArgument)
	}
	return newFixed[W](new(big.Int).Set(v))
}

func fixedFromBytes[W width](b []byte, littleEndian bool) (fixed[W], error) {
	n := sizeOf[W]()
	if len(b) != n {
		return fixed[W]{}, &LengthError{Type: nameOf[W](), Unit: "bytes", Want: n, Got: len(b)}
	}
	be := make([]byte, n)
	copy(be, b)
	if littleEndian {
		reverseBytes(be)
	}
	return fixed[W]{mag: new(big.Int).SetBytes(be)}, nil
}

// fixedFromHex accepts an optional 0x or 0X prefix followed by at least one
// hex digit in either case. Odd-length input is padded with a leading zero.
// Leading zeros are skipped, so nothing longer than the width is decoded.
func fixedFromHex[W width](s string) (fixed[W], error) {
	digits := s
	if len(digits) >= 2 && digits[0] == '0' && (digits[1] == 'x' || digits[1] == 'X') {
		digits = digits[2:]
	}
	if digits == "" {
		return fixed[W]{}, fmt.Errorf("fixuint: %s hex string %q has no digits: %w", nameOf[W](), s, ErrFormat)
	}
	digits = strings.TrimLeft(digits, "0")
	if len(digits) > 2*sizeOf[W]() {
		if !isHexDigits(digits) {
			return fixed[W]{}, fmt.Errorf("fixuint: %s hex string invalid: %w", nameOf[W](), ErrFormat)
		}
		return fixed[W]{}, fmt.Errorf("fixuint: %s hex string has %d significant digits: %w", nameOf[W](), len(digits), ErrOverflow)
	}
	if len(digits)%2 != 0 {
		digits = "0" + digits
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return fixed[W]{}, fmt.Errorf("fixuint: %s hex string %q invalid: %w", nameOf[W](), s, ErrFormat)
	}
	return newFixed[W](new(big.Int).SetBytes(raw))
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// fixedFromWords builds a value from uint32 lanes, least significant lane
// first.
func fixedFromWords[W width](words []uint32) (fixed[W], error) {
	n := sizeOf[W]()
	if len(words) != n/4 {
		return fixed[W]{}, &LengthError{Type: nameOf[W](), Unit: "words", Want: n / 4, Got: len(words)}
	}
	le := make([]byte, n)
	for i, w := range words {
		binary.LittleEndian.PutUint32(le[i*4:], w)
	}
	return fixedFromBytes[W](le, true)
}

func (f fixed[W]) value() *big.Int {
	if f.mag == nil {
		return big0
	}
	return f.mag
}

func (f fixed[W]) isZero() bool { return f.value().Sign() == 0 }

func (f fixed[W]) cmp(n fixed[W]) int { return f.value().Cmp(n.value()) }

func (f fixed[W]) add(n fixed[W]) *big.Int {
	return new(big.Int).Add(f.value(), n.value())
}

func (f fixed[W]) sub(n fixed[W]) (*big.Int, error) {
	if f.cmp(n) < 0 {
		return nil, fmt.Errorf("fixuint: %s subtraction %#x - %#x is negative: %w", nameOf[W](), f.value(), n.value(), ErrOverflow)
	}
	return new(big.Int).Sub(f.value(), n.value()), nil
}

func (f fixed[W]) mul(n fixed[W]) *big.Int {
	return new(big.Int).Mul(f.value(), n.value())
}

func (f fixed[W]) quo(n fixed[W]) (*big.Int, error) {
	if n.isZero() {
		return nil, f.divideByZero("/")
	}
	return new(big.Int).Quo(f.value(), n.value()), nil
}

func (f fixed[W]) rem(n fixed[W]) (*big.Int, error) {
	if n.isZero() {
		return nil, f.divideByZero("%")
	}
	return new(big.Int).Rem(f.value(), n.value()), nil
}

func (f fixed[W]) quoRem(n fixed[W]) (q, r *big.Int, err error) {
	if n.isZero() {
		return nil, nil, f.divideByZero("/%")
	}
	q, r = new(big.Int).QuoRem(f.value(), n.value(), new(big.Int))
	return q, r, nil
}

func (f fixed[W]) divideByZero(op string) error {
	return fmt.Errorf("fixuint: %s %#x %s 0: %w", nameOf[W](), f.value(), op, ErrDivideByZero)
}

// lsh does not cap its result. The shift count is clamped to the bit width
// first: a non-zero value shifted by the full width already fails newFixed,
// so larger counts cannot change the outcome.
func (f fixed[W]) lsh(s uint) *big.Int {
	if bits := uint(sizeOf[W]() * 8); s > bits {
		s = bits
	}
	return new(big.Int).Lsh(f.value(), s)
}

func (f fixed[W]) rsh(s uint) *big.Int {
	if bits := uint(sizeOf[W]() * 8); s > bits {
		s = bits
	}
	return new(big.Int).Rsh(f.value(), s)
}

// bytes always returns exactly sizeOf[W]() bytes, high-order zeros included.
func (f fixed[W]) bytes(littleEndian bool) []byte {
	out := make([]byte, sizeOf[W]())
	f.value().FillBytes(out)
	if littleEndian {
		reverseBytes(out)
	}
	return out
}

func (f fixed[W]) hex() string {
	return hex.EncodeToString(f.bytes(false))
}

func (f fixed[W]) words() []uint32 {
	le := f.bytes(true)
	out := make([]uint32, len(le)/4)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(le[i*4:])
	}
	return out
}

// hash XORs the uint32 lanes together. Equal magnitudes hash equal; nothing
// stronger is promised.
func (f fixed[W]) hash() (h uint32) {
	for _, w := range f.words() {
		h ^= w
	}
	return h
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
