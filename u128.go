package fixuint

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"math/bits"
)

// U128 is an unsigned 128-bit integer. Arithmetic that would leave the range
// [0, MaxU128] returns an error instead of a value.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{hi: 0, lo: v} }
func U128From32(v uint32) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From16(v uint16) U128       { return U128{hi: 0, lo: uint64(v)} }
func U128From8(v uint8) U128         { return U128{hi: 0, lo: uint64(v)} }

// U128FromInt64 widens a signed integer. Negative input is rejected with
// ErrArgument.
func U128FromInt64(v int64) (out U128, err error) {
	if v < 0 {
		return out, fmt.Errorf("fixuint: u128 from negative integer %d: %w", v, ErrArgument)
	}
	return U128{lo: uint64(v)}, nil
}

func U128FromInt32(v int32) (out U128, err error) { return U128FromInt64(int64(v)) }
func U128FromInt(v int) (out U128, err error)     { return U128FromInt64(int64(v)) }

// U128FromHex parses a big-endian hex string with an optional 0x prefix.
// Digits may be in either case; an odd number of digits is treated as if it
// had a leading zero.
func U128FromHex(s string) (out U128, err error) {
	f, err := fixedFromHex[width128](s)
	if err != nil {
		return out, err
	}
	return u128FromFixed(f), nil
}

// MustU128FromHex is like U128FromHex but panics if s can not be parsed. It
// is intended for package-level constants.
func MustU128FromHex(s string) U128 {
	u, err := U128FromHex(s)
	if err != nil {
		panic(err)
	}
	return u
}

// U128FromBytes decodes exactly 16 bytes in the requested byte order.
func U128FromBytes(b []byte, littleEndian bool) (out U128, err error) {
	f, err := fixedFromBytes[width128](b, littleEndian)
	if err != nil {
		return out, err
	}
	return u128FromFixed(f), nil
}

// U128FromWords builds a U128 from exactly 4 uint32 lanes, least significant
// lane first.
func U128FromWords(words []uint32) (out U128, err error) {
	f, err := fixedFromWords[width128](words)
	if err != nil {
		return out, err
	}
	return u128FromFixed(f), nil
}

// U128FromBigInt creates a U128 from a big.Int. Negative values and values
// that need more than 128 bits return ErrOverflow.
func U128FromBigInt(v *big.Int) (out U128, err error) {
	f, err := fixedFromBig[width128](v)
	if err != nil {
		return out, err
	}
	return u128FromFixed(f), nil
}

func u128FromFixed(f fixed[width128]) U128 {
	var b [16]byte
	f.value().FillBytes(b[:])
	return U128{
		hi: binary.BigEndian.Uint64(b[:8]),
		lo: binary.BigEndian.Uint64(b[8:]),
	}
}

func u128FromRaw(raw *big.Int) (U128, error) {
	f, err := newFixed[width128](raw)
	if err != nil {
		return U128{}, err
	}
	return u128FromFixed(f), nil
}

func (u U128) fixed() fixed[width128] { return fixed[width128]{mag: u.AsBigInt()} }

func (u U128) IsZero() bool { return u == ZeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// Hex returns the value as 32 lowercase hex digits, most significant first,
// without a prefix.
func (u U128) Hex() string { return u.fixed().hex() }

func (u U128) String() string { return u.Hex() }

// Format prints the canonical hex form for %s and %v. Other verbs are passed
// to big.Int, so %d, %x, %X, %o and %b work as they do there.
func (u U128) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		io.WriteString(s, u.Hex())
	default:
		u.AsBigInt().Format(s, c)
	}
}

// Bytes returns exactly 16 bytes. High-order zero bytes are always present.
func (u U128) Bytes(littleEndian bool) []byte { return u.fixed().bytes(littleEndian) }

// Words returns the value as 4 uint32 lanes, least significant lane first.
func (u U128) Words() []uint32 { return u.fixed().words() }

// ByteAt returns byte n of the little-endian encoding.
func (u U128) ByteAt(n int) (byte, error) {
	if n < 0 || n >= 16 {
		return 0, fmt.Errorf("fixuint: u128 byte index %d out of range: %w", n, ErrArgument)
	}
	return u.Bytes(true)[n], nil
}

func (u U128) Low32() uint32 { return uint32(u.lo) }

// Uint64At returns 64-bit lane pos, where lane 0 is the least significant.
func (u U128) Uint64At(pos int) (uint64, error) {
	switch pos {
	case 0:
		return u.lo, nil
	case 1:
		return u.hi, nil
	default:
		return 0, fmt.Errorf("fixuint: u128 lane %d out of range: %w", pos, ErrArgument)
	}
}

// Hash XORs the 32-bit lanes of u together.
func (u U128) Hash() uint32 { return u.fixed().hash() }

func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo & 0xFFFFFFFF)
		bits[1] = big.Word(u.lo >> 32)
		bits[2] = big.Word(u.hi & 0xFFFFFFFF)
		bits[3] = big.Word(u.hi >> 32)
		b.SetBits(bits)

	default:
		panic("fixuint: unsupported bit size")
	}
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// Uint64 narrows u to a uint64, returning ErrOverflow if it does not fit.
func (u U128) Uint64() (uint64, error) {
	if u.hi != 0 {
		return 0, u.narrowError("uint64")
	}
	return u.lo, nil
}

func (u U128) Int64() (int64, error) {
	if u.hi != 0 || u.lo > maxInt64 {
		return 0, u.narrowError("int64")
	}
	return int64(u.lo), nil
}

func (u U128) Uint32() (uint32, error) {
	if u.hi != 0 || u.lo > maxUint32 {
		return 0, u.narrowError("uint32")
	}
	return uint32(u.lo), nil
}

func (u U128) Int32() (int32, error) {
	if u.hi != 0 || u.lo > maxInt32 {
		return 0, u.narrowError("int32")
	}
	return int32(u.lo), nil
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) narrowError(target string) error {
	return fmt.Errorf("fixuint: u128 %#x does not fit in %s: %w", u.AsBigInt(), target, ErrOverflow)
}

func (u U128) Inc() (U128, error) { return u.Add(oneU128) }
func (u U128) Dec() (U128, error) { return u.Sub(oneU128) }

func (u U128) Add(n U128) (U128, error) {
	return u128FromRaw(u.fixed().add(n.fixed()))
}

// Sub returns ErrOverflow if n is greater than u.
func (u U128) Sub(n U128) (U128, error) {
	raw, err := u.fixed().sub(n.fixed())
	if err != nil {
		return U128{}, err
	}
	return u128FromRaw(raw)
}

func (u U128) Mul(n U128) (U128, error) {
	return u128FromRaw(u.fixed().mul(n.fixed()))
}

// Quo returns the truncated quotient u/by, or ErrDivideByZero.
func (u U128) Quo(by U128) (U128, error) {
	raw, err := u.fixed().quo(by.fixed())
	if err != nil {
		return U128{}, err
	}
	return u128FromRaw(raw)
}

// Rem returns the remainder of u%by, or ErrDivideByZero.
func (u U128) Rem(by U128) (U128, error) {
	raw, err := u.fixed().rem(by.fixed())
	if err != nil {
		return U128{}, err
	}
	return u128FromRaw(raw)
}

// QuoRem returns the quotient q and remainder r for by != 0, using truncated
// division:
//
//	q = u/by
//	r = u - by*q
func (u U128) QuoRem(by U128) (q, r U128, err error) {
	rq, rr, err := u.fixed().quoRem(by.fixed())
	if err != nil {
		return q, r, err
	}
	if q, err = u128FromRaw(rq); err != nil {
		return q, r, err
	}
	r, err = u128FromRaw(rr)
	return q, r, err
}

// Lsh returns ErrOverflow if any set bit would be shifted out of the top.
func (u U128) Lsh(n uint) (U128, error) {
	return u128FromRaw(u.fixed().lsh(n))
}

func (u U128) Rsh(n uint) U128 {
	v, _ := u128FromRaw(u.fixed().rsh(n)) // never larger than u
	return v
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) Equal(n U128) bool {
	return u.hi == n.hi && u.lo == n.lo
}

func (u U128) GreaterThan(n U128) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo > n.lo)
}

func (u U128) GreaterOrEqualTo(n U128) bool {
	return u.Cmp(n) >= 0
}

func (u U128) LessThan(n U128) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u U128) LessOrEqualTo(n U128) bool {
	return u.Cmp(n) <= 0
}

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) AndNot(v U128) (out U128) {
	out.hi = u.hi &^ v.hi
	out.lo = u.lo &^ v.lo
	return out
}

func (u U128) Not() (out U128) {
	out.hi = ^u.hi
	out.lo = ^u.lo
	return out
}

func (u U128) Or(v U128) (out U128) {
	out.hi = u.hi | v.hi
	out.lo = u.lo | v.lo
	return out
}

func (u U128) Xor(v U128) (out U128) {
	out.hi = u.hi ^ v.hi
	out.lo = u.lo ^ v.lo
	return out
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// BitLen returns the number of bits needed to represent u; 0 for zero.
func (u U128) BitLen() int {
	return 128 - int(u.LeadingZeros())
}
