package fixuint

import (
	"encoding/binary"
	"fmt"
	"io"
	"math/big"
	"math/bits"
)

// U256 is an unsigned 256-bit integer, laid out as four uint64 words from
// most (hi) to least (lo) significant. Arithmetic that would leave the range
// [0, MaxU256] returns an error instead of a value.
type U256 struct {
	hi, hm, lm, lo uint64
}

func U256FromRaw(hi, hm, lm, lo uint64) U256 { return U256{hi: hi, hm: hm, lm: lm, lo: lo} }
func U256From64(v uint64) U256               { return U256{lo: v} }
func U256From32(v uint32) U256               { return U256{lo: uint64(v)} }
func U256From16(v uint16) U256               { return U256{lo: uint64(v)} }
func U256From8(v uint8) U256                 { return U256{lo: uint64(v)} }

func U256FromInt64(v int64) (out U256, err error) {
	if v < 0 {
		return out, fmt.Errorf("fixuint: u256 from negative integer %d: %w", v, ErrArgument)
	}
	return U256{lo: uint64(v)}, nil
}

func U256FromInt32(v int32) (out U256, err error) { return U256FromInt64(int64(v)) }
func U256FromInt(v int) (out U256, err error)     { return U256FromInt64(int64(v)) }

// U256FromHex parses a big-endian hex string with an optional 0x prefix. See
// U128FromHex for the accepted syntax.
func U256FromHex(s string) (out U256, err error) {
	f, err := fixedFromHex[width256](s)
	if err != nil {
		return out, err
	}
	return u256FromFixed(f), nil
}

func MustU256FromHex(s string) U256 {
	u, err := U256FromHex(s)
	if err != nil {
		panic(err)
	}
	return u
}

// U256FromBytes decodes exactly 32 bytes in the requested byte order.
func U256FromBytes(b []byte, littleEndian bool) (out U256, err error) {
	f, err := fixedFromBytes[width256](b, littleEndian)
	if err != nil {
		return out, err
	}
	return u256FromFixed(f), nil
}

func U256FromWords(words []uint32) (out U256, err error) {
	f, err := fixedFromWords[width256](words)
	if err != nil {
		return out, err
	}
	return u256FromFixed(f), nil
}

// U256FromBigInt creates a U256 from a big.Int. Negative values and values
// that need more than 256 bits return ErrOverflow.
func U256FromBigInt(v *big.Int) (out U256, err error) {
	f, err := fixedFromBig[width256](v)
	if err != nil {
		return out, err
	}
	return u256FromFixed(f), nil
}

func u256FromFixed(f fixed[width256]) U256 {
	var b [32]byte
	f.value().FillBytes(b[:])
	return U256{
		hi: binary.BigEndian.Uint64(b[:8]),
		hm: binary.BigEndian.Uint64(b[8:16]),
		lm: binary.BigEndian.Uint64(b[16:24]),
		lo: binary.BigEndian.Uint64(b[24:]),
	}
}

func u256FromRaw(raw *big.Int) (U256, error) {
	f, err := newFixed[width256](raw)
	if err != nil {
		return U256{}, err
	}
	return u256FromFixed(f), nil
}

func (u U256) fixed() fixed[width256] { return fixed[width256]{mag: u.AsBigInt()} }

func (u U256) IsZero() bool { return u == ZeroU256 }

func (u U256) Raw() (hi, hm, lm, lo uint64) { return u.hi, u.hm, u.lm, u.lo }

func (u U256) Hex() string { return u.fixed().hex() }

func (u U256) String() string { return u.Hex() }

func (u U256) Format(s fmt.State, c rune) {
	switch c {
	case 's', 'v':
		io.WriteString(s, u.Hex())
	default:
		u.AsBigInt().Format(s, c)
	}
}

// Bytes returns exactly 32 bytes. High-order zero bytes are always present.
func (u U256) Bytes(littleEndian bool) []byte { return u.fixed().bytes(littleEndian) }

func (u U256) Words() []uint32 { return u.fixed().words() }

func (u U256) ByteAt(n int) (byte, error) {
	if n < 0 || n >= 32 {
		return 0, fmt.Errorf("fixuint: u256 byte index %d out of range: %w", n, ErrArgument)
	}
	return u.Bytes(true)[n], nil
}

func (u U256) Low32() uint32 { return uint32(u.lo) }

func (u U256) Uint64At(pos int) (uint64, error) {
	switch pos {
	case 0:
		return u.lo, nil
	case 1:
		return u.lm, nil
	case 2:
		return u.hm, nil
	case 3:
		return u.hi, nil
	default:
		return 0, fmt.Errorf("fixuint: u256 lane %d out of range: %w", pos, ErrArgument)
	}
}

func (u U256) Hash() uint32 { return u.fixed().hash() }

func (u U256) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 4 {
			bits = append(bits, make([]big.Word, 4-ln)...)
		}
		bits = bits[:4]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.lm)
		bits[2] = big.Word(u.hm)
		bits[3] = big.Word(u.hi)
		b.SetBits(bits)

	case 32:
		bits := b.Bits()
		ln := len(bits)
		if len(bits) < 8 {
			bits = append(bits, make([]big.Word, 8-ln)...)
		}
		bits = bits[:8]
		for i, w := range [4]uint64{u.lo, u.lm, u.hm, u.hi} {
			bits[i*2] = big.Word(w & 0xFFFFFFFF)
			bits[i*2+1] = big.Word(w >> 32)
		}
		b.SetBits(bits)

	default:
		panic("fixuint: unsupported bit size")
	}
}

func (u U256) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

func (u U256) Uint64() (uint64, error) {
	if !u.IsUint64() {
		return 0, u.narrowError("uint64")
	}
	return u.lo, nil
}

func (u U256) Int64() (int64, error) {
	if !u.IsUint64() || u.lo > maxInt64 {
		return 0, u.narrowError("int64")
	}
	return int64(u.lo), nil
}

func (u U256) Uint32() (uint32, error) {
	if !u.IsUint64() || u.lo > maxUint32 {
		return 0, u.narrowError("uint32")
	}
	return uint32(u.lo), nil
}

func (u U256) Int32() (int32, error) {
	if !u.IsUint64() || u.lo > maxInt32 {
		return 0, u.narrowError("int32")
	}
	return int32(u.lo), nil
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U256) IsUint64() bool { return u.hi == 0 && u.hm == 0 && u.lm == 0 }

func (u U256) narrowError(target string) error {
	return fmt.Errorf("fixuint: u256 %#x does not fit in %s: %w", u.AsBigInt(), target, ErrOverflow)
}

func (u U256) Inc() (U256, error) { return u.Add(oneU256) }
func (u U256) Dec() (U256, error) { return u.Sub(oneU256) }

func (u U256) Add(n U256) (U256, error) {
	return u256FromRaw(u.fixed().add(n.fixed()))
}

func (u U256) Sub(n U256) (U256, error) {
	raw, err := u.fixed().sub(n.fixed())
	if err != nil {
		return U256{}, err
	}
	return u256FromRaw(raw)
}

func (u U256) Mul(n U256) (U256, error) {
	return u256FromRaw(u.fixed().mul(n.fixed()))
}

func (u U256) Quo(by U256) (U256, error) {
	raw, err := u.fixed().quo(by.fixed())
	if err != nil {
		return U256{}, err
	}
	return u256FromRaw(raw)
}

func (u U256) Rem(by U256) (U256, error) {
	raw, err := u.fixed().rem(by.fixed())
	if err != nil {
		return U256{}, err
	}
	return u256FromRaw(raw)
}

func (u U256) QuoRem(by U256) (q, r U256, err error) {
	rq, rr, err := u.fixed().quoRem(by.fixed())
	if err != nil {
		return q, r, err
	}
	if q, err = u256FromRaw(rq); err != nil {
		return q, r, err
	}
	r, err = u256FromRaw(rr)
	return q, r, err
}

func (u U256) Lsh(n uint) (U256, error) {
	return u256FromRaw(u.fixed().lsh(n))
}

func (u U256) Rsh(n uint) U256 {
	v, _ := u256FromRaw(u.fixed().rsh(n))
	return v
}

func (u U256) Cmp(n U256) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.hm > n.hm {
		return 1
	} else if u.hm < n.hm {
		return -1
	} else if u.lm > n.lm {
		return 1
	} else if u.lm < n.lm {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U256) Equal(v U256) bool            { return u == v }
func (u U256) GreaterThan(v U256) bool      { return u.Cmp(v) > 0 }
func (u U256) GreaterOrEqualTo(v U256) bool { return u.Cmp(v) >= 0 }
func (u U256) LessThan(v U256) bool         { return u.Cmp(v) < 0 }
func (u U256) LessOrEqualTo(v U256) bool    { return u.Cmp(v) <= 0 }

func (u U256) And(n U256) U256 {
	u.hi = u.hi & n.hi
	u.hm = u.hm & n.hm
	u.lm = u.lm & n.lm
	u.lo = u.lo & n.lo
	return u
}

func (u U256) AndNot(n U256) U256 {
	u.hi = u.hi &^ n.hi
	u.hm = u.hm &^ n.hm
	u.lm = u.lm &^ n.lm
	u.lo = u.lo &^ n.lo
	return u
}

func (u U256) Not() U256 {
	u.hi = ^u.hi
	u.hm = ^u.hm
	u.lm = ^u.lm
	u.lo = ^u.lo
	return u
}

func (u U256) Or(n U256) U256 {
	u.hi = u.hi | n.hi
	u.hm = u.hm | n.hm
	u.lm = u.lm | n.lm
	u.lo = u.lo | n.lo
	return u
}

func (u U256) Xor(n U256) U256 {
	u.hi = u.hi ^ n.hi
	u.hm = u.hm ^ n.hm
	u.lm = u.lm ^ n.lm
	u.lo = u.lo ^ n.lo
	return u
}

func (u U256) LeadingZeros() uint {
	if u.hi != 0 {
		return uint(bits.LeadingZeros64(u.hi))
	} else if u.hm != 0 {
		return uint(bits.LeadingZeros64(u.hm)) + 64
	} else if u.lm != 0 {
		return uint(bits.LeadingZeros64(u.lm)) + 128
	} else if u.lo != 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 192
	}
	return 256
}

func (u U256) TrailingZeros() uint {
	if u.lo != 0 {
		return uint(bits.TrailingZeros64(u.lo))
	} else if u.lm != 0 {
		return uint(bits.TrailingZeros64(u.lm)) + 64
	} else if u.hm != 0 {
		return uint(bits.TrailingZeros64(u.hm)) + 128
	} else if u.hi != 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 192
	}
	return 256
}

func (u U256) BitLen() int { return 256 - int(u.LeadingZeros()) }
