/*
Package fixuint provides checked unsigned 128-bit (U128) and 256-bit (U256)
integer types for code that must produce bit-exact results on every platform,
such as balances and hash-sized quantities in a deterministic execution
environment.

U128 and U256 are value types; all operations return new values. Nothing ever
wraps or saturates: any result outside [0, Max] is returned as an error.

	a := MustU256FromHex("0x325")
	b := MustU256FromHex("0xf0f")
	sum, err := a.Add(b)       // 0x1234, nil
	_, err = MaxU256.Add(b)    // errors.Is(err, ErrOverflow)
	_, err = ZeroU256.Sub(b)   // errors.Is(err, ErrOverflow)
	_, err = a.Quo(ZeroU256)   // errors.Is(err, ErrDivideByZero)

U128 and U256 can be created from a variety of sources:

	U128FromRaw(hi, lo uint64) U128
	U128From64(v uint64) U128
	U128From32(v uint32) U128
	U128FromInt64(v int64) (U128, error)
	U128FromHex(s string) (U128, error)
	U128FromBytes(b []byte, littleEndian bool) (U128, error)
	U128FromWords(words []uint32) (U128, error)
	U128FromBigInt(v *big.Int) (U128, error)
	U128FromUint256(v *uint256.Int) (U128, error)
	U256From128(v U128) U256

Hex text is big-endian, lowercase on output, case-insensitive with an
optional 0x prefix on input. Byte encodings are always exactly the width of
the type (16 or 32 bytes) in the byte order chosen by the caller.

Errors can be matched with errors.Is against ErrFormat, ErrOverflow,
ErrDivideByZero and ErrArgument.

U128 and U256 support the following formatting and marshalling interfaces:

  - fmt.Formatter
  - fmt.Stringer
  - json.Marshaler
  - json.Unmarshaler
  - encoding.TextMarshaler
  - encoding.TextUnmarshaler
  - encoding.BinaryMarshaler
  - encoding.BinaryUnmarshaler
  - msgpack.CustomEncoder
  - msgpack.CustomDecoder
  - sql.Scanner
  - driver.Valuer
*/
package fixuint
