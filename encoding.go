package fixuint

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

var (
	_ encoding.TextMarshaler     = U128{}
	_ encoding.TextUnmarshaler   = (*U128)(nil)
	_ encoding.BinaryMarshaler   = U128{}
	_ encoding.BinaryUnmarshaler = (*U128)(nil)
	_ json.Marshaler             = U128{}
	_ json.Unmarshaler           = (*U128)(nil)
	_ msgpack.CustomEncoder      = U128{}
	_ msgpack.CustomDecoder      = (*U128)(nil)
	_ driver.Valuer              = U128{}
	_ sql.Scanner                = (*U128)(nil)

	_ encoding.TextMarshaler     = U256{}
	_ encoding.TextUnmarshaler   = (*U256)(nil)
	_ encoding.BinaryMarshaler   = U256{}
	_ encoding.BinaryUnmarshaler = (*U256)(nil)
	_ json.Marshaler             = U256{}
	_ json.Unmarshaler           = (*U256)(nil)
	_ msgpack.CustomEncoder      = U256{}
	_ msgpack.CustomDecoder      = (*U256)(nil)
	_ driver.Valuer              = U256{}
	_ sql.Scanner                = (*U256)(nil)
)

func (u U128) MarshalText() ([]byte, error) {
	return []byte(u.Hex()), nil
}

func (u *U128) UnmarshalText(bts []byte) (err error) {
	v, err := U128FromHex(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.Hex() + `"`), nil
}

func (u *U128) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON("u128", bts)
	if err != nil || bts == nil {
		return err
	}
	return u.UnmarshalText(bts)
}

// MarshalBinary returns the 16 byte little-endian encoding.
func (u U128) MarshalBinary() ([]byte, error) {
	return u.Bytes(true), nil
}

func (u *U128) UnmarshalBinary(bts []byte) (err error) {
	v, err := U128FromBytes(bts, true)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

// EncodeMsgpack writes u as a msgpack bin holding the 16 byte little-endian
// encoding.
func (u U128) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(u.Bytes(true))
}

func (u *U128) DecodeMsgpack(dec *msgpack.Decoder) error {
	bts, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	return u.UnmarshalBinary(bts)
}

// Value stores u as its canonical hex text.
func (u U128) Value() (driver.Value, error) {
	return u.Hex(), nil
}

// Scan accepts hex text as a string or []byte, or a non-negative int64.
func (u *U128) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return u.UnmarshalText([]byte(v))
	case []byte:
		return u.UnmarshalText(v)
	case int64:
		n, err := U128FromInt64(v)
		if err != nil {
			return err
		}
		*u = n
		return nil
	default:
		return fmt.Errorf("fixuint: u128 can not scan %T: %w", src, ErrFormat)
	}
}

func (u U256) MarshalText() ([]byte, error) {
	return []byte(u.Hex()), nil
}

func (u *U256) UnmarshalText(bts []byte) (err error) {
	v, err := U256FromHex(string(bts))
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U256) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.Hex() + `"`), nil
}

func (u *U256) UnmarshalJSON(bts []byte) (err error) {
	bts, err = unquoteJSON("u256", bts)
	if err != nil || bts == nil {
		return err
	}
	return u.UnmarshalText(bts)
}

// MarshalBinary returns the 32 byte little-endian encoding.
func (u U256) MarshalBinary() ([]byte, error) {
	return u.Bytes(true), nil
}

func (u *U256) UnmarshalBinary(bts []byte) (err error) {
	v, err := U256FromBytes(bts, true)
	if err != nil {
		return err
	}
	*u = v
	return nil
}

func (u U256) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeBytes(u.Bytes(true))
}

func (u *U256) DecodeMsgpack(dec *msgpack.Decoder) error {
	bts, err := dec.DecodeBytes()
	if err != nil {
		return err
	}
	return u.UnmarshalBinary(bts)
}

func (u U256) Value() (driver.Value, error) {
	return u.Hex(), nil
}

func (u *U256) Scan(src interface{}) error {
	switch v := src.(type) {
	case string:
		return u.UnmarshalText([]byte(v))
	case []byte:
		return u.UnmarshalText(v)
	case int64:
		n, err := U256FromInt64(v)
		if err != nil {
			return err
		}
		*u = n
		return nil
	default:
		return fmt.Errorf("fixuint: u256 can not scan %T: %w", src, ErrFormat)
	}
}

// unquoteJSON strips the quotes from a JSON string. A bare token is only
// accepted with a 0x prefix, as anything else could be a JSON number. A JSON
// null returns nil bytes and no error, leaving the target untouched.
func unquoteJSON(kind string, bts []byte) ([]byte, error) {
	ln := len(bts)
	if ln == 0 {
		return nil, fmt.Errorf("fixuint: %s empty JSON: %w", kind, ErrFormat)
	}
	if string(bts) == "null" {
		return nil, nil
	}
	if bts[0] == '"' {
		if ln < 2 || bts[ln-1] != '"' {
			return nil, fmt.Errorf("fixuint: %s invalid JSON %q: %w", kind, string(bts), ErrFormat)
		}
		return bts[1 : ln-1], nil
	}
	if ln < 2 || bts[0] != '0' || (bts[1] != 'x' && bts[1] != 'X') {
		return nil, fmt.Errorf("fixuint: %s JSON value %q must be a hex string: %w", kind, string(bts), ErrFormat)
	}
	return bts, nil
}
