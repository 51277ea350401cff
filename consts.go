package fixuint

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	maxUint32 = 1<<32 - 1
	maxInt32  = 1<<31 - 1

	intSize = 32 << (^uint(0) >> 63)
)

var (
	MinU128  = U128{}
	ZeroU128 = U128{}
	MaxU128  = U128{hi: maxUint64, lo: maxUint64}

	MinU256  = U256{}
	ZeroU256 = U256{}
	MaxU256  = U256{hi: maxUint64, hm: maxUint64, lm: maxUint64, lo: maxUint64}

	oneU128 = U128{lo: 1}
	oneU256 = U256{lo: 1}

	big0 = new(big.Int)
)
