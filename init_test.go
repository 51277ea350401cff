package fixuint

import (
	"flag"
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"
)

var (
	fuzzIterations  = fuzzDefaultIterations
	fuzzOpsActive   = allFuzzOps
	fuzzTypesActive = allFuzzTypes
	fuzzSeed        int64

	globalRNG *rand.Rand
)

var (
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64 = new(big.Int).SetUint64(maxUint64)
	maxBigU128   = bigs("0xffffffffffffffffffffffffffffffff")
	maxBigU256   = bigs("0xffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff")

	// wrapBigU128 is 1 << 128, the smallest value that overflows a U128:
	wrapBigU128 = new(big.Int).Lsh(big1, 128)

	// wrapBigU256 is 1 << 256, the smallest value that overflows a U256:
	wrapBigU256 = new(big.Int).Lsh(big1, 256)
)

func TestMain(m *testing.M) {
	var ops StringList
	var types StringList

	flag.IntVar(&fuzzIterations, "fixuint.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "fixuint.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Var(&ops, "fixuint.fuzzop", "Fuzz op to run (can pass multiple times, or a comma separated list)")
	flag.Var(&types, "fixuint.fuzztype", "Fuzz type (u128, u256) (can pass multiple)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	if len(ops) > 0 {
		fuzzOpsActive = nil
		for _, op := range ops {
			fuzzOpsActive = append(fuzzOpsActive, fuzzOp(op))
		}
	}

	if len(types) > 0 {
		fuzzTypesActive = nil
		for _, t := range types {
			fuzzTypesActive = append(fuzzTypesActive, fuzzType(t))
		}
	}

	log.Println("rando seed:", fuzzSeed) // classic rando!
	log.Println("active ops:", fuzzOpsActive)
	log.Println("iterations:", fuzzIterations)
	log.Println("integer sz:", intSize)

	code := m.Run()
	os.Exit(code)
}

func bigU64(u uint64) *big.Int { return new(big.Int).SetUint64(u) }

func bigs(s string) *big.Int {
	v, ok := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	if !ok {
		panic(fmt.Errorf("fixuint: big string %q invalid", s))
	}
	return v
}

// u128s parses s as a Go integer literal, so both "0x..." and decimal are
// accepted. Spaces are ignored.
func u128s(s string) U128 { return accU128FromBigInt(bigs(s)) }

func u256s(s string) U256 { return accU256FromBigInt(bigs(s)) }

func accU128FromBigInt(b *big.Int) U128 {
	u, err := U128FromBigInt(b)
	if err != nil {
		panic(fmt.Errorf("fixuint: inaccurate conversion to U128 in fuzz tester for %s: %v", b, err))
	}
	return u
}

func accU256FromBigInt(b *big.Int) U256 {
	u, err := U256FromBigInt(b)
	if err != nil {
		panic(fmt.Errorf("fixuint: inaccurate conversion to U256 in fuzz tester for %s: %v", b, err))
	}
	return u
}

type StringList []string

func (s StringList) Strings() []string { return s }

func (s *StringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *StringList) Set(v string) error {
	vs := strings.Split(v, ",")
	for _, vi := range vs {
		vi = strings.TrimSpace(vi)
		if vi != "" {
			*s = append(*s, vi)
		}
	}
	return nil
}

// randomBigUint returns a random value of up to 'bits' bits, with an even
// distribution of bit lengths.
func randomBigUint(rng *rand.Rand, bits int) *big.Int {
	if rng == nil {
		rng = globalRNG
	}

	var v = new(big.Int)
	top := rng.Intn(bits+1) - 1 // +1 for "0 bits"
	if top < 0 {
		return v // "-1 bits" == "0"
	} else if top < 64 {
		v = v.Rand(rng, maxBigUint64)
	} else if top < 128 {
		v = v.Rand(rng, maxBigU128)
	} else {
		v = v.Rand(rng, maxBigU256)
	}
	v.And(v, masks[top])
	v.SetBit(v, top, 1)
	return v
}

func randomBigU128(rng *rand.Rand) *big.Int { return randomBigUint(rng, 128) }
func randomBigU256(rng *rand.Rand) *big.Int { return randomBigUint(rng, 256) }

func fitsBits(b *big.Int, bits int) bool {
	return b.Sign() >= 0 && b.BitLen() <= bits
}

// hexWidth formats b the way Hex() does for a value of the given byte width.
func hexWidth(b *big.Int, width int) string {
	return fmt.Sprintf("%0*x", width*2, b)
}
