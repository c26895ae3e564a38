package id

import "math/big"

// PayloadSize is the payload width in bytes (80 bits).
const PayloadSize = 10

var payloadModulus = new(big.Int).Lsh(big.NewInt(1), PayloadSize*8)

// Payload is the 80-bit random (or caller supplied) component of an ID, big-endian.
type Payload [PayloadSize]byte

// PayloadFromInt keeps the low 80 bits of v. Negative values contribute
// their two's-complement low bits, so -1 becomes all ones.
func PayloadFromInt(v *big.Int) Payload {
	var p Payload
	if v == nil {
		return p
	}
	new(big.Int).Mod(v, payloadModulus).FillBytes(p[:])
	return p
}

// PayloadFromUint64 widens v to a payload.
func PayloadFromUint64(v uint64) Payload {
	return PayloadFromInt(new(big.Int).SetUint64(v))
}

// Int returns the payload as a non-negative integer.
func (p Payload) Int() *big.Int { return new(big.Int).SetBytes(p[:]) }

// Decimal renders the payload in base 10 without loss of precision.
func (p Payload) Decimal() string { return p.Int().String() }

// PayloadKind selects how Generate fills the payload.
type PayloadKind int

const (
	PayloadRandom PayloadKind = iota
	PayloadFixed
	PayloadZeros
	PayloadOnes
)

func (k PayloadKind) String() string {
	switch k {
	case PayloadRandom:
		return "random"
	case PayloadFixed:
		return "fixed"
	case PayloadZeros:
		return "zeros"
	case PayloadOnes:
		return "ones"
	default:
		return "unknown"
	}
}

// PayloadMode is exactly one of Random, Fixed, Zeros or Ones.
// The zero value is Random.
type PayloadMode struct {
	kind  PayloadKind
	value *big.Int
}

func Random() PayloadMode { return PayloadMode{kind: PayloadRandom} }

// Fixed uses the low 80 bits of v as the payload.
func Fixed(v *big.Int) PayloadMode {
	m := PayloadMode{kind: PayloadFixed, value: new(big.Int)}
	if v != nil {
		m.value.Set(v)
	}
	return m
}

func FixedUint64(v uint64) PayloadMode { return Fixed(new(big.Int).SetUint64(v)) }

func Zeros() PayloadMode { return PayloadMode{kind: PayloadZeros} }

func Ones() PayloadMode { return PayloadMode{kind: PayloadOnes} }

func (m PayloadMode) Kind() PayloadKind { return m.kind }

// Value returns a copy of the fixed value, or nil for other kinds.
func (m PayloadMode) Value() *big.Int {
	if m.kind != PayloadFixed || m.value == nil {
		return nil
	}
	return new(big.Int).Set(m.value)
}

func (m PayloadMode) String() string {
	if m.kind == PayloadFixed {
		return "fixed(" + m.value.String() + ")"
	}
	return m.kind.String()
}

var onesPayload = Payload{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
