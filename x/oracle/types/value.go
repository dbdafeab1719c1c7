package types

import (
	"encoding/json"
	"fmt"
	"math/big"

	"cosmossdk.io/math"
)

// NumberKind discriminates the numeric domain of an oracle value.
type NumberKind uint8

const (
	// KindUint values are unsigned integers capped at 2^128-1.
	KindUint NumberKind = iota
	// KindDec values are unsigned fixed-point decimals with 18 fractional
	// digits, capped at (2^128-1)/10^18.
	KindDec
)

func (k NumberKind) String() string {
	switch k {
	case KindUint:
		return "uint"
	case KindDec:
		return "dec"
	default:
		return fmt.Sprintf("NumberKind(%d)", uint8(k))
	}
}

// NumberKindFromString parses the form produced by String.
func NumberKindFromString(s string) (NumberKind, error) {
	switch s {
	case "uint":
		return KindUint, nil
	case "dec":
		return KindDec, nil
	default:
		return 0, fmt.Errorf("unknown number kind %q", s)
	}
}

var (
	// MaxUintValue is the largest representable uint observation.
	MaxUintValue = math.NewUintFromBigInt(maxRaw())
	// MaxDecValue is the largest representable dec observation.
	MaxDecValue = math.LegacyNewDecFromBigIntWithPrec(maxRaw(), math.LegacyPrecision)
)

// maxRaw returns 2^128-1, the shared raw bound of both kinds.
func maxRaw() *big.Int {
	bound := new(big.Int).Lsh(big.NewInt(1), 128)
	return bound.Sub(bound, big.NewInt(1))
}

// OracleValue is a single observation or published aggregate. The zero value
// is the uint zero.
type OracleValue struct {
	kind    NumberKind
	uintVal math.Uint
	decVal  math.LegacyDec
}

// NewUintValue returns a uint observation, clamped into range.
func NewUintValue(raw math.Uint) OracleValue {
	if raw == (math.Uint{}) {
		raw = math.ZeroUint()
	}
	if raw.GT(MaxUintValue) {
		raw = MaxUintValue
	}
	return OracleValue{kind: KindUint, uintVal: raw}
}

// NewDecValue returns a dec observation, clamped into range. Negative values
// are not representable and clamp to zero.
func NewDecValue(raw math.LegacyDec) OracleValue {
	if raw.IsNil() || raw.IsNegative() {
		raw = math.LegacyZeroDec()
	}
	if raw.GT(MaxDecValue) {
		raw = MaxDecValue
	}
	return OracleValue{kind: KindDec, decVal: raw}
}

// ZeroValue returns the zero observation of kind. Unknown kinds yield the
// uint zero.
func ZeroValue(kind NumberKind) OracleValue {
	if kind == KindDec {
		return NewDecValue(math.LegacyZeroDec())
	}
	return NewUintValue(math.ZeroUint())
}

// Kind reports the numeric domain of v.
func (v OracleValue) Kind() NumberKind {
	return v.kind
}

// Uint returns the integer payload, or zero for dec values.
func (v OracleValue) Uint() math.Uint {
	if v.kind != KindUint || v.uintVal == (math.Uint{}) {
		return math.ZeroUint()
	}
	return v.uintVal
}

// Dec returns the decimal payload, or zero for uint values.
func (v OracleValue) Dec() math.LegacyDec {
	if v.kind != KindDec || v.decVal.IsNil() {
		return math.LegacyZeroDec()
	}
	return v.decVal
}

func (v OracleValue) String() string {
	if v.kind == KindDec {
		return v.Dec().String()
	}
	return v.Uint().String()
}

// Equal reports whether v and other hold the same kind and payload.
func (v OracleValue) Equal(other OracleValue) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == KindDec {
		return v.Dec().Equal(other.Dec())
	}
	return v.Uint().Equal(other.Uint())
}

// Cmp returns -1, 0 or 1 ordering v against other, kind tag first and
// payload second. Cross-kind ordering only keeps sorts total; callers
// combining values still match kinds explicitly.
func (v OracleValue) Cmp(other OracleValue) int {
	if v.kind != other.kind {
		if v.kind < other.kind {
			return -1
		}
		return 1
	}
	if v.kind == KindDec {
		a, b := v.Dec(), other.Dec()
		switch {
		case a.LT(b):
			return -1
		case a.GT(b):
			return 1
		}
		return 0
	}
	a, b := v.Uint(), other.Uint()
	switch {
	case a.LT(b):
		return -1
	case a.GT(b):
		return 1
	}
	return 0
}

// ParseValue parses the string form produced by String for the given kind.
func ParseValue(kind NumberKind, s string) (OracleValue, error) {
	switch kind {
	case KindUint:
		raw, err := math.ParseUint(s)
		if err != nil {
			return OracleValue{}, err
		}
		if raw.GT(MaxUintValue) {
			return OracleValue{}, fmt.Errorf("uint value %s out of range", s)
		}
		return NewUintValue(raw), nil
	case KindDec:
		raw, err := math.LegacyNewDecFromStr(s)
		if err != nil {
			return OracleValue{}, err
		}
		if raw.IsNegative() || raw.GT(MaxDecValue) {
			return OracleValue{}, fmt.Errorf("dec value %s out of range", s)
		}
		return NewDecValue(raw), nil
	default:
		return OracleValue{}, fmt.Errorf("unknown number kind %d", kind)
	}
}

type valueJSON struct {
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// MarshalJSON implements json.Marshaler.
func (v OracleValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(valueJSON{Kind: v.kind.String(), Value: v.String()})
}

// UnmarshalJSON implements json.Unmarshaler.
func (v *OracleValue) UnmarshalJSON(bz []byte) error {
	var envelope valueJSON
	if err := json.Unmarshal(bz, &envelope); err != nil {
		return err
	}
	kind, err := NumberKindFromString(envelope.Kind)
	if err != nil {
		return err
	}
	parsed, err := ParseValue(kind, envelope.Value)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
