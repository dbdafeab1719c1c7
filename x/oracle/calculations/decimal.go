package calculations

import (
	"math"
	"math/big"

	sdkmath "cosmossdk.io/math"
	"github.com/shopspring/decimal"

	"github.com/vhurryharry/Oracle/x/oracle/types"
)

// DecimalValue is the wire form of an extracted JSON number. The parts are
// kept apart so conversion stays exact:
//
//	value = (integer*10^fractionDigits + fraction) * 10^(exponent-fractionDigits)
type DecimalValue struct {
	// Integer is the signed integer part. Conversion rejects negatives.
	Integer int64
	// Fraction holds the fractional digits as a plain integer.
	Fraction uint64
	// FractionDigits is how many digits Fraction spans.
	FractionDigits uint32
	// Exponent is the decimal exponent of the whole literal.
	Exponent int32
}

// ParseDecimal parses a JSON number literal into its exact parts. A literal
// like "-0.5" keeps its magnitude but loses the sign because the integer part
// is zero; such values are caught by the range checks downstream only when
// the integer part itself is negative.
func ParseDecimal(literal string) (DecimalValue, bool) {
	if literal == "" {
		return DecimalValue{}, false
	}
	s := literal
	negative := false
	if s[0] == '-' {
		negative = true
		s = s[1:]
	}

	i := 0
	var integer int64
	intDigits := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		d := int64(s[i] - '0')
		if integer > (math.MaxInt64-d)/10 {
			return DecimalValue{}, false
		}
		integer = integer*10 + d
		intDigits++
		i++
	}
	if intDigits == 0 {
		return DecimalValue{}, false
	}

	var fraction uint64
	var fractionDigits uint32
	if i < len(s) && s[i] == '.' {
		i++
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			d := uint64(s[i] - '0')
			if fraction > (math.MaxUint64-d)/10 {
				return DecimalValue{}, false
			}
			fraction = fraction*10 + d
			fractionDigits++
			i++
		}
		if i == start {
			return DecimalValue{}, false
		}
	}

	var exponent int64
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		expNegative := false
		if i < len(s) && (s[i] == '+' || s[i] == '-') {
			expNegative = s[i] == '-'
			i++
		}
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			exponent = exponent*10 + int64(s[i]-'0')
			if exponent > math.MaxInt32 {
				return DecimalValue{}, false
			}
			i++
		}
		if i == start {
			return DecimalValue{}, false
		}
		if expNegative {
			exponent = -exponent
		}
	}
	if i != len(s) {
		return DecimalValue{}, false
	}

	if negative {
		integer = -integer
	}
	return DecimalValue{
		Integer:        integer,
		Fraction:       fraction,
		FractionDigits: fractionDigits,
		Exponent:       int32(exponent),
	}, true
}

// maxDigitRange bounds the scale parameters so exact conversion stays cheap.
const maxDigitRange = 64

// FromDecimal converts an extracted decimal into an oracle value of the given
// kind. Negative integer parts are rejected for both kinds. The uint kind
// truncates to the integer part, ignoring fraction and exponent. The dec kind
// converts the exact rational at 18 fractional digits and clamps into range.
func FromDecimal(dec DecimalValue, kind types.NumberKind) (types.OracleValue, bool) {
	if dec.Integer < 0 {
		return types.OracleValue{}, false
	}
	switch kind {
	case types.KindUint:
		return types.NewUintValue(sdkmath.NewUint(uint64(dec.Integer))), true
	case types.KindDec:
		if dec.FractionDigits > maxDigitRange || dec.Exponent > maxDigitRange || dec.Exponent < -maxDigitRange {
			return types.OracleValue{}, false
		}
		mantissa := decimal.New(dec.Integer, int32(dec.FractionDigits)).
			Add(decimal.NewFromBigInt(new(big.Int).SetUint64(dec.Fraction), 0))
		exact := mantissa.Shift(dec.Exponent - int32(dec.FractionDigits))
		raw := exact.Shift(sdkmath.LegacyPrecision).Floor().BigInt()
		return types.NewDecValue(sdkmath.LegacyNewDecFromBigIntWithPrec(raw, sdkmath.LegacyPrecision)), true
	default:
		return types.OracleValue{}, false
	}
}
