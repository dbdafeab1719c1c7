package calculations

import (
	sdkmath "cosmossdk.io/math"

	"github.com/vhurryharry/Oracle/x/oracle/types"
)

// Aggregate reduces drained observations into one published value.
// Observations of another kind are dropped before reducing. An empty or fully
// filtered batch yields the kind's zero.
func Aggregate(op types.AggregateOp, kind types.NumberKind, values []types.OracleValue) types.OracleValue {
	switch kind {
	case types.KindDec:
		nums := make([]sdkmath.LegacyDec, 0, len(values))
		for _, v := range values {
			if v.Kind() == kind {
				nums = append(nums, v.Dec())
			}
		}
		return types.NewDecValue(reduce(op, nums, sdkmath.LegacyZeroDec(), addDec, quoDec))
	case types.KindUint:
		nums := make([]sdkmath.Uint, 0, len(values))
		for _, v := range values {
			if v.Kind() == kind {
				nums = append(nums, v.Uint())
			}
		}
		return types.NewUintValue(reduce(op, nums, sdkmath.ZeroUint(), addUint, quoUint))
	default:
		return types.ZeroValue(kind)
	}
}

// reduce folds nums under op. Unknown ops and empty input return zero.
func reduce[N any](op types.AggregateOp, nums []N, zero N, add func(N, N) N, quo func(N, uint64) N) N {
	switch op {
	case types.OpSum:
		return fold(nums, zero, add)
	case types.OpAverage:
		if len(nums) == 0 {
			return zero
		}
		return quo(fold(nums, zero, add), uint64(len(nums)))
	default:
		return zero
	}
}

func fold[N any](nums []N, zero N, add func(N, N) N) N {
	sum := zero
	for _, n := range nums {
		sum = add(sum, n)
	}
	return sum
}

// addUint saturates at the uint kind's maximum.
func addUint(a, b sdkmath.Uint) sdkmath.Uint {
	sum := a.Add(b)
	if sum.GT(types.MaxUintValue) {
		return types.MaxUintValue
	}
	return sum
}

// quoUint truncates toward zero. A zero divisor yields zero.
func quoUint(sum sdkmath.Uint, n uint64) sdkmath.Uint {
	if n == 0 {
		return sdkmath.ZeroUint()
	}
	return sum.Quo(sdkmath.NewUint(n))
}

// addDec saturates at the dec kind's maximum.
func addDec(a, b sdkmath.LegacyDec) sdkmath.LegacyDec {
	sum := a.Add(b)
	if sum.GT(types.MaxDecValue) {
		return types.MaxDecValue
	}
	return sum
}

// quoDec truncates toward zero. A zero divisor yields zero.
func quoDec(sum sdkmath.LegacyDec, n uint64) sdkmath.LegacyDec {
	if n == 0 {
		return sdkmath.LegacyZeroDec()
	}
	return sum.QuoTruncate(sdkmath.LegacyNewDec(int64(n)))
}
