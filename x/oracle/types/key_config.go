package types

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
)

// AggregateOp selects how drained observations reduce to one value.
type AggregateOp uint8

const (
	// OpSum adds every observation, saturating at the kind's maximum.
	OpSum AggregateOp = iota
	// OpAverage divides the saturating sum by the observation count,
	// truncating toward zero.
	OpAverage
)

func (o AggregateOp) String() string {
	switch o {
	case OpSum:
		return "sum"
	case OpAverage:
		return "average"
	default:
		return fmt.Sprintf("AggregateOp(%d)", uint8(o))
	}
}

// AggregateOpFromString parses the form produced by String.
func AggregateOpFromString(s string) (AggregateOp, error) {
	switch s {
	case "sum":
		return OpSum, nil
	case "average":
		return OpAverage, nil
	default:
		return 0, fmt.Errorf("unknown aggregate op %q", s)
	}
}

// maxSchedule keeps block height modulo arithmetic inside int64.
const maxSchedule = 1<<63 - 1

// KeyConfig declares how one registered data key is fed and aggregated.
type KeyConfig struct {
	// JsonPath is the top-level field extracted from fetched documents.
	JsonPath []byte `json:"json_path"`
	// Kind is the numeric domain submissions must carry.
	Kind NumberKind `json:"kind"`
	// Op reduces drained observations when the schedule fires.
	Op AggregateOp `json:"op"`
	// Schedule triggers aggregation on block heights divisible by it.
	Schedule uint64 `json:"schedule"`
}

// Validate rejects configs the aggregation pipeline cannot run.
func (c KeyConfig) Validate() error {
	if c.Schedule == 0 {
		return errorsmod.Wrap(ErrInvalidSchedule, "schedule cannot be zero")
	}
	if c.Schedule > maxSchedule {
		return errorsmod.Wrapf(ErrInvalidSchedule, "schedule %d exceeds block height range", c.Schedule)
	}
	switch c.Kind {
	case KindUint, KindDec:
	default:
		return errorsmod.Wrapf(ErrInvalidConfig, "unknown number kind %d", c.Kind)
	}
	switch c.Op {
	case OpSum, OpAverage:
	default:
		return errorsmod.Wrapf(ErrInvalidConfig, "unknown aggregate op %d", c.Op)
	}
	return nil
}
