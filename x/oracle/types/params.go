package types

import (
	"fmt"

	paramtypes "github.com/cosmos/cosmos-sdk/x/params/types"
)

var _ paramtypes.ParamSet = (*Params)(nil)

// Parameter store keys
var (
	KeyMinSchedule   = []byte("MinSchedule")
	KeyMaxActiveKeys = []byte("MaxActiveKeys")
)

// ParamKeyTable the param key table for launch module
func ParamKeyTable() paramtypes.KeyTable {
	return paramtypes.NewKeyTable().RegisterParamSet(&Params{})
}

// Params defines the parameters for the module.
type Params struct {
	// MinSchedule is the smallest aggregation schedule a key may register.
	MinSchedule uint64 `json:"min_schedule" yaml:"min_schedule"`
	// MaxActiveKeys caps the registered key count, zero means unbounded.
	MaxActiveKeys uint64 `json:"max_active_keys" yaml:"max_active_keys"`
}

// NewParams creates a new Params instance
func NewParams(minSchedule uint64, maxActiveKeys uint64) Params {
	return Params{
		MinSchedule:   minSchedule,
		MaxActiveKeys: maxActiveKeys,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(1, 0)
}

// ParamSetPairs get the params.ParamSet
func (p *Params) ParamSetPairs() paramtypes.ParamSetPairs {
	return paramtypes.ParamSetPairs{
		paramtypes.NewParamSetPair(KeyMinSchedule, &p.MinSchedule, validateMinSchedule),
		paramtypes.NewParamSetPair(KeyMaxActiveKeys, &p.MaxActiveKeys, validateMaxActiveKeys),
	}
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validateMinSchedule(p.MinSchedule); err != nil {
		return err
	}
	if err := validateMaxActiveKeys(p.MaxActiveKeys); err != nil {
		return err
	}
	return nil
}

// validateMinSchedule validates the MinSchedule param
func validateMinSchedule(v interface{}) error {
	minSchedule, ok := v.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", v)
	}

	if minSchedule == 0 {
		return fmt.Errorf("min schedule must be positive: %d", minSchedule)
	}

	return nil
}

// validateMaxActiveKeys validates the MaxActiveKeys param
func validateMaxActiveKeys(v interface{}) error {
	_, ok := v.(uint64)
	if !ok {
		return fmt.Errorf("invalid parameter type: %T", v)
	}

	return nil
}
