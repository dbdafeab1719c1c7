package types

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/oracle module sentinel errors
var (
	ErrKeyExists        = sdkerrors.Register(ModuleName, 1100, "data key already registered")
	ErrKeyNotActive     = sdkerrors.Register(ModuleName, 1101, "data key not registered")
	ErrKindMismatch     = sdkerrors.Register(ModuleName, 1102, "value kind does not match key config")
	ErrExtractionFailed = sdkerrors.Register(ModuleName, 1103, "could not extract numeric value from document")
	ErrInvalidSchedule  = sdkerrors.Register(ModuleName, 1104, "aggregation schedule must be positive")
	ErrInvalidConfig    = sdkerrors.Register(ModuleName, 1105, "invalid key config")
	ErrNotAllowed       = sdkerrors.Register(ModuleName, 1106, "account is not authorized for this action")
	ErrTooManyKeys      = sdkerrors.Register(ModuleName, 1107, "active key limit reached")
)
