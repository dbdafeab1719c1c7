package types

import (
	"context"
)

// Registry actions checked against the access control keeper.
const (
	ActionRegisterKey    = "oracle/register_key"
	ActionRemoveKey      = "oracle/remove_key"
	ActionSetSource      = "oracle/set_source"
	ActionAddProvider    = "oracle/add_provider"
	ActionRemoveProvider = "oracle/remove_provider"
)

// AccessControlKeeper answers whether an account may run a registry action.
// The hosting app decides what backs it, typically x/gov or a group policy.
type AccessControlKeeper interface {
	IsAuthorized(ctx context.Context, actor string, action string) bool
}
