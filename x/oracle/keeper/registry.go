package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vhurryharry/Oracle/x/oracle/types"
)

// RegisterKey activates a data key with its aggregation config. The actor
// must be authorized for the register action.
func (k Keeper) RegisterKey(ctx context.Context, actor string, key []byte, config types.KeyConfig) error {
	if !k.accessKeeper.IsAuthorized(ctx, actor, types.ActionRegisterKey) {
		return errorsmod.Wrapf(types.ErrNotAllowed, "%s cannot register keys", actor)
	}
	if len(key) == 0 {
		return errorsmod.Wrap(types.ErrInvalidConfig, "data key cannot be empty")
	}
	if err := config.Validate(); err != nil {
		return err
	}
	params := k.GetParams(ctx)
	if config.Schedule < params.MinSchedule {
		return errorsmod.Wrapf(types.ErrInvalidSchedule,
			"schedule %d below minimum %d", config.Schedule, params.MinSchedule)
	}

	if k.IsActiveKey(ctx, key) {
		return errorsmod.Wrapf(types.ErrKeyExists, "key %s", keyText(key))
	}
	if params.MaxActiveKeys > 0 && uint64(len(k.GetAllKeys(ctx)))+1 > params.MaxActiveKeys {
		return errorsmod.Wrapf(types.ErrTooManyKeys, "limit %d", params.MaxActiveKeys)
	}

	k.SetActiveKey(ctx, key, config)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRegisterKey,
			sdk.NewAttribute(types.AttributeKeyDataKey, keyText(key)),
			sdk.NewAttribute(types.AttributeKeyKind, config.Kind.String()),
			sdk.NewAttribute(types.AttributeKeyOp, config.Op.String()),
			sdk.NewAttribute(types.AttributeKeySchedule, strconv.FormatUint(config.Schedule, 10)),
		),
	)
	k.LogInfo("registered data key", types.Registry,
		"key", keyText(key),
		"kind", config.Kind.String(),
		"op", config.Op.String(),
		"schedule", config.Schedule)
	return nil
}

// SetActiveKey writes a key and its config without authorization checks. Used
// by genesis import and the guarded registry entry points.
func (k Keeper) SetActiveKey(ctx context.Context, key []byte, config types.KeyConfig) {
	if err := k.ActiveKeys.Set(ctx, key); err != nil {
		panic(err)
	}
	if err := k.Configs.Set(ctx, key, config); err != nil {
		panic(err)
	}
}

// RemoveKey deactivates a data key, discarding its config and every feed
// buffer under it. Removing an unknown key is a no-op. The fetch source is
// kept so a re-registered key picks it up again.
func (k Keeper) RemoveKey(ctx context.Context, actor string, key []byte) error {
	if !k.accessKeeper.IsAuthorized(ctx, actor, types.ActionRemoveKey) {
		return errorsmod.Wrapf(types.ErrNotAllowed, "%s cannot remove keys", actor)
	}

	if err := k.ActiveKeys.Remove(ctx, key); err != nil {
		panic(err)
	}
	if err := k.Configs.Remove(ctx, key); err != nil {
		panic(err)
	}
	k.removeFeeds(ctx, key)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveKey,
			sdk.NewAttribute(types.AttributeKeyDataKey, keyText(key)),
		),
	)
	k.LogInfo("removed data key", types.Registry, "key", keyText(key))
	return nil
}

// SetSource stores the opaque fetch source for key. The bytes only matter to
// feeders, so nothing is validated and the key does not have to be registered
// yet.
func (k Keeper) SetSource(ctx context.Context, actor string, key, source []byte) error {
	if !k.accessKeeper.IsAuthorized(ctx, actor, types.ActionSetSource) {
		return errorsmod.Wrapf(types.ErrNotAllowed, "%s cannot set sources", actor)
	}
	if len(key) == 0 {
		return errorsmod.Wrap(types.ErrInvalidConfig, "data key cannot be empty")
	}
	k.SetSourceRaw(ctx, key, source)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeSetSource,
			sdk.NewAttribute(types.AttributeKeyDataKey, keyText(key)),
			sdk.NewAttribute(types.AttributeKeySource, string(source)),
		),
	)
	k.LogInfo("set fetch source", types.Registry, "key", keyText(key), "source", string(source))
	return nil
}

// SetSourceRaw writes a fetch source without authorization checks. Used by
// genesis import and the guarded SetSource entry point.
func (k Keeper) SetSourceRaw(ctx context.Context, key, source []byte) {
	if err := k.Sources.Set(ctx, key, source); err != nil {
		panic(err)
	}
}

// AddProvider allows an account to submit observations. Adding an existing
// provider is a no-op.
func (k Keeper) AddProvider(ctx context.Context, actor string, provider sdk.AccAddress) error {
	if !k.accessKeeper.IsAuthorized(ctx, actor, types.ActionAddProvider) {
		return errorsmod.Wrapf(types.ErrNotAllowed, "%s cannot add providers", actor)
	}
	k.SetProvider(ctx, provider)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAddProvider,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		),
	)
	k.LogInfo("added provider", types.Registry, "provider", provider.String())
	return nil
}

// SetProvider writes provider membership without authorization checks.
func (k Keeper) SetProvider(ctx context.Context, provider sdk.AccAddress) {
	if err := k.Providers.Set(ctx, provider); err != nil {
		panic(err)
	}
}

// RemoveProvider revokes submission rights. Buffers the provider already
// filled stay in place and are discarded unread by the next aggregation.
// Removing an unknown provider is a no-op.
func (k Keeper) RemoveProvider(ctx context.Context, actor string, provider sdk.AccAddress) error {
	if !k.accessKeeper.IsAuthorized(ctx, actor, types.ActionRemoveProvider) {
		return errorsmod.Wrapf(types.ErrNotAllowed, "%s cannot remove providers", actor)
	}
	if err := k.Providers.Remove(ctx, provider); err != nil {
		panic(err)
	}

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeRemoveProvider,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
		),
	)
	k.LogInfo("removed provider", types.Registry, "provider", provider.String())
	return nil
}

// IsActiveKey reports whether key is registered.
func (k Keeper) IsActiveKey(ctx context.Context, key []byte) bool {
	active, err := k.ActiveKeys.Has(ctx, key)
	if err != nil {
		panic(err)
	}
	return active
}

// IsProvider reports whether provider may submit observations.
func (k Keeper) IsProvider(ctx context.Context, provider sdk.AccAddress) bool {
	allowed, err := k.Providers.Has(ctx, provider)
	if err != nil {
		panic(err)
	}
	return allowed
}

// GetKeyConfig returns the aggregation config for key.
func (k Keeper) GetKeyConfig(ctx context.Context, key []byte) (types.KeyConfig, bool) {
	config, err := k.Configs.Get(ctx, key)
	if err != nil {
		return types.KeyConfig{}, false
	}
	return config, true
}

// GetSource returns the fetch source for key.
func (k Keeper) GetSource(ctx context.Context, key []byte) ([]byte, bool) {
	source, err := k.Sources.Get(ctx, key)
	if err != nil {
		return nil, false
	}
	return source, true
}

// GetAllKeys returns every registered data key in store order.
func (k Keeper) GetAllKeys(ctx context.Context) [][]byte {
	iter, err := k.ActiveKeys.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	defer iter.Close()

	keys, err := iter.Keys()
	if err != nil {
		panic(err)
	}
	return keys
}

// GetAllProviders returns every allowed provider in store order.
func (k Keeper) GetAllProviders(ctx context.Context) []sdk.AccAddress {
	iter, err := k.Providers.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	defer iter.Close()

	providers, err := iter.Keys()
	if err != nil {
		panic(err)
	}
	return providers
}

// GetAllSources returns every stored source record in store order.
func (k Keeper) GetAllSources(ctx context.Context) []types.SourceRecord {
	var records []types.SourceRecord
	err := k.Sources.Walk(ctx, nil, func(key, source []byte) (bool, error) {
		records = append(records, types.SourceRecord{Key: key, Source: source})
		return false, nil
	})
	if err != nil {
		panic(err)
	}
	return records
}

// FeedTargets assembles what feeders need for every registered key that has
// both a config and a fetch source.
func (k Keeper) FeedTargets(ctx context.Context) ([]types.FeedTarget, error) {
	var targets []types.FeedTarget
	for _, key := range k.GetAllKeys(ctx) {
		config, found := k.GetKeyConfig(ctx, key)
		if !found {
			k.LogError("registered key has no config", types.Registry, "key", keyText(key))
			continue
		}
		source, found := k.GetSource(ctx, key)
		if !found {
			continue
		}
		targets = append(targets, types.FeedTarget{
			Key:      key,
			Source:   source,
			JsonPath: config.JsonPath,
			Kind:     config.Kind,
		})
	}
	return targets, nil
}
