package keeper

import (
	"context"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vhurryharry/Oracle/x/oracle/types"
)

// SubmitValue records one observation under (key, provider). The first
// submission starts a zero-padded buffer, later ones push the oldest value
// out. Provider membership is deliberately not checked here: unauthorized
// buffers are filtered out when the key aggregates.
func (k Keeper) SubmitValue(ctx context.Context, provider sdk.AccAddress, key []byte, value types.OracleValue) error {
	if !k.IsActiveKey(ctx, key) {
		return errorsmod.Wrapf(types.ErrKeyNotActive, "key %s", keyText(key))
	}
	config, found := k.GetKeyConfig(ctx, key)
	if !found {
		return errorsmod.Wrapf(types.ErrKeyNotActive, "no config for key %s", keyText(key))
	}
	if value.Kind() != config.Kind {
		return errorsmod.Wrapf(types.ErrKindMismatch,
			"submitted %s, key expects %s", value.Kind(), config.Kind)
	}

	history, found := k.GetFeedHistory(ctx, key, provider)
	if !found {
		history = types.NewFeedHistory(value)
	} else {
		history.Push(value)
	}
	k.SetFeedHistory(ctx, key, provider, history)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeNewData,
			sdk.NewAttribute(types.AttributeKeyProvider, provider.String()),
			sdk.NewAttribute(types.AttributeKeyDataKey, keyText(key)),
			sdk.NewAttribute(types.AttributeKeyValue, value.String()),
			sdk.NewAttribute(types.AttributeKeyKind, value.Kind().String()),
		),
	)
	k.LogDebug("accepted observation", types.Feeds,
		"key", keyText(key), "provider", provider.String(), "value", value.String())
	return nil
}

// GetFeedHistory returns one provider's buffer under key.
func (k Keeper) GetFeedHistory(ctx context.Context, key []byte, provider sdk.AccAddress) (types.FeedHistory, bool) {
	history, err := k.Feeds.Get(ctx, collections.Join(key, provider))
	if err != nil {
		return types.FeedHistory{}, false
	}
	return history, true
}

// SetFeedHistory writes one provider buffer without checks. Used by genesis
// import and SubmitValue.
func (k Keeper) SetFeedHistory(ctx context.Context, key []byte, provider sdk.AccAddress, history types.FeedHistory) {
	if err := k.Feeds.Set(ctx, collections.Join(key, provider), history); err != nil {
		panic(err)
	}
}

// GetAllFeeds returns every provider buffer in store order.
func (k Keeper) GetAllFeeds(ctx context.Context) []types.FeedRecord {
	iter, err := k.Feeds.Iterate(ctx, nil)
	if err != nil {
		panic(err)
	}
	defer iter.Close()

	var records []types.FeedRecord
	for ; iter.Valid(); iter.Next() {
		pair, err := iter.Key()
		if err != nil {
			panic(err)
		}
		history, err := iter.Value()
		if err != nil {
			panic(err)
		}
		records = append(records, types.FeedRecord{
			Key:      pair.K1(),
			Provider: pair.K2().String(),
			History:  history,
		})
	}
	return records
}
