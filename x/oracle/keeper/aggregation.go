package keeper

import (
	"context"
	"strconv"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vhurryharry/Oracle/x/oracle/calculations"
	"github.com/vhurryharry/Oracle/x/oracle/types"
)

// RunScheduledAggregations reduces and publishes every key whose schedule
// divides the current block height. Called from the end blocker.
func (k Keeper) RunScheduledAggregations(ctx context.Context) error {
	sdkCtx := sdk.UnwrapSDKContext(ctx)
	height := sdkCtx.BlockHeight()

	type dueKey struct {
		key    []byte
		config types.KeyConfig
	}
	var due []dueKey
	err := k.Configs.Walk(ctx, nil, func(key []byte, config types.KeyConfig) (bool, error) {
		if config.Schedule == 0 {
			k.LogError("stored key config has zero schedule", types.Aggregation, "key", keyText(key))
			return false, nil
		}
		if height%int64(config.Schedule) == 0 {
			due = append(due, dueKey{key: key, config: config})
		}
		return false, nil
	})
	if err != nil {
		return err
	}

	for _, entry := range due {
		k.AggregateKey(ctx, entry.key, entry.config)
	}
	return nil
}

// AggregateKey drains every buffer under key, reduces the observations of
// current providers and publishes the result to the shared result store.
func (k Keeper) AggregateKey(ctx context.Context, key []byte, config types.KeyConfig) {
	values := k.drainFeeds(ctx, key)
	result := calculations.Aggregate(config.Op, config.Kind, values)
	k.PublishValue(ctx, key, result)

	sdkCtx := sdk.UnwrapSDKContext(ctx)
	sdkCtx.EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeAggregate,
			sdk.NewAttribute(types.AttributeKeyDataKey, keyText(key)),
			sdk.NewAttribute(types.AttributeKeyOp, config.Op.String()),
			sdk.NewAttribute(types.AttributeKeyValue, result.String()),
			sdk.NewAttribute(types.AttributeKeyKind, result.Kind().String()),
			sdk.NewAttribute(types.AttributeKeyCount, strconv.Itoa(len(values))),
		),
	)
	k.LogInfo("published aggregate", types.Aggregation,
		"key", keyText(key),
		"op", config.Op.String(),
		"value", result.String(),
		"observations", len(values))
}

// drainFeeds removes every buffer under key and returns the values submitted
// by providers still in the active set. Buffers of revoked providers are
// discarded unread in the same sweep.
func (k Keeper) drainFeeds(ctx context.Context, key []byte) []types.OracleValue {
	iter, err := k.Feeds.Iterate(ctx, collections.NewPrefixedPairRange[[]byte, sdk.AccAddress](key))
	if err != nil {
		panic(err)
	}
	defer iter.Close()

	var values []types.OracleValue
	for ; iter.Valid(); iter.Next() {
		pair, err := iter.Key()
		if err != nil {
			panic(err)
		}
		if k.IsProvider(ctx, pair.K2()) {
			history, err := iter.Value()
			if err != nil {
				panic(err)
			}
			values = append(values, history.Values[:]...)
		}
		if err := k.Feeds.Remove(ctx, pair); err != nil {
			panic(err)
		}
	}
	return values
}

// removeFeeds discards every buffer under key without reading the values.
func (k Keeper) removeFeeds(ctx context.Context, key []byte) {
	iter, err := k.Feeds.Iterate(ctx, collections.NewPrefixedPairRange[[]byte, sdk.AccAddress](key))
	if err != nil {
		panic(err)
	}
	defer iter.Close()

	for ; iter.Valid(); iter.Next() {
		pair, err := iter.Key()
		if err != nil {
			panic(err)
		}
		if err := k.Feeds.Remove(ctx, pair); err != nil {
			panic(err)
		}
	}
}
