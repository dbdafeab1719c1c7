package keeper

import (
	"context"

	"github.com/vhurryharry/Oracle/x/oracle/types"
)

// PublishValue writes value into the result store at the raw key bytes, where
// any module holding the result store key can read it back.
func (k Keeper) PublishValue(ctx context.Context, key []byte, value types.OracleValue) {
	bz, err := types.OracleValueCodec.Encode(value)
	if err != nil {
		panic(err)
	}
	if err := k.resultStore.OpenKVStore(ctx).Set(key, bz); err != nil {
		panic(err)
	}
}

// GetPublishedValue returns the aggregate last published for key. Unreadable
// bytes report as absent.
func (k Keeper) GetPublishedValue(ctx context.Context, key []byte) (types.OracleValue, bool) {
	bz, err := k.resultStore.OpenKVStore(ctx).Get(key)
	if err != nil {
		panic(err)
	}
	if bz == nil {
		return types.OracleValue{}, false
	}
	value, err := types.OracleValueCodec.Decode(bz)
	if err != nil {
		return types.OracleValue{}, false
	}
	return value, true
}

// PublishedValueOr returns the published aggregate for key, or def when
// nothing has been published.
func (k Keeper) PublishedValueOr(ctx context.Context, key []byte, def types.OracleValue) types.OracleValue {
	if value, found := k.GetPublishedValue(ctx, key); found {
		return value
	}
	return def
}
