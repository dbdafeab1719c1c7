package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vhurryharry/Oracle/x/oracle/types"
)

type (
	Keeper struct {
		storeService store.KVStoreService
		resultStore  store.KVStoreService
		logger       log.Logger

		// the address capable of executing governance-style parameter
		// updates. Typically, this should be the x/gov module account.
		authority string

		accessKeeper types.AccessControlKeeper

		// state
		params     collections.Item[types.Params]
		ActiveKeys collections.KeySet[[]byte]
		Configs    collections.Map[[]byte, types.KeyConfig]
		Sources    collections.Map[[]byte, []byte]
		Providers  collections.KeySet[sdk.AccAddress]
		Feeds      collections.Map[collections.Pair[[]byte, sdk.AccAddress], types.FeedHistory]
		Schema     collections.Schema
	}
)

var _ types.OracleLogger = Keeper{}

// NewKeeper wires the module state over two stores: the module store holds
// registry and feed state, the result store is the shared space aggregates
// are published into for other modules to read.
func NewKeeper(
	storeService store.KVStoreService,
	resultStore store.KVStoreService,
	logger log.Logger,
	authority string,

	accessKeeper types.AccessControlKeeper,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}

	sb := collections.NewSchemaBuilder(storeService)

	k := Keeper{
		storeService: storeService,
		resultStore:  resultStore,
		logger:       logger,
		authority:    authority,
		accessKeeper: accessKeeper,

		params:     collections.NewItem(sb, types.ParamsKey, "params", types.ParamsCodec),
		ActiveKeys: collections.NewKeySet(sb, types.ActiveKeysPrefix, "active_keys", collections.BytesKey),
		Configs:    collections.NewMap(sb, types.ConfigsPrefix, "configs", collections.BytesKey, types.KeyConfigCodec),
		Sources:    collections.NewMap(sb, types.SourcesPrefix, "sources", collections.BytesKey, collections.BytesValue),
		Providers:  collections.NewKeySet(sb, types.ProvidersPrefix, "providers", sdk.AccAddressKey),
		Feeds: collections.NewMap(
			sb,
			types.FeedsPrefix,
			"feeds",
			collections.PairKeyCodec(collections.BytesKey, sdk.AccAddressKey),
			types.FeedHistoryCodec,
		),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build oracle schema: %v", err))
	}
	k.Schema = schema

	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

func (k Keeper) LogInfo(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	k.Logger().Info(msg, append(keyvals, "subsystem", subSystem.String())...)
}

func (k Keeper) LogError(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	k.Logger().Error(msg, append(keyvals, "subsystem", subSystem.String())...)
}

func (k Keeper) LogWarn(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	k.Logger().Warn(msg, append(keyvals, "subsystem", subSystem.String())...)
}

func (k Keeper) LogDebug(msg string, subSystem types.SubSystem, keyvals ...interface{}) {
	k.Logger().Debug(msg, append(keyvals, "subsystem", subSystem.String())...)
}

// keyText renders a data key for logs and events.
func keyText(key []byte) string {
	return fmt.Sprintf("%X", key)
}
