package keeper

import (
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vhurryharry/Oracle/x/oracle/keeper"
	"github.com/vhurryharry/Oracle/x/oracle/types"
)

// OracleMocks holds all the mock keepers for testing
type OracleMocks struct {
	AccessKeeper *MockAccessControlKeeper
}

// OracleKeeper returns a keeper whose access control allows every action.
func OracleKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	ctrl := gomock.NewController(t)
	accessKeeper := NewMockAccessControlKeeper(ctrl)
	accessKeeper.EXPECT().
		IsAuthorized(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(true).
		AnyTimes()

	k, ctx := OracleKeeperWithMock(t, accessKeeper)

	return k, ctx
}

func OracleKeeperReturningMocks(t testing.TB) (keeper.Keeper, sdk.Context, OracleMocks) {
	ctrl := gomock.NewController(t)
	accessKeeper := NewMockAccessControlKeeper(ctrl)

	k, ctx := OracleKeeperWithMock(t, accessKeeper)

	mocks := OracleMocks{
		AccessKeeper: accessKeeper,
	}

	return k, ctx, mocks
}

func OracleKeeperWithMock(
	t testing.TB,
	accessKeeper *MockAccessControlKeeper,
) (keeper.Keeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	resultStoreKey := storetypes.NewKVStoreKey(types.ResultStoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	stateStore.MountStoreWithDB(resultStoreKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	authority := authtypes.NewModuleAddress(govtypes.ModuleName)

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		runtime.NewKVStoreService(resultStoreKey),
		log.NewNopLogger(),
		authority.String(),
		accessKeeper,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return k, ctx
}
