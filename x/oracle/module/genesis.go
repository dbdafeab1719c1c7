package oracle

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/vhurryharry/Oracle/x/oracle/keeper"
	"github.com/vhurryharry/Oracle/x/oracle/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	// Set all the allowed providers
	for _, provider := range genState.Providers {
		addr, err := sdk.AccAddressFromBech32(provider)
		if err != nil {
			panic(err)
		}
		k.SetProvider(ctx, addr)
	}

	// Set all the registered keys with their configs
	for _, record := range genState.Keys {
		k.SetActiveKey(ctx, record.Key, record.Config)
	}

	// Set all the fetch sources
	for _, record := range genState.Sources {
		k.SetSourceRaw(ctx, record.Key, record.Source)
	}

	// Set all the provider feed buffers
	for _, record := range genState.Feeds {
		addr, err := sdk.AccAddressFromBech32(record.Provider)
		if err != nil {
			panic(err)
		}
		k.SetFeedHistory(ctx, record.Key, addr, record.History)
	}

	// this line is used by starport scaffolding # genesis/module/init
	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)

	// Export all registered keys with their configs
	for _, key := range k.GetAllKeys(ctx) {
		config, found := k.GetKeyConfig(ctx, key)
		if !found {
			continue
		}
		genesis.Keys = append(genesis.Keys, types.RegisteredKey{Key: key, Config: config})
	}

	genesis.Sources = k.GetAllSources(ctx)

	for _, provider := range k.GetAllProviders(ctx) {
		genesis.Providers = append(genesis.Providers, provider.String())
	}

	genesis.Feeds = k.GetAllFeeds(ctx)

	// this line is used by starport scaffolding # genesis/module/export

	return genesis
}
