package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/vhurryharry/Oracle/testutil/sample"
	oraclemodule "github.com/vhurryharry/Oracle/x/oracle/module"
	"github.com/vhurryharry/Oracle/x/oracle/types"
)

func (s *KeeperTestSuite) TestGenesis() {
	provider1 := sample.AccAddress()
	provider2 := sample.AccAddress()

	btcKey := []byte("btc/usd")
	ethKey := []byte("eth/usd")

	history := types.NewFeedHistory(types.NewUintValue(math.NewUint(42)))
	history.Push(types.NewUintValue(math.NewUint(43)))

	genesisState := types.GenesisState{
		Params: types.NewParams(2, 16),
		Keys: []types.RegisteredKey{
			{Key: btcKey, Config: types.KeyConfig{JsonPath: []byte("price"), Kind: types.KindUint, Op: types.OpSum, Schedule: 4}},
			{Key: ethKey, Config: types.KeyConfig{JsonPath: []byte("rate"), Kind: types.KindDec, Op: types.OpAverage, Schedule: 6}},
		},
		Sources: []types.SourceRecord{
			{Key: btcKey, Source: []byte("https://prices.example/btc")},
		},
		Providers: []string{provider1, provider2},
		Feeds: []types.FeedRecord{
			{Key: btcKey, Provider: provider1, History: history},
		},
	}
	s.Require().NoError(genesisState.Validate())

	// Initialize a keeper with this genesis state
	oraclemodule.InitGenesis(s.ctx, s.k, genesisState)

	// Export the state and verify it matches the original
	got := oraclemodule.ExportGenesis(s.ctx, s.k)
	s.Require().NotNil(got)

	s.Require().Equal(genesisState.Params, got.Params)
	s.Require().ElementsMatch(genesisState.Keys, got.Keys)
	s.Require().ElementsMatch(genesisState.Sources, got.Sources)
	s.Require().ElementsMatch(genesisState.Providers, got.Providers)

	// Feed values carry big integers, so compare them slot by slot.
	s.Require().Len(got.Feeds, 1)
	s.Require().Equal(btcKey, got.Feeds[0].Key)
	s.Require().Equal(provider1, got.Feeds[0].Provider)
	for i := range history.Values {
		s.Require().True(history.Values[i].Equal(got.Feeds[0].History.Values[i]), "slot %d", i)
	}
}

func (s *KeeperTestSuite) TestGenesisDefault() {
	oraclemodule.InitGenesis(s.ctx, s.k, *types.DefaultGenesis())
	got := oraclemodule.ExportGenesis(s.ctx, s.k)
	s.Require().NotNil(got)

	s.Require().Equal(types.DefaultParams(), got.Params)
	s.Require().Empty(got.Keys)
	s.Require().Empty(got.Providers)
	s.Require().Empty(got.Feeds)
}
