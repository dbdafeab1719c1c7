package keeper_test

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"go.uber.org/mock/gomock"

	"github.com/vhurryharry/Oracle/testutil/sample"
	"github.com/vhurryharry/Oracle/x/oracle/types"
)

func (s *KeeperTestSuite) TestRegisterKey() {
	s.allowAdmin()
	key := []byte("btc/usd")

	config := s.registerKey(key, types.KindUint, types.OpSum, 5)

	s.Require().True(s.k.IsActiveKey(s.ctx, key))
	stored, found := s.k.GetKeyConfig(s.ctx, key)
	s.Require().True(found)
	s.Require().Equal(config, stored)
	s.Require().ElementsMatch([][]byte{key}, s.k.GetAllKeys(s.ctx))

	event, found := s.findEvent(types.EventTypeRegisterKey)
	s.Require().True(found)
	hasKey := false
	for _, attr := range event.Attributes {
		if attr.Key == types.AttributeKeyDataKey {
			hasKey = true
		}
	}
	s.Require().True(hasKey, "register event should carry the data key")
}

func (s *KeeperTestSuite) TestRegisterKey_Duplicate() {
	s.allowAdmin()
	key := []byte("btc/usd")
	s.registerKey(key, types.KindUint, types.OpSum, 5)

	err := s.k.RegisterKey(s.ctx, s.admin, key, types.KeyConfig{
		Kind: types.KindDec, Op: types.OpAverage, Schedule: 10,
	})
	s.Require().ErrorIs(err, types.ErrKeyExists)

	// The original config stays in place.
	stored, found := s.k.GetKeyConfig(s.ctx, key)
	s.Require().True(found)
	s.Require().Equal(types.KindUint, stored.Kind)
}

func (s *KeeperTestSuite) TestRegisterKey_EmptyKey() {
	s.allowAdmin()
	err := s.k.RegisterKey(s.ctx, s.admin, nil, types.KeyConfig{
		Kind: types.KindUint, Op: types.OpSum, Schedule: 5,
	})
	s.Require().ErrorIs(err, types.ErrInvalidConfig)
}

func (s *KeeperTestSuite) TestRegisterKey_ZeroSchedule() {
	s.allowAdmin()
	err := s.k.RegisterKey(s.ctx, s.admin, []byte("btc/usd"), types.KeyConfig{
		Kind: types.KindUint, Op: types.OpSum, Schedule: 0,
	})
	s.Require().ErrorIs(err, types.ErrInvalidSchedule)
	s.Require().False(s.k.IsActiveKey(s.ctx, []byte("btc/usd")))
}

func (s *KeeperTestSuite) TestRegisterKey_BelowMinSchedule() {
	s.allowAdmin()
	s.Require().NoError(s.k.SetParams(s.ctx, types.NewParams(10, 0)))

	err := s.k.RegisterKey(s.ctx, s.admin, []byte("btc/usd"), types.KeyConfig{
		Kind: types.KindUint, Op: types.OpSum, Schedule: 5,
	})
	s.Require().ErrorIs(err, types.ErrInvalidSchedule)
}

func (s *KeeperTestSuite) TestRegisterKey_MaxActiveKeys() {
	s.allowAdmin()
	s.Require().NoError(s.k.SetParams(s.ctx, types.NewParams(1, 1)))
	s.registerKey([]byte("btc/usd"), types.KindUint, types.OpSum, 5)

	err := s.k.RegisterKey(s.ctx, s.admin, []byte("eth/usd"), types.KeyConfig{
		Kind: types.KindUint, Op: types.OpSum, Schedule: 5,
	})
	s.Require().ErrorIs(err, types.ErrTooManyKeys)
}

func (s *KeeperTestSuite) TestRegistryRejectsUnauthorizedActor() {
	intruder := sample.AccAddress()
	provider := sample.AccAddressBytes()
	key := []byte("btc/usd")
	config := types.KeyConfig{Kind: types.KindUint, Op: types.OpSum, Schedule: 5}

	s.accessKeeper.EXPECT().
		IsAuthorized(gomock.Any(), intruder, gomock.Any()).
		Return(false).
		Times(5)

	s.Require().ErrorIs(s.k.RegisterKey(s.ctx, intruder, key, config), types.ErrNotAllowed)
	s.Require().ErrorIs(s.k.RemoveKey(s.ctx, intruder, key), types.ErrNotAllowed)
	s.Require().ErrorIs(s.k.SetSource(s.ctx, intruder, key, []byte("https://prices.example")), types.ErrNotAllowed)
	s.Require().ErrorIs(s.k.AddProvider(s.ctx, intruder, provider), types.ErrNotAllowed)
	s.Require().ErrorIs(s.k.RemoveProvider(s.ctx, intruder, provider), types.ErrNotAllowed)

	s.Require().False(s.k.IsActiveKey(s.ctx, key))
	s.Require().False(s.k.IsProvider(s.ctx, provider))
}

func (s *KeeperTestSuite) TestRemoveKey_DiscardsConfigAndFeeds() {
	s.allowAdmin()
	key := []byte("btc/usd")
	provider := sample.AccAddressBytes()

	s.registerKey(key, types.KindUint, types.OpSum, 5)
	s.Require().NoError(s.k.SetSource(s.ctx, s.admin, key, []byte("https://prices.example/btc")))
	s.Require().NoError(s.k.SubmitValue(s.ctx, provider, key, types.NewUintValue(math.NewUint(3))))

	s.Require().NoError(s.k.RemoveKey(s.ctx, s.admin, key))

	s.Require().False(s.k.IsActiveKey(s.ctx, key))
	_, found := s.k.GetKeyConfig(s.ctx, key)
	s.Require().False(found)
	_, found = s.k.GetFeedHistory(s.ctx, key, provider)
	s.Require().False(found)

	// The fetch source survives removal so a re-registered key reuses it.
	source, found := s.k.GetSource(s.ctx, key)
	s.Require().True(found)
	s.Require().Equal([]byte("https://prices.example/btc"), source)

	// The key can be registered again with a fresh config.
	s.registerKey(key, types.KindDec, types.OpAverage, 2)
	s.Require().True(s.k.IsActiveKey(s.ctx, key))
}

func (s *KeeperTestSuite) TestRemoveKey_Idempotent() {
	s.allowAdmin()
	s.Require().NoError(s.k.RemoveKey(s.ctx, s.admin, []byte("never/registered")))
}

func (s *KeeperTestSuite) TestProviders_AddRemove() {
	s.allowAdmin()
	provider := sample.AccAddressBytes()

	s.Require().NoError(s.k.AddProvider(s.ctx, s.admin, provider))
	s.Require().True(s.k.IsProvider(s.ctx, provider))
	s.Require().ElementsMatch([]sdk.AccAddress{provider}, s.k.GetAllProviders(s.ctx))

	// Idempotent on both sides.
	s.Require().NoError(s.k.AddProvider(s.ctx, s.admin, provider))
	s.Require().Len(s.k.GetAllProviders(s.ctx), 1)

	s.Require().NoError(s.k.RemoveProvider(s.ctx, s.admin, provider))
	s.Require().False(s.k.IsProvider(s.ctx, provider))
	s.Require().NoError(s.k.RemoveProvider(s.ctx, s.admin, provider))
}

func (s *KeeperTestSuite) TestSetSource() {
	s.allowAdmin()
	key := []byte("btc/usd")

	s.Require().NoError(s.k.SetSource(s.ctx, s.admin, key, []byte("https://a.example")))
	source, found := s.k.GetSource(s.ctx, key)
	s.Require().True(found)
	s.Require().Equal([]byte("https://a.example"), source)

	// Setting again replaces the previous source.
	s.Require().NoError(s.k.SetSource(s.ctx, s.admin, key, []byte("https://b.example")))
	source, found = s.k.GetSource(s.ctx, key)
	s.Require().True(found)
	s.Require().Equal([]byte("https://b.example"), source)

	records := s.k.GetAllSources(s.ctx)
	s.Require().Len(records, 1)
	s.Require().Equal(key, records[0].Key)
}

func (s *KeeperTestSuite) TestSetSource_EmptyKey() {
	s.allowAdmin()
	err := s.k.SetSource(s.ctx, s.admin, nil, []byte("https://a.example"))
	s.Require().ErrorIs(err, types.ErrInvalidConfig)
}

func (s *KeeperTestSuite) TestFeedTargets() {
	s.allowAdmin()
	fed := []byte("btc/usd")
	unfed := []byte("eth/usd")

	config := s.registerKey(fed, types.KindUint, types.OpSum, 5)
	s.registerKey(unfed, types.KindDec, types.OpAverage, 2)
	s.Require().NoError(s.k.SetSource(s.ctx, s.admin, fed, []byte("https://prices.example/btc")))

	targets, err := s.k.FeedTargets(s.ctx)
	s.Require().NoError(err)

	// Only the key with a fetch source becomes a target.
	s.Require().Len(targets, 1)
	s.Require().Equal(fed, targets[0].Key)
	s.Require().Equal([]byte("https://prices.example/btc"), targets[0].Source)
	s.Require().Equal(config.JsonPath, targets[0].JsonPath)
	s.Require().Equal(config.Kind, targets[0].Kind)
}
