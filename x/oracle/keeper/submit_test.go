package keeper_test

import (
	"cosmossdk.io/math"

	"github.com/vhurryharry/Oracle/testutil/sample"
	"github.com/vhurryharry/Oracle/x/oracle/types"
)

func (s *KeeperTestSuite) TestSubmitValue_UnknownKey() {
	provider := sample.AccAddressBytes()
	err := s.k.SubmitValue(s.ctx, provider, []byte("btc/usd"), types.NewUintValue(math.NewUint(3)))
	s.Require().ErrorIs(err, types.ErrKeyNotActive)
}

func (s *KeeperTestSuite) TestSubmitValue_KindMismatch() {
	s.allowAdmin()
	key := []byte("btc/usd")
	provider := sample.AccAddressBytes()
	s.registerKey(key, types.KindUint, types.OpSum, 5)

	err := s.k.SubmitValue(s.ctx, provider, key, types.NewDecValue(math.LegacyOneDec()))
	s.Require().ErrorIs(err, types.ErrKindMismatch)

	// A rejected submission leaves no buffer behind.
	_, found := s.k.GetFeedHistory(s.ctx, key, provider)
	s.Require().False(found)
}

func (s *KeeperTestSuite) TestSubmitValue_StartsZeroPaddedBuffer() {
	s.allowAdmin()
	key := []byte("btc/usd")
	provider := sample.AccAddressBytes()
	s.registerKey(key, types.KindUint, types.OpSum, 5)

	s.Require().NoError(s.k.SubmitValue(s.ctx, provider, key, types.NewUintValue(math.NewUint(3))))

	history, found := s.k.GetFeedHistory(s.ctx, key, provider)
	s.Require().True(found)
	s.Require().True(history.Values[0].Equal(types.NewUintValue(math.NewUint(3))))
	for i := 1; i < types.FeedHistorySize; i++ {
		s.Require().True(history.Values[i].Equal(types.ZeroValue(types.KindUint)), "slot %d", i)
	}

	event, found := s.findEvent(types.EventTypeNewData)
	s.Require().True(found)
	hasValue := false
	for _, attr := range event.Attributes {
		if attr.Key == types.AttributeKeyValue && attr.Value == "3" {
			hasValue = true
		}
	}
	s.Require().True(hasValue, "new data event should carry the submitted value")
}

func (s *KeeperTestSuite) TestSubmitValue_ShiftsOnRepeat() {
	s.allowAdmin()
	key := []byte("btc/usd")
	provider := sample.AccAddressBytes()
	s.registerKey(key, types.KindUint, types.OpSum, 5)

	s.Require().NoError(s.k.SubmitValue(s.ctx, provider, key, types.NewUintValue(math.NewUint(3))))
	s.Require().NoError(s.k.SubmitValue(s.ctx, provider, key, types.NewUintValue(math.NewUint(7))))

	history, found := s.k.GetFeedHistory(s.ctx, key, provider)
	s.Require().True(found)
	s.Require().True(history.Values[0].Equal(types.NewUintValue(math.NewUint(7))))
	s.Require().True(history.Values[1].Equal(types.NewUintValue(math.NewUint(3))))
	s.Require().True(history.Values[2].Equal(types.ZeroValue(types.KindUint)))
}

func (s *KeeperTestSuite) TestSubmitValue_ProvidersAreNotCheckedAtIntake() {
	s.allowAdmin()
	key := []byte("btc/usd")
	outsider := sample.AccAddressBytes()
	s.registerKey(key, types.KindUint, types.OpSum, 5)

	// Intake accepts anyone; membership only matters when the key drains.
	s.Require().False(s.k.IsProvider(s.ctx, outsider))
	s.Require().NoError(s.k.SubmitValue(s.ctx, outsider, key, types.NewUintValue(math.NewUint(3))))

	_, found := s.k.GetFeedHistory(s.ctx, key, outsider)
	s.Require().True(found)
}

func (s *KeeperTestSuite) TestSubmitValue_AfterKeyRemoval() {
	s.allowAdmin()
	key := []byte("btc/usd")
	provider := sample.AccAddressBytes()
	s.registerKey(key, types.KindUint, types.OpSum, 5)
	s.Require().NoError(s.k.RemoveKey(s.ctx, s.admin, key))

	err := s.k.SubmitValue(s.ctx, provider, key, types.NewUintValue(math.NewUint(3)))
	s.Require().ErrorIs(err, types.ErrKeyNotActive)
}

func (s *KeeperTestSuite) TestGetAllFeeds() {
	s.allowAdmin()
	key := []byte("btc/usd")
	provider1 := sample.AccAddressBytes()
	provider2 := sample.AccAddressBytes()
	s.registerKey(key, types.KindUint, types.OpSum, 5)

	s.Require().NoError(s.k.SubmitValue(s.ctx, provider1, key, types.NewUintValue(math.NewUint(3))))
	s.Require().NoError(s.k.SubmitValue(s.ctx, provider2, key, types.NewUintValue(math.NewUint(7))))

	records := s.k.GetAllFeeds(s.ctx)
	s.Require().Len(records, 2)
	providers := []string{records[0].Provider, records[1].Provider}
	s.Require().ElementsMatch([]string{provider1.String(), provider2.String()}, providers)
}
