package issuance_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/launchforge/launchpad-go/amm"
	"github.com/launchforge/launchpad-go/chain"
	"github.com/launchforge/launchpad-go/farm"
	"github.com/launchforge/launchpad-go/issuance"
)

func initErr(t *testing.T, params issuance.SetupParams) error {
	t.Helper()
	rt := chain.NewRuntime(nil)
	rt.SetNow(baseTime)
	pools := amm.NewRegistry(rt, nil)
	farms := farm.NewRegistry(rt)
	plat := &testPlatform{}
	in := issuance.New(rt, chain.AddressFromSeed("t:i"), plat, pools, farms)
	if params.Owner == chain.ZeroAddress {
		params.Owner = chain.AddressFromSeed("t:owner")
	}
	return in.Initialize(chain.Tx{Caller: params.Owner}, params)
}

func TestSetupValidation(t *testing.T) {
	receiver := chain.AddressFromSeed("t:receiver")
	base := func() issuance.SetupParams { return singleCategory(10, 100, 100) }

	cases := []struct {
		name   string
		mutate func(*issuance.SetupParams)
		want   error
	}{
		{"no categories", func(p *issuance.SetupParams) { p.Categories = nil }, issuance.ErrCategoryCount},
		{"too many categories", func(p *issuance.SetupParams) {
			p.Categories = make([]issuance.Category, 257)
			for i := range p.Categories {
				p.Categories[i] = issuance.Category{Price: 1, Supply: 1}
			}
		}, issuance.ErrCategoryCount},
		{"unsorted categories", func(p *issuance.SetupParams) {
			p.Categories = []issuance.Category{{Price: 5, Supply: 50}, {Price: 1, Supply: 50}}
		}, issuance.ErrCategoriesNotSorted},
		{"liquidity reserve above guaranteed raise", func(p *issuance.SetupParams) {
			// raise = 100 units * 10 = 1000; reserve = 200 * 11 = 2200
			p.Liquidity = issuance.LiquidityConfig{Amount: 200, Price: 11}
		}, issuance.ErrInsufficientRaise},
		{"vesting receiver without amount", func(p *issuance.SetupParams) {
			p.Vesting = issuance.VestingConfig{Receiver: receiver}
		}, issuance.ErrVestingParams},
		{"vesting amount without receiver", func(p *issuance.SetupParams) {
			p.Vesting = issuance.VestingConfig{Amount: 10}
		}, issuance.ErrVestingParams},
		{"vesting duration above ceiling", func(p *issuance.SetupParams) {
			p.Vesting = issuance.VestingConfig{Receiver: receiver, Amount: 10, Duration: issuance.MaxVestingDuration + 1}
		}, issuance.ErrVestingParams},
		{"farm amount without duration", func(p *issuance.SetupParams) {
			p.Farm = issuance.FarmConfig{Amount: 5}
		}, issuance.ErrFarmParams},
		{"farm duration without amount", func(p *issuance.SetupParams) {
			p.Farm = issuance.FarmConfig{Duration: 100}
		}, issuance.ErrFarmParams},
		{"refund deadline too close", func(p *issuance.SetupParams) {
			p.Refund = issuance.RefundConfig{MintEnd: baseTime + issuance.MinRefundDelay}
		}, issuance.ErrRefundParams},
		{"refund deadline too far", func(p *issuance.SetupParams) {
			p.Refund = issuance.RefundConfig{MintEnd: baseTime + issuance.MaxRefundHorizon + 1}
		}, issuance.ErrRefundParams},
		{"royalty above ceiling", func(p *issuance.SetupParams) {
			p.RoyaltyBps = issuance.MaxRoyaltyBps + 1
		}, issuance.ErrRoyaltyTooHigh},
		{"cap above category supply", func(p *issuance.SetupParams) {
			p.Cap = 101
		}, issuance.ErrCapTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			params := base()
			tc.mutate(&params)
			require.ErrorIs(t, initErr(t, params), tc.want)
		})
	}
}

func TestSetupValidConfigurations(t *testing.T) {
	receiver := chain.AddressFromSeed("t:receiver")

	params := singleCategory(10, 120, 100)
	params.RoyaltyBps = issuance.MaxRoyaltyBps
	params.Refund = issuance.RefundConfig{MintEnd: baseTime + issuance.MinRefundDelay + 1}
	params.Vesting = issuance.VestingConfig{Receiver: receiver, Amount: 10, Duration: issuance.MaxVestingDuration}
	params.Liquidity = issuance.LiquidityConfig{Amount: 50, Price: 2}
	params.Farm = issuance.FarmConfig{Amount: 20, Duration: 1000}
	require.NoError(t, initErr(t, params))

	// Instant-unlock vesting is valid.
	params = singleCategory(10, 100, 100)
	params.Vesting = issuance.VestingConfig{Receiver: receiver, Amount: 10}
	require.NoError(t, initErr(t, params))
}

func TestInitializeRetryAfterRejectedParams(t *testing.T) {
	rt := chain.NewRuntime(nil)
	rt.SetNow(baseTime)
	pools := amm.NewRegistry(rt, nil)
	farms := farm.NewRegistry(rt)
	in := issuance.New(rt, chain.AddressFromSeed("t:i"), &testPlatform{}, pools, farms)
	owner := chain.AddressFromSeed("t:owner")

	bad := singleCategory(1, 100, 100)
	bad.Cap = 101
	bad.Owner = owner
	require.ErrorIs(t, in.Initialize(chain.Tx{Caller: owner}, bad), issuance.ErrCapTooLarge)

	good := singleCategory(1, 100, 100)
	good.Owner = owner
	require.NoError(t, in.Initialize(chain.Tx{Caller: owner}, good))
	require.Equal(t, uint64(100), in.Cap())
}

func TestInitializeRunsOnce(t *testing.T) {
	w := newWorld(t, singleCategory(1, 100, 100), 0)
	err := w.in.Initialize(chain.Tx{Caller: w.owner}, singleCategory(1, 100, 100))
	require.ErrorIs(t, err, issuance.ErrAlreadyInitialized)
}

func TestMinGuaranteedRaise(t *testing.T) {
	cats := []issuance.Category{
		{Price: 1, Supply: 100},
		{Price: 5, Supply: 50},
		{Price: 20, Supply: 10},
	}

	// Budget consumes the cheap tiers first.
	raise, err := issuance.MinGuaranteedRaise(cats, 120)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(100*1+20*5), raise)

	// Budget beyond all supply takes everything.
	raise, err = issuance.MinGuaranteedRaise(cats, 1000)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(100+250+200), raise)

	// Zero budget raises nothing.
	raise, err = issuance.MinGuaranteedRaise(cats, 0)
	require.NoError(t, err)
	require.Zero(t, raise.Sign())

	_, err = issuance.MinGuaranteedRaise([]issuance.Category{{Price: 2}, {Price: 1}}, 10)
	require.ErrorIs(t, err, issuance.ErrCategoriesNotSorted)
}
