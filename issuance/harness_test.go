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

const baseTime = int64(1_700_000_000)

type testPlatform struct {
	feeBps uint16
	sink   chain.Address
	admin  chain.Address
}

func (p *testPlatform) FeeBps() uint16        { return p.feeBps }
func (p *testPlatform) FeeSink() chain.Address { return p.sink }
func (p *testPlatform) Admin() chain.Address   { return p.admin }

type world struct {
	t     *testing.T
	rt    *chain.Runtime
	pools *amm.Registry
	farms *farm.Registry
	plat  *testPlatform
	in    *issuance.Instance

	owner chain.Address
	admin chain.Address
	sink  chain.Address
}

func newWorld(t *testing.T, params issuance.SetupParams, feeBps uint16) *world {
	t.Helper()
	w := &world{
		t:     t,
		owner: chain.AddressFromSeed("test:owner"),
		admin: chain.AddressFromSeed("test:admin"),
		sink:  chain.AddressFromSeed("test:feesink"),
	}
	w.rt = chain.NewRuntime(nil)
	w.rt.SetNow(baseTime)
	w.pools = amm.NewRegistry(w.rt, nil)
	w.farms = farm.NewRegistry(w.rt)
	w.plat = &testPlatform{feeBps: feeBps, sink: w.sink, admin: w.admin}

	if params.Owner == chain.ZeroAddress {
		params.Owner = w.owner
	}
	addr := chain.AddressFromSeed("test:instance")
	w.in = issuance.New(w.rt, addr, w.plat, w.pools, w.farms)
	require.NoError(t, w.in.Initialize(chain.Tx{Caller: w.owner}, params))
	w.pools.Bind(addr, w.in.Collection())
	return w
}

// singleCategory is the simplest valid parameter set: one open tier.
func singleCategory(price, supply, cap uint64) issuance.SetupParams {
	return issuance.SetupParams{
		Name:       "Test Drop",
		Symbol:     "TST",
		Categories: []issuance.Category{{Price: price, Supply: supply}},
		Cap:        cap,
	}
}

// mint funds the caller with the exact cost and mints.
func (w *world) mint(caller chain.Address, amount uint64, category int) []uint64 {
	w.t.Helper()
	ids, err := w.mintErr(caller, amount, category)
	require.NoError(w.t, err)
	return ids
}

func (w *world) mintErr(caller chain.Address, amount uint64, category int) ([]uint64, error) {
	w.t.Helper()
	price, fee, err := w.in.MintCost(amount, category)
	require.NoError(w.t, err)
	cost := new(big.Int).Add(price, fee).Uint64()
	require.NoError(w.t, w.rt.Fund(caller, cost))
	return w.in.Mint(chain.Tx{Caller: caller, Value: cost}, amount, category, nil)
}
