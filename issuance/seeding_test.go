package issuance_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/launchforge/launchpad-go/amm"
	"github.com/launchforge/launchpad-go/chain"
	"github.com/launchforge/launchpad-go/farm"
	"github.com/launchforge/launchpad-go/issuance"
)

// seedWorld sets up one open tier of 100 units at price 1 with a
// 50-unit liquidity reservation at price 2 and a 20-receipt farm.
func seedWorld(t *testing.T) *world {
	params := singleCategory(1, 100, 100)
	params.Liquidity = issuance.LiquidityConfig{Amount: 50, Price: 2}
	params.Farm = issuance.FarmConfig{Amount: 20, Duration: 1000}
	return newWorld(t, params, 0)
}

func (w *world) mintOut() {
	w.t.Helper()
	w.mint(chain.AddressFromSeed("t:minter"), 100, 0)
}

func TestLockLiquidityGating(t *testing.T) {
	w := seedWorld(t)
	anyone := chain.AddressFromSeed("t:anyone")

	err := w.in.LockLiquidity(chain.Tx{Caller: anyone}, 10, nil)
	require.ErrorIs(t, err, issuance.ErrMintNotComplete)

	w.mintOut()
	err = w.in.LockLiquidity(chain.Tx{Caller: anyone}, 0, nil)
	require.ErrorIs(t, err, issuance.ErrZeroAmount)

	plain := newWorld(t, singleCategory(1, 100, 100), 0)
	plain.mintOut()
	err = plain.in.LockLiquidity(chain.Tx{Caller: anyone}, 10, nil)
	require.ErrorIs(t, err, issuance.ErrFeatureDisabled)
}

func TestLockLiquidityBounds(t *testing.T) {
	w := seedWorld(t)
	w.mintOut()
	anyone := chain.AddressFromSeed("t:anyone")
	instance := w.in.Address()

	require.NoError(t, w.in.LockLiquidity(chain.Tx{Caller: anyone}, 30, nil))
	require.Equal(t, uint64(30), w.in.LockedLiquiditySupply())
	require.False(t, w.in.LiquidityFullySeeded())

	pool, ok := w.pools.Lookup(instance)
	require.True(t, ok)
	require.Equal(t, uint64(30), w.in.Collection().BalanceOf(pool.Address()))
	// 30 units at price 2 moved 60 of the 100 raised into the pool.
	require.Equal(t, uint64(40), w.rt.Balance(instance))
	require.Equal(t, uint64(60), pool.SharesOf(instance))

	// 30 more would overshoot the 50-unit reservation; nothing changes.
	issuedBefore := w.in.Collection().TotalIssued()
	err := w.in.LockLiquidity(chain.Tx{Caller: anyone}, 30, nil)
	require.ErrorIs(t, err, issuance.ErrAllocationExceeded)
	require.Equal(t, uint64(30), w.in.LockedLiquiditySupply())
	require.Equal(t, uint64(40), w.rt.Balance(instance))
	require.Equal(t, issuedBefore, w.in.Collection().TotalIssued())

	require.NoError(t, w.in.LockLiquidity(chain.Tx{Caller: anyone}, 20, nil))
	require.True(t, w.in.LiquidityFullySeeded())
	require.Equal(t, uint64(0), w.rt.Balance(instance))

	err = w.in.LockLiquidity(chain.Tx{Caller: anyone}, 1, nil)
	require.ErrorIs(t, err, issuance.ErrAllocationExceeded)
}

func TestGuardFencesPoolDuringLocking(t *testing.T) {
	w := seedWorld(t)
	minter := chain.AddressFromSeed("t:minter")
	friend := chain.AddressFromSeed("t:friend")
	ids := w.mint(minter, 100, 0)
	require.NoError(t, w.in.LockLiquidity(chain.Tx{Caller: minter}, 30, nil))

	pool, _ := w.pools.Lookup(w.in.Address())
	col := w.in.Collection()

	// Third parties cannot push units into the pool mid-seeding.
	err := col.Transfer(minter, minter, pool.Address(), ids[0])
	require.ErrorIs(t, err, issuance.ErrLiquidityLocking)

	// Transfers that never touch the pool stay open.
	require.NoError(t, col.Transfer(minter, minter, friend, ids[0]))

	require.NoError(t, w.in.LockLiquidity(chain.Tx{Caller: minter}, 20, nil))
	require.NoError(t, col.Transfer(minter, minter, pool.Address(), ids[1]))
}

func TestGuardToleratesPoolPullTransfer(t *testing.T) {
	// A pool that pull-transfers a custody-issued unit instead of taking
	// the direct issuance at face value gets a settled no-op back.
	w := seedWorld(t)
	w.mintOut()
	require.NoError(t, w.in.LockLiquidity(chain.Tx{Caller: w.owner}, 10, nil))
	pool, _ := w.pools.Lookup(w.in.Address())
	col := w.in.Collection()

	ids := col.IssueBatch(w.in.Address(), 1)
	before, _ := col.OwnerOf(ids[0])
	require.NoError(t, col.Transfer(pool.Address(), w.in.Address(), pool.Address(), ids[0]))
	after, _ := col.OwnerOf(ids[0])
	require.Equal(t, before, after, "settled pull-transfer must not move the unit")
}

func TestSeedYieldFarmOrdering(t *testing.T) {
	w := seedWorld(t)
	anyone := chain.AddressFromSeed("t:anyone")

	err := w.in.SeedYieldFarm(chain.Tx{Caller: anyone}, 10, nil)
	require.ErrorIs(t, err, issuance.ErrMintNotComplete)

	w.mintOut()
	err = w.in.SeedYieldFarm(chain.Tx{Caller: anyone}, 10, nil)
	require.ErrorIs(t, err, issuance.ErrLiquidityLocking)

	require.NoError(t, w.in.LockLiquidity(chain.Tx{Caller: anyone}, 50, nil))
	require.NoError(t, w.in.SeedYieldFarm(chain.Tx{Caller: anyone}, 15, nil))

	f, ok := w.farms.Lookup(w.in.Address())
	require.True(t, ok)
	yieldFarm := f.(*farm.Farm)
	require.Equal(t, uint64(15), yieldFarm.RewardPool())

	err = w.in.SeedYieldFarm(chain.Tx{Caller: anyone}, 10, nil)
	require.ErrorIs(t, err, issuance.ErrAllocationExceeded)
	require.Equal(t, uint64(15), w.in.SeededFarmSupply())

	require.NoError(t, w.in.SeedYieldFarm(chain.Tx{Caller: anyone}, 5, nil))
	require.True(t, w.in.FarmFullySeeded())
	require.Equal(t, uint64(20), yieldFarm.RewardPool())

	pool, _ := w.pools.Lookup(w.in.Address())
	require.Equal(t, uint64(20), pool.ReceiptsOf(yieldFarm.Address()))
	require.Equal(t, "0.02", yieldFarm.EmissionRate().String())
}

func TestFarmOnlyConfiguration(t *testing.T) {
	// No liquidity reservation: the locking sub-phase is trivially done
	// and the farm seeds straight after completion.
	params := singleCategory(1, 100, 100)
	params.Farm = issuance.FarmConfig{Amount: 20, Duration: 1000}
	w := newWorld(t, params, 0)
	w.mintOut()

	require.True(t, w.in.LiquidityFullySeeded())
	require.NoError(t, w.in.SeedYieldFarm(chain.Tx{Caller: w.owner}, 20, nil))
	require.True(t, w.in.FarmFullySeeded())
}

func TestWithdrawGatingAndDrain(t *testing.T) {
	params := singleCategory(1, 100, 100)
	params.Liquidity = issuance.LiquidityConfig{Amount: 10, Price: 2}
	params.Farm = issuance.FarmConfig{Amount: 20, Duration: 1000}
	w := newWorld(t, params, 0)
	anyone := chain.AddressFromSeed("t:anyone")

	_, err := w.in.Withdraw(chain.Tx{Caller: anyone})
	require.ErrorIs(t, err, issuance.ErrNotOwner)
	_, err = w.in.Withdraw(chain.Tx{Caller: w.owner})
	require.ErrorIs(t, err, issuance.ErrMintNotComplete)

	w.mintOut()
	_, err = w.in.Withdraw(chain.Tx{Caller: w.owner})
	require.ErrorIs(t, err, issuance.ErrLiquidityLocking)

	require.NoError(t, w.in.LockLiquidity(chain.Tx{Caller: anyone}, 10, nil))
	_, err = w.in.Withdraw(chain.Tx{Caller: w.owner})
	require.ErrorIs(t, err, issuance.ErrFarmSeeding)

	require.NoError(t, w.in.SeedYieldFarm(chain.Tx{Caller: anyone}, 20, nil))
	paid, err := w.in.Withdraw(chain.Tx{Caller: w.owner})
	require.NoError(t, err)
	// 100 raised minus 10 units of liquidity at price 2.
	require.Equal(t, uint64(80), paid)
	require.Equal(t, uint64(80), w.rt.Balance(w.owner))

	// Settlement is repeatable and drains whatever arrived since.
	paid, err = w.in.Withdraw(chain.Tx{Caller: w.owner})
	require.NoError(t, err)
	require.Zero(t, paid)
}

func TestMigrationHandshake(t *testing.T) {
	w := seedWorld(t)
	w.mintOut()
	anyone := chain.AddressFromSeed("t:anyone")
	targetA := chain.AddressFromSeed("t:target-a")
	targetB := chain.AddressFromSeed("t:target-b")
	require.NoError(t, w.in.LockLiquidity(chain.Tx{Caller: anyone}, 50, nil))
	pool, _ := w.pools.Lookup(w.in.Address())
	shares := pool.SharesOf(w.in.Address())
	require.Equal(t, uint64(100), shares)

	err := w.in.ConfirmMigration(chain.Tx{Caller: w.admin}, targetA)
	require.ErrorIs(t, err, issuance.ErrMigrationNotProposed)

	err = w.in.InitiateMigration(chain.Tx{Caller: anyone}, targetA)
	require.ErrorIs(t, err, issuance.ErrNotOwner)
	require.NoError(t, w.in.InitiateMigration(chain.Tx{Caller: w.owner}, targetA))

	err = w.in.ConfirmMigration(chain.Tx{Caller: w.owner}, targetA)
	require.ErrorIs(t, err, issuance.ErrNotAdmin)

	// A is proposed; confirming B must fail.
	err = w.in.ConfirmMigration(chain.Tx{Caller: w.admin}, targetB)
	require.ErrorIs(t, err, issuance.ErrTargetMismatch)

	// The owner re-proposes B; confirming the stale target A must fail.
	require.NoError(t, w.in.InitiateMigration(chain.Tx{Caller: w.owner}, targetB))
	err = w.in.ConfirmMigration(chain.Tx{Caller: w.admin}, targetA)
	require.ErrorIs(t, err, issuance.ErrTargetMismatch)
	require.Zero(t, pool.SharesOf(targetA))

	require.NoError(t, w.in.ConfirmMigration(chain.Tx{Caller: w.admin}, targetB))
	require.Equal(t, shares, pool.SharesOf(targetB))
	require.Zero(t, pool.SharesOf(w.in.Address()))

	// The proposal survives confirmation; a repeat moves nothing.
	require.NoError(t, w.in.ConfirmMigration(chain.Tx{Caller: w.admin}, targetB))
	require.Equal(t, shares, pool.SharesOf(targetB))
}

func TestMigrationWithoutPool(t *testing.T) {
	w := newWorld(t, singleCategory(1, 100, 100), 0)
	target := chain.AddressFromSeed("t:target")
	require.NoError(t, w.in.InitiateMigration(chain.Tx{Caller: w.owner}, target))
	require.NoError(t, w.in.ConfirmMigration(chain.Tx{Caller: w.admin}, target))
}

func TestStateCodecRoundtrip(t *testing.T) {
	w := seedWorld(t)
	minter := chain.AddressFromSeed("t:minter")
	w.mint(minter, 100, 0)
	require.NoError(t, w.in.LockLiquidity(chain.Tx{Caller: minter}, 30, nil))

	data, err := w.in.EncodeState()
	require.NoError(t, err)

	require.NoError(t, w.in.LockLiquidity(chain.Tx{Caller: minter}, 20, nil))
	require.True(t, w.in.LiquidityFullySeeded())

	require.NoError(t, w.in.DecodeState(data))
	require.Equal(t, uint64(30), w.in.LockedLiquiditySupply())
	require.Equal(t, uint64(100), w.in.TotalMinted())
	require.Equal(t, uint64(100), w.in.TotalRaised().BigInt().Uint64())
}

func TestFailedDepositRollsBackPoolCreation(t *testing.T) {
	// An oracle that rejects every deposit makes the first LockLiquidity
	// fail after the pool object exists; the whole operation, pool
	// creation included, must unwind.
	rt := chain.NewRuntime(nil)
	rt.SetNow(baseTime)
	reject := func(chain.Address, [][]byte) error { return errors.New("nope") }
	pools := amm.NewRegistry(rt, reject)
	farms := farm.NewRegistry(rt)
	owner := chain.AddressFromSeed("test:owner")
	plat := &testPlatform{sink: chain.AddressFromSeed("test:feesink"), admin: chain.AddressFromSeed("test:admin")}

	params := singleCategory(1, 100, 100)
	params.Liquidity = issuance.LiquidityConfig{Amount: 50, Price: 2}
	params.Owner = owner
	addr := chain.AddressFromSeed("test:instance")
	in := issuance.New(rt, addr, plat, pools, farms)
	require.NoError(t, in.Initialize(chain.Tx{Caller: owner}, params))
	pools.Bind(addr, in.Collection())

	minter := chain.AddressFromSeed("t:minter")
	require.NoError(t, rt.Fund(minter, 100))
	_, err := in.Mint(chain.Tx{Caller: minter, Value: 100}, 100, 0, nil)
	require.NoError(t, err)
	issued := in.Collection().TotalIssued()

	err = in.LockLiquidity(chain.Tx{Caller: minter}, 30, nil)
	require.ErrorIs(t, err, amm.ErrAuthRejected)

	_, ok := pools.Lookup(addr)
	require.False(t, ok, "pool creation must revert with the failed deposit")
	require.Zero(t, in.LockedLiquiditySupply())
	require.Equal(t, uint64(100), rt.Balance(addr))
	require.Equal(t, issued, in.Collection().TotalIssued())
}
