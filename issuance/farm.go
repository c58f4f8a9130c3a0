package issuance

import (
	"go.uber.org/zap"

	"github.com/launchforge/launchpad-go/chain"
)

// SeedYieldFarm seeds the next batch of the yield-farm reservation. The
// batch is issued into pool custody and wrapped into fungible receipts
// representing pooled value; the first call creates the farm with those
// receipts, later calls top up its reward pool. Requires the
// locked-liquidity reservation to be fully seeded first. Callable by
// anyone, repeatedly, until fully seeded.
func (in *Instance) SeedYieldFarm(tx chain.Tx, amount uint64, authMessages [][]byte) error {
	_ = authMessages // opaque pass-through for the pool's oracle; unused by the reference pool
	return in.rt.Execute(tx, func(tx chain.Tx) error {
		if err := in.requireInitialized(); err != nil {
			return err
		}
		if !in.params.Farm.Enabled() {
			return ErrFeatureDisabled
		}
		if in.state.mintCompleteTime == 0 {
			return ErrMintNotComplete
		}
		if !in.LiquidityFullySeeded() {
			return ErrLiquidityLocking
		}
		if amount == 0 {
			return ErrZeroAmount
		}

		in.state.seededFarmSupply += amount
		if in.state.seededFarmSupply < amount || in.state.seededFarmSupply > in.params.Farm.Amount {
			return ErrAllocationExceeded
		}

		pool, ok := in.pools.Lookup(in.addr)
		if !ok {
			var err error
			pool, err = in.pools.Create(in.addr)
			if err != nil {
				return err
			}
		}

		ids := in.col.IssueBatch(pool.Address(), amount)
		receipts, err := pool.Wrap(in.addr, ids)
		if err != nil {
			return err
		}

		farm, ok := in.farms.Lookup(in.addr)
		if !ok {
			farm, err = in.farms.Create(in.addr, pool, receipts, in.params.Farm.Duration)
			if err != nil {
				return err
			}
			if err := pool.TransferReceipts(in.addr, farm.Address(), receipts); err != nil {
				return err
			}
		} else {
			if err := pool.TransferReceipts(in.addr, farm.Address(), receipts); err != nil {
				return err
			}
			if err := farm.TopUp(receipts); err != nil {
				return err
			}
		}
		in.log.Debug("farm seeded",
			zap.Uint64("amount", amount),
			zap.Uint64("receipts", receipts),
			zap.Uint64("seeded_total", in.state.seededFarmSupply),
		)
		return nil
	})
}
