package issuance

import (
	"go.uber.org/zap"

	"github.com/launchforge/launchpad-go/chain"
	imath "github.com/launchforge/launchpad-go/issuance/math"
)

// LockLiquidity seeds the next batch of the locked-liquidity reservation:
// it issues amount new units straight into the pool's custody together
// with amount*price of the mint proceeds, creating the pool on first use.
// Callable by anyone, repeatedly, until the reservation is fully seeded.
//
// The bounding counter moves before any external call, so a reentrant
// call from a misbehaving pool cannot over-commit the reservation. No
// slippage bound is needed: until seeding finishes the transfer guard
// keeps every other party out of the pool.
func (in *Instance) LockLiquidity(tx chain.Tx, amount uint64, authMessages [][]byte) error {
	return in.rt.Execute(tx, func(tx chain.Tx) error {
		if err := in.requireInitialized(); err != nil {
			return err
		}
		if in.state.mintCompleteTime == 0 {
			return ErrMintNotComplete
		}
		if !in.params.Liquidity.Enabled() {
			return ErrFeatureDisabled
		}
		if amount == 0 {
			return ErrZeroAmount
		}

		in.state.lockedSupply += amount
		if in.state.lockedSupply < amount || in.state.lockedSupply > in.params.Liquidity.Amount {
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

		value, err := imath.ToU64(imath.MulU64(amount, in.params.Liquidity.Price))
		if err != nil {
			return err
		}
		// Direct-to-custody issuance: the batch is born in the pool.
		ids := in.col.IssueBatch(pool.Address(), amount)
		shares, err := pool.Deposit(in.addr, ids, value, authMessages)
		if err != nil {
			return err
		}
		in.log.Debug("liquidity seeded",
			zap.Uint64("amount", amount),
			zap.Uint64("value", value),
			zap.Uint64("shares", shares),
			zap.Uint64("locked_total", in.state.lockedSupply),
		)
		return nil
	})
}
