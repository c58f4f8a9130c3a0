package issuance

import (
	"github.com/launchforge/launchpad-go/chain"
	"github.com/launchforge/launchpad-go/nft"
)

// transferGuard is the pre-transfer hook installed on the collection. It
// is a pure function of (from, to, initiator) and the seeding progress:
//
//   - a pull-transfer by the pool of a unit the instance already issued
//     straight into pool custody is reported as settled, so a pool that
//     still attempts a conventional transfer is tolerated;
//   - while the liquidity reservation is not fully seeded, no third party
//     may move units into or out of the pool. This is what makes the
//     seeding deposits safe without a slippage bound: nobody else can
//     touch the pool until seeding finishes.
func (in *Instance) transferGuard(from, to, initiator chain.Address, unitID uint64) error {
	pool, ok := in.pools.Lookup(in.addr)
	if !ok {
		return nil
	}
	poolAddr := pool.Address()

	if from == in.addr && to == poolAddr && initiator == poolAddr {
		return nft.SkipTransfer
	}
	if in.state.lockedSupply < in.params.Liquidity.Amount && from != in.addr {
		if from == poolAddr || to == poolAddr {
			return ErrLiquidityLocking
		}
	}
	return nil
}
