package issuance

import (
	"go.uber.org/zap"

	"github.com/launchforge/launchpad-go/chain"
)

// Withdraw pays the instance's entire remaining balance to the owner.
// Gated on the mint being complete and both seeding reservations being
// fully discharged (or disabled). Callable repeatedly; each call drains
// whatever balance exists at call time.
func (in *Instance) Withdraw(tx chain.Tx) (uint64, error) {
	var paid uint64
	err := in.rt.Execute(tx, func(tx chain.Tx) error {
		if err := in.requireInitialized(); err != nil {
			return err
		}
		if tx.Caller != in.params.Owner {
			return ErrNotOwner
		}
		if in.state.mintCompleteTime == 0 {
			return ErrMintNotComplete
		}
		if !in.LiquidityFullySeeded() {
			return ErrLiquidityLocking
		}
		if !in.FarmFullySeeded() {
			return ErrFarmSeeding
		}
		paid = in.rt.Balance(in.addr)
		if err := in.rt.Move(in.addr, in.params.Owner, paid); err != nil {
			return err
		}
		in.log.Info("owner settlement", zap.Uint64("paid", paid))
		return nil
	})
	if err != nil {
		return 0, err
	}
	return paid, nil
}
