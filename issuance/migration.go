package issuance

import (
	"go.uber.org/zap"

	"github.com/launchforge/launchpad-go/chain"
)

// InitiateMigration records a proposed destination for the instance's
// pool-ownership shares, overwriting any prior proposal. Owner only.
func (in *Instance) InitiateMigration(tx chain.Tx, target chain.Address) error {
	return in.rt.Execute(tx, func(tx chain.Tx) error {
		if err := in.requireInitialized(); err != nil {
			return err
		}
		if tx.Caller != in.params.Owner {
			return ErrNotOwner
		}
		in.state.migrationTarget = target
		in.state.migrationProposed = true
		in.log.Info("migration proposed", zap.Stringer("target", target))
		return nil
	})
}

// ConfirmMigration moves the pool-ownership share balance held by the
// instance to the confirmed target. Platform admin only. The supplied
// target must match the recorded proposal exactly; the two-phase
// handshake guards against the owner swapping the proposal between the
// owner's initiation and the admin's confirmation.
func (in *Instance) ConfirmMigration(tx chain.Tx, target chain.Address) error {
	return in.rt.Execute(tx, func(tx chain.Tx) error {
		if err := in.requireInitialized(); err != nil {
			return err
		}
		if tx.Caller != in.platform.Admin() {
			return ErrNotAdmin
		}
		if !in.state.migrationProposed {
			return ErrMigrationNotProposed
		}
		if target != in.state.migrationTarget {
			return ErrTargetMismatch
		}
		pool, ok := in.pools.Lookup(in.addr)
		if !ok {
			// Nothing was ever seeded; the confirmation settles trivially.
			in.log.Info("migration confirmed with no pool", zap.Stringer("target", target))
			return nil
		}
		shares := pool.SharesOf(in.addr)
		if err := pool.TransferShares(in.addr, target, shares); err != nil {
			return err
		}
		in.log.Info("migration confirmed",
			zap.Stringer("target", target),
			zap.Uint64("shares", shares),
		)
		return nil
	})
}
