package issuance

import (
	"go.uber.org/zap"

	"github.com/launchforge/launchpad-go/chain"
	imath "github.com/launchforge/launchpad-go/issuance/math"
)

// Refund burns the given units owned by the caller and pays back a
// proportional share of the caller's remaining refundable value:
//
//	share = burned * availableRefund / totalMinted   (rounds down)
//
// Only available when refunds are enabled, the mint did not complete, and
// the deadline has passed. A mint that completed disables refunds for
// good. Summed over any sequence of calls the payouts never exceed the
// account's contribution, and a full refund drives it to exactly (0, 0).
func (in *Instance) Refund(tx chain.Tx, unitIDs []uint64) (uint64, error) {
	var share uint64
	err := in.rt.Execute(tx, func(tx chain.Tx) error {
		if err := in.requireInitialized(); err != nil {
			return err
		}
		if !in.params.Refund.Enabled() {
			return ErrRefundsDisabled
		}
		if in.state.mintCompleteTime != 0 {
			return ErrMintComplete
		}
		if tx.Now < in.params.Refund.MintEnd {
			return ErrMintNotExpired
		}
		if len(unitIDs) == 0 {
			return ErrZeroAmount
		}

		acct := in.state.minters[tx.Caller]
		if acct == nil || acct.TotalMinted == 0 {
			return ErrNothingToRefund
		}
		burned := uint64(len(unitIDs))
		if burned > acct.TotalMinted {
			return ErrNothingToRefund
		}

		for _, id := range unitIDs {
			if err := in.col.Burn(tx.Caller, id); err != nil {
				return err
			}
		}

		var err error
		share, err = imath.MulDivU64(burned, acct.AvailableRefund, acct.TotalMinted, imath.RoundingDown)
		if err != nil {
			return err
		}
		acct.TotalMinted -= burned
		acct.AvailableRefund -= share

		if err := in.rt.Move(in.addr, tx.Caller, share); err != nil {
			return err
		}
		in.log.Debug("refunded",
			zap.Stringer("minter", tx.Caller),
			zap.Uint64("burned", burned),
			zap.Uint64("share", share),
		)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return share, nil
}
