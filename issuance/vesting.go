package issuance

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/launchforge/launchpad-go/chain"
	imath "github.com/launchforge/launchpad-go/issuance/math"
)

// vestingStart returns the timestamp linear unlocking is measured from,
// or zero when it has not begun. With refunds enabled the start is the
// refund deadline, even if the mint completes earlier; otherwise it is
// the completion timestamp.
func (in *Instance) vestingStart() int64 {
	if in.params.Refund.Enabled() {
		if in.state.mintCompleteTime == 0 {
			// An expired mint never vests.
			return 0
		}
		return in.params.Refund.MintEnd
	}
	return in.state.mintCompleteTime
}

// VestedAt returns the total units unlocked at the given time. With a
// zero duration the full amount unlocks at start. Otherwise the unlock
// rate is amount/duration in Q64 and the running total rounds up, so the
// receiver is never shortchanged by truncation; the bounded cost is at
// most one unit of early availability near the end of the schedule.
func (in *Instance) VestedAt(now int64) uint64 {
	cfg := in.params.Vesting
	start := in.vestingStart()
	if !cfg.Enabled() || start == 0 || now < start {
		return 0
	}
	if cfg.Duration == 0 || now >= start+cfg.Duration {
		return cfg.Amount
	}
	rate, err := imath.ShlDiv(new(big.Int).SetUint64(cfg.Amount), imath.Resolution, big.NewInt(cfg.Duration))
	if err != nil {
		return 0
	}
	elapsed := imath.MinI64(now-start, cfg.Duration)
	vested := imath.MulShr(rate, big.NewInt(elapsed), imath.Resolution, imath.RoundingUp)
	out, err := imath.ToU64(vested)
	if err != nil {
		return cfg.Amount
	}
	return imath.MinU64(out, cfg.Amount)
}

// Vest releases amount units of the vested allocation to the configured
// receiver, who must be the caller.
func (in *Instance) Vest(tx chain.Tx, amount uint64) ([]uint64, error) {
	var ids []uint64
	err := in.rt.Execute(tx, func(tx chain.Tx) error {
		if err := in.requireInitialized(); err != nil {
			return err
		}
		if !in.params.Vesting.Enabled() {
			return ErrFeatureDisabled
		}
		if tx.Caller != in.params.Vesting.Receiver {
			return ErrNotReceiver
		}
		start := in.vestingStart()
		if start == 0 || tx.Now < start {
			return ErrVestingNotStarted
		}
		if amount == 0 {
			return ErrZeroAmount
		}
		vested := in.VestedAt(tx.Now)
		if amount > vested-in.state.totalVestClaimed {
			return ErrInsufficientVested
		}
		in.state.totalVestClaimed += amount
		ids = in.col.IssueBatch(tx.Caller, amount)
		in.log.Debug("vested units released",
			zap.Uint64("amount", amount),
			zap.Uint64("claimed_total", in.state.totalVestClaimed),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
