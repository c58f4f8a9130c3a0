package issuance

import (
	"math/big"

	"go.uber.org/zap"

	"github.com/launchforge/launchpad-go/chain"
	imath "github.com/launchforge/launchpad-go/issuance/math"
	"github.com/launchforge/launchpad-go/merkle"
	"github.com/launchforge/launchpad-go/u128"
)

// MintCost returns (price, fee) for minting amount units from the given
// category at the current protocol fee rate. The attached value must be
// exactly price+fee.
func (in *Instance) MintCost(amount uint64, categoryIndex int) (*big.Int, *big.Int, error) {
	if err := in.requireInitialized(); err != nil {
		return nil, nil, err
	}
	if categoryIndex < 0 || categoryIndex >= len(in.params.Categories) {
		return nil, nil, ErrBadCategory
	}
	price := imath.MulU64(in.params.Categories[categoryIndex].Price, amount)
	fee, err := imath.MulDiv(price, new(big.Int).SetUint64(uint64(in.platform.FeeBps())), big.NewInt(BpsDenominator), imath.RoundingDown)
	if err != nil {
		return nil, nil, err
	}
	return price, fee, nil
}

// Mint issues amount new units from categoryIndex to the caller against
// an exact value payment, forwarding the protocol fee to the platform's
// fee sink. Returns the new unit ids. Not idempotent: every successful
// call issues fresh units.
func (in *Instance) Mint(tx chain.Tx, amount uint64, categoryIndex int, proof merkle.Proof) ([]uint64, error) {
	var ids []uint64
	err := in.rt.Execute(tx, func(tx chain.Tx) error {
		if err := in.requireInitialized(); err != nil {
			return err
		}
		if amount == 0 {
			return ErrZeroAmount
		}
		if in.params.Refund.Enabled() && tx.Now >= in.params.Refund.MintEnd {
			return ErrMintExpired
		}

		price, fee, err := in.MintCost(amount, categoryIndex)
		if err != nil {
			return err
		}
		cost := new(big.Int).Add(price, fee)
		if cost.Cmp(new(big.Int).SetUint64(tx.Value)) != 0 {
			return ErrWrongValue
		}
		// The attached value rides along with the call.
		if err := in.rt.Move(tx.Caller, in.addr, tx.Value); err != nil {
			return err
		}

		// Counters move first; the cap comparison reads the
		// post-increment value and rejects when it overflows,
		// including uint64 wraparound.
		cat := &in.params.Categories[categoryIndex]
		in.state.mintedPerCategory[categoryIndex] += amount
		in.state.totalMinted += amount
		if in.state.mintedPerCategory[categoryIndex] < amount || in.state.totalMinted < amount ||
			in.state.mintedPerCategory[categoryIndex] > cat.Supply || in.state.totalMinted > in.params.Cap {
			return ErrInsufficientSupply
		}

		if !cat.WhitelistRoot.IsZero() && !merkle.Verify(cat.WhitelistRoot, proof, tx.Caller) {
			return ErrInvalidProof
		}

		if in.params.Refund.Enabled() {
			paid, err := imath.ToU64(price)
			if err != nil {
				return err
			}
			acct := in.state.minters[tx.Caller]
			if acct == nil {
				acct = &MinterAccount{}
				in.state.minters[tx.Caller] = acct
			}
			if acct.AvailableRefund+paid < acct.AvailableRefund {
				return chain.ErrValueOverflow
			}
			acct.TotalMinted += amount
			acct.AvailableRefund += paid
		}

		ids = in.col.IssueBatch(tx.Caller, amount)

		in.state.totalRaised, err = u128.AddBig(in.state.totalRaised, price)
		if err != nil {
			return err
		}
		if in.state.totalMinted == in.params.Cap {
			in.state.mintCompleteTime = tx.Now
			in.log.Info("mint complete", zap.Int64("at", tx.Now))
		}

		feeU64, err := imath.ToU64(fee)
		if err != nil {
			return err
		}
		if feeU64 > 0 {
			if err := in.rt.Move(in.addr, in.platform.FeeSink(), feeU64); err != nil {
				return err
			}
		}

		in.log.Debug("minted",
			zap.Stringer("minter", tx.Caller),
			zap.Uint64("amount", amount),
			zap.Int("category", categoryIndex),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ids, nil
}
