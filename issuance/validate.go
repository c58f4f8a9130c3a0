package issuance

import (
	"math/big"

	"github.com/launchforge/launchpad-go/chain"
	imath "github.com/launchforge/launchpad-go/issuance/math"
)

// validateSetup checks the configuration record in a fixed order, each
// violation with its own sentinel so callers can tell them apart. No side
// effects.
func validateSetup(now int64, params SetupParams) error {
	if len(params.Categories) < 1 || len(params.Categories) > MaxCategories {
		return ErrCategoryCount
	}

	raise, err := MinGuaranteedRaise(params.Categories, params.Cap)
	if err != nil {
		return err
	}
	reserve := imath.MulU64(params.Liquidity.Amount, params.Liquidity.Price)
	if reserve.Cmp(raise) > 0 {
		return ErrInsufficientRaise
	}

	if (params.Vesting.Receiver != chain.ZeroAddress) != (params.Vesting.Amount != 0) {
		return ErrVestingParams
	}
	if params.Vesting.Duration < 0 || params.Vesting.Duration > MaxVestingDuration {
		return ErrVestingParams
	}

	if (params.Liquidity.Amount != 0) != (params.Liquidity.Price != 0) {
		return ErrLockParams
	}

	if (params.Farm.Amount != 0) != (params.Farm.Duration != 0) {
		return ErrFarmParams
	}
	if params.Farm.Duration < 0 {
		return ErrFarmParams
	}

	if params.Refund.Enabled() {
		if params.Refund.MintEnd <= now+MinRefundDelay || params.Refund.MintEnd > now+MaxRefundHorizon {
			return ErrRefundParams
		}
	}

	if params.RoyaltyBps > MaxRoyaltyBps {
		return ErrRoyaltyTooHigh
	}

	supply := new(big.Int)
	for _, cat := range params.Categories {
		supply.Add(supply, new(big.Int).SetUint64(cat.Supply))
	}
	if supply.Cmp(new(big.Int).SetUint64(params.Cap)) < 0 {
		return ErrCapTooLarge
	}

	return nil
}
