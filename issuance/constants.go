package issuance

const (
	// MaxCategories bounds the category table size.
	MaxCategories = 256

	// MaxVestingDuration caps the vesting horizon at 3000 days.
	MaxVestingDuration = 3000 * 24 * 60 * 60

	// MinRefundDelay is the minimum buffer between setup and a refund
	// deadline; MaxRefundHorizon the maximum.
	MinRefundDelay   = 60 * 60
	MaxRefundHorizon = 365 * 24 * 60 * 60

	// MaxRoyaltyBps caps the reported royalty rate.
	MaxRoyaltyBps = 5000

	// BpsDenominator converts basis points to a fraction.
	BpsDenominator = 10_000
)
