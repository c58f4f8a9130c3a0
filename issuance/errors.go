package issuance

import "errors"

// Setup (configuration) errors. Raised only by Initialize; statically
// detectable from the input record.
var (
	ErrCategoryCount       = errors.New("category count out of range")
	ErrInsufficientRaise   = errors.New("guaranteed raise cannot cover liquidity reservation")
	ErrVestingParams       = errors.New("invalid vesting parameters")
	ErrLockParams          = errors.New("invalid liquidity lock parameters")
	ErrFarmParams          = errors.New("invalid farm parameters")
	ErrRefundParams        = errors.New("invalid refund parameters")
	ErrRoyaltyTooHigh      = errors.New("royalty rate above ceiling")
	ErrCapTooLarge         = errors.New("issuance cap exceeds category supply")
	ErrCategoriesNotSorted = errors.New("categories not sorted by price")
	ErrAlreadyInitialized  = errors.New("instance already initialized")
	ErrNotInitialized      = errors.New("instance not initialized")
)

// Phase-gating errors. Expected; retryable by waiting for the right phase.
var (
	ErrMintExpired       = errors.New("mint expired")
	ErrMintComplete      = errors.New("mint complete")
	ErrMintNotComplete   = errors.New("mint not complete")
	ErrMintNotExpired    = errors.New("mint not yet expired")
	ErrVestingNotStarted = errors.New("vesting not started")
	ErrLiquidityLocking  = errors.New("liquidity still locking")
	ErrFarmSeeding       = errors.New("farm not fully seeded")
	ErrFeatureDisabled   = errors.New("feature disabled")
	ErrRefundsDisabled   = errors.New("refunds disabled")
)

// Resource-exhaustion errors. Retryable with a smaller amount, or not at
// all once the cap is truly exhausted.
var (
	ErrInsufficientSupply = errors.New("insufficient supply")
	ErrAllocationExceeded = errors.New("insufficient remaining allocation")
	ErrInsufficientVested = errors.New("insufficient vested amount")
	ErrNothingToRefund    = errors.New("nothing to refund")
)

// Authorization and input errors.
var (
	ErrNotOwner             = errors.New("caller is not the owner")
	ErrNotAdmin             = errors.New("caller is not the platform admin")
	ErrNotReceiver          = errors.New("caller is not the vesting receiver")
	ErrInvalidProof         = errors.New("invalid whitelist proof")
	ErrWrongValue           = errors.New("wrong value attached")
	ErrZeroAmount           = errors.New("amount must be nonzero")
	ErrBadCategory          = errors.New("unknown category index")
	ErrTargetMismatch       = errors.New("migration target mismatch")
	ErrMigrationNotProposed = errors.New("migration not initiated")
)
