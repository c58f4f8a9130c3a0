package issuance

import "github.com/launchforge/launchpad-go/chain"

// Pool is the external liquidity venue the instance seeds. The instance
// calls through this contract and trusts the return values; it never owns
// the pool's internal state.
type Pool interface {
	Address() chain.Address

	// Deposit records unitIDs already issued into the pool's custody,
	// pulls value of native balance from depositor alongside them, and
	// credits depositor with whatever share accounting the pool uses.
	// authMessages is an opaque pass-through to the pool's anti-theft
	// oracle; the instance never interprets it.
	Deposit(depositor chain.Address, unitIDs []uint64, value uint64, authMessages [][]byte) (shares uint64, err error)

	// Wrap converts units held in pool custody into a fungible receipt
	// balance representing pooled value, credited to owner.
	Wrap(owner chain.Address, unitIDs []uint64) (receipts uint64, err error)

	SharesOf(holder chain.Address) uint64
	TransferShares(from, to chain.Address, shares uint64) error

	ReceiptsOf(holder chain.Address) uint64
	TransferReceipts(from, to chain.Address, receipts uint64) error
}

// PoolProvider finds or creates the pool bound to an instance. Pool
// addresses derive deterministically from the instance identity, so
// create-if-missing races commute.
type PoolProvider interface {
	Lookup(instance chain.Address) (Pool, bool)
	Create(instance chain.Address) (Pool, error)
}

// Farm is the external reward-distribution service seeded with wrapped
// pool receipts.
type Farm interface {
	Address() chain.Address
	TopUp(receipts uint64) error
}

// FarmProvider finds or creates the farm bound to an instance.
type FarmProvider interface {
	Lookup(instance chain.Address) (Farm, bool)
	Create(instance chain.Address, pool Pool, receipts uint64, duration int64) (Farm, error)
}

// PlatformInfo is what the instance needs from the issuing platform: the
// protocol fee rate, where fees go, and who may confirm migrations.
type PlatformInfo interface {
	FeeBps() uint16
	FeeSink() chain.Address
	Admin() chain.Address
}
