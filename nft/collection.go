// Package nft keeps the ownership ledger for uniquely numbered issued
// units: batch issuance, burn with an owner check, and transfer with an
// installable pre-transfer guard.
package nft

import (
	"errors"
	"sort"

	"github.com/launchforge/launchpad-go/chain"
)

var (
	ErrUnknownUnit  = errors.New("nft: unknown unit")
	ErrNotUnitOwner = errors.New("nft: caller does not own unit")

	// SkipTransfer is returned by a guard to report the transfer as
	// already settled: the collection treats it as a completed no-op.
	SkipTransfer = errors.New("nft: transfer already settled")
)

// Guard is a pure predicate evaluated before every transfer. Returning an
// error rejects the transfer; returning SkipTransfer accepts it without
// moving anything.
type Guard func(from, to, initiator chain.Address, unitID uint64) error

// Collection is the unit ledger for one issuance instance.
type Collection struct {
	name       string
	symbol     string
	royaltyBps uint16

	owners   map[uint64]chain.Address
	balances map[chain.Address]uint64
	nextID   uint64
	issued   uint64
	guard    Guard
}

func NewCollection(name, symbol string, royaltyBps uint16) *Collection {
	return &Collection{
		name:       name,
		symbol:     symbol,
		royaltyBps: royaltyBps,
		owners:     make(map[uint64]chain.Address),
		balances:   make(map[chain.Address]uint64),
		nextID:     1,
	}
}

func (c *Collection) Name() string       { return c.name }
func (c *Collection) Symbol() string     { return c.symbol }
func (c *Collection) RoyaltyBps() uint16 { return c.royaltyBps }

// TotalIssued counts every unit ever issued; burns do not decrement it.
func (c *Collection) TotalIssued() uint64 { return c.issued }

// SetGuard installs the pre-transfer guard. A nil guard allows everything.
func (c *Collection) SetGuard(g Guard) { c.guard = g }

// IssueBatch creates n sequentially numbered units owned by to and
// returns their ids. Issuance bypasses the transfer guard: units are born
// directly in the recipient's custody.
func (c *Collection) IssueBatch(to chain.Address, n uint64) []uint64 {
	ids := make([]uint64, 0, n)
	for i := uint64(0); i < n; i++ {
		id := c.nextID
		c.nextID++
		c.owners[id] = to
		ids = append(ids, id)
	}
	c.balances[to] += n
	c.issued += n
	return ids
}

// Burn destroys one unit after checking that owner actually holds it.
func (c *Collection) Burn(owner chain.Address, id uint64) error {
	holder, ok := c.owners[id]
	if !ok {
		return ErrUnknownUnit
	}
	if holder != owner {
		return ErrNotUnitOwner
	}
	delete(c.owners, id)
	c.balances[owner]--
	return nil
}

// Transfer moves one unit from from to to, on behalf of initiator. The
// guard sees the transfer before any state changes.
func (c *Collection) Transfer(initiator, from, to chain.Address, id uint64) error {
	if c.guard != nil {
		switch err := c.guard(from, to, initiator, id); {
		case errors.Is(err, SkipTransfer):
			return nil
		case err != nil:
			return err
		}
	}
	holder, ok := c.owners[id]
	if !ok {
		return ErrUnknownUnit
	}
	if holder != from {
		return ErrNotUnitOwner
	}
	c.owners[id] = to
	c.balances[from]--
	c.balances[to]++
	return nil
}

func (c *Collection) OwnerOf(id uint64) (chain.Address, bool) {
	owner, ok := c.owners[id]
	return owner, ok
}

func (c *Collection) BalanceOf(addr chain.Address) uint64 {
	return c.balances[addr]
}

// UnitsOf returns the ids held by addr in ascending order.
func (c *Collection) UnitsOf(addr chain.Address) []uint64 {
	var ids []uint64
	for id, owner := range c.owners {
		if owner == addr {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

type collectionSnapshot struct {
	owners   map[uint64]chain.Address
	balances map[chain.Address]uint64
	nextID   uint64
	issued   uint64
}

func (c *Collection) Snapshot() any {
	owners := make(map[uint64]chain.Address, len(c.owners))
	for k, v := range c.owners {
		owners[k] = v
	}
	balances := make(map[chain.Address]uint64, len(c.balances))
	for k, v := range c.balances {
		balances[k] = v
	}
	return collectionSnapshot{owners: owners, balances: balances, nextID: c.nextID, issued: c.issued}
}

func (c *Collection) Restore(snapshot any) {
	snap := snapshot.(collectionSnapshot)
	c.owners = snap.owners
	c.balances = snap.balances
	c.nextID = snap.nextID
	c.issued = snap.issued
}
