// Package amm is a reference implementation of the external liquidity
// venue an issuance instance seeds. The instance only depends on the
// issuance.Pool contract; this implementation holds custody of deposited
// units, pro-rates ownership shares over deposited value, and wraps
// custody units into fungible receipts for farm funding.
package amm

import (
	"errors"

	"github.com/launchforge/launchpad-go/chain"
	imath "github.com/launchforge/launchpad-go/issuance/math"
	"github.com/launchforge/launchpad-go/nft"
)

var (
	ErrUnitNotInCustody    = errors.New("amm: unit not in pool custody")
	ErrUnitAlreadyWrapped  = errors.New("amm: unit already wrapped")
	ErrInsufficientShares  = errors.New("amm: insufficient shares")
	ErrInsufficientReceipt = errors.New("amm: insufficient receipts")
	ErrAuthRejected        = errors.New("amm: deposit authorization rejected")
)

// AuthOracle screens deposit authorization messages. The reference oracle
// accepts everything; deployments can install a stricter one.
type AuthOracle func(instance chain.Address, authMessages [][]byte) error

// Pool is one instance-bound liquidity pool.
type Pool struct {
	rt       *chain.Runtime
	addr     chain.Address
	instance chain.Address
	col      *nft.Collection
	oracle   AuthOracle

	totalUnits  uint64
	totalValue  uint64
	totalShares uint64
	shares      map[chain.Address]uint64
	receipts    map[chain.Address]uint64
	wrapped     map[uint64]bool
}

func (p *Pool) Address() chain.Address { return p.addr }

// Deposit takes custody-issued units plus native value from depositor and
// credits ownership shares. The first deposit prices one share per unit
// of value; later deposits are pro-rated over the pool's current value.
func (p *Pool) Deposit(depositor chain.Address, unitIDs []uint64, value uint64, authMessages [][]byte) (uint64, error) {
	if p.oracle != nil {
		if err := p.oracle(p.instance, authMessages); err != nil {
			return 0, ErrAuthRejected
		}
	}
	if p.col != nil {
		for _, id := range unitIDs {
			owner, ok := p.col.OwnerOf(id)
			if !ok || owner != p.addr {
				return 0, ErrUnitNotInCustody
			}
		}
	}
	if err := p.rt.Move(depositor, p.addr, value); err != nil {
		return 0, err
	}

	var minted uint64
	if p.totalShares == 0 {
		minted = value
	} else {
		var err error
		minted, err = imath.MulDivU64(value, p.totalShares, p.totalValue, imath.RoundingDown)
		if err != nil {
			return 0, err
		}
	}
	p.totalUnits += uint64(len(unitIDs))
	p.totalValue += value
	p.totalShares += minted
	p.shares[depositor] += minted
	return minted, nil
}

// Wrap converts custody units into fungible receipts, one per unit,
// credited to owner. A unit wraps at most once.
func (p *Pool) Wrap(owner chain.Address, unitIDs []uint64) (uint64, error) {
	for _, id := range unitIDs {
		if p.col != nil {
			holder, ok := p.col.OwnerOf(id)
			if !ok || holder != p.addr {
				return 0, ErrUnitNotInCustody
			}
		}
		if p.wrapped[id] {
			return 0, ErrUnitAlreadyWrapped
		}
	}
	for _, id := range unitIDs {
		p.wrapped[id] = true
	}
	n := uint64(len(unitIDs))
	p.totalUnits += n
	p.receipts[owner] += n
	return n, nil
}

func (p *Pool) SharesOf(holder chain.Address) uint64 { return p.shares[holder] }

func (p *Pool) TransferShares(from, to chain.Address, shares uint64) error {
	if p.shares[from] < shares {
		return ErrInsufficientShares
	}
	p.shares[from] -= shares
	p.shares[to] += shares
	return nil
}

func (p *Pool) ReceiptsOf(holder chain.Address) uint64 { return p.receipts[holder] }

func (p *Pool) TransferReceipts(from, to chain.Address, receipts uint64) error {
	if p.receipts[from] < receipts {
		return ErrInsufficientReceipt
	}
	p.receipts[from] -= receipts
	p.receipts[to] += receipts
	return nil
}

// TotalValue is the native value the pool holds against shares.
func (p *Pool) TotalValue() uint64 { return p.totalValue }

// TotalShares is the outstanding ownership share supply.
func (p *Pool) TotalShares() uint64 { return p.totalShares }
