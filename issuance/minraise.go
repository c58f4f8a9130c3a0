package issuance

import (
	"math/big"

	imath "github.com/launchforge/launchpad-go/issuance/math"
)

// MinGuaranteedRaise returns the worst-case lower bound on mint proceeds
// for the given category table and an available-supply budget: the value
// collected if every unit sells from the cheapest categories first. The
// bound holds because a buyer cannot choose to leave a cheap category
// unsold while minting from an expensive one on behalf of everyone else.
// Categories must be sorted ascending by price.
//
// Used once, at setup, to prove the locked-liquidity reservation is
// affordable even in the worst case.
func MinGuaranteedRaise(categories []Category, budget uint64) (*big.Int, error) {
	for i := 1; i < len(categories); i++ {
		if categories[i].Price < categories[i-1].Price {
			return nil, ErrCategoriesNotSorted
		}
	}
	raise := new(big.Int)
	remaining := budget
	for _, cat := range categories {
		if remaining == 0 {
			break
		}
		take := imath.MinU64(cat.Supply, remaining)
		raise.Add(raise, imath.MulU64(take, cat.Price))
		remaining -= take
	}
	return raise, nil
}
