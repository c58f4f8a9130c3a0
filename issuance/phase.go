package issuance

// Phase is the instance's top-level lifecycle position, derived from
// counters and the ledger clock, never stored. Transitions are one-way:
// Minting moves to MintComplete when the cap sells out, or to MintExpired
// when refunds are enabled and the deadline passes first. MintComplete
// unlocks vesting, liquidity seeding, farm seeding and settlement;
// MintExpired unlocks refunds and is terminal for everything else.
type Phase uint8

const (
	PhaseMinting Phase = iota
	PhaseMintComplete
	PhaseMintExpired
)

func (p Phase) String() string {
	switch p {
	case PhaseMinting:
		return "minting"
	case PhaseMintComplete:
		return "mint_complete"
	case PhaseMintExpired:
		return "mint_expired"
	default:
		return "unknown"
	}
}

// PhaseAt derives the phase at the given ledger time.
func (in *Instance) PhaseAt(now int64) Phase {
	if in.state.mintCompleteTime != 0 {
		return PhaseMintComplete
	}
	if in.params.Refund.Enabled() && now >= in.params.Refund.MintEnd {
		return PhaseMintExpired
	}
	return PhaseMinting
}

// Phase derives the phase at the runtime's current clock.
func (in *Instance) Phase() Phase { return in.PhaseAt(in.rt.Now()) }

// LiquidityFullySeeded reports whether the locked-liquidity sub-phase has
// finished, which is trivially true when the reservation is zero.
func (in *Instance) LiquidityFullySeeded() bool {
	return in.state.lockedSupply == in.params.Liquidity.Amount
}

// FarmFullySeeded reports whether the yield-farm sub-phase has finished.
func (in *Instance) FarmFullySeeded() bool {
	return in.state.seededFarmSupply == in.params.Farm.Amount
}
