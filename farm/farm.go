// Package farm is a reference implementation of the external yield farm
// the issuance instance seeds with wrapped pool receipts. The instance
// depends only on the issuance.Farm contract.
package farm

import (
	"errors"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/launchforge/launchpad-go/chain"
	"github.com/launchforge/launchpad-go/issuance"
)

var ErrZeroDuration = errors.New("farm: zero emission duration")

const farmSeed = "launchpad:farm"

// Farm distributes a reward pool of receipts over a fixed emission
// horizon.
type Farm struct {
	addr       chain.Address
	instance   chain.Address
	stakedPool chain.Address
	rewardPool uint64
	duration   int64
	createdAt  int64
}

// StakedPool is the pool whose receipts the farm emits.
func (f *Farm) StakedPool() chain.Address { return f.stakedPool }

func (f *Farm) Address() chain.Address { return f.addr }

// TopUp adds freshly wrapped receipts to the reward pool.
func (f *Farm) TopUp(receipts uint64) error {
	f.rewardPool += receipts
	return nil
}

// RewardPool is the receipts remaining for emission.
func (f *Farm) RewardPool() uint64 { return f.rewardPool }

// EmissionRate is the reward flow in receipts per second.
func (f *Farm) EmissionRate() decimal.Decimal {
	if f.duration == 0 {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(new(big.Int).SetUint64(f.rewardPool), 0).
		Div(decimal.NewFromInt(f.duration))
}

// Registry creates and resolves instance-bound farms at deterministic
// addresses.
type Registry struct {
	rt    *chain.Runtime
	farms map[chain.Address]*Farm
}

var _ issuance.FarmProvider = (*Registry)(nil)

func NewRegistry(rt *chain.Runtime) *Registry {
	r := &Registry{
		rt:    rt,
		farms: make(map[chain.Address]*Farm),
	}
	rt.Register(r)
	return r
}

func (r *Registry) Lookup(instance chain.Address) (issuance.Farm, bool) {
	f, ok := r.farms[instance]
	return f, ok
}

func (r *Registry) Create(instance chain.Address, pool issuance.Pool, receipts uint64, duration int64) (issuance.Farm, error) {
	if duration == 0 {
		return nil, ErrZeroDuration
	}
	if f, ok := r.farms[instance]; ok {
		return f, nil
	}
	addr, err := chain.DeriveAddress(instance, farmSeed)
	if err != nil {
		return nil, err
	}
	f := &Farm{
		addr:       addr,
		instance:   instance,
		stakedPool: pool.Address(),
		rewardPool: receipts,
		duration:   duration,
		createdAt:  r.rt.Now(),
	}
	r.farms[instance] = f
	return f, nil
}

type farmSnapshot struct {
	farms map[chain.Address]*Farm
	state map[chain.Address]Farm
}

func (r *Registry) Snapshot() any {
	snap := farmSnapshot{
		farms: make(map[chain.Address]*Farm, len(r.farms)),
		state: make(map[chain.Address]Farm, len(r.farms)),
	}
	for k, f := range r.farms {
		snap.farms[k] = f
		snap.state[k] = *f
	}
	return snap
}

func (r *Registry) Restore(snapshot any) {
	snap := snapshot.(farmSnapshot)
	r.farms = snap.farms
	for k, f := range r.farms {
		st := snap.state[k]
		*f = st
	}
}
