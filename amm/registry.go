package amm

import (
	"github.com/launchforge/launchpad-go/chain"
	"github.com/launchforge/launchpad-go/issuance"
	"github.com/launchforge/launchpad-go/nft"
)

const poolSeed = "launchpad:pool"

// Registry creates and resolves instance-bound pools. Pool addresses
// derive deterministically from the instance identity, so every replica
// resolves the same pool.
type Registry struct {
	rt     *chain.Runtime
	oracle AuthOracle
	pools  map[chain.Address]*Pool
	// custody collections by instance, bound after instance setup
	collections map[chain.Address]*nft.Collection
}

var _ issuance.PoolProvider = (*Registry)(nil)

func NewRegistry(rt *chain.Runtime, oracle AuthOracle) *Registry {
	r := &Registry{
		rt:          rt,
		oracle:      oracle,
		pools:       make(map[chain.Address]*Pool),
		collections: make(map[chain.Address]*nft.Collection),
	}
	rt.Register(r)
	return r
}

// Bind attaches an instance's unit ledger so its pool can verify custody
// of deposited units.
func (r *Registry) Bind(instance chain.Address, col *nft.Collection) {
	r.collections[instance] = col
	if p, ok := r.pools[instance]; ok {
		p.col = col
	}
}

func (r *Registry) Lookup(instance chain.Address) (issuance.Pool, bool) {
	p, ok := r.pools[instance]
	return p, ok
}

func (r *Registry) Create(instance chain.Address) (issuance.Pool, error) {
	if p, ok := r.pools[instance]; ok {
		return p, nil
	}
	addr, err := chain.DeriveAddress(instance, poolSeed)
	if err != nil {
		return nil, err
	}
	p := &Pool{
		rt:       r.rt,
		addr:     addr,
		instance: instance,
		col:      r.collections[instance],
		oracle:   r.oracle,
		shares:   make(map[chain.Address]uint64),
		receipts: make(map[chain.Address]uint64),
		wrapped:  make(map[uint64]bool),
	}
	r.pools[instance] = p
	return p, nil
}

type poolSnapshot struct {
	totalUnits  uint64
	totalValue  uint64
	totalShares uint64
	shares      map[chain.Address]uint64
	receipts    map[chain.Address]uint64
	wrapped     map[uint64]bool
}

type registrySnapshot struct {
	pools map[chain.Address]*Pool
	state map[chain.Address]poolSnapshot
}

// Snapshot and Restore make pool creation and pool state revert together
// with the operation that caused them.
func (r *Registry) Snapshot() any {
	snap := registrySnapshot{
		pools: make(map[chain.Address]*Pool, len(r.pools)),
		state: make(map[chain.Address]poolSnapshot, len(r.pools)),
	}
	for k, p := range r.pools {
		snap.pools[k] = p
		snap.state[k] = poolSnapshot{
			totalUnits:  p.totalUnits,
			totalValue:  p.totalValue,
			totalShares: p.totalShares,
			shares:      copyMap(p.shares),
			receipts:    copyMap(p.receipts),
			wrapped:     copyBoolMap(p.wrapped),
		}
	}
	return snap
}

func (r *Registry) Restore(snapshot any) {
	snap := snapshot.(registrySnapshot)
	r.pools = snap.pools
	for k, p := range r.pools {
		st := snap.state[k]
		p.totalUnits = st.totalUnits
		p.totalValue = st.totalValue
		p.totalShares = st.totalShares
		p.shares = st.shares
		p.receipts = st.receipts
		p.wrapped = st.wrapped
	}
}

func copyMap(m map[chain.Address]uint64) map[chain.Address]uint64 {
	cp := make(map[chain.Address]uint64, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}

func copyBoolMap(m map[uint64]bool) map[uint64]bool {
	cp := make(map[uint64]bool, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return cp
}
