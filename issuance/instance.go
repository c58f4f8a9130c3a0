package issuance

import (
	bin "github.com/gagliardetto/binary"
	"go.uber.org/zap"

	"github.com/launchforge/launchpad-go/chain"
	"github.com/launchforge/launchpad-go/nft"
	"github.com/launchforge/launchpad-go/u128"
)

// state is the mutable progress record for one instance. Everything else
// on Instance is fixed at setup.
type state struct {
	initialized       bool
	mintedPerCategory []uint64
	totalMinted       uint64
	totalRaised       bin.Uint128
	mintCompleteTime  int64
	lockedSupply      uint64
	seededFarmSupply  uint64
	totalVestClaimed  uint64
	migrationTarget   chain.Address
	migrationProposed bool
	minters           map[chain.Address]*MinterAccount
}

// Instance is one deployed issuance event with its own isolated state.
type Instance struct {
	rt       *chain.Runtime
	addr     chain.Address
	platform PlatformInfo
	pools    PoolProvider
	farms    FarmProvider
	log      *zap.Logger

	params SetupParams
	col    *nft.Collection
	state  state
}

// Option configures optional instance collaborators.
type Option func(*Instance)

func WithLogger(log *zap.Logger) Option {
	return func(in *Instance) { in.log = log }
}

// New creates an uninitialized instance at addr. Initialize must run
// exactly once before any other operation.
func New(rt *chain.Runtime, addr chain.Address, platform PlatformInfo, pools PoolProvider, farms FarmProvider, opts ...Option) *Instance {
	in := &Instance{
		rt:       rt,
		addr:     addr,
		platform: platform,
		pools:    pools,
		farms:    farms,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(in)
	}
	in.log = in.log.With(zap.Stringer("instance", addr))
	return in
}

// Initialize records the setup parameters after validating them in order,
// zeroes every counter, and installs the transfer guard. Runs once.
func (in *Instance) Initialize(tx chain.Tx, params SetupParams) error {
	return in.rt.Execute(tx, func(tx chain.Tx) error {
		if in.state.initialized {
			return ErrAlreadyInitialized
		}
		if err := validateSetup(tx.Now, params); err != nil {
			return err
		}
		in.params = params
		in.col = nft.NewCollection(params.Name, params.Symbol, params.RoyaltyBps)
		in.col.SetGuard(in.transferGuard)
		// Joining the rollback set is deferred to here so an instance
		// whose setup is rejected never lingers as a dead state holder.
		in.rt.Register(in)
		in.rt.Register(in.col)
		in.state = state{
			initialized:       true,
			mintedPerCategory: make([]uint64, len(params.Categories)),
			totalRaised:       u128.Zero(),
			minters:           make(map[chain.Address]*MinterAccount),
		}
		in.log.Info("instance initialized",
			zap.String("name", params.Name),
			zap.Uint64("cap", params.Cap),
			zap.Int("categories", len(params.Categories)),
		)
		return nil
	})
}

// Address returns the instance's ledger identity.
func (in *Instance) Address() chain.Address { return in.addr }

// Collection exposes the unit ledger.
func (in *Instance) Collection() *nft.Collection { return in.col }

func (in *Instance) requireInitialized() error {
	if !in.state.initialized {
		return ErrNotInitialized
	}
	return nil
}
