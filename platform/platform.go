// Package platform is the issuing platform around issuance instances: it
// holds the protocol fee rate and fee sink, the implementation template
// address, the admin identity that confirms migrations, and the
// clone-and-initialize deployment entry point.
package platform

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/launchforge/launchpad-go/amm"
	"github.com/launchforge/launchpad-go/chain"
	"github.com/launchforge/launchpad-go/farm"
	"github.com/launchforge/launchpad-go/issuance"
)

// MaxFeeBps is the fixed ceiling on the protocol fee rate.
const MaxFeeBps = 1000

var (
	ErrNotPlatformOwner = errors.New("platform: caller is not the platform owner")
	ErrFeeTooHigh       = errors.New("platform: fee rate above ceiling")
	ErrSaltTaken        = errors.New("platform: salt already used")
)

type Platform struct {
	rt    *chain.Runtime
	log   *zap.Logger
	pools *amm.Registry
	farms *farm.Registry

	owner    chain.Address
	admin    chain.Address
	feeSink  chain.Address
	feeBps   uint16
	template chain.Address

	instances map[chain.Address]*issuance.Instance
}

var _ issuance.PlatformInfo = (*Platform)(nil)

type Config struct {
	Owner    chain.Address
	Admin    chain.Address
	FeeSink  chain.Address
	FeeBps   uint16
	Template chain.Address
}

func New(rt *chain.Runtime, cfg Config, pools *amm.Registry, farms *farm.Registry, log *zap.Logger) (*Platform, error) {
	if cfg.FeeBps > MaxFeeBps {
		return nil, ErrFeeTooHigh
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Platform{
		rt:        rt,
		log:       log,
		pools:     pools,
		farms:     farms,
		owner:     cfg.Owner,
		admin:     cfg.Admin,
		feeSink:   cfg.FeeSink,
		feeBps:    cfg.FeeBps,
		template:  cfg.Template,
		instances: make(map[chain.Address]*issuance.Instance),
	}, nil
}

func (p *Platform) FeeBps() uint16        { return p.feeBps }
func (p *Platform) FeeSink() chain.Address { return p.feeSink }
func (p *Platform) Admin() chain.Address   { return p.admin }
func (p *Platform) Owner() chain.Address   { return p.owner }
func (p *Platform) Template() chain.Address { return p.template }

// SetFeeBps updates the protocol fee rate. Platform owner only; the
// ceiling is fixed.
func (p *Platform) SetFeeBps(tx chain.Tx, bps uint16) error {
	if tx.Caller != p.owner {
		return ErrNotPlatformOwner
	}
	if bps > MaxFeeBps {
		return ErrFeeTooHigh
	}
	p.feeBps = bps
	return nil
}

// SetTemplate updates the implementation template address new instances
// clone. Platform owner only.
func (p *Platform) SetTemplate(tx chain.Tx, template chain.Address) error {
	if tx.Caller != p.owner {
		return ErrNotPlatformOwner
	}
	p.template = template
	return nil
}

// NewSalt returns a fresh deployment salt. Salts fit the 32-byte seed
// limit of derived addresses.
func NewSalt() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Deploy clones the template at the salt-derived address and runs its
// one-time setup. Returns the initialized instance.
func (p *Platform) Deploy(tx chain.Tx, params issuance.SetupParams, salt string) (*issuance.Instance, error) {
	addr, err := chain.DeriveAddress(p.template, salt)
	if err != nil {
		return nil, err
	}
	if _, ok := p.instances[addr]; ok {
		return nil, ErrSaltTaken
	}
	in := issuance.New(p.rt, addr, p, p.pools, p.farms, issuance.WithLogger(p.log))
	if err := in.Initialize(tx, params); err != nil {
		return nil, err
	}
	p.pools.Bind(addr, in.Collection())
	p.instances[addr] = in
	p.log.Info("instance deployed",
		zap.Stringer("address", addr),
		zap.String("name", params.Name),
	)
	return in, nil
}

// Instance resolves a deployed instance by address.
func (p *Platform) Instance(addr chain.Address) (*issuance.Instance, bool) {
	in, ok := p.instances[addr]
	return in, ok
}
