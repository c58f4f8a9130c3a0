package launchpad

import (
	"github.com/launchforge/launchpad-go/chain"
	"github.com/launchforge/launchpad-go/issuance"
	"github.com/launchforge/launchpad-go/platform"
)

// NewRuntime creates the deterministic ledger runtime every component
// registers with.
//
// Example:
//
// rt := launchpad.NewRuntime(logger)
//
// rt.SetNow(time.Now().Unix())
var NewRuntime = chain.NewRuntime

// NewPlatform creates the issuing platform.
//
// Example:
//
// pools := amm.NewRegistry(rt, nil)
//
// farms := farm.NewRegistry(rt)
//
// p, _ := launchpad.NewPlatform(rt, cfg, pools, farms, logger)
//
// in, _ := p.Deploy(tx, params, platform.NewSalt())
var NewPlatform = platform.New

// NewInstance creates a bare, uninitialized issuance instance for callers
// that wire their own pool and farm providers instead of going through a
// platform deployment.
var NewInstance = issuance.New
