package chain

import (
	"errors"
	"sync"

	"go.uber.org/zap"
)

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrValueOverflow       = errors.New("balance overflow")
)

// Tx carries the context the ledger attaches to one serialized operation:
// who signed it, how much native value rides along, and the ledger clock
// at execution time.
type Tx struct {
	Caller Address
	Value  uint64
	Now    int64
}

// Stateful is implemented by every component whose state must revert when
// an operation fails. Snapshot returns an opaque deep copy, Restore puts
// it back.
type Stateful interface {
	Snapshot() any
	Restore(snapshot any)
}

// Runtime is an in-process stand-in for the shared ledger: it serializes
// operations, keeps native-value balances, owns the clock, and makes every
// executed operation all-or-nothing by snapshotting all registered state
// holders up front and restoring them on failure.
type Runtime struct {
	mu       sync.Mutex
	now      int64
	balances map[Address]uint64
	states   []Stateful
	log      *zap.Logger
}

func NewRuntime(log *zap.Logger) *Runtime {
	if log == nil {
		log = zap.NewNop()
	}
	rt := &Runtime{
		balances: make(map[Address]uint64),
		log:      log,
	}
	rt.states = append(rt.states, (*balanceState)(rt))
	return rt
}

// Register adds a state holder to the rollback set. Components register
// once, at construction.
func (rt *Runtime) Register(s Stateful) {
	rt.states = append(rt.states, s)
}

// Execute runs fn atomically under the given transaction context. If fn
// returns an error, every registered state holder is restored to its
// pre-execution snapshot and the error is returned; no partial effects
// remain visible.
func (rt *Runtime) Execute(tx Tx, fn func(tx Tx) error) error {
	rt.mu.Lock()
	defer rt.mu.Unlock()

	if tx.Now == 0 {
		tx.Now = rt.now
	}
	snapshots := make([]any, len(rt.states))
	for i, s := range rt.states {
		snapshots[i] = s.Snapshot()
	}
	if err := fn(tx); err != nil {
		// Components registered by the failed fn are dropped with it.
		rt.states = rt.states[:len(snapshots)]
		for i, snap := range snapshots {
			rt.states[i].Restore(snap)
		}
		return err
	}
	return nil
}

// Now returns the ledger clock. Time only moves via SetNow/Advance; no
// operation ever blocks waiting for it.
func (rt *Runtime) Now() int64 { return rt.now }

func (rt *Runtime) SetNow(now int64) { rt.now = now }

func (rt *Runtime) Advance(seconds int64) { rt.now += seconds }

// Balance returns the native-value balance of addr.
func (rt *Runtime) Balance(addr Address) uint64 { return rt.balances[addr] }

// Fund credits addr out of thin air. Deployment and test harness use only.
func (rt *Runtime) Fund(addr Address, amount uint64) error {
	return rt.credit(addr, amount)
}

// Move transfers native value between two accounts.
func (rt *Runtime) Move(from, to Address, amount uint64) error {
	if amount == 0 {
		return nil
	}
	if rt.balances[from] < amount {
		return ErrInsufficientBalance
	}
	if err := rt.credit(to, amount); err != nil {
		return err
	}
	rt.balances[from] -= amount
	return nil
}

func (rt *Runtime) credit(addr Address, amount uint64) error {
	if rt.balances[addr]+amount < rt.balances[addr] {
		return ErrValueOverflow
	}
	rt.balances[addr] += amount
	return nil
}

// balanceState lets the runtime's own balance table participate in the
// rollback set like any other component.
type balanceState Runtime

func (b *balanceState) Snapshot() any {
	cp := make(map[Address]uint64, len(b.balances))
	for k, v := range b.balances {
		cp[k] = v
	}
	return cp
}

func (b *balanceState) Restore(snapshot any) {
	b.balances = snapshot.(map[Address]uint64)
}
