package issuance

import (
	"bytes"
	"sort"

	bin "github.com/gagliardetto/binary"

	"github.com/launchforge/launchpad-go/chain"
)

// stateSnapshot is the borsh wire form of the instance's progress record.
// Replicas exchange it to verify convergence; the minter table is encoded
// as address-sorted entries so the bytes are deterministic.
type stateSnapshot struct {
	Initialized       bool
	MintedPerCategory []uint64
	TotalMinted       uint64
	TotalRaised       bin.Uint128
	MintCompleteTime  int64
	LockedSupply      uint64
	SeededFarmSupply  uint64
	TotalVestClaimed  uint64
	MigrationTarget   chain.Address
	MigrationProposed bool
	Minters           []minterEntry
}

type minterEntry struct {
	Address         chain.Address
	TotalMinted     uint64
	AvailableRefund uint64
}

func (in *Instance) snapshotState() stateSnapshot {
	s := in.state
	snap := stateSnapshot{
		Initialized:       s.initialized,
		MintedPerCategory: append([]uint64(nil), s.mintedPerCategory...),
		TotalMinted:       s.totalMinted,
		TotalRaised:       s.totalRaised,
		MintCompleteTime:  s.mintCompleteTime,
		LockedSupply:      s.lockedSupply,
		SeededFarmSupply:  s.seededFarmSupply,
		TotalVestClaimed:  s.totalVestClaimed,
		MigrationTarget:   s.migrationTarget,
		MigrationProposed: s.migrationProposed,
	}
	for addr, acct := range s.minters {
		snap.Minters = append(snap.Minters, minterEntry{
			Address:         addr,
			TotalMinted:     acct.TotalMinted,
			AvailableRefund: acct.AvailableRefund,
		})
	}
	sort.Slice(snap.Minters, func(i, j int) bool {
		return bytes.Compare(snap.Minters[i].Address[:], snap.Minters[j].Address[:]) < 0
	})
	return snap
}

func (in *Instance) restoreState(snap stateSnapshot) {
	minters := make(map[chain.Address]*MinterAccount, len(snap.Minters))
	for _, e := range snap.Minters {
		minters[e.Address] = &MinterAccount{TotalMinted: e.TotalMinted, AvailableRefund: e.AvailableRefund}
	}
	in.state = state{
		initialized:       snap.Initialized,
		mintedPerCategory: append([]uint64(nil), snap.MintedPerCategory...),
		totalMinted:       snap.TotalMinted,
		totalRaised:       snap.TotalRaised,
		mintCompleteTime:  snap.MintCompleteTime,
		lockedSupply:      snap.LockedSupply,
		seededFarmSupply:  snap.SeededFarmSupply,
		totalVestClaimed:  snap.TotalVestClaimed,
		migrationTarget:   snap.MigrationTarget,
		migrationProposed: snap.MigrationProposed,
		minters:           minters,
	}
}

// Snapshot and Restore let the runtime roll the instance back when an
// operation fails part-way.
func (in *Instance) Snapshot() any { return in.snapshotState() }

func (in *Instance) Restore(snapshot any) { in.restoreState(snapshot.(stateSnapshot)) }

// EncodeState serializes the progress record to its borsh wire form.
func (in *Instance) EncodeState() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bin.NewBorshEncoder(buf).Encode(in.snapshotState()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeState replaces the progress record with a previously encoded one.
// Intended for replica bootstrap; the configuration record is not part of
// the snapshot and must already match.
func (in *Instance) DecodeState(data []byte) error {
	var snap stateSnapshot
	if err := bin.NewBorshDecoder(data).Decode(&snap); err != nil {
		return err
	}
	in.restoreState(snap)
	return nil
}
