// Package merkle implements the whitelist commitment scheme: a hash tree
// over an address list, with per-address membership proofs. The issuance
// instance only ever verifies proofs; BuildTree is the offline tool used
// by deployers to produce the root and hand proofs to minters.
package merkle

import (
	"crypto/sha256"
	"errors"

	"github.com/launchforge/launchpad-go/chain"
)

// Root commits to an allowed-address set. The zero root means "no
// whitelist".
type Root [32]byte

// Proof is the sibling path from an address leaf to the root.
type Proof [][32]byte

var ErrEmptySet = errors.New("merkle: empty address set")

// IsZero reports whether the root is the no-whitelist sentinel.
func (r Root) IsZero() bool { return r == Root{} }

// Leaf and interior nodes are domain-separated so a proof for an interior
// node can never be replayed as an address.
func leafHash(addr chain.Address) [32]byte {
	buf := make([]byte, 1+len(addr))
	buf[0] = 0x00
	copy(buf[1:], addr[:])
	return sha256.Sum256(buf)
}

// Siblings hash in sorted order, so a proof carries no left/right flags.
func nodeHash(a, b [32]byte) [32]byte {
	var buf [65]byte
	buf[0] = 0x01
	if lessBytes(b, a) {
		a, b = b, a
	}
	copy(buf[1:33], a[:])
	copy(buf[33:65], b[:])
	return sha256.Sum256(buf[:])
}

func lessBytes(a, b [32]byte) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// Verify reports whether proof demonstrates that addr is a member of the
// set committed to by root. Pure function, no state.
func Verify(root Root, proof Proof, addr chain.Address) bool {
	if root.IsZero() {
		return false
	}
	node := leafHash(addr)
	for _, sibling := range proof {
		node = nodeHash(node, sibling)
	}
	return node == [32]byte(root)
}

// BuildTree commits to addrs and returns the root together with one proof
// per address. An odd node at any level is promoted unhashed.
func BuildTree(addrs []chain.Address) (Root, map[chain.Address]Proof, error) {
	if len(addrs) == 0 {
		return Root{}, nil, ErrEmptySet
	}

	level := make([][32]byte, len(addrs))
	// leafIndex[i] tracks which node in the current level the i-th
	// address's path has reached.
	leafIndex := make([]int, len(addrs))
	proofs := make(map[chain.Address]Proof, len(addrs))
	for i, addr := range addrs {
		level[i] = leafHash(addr)
		leafIndex[i] = i
	}

	for len(level) > 1 {
		next := make([][32]byte, 0, (len(level)+1)/2)
		for i := 0; i < len(level); i += 2 {
			if i+1 == len(level) {
				next = append(next, level[i])
				continue
			}
			next = append(next, nodeHash(level[i], level[i+1]))
		}
		for li, addr := range addrs {
			pos := leafIndex[li]
			sibling := pos ^ 1
			if sibling < len(level) {
				proofs[addr] = append(proofs[addr], level[sibling])
			}
			leafIndex[li] = pos / 2
		}
		level = next
	}

	return Root(level[0]), proofs, nil
}
