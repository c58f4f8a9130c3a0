package chain

import (
	"crypto/sha256"

	"github.com/gagliardetto/solana-go"
)

// Address identifies an account on the ledger.
type Address = solana.PublicKey

// ProgramID is the owner program of every seed-derived account.
var ProgramID = Address(sha256.Sum256([]byte("launchpad-go:program:v1")))

// ZeroAddress is the all-zero sentinel, meaning "unset" wherever an
// optional address appears in configuration.
var ZeroAddress = Address{}

// DeriveAddress returns the deterministic address for (base, seed).
// Every replica derives the same address, so create-if-missing races
// between callers commute: whichever creation commits first wins and
// later callers observe the same account.
func DeriveAddress(base Address, seed string) (Address, error) {
	return solana.CreateWithSeed(base, seed, ProgramID)
}

// MustDeriveAddress is DeriveAddress for seeds known to be valid.
func MustDeriveAddress(base Address, seed string) Address {
	addr, err := DeriveAddress(base, seed)
	if err != nil {
		panic(err)
	}
	return addr
}

// AddressFromSeed builds a standalone deterministic address for tests and
// tooling, with no base account.
func AddressFromSeed(seed string) Address {
	return Address(sha256.Sum256([]byte(seed)))
}
