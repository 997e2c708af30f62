package signer

import (
	"hash"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// DigestLength is the size of a Keccak-256 digest in bytes.
const DigestLength = common.HashLength

// Keccak256 returns the Keccak-256 digest of message. This is the original
// Keccak padding used by Ethereum, not NIST SHA3-256.
func Keccak256(message []byte) common.Hash {
	return crypto.Keccak256Hash(message)
}

// NewHasher returns a streaming Keccak-256 state. Its Sum matches Keccak256
// over the concatenation of everything written to it.
func NewHasher() hash.Hash {
	return crypto.NewKeccakState()
}
