package signer

import (
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// SignatureLength is the size of a compact r || s signature in bytes.
const SignatureLength = 64

// Signature is a compact secp256k1 ECDSA signature: 32-byte big-endian r
// followed by 32-byte big-endian s, with s in the lower half of the group
// order. It carries no recovery byte.
type Signature [SignatureLength]byte

// Bytes returns a copy of the signature as a byte slice.
func (s Signature) Bytes() []byte {
	b := make([]byte, SignatureLength)
	copy(b, s[:])
	return b
}

// String returns the 0x-prefixed hex encoding of the signature.
func (s Signature) String() string {
	return hexutil.Encode(s[:])
}

// MarshalText returns the 0x-prefixed hex encoding of the signature.
func (s Signature) MarshalText() ([]byte, error) {
	return hexutil.Bytes(s[:]).MarshalText()
}

// UnmarshalText parses a 0x-prefixed hex signature of exactly 64 bytes.
func (s *Signature) UnmarshalText(input []byte) error {
	return hexutil.UnmarshalFixedText("Signature", input, s[:])
}
