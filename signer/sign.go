package signer

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
	"github.com/ethereum/go-ethereum/crypto"
)

// Sign hashes message with Keccak-256 and signs the digest with key using
// deterministic RFC 6979 ECDSA. The result is the compact r || s form.
func Sign(key *PrivateKey, message []byte) (Signature, error) {
	digest := Keccak256(message)
	return SignDigest(key, digest[:])
}

// SignRecoverable hashes message with Keccak-256 and signs the digest through
// the recoverable signing path. The recovery id is dropped, so the result is
// identical to Sign for the same key and message.
func SignRecoverable(key *PrivateKey, message []byte) (Signature, error) {
	digest := Keccak256(message)
	return SignDigestRecoverable(key, digest[:])
}

// SignDigest signs a 32-byte digest with key and returns r || s.
func SignDigest(key *PrivateKey, digest []byte) (Signature, error) {
	if err := checkSignInputs(key, digest); err != nil {
		return Signature{}, err
	}

	sig := ecdsa.Sign(key.scalar, digest)
	r, s := sig.R(), sig.S()

	var out Signature
	r.PutBytesUnchecked(out[:32])
	s.PutBytesUnchecked(out[32:])
	return out, nil
}

// SignDigestRecoverable signs a 32-byte digest with key through the
// recoverable signer and returns r || s without the recovery id.
func SignDigestRecoverable(key *PrivateKey, digest []byte) (Signature, error) {
	if err := checkSignInputs(key, digest); err != nil {
		return Signature{}, err
	}

	// [R || S || V], V is the recovery id in 0..3.
	sig, err := crypto.Sign(digest, key.ecdsa)
	if err != nil {
		return Signature{}, makeError(ErrInvalidKey, fmt.Sprintf("recoverable signing failed: %v", err))
	}

	var out Signature
	copy(out[:], sig[:SignatureLength])
	return out, nil
}

func checkSignInputs(key *PrivateKey, digest []byte) error {
	if key == nil || key.ecdsa == nil || key.scalar == nil {
		return makeError(ErrInvalidKey, "private key is nil")
	}
	if len(digest) != DigestLength {
		return makeError(ErrInvalidMessage, fmt.Sprintf(
			"digest must be %d bytes, got %d", DigestLength, len(digest)))
	}
	return nil
}
