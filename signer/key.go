package signer

import (
	"crypto/ecdsa"
	"fmt"
	"strings"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// KeyLength is the size of a serialized private key in bytes.
const KeyLength = 32

// PrivateKey is a validated secp256k1 private key. The zero value is not
// usable; construct one with NewPrivateKey, HexToPrivateKey or
// PrivateKeyFromECDSA.
type PrivateKey struct {
	ecdsa  *ecdsa.PrivateKey
	scalar *secp256k1.PrivateKey
}

// NewPrivateKey validates b as a big-endian secp256k1 scalar.
func NewPrivateKey(b []byte) (*PrivateKey, error) {
	if len(b) != KeyLength {
		return nil, makeError(ErrInvalidKey, fmt.Sprintf(
			"private key must be %d bytes, got %d", KeyLength, len(b)))
	}
	k, err := crypto.ToECDSA(b)
	if err != nil {
		return nil, makeError(ErrInvalidKey, err.Error())
	}
	return newPrivateKey(k), nil
}

// HexToPrivateKey parses a hex-encoded private key. The 0x prefix is optional.
func HexToPrivateKey(s string) (*PrivateKey, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		s = "0x" + s
	}
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, makeError(ErrInvalidKey, fmt.Sprintf("could not decode private key: %v", err))
	}
	return NewPrivateKey(b)
}

// PrivateKeyFromECDSA adopts a key produced by go-ethereum's crypto package.
func PrivateKeyFromECDSA(k *ecdsa.PrivateKey) (*PrivateKey, error) {
	if k == nil || k.D == nil || k.Curve == nil {
		return nil, makeError(ErrInvalidKey, "private key is nil")
	}
	if k.Curve.Params().N.Cmp(crypto.S256().Params().N) != 0 {
		return nil, makeError(ErrInvalidKey, "private key is not on secp256k1")
	}
	return NewPrivateKey(crypto.FromECDSA(k))
}

func newPrivateKey(k *ecdsa.PrivateKey) *PrivateKey {
	return &PrivateKey{
		ecdsa:  k,
		scalar: secp256k1.PrivKeyFromBytes(crypto.FromECDSA(k)),
	}
}

// String hides the key material.
func (k *PrivateKey) String() string {
	return "PrivateKey{...}"
}

// GoString hides the key material from %#v.
func (k *PrivateKey) GoString() string {
	return k.String()
}
