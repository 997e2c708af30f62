package signer

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"fmt"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "0x1234567890abcdef1234567890abcdef1234567890abcdef1234567890abcdef"

func newTestKey(t *testing.T) *PrivateKey {
	t.Helper()
	k, err := crypto.GenerateKey()
	require.NoError(t, err)
	key, err := PrivateKeyFromECDSA(k)
	require.NoError(t, err)
	return key
}

func TestNewPrivateKey(t *testing.T) {
	n := crypto.S256().Params().N

	tests := []struct {
		name    string
		key     []byte
		wantErr bool
	}{
		{"one", math.PaddedBigBytes(big.NewInt(1), KeyLength), false},
		{"order minus one", math.PaddedBigBytes(new(big.Int).Sub(n, big.NewInt(1)), KeyLength), false},
		{"zero", make([]byte, KeyLength), true},
		{"order", math.PaddedBigBytes(n, KeyLength), true},
		{"order plus one", math.PaddedBigBytes(new(big.Int).Add(n, big.NewInt(1)), KeyLength), true},
		{"short", make([]byte, KeyLength-1), true},
		{"long", append([]byte{0}, math.PaddedBigBytes(big.NewInt(1), KeyLength)...), true},
		{"nil", nil, true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key, err := NewPrivateKey(test.key)
			if test.wantErr {
				require.ErrorIs(t, err, ErrInvalidKey)
				assert.Nil(t, key)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.key, crypto.FromECDSA(key.ecdsa))

			scalar := key.scalar.Key.Bytes()
			assert.Equal(t, test.key, scalar[:])
		})
	}
}

func TestHexToPrivateKey(t *testing.T) {
	withPrefix, err := HexToPrivateKey(testKeyHex)
	require.NoError(t, err)
	withoutPrefix, err := HexToPrivateKey(testKeyHex[2:])
	require.NoError(t, err)
	assert.Equal(t, withPrefix.ecdsa.D, withoutPrefix.ecdsa.D)

	for _, in := range []string{"", "0x", "zz", "0x1234", testKeyHex + "00"} {
		_, err := HexToPrivateKey(in)
		assert.ErrorIs(t, err, ErrInvalidKey, "input %q", in)
	}
}

func TestPrivateKeyFromECDSA(t *testing.T) {
	t.Run("secp256k1", func(t *testing.T) {
		k, err := crypto.GenerateKey()
		require.NoError(t, err)
		key, err := PrivateKeyFromECDSA(k)
		require.NoError(t, err)
		assert.Equal(t, 0, k.D.Cmp(key.ecdsa.D))
	})

	t.Run("nil", func(t *testing.T) {
		_, err := PrivateKeyFromECDSA(nil)
		assert.ErrorIs(t, err, ErrInvalidKey)

		_, err = PrivateKeyFromECDSA(&ecdsa.PrivateKey{})
		assert.ErrorIs(t, err, ErrInvalidKey)
	})

	t.Run("other curve", func(t *testing.T) {
		k, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		require.NoError(t, err)
		_, err = PrivateKeyFromECDSA(k)
		assert.ErrorIs(t, err, ErrInvalidKey)
	})
}

func TestPrivateKeyStringHidesKey(t *testing.T) {
	key, err := HexToPrivateKey(testKeyHex)
	require.NoError(t, err)

	for _, out := range []string{
		key.String(),
		fmt.Sprintf("%v", key),
		fmt.Sprintf("%s", key),
		fmt.Sprintf("%#v", key),
	} {
		assert.NotContains(t, out, "1234567890abcdef")
	}
}
