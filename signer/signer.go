package signer

import (
	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"
)

var _ Signer = (*PrivateKeySigner)(nil)

type Signer interface {
	SignHash(h common.Hash) (Signature, error)
}

// PrivateKeySigner signs with a fixed key. It holds no mutable state and may
// be shared between goroutines.
type PrivateKeySigner struct {
	key    *PrivateKey
	logger *zap.Logger
}

type Option func(*PrivateKeySigner)

// WithLogger sets the logger used for debug output. Key material and message
// bytes are never logged.
func WithLogger(logger *zap.Logger) Option {
	return func(s *PrivateKeySigner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewPrivateKeySigner(key *PrivateKey, opts ...Option) (*PrivateKeySigner, error) {
	if key == nil {
		return nil, makeError(ErrInvalidKey, "private key is nil")
	}
	s := &PrivateKeySigner{
		key:    key,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *PrivateKeySigner) SignHash(h common.Hash) (Signature, error) {
	sig, err := SignDigest(s.key, h[:])
	return sig, s.observe("sign_hash", h, err)
}

func (s *PrivateKeySigner) Sign(message []byte) (Signature, error) {
	h := Keccak256(message)
	sig, err := SignDigest(s.key, h[:])
	return sig, s.observe("sign", h, err)
}

func (s *PrivateKeySigner) SignRecoverable(message []byte) (Signature, error) {
	h := Keccak256(message)
	sig, err := SignDigestRecoverable(s.key, h[:])
	return sig, s.observe("sign_recoverable", h, err)
}

func (s *PrivateKeySigner) observe(op string, h common.Hash, err error) error {
	if err != nil {
		s.logger.Debug("signing failed",
			zap.String("op", op),
			zap.Stringer("digest", h),
			zap.Error(err),
		)
		return err
	}
	s.logger.Debug("signed digest", zap.String("op", op), zap.Stringer("digest", h))
	return nil
}
