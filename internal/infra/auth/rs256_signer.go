// Package auth provides concrete implementations for signing-related domain services.
package auth

import (
	"crypto/rsa"
	"strings"
	"sync"

	"stampcard/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

// ErrInvalidPrivateKey is returned when the PEM is not an unencrypted RSA key.
var ErrInvalidPrivateKey = errors.New("invalid RSA private key")

// rs256Signer is a concrete implementation of the JWTSigner interface.
// The header is always {"alg":"RS256","typ":"JWT"} and PKCS#1 v1.5 signing
// is deterministic, so equal claims and key give equal tokens.
type rs256Signer struct {
	mu   sync.Mutex
	keys map[string]*rsa.PrivateKey
}

// NewRS256Signer is the constructor for rs256Signer.
func NewRS256Signer() service.JWTSigner {
	return &rs256Signer{
		keys: make(map[string]*rsa.PrivateKey),
	}
}

// Sign encodes claims and signs them with privateKeyPEM (PKCS#1 or PKCS#8).
func (s *rs256Signer) Sign(claims map[string]any, privateKeyPEM string) (string, error) {
	key, err := s.key(privateKeyPEM)
	if err != nil {
		return "", err
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.MapClaims(claims))
	signed, err := token.SignedString(key)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign JWT")
	}

	return signed, nil
}

func (s *rs256Signer) key(privateKeyPEM string) (*rsa.PrivateKey, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if key, ok := s.keys[privateKeyPEM]; ok {
		return key, nil
	}

	key, err := ParsePrivateKey(privateKeyPEM)
	if err != nil {
		return nil, err
	}
	s.keys[privateKeyPEM] = key

	return key, nil
}

// ParsePrivateKey parses an RSA key from PEM. Escaped "\n" sequences, as
// found in keys passed through environment variables, are unescaped first.
func ParsePrivateKey(privateKeyPEM string) (*rsa.PrivateKey, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(privateKeyPEM), `\n`, "\n")
	if normalized == "" {
		return nil, errors.Wrap(ErrInvalidPrivateKey, "empty key")
	}

	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(normalized))
	if err != nil {
		return nil, errors.Wrap(ErrInvalidPrivateKey, err.Error())
	}

	return key, nil
}
