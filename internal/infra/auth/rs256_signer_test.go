package auth

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKCS8PrivateKey(key)
	require.NoError(t, err)

	return key, string(pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}))
}

func TestRS256Signer_RoundTrip(t *testing.T) {
	key, keyPEM := generateKey(t)
	signer := NewRS256Signer()

	claims := map[string]any{
		"iss": "svc@example.iam.gserviceaccount.com",
		"aud": "google",
		"typ": "savetowallet",
	}

	signed, err := signer.Sign(claims, keyPEM)
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)
	for _, p := range parts {
		assert.NotContains(t, p, "=")
	}

	header, err := base64.RawURLEncoding.DecodeString(parts[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"alg":"RS256","typ":"JWT"}`, string(header))

	parsed, err := jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return &key.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)
	assert.True(t, parsed.Valid)

	got, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, "savetowallet", got["typ"])
}

func TestRS256Signer_Deterministic(t *testing.T) {
	_, keyPEM := generateKey(t)
	signer := NewRS256Signer()
	claims := map[string]any{"iss": "a", "payload": map[string]any{"id": "x"}}

	first, err := signer.Sign(claims, keyPEM)
	require.NoError(t, err)
	second, err := signer.Sign(claims, keyPEM)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRS256Signer_WrongKeyFailsVerification(t *testing.T) {
	_, keyPEM := generateKey(t)
	other, _ := generateKey(t)

	signed, err := NewRS256Signer().Sign(map[string]any{"iss": "a"}, keyPEM)
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (any, error) {
		return &other.PublicKey, nil
	})
	assert.Error(t, err)
}

func TestParsePrivateKey(t *testing.T) {
	key, keyPEM := generateKey(t)

	t.Run("escaped newlines", func(t *testing.T) {
		escaped := strings.ReplaceAll(keyPEM, "\n", `\n`)
		parsed, err := ParsePrivateKey(escaped)
		require.NoError(t, err)
		assert.True(t, key.Equal(parsed))
	})

	t.Run("pkcs1", func(t *testing.T) {
		pkcs1 := string(pem.EncodeToMemory(&pem.Block{
			Type:  "RSA PRIVATE KEY",
			Bytes: x509.MarshalPKCS1PrivateKey(key),
		}))
		parsed, err := ParsePrivateKey(pkcs1)
		require.NoError(t, err)
		assert.True(t, key.Equal(parsed))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParsePrivateKey("not a key")
		assert.True(t, errors.Is(err, ErrInvalidPrivateKey))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NewRS256Signer().Sign(map[string]any{}, "  ")
		assert.True(t, errors.Is(err, ErrInvalidPrivateKey))
	})
}
