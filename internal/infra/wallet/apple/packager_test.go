package apple

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha1" //nolint:gosec // test mirrors the manifest digest
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/service"
	"stampcard/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	mu      sync.Mutex
	content map[string][]byte
	fetched []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.fetched = append(f.fetched, url)
	if c, ok := f.content[url]; ok {
		return c, nil
	}

	return nil, domainerrors.NewAssetFetchError(url, http.StatusNotFound, nil)
}

type fixedSigner struct {
	signature service.PassSignature
	err       error
	manifest  []byte
}

func (s *fixedSigner) Sign(_ context.Context, manifest []byte) (service.PassSignature, error) {
	s.manifest = manifest

	return s.signature, s.err
}

type testPackager struct {
	packager service.ApplePassPackager
	fetcher  *fakeFetcher
}

func createTestPackager(t *testing.T, signer service.PassSigner) *testPackager {
	t.Helper()

	cfg := &config.Config{}
	cfg.Wallet.Apple = config.AppleWalletConfig{
		PassTypeIdentifier: "pass.com.stampcard.loyalty",
		TeamIdentifier:     "ABCDE12345",
		OrganizationName:   "Stampcard",
	}

	fetcher := &fakeFetcher{content: map[string][]byte{
		"https://cdn.test/logo.png":  []byte("logo-bytes"),
		"https://cdn.test/strip.png": []byte("strip-bytes"),
	}}

	return &testPackager{
		packager: NewPackager(PackagerParams{
			Config:  cfg,
			Fetcher: fetcher,
			Signer:  signer,
			Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		}),
		fetcher: fetcher,
	}
}

func testSnapshot() *entity.CardSnapshot {
	return &entity.CardSnapshot{
		Business: &entity.Business{
			ID:          uuid.MustParse("0b6f3e1c-58a4-4bd5-a4e0-9c9d4b1f0a11"),
			Name:        "Acme Coffee",
			ProgramType: entity.ProgramTypeStamps,
			Branding: entity.BrandingConfig{
				Assets: entity.Assets{
					Logo:  "https://cdn.test/logo.png",
					Strip: "https://cdn.test/branded-strip.png",
				},
			},
			Rules: entity.RulesConfig{TargetStamps: 10, RewardName: "Free latte"},
		},
		Card: &entity.LoyaltyCard{
			ID:             uuid.MustParse("7d9f1c2e-1111-4a2b-9c3d-123456789abc"),
			CurrentBalance: 3,
		},
	}
}

func sha1Hex(b []byte) string {
	sum := sha1.Sum(b) //nolint:gosec // test mirrors the manifest digest

	return hex.EncodeToString(sum[:])
}

func TestPackager_Package(t *testing.T) {
	tp := createTestPackager(t, NewUnsignedSigner())

	pass, err := tp.packager.Package(context.Background(), testSnapshot(), "https://cdn.test/strip.png")
	require.NoError(t, err)

	assert.Equal(t, "7d9f1c2e-1111-4a2b-9c3d-123456789abc", pass.SerialNumber)
	assert.Equal(t, "pass.com.stampcard.loyalty", pass.PassTypeIdentifier)
	assert.False(t, pass.Signed())
	assert.Equal(t, service.Unsigned{Reason: UnsignedReason}, pass.Signature)
	assert.Empty(t, pass.Omitted)

	assert.Equal(t, []byte("logo-bytes"), pass.Files[FileLogo])
	assert.Equal(t, []byte("logo-bytes"), pass.Files[FileIcon])
	assert.Equal(t, []byte("strip-bytes"), pass.Files[FileStrip])
	assert.NotContains(t, pass.Files, FileSignature)

	// every bundled file except the manifest itself is digested
	require.Len(t, pass.Manifest, 4)
	for name, digest := range pass.Manifest {
		assert.Equal(t, sha1Hex(pass.Files[name]), digest, name)
	}
	assert.NotContains(t, pass.Manifest, FileManifest)

	var manifest map[string]string
	require.NoError(t, json.Unmarshal(pass.Files[FileManifest], &manifest))
	assert.Equal(t, pass.Manifest, manifest)

	var passJSON map[string]any
	require.NoError(t, json.Unmarshal(pass.Files[FilePassJSON], &passJSON))
	assert.Equal(t, "7d9f1c2e-1111-4a2b-9c3d-123456789abc", passJSON["serialNumber"])
	assert.Equal(t, "ABCDE12345", passJSON["teamIdentifier"])
}

func TestPackager_OmitsFailedAssets(t *testing.T) {
	tp := createTestPackager(t, NewUnsignedSigner())

	// no rendered strip, and the branded strip is not downloadable
	pass, err := tp.packager.Package(context.Background(), testSnapshot(), "")
	require.NoError(t, err)

	assert.Equal(t, []string{FileStrip}, pass.Omitted)
	assert.NotContains(t, pass.Files, FileStrip)
	assert.NotContains(t, pass.Manifest, FileStrip)
	assert.Contains(t, tp.fetcher.fetched, "https://cdn.test/branded-strip.png")
}

func TestPackager_Pkcs7SignatureIsBundled(t *testing.T) {
	signer := &fixedSigner{signature: service.Pkcs7Signed{Signature: []byte("sig")}}
	tp := createTestPackager(t, signer)

	pass, err := tp.packager.Package(context.Background(), testSnapshot(), "https://cdn.test/strip.png")
	require.NoError(t, err)

	assert.True(t, pass.Signed())
	assert.Equal(t, []byte("sig"), pass.Files[FileSignature])
	assert.Equal(t, pass.Files[FileManifest], signer.manifest)
	assert.NotContains(t, pass.Manifest, FileSignature)
}

func TestPackager_SignerError(t *testing.T) {
	signer := &fixedSigner{err: errors.New("hsm unavailable")}
	tp := createTestPackager(t, signer)

	_, err := tp.packager.Package(context.Background(), testSnapshot(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hsm unavailable")
}

func TestPackager_RequiresIdentity(t *testing.T) {
	p := NewPackager(PackagerParams{
		Config:  &config.Config{},
		Fetcher: &fakeFetcher{},
		Signer:  NewUnsignedSigner(),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, err := p.Package(context.Background(), testSnapshot(), "")
	assert.True(t, errors.Is(err, domainerrors.ErrConfiguration))
}

func TestPackager_Bundle(t *testing.T) {
	tp := createTestPackager(t, NewUnsignedSigner())

	pass, err := tp.packager.Package(context.Background(), testSnapshot(), "https://cdn.test/strip.png")
	require.NoError(t, err)

	bundle, err := tp.packager.Bundle(pass)
	require.NoError(t, err)

	again, err := tp.packager.Bundle(pass)
	require.NoError(t, err)
	assert.Equal(t, bundle, again)

	zr, err := zip.NewReader(bytes.NewReader(bundle), int64(len(bundle)))
	require.NoError(t, err)

	var names []string
	for _, f := range zr.File {
		names = append(names, f.Name)

		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())

		assert.Equal(t, pass.Files[f.Name], content, f.Name)
	}
	assert.Equal(t, []string{FileIcon, FileLogo, FileManifest, FilePassJSON, FileStrip}, names)
}
