// Package apple packages Apple Wallet pass bundles.
package apple

import (
	"archive/zip"
	"bytes"
	"context"
	"crypto/sha1" //nolint:gosec // manifest.json digests are SHA-1 by format
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"stampcard/config"
	"stampcard/internal/domain/entity"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/service"
	"stampcard/internal/domain/wallet"
	"stampcard/internal/errors"

	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// Bundle file names.
const (
	FilePassJSON  = "pass.json"
	FileManifest  = "manifest.json"
	FileSignature = "signature"
	FileLogo      = "logo.png"
	FileIcon      = "icon.png"
	FileStrip     = "strip.png"
)

type packager struct {
	identity wallet.AppleIdentity
	fetcher  service.AssetFetcher
	signer   service.PassSigner
	logger   *slog.Logger
}

// PackagerParams holds dependencies for the pass packager, injected by Fx.
type PackagerParams struct {
	fx.In

	Config  *config.Config
	Fetcher service.AssetFetcher
	Signer  service.PassSigner
	Logger  *slog.Logger
}

// NewPackager creates an ApplePassPackager for the configured pass identity.
func NewPackager(params PackagerParams) service.ApplePassPackager {
	apple := params.Config.Wallet.Apple

	return &packager{
		identity: wallet.AppleIdentity{
			PassTypeIdentifier: apple.PassTypeIdentifier,
			TeamIdentifier:     apple.TeamIdentifier,
			OrganizationName:   apple.OrganizationName,
		},
		fetcher: params.Fetcher,
		signer:  params.Signer,
		logger:  params.Logger,
	}
}

// Package builds pass.json, downloads the referenced images, and computes
// the manifest. An image that cannot be fetched is left out of the bundle.
func (p *packager) Package(ctx context.Context, snap *entity.CardSnapshot, stripURL string) (*service.ApplePass, error) {
	if p.identity.PassTypeIdentifier == "" || p.identity.TeamIdentifier == "" {
		return nil, domainerrors.ErrConfiguration.WithDetails("apple pass type identifier and team identifier are required")
	}

	passJSON, err := json.Marshal(wallet.BuildPassJSON(snap, p.identity))
	if err != nil {
		return nil, errors.Wrap(err, "marshal pass.json")
	}

	files := map[string][]byte{FilePassJSON: passJSON}
	omitted, err := p.fetchAssets(ctx, assetURLs(snap.Business, stripURL), files)
	if err != nil {
		return nil, err
	}

	manifest := make(map[string]string, len(files))
	for name, content := range files {
		sum := sha1.Sum(content) //nolint:gosec // required by the pass format
		manifest[name] = hex.EncodeToString(sum[:])
	}

	manifestJSON, err := json.Marshal(manifest)
	if err != nil {
		return nil, errors.Wrap(err, "marshal manifest.json")
	}
	files[FileManifest] = manifestJSON

	signature, err := p.signer.Sign(ctx, manifestJSON)
	if err != nil {
		return nil, errors.Wrap(err, "sign manifest")
	}
	if signed, ok := signature.(service.Pkcs7Signed); ok {
		files[FileSignature] = signed.Signature
	}

	return &service.ApplePass{
		SerialNumber:       wallet.AppleSerialNumber(snap.Card),
		PassTypeIdentifier: p.identity.PassTypeIdentifier,
		Files:              files,
		Manifest:           manifest,
		Signature:          signature,
		Omitted:            omitted,
	}, nil
}

// Bundle zips every file of pass in name order.
func (p *packager) Bundle(pass *service.ApplePass) ([]byte, error) {
	names := make([]string, 0, len(pass.Files))
	for name := range pass.Files {
		names = append(names, name)
	}
	sort.Strings(names)

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, name := range names {
		w, err := zw.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			return nil, errors.Wrapf(err, "create %s", name)
		}
		if _, err := w.Write(pass.Files[name]); err != nil {
			return nil, errors.Wrapf(err, "write %s", name)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, errors.Wrap(err, "close pass bundle")
	}

	return buf.Bytes(), nil
}

// assetURLs maps bundle file names to their source URLs. The strip prefers
// the rendered strip and falls back to the branded strip image.
func assetURLs(b *entity.Business, stripURL string) map[string]string {
	assets := b.Branding.Assets
	urls := map[string]string{}

	if assets.Logo != "" {
		urls[FileLogo] = assets.Logo
	}
	switch {
	case assets.StampIcon != "":
		urls[FileIcon] = assets.StampIcon
	case assets.Logo != "":
		urls[FileIcon] = assets.Logo
	}
	switch {
	case strings.TrimSpace(stripURL) != "":
		urls[FileStrip] = stripURL
	case assets.Strip != "":
		urls[FileStrip] = assets.Strip
	}

	return urls
}

// fetchAssets downloads urls concurrently into files and returns the sorted
// names of the assets that failed.
func (p *packager) fetchAssets(ctx context.Context, urls map[string]string, files map[string][]byte) ([]string, error) {
	var (
		mu      sync.Mutex
		omitted []string
	)

	g, gctx := errgroup.WithContext(ctx)
	for name, url := range urls {
		g.Go(func() error {
			content, err := p.fetcher.Fetch(gctx, url)

			mu.Lock()
			defer mu.Unlock()

			if err != nil {
				p.logger.WarnContext(ctx, "Omitting pass asset",
					slog.String("file", name),
					slog.String("url", url),
					slog.Any("error", err),
				)
				omitted = append(omitted, name)

				return nil
			}
			files[name] = content

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(err)
	}

	sort.Strings(omitted)

	return omitted, nil
}
