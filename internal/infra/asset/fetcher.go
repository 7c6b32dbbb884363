// Package asset downloads pass images and normalizes them to PNG.
package asset

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"time"

	"stampcard/config"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/domain/service"

	"github.com/kolesa-team/go-webp/decoder"
	"github.com/kolesa-team/go-webp/webp"
	"go.uber.org/fx"
)

var pngSignature = []byte("\x89PNG\r\n\x1a\n")

type httpFetcher struct {
	client   *http.Client
	timeout  time.Duration
	maxBytes int64
	logger   *slog.Logger
}

// FetcherParams holds dependencies for the asset fetcher, injected by Fx.
type FetcherParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger

	HTTPClient *http.Client `optional:"true"`
}

// NewFetcher creates an AssetFetcher bounded by the configured timeout and size.
func NewFetcher(params FetcherParams) service.AssetFetcher {
	client := params.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	return &httpFetcher{
		client:   client,
		timeout:  params.Config.Assets.FetchTimeout,
		maxBytes: params.Config.Assets.MaxBytes,
		logger:   params.Logger,
	}
}

// Fetch downloads url and returns PNG bytes. Every failure is an
// *AssetFetchError so callers can omit the asset.
func (f *httpFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, domainerrors.NewAssetFetchError(url, 0, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, domainerrors.NewAssetFetchError(url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domainerrors.NewAssetFetchError(url, resp.StatusCode, nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes+1))
	if err != nil {
		return nil, domainerrors.NewAssetFetchError(url, resp.StatusCode, err)
	}
	if int64(len(body)) > f.maxBytes {
		return nil, domainerrors.NewAssetFetchError(url, resp.StatusCode, ErrAssetTooLarge)
	}

	out, err := ToPNG(body)
	if err != nil {
		return nil, domainerrors.NewAssetFetchError(url, resp.StatusCode, err)
	}

	f.logger.Debug("Asset fetched",
		slog.String("url", url),
		slog.Int("bytes", len(out)),
	)

	return out, nil
}

// ToPNG returns data unchanged when it is already PNG and re-encodes
// WEBP, JPEG and GIF images otherwise.
func ToPNG(data []byte) ([]byte, error) {
	if bytes.HasPrefix(data, pngSignature) {
		return data, nil
	}

	img, err := decodeImage(data)
	if err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := png.Encode(&out, img); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func decodeImage(data []byte) (image.Image, error) {
	if isWEBP(data) {
		return webp.Decode(bytes.NewReader(data), &decoder.Options{})
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	return img, nil
}

func isWEBP(data []byte) bool {
	if len(data) < 12 {
		return false
	}

	return string(data[0:4]) == "RIFF" && string(data[8:12]) == "WEBP"
}
