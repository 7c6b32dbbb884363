package asset

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"stampcard/config"
	domainerrors "stampcard/internal/domain/errors"
	"stampcard/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 0x33, G: 0x66, B: 0x99, A: 0xff})
		}
	}

	return img
}

func encodePNG(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, testImage()))

	return buf.Bytes()
}

func encodeJPEG(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, testImage(), nil))

	return buf.Bytes()
}

func createTestFetcher(t *testing.T, handler http.Handler, maxBytes int64) (*httptest.Server, *httpFetcher) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{}
	cfg.Assets.FetchTimeout = time.Second
	cfg.Assets.MaxBytes = maxBytes

	f := NewFetcher(FetcherParams{
		Config:     cfg,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		HTTPClient: server.Client(),
	})

	return server, f.(*httpFetcher)
}

func TestFetcher_Fetch(t *testing.T) {
	pngBytes := encodePNG(t)
	jpegBytes := encodeJPEG(t)

	mux := http.NewServeMux()
	mux.HandleFunc("/logo.png", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write(pngBytes) })
	mux.HandleFunc("/photo.jpg", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write(jpegBytes) })
	mux.HandleFunc("/notes.txt", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("not an image")) })

	server, fetcher := createTestFetcher(t, mux, 1<<20)

	t.Run("png passes through", func(t *testing.T) {
		got, err := fetcher.Fetch(context.Background(), server.URL+"/logo.png")
		require.NoError(t, err)
		assert.Equal(t, pngBytes, got)
	})

	t.Run("jpeg is converted to png", func(t *testing.T) {
		got, err := fetcher.Fetch(context.Background(), server.URL+"/photo.jpg")
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(got, pngSignature))

		img, err := png.Decode(bytes.NewReader(got))
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())
	})

	t.Run("missing asset", func(t *testing.T) {
		_, err := fetcher.Fetch(context.Background(), server.URL+"/missing.png")

		var fetchErr *domainerrors.AssetFetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
		assert.Equal(t, server.URL+"/missing.png", fetchErr.URL)
	})

	t.Run("undecodable body", func(t *testing.T) {
		_, err := fetcher.Fetch(context.Background(), server.URL+"/notes.txt")

		var fetchErr *domainerrors.AssetFetchError
		require.True(t, errors.As(err, &fetchErr))
		assert.Equal(t, http.StatusOK, fetchErr.StatusCode)
	})
}

func TestFetcher_TooLarge(t *testing.T) {
	payload := encodePNG(t)
	server, fetcher := createTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(payload)
	}), int64(len(payload)-1))

	_, err := fetcher.Fetch(context.Background(), server.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrAssetTooLarge))
}

func TestFetcher_Timeout(t *testing.T) {
	release := make(chan struct{})
	server, fetcher := createTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}), 1<<20)
	defer close(release)
	fetcher.timeout = 50 * time.Millisecond

	_, err := fetcher.Fetch(context.Background(), server.URL)

	var fetchErr *domainerrors.AssetFetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.True(t, errors.IsRetryable(err))
}

func TestIsWEBP(t *testing.T) {
	assert.True(t, isWEBP([]byte("RIFF\x00\x00\x00\x00WEBPVP8 ")))
	assert.False(t, isWEBP([]byte("RIFF\x00\x00\x00\x00WAVE")))
	assert.False(t, isWEBP([]byte("RIFF")))
}
