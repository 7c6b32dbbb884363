// Package storage hosts rendered strips in a gocloud.dev blob bucket.
package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"path"
	"strings"

	"stampcard/config"
	"stampcard/internal/domain/service"
	"stampcard/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const (
	stripDir          = "strips"
	stripContentType  = "image/png"
	stripCacheControl = "public, max-age=31536000, immutable"
)

// ErrInvalidStripName is returned for names that are not a strip file. It
// matches service.ErrStripNotFound so callers answer 404 for both.
var ErrInvalidStripName = errors.Wrap(service.ErrStripNotFound, "invalid strip name")

// noopStore is used when no bucket is configured
type noopStore struct {
	logger *slog.Logger
}

func (s *noopStore) Put(ctx context.Context, _ []byte) (string, error) {
	s.logger.DebugContext(ctx, "[NoopStorage] Strip hosting disabled, skipping")

	return "", nil
}

func (s *noopStore) Get(context.Context, string) ([]byte, error) {
	return nil, service.ErrStripNotFound
}

type blobStore struct {
	bucket        *blob.Bucket
	prefix        string
	publicBaseURL string
	logger        *slog.Logger
}

// StoreParams holds dependencies for the strip store, injected by Fx
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewStripStore opens the configured bucket, or returns a no-op store when
// storage is not configured.
func NewStripStore(params StoreParams) (service.StripStore, error) {
	cfg := params.Config.Storage
	logger := params.Logger

	if cfg == nil || cfg.BucketURL == "" {
		logger.Info("Storage not configured, strips will not be hosted")

		return &noopStore{logger: logger}, nil
	}
	if cfg.PublicBaseURL == "" {
		return nil, errors.New("public base URL is required for strip storage")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.BucketURL)
	}

	logger.Info("Strip storage initialized",
		slog.String("bucket_url", cfg.BucketURL),
		slog.String("public_base_url", cfg.PublicBaseURL),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing strip bucket")

			return bucket.Close()
		},
	})

	return newBlobStore(bucket, cfg.Prefix, cfg.PublicBaseURL, logger), nil
}

func newBlobStore(bucket *blob.Bucket, prefix, publicBaseURL string, logger *slog.Logger) *blobStore {
	return &blobStore{
		bucket:        bucket,
		prefix:        strings.Trim(prefix, "/"),
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Put writes png under strips/{sha256}.png unless it is already stored.
func (s *blobStore) Put(ctx context.Context, png []byte) (string, error) {
	sum := sha256.Sum256(png)
	name := hex.EncodeToString(sum[:]) + ".png"
	key := s.key(name)
	url := s.publicBaseURL + "/" + key

	exists, err := s.bucket.Exists(ctx, key)
	if err != nil {
		return "", errors.Wrapf(err, "check strip %s", key)
	}
	if exists {
		return url, nil
	}

	if err := s.bucket.WriteAll(ctx, key, png, &blob.WriterOptions{
		ContentType:  stripContentType,
		CacheControl: stripCacheControl,
	}); err != nil {
		return "", errors.Wrapf(err, "write strip %s", key)
	}

	s.logger.InfoContext(ctx, "Strip stored",
		slog.String("key", key),
		slog.Int("bytes", len(png)),
	)

	return url, nil
}

// Get reads a strip by file name.
func (s *blobStore) Get(ctx context.Context, name string) ([]byte, error) {
	if name == "" || path.Base(name) != name || !strings.HasSuffix(name, ".png") {
		return nil, ErrInvalidStripName
	}

	data, err := s.bucket.ReadAll(ctx, s.key(name))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrStripNotFound
		}

		return nil, errors.Wrapf(err, "read strip %s", name)
	}

	return data, nil
}

func (s *blobStore) key(name string) string {
	if s.prefix == "" {
		return path.Join(stripDir, name)
	}

	return path.Join(s.prefix, stripDir, name)
}
