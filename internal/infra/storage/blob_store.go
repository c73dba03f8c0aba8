// Package storage provides blob-backed persistence for analysis attachments.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"
	"time"

	"folio/config"
	"folio/internal/domain/lifecycle"
	"folio/internal/domain/service"
	"folio/internal/errors"
	"folio/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket drivers used across environments.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// blobStore implements service.AttachmentStore on top of a gocloud bucket,
// so local disk and GCS deployments share one code path.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// New opens the configured bucket and returns it as an AttachmentStore.
func New(params Params) (service.AttachmentStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL must be configured")
	}

	openCtx, cancel := context.WithTimeout(params.Ctx, lifecycle.DefaultTimeout)
	defer cancel()

	bucket, err := blob.OpenBucket(openCtx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Attachment bucket opened",
		slog.String("bucket", cfg.BucketURL),
	)

	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// Upload writes the content under a date-partitioned key and returns the URL
// the article can embed. Keys are random so filenames cannot collide or be
// guessed.
func (s *blobStore) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	key := fmt.Sprintf("%s/%s%s",
		time.Now().UTC().Format("2006/01"),
		uuid.NewString(),
		strings.ToLower(path.Ext(filename)),
	)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	written, err := io.Copy(writer, content)
	if err != nil {
		writer.Close()

		return "", errors.Wrap(err, "failed to write attachment")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize attachment")
	}

	s.logger.Info("Attachment stored",
		slog.String("key", key),
		slog.String("contentType", contentType),
		slog.String("size", util.FormatBytes(written)),
	)

	if s.publicBaseURL == "" {
		return key, nil
	}

	return s.publicBaseURL + "/" + key, nil
}
