package storage

import (
	"context"
	"errors"
	"io"
	"time"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
)

// signedURLLifetime bounds how long a resolved object URL stays valid
const signedURLLifetime = 15 * time.Minute

// GCS implements interfaces.Storage on a Google Cloud Storage bucket
type GCS struct {
	client *storage.Client
	bucket string
}

var _ interfaces.Storage = &GCS{}

// NewGCS creates a storage client for the given bucket
func NewGCS(ctx context.Context, bucket string) (*GCS, error) {
	if bucket == "" {
		return nil, goerr.New("storage bucket is required")
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client",
			goerr.V("bucket", bucket))
	}

	return &GCS{client: client, bucket: bucket}, nil
}

func (s *GCS) Put(ctx context.Context, ref string, r io.Reader, contentType string) error {
	w := s.client.Bucket(s.bucket).Object(ref).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object", goerr.V("ref", ref))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize object", goerr.V("ref", ref))
	}

	return nil
}

func (s *GCS) Open(ctx context.Context, ref string) (io.ReadCloser, error) {
	r, err := s.client.Bucket(s.bucket).Object(ref).NewReader(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open object", goerr.V("ref", ref))
	}
	return r, nil
}

func (s *GCS) Delete(ctx context.Context, ref string) error {
	err := s.client.Bucket(s.bucket).Object(ref).Delete(ctx)
	if err != nil && !errors.Is(err, storage.ErrObjectNotExist) {
		return goerr.Wrap(err, "failed to delete object", goerr.V("ref", ref))
	}
	return nil
}

func (s *GCS) URL(ctx context.Context, ref string) (string, error) {
	url, err := s.client.Bucket(s.bucket).SignedURL(ref, &storage.SignedURLOptions{
		Method:  "GET",
		Expires: time.Now().Add(signedURLLifetime),
	})
	if err != nil {
		return "", goerr.Wrap(err, "failed to sign object URL", goerr.V("ref", ref))
	}
	return url, nil
}

func (s *GCS) Close() error {
	return s.client.Close()
}
