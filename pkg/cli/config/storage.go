package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/service/storage"
	"github.com/tom-tochito/procomply/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Storage holds CLI flags for object storage configuration. Storage is
// optional: without it the server runs, but file and image uploads are
// rejected.
type Storage struct {
	backend string
	bucket  string
}

// Flags returns CLI flags for storage configuration
func (s *Storage) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "storage-backend",
			Usage:       "Object storage backend (gcs, memory or none)",
			Value:       "none",
			Sources:     cli.EnvVars("PROCOMPLY_STORAGE_BACKEND"),
			Destination: &s.backend,
		},
		&cli.StringFlag{
			Name:        "storage-bucket",
			Usage:       "GCS bucket name (required when using gcs backend)",
			Sources:     cli.EnvVars("PROCOMPLY_STORAGE_BUCKET"),
			Destination: &s.bucket,
		},
	}
}

// Configure initializes the storage backend. A nil return with nil error
// means no storage is configured.
func (s *Storage) Configure(ctx context.Context) (interfaces.Storage, error) {
	switch s.backend {
	case "gcs":
		if s.bucket == "" {
			return nil, goerr.Wrap(ErrMissingBucket, "cannot configure gcs backend")
		}
		store, err := storage.NewGCS(ctx, s.bucket)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize gcs storage")
		}
		logging.Default().Info("Using GCS object storage", "bucket", s.bucket)
		return store, nil

	case "memory":
		logging.Default().Info("Using in-memory object storage (development mode)")
		return storage.NewMemory(), nil

	case "none", "":
		logging.Default().Info("Object storage not configured, uploads are disabled")
		return nil, nil

	default:
		return nil, goerr.Wrap(ErrUnknownBackend, "invalid storage backend",
			goerr.V(BackendKey, s.backend))
	}
}
