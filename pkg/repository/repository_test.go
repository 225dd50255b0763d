package repository_test

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/repository/firestore"
	"github.com/tom-tochito/procomply/pkg/repository/memory"
)

// newTenantID returns a tenant ID unique to the calling test so suites can
// run against a shared Firestore project without interfering.
func newTenantID() types.TenantID {
	return types.TenantID("t-" + uuid.New().String())
}

func runRepositorySuite(t *testing.T, suite func(t *testing.T, newRepo func(t *testing.T) interfaces.Repository)) {
	t.Run("Memory", func(t *testing.T) {
		suite(t, func(t *testing.T) interfaces.Repository {
			return memory.New()
		})
	})

	t.Run("Firestore", func(t *testing.T) {
		projectID := os.Getenv("FIRESTORE_PROJECT_ID")
		if projectID == "" {
			t.Skip("FIRESTORE_PROJECT_ID not set")
		}

		suite(t, func(t *testing.T) interfaces.Repository {
			repo, err := firestore.New(context.Background(), projectID, firestore.WithCollectionPrefix("test"))
			gt.NoError(t, err).Required()
			t.Cleanup(func() {
				gt.NoError(t, repo.Close())
			})
			return repo
		})
	})
}
