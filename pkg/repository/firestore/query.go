package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"google.golang.org/api/iterator"
)

// countByTemplate counts documents in a collection that reference the
// template within the tenant.
func countByTemplate(ctx context.Context, client *firestore.Client, collection string, tenantID types.TenantID, templateID types.TemplateID) (int, error) {
	iter := client.Collection(collection).
		Where("TenantID", "==", string(tenantID)).
		Where("TemplateID", "==", string(templateID)).
		Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, goerr.Wrap(err, "failed to count template references",
				goerr.V("collection", collection), goerr.V("template_id", templateID))
		}
		count++
	}

	return count, nil
}
