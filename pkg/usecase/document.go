package usecase

import (
	"context"
	"io"
	"path"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/service/render"
	"github.com/tom-tochito/procomply/pkg/utils/async"
)

type DocumentUseCase struct {
	repo    interfaces.Repository
	storage interfaces.Storage
}

func NewDocumentUseCase(repo interfaces.Repository, storage interfaces.Storage) *DocumentUseCase {
	return &DocumentUseCase{repo: repo, storage: storage}
}

func documentFormData(d *model.Document) map[string]any {
	data := make(map[string]any, len(d.Data)+3)
	for k, v := range d.Data {
		data[k] = v
	}
	data["title"] = d.Title
	data["file"] = d.FileRef
	data["expires_at"] = d.ExpiresAt
	return data
}

func (uc *DocumentUseCase) validate(ctx context.Context, d *model.Document) error {
	validator, err := formValidator(ctx, uc.repo, d.TenantID, types.EntityTypeDocument, d.TemplateID)
	if err != nil {
		return err
	}
	return validator.Validate(documentFormData(d))
}

// Upload stores the file first, then creates the document record pointing
// at it. If the record cannot be created the uploaded object is cleaned up
// in the background.
func (uc *DocumentUseCase) Upload(ctx context.Context, doc *model.Document, r io.Reader, filename string) (*model.Document, error) {
	if uc.storage == nil {
		return nil, goerr.Wrap(ErrStorageNotConfigured, "cannot upload document")
	}

	staged := *doc
	if staged.ID == "" {
		staged.ID = model.NewDocumentID()
	}

	ref := path.Join("tenants", string(staged.TenantID), "documents", string(staged.ID), filename)
	if err := uc.storage.Put(ctx, ref, r, staged.ContentType); err != nil {
		return nil, goerr.Wrap(ErrUploadFailed, "failed to store document file",
			goerr.V("ref", ref), goerr.V("cause", err))
	}
	staged.FileRef = ref

	if err := uc.validate(ctx, &staged); err != nil {
		uc.cleanupObject(ctx, ref)
		return nil, err
	}

	created, err := uc.repo.Document().Create(ctx, &staged)
	if err != nil {
		uc.cleanupObject(ctx, ref)
		return nil, goerr.Wrap(err, "failed to create document", goerr.V("ref", ref))
	}

	return created, nil
}

// cleanupObject removes a stored object best-effort; failures are logged,
// not surfaced.
func (uc *DocumentUseCase) cleanupObject(ctx context.Context, ref string) {
	if uc.storage == nil || ref == "" {
		return
	}
	async.Dispatch(ctx, func(ctx context.Context) error {
		return uc.storage.Delete(ctx, ref)
	})
}

func (uc *DocumentUseCase) Get(ctx context.Context, tenantID types.TenantID, id types.DocumentID) (*model.Document, error) {
	doc, err := uc.repo.Document().Get(ctx, tenantID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get document", goerr.V(DocumentIDKey, id))
	}
	return doc, nil
}

// Update edits document metadata. The stored file is immutable: replacing
// it means uploading a new document.
func (uc *DocumentUseCase) Update(ctx context.Context, doc *model.Document) (*model.Document, error) {
	existing, err := uc.repo.Document().Get(ctx, doc.TenantID, doc.ID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get document", goerr.V(DocumentIDKey, doc.ID))
	}

	updated := *doc
	updated.FileRef = existing.FileRef
	updated.ContentType = existing.ContentType
	updated.Size = existing.Size

	if err := uc.validate(ctx, &updated); err != nil {
		return nil, err
	}

	saved, err := uc.repo.Document().Update(ctx, &updated)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to update document", goerr.V(DocumentIDKey, doc.ID))
	}
	return saved, nil
}

// Delete removes the document record, then the stored file best-effort in
// the background. A file that outlives its record is preferable to a
// record pointing at nothing.
func (uc *DocumentUseCase) Delete(ctx context.Context, tenantID types.TenantID, id types.DocumentID) error {
	doc, err := uc.repo.Document().Get(ctx, tenantID, id)
	if err != nil {
		return goerr.Wrap(err, "failed to get document", goerr.V(DocumentIDKey, id))
	}

	if err := uc.repo.Document().Delete(ctx, tenantID, id); err != nil {
		return goerr.Wrap(err, "failed to delete document", goerr.V(DocumentIDKey, id))
	}

	uc.cleanupObject(ctx, doc.FileRef)
	return nil
}

func (uc *DocumentUseCase) List(ctx context.Context, tenantID types.TenantID) ([]*model.Document, error) {
	docs, err := uc.repo.Document().List(ctx, tenantID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list documents")
	}
	return docs, nil
}

func (uc *DocumentUseCase) ListByBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) ([]*model.Document, error) {
	docs, err := uc.repo.Document().ListByBuilding(ctx, tenantID, buildingID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list building documents", goerr.V(BuildingIDKey, buildingID))
	}
	return docs, nil
}

// FileURL resolves the document's stored file to a fetchable URL
func (uc *DocumentUseCase) FileURL(ctx context.Context, tenantID types.TenantID, id types.DocumentID) (string, error) {
	if uc.storage == nil {
		return "", goerr.Wrap(ErrStorageNotConfigured, "cannot resolve document URL")
	}

	doc, err := uc.repo.Document().Get(ctx, tenantID, id)
	if err != nil {
		return "", goerr.Wrap(err, "failed to get document", goerr.V(DocumentIDKey, id))
	}
	if doc.FileRef == "" {
		return "", goerr.Wrap(interfaces.ErrNotFound, "document has no stored file", goerr.V(DocumentIDKey, id))
	}

	url, err := uc.storage.URL(ctx, doc.FileRef)
	if err != nil {
		return "", goerr.Wrap(err, "failed to resolve document URL", goerr.V(DocumentIDKey, id))
	}
	return url, nil
}

func (uc *DocumentUseCase) View(ctx context.Context, tenantID types.TenantID, id types.DocumentID) ([]render.Display, error) {
	doc, err := uc.repo.Document().Get(ctx, tenantID, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get document", goerr.V(DocumentIDKey, id))
	}

	validator, err := formValidator(ctx, uc.repo, tenantID, types.EntityTypeDocument, doc.TemplateID)
	if err != nil {
		return nil, err
	}

	return render.BuildView(validator.Fields(), documentFormData(doc)), nil
}
