package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
)

type Firestore struct {
	client     *firestore.Client
	template   *templateRepository
	building   *buildingRepository
	task       *taskRepository
	document   *documentRepository
	inspection *inspectionRepository
	contact    *contactRepository
	note       *noteRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.template.collectionPrefix = prefix
		f.building.collectionPrefix = prefix
		f.task.collectionPrefix = prefix
		f.document.collectionPrefix = prefix
		f.inspection.collectionPrefix = prefix
		f.contact.collectionPrefix = prefix
		f.note.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID string, opts ...Option) (*Firestore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	buildingRepo := newBuildingRepository(client)
	taskRepo := newTaskRepository(client)
	documentRepo := newDocumentRepository(client)
	inspectionRepo := newInspectionRepository(client)

	// The template repository queries the entity collections before a
	// delete so it can refuse removing a template that is still referenced.
	templateRepo := newTemplateRepository(client, buildingRepo, taskRepo, documentRepo, inspectionRepo)

	f := &Firestore{
		client:     client,
		template:   templateRepo,
		building:   buildingRepo,
		task:       taskRepo,
		document:   documentRepo,
		inspection: inspectionRepo,
		contact:    newContactRepository(client),
		note:       newNoteRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Template() interfaces.TemplateRepository {
	return f.template
}

func (f *Firestore) Building() interfaces.BuildingRepository {
	return f.building
}

func (f *Firestore) Task() interfaces.TaskRepository {
	return f.task
}

func (f *Firestore) Document() interfaces.DocumentRepository {
	return f.document
}

func (f *Firestore) Inspection() interfaces.InspectionRepository {
	return f.inspection
}

func (f *Firestore) Contact() interfaces.ContactRepository {
	return f.contact
}

func (f *Firestore) Note() interfaces.NoteRepository {
	return f.note
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
