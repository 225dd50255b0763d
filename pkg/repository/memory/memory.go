package memory

import (
	"time"

	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
)

// Repository is an alias kept for callers that name the backend generically
type Repository = Memory

// Memory is an in-memory Repository for development and tests
type Memory struct {
	template   *templateRepository
	building   *buildingRepository
	task       *taskRepository
	document   *documentRepository
	inspection *inspectionRepository
	contact    *contactRepository
	note       *noteRepository
}

var _ interfaces.Repository = &Memory{}

func New() *Memory {
	buildingRepo := newBuildingRepository()
	taskRepo := newTaskRepository()
	documentRepo := newDocumentRepository()
	inspectionRepo := newInspectionRepository()

	// The template repository consults the entity repositories so it can
	// refuse deleting a template that is still referenced.
	templateRepo := newTemplateRepository(buildingRepo, taskRepo, documentRepo, inspectionRepo)

	return &Memory{
		template:   templateRepo,
		building:   buildingRepo,
		task:       taskRepo,
		document:   documentRepo,
		inspection: inspectionRepo,
		contact:    newContactRepository(),
		note:       newNoteRepository(),
	}
}

func (m *Memory) Template() interfaces.TemplateRepository {
	return m.template
}

func (m *Memory) Building() interfaces.BuildingRepository {
	return m.building
}

func (m *Memory) Task() interfaces.TaskRepository {
	return m.task
}

func (m *Memory) Document() interfaces.DocumentRepository {
	return m.document
}

func (m *Memory) Inspection() interfaces.InspectionRepository {
	return m.inspection
}

func (m *Memory) Contact() interfaces.ContactRepository {
	return m.contact
}

func (m *Memory) Note() interfaces.NoteRepository {
	return m.note
}

func (m *Memory) Close() error {
	return nil
}

func now() time.Time {
	return time.Now().UTC()
}

// copyData deep-copies an entity data map. Values are simple scalars or
// string slices; slices are copied so callers cannot mutate stored rows.
func copyData(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}
	out := make(map[string]any, len(data))
	for k, v := range data {
		switch vv := v.(type) {
		case []string:
			s := make([]string, len(vv))
			copy(s, vv)
			out[k] = s
		case []any:
			s := make([]any, len(vv))
			copy(s, vv)
			out[k] = s
		default:
			out[k] = v
		}
	}
	return out
}
