package interfaces

import "github.com/m-mizutani/goerr/v2"

// Repository defines the interface for data persistence. Every method on
// the per-entity repositories takes the owning tenant's ID and must never
// return another tenant's rows.
type Repository interface {
	Template() TemplateRepository
	Building() BuildingRepository
	Task() TaskRepository
	Document() DocumentRepository
	Inspection() InspectionRepository
	Contact() ContactRepository
	Note() NoteRepository

	Close() error
}

// Sentinel errors shared by all repository implementations
var (
	ErrNotFound      = goerr.New("record not found")
	ErrTemplateInUse = goerr.New("template is referenced by existing entities")
)
