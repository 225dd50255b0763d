package usecase

import (
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
)

type UseCases struct {
	repo    interfaces.Repository
	storage interfaces.Storage

	Template   *TemplateUseCase
	Building   *BuildingUseCase
	Task       *TaskUseCase
	Document   *DocumentUseCase
	Inspection *InspectionUseCase
	Contact    *ContactUseCase
	Note       *NoteUseCase
	Compliance *ComplianceUseCase
}

type Option func(*UseCases)

func WithStorage(storage interfaces.Storage) Option {
	return func(uc *UseCases) {
		uc.storage = storage
	}
}

func New(repo interfaces.Repository, opts ...Option) *UseCases {
	uc := &UseCases{
		repo: repo,
	}

	for _, opt := range opts {
		opt(uc)
	}

	uc.Template = NewTemplateUseCase(repo)
	uc.Building = NewBuildingUseCase(repo, uc.storage)
	uc.Task = NewTaskUseCase(repo)
	uc.Document = NewDocumentUseCase(repo, uc.storage)
	uc.Inspection = NewInspectionUseCase(repo)
	uc.Contact = NewContactUseCase(repo)
	uc.Note = NewNoteUseCase(repo)
	uc.Compliance = NewComplianceUseCase(repo)

	return uc
}
