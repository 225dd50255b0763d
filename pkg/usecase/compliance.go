package usecase

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/tom-tochito/procomply/pkg/domain/interfaces"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"golang.org/x/sync/errgroup"
)

// expiryWindow is how far ahead a document's expiry date counts as
// "expiring soon".
const expiryWindow = 30 * 24 * time.Hour

const maxConcurrentBuildings = 8

type ComplianceUseCase struct {
	repo interfaces.Repository

	// now is swappable for tests
	now func() time.Time
}

func NewComplianceUseCase(repo interfaces.Repository) *ComplianceUseCase {
	return &ComplianceUseCase{
		repo: repo,
		now:  time.Now,
	}
}

// BuildingCompliance is the derived compliance summary for one building.
// It is computed from fetched rows on demand and never stored.
type BuildingCompliance struct {
	BuildingID   types.BuildingID `json:"buildingId"`
	BuildingName string           `json:"buildingName"`

	TasksTotal            int `json:"tasksTotal"`
	TasksOverdue          int `json:"tasksOverdue"`
	InspectionsTotal      int `json:"inspectionsTotal"`
	InspectionsCompleted  int `json:"inspectionsCompleted"`
	DocumentsTotal        int `json:"documentsTotal"`
	DocumentsExpiringSoon int `json:"documentsExpiringSoon"`

	// Score is a 0-100 percentage
	Score float64 `json:"score"`
}

// TenantCompliance aggregates every building's summary for a tenant
type TenantCompliance struct {
	Buildings []BuildingCompliance `json:"buildings"`

	TasksOverdue          int     `json:"tasksOverdue"`
	DocumentsExpiringSoon int     `json:"documentsExpiringSoon"`
	Score                 float64 `json:"score"`
}

func (uc *ComplianceUseCase) ForBuilding(ctx context.Context, tenantID types.TenantID, buildingID types.BuildingID) (*BuildingCompliance, error) {
	building, err := uc.repo.Building().Get(ctx, tenantID, buildingID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get building", goerr.V(BuildingIDKey, buildingID))
	}
	return uc.summarize(ctx, building)
}

func (uc *ComplianceUseCase) ForTenant(ctx context.Context, tenantID types.TenantID) (*TenantCompliance, error) {
	buildings, err := uc.repo.Building().List(ctx, tenantID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list buildings")
	}

	summaries := make([]BuildingCompliance, len(buildings))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(maxConcurrentBuildings)
	for i, building := range buildings {
		eg.Go(func() error {
			summary, err := uc.summarize(ctx, building)
			if err != nil {
				return err
			}
			summaries[i] = *summary
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	result := &TenantCompliance{
		Buildings: summaries,
		Score:     100,
	}
	var scoreSum float64
	for _, s := range summaries {
		result.TasksOverdue += s.TasksOverdue
		result.DocumentsExpiringSoon += s.DocumentsExpiringSoon
		scoreSum += s.Score
	}
	if len(summaries) > 0 {
		result.Score = scoreSum / float64(len(summaries))
	}

	return result, nil
}

// summarize fetches the building's tasks, documents and inspections in
// parallel and folds them into a summary.
func (uc *ComplianceUseCase) summarize(ctx context.Context, building *model.Building) (*BuildingCompliance, error) {
	var (
		tasks       []*model.Task
		documents   []*model.Document
		inspections []*model.Inspection
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		tasks, err = uc.repo.Task().ListByBuilding(ctx, building.TenantID, building.ID)
		return err
	})
	eg.Go(func() error {
		var err error
		documents, err = uc.repo.Document().ListByBuilding(ctx, building.TenantID, building.ID)
		return err
	})
	eg.Go(func() error {
		var err error
		inspections, err = uc.repo.Inspection().ListByBuilding(ctx, building.TenantID, building.ID)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to fetch building records", goerr.V(BuildingIDKey, building.ID))
	}

	now := uc.now()
	summary := &BuildingCompliance{
		BuildingID:       building.ID,
		BuildingName:     building.Name,
		TasksTotal:       len(tasks),
		InspectionsTotal: len(inspections),
		DocumentsTotal:   len(documents),
	}

	for _, t := range tasks {
		if t.Status == types.TaskStatusOverdue || t.IsOverdue(now) {
			summary.TasksOverdue++
		}
	}
	for _, i := range inspections {
		if i.Status == types.InspectionStatusCompleted {
			summary.InspectionsCompleted++
		}
	}
	for _, d := range documents {
		if d.ExpiresWithin(now, expiryWindow) {
			summary.DocumentsExpiringSoon++
		}
	}

	summary.Score = complianceScore(summary)
	return summary, nil
}

// complianceScore averages the health ratios of whichever record kinds the
// building actually has. A building with no tasks, documents or
// inspections scores 100: nothing is out of compliance.
func complianceScore(s *BuildingCompliance) float64 {
	var ratios []float64
	if s.TasksTotal > 0 {
		ratios = append(ratios, 1-float64(s.TasksOverdue)/float64(s.TasksTotal))
	}
	if s.InspectionsTotal > 0 {
		ratios = append(ratios, float64(s.InspectionsCompleted)/float64(s.InspectionsTotal))
	}
	if s.DocumentsTotal > 0 {
		ratios = append(ratios, 1-float64(s.DocumentsExpiringSoon)/float64(s.DocumentsTotal))
	}

	if len(ratios) == 0 {
		return 100
	}

	var sum float64
	for _, r := range ratios {
		sum += r
	}
	return sum / float64(len(ratios)) * 100
}
