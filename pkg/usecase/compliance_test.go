package usecase_test

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/repository/memory"
	"github.com/tom-tochito/procomply/pkg/usecase"
)

func TestComplianceForBuilding(t *testing.T) {
	uc := usecase.New(memory.New())
	ctx := context.Background()

	building, err := uc.Building.Create(ctx, &model.Building{
		TenantID: testTenant,
		Name:     "Riverside House",
	})
	gt.NoError(t, err).Required()

	// 2 tasks: one completed, one flagged overdue
	_, err = uc.Task.Create(ctx, &model.Task{
		TenantID:   testTenant,
		BuildingID: building.ID,
		Title:      "Fire alarm service",
		Status:     types.TaskStatusCompleted,
		Priority:   types.TaskPriorityHigh,
	})
	gt.NoError(t, err).Required()
	_, err = uc.Task.Create(ctx, &model.Task{
		TenantID:   testTenant,
		BuildingID: building.ID,
		Title:      "Gas safety check",
		Status:     types.TaskStatusOverdue,
		Priority:   types.TaskPriorityUrgent,
	})
	gt.NoError(t, err).Required()

	// 1 completed inspection of 1
	_, err = uc.Inspection.Create(ctx, &model.Inspection{
		TenantID:     testTenant,
		BuildingID:   building.ID,
		Title:        "Annual fire risk assessment",
		Status:       types.InspectionStatusCompleted,
		ScheduledFor: "2026-01-10",
	})
	gt.NoError(t, err).Required()

	summary, err := uc.Compliance.ForBuilding(ctx, testTenant, building.ID)
	gt.NoError(t, err).Required()

	gt.Value(t, summary.BuildingName).Equal("Riverside House")
	gt.Number(t, summary.TasksTotal).Equal(2)
	gt.Number(t, summary.TasksOverdue).Equal(1)
	gt.Number(t, summary.InspectionsTotal).Equal(1)
	gt.Number(t, summary.InspectionsCompleted).Equal(1)
	gt.Number(t, summary.DocumentsTotal).Equal(0)

	// mean of task ratio (0.5) and inspection ratio (1.0)
	gt.Number(t, summary.Score).Equal(75.0)
}

func TestComplianceForTenant(t *testing.T) {
	t.Run("aggregates across buildings", func(t *testing.T) {
		uc := usecase.New(memory.New())
		ctx := context.Background()

		healthy, err := uc.Building.Create(ctx, &model.Building{
			TenantID: testTenant,
			Name:     "Healthy",
		})
		gt.NoError(t, err).Required()
		troubled, err := uc.Building.Create(ctx, &model.Building{
			TenantID: testTenant,
			Name:     "Troubled",
		})
		gt.NoError(t, err).Required()

		_, err = uc.Task.Create(ctx, &model.Task{
			TenantID:   testTenant,
			BuildingID: healthy.ID,
			Title:      "Done",
			Status:     types.TaskStatusCompleted,
			Priority:   types.TaskPriorityLow,
		})
		gt.NoError(t, err).Required()
		_, err = uc.Task.Create(ctx, &model.Task{
			TenantID:   testTenant,
			BuildingID: troubled.ID,
			Title:      "Missed",
			Status:     types.TaskStatusOverdue,
			Priority:   types.TaskPriorityUrgent,
		})
		gt.NoError(t, err).Required()

		summary, err := uc.Compliance.ForTenant(ctx, testTenant)
		gt.NoError(t, err).Required()

		gt.Array(t, summary.Buildings).Length(2)
		gt.Number(t, summary.TasksOverdue).Equal(1)
		// (100 + 0) / 2
		gt.Number(t, summary.Score).Equal(50.0)
	})

	t.Run("tenant with no buildings scores 100", func(t *testing.T) {
		uc := usecase.New(memory.New())

		summary, err := uc.Compliance.ForTenant(context.Background(), testTenant)
		gt.NoError(t, err).Required()
		gt.Array(t, summary.Buildings).Length(0)
		gt.Number(t, summary.Score).Equal(100.0)
	})
}
