package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/domain/types"
	"github.com/tom-tochito/procomply/pkg/utils/errutil"
)

type taskRequest struct {
	BuildingID  string         `json:"buildingId,omitempty"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Status      string         `json:"status"`
	Priority    string         `json:"priority"`
	DueDate     string         `json:"dueDate,omitempty"`
	Assignee    string         `json:"assignee,omitempty"`
	TemplateID  string         `json:"templateId,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
}

type taskResponse struct {
	ID          string         `json:"id"`
	BuildingID  string         `json:"buildingId,omitempty"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Status      string         `json:"status"`
	Priority    string         `json:"priority"`
	DueDate     string         `json:"dueDate,omitempty"`
	Assignee    string         `json:"assignee,omitempty"`
	TemplateID  string         `json:"templateId,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func (req taskRequest) toModel(tenantID types.TenantID) *model.Task {
	return &model.Task{
		TenantID:    tenantID,
		BuildingID:  types.BuildingID(req.BuildingID),
		Title:       req.Title,
		Description: req.Description,
		Status:      types.TaskStatus(req.Status),
		Priority:    types.TaskPriority(req.Priority),
		DueDate:     req.DueDate,
		Assignee:    req.Assignee,
		TemplateID:  types.TemplateID(req.TemplateID),
		Data:        req.Data,
	}
}

func taskFromModel(t *model.Task) taskResponse {
	return taskResponse{
		ID:          t.ID.String(),
		BuildingID:  t.BuildingID.String(),
		Title:       t.Title,
		Description: t.Description,
		Status:      t.Status.String(),
		Priority:    t.Priority.String(),
		DueDate:     t.DueDate,
		Assignee:    t.Assignee,
		TemplateID:  t.TemplateID.String(),
		Data:        t.Data,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func (s *Server) createTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	created, err := s.uc.Task.Create(ctx, req.toModel(tenantFromContext(ctx)))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusCreated, taskFromModel(created))
}

func (s *Server) getTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	task, err := s.uc.Task.Get(ctx, tenantFromContext(ctx), types.TaskID(chi.URLParam(r, "taskID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, taskFromModel(task))
}

func (s *Server) updateTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		errutil.HandleHTTP(ctx, w, err, http.StatusBadRequest)
		return
	}

	task := req.toModel(tenantFromContext(ctx))
	task.ID = types.TaskID(chi.URLParam(r, "taskID"))

	updated, err := s.uc.Task.Update(ctx, task)
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, taskFromModel(updated))
}

func (s *Server) deleteTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	err := s.uc.Task.Delete(ctx, tenantFromContext(ctx), types.TaskID(chi.URLParam(r, "taskID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listTasks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	tasks, err := s.uc.Task.List(ctx, tenantFromContext(ctx))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	resp := make([]taskResponse, len(tasks))
	for i, t := range tasks {
		resp[i] = taskFromModel(t)
	}
	respondJSON(ctx, w, http.StatusOK, map[string]any{"tasks": resp})
}

func (s *Server) newTaskForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	controls, err := s.uc.Task.NewForm(ctx, tenantFromContext(ctx), types.TemplateID(r.URL.Query().Get("template")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"controls": controls})
}

func (s *Server) editTaskForm(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	controls, err := s.uc.Task.EditForm(ctx, tenantFromContext(ctx), types.TaskID(chi.URLParam(r, "taskID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"controls": controls})
}

func (s *Server) viewTask(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	fields, err := s.uc.Task.View(ctx, tenantFromContext(ctx), types.TaskID(chi.URLParam(r, "taskID")))
	if err != nil {
		handleError(ctx, w, err)
		return
	}

	respondJSON(ctx, w, http.StatusOK, map[string]any{"fields": fields})
}
