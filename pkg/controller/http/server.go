package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/usecase"
	"github.com/tom-tochito/procomply/pkg/utils/logging"
)

type Server struct {
	router   *chi.Mux
	uc       *usecase.UseCases
	registry *model.TenantRegistry
}

type Options func(*Server)

func WithTenantRegistry(registry *model.TenantRegistry) Options {
	return func(s *Server) {
		s.registry = registry
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/api/tenants", tenantsHandler(s.registry))

	r.Route("/api/t/{tenantID}", func(r chi.Router) {
		r.Use(tenantCtx(s.registry))

		r.Route("/templates", func(r chi.Router) {
			r.Get("/", s.listTemplates)
			r.Post("/", s.createTemplate)
			r.Get("/{templateID}", s.getTemplate)
			r.Put("/{templateID}", s.updateTemplate)
			r.Delete("/{templateID}", s.deleteTemplate)
		})

		r.Route("/buildings", func(r chi.Router) {
			r.Get("/", s.listBuildings)
			r.Post("/", s.createBuilding)
			r.Get("/form", s.newBuildingForm)
			r.Get("/{buildingID}", s.getBuilding)
			r.Put("/{buildingID}", s.updateBuilding)
			r.Delete("/{buildingID}", s.deleteBuilding)
			r.Get("/{buildingID}/form", s.editBuildingForm)
			r.Get("/{buildingID}/view", s.viewBuilding)
			r.Post("/{buildingID}/image", s.uploadBuildingImage)
			r.Get("/{buildingID}/tasks", s.listBuildingTasks)
			r.Get("/{buildingID}/documents", s.listBuildingDocuments)
			r.Get("/{buildingID}/inspections", s.listBuildingInspections)
			r.Get("/{buildingID}/notes", s.listBuildingNotes)
			r.Get("/{buildingID}/compliance", s.buildingCompliance)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", s.listTasks)
			r.Post("/", s.createTask)
			r.Get("/form", s.newTaskForm)
			r.Get("/{taskID}", s.getTask)
			r.Put("/{taskID}", s.updateTask)
			r.Delete("/{taskID}", s.deleteTask)
			r.Get("/{taskID}/form", s.editTaskForm)
			r.Get("/{taskID}/view", s.viewTask)
		})

		r.Route("/documents", func(r chi.Router) {
			r.Get("/", s.listDocuments)
			r.Post("/", s.uploadDocument)
			r.Get("/{documentID}", s.getDocument)
			r.Put("/{documentID}", s.updateDocument)
			r.Delete("/{documentID}", s.deleteDocument)
			r.Get("/{documentID}/url", s.documentURL)
			r.Get("/{documentID}/view", s.viewDocument)
		})

		r.Route("/inspections", func(r chi.Router) {
			r.Get("/", s.listInspections)
			r.Post("/", s.createInspection)
			r.Get("/form", s.newInspectionForm)
			r.Get("/{inspectionID}", s.getInspection)
			r.Put("/{inspectionID}", s.updateInspection)
			r.Delete("/{inspectionID}", s.deleteInspection)
			r.Get("/{inspectionID}/form", s.editInspectionForm)
			r.Get("/{inspectionID}/view", s.viewInspection)
		})

		r.Route("/contacts", func(r chi.Router) {
			r.Get("/", s.listContacts)
			r.Post("/", s.createContact)
			r.Get("/{contactID}", s.getContact)
			r.Put("/{contactID}", s.updateContact)
			r.Delete("/{contactID}", s.deleteContact)
		})

		r.Route("/notes", func(r chi.Router) {
			r.Post("/", s.createNote)
			r.Put("/{noteID}", s.updateNote)
			r.Delete("/{noteID}", s.deleteNote)
		})

		r.Get("/compliance", s.tenantCompliance)
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// accessLogger is a middleware that logs HTTP requests
func accessLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		defer func() {
			logging.Default().Info("access",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"remote", r.RemoteAddr,
				"user_agent", r.UserAgent(),
			)
		}()

		next.ServeHTTP(ww, r)
	})
}

// tenantsHandler serves the declared tenant list as JSON
func tenantsHandler(registry *model.TenantRegistry) http.HandlerFunc {
	type tenantResponse struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	type response struct {
		Tenants []tenantResponse `json:"tenants"`
	}

	return func(w http.ResponseWriter, r *http.Request) {
		resp := response{Tenants: []tenantResponse{}}
		if registry != nil {
			tenants := registry.List()
			resp.Tenants = make([]tenantResponse, len(tenants))
			for i, tenant := range tenants {
				resp.Tenants[i] = tenantResponse{
					ID:   tenant.ID.String(),
					Name: tenant.Name,
				}
			}
		}
		respondJSON(r.Context(), w, http.StatusOK, resp)
	}
}
