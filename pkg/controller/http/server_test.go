package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"
	httpctrl "github.com/tom-tochito/procomply/pkg/controller/http"
	"github.com/tom-tochito/procomply/pkg/domain/model"
	"github.com/tom-tochito/procomply/pkg/repository/memory"
	"github.com/tom-tochito/procomply/pkg/service/storage"
	"github.com/tom-tochito/procomply/pkg/usecase"
)

const testTenant = "acme-props"

func setupServer(t *testing.T) *httpctrl.Server {
	t.Helper()

	registry := model.NewTenantRegistry()
	registry.Register(&model.Tenant{ID: testTenant, Name: "Acme Properties"})

	uc := usecase.New(memory.New(), usecase.WithStorage(storage.NewMemory()))
	return httpctrl.New(uc, httpctrl.WithTenantRegistry(registry))
}

func doJSON(t *testing.T, srv *httpctrl.Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data := gt.R1(json.Marshal(body)).NoError(t)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, into any) {
	t.Helper()
	gt.NoError(t, json.Unmarshal(rec.Body.Bytes(), into))
}

func tenantPath(suffix string) string {
	return "/api/t/" + testTenant + suffix
}

func TestTenantResolution(t *testing.T) {
	srv := setupServer(t)

	t.Run("declared tenant is routable", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, tenantPath("/buildings"), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)
	})

	t.Run("unknown tenant is 404", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/t/nobody-here/buildings", nil)
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("malformed tenant ID is 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/t/Not%20Valid/buildings", nil)
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("tenant listing", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/tenants", nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Tenants []struct {
				ID   string `json:"id"`
				Name string `json:"name"`
			} `json:"tenants"`
		}
		decodeBody(t, rec, &resp)
		gt.A(t, resp.Tenants).Length(1)
		gt.Value(t, resp.Tenants[0].ID).Equal(testTenant)
		gt.Value(t, resp.Tenants[0].Name).Equal("Acme Properties")
	})
}

func TestTemplateEndpoints(t *testing.T) {
	srv := setupServer(t)

	createBody := map[string]any{
		"name":   "Building Survey",
		"entity": "building",
		"fields": []map[string]any{
			{"label": "Total Area", "type": "number"},
			{"label": "EPC Rating", "type": "select", "options": []string{"A", "B", "C"}},
		},
	}

	var created struct {
		ID     string `json:"id"`
		Name   string `json:"name"`
		Entity string `json:"entity"`
		Fields []struct {
			Key  string `json:"key"`
			Type string `json:"type"`
		} `json:"fields"`
	}

	t.Run("create derives field keys", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, tenantPath("/templates"), createBody)
		gt.Value(t, rec.Code).Equal(http.StatusCreated)

		decodeBody(t, rec, &created)
		gt.S(t, created.ID).NotEqual("")
		gt.A(t, created.Fields).Length(2)
		gt.Value(t, created.Fields[0].Key).Equal("total_area")
		gt.Value(t, created.Fields[1].Key).Equal("epc_rating")
	})

	t.Run("get round-trips", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, tenantPath("/templates/"+created.ID), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var got struct {
			Name string `json:"name"`
		}
		decodeBody(t, rec, &got)
		gt.Value(t, got.Name).Equal("Building Survey")
	})

	t.Run("invalid template is 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, tenantPath("/templates"), map[string]any{
			"name":   "",
			"entity": "building",
			"fields": []map[string]any{{"label": "X", "type": "text"}},
		})
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("unknown template is 404", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, tenantPath("/templates/no-such-id"), nil)
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("delete refused while referenced", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, tenantPath("/buildings"), map[string]any{
			"name":       "Riverside House",
			"templateId": created.ID,
			"data":       map[string]any{"epc_rating": "B"},
		})
		gt.Value(t, rec.Code).Equal(http.StatusCreated)

		rec = doJSON(t, srv, http.MethodDelete, tenantPath("/templates/"+created.ID), nil)
		gt.Value(t, rec.Code).Equal(http.StatusConflict)
	})

	t.Run("list filters by entity", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, tenantPath("/templates?entity=task"), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Templates []json.RawMessage `json:"templates"`
		}
		decodeBody(t, rec, &resp)
		gt.A(t, resp.Templates).Length(0)
	})
}

func TestBuildingEndpoints(t *testing.T) {
	srv := setupServer(t)

	var building struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}

	t.Run("create", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, tenantPath("/buildings"), map[string]any{
			"name":     "Harbour Point",
			"address":  "1 Quay Street",
			"city":     "Bristol",
			"postcode": "BS1 4DB",
		})
		gt.Value(t, rec.Code).Equal(http.StatusCreated)
		decodeBody(t, rec, &building)
		gt.S(t, building.ID).NotEqual("")
	})

	t.Run("missing name is 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, tenantPath("/buildings"), map[string]any{
			"address": "2 Quay Street",
		})
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("update", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPut, tenantPath("/buildings/"+building.ID), map[string]any{
			"name": "Harbour Point West",
			"city": "Bristol",
		})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var updated struct {
			Name string `json:"name"`
		}
		decodeBody(t, rec, &updated)
		gt.Value(t, updated.Name).Equal("Harbour Point West")
	})

	t.Run("new form carries built-in controls", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, tenantPath("/buildings/form"), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Controls []struct {
				Key    string `json:"key"`
				Widget string `json:"widget"`
			} `json:"controls"`
		}
		decodeBody(t, rec, &resp)
		gt.A(t, resp.Controls).Length(2)
		gt.Value(t, resp.Controls[0].Key).Equal("name")
		gt.Value(t, resp.Controls[1].Key).Equal("image")
	})

	t.Run("view marks absent fields", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, tenantPath("/buildings/"+building.ID+"/view"), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Fields []struct {
				Key      string `json:"key"`
				Provided bool   `json:"provided"`
				Text     string `json:"text"`
			} `json:"fields"`
		}
		decodeBody(t, rec, &resp)
		gt.A(t, resp.Fields).Length(2)
		gt.Value(t, resp.Fields[0].Provided).Equal(true)
		gt.Value(t, resp.Fields[1].Provided).Equal(false)
		gt.Value(t, resp.Fields[1].Text).Equal("Not provided")
	})

	t.Run("image upload", func(t *testing.T) {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		part := gt.R1(mw.CreateFormFile("image", "front.jpg")).NoError(t)
		gt.R1(part.Write([]byte("jpeg-bytes"))).NoError(t)
		gt.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, tenantPath("/buildings/"+building.ID+"/image"), &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var updated struct {
			ImageRef string `json:"imageRef"`
		}
		decodeBody(t, rec, &updated)
		gt.S(t, updated.ImageRef).Contains("front.jpg")
	})

	t.Run("delete then 404", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodDelete, tenantPath("/buildings/"+building.ID), nil)
		gt.Value(t, rec.Code).Equal(http.StatusNoContent)

		rec = doJSON(t, srv, http.MethodGet, tenantPath("/buildings/"+building.ID), nil)
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})
}

func TestTaskEndpoints(t *testing.T) {
	srv := setupServer(t)

	var task struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}

	t.Run("create", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, tenantPath("/tasks"), map[string]any{
			"title":    "Annual gas safety check",
			"status":   "open",
			"priority": "high",
			"dueDate":  "2026-10-01",
		})
		gt.Value(t, rec.Code).Equal(http.StatusCreated)
		decodeBody(t, rec, &task)
		gt.Value(t, task.Status).Equal("open")
	})

	t.Run("unknown status is 400", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, tenantPath("/tasks"), map[string]any{
			"title":    "Bad task",
			"status":   "paused",
			"priority": "high",
		})
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("list", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, tenantPath("/tasks"), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Tasks []json.RawMessage `json:"tasks"`
		}
		decodeBody(t, rec, &resp)
		gt.A(t, resp.Tasks).Length(1)
	})
}

func TestDocumentEndpoints(t *testing.T) {
	srv := setupServer(t)

	uploadDocument := func(t *testing.T, meta map[string]any, filename, contents string) *httptest.ResponseRecorder {
		t.Helper()

		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		metaJSON := gt.R1(json.Marshal(meta)).NoError(t)
		gt.NoError(t, mw.WriteField("document", string(metaJSON)))
		part := gt.R1(mw.CreateFormFile("file", filename)).NoError(t)
		gt.R1(part.Write([]byte(contents))).NoError(t)
		gt.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, tenantPath("/documents"), &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, req)
		return rec
	}

	var doc struct {
		ID      string `json:"id"`
		FileRef string `json:"fileRef"`
	}

	t.Run("upload", func(t *testing.T) {
		rec := uploadDocument(t, map[string]any{
			"title":     "Fire Risk Assessment",
			"expiresAt": "2027-03-01",
		}, "fra.pdf", "pdf-bytes")
		gt.Value(t, rec.Code).Equal(http.StatusCreated)

		decodeBody(t, rec, &doc)
		gt.S(t, doc.FileRef).Contains("fra.pdf")
	})

	t.Run("upload without title is 400", func(t *testing.T) {
		rec := uploadDocument(t, map[string]any{}, "untitled.pdf", "x")
		gt.Value(t, rec.Code).Equal(http.StatusBadRequest)
	})

	t.Run("url resolves", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, tenantPath("/documents/"+doc.ID+"/url"), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			URL string `json:"url"`
		}
		decodeBody(t, rec, &resp)
		gt.S(t, resp.URL).Contains(doc.FileRef)
	})

	t.Run("update keeps file reference", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPut, tenantPath("/documents/"+doc.ID), map[string]any{
			"title": "Fire Risk Assessment 2026",
		})
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var updated struct {
			FileRef string `json:"fileRef"`
		}
		decodeBody(t, rec, &updated)
		gt.Value(t, updated.FileRef).Equal(doc.FileRef)
	})
}

func TestNoteEndpoints(t *testing.T) {
	srv := setupServer(t)

	var building struct {
		ID string `json:"id"`
	}
	rec := doJSON(t, srv, http.MethodPost, tenantPath("/buildings"), map[string]any{"name": "Mill Lane"})
	gt.Value(t, rec.Code).Equal(http.StatusCreated)
	decodeBody(t, rec, &building)

	t.Run("create requires existing building", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, tenantPath("/notes"), map[string]any{
			"buildingId": "no-such-building",
			"body":       "orphan",
		})
		gt.Value(t, rec.Code).Equal(http.StatusNotFound)
	})

	t.Run("lifecycle", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, tenantPath("/notes"), map[string]any{
			"buildingId": building.ID,
			"body":       "Boiler serviced",
			"author":     "jo",
		})
		gt.Value(t, rec.Code).Equal(http.StatusCreated)

		var note struct {
			ID string `json:"id"`
		}
		decodeBody(t, rec, &note)

		rec = doJSON(t, srv, http.MethodGet, tenantPath("/buildings/"+building.ID+"/notes"), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var listed struct {
			Notes []struct {
				Body string `json:"body"`
			} `json:"notes"`
		}
		decodeBody(t, rec, &listed)
		gt.A(t, listed.Notes).Length(1)
		gt.Value(t, listed.Notes[0].Body).Equal("Boiler serviced")

		rec = doJSON(t, srv, http.MethodDelete, tenantPath("/notes/"+note.ID), nil)
		gt.Value(t, rec.Code).Equal(http.StatusNoContent)
	})
}

func TestComplianceEndpoints(t *testing.T) {
	srv := setupServer(t)

	var building struct {
		ID string `json:"id"`
	}
	rec := doJSON(t, srv, http.MethodPost, tenantPath("/buildings"), map[string]any{"name": "Dockside"})
	gt.Value(t, rec.Code).Equal(http.StatusCreated)
	decodeBody(t, rec, &building)

	for i, status := range []string{"overdue", "completed"} {
		rec := doJSON(t, srv, http.MethodPost, tenantPath("/tasks"), map[string]any{
			"buildingId": building.ID,
			"title":      fmt.Sprintf("task-%d", i),
			"status":     status,
			"priority":   "medium",
		})
		gt.Value(t, rec.Code).Equal(http.StatusCreated)
	}

	t.Run("building summary", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, tenantPath("/buildings/"+building.ID+"/compliance"), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			TasksTotal   int     `json:"tasksTotal"`
			TasksOverdue int     `json:"tasksOverdue"`
			Score        float64 `json:"score"`
		}
		decodeBody(t, rec, &resp)
		gt.Value(t, resp.TasksTotal).Equal(2)
		gt.Value(t, resp.TasksOverdue).Equal(1)
		gt.Value(t, resp.Score).Equal(50.0)
	})

	t.Run("tenant summary", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, tenantPath("/compliance"), nil)
		gt.Value(t, rec.Code).Equal(http.StatusOK)

		var resp struct {
			Score     float64           `json:"score"`
			Buildings []json.RawMessage `json:"buildings"`
		}
		decodeBody(t, rec, &resp)
		gt.A(t, resp.Buildings).Length(1)
		gt.Value(t, resp.Score).Equal(50.0)
	})
}
