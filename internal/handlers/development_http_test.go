package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/middleware"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/models"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/repository"
)

type fakeDevelopments struct {
	items  map[string]*models.Development
	nextID int
}

func newFakeDevelopments() *fakeDevelopments {
	return &fakeDevelopments{items: map[string]*models.Development{}}
}

func (f *fakeDevelopments) Create(_ context.Context, d *models.Development) error {
	f.nextID++
	d.ID = "dev-" + strconv.Itoa(f.nextID)
	cp := *d
	f.items[d.ID] = &cp
	return nil
}

func (f *fakeDevelopments) List(_ context.Context) ([]models.Development, error) {
	out := []models.Development{}
	for _, d := range f.items {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDevelopments) Update(_ context.Context, id string, patch repository.DevelopmentPatch) (*models.Development, error) {
	d, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	if patch.DevelopmentName != nil {
		d.DevelopmentName = *patch.DevelopmentName
	}
	if patch.Description != nil {
		d.Description = *patch.Description
	}
	if patch.StartDate != nil {
		d.StartDate = *patch.StartDate
	}
	if patch.CompletionDate != nil {
		d.CompletionDate = patch.CompletionDate
	}
	if patch.Status != nil {
		d.Status = *patch.Status
	}
	if patch.ImageURL != nil {
		d.ImageURL = *patch.ImageURL
	}
	cp := *d
	return &cp, nil
}

func newDevelopmentServer(t *testing.T, repo repository.DevelopmentRepository) *httptest.Server {
	t.Helper()
	dh := NewDevelopmentHTTP(repo)
	r := chi.NewRouter()
	r.Route("/api/developments", func(r chi.Router) {
		r.Use(middleware.Authenticate(testCfg()))
		r.With(middleware.RequireRoles(models.RoleStudent, models.RoleAdmin)).Get("/", dh.List())
		r.With(middleware.RequireRoles(models.RoleAdmin)).Post("/", dh.Create())
		r.With(middleware.RequireRoles(models.RoleAdmin)).Put("/{id}", dh.Update())
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func TestDevelopmentCreateAndDefaults(t *testing.T) {
	srv := newDevelopmentServer(t, newFakeDevelopments())
	admin := mustToken(t, "admin", models.RoleAdmin)

	resp := doJSON(t, http.MethodPost, srv.URL+"/api/developments", admin, map[string]any{
		"developmentName": "New auditorium",
		"description":     "500-seat hall",
		"startDate":       time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	var d models.Development
	if err := json.NewDecoder(resp.Body).Decode(&d); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if d.Status != models.DevPlanned {
		t.Fatalf("expected default Planned status, got %q", d.Status)
	}

	// Missing required fields.
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/developments", admin, map[string]any{
		"developmentName": "Half-filled",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestDevelopmentRoles(t *testing.T) {
	repo := newFakeDevelopments()
	d := models.Development{DevelopmentName: "Lab block", Description: "x", StartDate: time.Now(), Status: models.DevPlanned}
	if err := repo.Create(context.Background(), &d); err != nil {
		t.Fatalf("seed: %v", err)
	}
	srv := newDevelopmentServer(t, repo)
	student := mustToken(t, "stu-1", models.RoleStudent)

	// Students can read.
	resp := doJSON(t, http.MethodGet, srv.URL+"/api/developments", student, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for student read, got %d", resp.StatusCode)
	}
	// Students cannot create or update.
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/developments", student, map[string]any{"developmentName": "x"})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for student create, got %d", resp.StatusCode)
	}
	resp = doJSON(t, http.MethodPut, srv.URL+"/api/developments/"+d.ID, student, map[string]any{"status": "Completed"})
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for student update, got %d", resp.StatusCode)
	}
}

func TestDevelopmentUpdate(t *testing.T) {
	repo := newFakeDevelopments()
	d := models.Development{DevelopmentName: "Lab block", Description: "x", StartDate: time.Now(), Status: models.DevPlanned}
	if err := repo.Create(context.Background(), &d); err != nil {
		t.Fatalf("seed: %v", err)
	}
	srv := newDevelopmentServer(t, repo)
	admin := mustToken(t, "admin", models.RoleAdmin)

	resp := doJSON(t, http.MethodPut, srv.URL+"/api/developments/"+d.ID, admin, map[string]any{"status": "Under Construction"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var got models.Development
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Status != models.DevUnderConstruction {
		t.Fatalf("expected Under Construction, got %q", got.Status)
	}
	if got.DevelopmentName != "Lab block" {
		t.Fatalf("partial update must keep unset fields, got %q", got.DevelopmentName)
	}

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/developments/unknown", admin, map[string]any{"status": "Completed"})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown id, got %d", resp.StatusCode)
	}

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/developments/"+d.ID, admin, map[string]any{"status": "Demolished"})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status, got %d", resp.StatusCode)
	}
}
