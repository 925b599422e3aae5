package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/models"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/repository"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/utils"
)

type DevelopmentHTTP struct {
	devs repository.DevelopmentRepository
}

func NewDevelopmentHTTP(devs repository.DevelopmentRepository) *DevelopmentHTTP {
	return &DevelopmentHTTP{devs: devs}
}

// POST /api/developments (admin)
func (h *DevelopmentHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			DevelopmentName string     `json:"developmentName"`
			Description     string     `json:"description"`
			StartDate       *time.Time `json:"startDate"`
			CompletionDate  *time.Time `json:"completionDate"`
			Status          string     `json:"status"`
			ImageURL        string     `json:"imageUrl"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		in.DevelopmentName = strings.TrimSpace(in.DevelopmentName)
		in.Description = strings.TrimSpace(in.Description)
		if in.DevelopmentName == "" || in.Description == "" || in.StartDate == nil {
			utils.Error(w, http.StatusBadRequest, "developmentName, description and startDate are required")
			return
		}
		if in.Status == "" {
			in.Status = models.DevPlanned
		}
		if !models.ValidDevelopmentStatus(in.Status) {
			utils.Error(w, http.StatusBadRequest, "status must be Planned, Under Construction or Completed")
			return
		}

		d := &models.Development{
			DevelopmentName: in.DevelopmentName,
			Description:     in.Description,
			StartDate:       *in.StartDate,
			CompletionDate:  in.CompletionDate,
			Status:          in.Status,
			ImageURL:        strings.TrimSpace(in.ImageURL),
		}
		if err := h.devs.Create(r.Context(), d); err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, d)
	}
}

// GET /api/developments (student + admin)
func (h *DevelopmentHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := h.devs.List(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

// PUT /api/developments/{id} (admin, partial update)
func (h *DevelopmentHTTP) Update() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var in struct {
			DevelopmentName *string    `json:"developmentName"`
			Description     *string    `json:"description"`
			StartDate       *time.Time `json:"startDate"`
			CompletionDate  *time.Time `json:"completionDate"`
			Status          *string    `json:"status"`
			ImageURL        *string    `json:"imageUrl"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if in.Status != nil && !models.ValidDevelopmentStatus(*in.Status) {
			utils.Error(w, http.StatusBadRequest, "status must be Planned, Under Construction or Completed")
			return
		}

		d, err := h.devs.Update(r.Context(), id, repository.DevelopmentPatch{
			DevelopmentName: in.DevelopmentName,
			Description:     in.Description,
			StartDate:       in.StartDate,
			CompletionDate:  in.CompletionDate,
			Status:          in.Status,
			ImageURL:        in.ImageURL,
		})
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if d == nil {
			utils.Error(w, http.StatusNotFound, "Development not found")
			return
		}
		utils.JSON(w, http.StatusOK, d)
	}
}
