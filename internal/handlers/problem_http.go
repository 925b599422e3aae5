package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/middleware"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/models"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/repository"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/storage"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/utils"
)

const maxUploadMemory = 8 << 20

// ProblemHTTP wires the problem-report endpoints to the repository and the
// image store.
type ProblemHTTP struct {
	problems repository.ProblemRepository
	images   *storage.Store
}

func NewProblemHTTP(problems repository.ProblemRepository, images *storage.Store) *ProblemHTTP {
	return &ProblemHTTP{problems: problems, images: images}
}

// POST /api/problems (student, multipart)
// The image is written before the document; a failed write aborts creation.
func (h *ProblemHTTP) Create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid multipart form")
			return
		}

		fields := map[string]string{
			"problemName": strings.TrimSpace(r.FormValue("problemName")),
			"department":  strings.TrimSpace(r.FormValue("department")),
			"location":    strings.TrimSpace(r.FormValue("location")),
			"urgency":     strings.TrimSpace(r.FormValue("urgency")),
			"description": strings.TrimSpace(r.FormValue("description")),
		}
		missing := map[string]bool{}
		for k, v := range fields {
			if v == "" {
				missing[k] = true
			}
		}
		if len(missing) > 0 {
			utils.JSON(w, http.StatusBadRequest, map[string]any{
				"message": "All fields are required",
				"missing": missing,
			})
			return
		}
		if !models.ValidUrgency(fields["urgency"]) {
			utils.Error(w, http.StatusBadRequest, "urgency must be Low, Medium or High")
			return
		}

		var image string
		if fhs := r.MultipartForm.File["image"]; len(fhs) > 0 {
			name, err := h.images.SaveImage(fhs[0])
			if err != nil {
				if errors.Is(err, storage.ErrImageTooLarge) || errors.Is(err, storage.ErrBadImageType) {
					utils.Error(w, http.StatusBadRequest, err.Error())
					return
				}
				utils.Error(w, http.StatusInternalServerError, err.Error())
				return
			}
			image = name
		}

		uid, _ := utils.GetString(r.Context(), middleware.CtxUserID)
		p := &models.Problem{
			ProblemName: fields["problemName"],
			Department:  fields["department"],
			Location:    fields["location"],
			Urgency:     fields["urgency"],
			Description: fields["description"],
			Image:       image,
			SubmittedBy: uid,
			Status:      models.StatusNew,
		}
		if err := h.problems.Create(r.Context(), p); err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusCreated, p)
	}
}

// GET /api/problems (admin)
func (h *ProblemHTTP) List() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		f := repository.ProblemFilter{
			Department: q.Get("department"),
			Location:   q.Get("location"),
			Status:     q.Get("status"),
			Urgency:    q.Get("urgency"),
		}
		items, err := h.problems.List(r.Context(), f)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

// GET /api/problems/my (student)
func (h *ProblemHTTP) Mine() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid, _ := utils.GetString(r.Context(), middleware.CtxUserID)
		items, err := h.problems.ListByOwner(r.Context(), uid)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, items)
	}
}

// GET /api/problems/filters (admin)
func (h *ProblemHTTP) FilterOptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		opts, err := h.problems.FilterOptions(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, opts)
	}
}

// GET /api/problems/stats (admin)
func (h *ProblemHTTP) Stats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := h.problems.StatusCounts(r.Context())
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		highOpen, err := h.problems.CountOpenByUrgency(r.Context(), models.UrgencyHigh)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		total := 0
		for _, n := range counts {
			total += n
		}
		utils.JSON(w, http.StatusOK, map[string]int{
			"total":           total,
			"new":             counts[models.StatusNew],
			"pending":         counts[models.StatusPending],
			"resolved":        counts[models.StatusResolved],
			"highUrgencyOpen": highOpen,
		})
	}
}

// PUT /api/problems/{id}/status (admin)
func (h *ProblemHTTP) UpdateStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		var in struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		if !models.ValidStatus(in.Status) {
			utils.Error(w, http.StatusBadRequest, "status must be New, Pending or Resolved")
			return
		}

		p, err := h.problems.UpdateStatus(r.Context(), id, in.Status)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if p == nil {
			utils.Error(w, http.StatusNotFound, "Problem not found")
			return
		}
		utils.JSON(w, http.StatusOK, p)
	}
}

// DELETE /api/problems/{id} (student deletes own, admin deletes any)
func (h *ProblemHTTP) Delete() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		p, err := h.problems.Get(r.Context(), id)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if p == nil {
			utils.Error(w, http.StatusNotFound, "Problem not found")
			return
		}

		role, _ := utils.GetString(r.Context(), middleware.CtxRole)
		uid, _ := utils.GetString(r.Context(), middleware.CtxUserID)
		if models.Role(role) == models.RoleStudent && p.SubmittedBy != uid {
			utils.Error(w, http.StatusForbidden, "You can only delete your own problems")
			return
		}

		if err := h.problems.Delete(r.Context(), id); err != nil {
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, map[string]string{"message": "Problem deleted successfully"})
	}
}
