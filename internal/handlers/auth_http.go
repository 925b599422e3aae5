package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/service"
	"github.com/GAUSHUL78/Campus-Issue-Tracker/internal/utils"
)

type AuthHTTP struct {
	svc *service.AuthService
}

func NewAuthHTTP(s *service.AuthService) *AuthHTTP { return &AuthHTTP{svc: s} }

// POST /api/auth/register
func (h *AuthHTTP) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Name     string `json:"name"`
			RegNo    string `json:"regNo"`
			Branch   string `json:"branch"`
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		err := h.svc.Register(r.Context(), in.Name, in.RegNo, in.Branch, in.Email, in.Password)
		switch {
		case err == nil:
			utils.JSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
		case errors.Is(err, service.ErrMissingFields),
			errors.Is(err, service.ErrBadEmail),
			errors.Is(err, service.ErrShortPassword),
			errors.Is(err, service.ErrAccountExists):
			utils.Error(w, http.StatusBadRequest, err.Error())
		default:
			utils.Error(w, http.StatusInternalServerError, err.Error())
		}
	}
}

// POST /api/auth/login
func (h *AuthHTTP) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}

		res, err := h.svc.Login(r.Context(), in.Email, in.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				utils.Error(w, http.StatusBadRequest, "invalid credentials")
				return
			}
			utils.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		utils.JSON(w, http.StatusOK, res)
	}
}
