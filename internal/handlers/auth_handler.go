package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"clean-backend/internal/models"
	"clean-backend/internal/services"
	"clean-backend/pkg/utils"
)

type AuthHandler struct {
	service *services.UserService
}

func NewAuthHandler(service *services.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.Error(w, http.StatusUnauthorized, "Username atau password salah")
			return
		}
		handleServiceError(w, err)
		return
	}

	utils.JSON(w, http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout. Tokens are stateless, so logout is
// just the client discarding its token; this endpoint exists for the
// frontend's convenience.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	utils.SuccessMessage(w, http.StatusOK, "Logout berhasil", nil)
}

// Register handles POST /api/auth/register, admin only
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.service.CreateUser(r.Context(), body.Username, body.Password, body.Role)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.SuccessMessage(w, http.StatusCreated, "User berhasil dibuat", user)
}
