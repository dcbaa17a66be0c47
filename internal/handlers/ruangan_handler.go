package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"clean-backend/internal/models"
	"clean-backend/internal/services"
	"clean-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type RuanganHandler struct {
	service *services.RuanganService
}

func NewRuanganHandler(service *services.RuanganService) *RuanganHandler {
	return &RuanganHandler{service: service}
}

// Create handles POST /api/ruangan
func (h *RuanganHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.RuanganRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ruangan, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.SuccessMessage(w, http.StatusCreated, "Ruangan berhasil ditambahkan", ruangan)
}

// List handles GET /api/ruangan
func (h *RuanganHandler) List(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if list == nil {
		list = []models.Ruangan{}
	}

	utils.Success(w, http.StatusOK, list)
}

// Get handles GET /api/ruangan/{id}
func (h *RuanganHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid room ID")
		return
	}

	ruangan, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, ruangan)
}

// Update handles PUT /api/ruangan/{id}
func (h *RuanganHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid room ID")
		return
	}

	var req models.RuanganRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ruangan, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.SuccessMessage(w, http.StatusOK, "Ruangan berhasil diperbarui", ruangan)
}

// PetugasList handles GET /api/ruangan/petugas/list
func (h *RuanganHandler) PetugasList(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.PetugasList(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	utils.Success(w, http.StatusOK, names)
}

// ByPetugas handles GET /api/ruangan/by-petugas/{petugas}
func (h *RuanganHandler) ByPetugas(w http.ResponseWriter, r *http.Request) {
	petugas := mux.Vars(r)["petugas"]

	list, err := h.service.ListByPetugas(r.Context(), petugas)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if list == nil {
		list = []models.Ruangan{}
	}
	utils.Success(w, http.StatusOK, list)
}

// Delete handles DELETE /api/ruangan/{id}
func (h *RuanganHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid room ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.SuccessMessage(w, http.StatusOK, "Ruangan berhasil dihapus", nil)
}
