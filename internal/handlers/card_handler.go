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

type CardHandler struct {
	service *services.CardService
}

func NewCardHandler(service *services.CardService) *CardHandler {
	return &CardHandler{service: service}
}

// Register handles POST /api/rfid/card
func (h *CardHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	card, err := h.service.Register(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.SuccessMessage(w, http.StatusCreated, "Kartu berhasil didaftarkan", card)
}

// Check handles GET /api/rfid/check-card?uid=
func (h *CardHandler) Check(w http.ResponseWriter, r *http.Request) {
	uid := r.URL.Query().Get("uid")

	resp, err := h.service.Check(r.Context(), uid)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, resp)
}

// List handles GET /api/rfid/cards
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	cards, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if cards == nil {
		cards = []models.Card{}
	}

	utils.Success(w, http.StatusOK, cards)
}

// Get handles GET /api/rfid/cards/{id}
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid card ID")
		return
	}

	card, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, card)
}

// Update handles PUT /api/rfid/cards/{id}
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid card ID")
		return
	}

	var req models.UpdateCardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	card, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.SuccessMessage(w, http.StatusOK, "Kartu berhasil diperbarui", card)
}

// Delete handles DELETE /api/rfid/cards/{id}
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid card ID")
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.SuccessMessage(w, http.StatusOK, "Kartu berhasil dihapus", nil)
}

// RemoveRoom handles DELETE /api/rfid/cards/{id}/ruangan/{roomId}
func (h *CardHandler) RemoveRoom(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	cardID, err := strconv.Atoi(vars["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid card ID")
		return
	}
	roomID, err := strconv.Atoi(vars["roomId"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid room ID")
		return
	}

	if err := h.service.RemoveRoom(r.Context(), cardID, roomID); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.SuccessMessage(w, http.StatusOK, "Ruangan berhasil dilepas dari kartu", nil)
}
