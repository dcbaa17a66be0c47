package handlers

import (
	"errors"
	"log"
	"net/http"

	"clean-backend/internal/repositories"
	"clean-backend/internal/services"
	"clean-backend/pkg/utils"

	"github.com/jackc/pgx/v5"
)

// handleServiceError maps service and repository errors onto HTTP statuses.
// The tap conflict is handled separately because its payload carries extra
// fields.
func handleServiceError(w http.ResponseWriter, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		utils.Error(w, http.StatusBadRequest, validationErr.Msg)
	case errors.Is(err, repositories.ErrNotFound), errors.Is(err, pgx.ErrNoRows):
		utils.Error(w, http.StatusNotFound, "Data tidak ditemukan")
	case errors.Is(err, services.ErrCardAlreadyRegistered):
		utils.Error(w, http.StatusConflict, "Kartu sudah terdaftar")
	default:
		log.Printf("[Handler] internal error: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Terjadi kesalahan pada server")
	}
}
