package handlers

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"clean-backend/internal/models"
	"clean-backend/internal/services"
	"clean-backend/pkg/utils"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// maxUploadSize caps report photos at 2 MB.
const maxUploadSize = 2 << 20

type LaporanHandler struct {
	service   *services.LaporanService
	uploadDir string
}

func NewLaporanHandler(service *services.LaporanService, uploadDir string) *LaporanHandler {
	return &LaporanHandler{service: service, uploadDir: uploadDir}
}

// CreateKebersihan handles POST /api/cleaning as a multipart form with an
// optional photo
func (h *LaporanHandler) CreateKebersihan(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid multipart form")
		return
	}

	req := models.CreateLaporanKebersihanRequest{
		Petugas: r.FormValue("petugas"),
		Tanggal: r.FormValue("tanggal"),
		Ruangan: r.FormValue("ruangan"),
		Catatan: r.FormValue("catatan"),
	}

	file, header, err := r.FormFile("foto")
	if err == nil {
		defer file.Close()

		filename, err := h.savePhoto(file, header.Filename)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "Gagal menyimpan foto")
			return
		}
		req.Foto = filename
	}

	lap, err := h.service.CreateKebersihan(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.SuccessMessage(w, http.StatusCreated, "Laporan kebersihan berhasil dikirim", lap)
}

// ListKebersihan handles GET /api/cleaning
func (h *LaporanHandler) ListKebersihan(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListKebersihan(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if list == nil {
		list = []models.LaporanKebersihan{}
	}

	utils.Success(w, http.StatusOK, list)
}

// Validate handles PUT /api/cleaning/{id}/checklist
func (h *LaporanHandler) Validate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	var req models.ValidateLaporanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.service.Validate(r.Context(), id, &req); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.SuccessMessage(w, http.StatusOK, "Status validasi berhasil diperbarui", nil)
}

// DeleteKebersihan handles DELETE /api/cleaning/{id}; the stored photo is
// removed from disk along with the row
func (h *LaporanHandler) DeleteKebersihan(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	foto, err := h.service.DeleteKebersihan(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	if foto != "" {
		if err := os.Remove(filepath.Join(h.uploadDir, foto)); err != nil && !os.IsNotExist(err) {
			log.Printf("[Laporan] could not remove photo %s: %v", foto, err)
		}
	}

	utils.SuccessMessage(w, http.StatusOK, "Laporan berhasil dihapus", nil)
}

// UniquePetugas handles GET /api/cleaning/unique-petugas
func (h *LaporanHandler) UniquePetugas(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.UniquePetugas(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	utils.Success(w, http.StatusOK, names)
}

// UniqueRuangan handles GET /api/cleaning/unique-ruangan
func (h *LaporanHandler) UniqueRuangan(w http.ResponseWriter, r *http.Request) {
	names, err := h.service.UniqueRuangan(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if names == nil {
		names = []string{}
	}
	utils.Success(w, http.StatusOK, names)
}

// PetugasRuanganMapping handles GET /api/cleaning/petugas-ruangan-mapping
func (h *LaporanHandler) PetugasRuanganMapping(w http.ResponseWriter, r *http.Request) {
	pairs, err := h.service.PetugasRuanganMapping(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if pairs == nil {
		pairs = []models.PetugasRuangan{}
	}
	utils.Success(w, http.StatusOK, pairs)
}

// CreateKebutuhan handles POST /api/laporan
func (h *LaporanHandler) CreateKebutuhan(w http.ResponseWriter, r *http.Request) {
	var req models.CreateLaporanKebutuhanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	lap, err := h.service.CreateKebutuhan(r.Context(), &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.SuccessMessage(w, http.StatusCreated, "Laporan kebutuhan berhasil dikirim", lap)
}

// ListKebutuhan handles GET /api/laporan
func (h *LaporanHandler) ListKebutuhan(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.ListKebutuhan(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if list == nil {
		list = []models.LaporanKebutuhan{}
	}

	utils.Success(w, http.StatusOK, list)
}

// DeleteKebutuhan handles DELETE /api/laporan/{id}
func (h *LaporanHandler) DeleteKebutuhan(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid report ID")
		return
	}

	if err := h.service.DeleteKebutuhan(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.SuccessMessage(w, http.StatusOK, "Laporan berhasil dihapus", nil)
}

// savePhoto writes the upload under a random name, keeping the original
// extension.
func (h *LaporanHandler) savePhoto(file io.Reader, originalName string) (string, error) {
	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	filename := uuid.New().String() + ext

	dst, err := os.Create(filepath.Join(h.uploadDir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		return "", err
	}
	return filename, nil
}
