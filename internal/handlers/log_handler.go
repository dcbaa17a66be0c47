package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"clean-backend/internal/models"
	"clean-backend/internal/services"
	"clean-backend/internal/timeutil"
	"clean-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type LogHandler struct {
	taps   *services.TapService
	logs   *services.LogService
	export *services.ExportService
}

func NewLogHandler(taps *services.TapService, logs *services.LogService, export *services.ExportService) *LogHandler {
	return &LogHandler{taps: taps, logs: logs, export: export}
}

// Tap handles POST /api/rfid/log, the device tap endpoint
func (h *LogHandler) Tap(w http.ResponseWriter, r *http.Request) {
	var req models.TapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	logEntry, err := h.taps.Tap(r.Context(), &req)
	if err != nil {
		var tapped *services.AlreadyTappedError
		switch {
		case errors.As(err, &tapped):
			utils.JSON(w, http.StatusTooManyRequests, map[string]interface{}{
				"success":      false,
				"code":         "SUDAH_TAP_HARI_INI",
				"message":      "Kartu sudah melakukan tap hari ini",
				"lastTap":      timeutil.ToLocal(tapped.Waktu).Format(timeutil.DateTimeLayout),
				"petugas_name": tapped.PetugasName,
			})
		case errors.Is(err, services.ErrCardNotRegistered):
			utils.JSON(w, http.StatusNotFound, map[string]interface{}{
				"success": false,
				"code":    "KARTU_TIDAK_TERDAFTAR",
				"message": "Kartu tidak terdaftar",
			})
		default:
			handleServiceError(w, err)
		}
		return
	}

	utils.SuccessMessage(w, http.StatusCreated, "Tap berhasil dicatat", logEntry)
}

// List handles GET /api/rfid/logs with optional search/status/date/room
// query filters
func (h *LogHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.LogFilter{
		Search:  q.Get("search"),
		Status:  q.Get("status"),
		Tanggal: q.Get("date"),
		Room:    q.Get("room"),
	}

	logs, err := h.logs.List(r.Context(), filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}
	if logs == nil {
		logs = []models.RFIDLog{}
	}

	utils.Success(w, http.StatusOK, logs)
}

// Get handles GET /api/rfid/logs/{id}
func (h *LogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid log ID")
		return
	}

	logEntry, err := h.logs.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, logEntry)
}

// Delete handles DELETE /api/rfid/logs/{id}
func (h *LogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid log ID")
		return
	}

	if err := h.logs.Delete(r.Context(), id); err != nil {
		handleServiceError(w, err)
		return
	}

	utils.SuccessMessage(w, http.StatusOK, "Log berhasil dihapus", nil)
}

// SubmitChecklist handles PUT /api/rfid/logs/{id}/checklist
func (h *LogHandler) SubmitChecklist(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid log ID")
		return
	}

	var req models.ChecklistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	logEntry, err := h.logs.SubmitChecklist(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.SuccessMessage(w, http.StatusOK, "Checklist berhasil disimpan", logEntry)
}

// Summary handles GET /api/rfid/dashboard/summary for the supervisor
// dashboard
func (h *LogHandler) Summary(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.DashboardFilter{
		Tanggal: q.Get("tanggal"),
		Ruangan: q.Get("ruangan"),
		Petugas: q.Get("petugas"),
	}

	summary, err := h.logs.Summary(r.Context(), filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	utils.Success(w, http.StatusOK, summary)
}

// Export handles GET /api/rfid/logs/export?from=&to= and streams an XLSX
// workbook
func (h *LogHandler) Export(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from := q.Get("from")
	to := q.Get("to")
	if from == "" || to == "" {
		utils.Error(w, http.StatusBadRequest, "from dan to wajib diisi")
		return
	}

	data, err := h.export.ExportRange(r.Context(), from, to)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	filename := fmt.Sprintf("log-kebersihan-%s-sd-%s.xlsx", from, to)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
