package http

import (
	"net/http"

	"clean-backend/internal/handlers"
	"clean-backend/internal/middleware"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	cardHandler *handlers.CardHandler,
	logHandler *handlers.LogHandler,
	ruanganHandler *handlers.RuanganHandler,
	laporanHandler *handlers.LaporanHandler,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
	uploadDir string,
) *mux.Router {
	r := mux.NewRouter()

	// Uploaded report photos
	r.PathPrefix("/uploads/").Handler(
		http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadDir))))

	// Operational endpoints
	r.HandleFunc("/health", healthHandler.Check).Methods("GET")
	r.HandleFunc("/health/ready", healthHandler.Ready).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	// Authentication
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/logout", authHandler.Logout).Methods("POST")
	r.Handle("/api/auth/register",
		authMiddleware.RequireRole("admin")(http.HandlerFunc(authHandler.Register))).Methods("POST")

	protect := func(h http.HandlerFunc) http.Handler {
		return authMiddleware.Authenticate(h)
	}

	// Device-facing endpoints. The reader firmware cannot hold a JWT, so
	// these stay open; network placement is the access control.
	rfidAPI := r.PathPrefix("/api/rfid").Subrouter()
	rfidAPI.HandleFunc("/log", logHandler.Tap).Methods("POST")
	rfidAPI.HandleFunc("/card", cardHandler.Register).Methods("POST")
	rfidAPI.HandleFunc("/check-card", cardHandler.Check).Methods("GET")
	rfidAPI.HandleFunc("/dashboard/summary", logHandler.Summary).Methods("GET")

	// Logs
	rfidAPI.HandleFunc("/logs", logHandler.List).Methods("GET")
	rfidAPI.HandleFunc("/logs/export", logHandler.Export).Methods("GET")
	rfidAPI.HandleFunc("/logs/{id}", logHandler.Get).Methods("GET")
	rfidAPI.Handle("/logs/{id}", protect(logHandler.Delete)).Methods("DELETE")
	rfidAPI.HandleFunc("/logs/{id}/checklist", logHandler.SubmitChecklist).Methods("PUT")

	// Cards
	rfidAPI.HandleFunc("/cards", cardHandler.List).Methods("GET")
	rfidAPI.HandleFunc("/cards/{id}", cardHandler.Get).Methods("GET")
	rfidAPI.HandleFunc("/cards/{id}", cardHandler.Update).Methods("PUT")
	rfidAPI.HandleFunc("/cards/{id}", cardHandler.Delete).Methods("DELETE")
	rfidAPI.HandleFunc("/cards/{id}/ruangan/{roomId}", cardHandler.RemoveRoom).Methods("DELETE")

	// Room directory
	ruanganAPI := r.PathPrefix("/api/ruangan").Subrouter()
	ruanganAPI.HandleFunc("", ruanganHandler.List).Methods("GET")
	ruanganAPI.HandleFunc("", ruanganHandler.Create).Methods("POST")
	ruanganAPI.HandleFunc("/petugas/list", ruanganHandler.PetugasList).Methods("GET")
	ruanganAPI.HandleFunc("/by-petugas/{petugas}", ruanganHandler.ByPetugas).Methods("GET")
	ruanganAPI.HandleFunc("/{id}", ruanganHandler.Get).Methods("GET")
	ruanganAPI.HandleFunc("/{id}", ruanganHandler.Update).Methods("PUT")
	ruanganAPI.HandleFunc("/{id}", ruanganHandler.Delete).Methods("DELETE")

	// Cleaning reports
	cleaningAPI := r.PathPrefix("/api/cleaning").Subrouter()
	cleaningAPI.HandleFunc("", laporanHandler.ListKebersihan).Methods("GET")
	cleaningAPI.HandleFunc("", laporanHandler.CreateKebersihan).Methods("POST")
	cleaningAPI.HandleFunc("/unique-petugas", laporanHandler.UniquePetugas).Methods("GET")
	cleaningAPI.HandleFunc("/unique-ruangan", laporanHandler.UniqueRuangan).Methods("GET")
	cleaningAPI.HandleFunc("/petugas-ruangan-mapping", laporanHandler.PetugasRuanganMapping).Methods("GET")
	cleaningAPI.Handle("/{id}/checklist", protect(laporanHandler.Validate)).Methods("PUT")
	cleaningAPI.Handle("/{id}", protect(laporanHandler.DeleteKebersihan)).Methods("DELETE")

	// Supplies reports
	laporanAPI := r.PathPrefix("/api/laporan").Subrouter()
	laporanAPI.HandleFunc("", laporanHandler.ListKebutuhan).Methods("GET")
	laporanAPI.HandleFunc("", laporanHandler.CreateKebutuhan).Methods("POST")
	laporanAPI.Handle("/{id}", protect(laporanHandler.DeleteKebutuhan)).Methods("DELETE")

	return r
}
