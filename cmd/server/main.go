package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"clean-backend/internal/auth"
	"clean-backend/internal/cache"
	"clean-backend/internal/config"
	"clean-backend/internal/database"
	"clean-backend/internal/db"
	"clean-backend/internal/handlers"
	"clean-backend/internal/health"
	h "clean-backend/internal/http"
	"clean-backend/internal/middleware"
	"clean-backend/internal/monitoring"
	"clean-backend/internal/notify"
	"clean-backend/internal/repositories"
	"clean-backend/internal/services"
	"clean-backend/internal/timeutil"
)

func main() {
	cfg := config.Load()

	timeutil.Init(cfg.Server.Timezone)

	pool := db.Connect(cfg)
	defer pool.Close()

	// Run migrations before anything touches the schema
	migrator := database.NewMigrator(pool)
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := migrator.RunMigrations(ctx); err != nil {
		cancel()
		log.Fatalf("Migration failed: %v", err)
	}
	cancel()

	// Redis is optional; everything degrades gracefully without it
	if err := cache.Init(); err != nil {
		log.Printf("[Cache] Redis unavailable, running without cache: %v", err)
	} else {
		log.Println("[Cache] Redis connected")
	}

	// Notifications
	telegram := notify.NewTelegramProvider(cfg)
	if !telegram.Configured() {
		log.Println("[Notify] Telegram not configured, notifications disabled")
	}
	dispatcher := notify.NewDispatcher(telegram)

	// Repositories
	cardRepo := repositories.NewCardRepository(pool)
	logRepo := repositories.NewRFIDLogRepository(pool)
	ruanganRepo := repositories.NewRuanganRepository(pool)
	kebersihanRepo := repositories.NewLaporanKebersihanRepository(pool)
	kebutuhanRepo := repositories.NewLaporanKebutuhanRepository(pool)
	userRepo := repositories.NewUserRepository(pool)

	// Services
	jwtManager := auth.NewJWTManager(cfg)
	cardService := services.NewCardService(cardRepo)
	tapService := services.NewTapService(cardRepo, logRepo, dispatcher)
	logService := services.NewLogService(logRepo)
	exportService := services.NewExportService(logRepo)
	ruanganService := services.NewRuanganService(ruanganRepo)
	laporanService := services.NewLaporanService(kebersihanRepo, kebutuhanRepo, dispatcher)
	userService := services.NewUserService(userRepo, jwtManager)

	// Handlers
	cardHandler := handlers.NewCardHandler(cardService)
	logHandler := handlers.NewLogHandler(tapService, logService, exportService)
	ruanganHandler := handlers.NewRuanganHandler(ruanganService)
	laporanHandler := handlers.NewLaporanHandler(laporanService, cfg.Server.UploadDir)
	authHandler := handlers.NewAuthHandler(userService)
	healthChecker := health.NewHealthChecker(pool)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	router := h.NewRouter(
		cardHandler,
		logHandler,
		ruanganHandler,
		laporanHandler,
		authHandler,
		healthHandler,
		authMiddleware,
		cfg.Server.UploadDir,
	)

	corsHandler := middleware.NewCORS(cfg)
	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsHandler(router)))

	// Ops dashboard on its own port
	monitor := monitoring.NewMonitoringServer(pool, cfg.Server.MonitorPort)
	go monitor.Start()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s (timezone %s)", addr, cfg.Server.Timezone)

	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
