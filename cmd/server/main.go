package main

import (
	"context"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"studydeck/internal/auth"
	"studydeck/internal/catalog"
	"studydeck/internal/config"
	"studydeck/internal/handler"
	"studydeck/internal/live"
	"studydeck/internal/middleware"
	"studydeck/internal/objectstore"
	"studydeck/internal/repository/postgres"
	"studydeck/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Setup structured logging
	logLevel := slog.LevelInfo
	if cfg.Environment == "dev" {
		logLevel = slog.LevelDebug
	}

	var logOut io.Writer = os.Stdout
	if cfg.Debug {
		if logFile, err := config.SetupLogFile("logs", 10); err == nil {
			defer logFile.Close()
			logOut = io.MultiWriter(os.Stdout, logFile)
		}
	}

	logger := slog.New(slog.NewJSONHandler(logOut, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger) // Set as default logger

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"table_prefix", cfg.TablePrefix,
	)

	// Create JWT verifier against the auth provider's JWKS endpoint
	jwtVerifier, err := auth.NewJWTVerifier(cfg.AuthJWKSURL, logger)
	if err != nil {
		log.Fatalf("Failed to create JWT verifier: %v", err)
	}
	defer jwtVerifier.Close()

	// Create pgx connection pool
	ctx := context.Background()
	pool, err := postgres.CreateConnectionPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to create connection pool: %v", err)
	}
	defer pool.Close()

	logger.Info("database connected",
		"max_conns", 25,
		"min_conns", 5,
	)

	// Create table names
	tables := postgres.NewTableNames(cfg.TablePrefix)

	// Create repositories
	repoConfig := &postgres.RepositoryConfig{
		Pool:   pool,
		Tables: tables,
		Logger: logger,
	}
	docRepo := postgres.NewDocumentRepository(repoConfig)
	draftRepo := postgres.NewDraftRepository(repoConfig)
	pileRepo := postgres.NewPileRepository(repoConfig)
	folderRepo := postgres.NewFolderRepository(repoConfig)
	todoRepo := postgres.NewTodoRepository(repoConfig)
	statRepo := postgres.NewStatisticRepository(repoConfig)
	shareRepo := postgres.NewShareRepository(repoConfig)
	settingsRepo := postgres.NewSettingsRepository(repoConfig)
	txManager := postgres.NewTransactionManager(pool)

	// Initialize the UI catalog (folder colors, editor backgrounds)
	registry, err := catalog.NewRegistry()
	if err != nil {
		log.Fatalf("Failed to initialize catalog registry: %v", err)
	}
	logger.Info("catalog registry initialized")

	// Object store for image uploads
	store, err := objectstore.NewS3Store(objectstore.S3Config{
		Bucket:    cfg.S3Bucket,
		Region:    cfg.S3Region,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Endpoint:  cfg.S3Endpoint,
	}, logger)
	if err != nil {
		log.Fatalf("Failed to initialize object store: %v", err)
	}

	// Live feed hub for todo subscriptions
	hub := live.NewHub()

	// Create services
	docService := service.NewDocumentService(docRepo, draftRepo, registry, logger)
	pileService := service.NewPileService(pileRepo, statRepo, logger)
	folderService := service.NewFolderService(folderRepo, docRepo, pileRepo, txManager, registry, logger)
	todoService := service.NewTodoService(todoRepo, hub, logger)
	statsService := service.NewStatisticsService(statRepo, settingsRepo, logger)
	shareService := service.NewShareService(shareRepo, pileRepo, docRepo, txManager, logger)
	settingsService := service.NewSettingsService(settingsRepo, logger)

	// Create handlers
	docHandler := handler.NewDocumentHandler(docService, shareService, logger)
	pileHandler := handler.NewPileHandler(pileService, shareService, logger)
	folderHandler := handler.NewFolderHandler(folderService, logger)
	todoHandler := handler.NewTodoHandler(todoService, logger)
	statsHandler := handler.NewStatisticsHandler(statsService, logger)
	shareHandler := handler.NewShareHandler(shareService, logger)
	settingsHandler := handler.NewSettingsHandler(settingsService, logger)
	catalogHandler := handler.NewCatalogHandler(registry)
	uploadHandler := handler.NewUploadHandler(store, logger)

	logger.Info("services initialized")

	// Create HTTP router (Go 1.22+ enhanced patterns)
	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", handler.HealthCheck)

	// Document routes
	mux.HandleFunc("POST /api/documents", docHandler.CreateDocument)
	mux.HandleFunc("GET /api/documents", docHandler.ListDocuments)
	mux.HandleFunc("GET /api/documents/{id}", docHandler.GetDocument)
	mux.HandleFunc("PATCH /api/documents/{id}", docHandler.UpdateDocument)
	mux.HandleFunc("DELETE /api/documents/{id}", docHandler.DeleteDocument)
	mux.HandleFunc("PUT /api/documents/{id}/draft", docHandler.SaveDraft)
	mux.HandleFunc("GET /api/documents/{id}/draft", docHandler.GetDraft)
	mux.HandleFunc("DELETE /api/documents/{id}/draft", docHandler.DiscardDraft)
	mux.HandleFunc("POST /api/documents/{id}/share", docHandler.ShareDocument)

	// Pile routes
	mux.HandleFunc("POST /api/piles", pileHandler.CreatePile)
	mux.HandleFunc("GET /api/piles", pileHandler.ListPiles)
	mux.HandleFunc("GET /api/piles/{id}", pileHandler.GetPile)
	mux.HandleFunc("PATCH /api/piles/{id}", pileHandler.UpdatePile)
	mux.HandleFunc("DELETE /api/piles/{id}", pileHandler.DeletePile)
	mux.HandleFunc("POST /api/piles/{id}/review", pileHandler.Review)
	mux.HandleFunc("POST /api/piles/{id}/share", pileHandler.SharePile)

	// Folder routes
	mux.HandleFunc("POST /api/folders", folderHandler.CreateFolder)
	mux.HandleFunc("GET /api/folders", folderHandler.ListFolders)
	mux.HandleFunc("PATCH /api/folders/{id}", folderHandler.UpdateFolder)
	mux.HandleFunc("DELETE /api/folders/{id}", folderHandler.DeleteFolder)

	// Todo routes
	mux.HandleFunc("GET /api/todos", todoHandler.ListTodos)
	mux.HandleFunc("POST /api/todos", todoHandler.CreateTodo)
	mux.HandleFunc("GET /api/todos/watch", todoHandler.Watch)
	mux.HandleFunc("PATCH /api/todos/{id}", todoHandler.UpdateTodo)
	mux.HandleFunc("DELETE /api/todos/{id}", todoHandler.DeleteTodo)

	// Statistics routes
	mux.HandleFunc("GET /api/statistics", statsHandler.ListStatistics)
	mux.HandleFunc("GET /api/statistics/summary", statsHandler.GetSummary)

	// Share inbox routes
	mux.HandleFunc("GET /api/shared", shareHandler.ListShares)
	mux.HandleFunc("POST /api/shared/{id}/claim", shareHandler.ClaimShare)
	mux.HandleFunc("DELETE /api/shared/{id}", shareHandler.DeclineShare)

	// Settings routes
	mux.HandleFunc("GET /api/settings", settingsHandler.GetSettings)
	mux.HandleFunc("PATCH /api/settings", settingsHandler.UpdateSettings)

	// Catalog routes
	mux.HandleFunc("GET /api/catalog/colors", catalogHandler.ListColors)
	mux.HandleFunc("GET /api/catalog/backgrounds", catalogHandler.ListBackgrounds)

	// Upload routes
	mux.HandleFunc("POST /api/uploads", uploadHandler.UploadImage)

	// Build middleware chain
	var httpHandler http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → Recovery → Auth → Routes
	httpHandler = middleware.AuthMiddleware(jwtVerifier)(httpHandler)
	httpHandler = middleware.Recovery(logger)(httpHandler)

	// CORS - Must be before auth to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	})
	httpHandler = corsHandler.Handler(httpHandler)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // Disabled to allow long-lived websocket connections
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	logger.Info("server listening", "port", cfg.Port)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Failed to start server: %v", err)
	}
}
