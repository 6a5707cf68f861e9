package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	api "greenhire-backend/internal/api/http"
	"greenhire-backend/internal/config"
	"greenhire-backend/internal/logger"
	fsrepo "greenhire-backend/internal/repository/firestore"
	"greenhire-backend/internal/security"
	"greenhire-backend/internal/service"
	"greenhire-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting GreenHire Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Firebase configuration", "project_id", cfg.Firebase.ProjectID, "storage_bucket", cfg.Firebase.StorageBucket)

	ctx := context.Background()

	// Initialize Firebase app and clients
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:     cfg.Firebase.ProjectID,
		StorageBucket: cfg.Firebase.StorageBucket,
	}, opts...)
	if err != nil {
		logger.Error("Failed to initialize Firebase app", "error", err)
		log.Fatalf("Failed to initialize Firebase app: %v", err)
	}

	firestoreClient, err := app.Firestore(ctx)
	if err != nil {
		logger.Error("Failed to create Firestore client", "error", err)
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	authClient, err := app.Auth(ctx)
	if err != nil {
		logger.Error("Failed to create Auth client", "error", err)
		log.Fatalf("Failed to create Auth client: %v", err)
	}
	logger.Info("Firebase clients initialized")

	// Initialize Repositories
	store := fsrepo.NewStore(firestoreClient)

	// Initialize Storage Service
	var storageService storage.StorageInterface
	var imageHandler *api.ImageHandler
	switch cfg.Storage.Type {
	case "mock":
		logger.Info("Using mock storage (local filesystem)", "upload_dir", cfg.Storage.UploadDir)
		mockStorage, err := storage.NewMockStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		storageService = mockStorage
		imageHandler = api.NewImageHandler(mockStorage)
	default:
		storageClient, err := app.Storage(ctx)
		if err != nil {
			logger.Error("Failed to create Storage client", "error", err)
			log.Fatalf("Failed to create Storage client: %v", err)
		}
		bucket, err := storageClient.DefaultBucket()
		if err != nil {
			logger.Error("Failed to resolve storage bucket", "error", err)
			log.Fatalf("Failed to resolve storage bucket: %v", err)
		}
		logger.Info("Using Cloud Storage bucket", "bucket", cfg.Firebase.StorageBucket)
		storageService = storage.NewFirebaseStorageService(bucket, cfg.Firebase.StorageBucket)
	}

	// Initialize Token Verifier
	verifier, err := security.NewTokenVerifier(cfg.Firebase.ProjectID)
	if err != nil {
		logger.Error("Failed to initialize token verifier", "error", err)
		log.Fatalf("Failed to initialize token verifier: %v", err)
	}

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.SendGrid.Enabled {
		emailSvc = service.NewSendGridEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		emailSvc = service.NewNoopEmailService()
	}

	// Initialize Services
	catalogSvc := service.NewCatalogService(store.MachineRepository, storageService)
	bookingSvc := service.NewBookingService(store.BookingRepository, store.UserRepository, catalogSvc, emailSvc)
	profileSvc := service.NewProfileService(store.UserRepository, store.MachineRepository, store.BookingRepository)
	authSvc := service.NewAuthService(authClient, store.UserRepository)

	// Initialize Router
	router := api.NewRouter(api.RouterConfig{
		Verifier:       verifier,
		AuthHandler:    api.NewAuthHandler(authSvc),
		MachineHandler: api.NewMachineHandler(catalogSvc),
		BookingHandler: api.NewBookingHandler(bookingSvc),
		ProfileHandler: api.NewProfileHandler(profileSvc),
		ImageHandler:   imageHandler,
	})

	server := &http.Server{
		Addr:    cfg.GetServerAddress(),
		Handler: router,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Received shutdown signal", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", "error", err)
	}
	logger.Info("Server stopped")
}
