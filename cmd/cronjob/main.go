package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"greenhire-backend/internal/config"
	"greenhire-backend/internal/jobs"
	"greenhire-backend/internal/logger"
	fsrepo "greenhire-backend/internal/repository/firestore"
	"greenhire-backend/internal/scheduler"
	"greenhire-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'sweep-orphaned-images')")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting GreenHire Cronjob Runner...", "log_level", cfg.Log.Level)

	ctx := context.Background()

	// Initialize Firebase app and Firestore client
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
	logger.Info("Firestore client initialized")

	// Initialize Repositories
	store := fsrepo.NewStore(firestoreClient)

	// Initialize Storage Service
	var storageService storage.StorageInterface
	switch cfg.Storage.Type {
	case "mock":
		mockStorage, err := storage.NewMockStorageService(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize mock storage", "error", err)
			log.Fatalf("Failed to initialize mock storage: %v", err)
		}
		storageService = mockStorage
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
		storageService = storage.NewFirebaseStorageService(bucket, cfg.Firebase.StorageBucket)
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(store.MachineRepository, storageService, cfg)

	// Run-once mode for manual invocation
	if *runOnce != "" {
		switch *runOnce {
		case "sweep-orphaned-images":
			jobRunner.SweepOrphanedImages()
		default:
			logger.Error("Unknown job", "job", *runOnce)
			os.Exit(1)
		}
		return
	}

	// Scheduled mode
	sched := scheduler.NewScheduler(jobRunner)
	sched.Start()
	defer sched.Stop()

	// Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	logger.Info("Received shutdown signal", "signal", sig.String())
}
