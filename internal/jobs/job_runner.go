package jobs

import (
	"greenhire-backend/internal/config"
	"greenhire-backend/internal/logger"
	"greenhire-backend/internal/repository"
	"greenhire-backend/internal/storage"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	machineRepo repository.MachineRepository
	store       storage.StorageInterface
	config      *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(machineRepo repository.MachineRepository, store storage.StorageInterface, cfg *config.Config) *JobRunner {
	return &JobRunner{
		machineRepo: machineRepo,
		store:       store,
		config:      cfg,
	}
}

// Config exposes the configuration for schedule registration
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}
