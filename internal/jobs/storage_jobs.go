package jobs

import (
	"context"
	"time"

	"greenhire-backend/internal/logger"
)

// SweepOrphanedImages removes stored images that no machine document
// references. An image becomes orphaned when the metadata write fails after
// a successful upload; the create path does not compensate, so this job
// does. Objects younger than the grace period are skipped in case their
// machine write is still in flight.
func (jr *JobRunner) SweepOrphanedImages() {
	jr.runWithRecovery("sweep-orphaned-images", func() {
		ctx := context.Background()

		objects, err := jr.store.List(ctx)
		if err != nil {
			logger.Error("Failed to list stored images", "error", err)
			return
		}
		if len(objects) == 0 {
			return
		}

		machines, err := jr.machineRepo.List(ctx)
		if err != nil {
			logger.Error("Failed to list machines for orphan sweep", "error", err)
			return
		}

		referenced := make(map[string]struct{}, len(machines))
		for _, m := range machines {
			if key, ok := jr.store.KeyFromURL(m.ImageURL); ok {
				referenced[key] = struct{}{}
			}
		}

		grace := time.Duration(jr.config.Scheduler.OrphanGracePeriodHrs) * time.Hour
		cutoff := time.Now().Add(-grace)

		removed := 0
		for _, obj := range objects {
			if _, ok := referenced[obj.Key]; ok {
				continue
			}
			if obj.Created.After(cutoff) {
				continue
			}
			if err := jr.store.Delete(ctx, obj.Key); err != nil {
				logger.Error("Failed to delete orphaned image", "key", obj.Key, "error", err)
				continue
			}
			logger.Info("Deleted orphaned image", "key", obj.Key, "created", obj.Created)
			removed++
		}

		logger.Info("Orphan sweep finished", "scanned", len(objects), "referenced", len(referenced), "removed", removed)
	})
}
