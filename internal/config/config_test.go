package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("Full Config", func(t *testing.T) {
		path := writeConfig(t, `
server:
  host: "127.0.0.1"
  port: 9090
firebase:
  project_id: "greenhire-test"
  storage_bucket: "greenhire-test.appspot.com"
storage:
  type: "firebase"
sendgrid:
  enabled: true
  api_key: "SG.test"
  from_email: "noreply@example.com"
log:
  level: "debug"
  format: "json"
scheduler:
  sweep_orphaned_images: "0 30 3 * * *"
  orphan_grace_period_hours: 48
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddress())
		assert.Equal(t, "greenhire-test", cfg.Firebase.ProjectID)
		assert.Equal(t, "firebase", cfg.Storage.Type)
		assert.Equal(t, 48, cfg.Scheduler.OrphanGracePeriodHrs)
	})

	t.Run("Defaults", func(t *testing.T) {
		path := writeConfig(t, `
firebase:
  project_id: "greenhire-test"
`)

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "0.0.0.0:8080", cfg.GetServerAddress())
		assert.Equal(t, "mock", cfg.Storage.Type)
		assert.Equal(t, "./uploads", cfg.Storage.UploadDir)
		assert.Equal(t, "http://localhost:8080", cfg.Storage.BaseURL)
		assert.Equal(t, "0 0 4 * * *", cfg.Scheduler.SweepOrphanedImages)
		assert.Equal(t, 24, cfg.Scheduler.OrphanGracePeriodHrs)
	})

	t.Run("Missing Project ID", func(t *testing.T) {
		path := writeConfig(t, `
server:
  port: 8080
`)

		_, err := Load(path)
		assert.ErrorContains(t, err, "project_id is required")
	})

	t.Run("Firebase Storage Requires Bucket", func(t *testing.T) {
		path := writeConfig(t, `
firebase:
  project_id: "greenhire-test"
storage:
  type: "firebase"
`)

		_, err := Load(path)
		assert.ErrorContains(t, err, "storage_bucket is required")
	})

	t.Run("Unsupported Storage Type", func(t *testing.T) {
		path := writeConfig(t, `
firebase:
  project_id: "greenhire-test"
storage:
  type: "s3"
`)

		_, err := Load(path)
		assert.ErrorContains(t, err, "unsupported storage type")
	})

	t.Run("SendGrid Requires API Key", func(t *testing.T) {
		path := writeConfig(t, `
firebase:
  project_id: "greenhire-test"
sendgrid:
  enabled: true
`)

		_, err := Load(path)
		assert.ErrorContains(t, err, "api_key is required")
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yaml")
		assert.Error(t, err)
	})
}
