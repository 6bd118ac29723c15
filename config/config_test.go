package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://127.0.0.1:27017")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.MongoURI)
	assert.Equal(t, "ats_db", cfg.DBName)
	assert.Equal(t, "", cfg.LogDir)
	assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("PORT", "8080")
	t.Setenv("DB_NAME", "ats_test")
	t.Setenv("LOG_DIR", "/tmp/ats-logs")
	t.Setenv("MONGO_TIMEOUT", "2s")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "ats_test", cfg.DBName)
	assert.Equal(t, "/tmp/ats-logs", cfg.LogDir)
	assert.Equal(t, 2*time.Second, cfg.ConnectTimeout)
}

func TestLoadMissingMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")

	_, err := Load()

	assert.ErrorIs(t, err, ErrMissingRequiredEnv)
}

func TestLoadBadTimeoutFallsBack(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://127.0.0.1:27017")
	t.Setenv("MONGO_TIMEOUT", "soon")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, 5*time.Second, cfg.ConnectTimeout)
}
