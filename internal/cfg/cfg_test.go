package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"HTTP_PORT", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "KEEP_ALIVE",
		"DB_PATH", "DB_BUSY_TIMEOUT", "DB_MAX_OPEN_CONNS",
		"OPENROUTER_API_KEY", "OPENROUTER_BASE_URL", "LLM_MODEL", "LLM_TIMEOUT",
		"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB_ID", "MEANING_TTL", "SWAGGER_HOST",
		"REDIS_DIAL_TIMEOUT", "REDIS_TIMEOUT", "REDIS_MAX_RETRIES",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	c, err := Load(logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "8000", c.Http.Port)
	assert.Equal(t, 5*time.Second, c.Http.ReadTimeout)
	assert.Equal(t, "miwebsite.db", c.Db.Path)
	assert.Equal(t, 10, c.Db.MaxOpenConns)
	assert.Empty(t, c.Llm.ApiKey)
	assert.Equal(t, "https://openrouter.ai/api/v1", c.Llm.BaseURL)
	assert.Equal(t, "gpt-oss-20b:free", c.Llm.Model)
	assert.False(t, c.Redis.Enabled())
	assert.Equal(t, 24*time.Hour, c.Redis.MeaningTTL)
	assert.Equal(t, 2*time.Second, c.Redis.DialTimeout)
	assert.Equal(t, 500*time.Millisecond, c.Redis.Timeout)
	assert.Equal(t, 1, c.Redis.MaxRetries)
	assert.Equal(t, "localhost:8000", c.Swagger.Host)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/test.db")
	t.Setenv("OPENROUTER_API_KEY", "sk-test")
	t.Setenv("LLM_TIMEOUT", "3s")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_TIMEOUT", "200ms")
	t.Setenv("REDIS_MAX_RETRIES", "3")

	c, err := Load(logger.NewNop())
	require.NoError(t, err)

	assert.Equal(t, "9090", c.Http.Port)
	assert.Equal(t, "/tmp/test.db", c.Db.Path)
	assert.Equal(t, "sk-test", c.Llm.ApiKey)
	assert.Equal(t, 3*time.Second, c.Llm.Timeout)
	assert.True(t, c.Redis.Enabled())
	assert.Equal(t, 200*time.Millisecond, c.Redis.Timeout)
	assert.Equal(t, 3, c.Redis.MaxRetries)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("duration", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LLM_TIMEOUT", "soon")

		_, err := Load(logger.NewNop())
		require.Error(t, err)
	})

	t.Run("integer", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_MAX_OPEN_CONNS", "many")

		_, err := Load(logger.NewNop())
		require.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
	})

	t.Run("redis retries", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("REDIS_MAX_RETRIES", "few")

		_, err := Load(logger.NewNop())
		require.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
	})

	t.Run("non-positive ttl", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MEANING_TTL", "-1m")

		_, err := Load(logger.NewNop())
		require.Error(t, err)
	})
}
