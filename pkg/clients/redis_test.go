package clients

import (
	"testing"
	"time"

	"github.com/DRSN-tech/micrositio-backend/internal/cfg"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_Options(t *testing.T) {
	c := NewRedisClient(&cfg.RedisCfg{
		Addr:        "localhost:6379",
		DB:          2,
		DialTimeout: time.Second,
		Timeout:     300 * time.Millisecond,
		MaxRetries:  2,
	})
	t.Cleanup(func() { _ = c.Close() })

	opts := c.Client.Options()
	assert.Equal(t, "localhost:6379", opts.Addr)
	assert.Equal(t, 2, opts.DB)
	assert.Equal(t, time.Second, opts.DialTimeout)
	assert.Equal(t, 300*time.Millisecond, opts.ReadTimeout)
	assert.Equal(t, 300*time.Millisecond, opts.WriteTimeout)
	assert.Equal(t, 2, opts.MaxRetries)
}
