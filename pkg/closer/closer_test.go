package closer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloser_LIFO(t *testing.T) {
	c := NewCloser(0)

	var order []string
	for _, name := range []string{"db", "redis", "http"} {
		c.AddCloser(name, func() error {
			order = append(order, name)
			return nil
		})
	}

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"http", "redis", "db"}, order)
}

func TestCloser_CollectsErrors(t *testing.T) {
	c := NewCloser(0)
	dbErr := errors.New("database is locked")

	c.AddCloser("db", func() error { return dbErr })
	c.AddCloser("redis", func() error { return nil })

	err := c.Close(context.Background())
	require.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "db: database is locked")

	assert.Equal(t, err, c.Close(context.Background()))
}

func TestCloser_ForcedAfterCancel(t *testing.T) {
	c := NewCloser(time.Second)

	var (
		mu     sync.Mutex
		forced bool
	)
	c.AddCloser("db", func() error {
		mu.Lock()
		forced = true
		mu.Unlock()
		return nil
	})
	c.Add("slow", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	mu.Lock()
	defer mu.Unlock()
	assert.True(t, forced)
}
