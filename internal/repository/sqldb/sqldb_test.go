package sqldb

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/DRSN-tech/micrositio-backend/internal/cfg"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/DRSN-tech/micrositio-backend/pkg/sqlite"
	"github.com/stretchr/testify/require"
)

// newTestDB поднимает файл SQLite со схемой во временной директории теста.
func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sqlite.Connect(&cfg.DBCfg{
		Path:         filepath.Join(t.TempDir(), "repo.db"),
		BusyTimeout:  5 * time.Second,
		MaxOpenConns: 4,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.InitializeSchema(context.Background(), logger.NewNop()))

	return db.DB
}

func strPtr(s string) *string {
	return &s
}
