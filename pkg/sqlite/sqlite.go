package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/DRSN-tech/micrositio-backend/internal/cfg"
	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
)

const driverName = "sqlite3"

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Database инкапсулирует подключение к файлу SQLite и создание схемы.
type Database struct {
	DB  *sql.DB
	Dsn string
	cfg *cfg.DBCfg
}

func NewDatabase(db *sql.DB, cfg *cfg.DBCfg, dsn string) *Database {
	return &Database{DB: db, cfg: cfg, Dsn: dsn}
}

// BuildDSN собирает DSN для go-sqlite3. Файл создаётся при первом подключении.
func BuildDSN(cfg *cfg.DBCfg) string {
	params := url.Values{}
	params.Set("_busy_timeout", fmt.Sprintf("%d", cfg.BusyTimeout.Milliseconds()))
	params.Set("_journal_mode", "WAL")
	params.Set("_foreign_keys", "on")

	return fmt.Sprintf("file:%s?%s", cfg.Path, params.Encode())
}

// Connect открывает (создавая при отсутствии) файл базы данных.
func Connect(cfg *cfg.DBCfg) (*Database, error) {
	const op = "Database.Connect"

	dsn := BuildDSN(cfg)

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxOpenConns)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, e.Wrap(op, err)
	}

	return NewDatabase(db, cfg, dsn), nil
}

func (db *Database) Ping(ctx context.Context) error {
	const op = "Database.Ping"
	ctx, cancel := context.WithTimeout(ctx, time.Second*5)
	defer cancel()

	if err := db.DB.PingContext(ctx); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// Close закрывает пул соединений к базе данных.
func (db *Database) Close() error {
	if db.DB == nil {
		return nil
	}
	return db.DB.Close()
}

// InitializeSchema идемпотентно создаёт таблицы productos и contactos.
// Скрипты схемы встроены в бинарник и используют CREATE ... IF NOT EXISTS,
// поэтому повторный вызов ничего не меняет.
func (db *Database) InitializeSchema(ctx context.Context, logger logger.Logger) error {
	const (
		op         = "Database.InitializeSchema"
		sourceName = "iofs"
	)

	// migrate закрывает переданное ему соединение, поэтому открываем отдельное
	sqlDb, err := sql.Open(driverName, db.Dsn)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer sqlDb.Close()

	driver, err := migratesqlite.WithInstance(sqlDb, &migratesqlite.Config{})
	if err != nil {
		return e.Wrap(op, err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return e.Wrap(op, err)
	}

	m, err := migrate.NewWithInstance(sourceName, src, driverName, driver)
	if err != nil {
		return e.Wrap(op, err)
	}

	// Скрипты идемпотентны, поэтому «грязную» версию после сбоя можно сбросить
	if _, dirty, err := m.Version(); err == nil && dirty {
		logger.Warnf("schema version is dirty, resetting before re-applying")
		if err := m.Force(database.NilVersion); err != nil {
			return e.Wrap(op, err)
		}
	}

	err = up(ctx, m)
	if errors.Is(err, migrate.ErrNoChange) {
		missing, mErr := db.missingTables(ctx)
		if mErr != nil {
			return e.Wrap(op, mErr)
		}
		if len(missing) == 0 {
			logger.Debugf("schema is up to date")
			return nil
		}

		// версия записана, но таблиц нет: файл правили в обход сервиса
		logger.Warnf("tables %v are missing, re-applying schema", missing)
		if err := m.Force(database.NilVersion); err != nil {
			return e.Wrap(op, err)
		}
		err = up(ctx, m)
	}
	if err != nil {
		return e.Wrap(op, err)
	}

	logger.Infof("schema initialized")
	return nil
}

// up применяет скрипты схемы с учётом отмены контекста.
func up(ctx context.Context, m *migrate.Migrate) error {
	done := make(chan error, 1)
	go func() {
		done <- m.Up()
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		m.GracefulStop <- true
		if err := <-done; err != nil {
			return err
		}
		return ctx.Err()
	}
}

// missingTables возвращает таблицы схемы, которых нет в файле.
func (db *Database) missingTables(ctx context.Context) ([]string, error) {
	var missing []string
	for _, table := range []string{"productos", "contactos"} {
		var name string
		err := db.DB.QueryRowContext(ctx,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		if errors.Is(err, sql.ErrNoRows) {
			missing = append(missing, table)
			continue
		}
		if err != nil {
			return nil, err
		}
	}

	return missing, nil
}
