package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/DRSN-tech/micrositio-backend/docs"
	config "github.com/DRSN-tech/micrositio-backend/internal/cfg"
	v1Http "github.com/DRSN-tech/micrositio-backend/internal/delivery/v1/http"
	"github.com/DRSN-tech/micrositio-backend/internal/infrastructure/openrouter"
	"github.com/DRSN-tech/micrositio-backend/internal/repository/redis"
	redisConv "github.com/DRSN-tech/micrositio-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/micrositio-backend/internal/repository/sqldb"
	sqldbConv "github.com/DRSN-tech/micrositio-backend/internal/repository/sqldb/converter"
	"github.com/DRSN-tech/micrositio-backend/internal/usecase"
	"github.com/DRSN-tech/micrositio-backend/pkg/closer"
	"github.com/DRSN-tech/micrositio-backend/pkg/clients"
	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/DRSN-tech/micrositio-backend/pkg/sqlite"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const shutdownTimeout = 10 * time.Second

// App связывает зависимости и управляет жизненным циклом сервиса.
type App struct {
	cfg     *config.Config
	logger  logger.Logger
	httpSrv *v1Http.Server
	closer  *closer.Closer
}

// NewApp собирает сервис. Таблицы не создаются: для этого есть POST /create-db/.
func NewApp(cfg *config.Config, log logger.Logger) (*App, error) {
	cl := closer.NewCloser(2 * time.Second)

	db, err := sqlite.Connect(cfg.Db)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.AddCloser("sqlite", db.Close)
	log.Infof("sqlite database opened: %s", cfg.Db.Path)

	var cacheRepo usecase.MeaningCacheRepository
	if cfg.Redis.Enabled() {
		// кэш необязателен: без Redis сервис работает, просто каждый раз спрашивает LLM
		if repo, err := initMeaningCache(cfg, log, cl); err != nil {
			log.Warnf("meaning cache disabled: %v", err)
		} else {
			cacheRepo = repo
		}
	} else {
		log.Infof("REDIS_ADDR is not set, meaning cache disabled")
	}

	validate := usecase.NewValidator()

	productRepo := sqldb.NewProductRepo(db.DB, sqldbConv.NewProductConverter())
	contactRepo := sqldb.NewContactRepo(db.DB, sqldbConv.NewContactConverter())
	llm := openrouter.NewClient(cfg.Llm, log)

	docs.SwaggerInfo.Host = cfg.Swagger.Host

	r := chi.NewRouter()
	router := v1Http.NewRouter(r, log, cfg.Swagger.Host)
	router.Init(v1Http.UseCases{
		Product: usecase.NewProductUC(productRepo, validate, log),
		Contact: usecase.NewContactUC(contactRepo, validate, log),
		Meaning: usecase.NewMeaningUC(llm, cacheRepo, validate, log),
		Schema:  usecase.NewSchemaUC(db, log),
		DB:      db,
	})

	return &App{
		cfg:     cfg,
		logger:  log,
		httpSrv: v1Http.NewServer(r, cfg.Http),
		closer:  cl,
	}, nil
}

// Run запускает HTTP-сервер и блокируется до сигнала остановки или фатальной ошибки.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Infof("HTTP server started on %s", a.httpSrv.Addr())
		if err := a.httpSrv.Run(); err != nil {
			errCh <- err
		}
	}()

	// === Ожидание сигнала или ошибки ===
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	var appErr error
	select {
	case appErr = <-errCh:
		a.logger.Errorf(appErr, "HTTP server fatal error")
	case <-shutdown:
		a.logger.Infof("Received shutdown signal, stopping gracefully...")
	}

	// === Graceful shutdown ===
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.httpSrv.Stop(ctx); err != nil {
		a.logger.Errorf(err, "HTTP server shutdown error")
	} else {
		a.logger.Infof("HTTP server stopped")
	}

	if err := a.closer.Close(ctx); err != nil {
		a.logger.Errorf(err, "failed to release resources")
	}

	a.logger.Infof("Application shutdown complete")
	return appErr
}

func initMeaningCache(cfg *config.Config, log logger.Logger, cl *closer.Closer) (*redis.CacheRepo, error) {
	redisClient := clients.NewRedisClient(cfg.Redis)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx); err != nil {
		_ = redisClient.Close()
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	cl.AddCloser("redis", redisClient.Close)
	log.Infof("meaning cache enabled: %s, ttl %v", cfg.Redis.Addr, cfg.Redis.MeaningTTL)

	return redis.NewCacheRepo(redisClient, redisConv.NewMeaningConverter(), cfg.Redis, log), nil
}
