package cfg

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/jimlawless/whereami"
)

type Config struct {
	Http    *HTTPConfig
	Db      *DBCfg
	Llm     *LLMCfg
	Redis   *RedisCfg
	Swagger *SwaggerCfg
}

type HTTPConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DBCfg struct {
	Path         string        // путь к файлу SQLite
	BusyTimeout  time.Duration // сколько писатель ждёт снятия блокировки
	MaxOpenConns int
}

type LLMCfg struct {
	ApiKey  string // OPENROUTER_API_KEY; пустой ключ ломает только эндпоинт значения имени
	BaseURL string
	Model   string
	Timeout time.Duration
}

type RedisCfg struct {
	Addr        string // пустой адрес отключает кэш значений имён
	Password    string
	DB          int
	MeaningTTL  time.Duration
	DialTimeout time.Duration
	Timeout     time.Duration // на чтение и запись
	MaxRetries  int
}

type SwaggerCfg struct {
	Host string
}

// Enabled сообщает, настроен ли Redis.
func (r *RedisCfg) Enabled() bool {
	return r != nil && r.Addr != ""
}

// Load безопасно загружает конфигурацию и возвращает ошибку в случае неудачи.
func Load(log logger.Logger) (*Config, error) {
	http, err := loadHTTPConfig(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	db, err := loadDBCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	llm, err := loadLLMCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	redis, err := loadRedisCfg(log)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Config{
		Http:    http,
		Db:      db,
		Llm:     llm,
		Redis:   redis,
		Swagger: &SwaggerCfg{Host: getEnvOrDefault("SWAGGER_HOST", "localhost:"+http.Port)},
	}, nil
}

func loadHTTPConfig(log logger.Logger) (*HTTPConfig, error) {
	const (
		defaultPort         = "8000"
		defaultReadTimeout  = 5 * time.Second
		defaultWriteTimeout = 60 * time.Second
		defaultIdleTimeout  = 60 * time.Second
	)

	readTimeout, err := parseDurationEnv("HTTP_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_READ_TIMEOUT")
		return nil, err
	}

	// запись ответа включает ожидание LLM, поэтому таймаут больше обычного
	writeTimeout, err := parseDurationEnv("HTTP_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		log.Errorf(err, "invalid HTTP_WRITE_TIMEOUT")
		return nil, err
	}

	idleTimeout, err := parseDurationEnv("KEEP_ALIVE", defaultIdleTimeout)
	if err != nil {
		log.Errorf(err, "invalid KEEP_ALIVE")
		return nil, err
	}

	return &HTTPConfig{
		Port:         getEnvOrDefault("HTTP_PORT", defaultPort),
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}, nil
}

func loadDBCfg(log logger.Logger) (*DBCfg, error) {
	const (
		defaultPath         = "miwebsite.db"
		defaultBusyTimeout  = 5 * time.Second
		defaultMaxOpenConns = 10
	)

	busyTimeout, err := parseDurationEnv("DB_BUSY_TIMEOUT", defaultBusyTimeout)
	if err != nil {
		log.Errorf(err, "invalid DB_BUSY_TIMEOUT")
		return nil, err
	}

	maxOpenConns, err := parseIntEnv("DB_MAX_OPEN_CONNS", defaultMaxOpenConns)
	if err != nil {
		log.Errorf(err, "invalid DB_MAX_OPEN_CONNS")
		return nil, e.Wrap("DB_MAX_OPEN_CONNS", err)
	}

	return &DBCfg{
		Path:         getEnvOrDefault("DB_PATH", defaultPath),
		BusyTimeout:  busyTimeout,
		MaxOpenConns: maxOpenConns,
	}, nil
}

func loadLLMCfg(log logger.Logger) (*LLMCfg, error) {
	const (
		defaultBaseURL = "https://openrouter.ai/api/v1"
		defaultModel   = "gpt-oss-20b:free"
		defaultTimeout = 30 * time.Second
	)

	timeout, err := parseDurationEnv("LLM_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid LLM_TIMEOUT")
		return nil, err
	}

	apiKey := getEnv("OPENROUTER_API_KEY")
	if apiKey == "" {
		// Сервер стартует и без ключа, падает только эндпоинт /significado-nombre
		log.Warnf("OPENROUTER_API_KEY is not set, name meaning endpoint will fail")
	}

	return &LLMCfg{
		ApiKey:  apiKey,
		BaseURL: getEnvOrDefault("OPENROUTER_BASE_URL", defaultBaseURL),
		Model:   getEnvOrDefault("LLM_MODEL", defaultModel),
		Timeout: timeout,
	}, nil
}

func loadRedisCfg(log logger.Logger) (*RedisCfg, error) {
	const (
		defaultDB          = 0
		defaultMeaningTTL  = 24 * time.Hour
		defaultDialTimeout = 2 * time.Second
		defaultTimeout     = 500 * time.Millisecond
		defaultMaxRetries  = 1
	)

	db, err := parseIntEnv("REDIS_DB_ID", defaultDB)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DB_ID")
		return nil, e.Wrap("REDIS_DB_ID", err)
	}

	ttl, err := parseDurationEnv("MEANING_TTL", defaultMeaningTTL)
	if err != nil {
		log.Errorf(err, "invalid MEANING_TTL")
		return nil, err
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("MEANING_TTL must be positive, got %s", ttl)
	}

	dialTimeout, err := parseDurationEnv("REDIS_DIAL_TIMEOUT", defaultDialTimeout)
	if err != nil {
		log.Errorf(err, "invalid REDIS_DIAL_TIMEOUT")
		return nil, err
	}

	timeout, err := parseDurationEnv("REDIS_TIMEOUT", defaultTimeout)
	if err != nil {
		log.Errorf(err, "invalid REDIS_TIMEOUT")
		return nil, err
	}

	maxRetries, err := parseIntEnv("REDIS_MAX_RETRIES", defaultMaxRetries)
	if err != nil {
		log.Errorf(err, "invalid REDIS_MAX_RETRIES")
		return nil, e.Wrap("REDIS_MAX_RETRIES", err)
	}

	return &RedisCfg{
		Addr:        getEnv("REDIS_ADDR"),
		Password:    getEnv("REDIS_PASSWORD"),
		DB:          db,
		MeaningTTL:  ttl,
		DialTimeout: dialTimeout,
		Timeout:     timeout,
		MaxRetries:  maxRetries,
	}, nil
}

// getEnv возвращает значение переменной окружения.
// Возвращает пустую строку, если переменная не задана.
func getEnv(key string) string {
	return os.Getenv(key)
}

// getEnvOrDefault возвращает значение переменной окружения или значение по умолчанию.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// parseDurationEnv считывает длительность или возвращает значение по умолчанию.
func parseDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	if v := os.Getenv(key); v != "" {
		return time.ParseDuration(v)
	}

	return defaultValue, nil
}

func parseIntEnv(key string, defaultValue int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(v)
	if err != nil {
		return defaultValue, e.ErrIncorrectEnvVariable
	}

	return intValue, nil
}
