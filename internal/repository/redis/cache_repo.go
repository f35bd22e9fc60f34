package redis

import (
	"context"
	"errors"
	"strings"

	"github.com/DRSN-tech/micrositio-backend/internal/cfg"
	"github.com/DRSN-tech/micrositio-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/micrositio-backend/pkg/clients"
	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

const meaningKeyPrefix = "meaning:"

// CacheRepo кэширует значения имён, полученные от LLM.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.MeaningConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.MeaningConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetMeaning возвращает закэшированное значение. При промахе ok == false и err == nil.
func (r *CacheRepo) GetMeaning(ctx context.Context, name string) (string, bool, error) {
	key := meaningKey(name)

	data, err := r.client.Client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, e.Wrap(whereami.WhereAmI(), err)
	}

	model, err := r.conv.Unmarshal(data)
	if err != nil || model.Meaning == "" {
		r.logger.Warnf("Broken cache entry %s, dropping it: %v", key, err)
		if err := r.client.Client.Del(ctx, key).Err(); err != nil {
			r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return "", false, nil // cache miss
	}

	return model.Meaning, true, nil
}

// SetMeaning кэширует значение имени на MeaningTTL.
func (r *CacheRepo) SetMeaning(ctx context.Context, name, meaning string) error {
	data, err := r.conv.Marshal(r.conv.ToRedisModel(name, meaning))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, meaningKey(name), data, r.cfg.MeaningTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// meaningKey нормализует имя, чтобы «Lucía» и « lucía » попадали в один ключ.
func meaningKey(name string) string {
	return meaningKeyPrefix + strings.ToLower(strings.TrimSpace(name))
}
