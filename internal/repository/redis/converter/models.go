package converter

import "time"

// MeaningRedisModel хранит значение имени в Redis.
type MeaningRedisModel struct {
	Name     string    `json:"name"`
	Meaning  string    `json:"meaning"`
	CachedAt time.Time `json:"cached_at"`
}
