package converter

import (
	"encoding/json"
	"time"
)

// MeaningConverter сериализует значения имён для кэша.
type MeaningConverter interface {
	ToRedisModel(name, meaning string) *MeaningRedisModel
	Marshal(model *MeaningRedisModel) ([]byte, error)
	Unmarshal(data []byte) (*MeaningRedisModel, error)
}

type MeaningConverterImpl struct {
	now func() time.Time
}

func NewMeaningConverter() *MeaningConverterImpl {
	return &MeaningConverterImpl{now: time.Now}
}

func (c *MeaningConverterImpl) ToRedisModel(name, meaning string) *MeaningRedisModel {
	return &MeaningRedisModel{
		Name:     name,
		Meaning:  meaning,
		CachedAt: c.now().UTC(),
	}
}

func (c *MeaningConverterImpl) Marshal(model *MeaningRedisModel) ([]byte, error) {
	return json.Marshal(model)
}

func (c *MeaningConverterImpl) Unmarshal(data []byte) (*MeaningRedisModel, error) {
	var model MeaningRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}
	return &model, nil
}
