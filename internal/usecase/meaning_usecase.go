package usecase

import (
	"context"
	"strings"

	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/go-playground/validator/v10"
)

// MeaningUseCase отвечает на вопрос о значении имени через внешний LLM.
type MeaningUseCase struct {
	meaningInfra MeaningInfra
	cacheRepo    MeaningCacheRepository // nil, если Redis не настроен
	validate     *validator.Validate
	logger       logger.Logger
}

func NewMeaningUC(
	meaningInfra MeaningInfra,
	cacheRepo MeaningCacheRepository,
	validate *validator.Validate,
	logger logger.Logger,
) *MeaningUseCase {
	return &MeaningUseCase{
		meaningInfra: meaningInfra,
		cacheRepo:    cacheRepo,
		validate:     validate,
		logger:       logger,
	}
}

// Describe возвращает значение имени. Ошибки кэша только логируются.
func (m *MeaningUseCase) Describe(ctx context.Context, req *NameMeaningReq) (*NameMeaningRes, error) {
	const op = "MeaningUseCase.Describe"

	req.Name = strings.TrimSpace(req.Name)
	if err := validateStruct(m.validate, req); err != nil {
		return nil, e.Wrap(op, err)
	}

	if m.cacheRepo != nil {
		meaning, ok, err := m.cacheRepo.GetMeaning(ctx, req.Name)
		switch {
		case err != nil:
			m.logger.Warnf("Failed to get meaning from cache: %v", e.Wrap(op, err))
		case ok:
			return NewNameMeaningRes(req.Name, meaning, true), nil
		}
	}

	meaning, err := m.meaningInfra.Describe(ctx, req.Name)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if m.cacheRepo != nil {
		if err := m.cacheRepo.SetMeaning(ctx, req.Name, meaning); err != nil {
			m.logger.Warnf("Failed to cache meaning: %v", e.Wrap(op, err))
		}
	}

	return NewNameMeaningRes(req.Name, meaning, false), nil
}
