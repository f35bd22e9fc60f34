package usecase

import (
	"context"

	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
)

type SchemaUseCase struct {
	schemaRepo SchemaRepository
	logger     logger.Logger
}

func NewSchemaUC(schemaRepo SchemaRepository, logger logger.Logger) *SchemaUseCase {
	return &SchemaUseCase{
		schemaRepo: schemaRepo,
		logger:     logger,
	}
}

// Initialize идемпотентно создаёт таблицы. Существующие данные не затрагиваются.
func (s *SchemaUseCase) Initialize(ctx context.Context) error {
	const op = "SchemaUseCase.Initialize"

	if err := s.schemaRepo.InitializeSchema(ctx, s.logger); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}
