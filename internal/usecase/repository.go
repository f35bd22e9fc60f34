package usecase

import (
	"context"

	"github.com/DRSN-tech/micrositio-backend/internal/domain"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (int64, error)
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Exists(ctx context.Context, id int64) (bool, error)
	Update(ctx context.Context, id int64, patch domain.ProductPatch) error
	DeleteByID(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) (int64, error)
	List(ctx context.Context) ([]domain.Contact, error)
}

// MeaningCacheRepository кэширует значения имён. Может отсутствовать.
type MeaningCacheRepository interface {
	GetMeaning(ctx context.Context, name string) (string, bool, error)
	SetMeaning(ctx context.Context, name, meaning string) error
}

type SchemaRepository interface {
	InitializeSchema(ctx context.Context, logger logger.Logger) error
}
