package usecase

import (
	"context"

	"github.com/DRSN-tech/micrositio-backend/internal/domain"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/stretchr/testify/mock"
)

type productRepoMock struct {
	mock.Mock
}

func (m *productRepoMock) Create(ctx context.Context, product *domain.Product) (int64, error) {
	args := m.Called(ctx, product)
	return args.Get(0).(int64), args.Error(1)
}

func (m *productRepoMock) List(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	products, _ := args.Get(0).([]domain.Product)
	return products, args.Error(1)
}

func (m *productRepoMock) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	args := m.Called(ctx, id)
	product, _ := args.Get(0).(*domain.Product)
	return product, args.Error(1)
}

func (m *productRepoMock) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *productRepoMock) Update(ctx context.Context, id int64, patch domain.ProductPatch) error {
	return m.Called(ctx, id, patch).Error(0)
}

func (m *productRepoMock) DeleteByID(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *productRepoMock) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type contactRepoMock struct {
	mock.Mock
}

func (m *contactRepoMock) Create(ctx context.Context, contact *domain.Contact) (int64, error) {
	args := m.Called(ctx, contact)
	return args.Get(0).(int64), args.Error(1)
}

func (m *contactRepoMock) List(ctx context.Context) ([]domain.Contact, error) {
	args := m.Called(ctx)
	contacts, _ := args.Get(0).([]domain.Contact)
	return contacts, args.Error(1)
}

type meaningInfraMock struct {
	mock.Mock
}

func (m *meaningInfraMock) Describe(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

type meaningCacheMock struct {
	mock.Mock
}

func (m *meaningCacheMock) GetMeaning(ctx context.Context, name string) (string, bool, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *meaningCacheMock) SetMeaning(ctx context.Context, name, meaning string) error {
	return m.Called(ctx, name, meaning).Error(0)
}

type schemaRepoMock struct {
	mock.Mock
}

func (m *schemaRepoMock) InitializeSchema(ctx context.Context, logger logger.Logger) error {
	return m.Called(ctx, logger).Error(0)
}
