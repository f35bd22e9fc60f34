package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/micrositio-backend/internal/domain"
	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductUC(repo *productRepoMock) *ProductUseCase {
	return NewProductUC(repo, NewValidator(), logger.NewNop())
}

func TestProductUseCase_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id", func(t *testing.T) {
		repo := new(productRepoMock)
		repo.On("Create", ctx, mock.MatchedBy(func(p *domain.Product) bool {
			return p.Name == "Mug" && p.Price == 1500
		})).Return(int64(1), nil).Once()

		res, err := newProductUC(repo).Create(ctx, NewCreateProductReq("Mug", nil, 1500, nil, nil))
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.ID)
		assert.Equal(t, int64(1), res.Product.ID)
		assert.Equal(t, "Mug", res.Product.Name)
		repo.AssertExpectations(t)
	})

	t.Run("empty name never reaches storage", func(t *testing.T) {
		repo := new(productRepoMock)

		_, err := newProductUC(repo).Create(ctx, NewCreateProductReq("", nil, 1500, nil, nil))
		require.ErrorIs(t, err, e.ErrValidation)
		assert.Contains(t, err.Error(), "nombre")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("storage error", func(t *testing.T) {
		repo := new(productRepoMock)
		dbErr := errors.New("disk full")
		repo.On("Create", ctx, mock.Anything).Return(int64(0), dbErr).Once()

		_, err := newProductUC(repo).Create(ctx, NewCreateProductReq("Mug", nil, 1500, nil, nil))
		assert.ErrorIs(t, err, dbErr)
	})
}

func TestProductUseCase_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("empty patch on existing product", func(t *testing.T) {
		repo := new(productRepoMock)
		repo.On("Exists", ctx, int64(1)).Return(true, nil).Once()

		res, err := newProductUC(repo).Update(ctx, 1, domain.ProductPatch{})
		require.NoError(t, err)
		assert.True(t, res.NoChanges)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty patch on missing product", func(t *testing.T) {
		repo := new(productRepoMock)
		repo.On("Exists", ctx, int64(9)).Return(false, nil).Once()

		_, err := newProductUC(repo).Update(ctx, 9, domain.ProductPatch{})
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})

	t.Run("price only", func(t *testing.T) {
		repo := new(productRepoMock)
		patch := domain.ProductPatch{Price: domain.Some[int64](500)}
		repo.On("Update", ctx, int64(1), patch).Return(nil).Once()

		res, err := newProductUC(repo).Update(ctx, 1, patch)
		require.NoError(t, err)
		assert.False(t, res.NoChanges)
		repo.AssertExpectations(t)
	})

	t.Run("empty name", func(t *testing.T) {
		repo := new(productRepoMock)

		_, err := newProductUC(repo).Update(ctx, 1, domain.ProductPatch{Name: domain.Some("")})
		assert.ErrorIs(t, err, e.ErrValidation)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing product", func(t *testing.T) {
		repo := new(productRepoMock)
		patch := domain.ProductPatch{Name: domain.Some("Taza")}
		repo.On("Update", ctx, int64(9), patch).Return(e.Wrap("ProductRepo.Update", e.ErrProductNotFound)).Once()

		_, err := newProductUC(repo).Update(ctx, 9, patch)
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})
}

func TestProductUseCase_Delete(t *testing.T) {
	ctx := context.Background()

	repo := new(productRepoMock)
	repo.On("DeleteByID", ctx, int64(1)).Return(nil).Once()
	repo.On("DeleteByID", ctx, int64(2)).Return(e.ErrProductNotFound).Once()
	repo.On("DeleteAll", ctx).Return(int64(0), nil).Once()

	uc := newProductUC(repo)
	assert.NoError(t, uc.Delete(ctx, 1))
	assert.ErrorIs(t, uc.Delete(ctx, 2), e.ErrProductNotFound)
	assert.NoError(t, uc.DeleteAll(ctx))
	repo.AssertExpectations(t)
}
