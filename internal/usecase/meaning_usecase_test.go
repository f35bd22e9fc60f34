package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMeaningUseCase_Describe(t *testing.T) {
	ctx := context.Background()

	t.Run("without cache", func(t *testing.T) {
		infra := new(meaningInfraMock)
		infra.On("Describe", ctx, "Lucía").Return("Significa luz.", nil).Once()

		uc := NewMeaningUC(infra, nil, NewValidator(), logger.NewNop())
		res, err := uc.Describe(ctx, NewNameMeaningReq("  Lucía "))
		require.NoError(t, err)
		assert.Equal(t, "Lucía", res.Name)
		assert.Equal(t, "Significa luz.", res.Meaning)
		assert.False(t, res.Cached)
	})

	t.Run("cache hit skips upstream", func(t *testing.T) {
		infra := new(meaningInfraMock)
		cache := new(meaningCacheMock)
		cache.On("GetMeaning", ctx, "Lucía").Return("Significa luz.", true, nil).Once()

		uc := NewMeaningUC(infra, cache, NewValidator(), logger.NewNop())
		res, err := uc.Describe(ctx, NewNameMeaningReq("Lucía"))
		require.NoError(t, err)
		assert.True(t, res.Cached)
		infra.AssertNotCalled(t, "Describe", mock.Anything, mock.Anything)
	})

	t.Run("cache failures do not fail request", func(t *testing.T) {
		infra := new(meaningInfraMock)
		infra.On("Describe", ctx, "Lucía").Return("Significa luz.", nil).Once()
		cache := new(meaningCacheMock)
		cache.On("GetMeaning", ctx, "Lucía").Return("", false, errors.New("connection refused")).Once()
		cache.On("SetMeaning", ctx, "Lucía", "Significa luz.").Return(errors.New("connection refused")).Once()

		uc := NewMeaningUC(infra, cache, NewValidator(), logger.NewNop())
		res, err := uc.Describe(ctx, NewNameMeaningReq("Lucía"))
		require.NoError(t, err)
		assert.Equal(t, "Significa luz.", res.Meaning)
		cache.AssertExpectations(t)
	})

	t.Run("empty name", func(t *testing.T) {
		infra := new(meaningInfraMock)

		uc := NewMeaningUC(infra, nil, NewValidator(), logger.NewNop())
		_, err := uc.Describe(ctx, NewNameMeaningReq("   "))
		assert.ErrorIs(t, err, e.ErrValidation)
		infra.AssertNotCalled(t, "Describe", mock.Anything, mock.Anything)
	})

	t.Run("upstream error", func(t *testing.T) {
		infra := new(meaningInfraMock)
		infra.On("Describe", ctx, "Lucía").Return("", e.ErrMissingAPIKey).Once()

		uc := NewMeaningUC(infra, nil, NewValidator(), logger.NewNop())
		_, err := uc.Describe(ctx, NewNameMeaningReq("Lucía"))
		assert.ErrorIs(t, err, e.ErrMissingAPIKey)
	})
}

func TestSchemaUseCase_Initialize(t *testing.T) {
	ctx := context.Background()
	log := logger.NewNop()

	repo := new(schemaRepoMock)
	repo.On("InitializeSchema", ctx, log).Return(nil).Once()

	require.NoError(t, NewSchemaUC(repo, log).Initialize(ctx))
	repo.AssertExpectations(t)
}
