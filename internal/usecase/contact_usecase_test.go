package usecase

import (
	"context"
	"testing"

	"github.com/DRSN-tech/micrositio-backend/internal/domain"
	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactUseCase_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("saved", func(t *testing.T) {
		repo := new(contactRepoMock)
		repo.On("Create", ctx, domain.NewContact("Ana", "ana@x.com", "Hola")).Return(int64(1), nil).Once()

		uc := NewContactUC(repo, NewValidator(), logger.NewNop())
		require.NoError(t, uc.Submit(ctx, NewSubmitContactReq("Ana", "ana@x.com", "Hola")))
		repo.AssertExpectations(t)
	})

	t.Run("empty message is rejected", func(t *testing.T) {
		repo := new(contactRepoMock)

		uc := NewContactUC(repo, NewValidator(), logger.NewNop())
		err := uc.Submit(ctx, NewSubmitContactReq("Ana", "ana@x.com", ""))
		require.ErrorIs(t, err, e.ErrValidation)
		assert.Contains(t, err.Error(), "mensaje")
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestContactUseCase_List(t *testing.T) {
	ctx := context.Background()
	repo := new(contactRepoMock)
	repo.On("List", ctx).Return([]domain.Contact{{ID: 2}, {ID: 1}}, nil).Once()

	contacts, err := NewContactUC(repo, NewValidator(), logger.NewNop()).List(ctx)
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}
