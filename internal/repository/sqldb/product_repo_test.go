package sqldb

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/DRSN-tech/micrositio-backend/internal/domain"
	"github.com/DRSN-tech/micrositio-backend/internal/repository/sqldb/converter"
	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductRepo(t *testing.T) *ProductRepo {
	return NewProductRepo(newTestDB(t), converter.NewProductConverter())
}

func TestProductRepo_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	repo := newProductRepo(t)

	first, err := repo.Create(ctx, domain.NewProduct("Mug", nil, 1500, nil, nil))
	require.NoError(t, err)

	second, err := repo.Create(ctx, domain.NewProduct("Taza", strPtr("Cerámica"), 900, strPtr("https://img"), nil))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	got, err := repo.GetByID(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, &domain.Product{ID: first, Name: "Mug", Price: 1500}, got)

	got, err = repo.GetByID(ctx, second)
	require.NoError(t, err)
	require.NotNil(t, got.Description)
	assert.Equal(t, "Cerámica", *got.Description)
	require.NotNil(t, got.ImageURL)
	assert.Equal(t, "https://img", *got.ImageURL)
	assert.Nil(t, got.VideoURL)
}

func TestProductRepo_List(t *testing.T) {
	ctx := context.Background()
	repo := newProductRepo(t)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, products)
	assert.Empty(t, products)

	for _, name := range []string{"A", "B", "C"} {
		_, err := repo.Create(ctx, domain.NewProduct(name, nil, 100, nil, nil))
		require.NoError(t, err)
	}

	products, err = repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 3)
	assert.Equal(t, "A", products[0].Name)
	assert.Equal(t, "C", products[2].Name)
}

func TestProductRepo_Update(t *testing.T) {
	ctx := context.Background()
	repo := newProductRepo(t)

	id, err := repo.Create(ctx, domain.NewProduct("Mug", strPtr("Blanca"), 1500, strPtr("https://img"), strPtr("https://video")))
	require.NoError(t, err)

	t.Run("only price changes", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, id, domain.ProductPatch{Price: domain.Some[int64](500)}))

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(500), got.Price)
		assert.Equal(t, "Mug", got.Name)
		assert.Equal(t, "Blanca", *got.Description)
		assert.Equal(t, "https://img", *got.ImageURL)
		assert.Equal(t, "https://video", *got.VideoURL)
	})

	t.Run("null clears optional column", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, id, domain.ProductPatch{Description: domain.Some[*string](nil)}))

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Nil(t, got.Description)
		assert.Equal(t, int64(500), got.Price)
	})

	t.Run("empty patch leaves row untouched", func(t *testing.T) {
		before, err := repo.GetByID(ctx, id)
		require.NoError(t, err)

		require.NoError(t, repo.Update(ctx, id, domain.ProductPatch{}))

		after, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("missing product", func(t *testing.T) {
		err := repo.Update(ctx, id+100, domain.ProductPatch{Name: domain.Some("X")})
		assert.ErrorIs(t, err, e.ErrProductNotFound)
	})

	t.Run("empty patch skips query", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		require.NoError(t, NewProductRepo(db, converter.NewProductConverter()).
			Update(ctx, id+100, domain.ProductPatch{}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestProductRepo_Delete(t *testing.T) {
	ctx := context.Background()
	repo := newProductRepo(t)

	id, err := repo.Create(ctx, domain.NewProduct("Mug", nil, 1500, nil, nil))
	require.NoError(t, err)

	require.NoError(t, repo.DeleteByID(ctx, id))

	_, err = repo.GetByID(ctx, id)
	assert.ErrorIs(t, err, e.ErrProductNotFound)

	assert.ErrorIs(t, repo.DeleteByID(ctx, id), e.ErrProductNotFound)

	exists, err := repo.Exists(ctx, id)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestProductRepo_DeleteAll(t *testing.T) {
	ctx := context.Background()
	repo := newProductRepo(t)

	for i := 0; i < 3; i++ {
		_, err := repo.Create(ctx, domain.NewProduct("Mug", nil, 1500, nil, nil))
		require.NoError(t, err)
	}

	n, err := repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	products, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, products)

	n, err = repo.DeleteAll(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestProductRepo_StorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewProductRepo(db, converter.NewProductConverter())
	dbErr := errors.New("disk I/O error")

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO productos")).
		WithArgs("Mug", nil, int64(1500), nil, nil).
		WillReturnError(dbErr)

	_, err = repo.Create(context.Background(), domain.NewProduct("Mug", nil, 1500, nil, nil))
	require.ErrorIs(t, err, dbErr)
	assert.Contains(t, err.Error(), "ProductRepo.Create")

	mock.ExpectExec(regexp.QuoteMeta("UPDATE productos SET precio = ?, video_url = ? WHERE id = ?;")).
		WithArgs(int64(500), nil, int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), 7, domain.ProductPatch{
		Price:    domain.Some[int64](500),
		VideoURL: domain.Some[*string](nil),
	})
	assert.ErrorIs(t, err, e.ErrProductNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}
