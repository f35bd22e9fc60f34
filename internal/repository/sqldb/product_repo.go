package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/DRSN-tech/micrositio-backend/internal/domain"
	"github.com/DRSN-tech/micrositio-backend/internal/repository/sqldb/converter"
	"github.com/DRSN-tech/micrositio-backend/pkg/e"
)

// ProductRepo реализует репозиторий продуктов поверх SQLite.
type ProductRepo struct {
	db   *sql.DB
	conv converter.ProductConverter
}

func NewProductRepo(db *sql.DB, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{db: db, conv: conv}
}

// Create добавляет продукт и возвращает выданный хранилищем id.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (int64, error) {
	const op = "ProductRepo.Create"

	model := p.conv.ToModel(product)
	query := `
		INSERT INTO productos (nombre, description, precio, image_url, video_url)
		VALUES (?, ?, ?, ?, ?);
	`

	res, err := p.db.ExecContext(ctx, query,
		model.Name,
		model.Description,
		model.Price,
		model.ImageURL,
		model.VideoURL,
	)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	return id, nil
}

// List возвращает все продукты в порядке добавления.
func (p *ProductRepo) List(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductRepo.List"

	query := `
		SELECT id, nombre, description, precio, image_url, video_url
		FROM productos
		ORDER BY id;
	`

	rows, err := p.db.QueryContext(ctx, query)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer rows.Close()

	var models []*converter.ProductModel
	for rows.Next() {
		var model converter.ProductModel
		if err := scanProduct(rows, &model); err != nil {
			return nil, e.Wrap(op, err)
		}
		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(op, err)
	}

	return p.conv.ToArrEntity(models), nil
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "ProductRepo.GetByID"

	query := `
		SELECT id, nombre, description, precio, image_url, video_url
		FROM productos
		WHERE id = ?;
	`

	var model converter.ProductModel
	if err := scanProduct(p.db.QueryRowContext(ctx, query, id), &model); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, e.Wrap(op, e.ErrProductNotFound)
		}
		return nil, e.Wrap(op, err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) Exists(ctx context.Context, id int64) (bool, error) {
	const op = "ProductRepo.Exists"

	var exists bool
	if err := p.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM productos WHERE id = ?);`, id,
	).Scan(&exists); err != nil {
		return false, e.Wrap(op, err)
	}

	return exists, nil
}

// Update применяет частичное обновление. В SET попадают только переданные поля,
// имена столбцов берутся из констант domain, значения передаются параметрами.
func (p *ProductRepo) Update(ctx context.Context, id int64, patch domain.ProductPatch) error {
	const op = "ProductRepo.Update"

	// пустой патч отсекает ProductUseCase.Update, здесь менять нечего
	assignments := patch.Assignments()
	if len(assignments) == 0 {
		return nil
	}

	var sb strings.Builder
	args := make([]any, 0, len(assignments)+1)

	sb.WriteString("UPDATE productos SET ")
	for i, a := range assignments {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(string(a.Column))
		sb.WriteString(" = ?")
		args = append(args, a.Value)
	}
	sb.WriteString(" WHERE id = ?;")
	args = append(args, id)

	res, err := p.db.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return e.Wrap(op, err)
	}

	return affectedOrNotFound(op, res)
}

func (p *ProductRepo) DeleteByID(ctx context.Context, id int64) error {
	const op = "ProductRepo.DeleteByID"

	res, err := p.db.ExecContext(ctx, `DELETE FROM productos WHERE id = ?;`, id)
	if err != nil {
		return e.Wrap(op, err)
	}

	return affectedOrNotFound(op, res)
}

// DeleteAll удаляет все продукты и возвращает количество удалённых строк.
func (p *ProductRepo) DeleteAll(ctx context.Context) (int64, error) {
	const op = "ProductRepo.DeleteAll"

	res, err := p.db.ExecContext(ctx, `DELETE FROM productos;`)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, model *converter.ProductModel) error {
	return row.Scan(
		&model.ID,
		&model.Name,
		&model.Description,
		&model.Price,
		&model.ImageURL,
		&model.VideoURL,
	)
}

func affectedOrNotFound(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return e.Wrap(op, err)
	}
	if n == 0 {
		return e.Wrap(op, e.ErrProductNotFound)
	}
	return nil
}
