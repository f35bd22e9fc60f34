package sqldb

import (
	"context"
	"database/sql"

	"github.com/DRSN-tech/micrositio-backend/internal/domain"
	"github.com/DRSN-tech/micrositio-backend/internal/repository/sqldb/converter"
	"github.com/DRSN-tech/micrositio-backend/pkg/e"
)

// ContactRepo хранит заявки формы обратной связи. Заявки только добавляются.
type ContactRepo struct {
	db   *sql.DB
	conv converter.ContactConverter
}

func NewContactRepo(db *sql.DB, conv converter.ContactConverter) *ContactRepo {
	return &ContactRepo{db: db, conv: conv}
}

// Create сохраняет заявку; id и fecha проставляет хранилище.
func (c *ContactRepo) Create(ctx context.Context, contact *domain.Contact) (int64, error) {
	const op = "ContactRepo.Create"

	model := c.conv.ToModel(contact)
	res, err := c.db.ExecContext(ctx,
		`INSERT INTO contactos (nombre, correo, mensaje) VALUES (?, ?, ?);`,
		model.Name, model.Email, model.Message,
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

// List возвращает заявки, начиная с самой свежей.
func (c *ContactRepo) List(ctx context.Context) ([]domain.Contact, error) {
	const op = "ContactRepo.List"

	query := `
		SELECT id, nombre, correo, mensaje, fecha
		FROM contactos
		ORDER BY fecha DESC, id DESC;
	`

	rows, err := c.db.QueryContext(ctx, query)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer rows.Close()

	var models []*converter.ContactModel
	for rows.Next() {
		var model converter.ContactModel
		if err := rows.Scan(
			&model.ID,
			&model.Name,
			&model.Email,
			&model.Message,
			&model.SubmittedAt,
		); err != nil {
			return nil, e.Wrap(op, err)
		}
		models = append(models, &model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(op, err)
	}

	return c.conv.ToArrEntity(models), nil
}
