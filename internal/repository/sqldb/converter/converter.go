package converter

import (
	"database/sql"

	"github.com/DRSN-tech/micrositio-backend/internal/domain"
)

// ProductConverter преобразует сущности Product между domain и моделью SQLite.
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []*ProductModel) []domain.Product
}

// ContactConverter преобразует сущности Contact между domain и моделью SQLite.
type ContactConverter interface {
	ToModel(entity *domain.Contact) *ContactModel
	ToEntity(model *ContactModel) *domain.Contact
	ToArrEntity(models []*ContactModel) []domain.Contact
}

type ProductConverterImpl struct{}

func NewProductConverter() *ProductConverterImpl {
	return &ProductConverterImpl{}
}

func (c *ProductConverterImpl) ToModel(entity *domain.Product) *ProductModel {
	if entity == nil {
		return nil
	}

	return &ProductModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Description: ConvertPointerString(entity.Description),
		Price:       entity.Price,
		ImageURL:    ConvertPointerString(entity.ImageURL),
		VideoURL:    ConvertPointerString(entity.VideoURL),
	}
}

func (c *ProductConverterImpl) ToEntity(model *ProductModel) *domain.Product {
	if model == nil {
		return nil
	}

	return &domain.Product{
		ID:          model.ID,
		Name:        model.Name,
		Description: ConvertNullString(model.Description),
		Price:       model.Price,
		ImageURL:    ConvertNullString(model.ImageURL),
		VideoURL:    ConvertNullString(model.VideoURL),
	}
}

func (c *ProductConverterImpl) ToArrEntity(models []*ProductModel) []domain.Product {
	res := make([]domain.Product, 0, len(models))
	for _, m := range models {
		res = append(res, *c.ToEntity(m))
	}
	return res
}

type ContactConverterImpl struct{}

func NewContactConverter() *ContactConverterImpl {
	return &ContactConverterImpl{}
}

func (c *ContactConverterImpl) ToModel(entity *domain.Contact) *ContactModel {
	if entity == nil {
		return nil
	}

	return &ContactModel{
		ID:          entity.ID,
		Name:        entity.Name,
		Email:       entity.Email,
		Message:     entity.Message,
		SubmittedAt: entity.SubmittedAt,
	}
}

func (c *ContactConverterImpl) ToEntity(model *ContactModel) *domain.Contact {
	if model == nil {
		return nil
	}

	return &domain.Contact{
		ID:          model.ID,
		Name:        model.Name,
		Email:       model.Email,
		Message:     model.Message,
		SubmittedAt: model.SubmittedAt,
	}
}

func (c *ContactConverterImpl) ToArrEntity(models []*ContactModel) []domain.Contact {
	res := make([]domain.Contact, 0, len(models))
	for _, m := range models {
		res = append(res, *c.ToEntity(m))
	}
	return res
}

// ConvertPointerString переводит опциональную строку в значение для NULL-столбца.
func ConvertPointerString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func ConvertNullString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	v := s.String
	return &v
}
