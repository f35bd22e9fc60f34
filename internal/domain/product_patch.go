package domain

// ProductColumn столбец таблицы productos, разрешённый к частичному обновлению.
type ProductColumn string

const (
	ColumnName        ProductColumn = "nombre"
	ColumnDescription ProductColumn = "description"
	ColumnPrice       ProductColumn = "precio"
	ColumnImageURL    ProductColumn = "image_url"
	ColumnVideoURL    ProductColumn = "video_url"
)

// Field значение поля частичного обновления.
// Set == false означает, что поле не передано и остаётся без изменений.
type Field[T any] struct {
	Value T
	Set   bool
}

// Some возвращает переданное поле со значением v.
func Some[T any](v T) Field[T] {
	return Field[T]{Value: v, Set: true}
}

// ProductPatch описывает частичное обновление продукта.
// nil в опциональных полях при Set == true означает запись NULL.
type ProductPatch struct {
	Name        Field[string]
	Description Field[*string]
	Price       Field[int64]
	ImageURL    Field[*string]
	VideoURL    Field[*string]
}

// Assignment пара столбец/значение для SET.
type Assignment struct {
	Column ProductColumn
	Value  any
}

// Assignments возвращает только переданные поля в фиксированном порядке столбцов.
func (p ProductPatch) Assignments() []Assignment {
	res := make([]Assignment, 0, 5)

	if p.Name.Set {
		res = append(res, Assignment{Column: ColumnName, Value: p.Name.Value})
	}
	if p.Description.Set {
		res = append(res, Assignment{Column: ColumnDescription, Value: nullable(p.Description.Value)})
	}
	if p.Price.Set {
		res = append(res, Assignment{Column: ColumnPrice, Value: p.Price.Value})
	}
	if p.ImageURL.Set {
		res = append(res, Assignment{Column: ColumnImageURL, Value: nullable(p.ImageURL.Value)})
	}
	if p.VideoURL.Set {
		res = append(res, Assignment{Column: ColumnVideoURL, Value: nullable(p.VideoURL.Value)})
	}

	return res
}

// IsEmpty сообщает, что в патче нет ни одного поля.
func (p ProductPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Description.Set && !p.Price.Set && !p.ImageURL.Set && !p.VideoURL.Set
}

func nullable(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
