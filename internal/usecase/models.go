package usecase

import "github.com/DRSN-tech/micrositio-backend/internal/domain"

// PRODUCT USECASE

// CreateProductReq запрос на создание продукта.
type CreateProductReq struct {
	Name        string  `json:"nombre" validate:"required"`
	Description *string `json:"description"`
	Price       int64   `json:"precio"`
	ImageURL    *string `json:"image_url"`
	VideoURL    *string `json:"video_url"`
}

// CreateProductRes содержит созданный продукт и выданный id.
type CreateProductRes struct {
	ID      int64
	Product *domain.Product
}

// UpdateProductRes результат частичного обновления.
type UpdateProductRes struct {
	NoChanges bool // патч пустой, хранилище не трогали
}

// CONTACT USECASE

// SubmitContactReq заявка из формы обратной связи.
type SubmitContactReq struct {
	Name    string `json:"nombre" validate:"required"`
	Email   string `json:"correo" validate:"required"`
	Message string `json:"mensaje" validate:"required"`
}

// MEANING USECASE

type NameMeaningReq struct {
	Name string `json:"nombre" validate:"required"`
}

// NameMeaningRes значение имени, полученное от LLM или из кэша.
type NameMeaningRes struct {
	Name    string
	Meaning string
	Cached  bool
}

// MAPPERS

func NewCreateProductReq(name string, description *string, price int64, imageURL, videoURL *string) *CreateProductReq {
	return &CreateProductReq{
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		VideoURL:    videoURL,
	}
}

func NewCreateProductRes(id int64, product *domain.Product) *CreateProductRes {
	return &CreateProductRes{
		ID:      id,
		Product: product,
	}
}

func NewUpdateProductRes(noChanges bool) *UpdateProductRes {
	return &UpdateProductRes{NoChanges: noChanges}
}

func NewSubmitContactReq(name, email, message string) *SubmitContactReq {
	return &SubmitContactReq{
		Name:    name,
		Email:   email,
		Message: message,
	}
}

func NewNameMeaningReq(name string) *NameMeaningReq {
	return &NameMeaningReq{Name: name}
}

func NewNameMeaningRes(name, meaning string, cached bool) *NameMeaningRes {
	return &NameMeaningRes{
		Name:    name,
		Meaning: meaning,
		Cached:  cached,
	}
}
