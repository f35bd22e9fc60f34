package domain

// Product описывает продукт каталога
type Product struct {
	ID          int64
	Name        string
	Description *string
	Price       int64 // Цена хранится в минимальных единицах валюты
	ImageURL    *string
	VideoURL    *string
}

func NewProduct(name string, description *string, price int64, imageURL, videoURL *string) *Product {
	return &Product{
		Name:        name,
		Description: description,
		Price:       price,
		ImageURL:    imageURL,
		VideoURL:    videoURL,
	}
}
