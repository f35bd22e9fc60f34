package http

import (
	"net/http"

	"github.com/DRSN-tech/micrositio-backend/internal/usecase"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
)

type ProductHandler struct {
	productUsecase usecase.ProductUC
	logger         logger.Logger
}

func NewProductHandler(productUsecase usecase.ProductUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{productUsecase: productUsecase, logger: logger}
}

// createProduct
//
//	@Summary		Создание продукта
//	@Description	Создаёт продукт в каталоге. precio: целое число в минимальных единицах валюты
//	@Tags			productos
//	@Accept			json
//	@Produce		json
//	@Param			producto	body		ProductInput	true	"Продукт"
//	@Success		201			{object}	CreateProductResponse
//	@Failure		422			{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		500			{object}	ErrorResponse
//	@Router			/productos/ [post]
func (p *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	const failMsg = "Error al crear el producto"

	req, err := parseCreateProduct(w, r)
	if err != nil {
		WriteError(w, p.logger, err, failMsg)
		return
	}

	res, err := p.productUsecase.Create(r.Context(), req)
	if err != nil {
		WriteError(w, p.logger, err, failMsg)
		return
	}

	WriteSuccess(w, http.StatusCreated, CreateProductResponse{
		Message: "Producto creado correctamente",
		ID:      res.ID,
		Data:    NewProductResponse(res.Product),
	})
}

// listProducts
//
//	@Summary	Список продуктов
//	@Tags		productos
//	@Produce	json
//	@Success	200	{array}		ProductResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/productos/ [get]
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.productUsecase.List(r.Context())
	if err != nil {
		WriteError(w, p.logger, err, "Error al listar productos")
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductsResponse(products))
}

// getProduct
//
//	@Summary	Продукт по id
//	@Tags		productos
//	@Produce	json
//	@Param		id	path		int	true	"ID продукта"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse	"Producto no encontrado"
//	@Failure	422	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/productos/{id} [get]
func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	const failMsg = "Error al obtener el producto"

	id, err := parseID(r)
	if err != nil {
		WriteError(w, p.logger, err, failMsg)
		return
	}

	product, err := p.productUsecase.GetByID(r.Context(), id)
	if err != nil {
		WriteError(w, p.logger, err, failMsg)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(product))
}

// updateProduct
//
//	@Summary		Частичное обновление продукта
//	@Description	Меняет только переданные поля. null в description, image_url, video_url очищает поле
//	@Tags			productos
//	@Accept			json
//	@Produce		json
//	@Param			id			path		int				true	"ID продукта"
//	@Param			producto	body		ProductPartial	true	"Изменяемые поля"
//	@Success		200			{object}	MessageResponse
//	@Failure		404			{object}	ErrorResponse
//	@Failure		422			{object}	ErrorResponse
//	@Failure		500			{object}	ErrorResponse
//	@Router			/productos/{id} [put]
func (p *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	const failMsg = "Error al actualizar producto"

	id, err := parseID(r)
	if err != nil {
		WriteError(w, p.logger, err, failMsg)
		return
	}

	patch, err := parseProductPatch(w, r)
	if err != nil {
		WriteError(w, p.logger, err, failMsg)
		return
	}

	res, err := p.productUsecase.Update(r.Context(), id, patch)
	if err != nil {
		WriteError(w, p.logger, err, failMsg)
		return
	}

	if res.NoChanges {
		WriteSuccess(w, http.StatusOK, NewMessageResponse("Nada que actualizar"))
		return
	}

	WriteSuccess(w, http.StatusOK, NewMessageResponse("Producto actualizado correctamente"))
}

// deleteProduct
//
//	@Summary	Удаление продукта
//	@Tags		productos
//	@Produce	json
//	@Param		id	path		int	true	"ID продукта"
//	@Success	200	{object}	MessageResponse
//	@Failure	404	{object}	ErrorResponse
//	@Failure	422	{object}	ErrorResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/productos/{id} [delete]
func (p *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	const failMsg = "Error al eliminar producto"

	id, err := parseID(r)
	if err != nil {
		WriteError(w, p.logger, err, failMsg)
		return
	}

	if err := p.productUsecase.Delete(r.Context(), id); err != nil {
		WriteError(w, p.logger, err, failMsg)
		return
	}

	WriteSuccess(w, http.StatusOK, NewMessageResponse("Producto eliminado correctamente"))
}

// deleteAllProducts
//
//	@Summary	Удаление всех продуктов
//	@Tags		productos
//	@Produce	json
//	@Success	200	{object}	MessageResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/productos/ [delete]
func (p *ProductHandler) deleteAllProducts(w http.ResponseWriter, r *http.Request) {
	if err := p.productUsecase.DeleteAll(r.Context()); err != nil {
		WriteError(w, p.logger, err, "Error al eliminar productos")
		return
	}

	WriteSuccess(w, http.StatusOK, NewMessageResponse("Todos los productos fueron eliminados"))
}

// ProductInput описывает тело запроса на создание (для swagger).
type ProductInput struct {
	Name        string  `json:"nombre" example:"Mug"`
	Description *string `json:"description" example:"Taza de cerámica"`
	Price       int64   `json:"precio" example:"1500"`
	ImageURL    *string `json:"image_url"`
	VideoURL    *string `json:"video_url"`
}

// ProductPartial описывает тело запроса на частичное обновление (для swagger).
type ProductPartial struct {
	Name        *string `json:"nombre,omitempty"`
	Description *string `json:"description,omitempty"`
	Price       *int64  `json:"precio,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
	VideoURL    *string `json:"video_url,omitempty"`
}
