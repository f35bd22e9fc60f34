package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/DRSN-tech/micrositio-backend/internal/domain"
	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// ProductResponse описывает продукт в формате фронтенда.
type ProductResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"nombre"`
	Description *string `json:"description"`
	Price       int64   `json:"precio"`
	ImageURL    *string `json:"image_url"`
	VideoURL    *string `json:"video_url"`
}

type CreateProductResponse struct {
	Message string          `json:"message"`
	ID      int64           `json:"id"`
	Data    ProductResponse `json:"data"`
}

type ContactResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"nombre"`
	Email       string `json:"correo"`
	Message     string `json:"mensaje"`
	SubmittedAt string `json:"fecha"`
}

type NameMeaningResponse struct {
	Name    string `json:"nombre"`
	Meaning string `json:"significado"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func NewMessageResponse(message string) *MessageResponse {
	return &MessageResponse{Message: message}
}

func NewProductResponse(p *domain.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		VideoURL:    p.VideoURL,
	}
}

func NewProductsResponse(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, 0, len(products))
	for i := range products {
		res = append(res, NewProductResponse(&products[i]))
	}
	return res
}

func NewContactsResponse(contacts []domain.Contact) []ContactResponse {
	const fechaLayout = "2006-01-02T15:04:05.000Z07:00"

	res := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		res = append(res, ContactResponse{
			ID:          c.ID,
			Name:        c.Name,
			Email:       c.Email,
			Message:     c.Message,
			SubmittedAt: c.SubmittedAt.UTC().Format(fechaLayout),
		})
	}
	return res
}

// ToHTTPResponse возвращает статус и сообщение для ошибки.
// internal == true означает, что к сообщению нужно добавить контекст операции.
func ToHTTPResponse(err error) (code int, msg string, internal bool) {
	var ve *e.ValidationError

	switch {
	case errors.As(err, &ve):
		return http.StatusUnprocessableEntity, ve.Msg, false
	case errors.Is(err, e.ErrValidation):
		return http.StatusUnprocessableEntity, err.Error(), false
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error(), false
	case errors.Is(err, e.ErrMissingAPIKey):
		return http.StatusInternalServerError, e.ErrMissingAPIKey.Error(), false
	case errors.Is(err, e.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, e.ErrStorageUnavailable.Error(), false
	default:
		return http.StatusInternalServerError, err.Error(), true
	}
}

// WriteError пишет ошибку в ответ. failMsg предваряет сообщение о внутренних сбоях,
// например "Error al crear el producto".
func WriteError(w http.ResponseWriter, log logger.Logger, err error, failMsg string) {
	code, msg, internal := ToHTTPResponse(err)
	if internal && failMsg != "" {
		msg = failMsg + ": " + msg
	}

	if code >= http.StatusInternalServerError {
		log.Errorf(err, "%d %s", code, failMsg)
	} else {
		log.Warnf("%d %s", code, msg)
	}

	WriteSuccess(w, code, NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// parseID читает {id} из пути.
func parseID(r *http.Request) (int64, error) {
	raw := chi.URLParam(r, "id")

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, e.Validation("el id '%s' debe ser un número entero", raw)
	}

	return id, nil
}
