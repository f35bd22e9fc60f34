package http

import (
	"net/http"

	"github.com/DRSN-tech/micrositio-backend/internal/usecase"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
)

type MeaningHandler struct {
	meaningUsecase usecase.MeaningUC
	logger         logger.Logger
}

func NewMeaningHandler(meaningUsecase usecase.MeaningUC, logger logger.Logger) *MeaningHandler {
	return &MeaningHandler{meaningUsecase: meaningUsecase, logger: logger}
}

// describeName
//
//	@Summary		Значение имени
//	@Description	Спрашивает у LLM (OpenRouter) краткое значение имени
//	@Tags			significado
//	@Accept			x-www-form-urlencoded,mpfd,json
//	@Produce		json
//	@Param			nombre	formData	string	true	"Имя"
//	@Success		200		{object}	NameMeaningResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse	"Нет ключа OPENROUTER_API_KEY или сбой LLM"
//	@Router			/significado-nombre [post]
func (m *MeaningHandler) describeName(w http.ResponseWriter, r *http.Request) {
	const failMsg = "Error al obtener el significado del nombre"

	fields, err := readFields(w, r, formField{name: "nombre", alias: "name"})
	if err != nil {
		WriteError(w, m.logger, err, failMsg)
		return
	}

	res, err := m.meaningUsecase.Describe(r.Context(), usecase.NewNameMeaningReq(fields["nombre"]))
	if err != nil {
		WriteError(w, m.logger, err, failMsg)
		return
	}

	WriteSuccess(w, http.StatusOK, NameMeaningResponse{
		Name:    res.Name,
		Meaning: res.Meaning,
	})
}
