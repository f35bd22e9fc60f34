package http

import (
	"net/http"

	"github.com/DRSN-tech/micrositio-backend/internal/usecase"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
)

type ContactHandler struct {
	contactUsecase usecase.ContactUC
	logger         logger.Logger
}

func NewContactHandler(contactUsecase usecase.ContactUC, logger logger.Logger) *ContactHandler {
	return &ContactHandler{contactUsecase: contactUsecase, logger: logger}
}

// submitContact
//
//	@Summary		Форма обратной связи
//	@Description	Принимает форму (urlencoded или multipart) или JSON с полями nombre, correo, mensaje
//	@Tags			contacto
//	@Accept			x-www-form-urlencoded,mpfd,json
//	@Produce		json
//	@Param			nombre	formData	string	true	"Имя"
//	@Param			correo	formData	string	true	"Email"
//	@Param			mensaje	formData	string	true	"Сообщение"
//	@Success		200		{object}	MessageResponse
//	@Failure		422		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/contacto/ [post]
func (c *ContactHandler) submitContact(w http.ResponseWriter, r *http.Request) {
	const failMsg = "Error al guardar el contacto"

	fields, err := readFields(w, r,
		formField{name: "nombre", alias: "name"},
		formField{name: "correo", alias: "email"},
		formField{name: "mensaje", alias: "message"},
	)
	if err != nil {
		WriteError(w, c.logger, err, failMsg)
		return
	}

	req := usecase.NewSubmitContactReq(fields["nombre"], fields["correo"], fields["mensaje"])
	if err := c.contactUsecase.Submit(r.Context(), req); err != nil {
		WriteError(w, c.logger, err, failMsg)
		return
	}

	WriteSuccess(w, http.StatusOK, NewMessageResponse("Formulario recibido y guardado correctamente."))
}

// listContacts
//
//	@Summary	Список заявок, сначала новые
//	@Tags		contacto
//	@Produce	json
//	@Success	200	{array}		ContactResponse
//	@Failure	500	{object}	ErrorResponse
//	@Router		/contacto/ [get]
func (c *ContactHandler) listContacts(w http.ResponseWriter, r *http.Request) {
	contacts, err := c.contactUsecase.List(r.Context())
	if err != nil {
		WriteError(w, c.logger, err, "Error al listar contactos")
		return
	}

	WriteSuccess(w, http.StatusOK, NewContactsResponse(contacts))
}
