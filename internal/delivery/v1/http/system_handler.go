package http

import (
	"context"
	"net/http"

	"github.com/DRSN-tech/micrositio-backend/internal/usecase"
	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
)

// Pinger проверяет доступность хранилища.
type Pinger interface {
	Ping(ctx context.Context) error
}

type SystemHandler struct {
	schemaUsecase usecase.SchemaUC
	db            Pinger
	logger        logger.Logger
}

func NewSystemHandler(schemaUsecase usecase.SchemaUC, db Pinger, logger logger.Logger) *SystemHandler {
	return &SystemHandler{schemaUsecase: schemaUsecase, db: db, logger: logger}
}

// createDB
//
//	@Summary		Создание таблиц
//	@Description	Идемпотентно создаёт таблицы productos и contactos. Данные не затрагиваются
//	@Tags			system
//	@Produce		json
//	@Success		200	{object}	MessageResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/create-db/ [post]
func (s *SystemHandler) createDB(w http.ResponseWriter, r *http.Request) {
	if err := s.schemaUsecase.Initialize(r.Context()); err != nil {
		WriteError(w, s.logger, err, "Error al crear la base de datos")
		return
	}

	WriteSuccess(w, http.StatusOK, NewMessageResponse("Base de datos y tablas creadas correctamente"))
}

// healthz
//
//	@Summary	Проверка живости
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Failure	503	{object}	ErrorResponse
//	@Router		/healthz [get]
func (s *SystemHandler) healthz(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		WriteError(w, s.logger, e.Wrap(err.Error(), e.ErrStorageUnavailable), "")
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}
