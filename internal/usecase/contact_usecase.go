package usecase

import (
	"context"

	"github.com/DRSN-tech/micrositio-backend/internal/domain"
	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/go-playground/validator/v10"
)

// ContactUseCase принимает и отдаёт заявки формы обратной связи.
type ContactUseCase struct {
	contactRepo ContactRepository
	validate    *validator.Validate
	logger      logger.Logger
}

func NewContactUC(contactRepo ContactRepository, validate *validator.Validate, logger logger.Logger) *ContactUseCase {
	return &ContactUseCase{
		contactRepo: contactRepo,
		validate:    validate,
		logger:      logger,
	}
}

func (c *ContactUseCase) Submit(ctx context.Context, req *SubmitContactReq) error {
	const op = "ContactUseCase.Submit"

	if err := validateStruct(c.validate, req); err != nil {
		return e.Wrap(op, err)
	}

	id, err := c.contactRepo.Create(ctx, domain.NewContact(req.Name, req.Email, req.Message))
	if err != nil {
		return e.Wrap(op, err)
	}

	c.logger.Infof("contact form saved. id: %d", id)
	return nil
}

func (c *ContactUseCase) List(ctx context.Context) ([]domain.Contact, error) {
	const op = "ContactUseCase.List"

	contacts, err := c.contactRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return contacts, nil
}
