package usecase

import (
	"context"
	"errors"
	"reflect"
	"strings"

	"github.com/DRSN-tech/micrositio-backend/internal/domain"
	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/go-playground/validator/v10"
)

type ProductUC interface {
	Create(ctx context.Context, req *CreateProductReq) (*CreateProductRes, error)
	List(ctx context.Context) ([]domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	Update(ctx context.Context, id int64, patch domain.ProductPatch) (*UpdateProductRes, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) error
}

type ContactUC interface {
	Submit(ctx context.Context, req *SubmitContactReq) error
	List(ctx context.Context) ([]domain.Contact, error)
}

type MeaningUC interface {
	Describe(ctx context.Context, req *NameMeaningReq) (*NameMeaningRes, error)
}

type SchemaUC interface {
	Initialize(ctx context.Context) error
}

// NewValidator возвращает валидатор, который называет поля по json-тегам.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct переводит ошибки validator в e.ErrValidation с именем поля.
func validateStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return e.Validation("%v", err)
	}

	msgs := make([]string, 0, len(vErrs))
	for _, fe := range vErrs {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, "el campo '"+fe.Field()+"' es obligatorio")
		default:
			msgs = append(msgs, "el campo '"+fe.Field()+"' no es válido ("+fe.Tag()+")")
		}
	}

	return e.Validation("%s", strings.Join(msgs, "; "))
}
