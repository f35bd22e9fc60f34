package usecase

import (
	"context"

	"github.com/DRSN-tech/micrositio-backend/internal/domain"
	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/go-playground/validator/v10"
)

// ProductUseCase реализует бизнес-логику каталога продуктов.
type ProductUseCase struct {
	productRepo ProductRepository
	validate    *validator.Validate
	logger      logger.Logger
}

func NewProductUC(productRepo ProductRepository, validate *validator.Validate, logger logger.Logger) *ProductUseCase {
	return &ProductUseCase{
		productRepo: productRepo,
		validate:    validate,
		logger:      logger,
	}
}

// Create валидирует запрос и сохраняет продукт.
func (p *ProductUseCase) Create(ctx context.Context, req *CreateProductReq) (*CreateProductRes, error) {
	const op = "ProductUseCase.Create"

	if err := validateStruct(p.validate, req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := domain.NewProduct(req.Name, req.Description, req.Price, req.ImageURL, req.VideoURL)
	id, err := p.productRepo.Create(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	product.ID = id

	p.logger.Infof("product created. id: %d, name: %s", id, product.Name)

	return NewCreateProductRes(id, product), nil
}

func (p *ProductUseCase) List(ctx context.Context) ([]domain.Product, error) {
	const op = "ProductUseCase.List"

	products, err := p.productRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

func (p *ProductUseCase) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "ProductUseCase.GetByID"

	product, err := p.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// Update применяет частичное обновление. Пустой патч не трогает хранилище,
// но для несуществующего продукта всё равно возвращает ErrProductNotFound.
func (p *ProductUseCase) Update(ctx context.Context, id int64, patch domain.ProductPatch) (*UpdateProductRes, error) {
	const op = "ProductUseCase.Update"

	if patch.Name.Set && patch.Name.Value == "" {
		return nil, e.Wrap(op, e.Validation("el campo 'nombre' no puede estar vacío"))
	}

	if patch.IsEmpty() {
		exists, err := p.productRepo.Exists(ctx, id)
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		if !exists {
			return nil, e.Wrap(op, e.ErrProductNotFound)
		}
		return NewUpdateProductRes(true), nil
	}

	if err := p.productRepo.Update(ctx, id, patch); err != nil {
		return nil, e.Wrap(op, err)
	}

	p.logger.Infof("product updated. id: %d, fields: %d", id, len(patch.Assignments()))

	return NewUpdateProductRes(false), nil
}

func (p *ProductUseCase) Delete(ctx context.Context, id int64) error {
	const op = "ProductUseCase.Delete"

	if err := p.productRepo.DeleteByID(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	p.logger.Infof("product deleted. id: %d", id)
	return nil
}

// DeleteAll очищает каталог. Пустой каталог не считается ошибкой.
func (p *ProductUseCase) DeleteAll(ctx context.Context) error {
	const op = "ProductUseCase.DeleteAll"

	n, err := p.productRepo.DeleteAll(ctx)
	if err != nil {
		return e.Wrap(op, err)
	}

	p.logger.Infof("all products deleted. count: %d", n)
	return nil
}
