package e

import "fmt"

var (
	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// 422 Unprocessable Entity
	ErrValidation = fmt.Errorf("validation failed")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("Producto no encontrado")

	// 500 ошибки внешнего LLM-сервиса
	ErrUpstream      = fmt.Errorf("upstream llm call failed")
	ErrMissingAPIKey = fmt.Errorf("No se encontró la clave OPENROUTER_API_KEY en .env")
	ErrEmptyMeaning  = fmt.Errorf("upstream returned no usable result")

	// 503 Service Unavailable
	ErrStorageUnavailable = fmt.Errorf("storage unavailable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// ValidationError описывает проблемное поле запроса. errors.Is(err, ErrValidation) == true.
type ValidationError struct {
	Msg string
}

func (v *ValidationError) Error() string {
	return ErrValidation.Error() + ": " + v.Msg
}

func (v *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// Validation возвращает ошибку валидации с описанием проблемного поля.
func Validation(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}
