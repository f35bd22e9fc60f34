package usecase

import "context"

// MeaningInfra описывает значение имени через внешний LLM.
type MeaningInfra interface {
	Describe(ctx context.Context, name string) (string, error)
}
