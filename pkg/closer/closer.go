package closer

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
)

// Func освобождает ресурс.
type Func func(ctx context.Context) error

type resource struct {
	name string
	fn   Func
}

// Closer закрывает зарегистрированные ресурсы в обратном порядке (LIFO).
// Close выполняется один раз, повторные вызовы возвращают тот же результат.
type Closer struct {
	mu            sync.Mutex
	resources     []resource
	once          sync.Once
	err           error
	forcedTimeout time.Duration
}

// NewCloser создаёт Closer. forcedTimeout ограничивает принудительное закрытие
// ресурсов, до которых не дошла очередь к моменту отмены контекста.
func NewCloser(forcedTimeout time.Duration) *Closer {
	const defaultForcedTimeout = 2 * time.Second

	if forcedTimeout <= 0 {
		forcedTimeout = defaultForcedTimeout
	}

	return &Closer{forcedTimeout: forcedTimeout}
}

// Add регистрирует ресурс. name попадает в текст ошибки.
func (c *Closer) Add(name string, f Func) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.resources = append(c.resources, resource{name: name, fn: f})
}

// AddCloser регистрирует ресурс с методом Close() error без контекста.
func (c *Closer) AddCloser(name string, f func() error) {
	c.Add(name, func(context.Context) error { return f() })
}

// Close закрывает ресурсы по одному, начиная с последнего добавленного.
// Если ctx отменён раньше, оставшиеся ресурсы закрываются параллельно с forcedTimeout.
func (c *Closer) Close(ctx context.Context) error {
	c.once.Do(func() {
		c.mu.Lock()
		resources := make([]resource, len(c.resources))
		copy(resources, c.resources)
		c.mu.Unlock()

		remaining, errs := c.gracefulClose(ctx, resources)
		if len(remaining) > 0 {
			errs = append(errs, fmt.Errorf("shutdown interrupted after %d/%d resources: %w",
				len(resources)-len(remaining), len(resources), ctx.Err()))
			errs = append(errs, c.forcedClose(remaining)...)
		}

		c.err = errors.Join(errs...)
	})

	return c.err
}

// gracefulClose возвращает ресурсы, которые не успели закрыться до отмены ctx.
func (c *Closer) gracefulClose(ctx context.Context, resources []resource) ([]resource, []error) {
	var errs []error
	for i := len(resources) - 1; i >= 0; i-- {
		r := resources[i]
		done := make(chan error, 1)

		go func() {
			done <- r.fn(ctx)
		}()

		select {
		case err := <-done:
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", r.name, err))
			}
		case <-ctx.Done():
			// ресурс i уже закрывается, ждать его повторно не нужно
			return resources[:i], errs
		}
	}

	return nil, errs
}

func (c *Closer) forcedClose(resources []resource) []error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	ctx, cancel := context.WithTimeout(context.Background(), c.forcedTimeout)
	defer cancel()

	for _, r := range resources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := r.fn(ctx); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("%s (forced): %w", r.name, err))
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	return errs
}
