package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DRSN-tech/micrositio-backend/internal/cfg"
	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/DRSN-tech/micrositio-backend/pkg/logger"
	"github.com/sony/gobreaker"
)

const (
	systemPrompt = "Eres un experto en Nombres y su significado."
	userPrompt   = "¿puedes darme brevemente el significado de %s?"

	// тело ошибки апстрима обрезается до этого размера в сообщениях
	maxErrorBody = 512
)

// Client ходит в chat completions OpenRouter (OpenAI-совместимый API).
// Повторных попыток нет: при серии сбоев circuit breaker сразу отдаёт ошибку.
type Client struct {
	httpClient *http.Client
	cfg        *cfg.LLMCfg
	cb         *gobreaker.CircuitBreaker
	logger     logger.Logger
}

func NewClient(cfg *cfg.LLMCfg, logger logger.Logger) *Client {
	return NewClientWithHTTP(&http.Client{Timeout: cfg.Timeout}, cfg, logger)
}

func NewClientWithHTTP(httpClient *http.Client, cfg *cfg.LLMCfg, logger logger.Logger) *Client {
	settings := gobreaker.Settings{
		Name:        "OpenRouter",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warnf("circuit breaker %s state changed: %s -> %s", name, from, to)
		},
	}

	return &Client{
		httpClient: httpClient,
		cfg:        cfg,
		cb:         gobreaker.NewCircuitBreaker(settings),
		logger:     logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Describe спрашивает у модели значение имени и возвращает текст ответа.
func (c *Client) Describe(ctx context.Context, name string) (string, error) {
	const op = "OpenRouter.Describe"

	if c.cfg.ApiKey == "" {
		return "", e.Wrap(op, e.ErrMissingAPIKey)
	}

	res, err := c.cb.Execute(func() (interface{}, error) {
		return c.complete(ctx, name)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", e.Wrap(op, fmt.Errorf("%w: %v", e.ErrUpstream, err))
		}
		return "", e.Wrap(op, err)
	}

	return res.(string), nil
}

func (c *Client) complete(ctx context.Context, name string) (string, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: fmt.Sprintf(userPrompt, name)},
		},
	})
	if err != nil {
		return "", err
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", e.ErrUpstream, err)
	}
	defer resp.Body.Close()

	c.logger.Debugf("openrouter responded. status: %d, took: %v", resp.StatusCode, time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", fmt.Errorf("%w: status %d: %s", e.ErrUpstream, resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	var out chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", e.ErrUpstream, err)
	}

	if len(out.Choices) == 0 {
		return "", fmt.Errorf("%w: %w", e.ErrUpstream, e.ErrEmptyMeaning)
	}

	content := strings.TrimSpace(out.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: %w", e.ErrUpstream, e.ErrEmptyMeaning)
	}

	return content, nil
}
