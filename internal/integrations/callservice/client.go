package callservice

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

	"github.com/google/uuid"
)

// Client клиент для внешнего сервиса интерактивных звонков
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса звонков
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// PlaceCall звонит клиенту со скриптом и списком слотов и возвращает его выбор
func (c *Client) PlaceCall(ctx context.Context, call CallRequest) (*CallResult, error) {
	if call.RequestID == "" {
		call.RequestID = uuid.NewString()
	}

	body, err := json.Marshal(call)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/calls", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", call.RequestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNoContent:
		return nil, ErrNoSelection
	default:
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(raw))
	}

	var result CallResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if strings.TrimSpace(result.Selection) == "" {
		return nil, ErrNoSelection
	}

	return &result, nil
}

// PlaceCallWithGracefulDegradation звонит клиенту и сводит сбои транспорта к ErrServiceDegraded
// ErrNoSelection пробрасывается как есть
func (c *Client) PlaceCallWithGracefulDegradation(ctx context.Context, call CallRequest) (*CallResult, error) {
	if call.RequestID == "" {
		call.RequestID = uuid.NewString()
	}
	c.log.Info("Placing call request_id=%s, slots=%d", call.RequestID, len(call.Slots))

	result, err := c.PlaceCall(ctx, call)
	if err != nil {
		if errors.Is(err, ErrNoSelection) {
			c.log.Info("Customer made no selection, request_id=%s", call.RequestID)
			return nil, err
		}

		c.log.Error("Call service unavailable, request_id=%s: %v", call.RequestID, err)
		return nil, fmt.Errorf("%w: request_id=%s, error=%v", ErrServiceDegraded, call.RequestID, err)
	}

	c.log.Info("Call finished request_id=%s, selection=%q", call.RequestID, result.Selection)
	return result, nil
}
