package mailservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с MailService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента MailService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send ставит письмо в очередь отправки
func (c *Client) Send(ctx context.Context, msg *Message) error {
	url := fmt.Sprintf("%s/internal/messages", c.baseURL)

	payload, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		// Продолжаем обработку
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var sendResp SendResponse
	if err := json.NewDecoder(resp.Body).Decode(&sendResp); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// SendBestEffort отправляет письмо с graceful degradation
// Любая ошибка доставки логируется и заворачивается в ErrServiceDegraded:
// бронирование не должно падать из-за недоступности почтового сервиса
func (c *Client) SendBestEffort(ctx context.Context, msg *Message) error {
	if err := c.Send(ctx, msg); err != nil {
		c.log.Error("MailService unavailable, notification dropped (recipients=%v, subject=%q): %v",
			msg.Recipients, msg.Subject, err)
		return fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	c.log.Info("Notification queued (recipients=%v, subject=%q)", msg.Recipients, msg.Subject)
	return nil
}
