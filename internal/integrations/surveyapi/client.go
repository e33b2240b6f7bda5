package surveyapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// MetricsRecorder счётчик вызовов upstream (может быть nil, если метрики выключены)
type MetricsRecorder interface {
	RecordUpstreamRequest(operation, outcome string)
}

// Client клиент для работы с upstream survey API (системой записи бронирований)
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        Logger
	metrics    MetricsRecorder
}

// NewClient создает новый экземпляр клиента survey API.
// metrics может быть nil — тогда вызовы не считаются.
func NewClient(baseURL, token string, timeout time.Duration, log Logger, metrics MetricsRecorder) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log:     log,
		metrics: metrics,
	}
}

// IsConfigured возвращает true, если заданы base URL и токен
func (c *Client) IsConfigured() bool {
	return c.baseURL != "" && c.token != ""
}

// List получает страницу списка обследований
func (c *Client) List(ctx context.Context, page int) (*SurveyList, error) {
	url := fmt.Sprintf("%s/api/survey/surveys/?page=%d", c.baseURL, page)

	var list SurveyList
	if err := c.do(ctx, "list", http.MethodGet, url, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Create создает обследование в upstream и возвращает созданную запись
// с каноническим идентификатором (idx)
func (c *Client) Create(ctx context.Context, req *CreateSurveyRequest) (*Survey, error) {
	url := fmt.Sprintf("%s/api/survey/surveys/", c.baseURL)

	var created Survey
	if err := c.do(ctx, "create", http.MethodPost, url, req, &created); err != nil {
		return nil, err
	}

	c.log.Info("Created upstream survey idx=%s, site=%s, slot=%s", created.Idx, req.Site, req.TimeSlot)
	return &created, nil
}

// Update отправляет частичное обновление обследования (завершение)
// по каноническому идентификатору
func (c *Client) Update(ctx context.Context, idx string, req *CompleteSurveyRequest) error {
	url := fmt.Sprintf("%s/api/survey/surveys/%s/", c.baseURL, idx)

	if err := c.do(ctx, "update", http.MethodPatch, url, req, nil); err != nil {
		return err
	}

	c.log.Info("Updated upstream survey idx=%s, is_completed=%v", idx, req.IsCompleted)
	return nil
}

// do выполняет запрос с подстановкой токена и единообразной обработкой ошибок
func (c *Client) do(ctx context.Context, operation, method, url string, body interface{}, out interface{}) error {
	if !c.IsConfigured() {
		// Состояние "не сконфигурирован" фиксированной формы, вызов не выполняется
		return ErrNotConfigured
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request body: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(operation, "error")
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.record(operation, "error")
		apiErr := c.decodeError(resp)
		c.log.Warn("Upstream %s %s returned status %d: %s", method, url, resp.StatusCode, apiErr.Detail)
		return apiErr
	}

	c.record(operation, "success")

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// decodeError извлекает структурированное тело ошибки upstream.
// Для не-JSON ответа синтезирует detail фиксированной формы.
func (c *Client) decodeError(resp *http.Response) *APIError {
	raw, _ := io.ReadAll(resp.Body)

	var body ErrorResponse
	if err := json.Unmarshal(raw, &body); err == nil && body.Detail != "" {
		return &APIError{StatusCode: resp.StatusCode, Detail: body.Detail}
	}

	// JSON без поля detail — отдаем тело как есть
	if json.Valid(raw) && len(raw) > 0 {
		return &APIError{StatusCode: resp.StatusCode, Detail: string(raw)}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Detail:     fmt.Sprintf("Upstream returned non-JSON (%d)", resp.StatusCode),
	}
}

func (c *Client) record(operation, outcome string) {
	if c.metrics != nil {
		c.metrics.RecordUpstreamRequest(operation, outcome)
	}
}
