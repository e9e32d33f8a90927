// internal/api/client.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"tower-defense-client/internal/interfaces"
	"tower-defense-client/internal/types"
)

var _ interfaces.Gateway = (*Client)(nil)

// ErrRejected — сервер ответил не-2xx статусом.
var ErrRejected = errors.New("request rejected by server")

// ErrNoLobby — запрос к лобби без его идентификатора.
var ErrNoLobby = errors.New("lobby id is empty")

const (
	// maxAttempts — попытки одного запроса при сетевых ошибках.
	maxAttempts  = 3
	retryBackoff = 100 * time.Millisecond
)

// RequestError описывает отказ сервера.
type RequestError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *RequestError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s: server returned %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: server returned %d: %s", e.Op, e.StatusCode, e.Message)
}

func (e *RequestError) Unwrap() error { return ErrRejected }

// Options — параметры HTTP-клиента.
type Options struct {
	BaseURL       string
	Timeout       time.Duration
	RatePerSecond float64
	Burst         int
	HTTPClient    *http.Client
	Logger        *log.Logger
}

// Client — HTTP-реализация игрового шлюза.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	timeout time.Duration
	limiter *rate.Limiter
	backoff time.Duration
	logger  *log.Logger
}

// NewClient создаёт клиента для сервера по адресу opts.BaseURL.
func NewClient(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid base url %q: %w", opts.BaseURL, err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid base url %q: scheme and host required", opts.BaseURL)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	limit := rate.Inf
	if opts.RatePerSecond > 0 {
		limit = rate.Limit(opts.RatePerSecond)
	}
	burst := opts.Burst
	if burst < 1 {
		burst = 1
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Client{
		baseURL: base,
		http:    httpClient,
		timeout: opts.Timeout,
		limiter: rate.NewLimiter(limit, burst),
		backoff: retryBackoff,
		logger:  logger.WithPrefix("api"),
	}, nil
}

// FetchTowerCatalog загружает список башен магазина.
func (c *Client) FetchTowerCatalog(ctx context.Context) ([]types.TowerDefinition, error) {
	var towers []types.TowerDefinition
	if err := c.do(ctx, "fetch tower catalog", http.MethodGet, "towers", "", "", nil, &towers); err != nil {
		return nil, err
	}
	c.logger.Debug("tower catalog fetched", "count", len(towers))
	return towers, nil
}

type placeTowerRequest struct {
	Type int `json:"type"`
	X    int `json:"x"`
	Y    int `json:"y"`
}

// PlaceTower просит сервер поставить башню типа typeID в клетку cell.
func (c *Client) PlaceTower(ctx context.Context, lobbyID, accessToken, requestKey string, typeID int, cell types.Cell) error {
	path, err := lobbyPath(lobbyID, "towers")
	if err != nil {
		return fmt.Errorf("place tower: %w", err)
	}
	body := placeTowerRequest{Type: typeID, X: cell.X, Y: cell.Y}
	return c.do(ctx, "place tower", http.MethodPost, path, accessToken, requestKey, body, nil)
}

// StartRound просит сервер начать следующую волну.
func (c *Client) StartRound(ctx context.Context, lobbyID, accessToken, requestKey string) error {
	path, err := lobbyPath(lobbyID, "start")
	if err != nil {
		return fmt.Errorf("start round: %w", err)
	}
	return c.do(ctx, "start round", http.MethodPost, path, accessToken, requestKey, nil, nil)
}

func lobbyPath(lobbyID, action string) (string, error) {
	if strings.TrimSpace(lobbyID) == "" {
		return "", ErrNoLobby
	}
	return "lobbies/" + url.PathEscape(lobbyID) + "/" + action, nil
}

// do выполняет запрос и повторяет его при сетевых ошибках, не больше maxAttempts раз.
// Отказ сервера не повторяется. Все попытки POST несут один Idempotency-Key.
func (c *Client) do(ctx context.Context, op, method, path, token, requestKey string, in, out interface{}) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
	}
	if method == http.MethodPost && requestKey == "" {
		requestKey = uuid.NewString()
	}

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = c.attempt(ctx, op, method, path, token, requestKey, payload, out)
		var reqErr *RequestError
		if err == nil || errors.As(err, &reqErr) || ctx.Err() != nil {
			return err
		}
		if attempt == maxAttempts {
			break
		}
		c.logger.Warn("request failed, retrying", "op", op, "attempt", attempt, "err", err)
		select {
		case <-ctx.Done():
			return fmt.Errorf("%s: %w", op, ctx.Err())
		case <-time.After(c.backoff * time.Duration(attempt)):
		}
	}
	return err
}

func (c *Client) attempt(ctx context.Context, op, method, path, token, requestKey string, payload []byte, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL.JoinPath(path).String(), reader)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if requestKey != "" {
		req.Header.Set("Idempotency-Key", requestKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &RequestError{Op: op, StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(msg))}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%s: decode response: %w", op, err)
	}
	return nil
}
