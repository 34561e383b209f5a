package user

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/practicum/shareit-service/gateway/config"
	"github.com/practicum/shareit-service/gateway/internal/model"
	"github.com/practicum/shareit-service/pkg/circuit_breaker"
)

type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.ShareItHTTPServer
	cb     circuit_breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg config.Config) *Service { //nolint:gocritic
	return &Service{
		log:    log,
		client: &http.Client{Timeout: time.Minute},
		cfg:    cfg.ShareItServer,
		cb:     circuit_breaker.New(100, time.Second, 0.2, 2),
	}
}

func (s *Service) CB() circuit_breaker.CircuitBreaker {
	return s.cb
}

func (s *Service) Create(ctx context.Context, request model.CreateUserRequest) ([]byte, int, error) {
	return s.do(ctx, http.MethodPost, "/users", request)
}

func (s *Service) List(ctx context.Context) ([]byte, int, error) {
	return s.do(ctx, http.MethodGet, "/users", nil)
}

func (s *Service) Get(ctx context.Context, userID int64) ([]byte, int, error) {
	return s.do(ctx, http.MethodGet, fmt.Sprintf("/users/%d", userID), nil)
}

func (s *Service) Update(ctx context.Context, userID int64, request model.UpdateUserRequest) ([]byte, int, error) {
	return s.do(ctx, http.MethodPatch, fmt.Sprintf("/users/%d", userID), request)
}

func (s *Service) Delete(ctx context.Context, userID int64) ([]byte, int, error) {
	return s.do(ctx, http.MethodDelete, fmt.Sprintf("/users/%d", userID), nil)
}

func (s *Service) do(ctx context.Context, method, path string, body any) ([]byte, int, error) {
	var rd io.Reader = http.NoBody
	if body != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(body); err != nil {
			return nil, http.StatusBadRequest, err
		}
		rd = b
	}
	req, err := http.NewRequestWithContext(ctx, method,
		fmt.Sprintf("http://%s%s", net.JoinHostPort(s.cfg.Host, s.cfg.Port), path), rd)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	req.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, http.StatusServiceUnavailable, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	return data, resp.StatusCode, nil
}
