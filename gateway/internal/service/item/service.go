package item

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/practicum/shareit-service/gateway/config"
	"github.com/practicum/shareit-service/gateway/internal/model"
	"github.com/practicum/shareit-service/pkg/auth"
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

func (s *Service) Create(ctx context.Context, userID int64, request model.CreateItemRequest) ([]byte, int, error) {
	return s.do(ctx, http.MethodPost, "/items", userID, nil, request)
}

func (s *Service) Update(ctx context.Context, userID, itemID int64, request model.UpdateItemRequest) ([]byte, int, error) {
	return s.do(ctx, http.MethodPatch, fmt.Sprintf("/items/%d", itemID), userID, nil, request)
}

func (s *Service) Get(ctx context.Context, userID, itemID int64) ([]byte, int, error) {
	return s.do(ctx, http.MethodGet, fmt.Sprintf("/items/%d", itemID), userID, nil, nil)
}

func (s *Service) List(ctx context.Context, userID, from, size int64) ([]byte, int, error) {
	return s.do(ctx, http.MethodGet, "/items", userID, paging(from, size), nil)
}

func (s *Service) Search(ctx context.Context, userID int64, text string, from, size int64) ([]byte, int, error) {
	query := paging(from, size)
	query.Set("text", text)
	return s.do(ctx, http.MethodGet, "/items/search", userID, query, nil)
}

func (s *Service) Comment(ctx context.Context, userID, itemID int64, request model.CreateCommentRequest) ([]byte, int, error) {
	return s.do(ctx, http.MethodPost, fmt.Sprintf("/items/%d/comment", itemID), userID, nil, request)
}

func paging(from, size int64) url.Values {
	query := url.Values{}
	query.Set("from", strconv.FormatInt(from, 10))
	query.Set("size", strconv.FormatInt(size, 10))
	return query
}

func (s *Service) do(ctx context.Context, method, path string, userID int64, query url.Values, body any) ([]byte, int, error) {
	var rd io.Reader = http.NoBody
	if body != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(body); err != nil {
			return nil, http.StatusBadRequest, err
		}
		rd = b
	}
	u := url.URL{
		Scheme:   "http",
		Host:     net.JoinHostPort(s.cfg.Host, s.cfg.Port),
		Path:     path,
		RawQuery: query.Encode(),
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), rd)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	req.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
	req.Header.Set(auth.UserIDHeader, strconv.FormatInt(userID, 10))
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
