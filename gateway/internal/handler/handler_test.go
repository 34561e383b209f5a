package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/practicum/shareit-service/gateway/internal/handler"
	"github.com/practicum/shareit-service/gateway/internal/model"
	"github.com/practicum/shareit-service/pkg/auth"
	"github.com/practicum/shareit-service/pkg/circuit_breaker"
	"github.com/practicum/shareit-service/pkg/validate"
)

type fakeBookingService struct {
	cb           circuit_breaker.CircuitBreaker
	listOfBooker func(ctx context.Context, userID int64, state string, from, size int64) ([]byte, int, error)
	create       func(ctx context.Context, userID int64, request model.CreateBookingRequest) ([]byte, int, error)
}

func newFakeBookingService() *fakeBookingService {
	return &fakeBookingService{cb: circuit_breaker.New(100, time.Second, 0.2, 2)}
}

func (f *fakeBookingService) CB() circuit_breaker.CircuitBreaker {
	return f.cb
}

func (f *fakeBookingService) Create(ctx context.Context, userID int64, request model.CreateBookingRequest) ([]byte, int, error) {
	return f.create(ctx, userID, request)
}

func (f *fakeBookingService) SetApproval(ctx context.Context, userID, bookingID int64, approved bool) ([]byte, int, error) {
	panic("unexpected SetApproval")
}

func (f *fakeBookingService) Get(ctx context.Context, userID, bookingID int64) ([]byte, int, error) {
	panic("unexpected Get")
}

func (f *fakeBookingService) ListOfBooker(ctx context.Context, userID int64, state string, from, size int64) ([]byte, int, error) {
	return f.listOfBooker(ctx, userID, state, from, size)
}

func (f *fakeBookingService) ListOfOwner(ctx context.Context, userID int64, state string, from, size int64) ([]byte, int, error) {
	panic("unexpected ListOfOwner")
}

func TestHandler_ListBookingsOfBooker(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		userID       string
		query        string
		downstream   func(ctx context.Context, userID int64, state string, from, size int64) ([]byte, int, error)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "ok. forwards state and paging",
			userID: "2",
			query:  "?state=WAITING&from=4&size=2",
			downstream: func(ctx context.Context, userID int64, state string, from, size int64) ([]byte, int, error) {
				require.Equal(t, int64(2), userID)
				require.Equal(t, "WAITING", state)
				require.Equal(t, int64(4), from)
				require.Equal(t, int64(2), size)
				return []byte(`[]`), http.StatusOK, nil
			},
			expectedCode: http.StatusOK,
			expectedBody: `[]`,
		},
		{
			name:   "err. unknown state is rejected before any downstream call",
			userID: "2",
			query:  "?state=SOMETHING",
			downstream: func(ctx context.Context, userID int64, state string, from, size int64) ([]byte, int, error) {
				t.Fatal("downstream must not be called")
				return nil, 0, nil
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"message":"Unknown state: SOMETHING"}`,
		},
		{
			name:   "err. missing user header",
			userID: "",
			query:  "",
			downstream: func(ctx context.Context, userID int64, state string, from, size int64) ([]byte, int, error) {
				t.Fatal("downstream must not be called")
				return nil, 0, nil
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "err. negative from is rejected",
			userID: "2",
			query:  "?from=-1",
			downstream: func(ctx context.Context, userID int64, state string, from, size int64) ([]byte, int, error) {
				t.Fatal("downstream must not be called")
				return nil, 0, nil
			},
			expectedCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc := newFakeBookingService()
			svc.listOfBooker = tt.downstream
			h := handler.NewWithServices(nil, nil, svc, nil, zap.NewNop())

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/bookings", h.ListBookingsOfBooker, auth.Middleware)

			r := httptest.NewRequest(http.MethodGet, "/bookings"+tt.query, http.NoBody)
			if tt.userID != "" {
				r.Header.Set(auth.UserIDHeader, tt.userID)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedBody != "" {
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_CreateBooking_PastDates(t *testing.T) {
	t.Parallel()
	svc := newFakeBookingService()
	svc.create = func(ctx context.Context, userID int64, request model.CreateBookingRequest) ([]byte, int, error) {
		t.Fatal("downstream must not be called")
		return nil, 0, nil
	}
	h := handler.NewWithServices(nil, nil, svc, nil, zap.NewNop())

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	e.POST("/bookings", h.CreateBooking, auth.Middleware)

	body := `{"itemId":7,"start":"2020-01-01T10:00:00Z","end":"2020-01-02T10:00:00Z"}`
	r := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	r.Header.Set(auth.UserIDHeader, "2")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
