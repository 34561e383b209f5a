package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/practicum/shareit-service/pkg/auth"
	"github.com/practicum/shareit-service/pkg/validate"
	"github.com/practicum/shareit-service/server/internal/errs"
	"github.com/practicum/shareit-service/server/internal/handler"
	"github.com/practicum/shareit-service/server/internal/model"

	service_mocks "github.com/practicum/shareit-service/server/internal/handler/mocks"
)

func TestHandler_CreateUser(t *testing.T) {
	t.Parallel()
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockUserService)

	var tests = []struct {
		name         string
		body         string
		mockBehavior mockBehavior
		response     response
	}{
		{
			name: "ok",
			body: `{"name":"user","email":"user@mail.com"}`,
			mockBehavior: func(r *service_mocks.MockUserService) {
				r.EXPECT().
					CreateUser(gomock.Any(), model.CreateUserRequest{Name: "user", Email: "user@mail.com"}).
					Return(model.User{ID: 1, Name: "user", Email: "user@mail.com"}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"id":1,"name":"user","email":"user@mail.com"}`,
			},
		},
		{
			name:         "err. email is invalid",
			body:         `{"name":"user","email":"not-an-email"}`,
			mockBehavior: func(r *service_mocks.MockUserService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
		{
			name: "err. email conflict",
			body: `{"name":"user","email":"user@mail.com"}`,
			mockBehavior: func(r *service_mocks.MockUserService) {
				r.EXPECT().
					CreateUser(gomock.Any(), gomock.Any()).
					Return(model.User{}, errs.ErrEmailAlreadyInUse)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"email is already in use"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockUserService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, nil, nil, nil, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.POST("/users", h.CreateUser)

			r := httptest.NewRequest(http.MethodPost, "/users", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}

func TestHandler_ListBookingsOfBooker(t *testing.T) {
	t.Parallel()
	type input struct {
		userID string
		query  string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookingService)

	start := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	var tests = []struct {
		name         string
		input        input
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:  "ok. state defaults to ALL",
			input: input{userID: "2", query: ""},
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					ListBookingsOfBooker(gomock.Any(), int64(2), model.StateAll, int64(0), int64(20)).
					Return([]model.BookingDetails{
						{
							ID:     5,
							Start:  start,
							End:    start.Add(24 * time.Hour),
							Status: model.StatusWaiting,
							Item:   model.ItemBrief{ID: 7, Name: "drill"},
							Booker: model.UserBrief{ID: 2, Name: "user"},
						},
					}, nil)
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"id":5,"start":"2024-05-01T12:00:00Z","end":"2024-05-02T12:00:00Z","status":"WAITING","item":{"id":7,"name":"drill"},"booker":{"id":2,"name":"user"}}]`,
			},
		},
		{
			name:  "err. unknown state",
			input: input{userID: "2", query: "?state=SOMETHING"},
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					ListBookingsOfBooker(gomock.Any(), int64(2), "SOMETHING", int64(0), int64(20)).
					Return(nil, errs.ErrUnsupportedState)
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"Unknown state: UNSUPPORTED_STATUS"}`,
			},
		},
		{
			name:         "err. missing user header",
			input:        input{userID: "", query: ""},
			mockBehavior: func(r *service_mocks.MockBookingService) {},
			response: response{
				expectedCode: http.StatusBadRequest,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(nil, nil, svc, nil, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/bookings", h.ListBookingsOfBooker, auth.Middleware)

			r := httptest.NewRequest(http.MethodGet, "/bookings"+tt.input.query, http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.input.userID != "" {
				r.Header.Set(auth.UserIDHeader, tt.input.userID)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			if tt.response.expectedBody != "" {
				require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
			}
		})
	}
}
