package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/practicum/shareit-service/pkg/auth"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedID   int64
	}{
		{"ok", "42", http.StatusOK, 42},
		{"missing header", "", http.StatusBadRequest, 0},
		{"not a number", "abc", http.StatusBadRequest, 0},
		{"zero id", "0", http.StatusBadRequest, 0},
		{"negative id", "-5", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e := echo.New()
			e.GET("/", func(c echo.Context) error {
				id, err := auth.GetUserID(c)
				require.NoError(t, err)
				require.Equal(t, tt.expectedID, id)
				return c.NoContent(http.StatusOK)
			}, auth.Middleware)

			r := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			if tt.header != "" {
				r.Header.Set(auth.UserIDHeader, tt.header)
			}
			w := httptest.NewRecorder()
			e.ServeHTTP(w, r)

			require.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
