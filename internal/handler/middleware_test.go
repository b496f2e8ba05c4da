package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/bookswap/exchange-service/pkg/auth"
)

func TestAuthContext(t *testing.T) {
	t.Parallel()

	e := echo.New()
	next := func(c echo.Context) error {
		user, err := auth.UserName(c.Request().Context())
		if err != nil {
			return err
		}
		return c.String(http.StatusOK, user)
	}

	tests := []struct {
		name         string
		userName     string
		expectedCode int
		expectedBody string
	}{
		{
			name:         "ok",
			userName:     "ivan",
			expectedCode: http.StatusOK,
			expectedBody: "ivan",
		},
		{
			name:         "missing header",
			userName:     "",
			expectedCode: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/api/v1/books", http.NoBody)
			if tt.userName != "" {
				req.Header.Set(auth.XUserNameHeader, tt.userName)
			}
			w := httptest.NewRecorder()
			c := e.NewContext(req, w)

			err := authContext(next)(c)
			if tt.expectedCode == http.StatusOK {
				require.NoError(t, err)
				require.Equal(t, tt.expectedCode, c.Response().Status)
				require.Equal(t, tt.expectedBody, strings.Trim(w.Body.String(), "\n"))
				return
			}
			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			require.Equal(t, tt.expectedCode, he.Code)
		})
	}
}
