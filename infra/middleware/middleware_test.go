package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"paynotify/infra/token"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestCheckAuthorization(t *testing.T) {
	maker, err := token.NewPasetoMaker("01234567890123456789012345678901")
	require.NoError(t, err)

	wrapped := CheckAuthorization(maker)(func(c echo.Context) error {
		return c.String(http.StatusOK, c.Get("token_subject").(string))
	})

	e := echo.New()

	t.Run("valid token passes through", func(t *testing.T) {
		created, err := maker.CreateToken("storefront", time.Minute)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/orders/1042/payment", nil)
		req.Header.Set("Authorization", "Bearer "+created)
		rec := httptest.NewRecorder()

		require.NoError(t, wrapped(e.NewContext(req, rec)))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, "storefront", rec.Body.String())
	})

	t.Run("garbage token is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders/1042/payment", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()

		require.NoError(t, wrapped(e.NewContext(req, rec)))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing header is unauthorized", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/orders/1042/payment", nil)
		rec := httptest.NewRecorder()

		require.NoError(t, wrapped(e.NewContext(req, rec)))
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
