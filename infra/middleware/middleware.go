package middleware

import (
	"net/http"
	"strings"

	"paynotify/infra/token"

	"github.com/labstack/echo/v4"
)

func CheckAuthorization(maker token.Maker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {

			bearerToken := c.Request().Header.Get("Authorization")
			tokenStr := strings.Replace(bearerToken, "Bearer ", "", 1)

			tokenPayload, err := maker.VerifyToken(tokenStr)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, err.Error())
			}
			c.Set("token_id", tokenPayload.ID)
			c.Set("token_subject", tokenPayload.Subject)
			c.Set("token_expiry_at", tokenPayload.ExpiredAt)

			return next(c)
		}
	}
}
