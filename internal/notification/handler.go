package notification

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewNotificationHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{
		InterfaceService,
	}
}

// PagBankWebhookHandler godoc
// @Summary Processar Webhook do PagBank
// @Description Recebe e processa as notificações de cobrança enviadas pelo processador de pagamento.
// @Tags Pagamentos
// @Accept json
// @Produce json
// @Success 200 {object} Result "Notificação processada"
// @Failure 400 {object} Result "Notificação rejeitada"
// @Router /webhook/pagbank [post]
func (h *Handler) PagBankWebhookHandler(c echo.Context) error {
	rawBody, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, Result{Message: "invalid request body"})
	}

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	result := h.InterfaceService.ProcessNotification(c.Request().Context(), contentType, rawBody)

	return c.JSON(result.StatusCode, result)
}
