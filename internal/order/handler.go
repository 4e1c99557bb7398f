package order

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Handler struct {
	InterfaceService InterfaceService
}

func NewOrderHandler(InterfaceService InterfaceService) *Handler {
	return &Handler{
		InterfaceService,
	}
}

// GetPaymentStatusHandler godoc
// @Summary Obter Status de Pagamento
// @Description Recupera o status de pagamento de um pedido.
// @Tags Pedidos
// @Accept json
// @Produce json
// @Param id path string true "ID do Pedido"
// @Success 200 {object} PaymentStatusResponse "Status de Pagamento"
// @Failure 404 {string} string "Pedido não encontrado"
// @Failure 500 {string} string "Erro Interno do Servidor"
// @Router /orders/{id}/payment [get]
// @Security ApiKeyAuth
func (h *Handler) GetPaymentStatusHandler(c echo.Context) error {
	id := c.Param("id")

	result, err := h.InterfaceService.GetPaymentStatusService(c.Request().Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		return c.JSON(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, result)
}
