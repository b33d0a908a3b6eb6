package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sushiymas/inventario-api/internal/application/notification"
)

// NotificationHandler expone la cola de notificaciones transitorias que la
// UI muestra y descarta.
type NotificationHandler struct {
	sink *notification.Sink
}

// NewNotificationHandler construye el handler.
func NewNotificationHandler(sink *notification.Sink) *NotificationHandler {
	return &NotificationHandler{sink: sink}
}

// List godoc
// @Summary      Notificaciones visibles
// @Tags         notifications
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  notification.Entry
// @Router       /api/notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.sink.Active())
}
