package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/notify"
)

// NotificationHandler exposes the active toasts for polling renderers.
type NotificationHandler struct {
	Notices *notify.Center
}

// NewNotificationHandler constructs a NotificationHandler.
func NewNotificationHandler(notices *notify.Center) *NotificationHandler {
	if notices == nil {
		panic("nil notification center passed to NewNotificationHandler")
	}
	return &NotificationHandler{Notices: notices}
}

// GetNotifications handles GET /v1/notifications.  It returns the
// notices that are still within their display window; expired ones are
// dropped on the way out.
func (h *NotificationHandler) GetNotifications(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Notices.Active()})
}
