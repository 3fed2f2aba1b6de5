package http

import (
	"net/http"
	"strings"

	ucNotification "ministry-budget-api/internal/usecase/notification"

	"github.com/labstack/echo/v4"
)

type NotificationHandler struct{ uc *ucNotification.Usecase }

func NewNotificationHandler(uc *ucNotification.Usecase) *NotificationHandler {
	return &NotificationHandler{uc: uc}
}

// ListNotifications derives the actor's attention list. The client passes
// its dismissal keys as a comma-separated `dismissed` query param; the
// server keeps no dismissal state.
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var dismissed []string
	if raw := c.QueryParam("dismissed"); raw != "" {
		for _, k := range strings.Split(raw, ",") {
			if k = strings.TrimSpace(k); k != "" {
				dismissed = append(dismissed, k)
			}
		}
	}
	ns, err := h.uc.List(c.Request().Context(), actor, dismissed)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, ns)
}
