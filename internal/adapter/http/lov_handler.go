package http

import (
	"net/http"

	ucLov "ministry-budget-api/internal/usecase/lov"

	"github.com/labstack/echo/v4"
)

// LOVHandler serves dropdown lookups. These sit inside the authenticated
// API group but are not admin-gated: leaders need the active-ministries
// list when creating a form.
type LOVHandler struct{ uc *ucLov.Usecase }

func NewLOVHandler(uc *ucLov.Usecase) *LOVHandler { return &LOVHandler{uc: uc} }

func (h *LOVHandler) Ministries(c echo.Context) error {
	if _, err := requireActor(c); err != nil {
		return err
	}
	opts, err := h.uc.Ministries(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, opts)
}

func (h *LOVHandler) EventTypes(c echo.Context) error {
	if _, err := requireActor(c); err != nil {
		return err
	}
	opts, err := h.uc.EventTypes(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, opts)
}
