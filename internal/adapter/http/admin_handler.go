package http

import (
	"errors"
	"net/http"

	"ministry-budget-api/internal/domain/user"
	ucAdmin "ministry-budget-api/internal/usecase/admin"

	"github.com/labstack/echo/v4"
)

type AdminHandler struct{ uc *ucAdmin.Usecase }

func NewAdminHandler(uc *ucAdmin.Usecase) *AdminHandler { return &AdminHandler{uc: uc} }

// RequireAdmin gates the /api/admin group.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := ActorFrom(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "no authenticated actor"})
		}
		if actor.Role != user.RoleAdmin {
			return c.JSON(http.StatusForbidden, ErrorResponse{Error: "admin role required"})
		}
		return next(c)
	}
}

func (h *AdminHandler) Stats(c echo.Context) error {
	dto, err := h.uc.Stats(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// FormAudit serves the immutable trail of one form.
func (h *AdminHandler) FormAudit(c echo.Context) error {
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	entries, err := h.uc.FormAudit(c.Request().Context(), id)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, entries)
}

// ---- ministries ----

type ministryReq struct {
	Name        string  `json:"name" validate:"required"`
	PillarID    *uint64 `json:"pillar_id"`
	Description string  `json:"description"`
	Active      *bool   `json:"active"`
}

func (h *AdminHandler) ListMinistries(c echo.Context) error {
	ms, err := h.uc.ListMinistries(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, ms)
}

func (h *AdminHandler) CreateMinistry(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req ministryReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	m, err := h.uc.CreateMinistry(c.Request().Context(), ucAdmin.MinistryInput{
		Name:        req.Name,
		PillarID:    req.PillarID,
		Description: req.Description,
		Active:      req.Active,
	}, actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, m)
}

func (h *AdminHandler) UpdateMinistry(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req ministryReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	m, err := h.uc.UpdateMinistry(c.Request().Context(), id, ucAdmin.MinistryInput{
		Name:        req.Name,
		PillarID:    req.PillarID,
		Description: req.Description,
		Active:      req.Active,
	}, actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, m)
}

func (h *AdminHandler) DeleteMinistry(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteMinistry(c.Request().Context(), id, actor); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "ministry deleted"})
}

// ---- event types ----

type eventTypeReq struct {
	Name   string `json:"name" validate:"required"`
	Active *bool  `json:"active"`
}

func (h *AdminHandler) ListEventTypes(c echo.Context) error {
	ets, err := h.uc.ListEventTypes(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, ets)
}

func (h *AdminHandler) CreateEventType(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req eventTypeReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	et, err := h.uc.CreateEventType(c.Request().Context(), ucAdmin.EventTypeInput{Name: req.Name, Active: req.Active}, actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, et)
}

func (h *AdminHandler) UpdateEventType(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req eventTypeReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	et, err := h.uc.UpdateEventType(c.Request().Context(), id, ucAdmin.EventTypeInput{Name: req.Name, Active: req.Active}, actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, et)
}

func (h *AdminHandler) DeleteEventType(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteEventType(c.Request().Context(), id, actor); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "event type deleted"})
}

// ---- users ----

type userReq struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,oneof=ministry_leader pillar pastor admin"`
	PIN      string `json:"pin" validate:"omitempty,pin4"`
	Active   *bool  `json:"active"`
}

type pinReq struct {
	PIN string `json:"pin" validate:"required,pin4"`
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	us, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, us)
}

func (h *AdminHandler) ListPillars(c echo.Context) error {
	us, err := h.uc.ListPillars(c.Request().Context())
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, us)
}

func (h *AdminHandler) CreateUser(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req userReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if req.PIN == "" {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: "PIN", Message: "is required"}},
		})
	}
	usr, err := h.uc.CreateUser(c.Request().Context(), ucAdmin.UserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     user.Role(req.Role),
		PIN:      req.PIN,
		Active:   req.Active,
	}, actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, usr)
}

func (h *AdminHandler) UpdateUser(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req userReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	usr, err := h.uc.UpdateUser(c.Request().Context(), id, ucAdmin.UserInput{
		FullName: req.FullName,
		Email:    req.Email,
		Role:     user.Role(req.Role),
		PIN:      req.PIN,
		Active:   req.Active,
	}, actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, usr)
}

func (h *AdminHandler) SetUserPIN(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req pinReq
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.uc.SetUserPIN(c.Request().Context(), id, req.PIN, actor); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "PIN updated"})
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteUser(c.Request().Context(), id, actor); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}

// errResponded signals that the helper already wrote the response; echo
// skips its error handler once the response is committed.
var errResponded = errors.New("response already written")

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if err := c.Validate(req); err != nil {
		if jerr := c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		}); jerr != nil {
			return jerr
		}
		return errResponded
	}
	return nil
}
