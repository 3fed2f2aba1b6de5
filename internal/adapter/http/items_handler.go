package http

import (
	"net/http"
	"time"

	ucForm "ministry-budget-api/internal/usecase/form"

	"github.com/labstack/echo/v4"
)

type eventReq struct {
	EventDate         *time.Time `json:"event_date"`
	EventName         string     `json:"event_name"`
	EventType         string     `json:"event_type"`
	Purpose           string     `json:"purpose"`
	Description       string     `json:"description"`
	EstimatedExpenses float64    `json:"estimated_expenses" validate:"gte=0"`
	Notes             string     `json:"notes"`
}

type goalReq struct {
	Goal          string     `json:"goal" validate:"required"`
	MeasureTarget string     `json:"measure_target"`
	DueDate       *time.Time `json:"due_date"`
}

func (r eventReq) toInput() ucForm.EventInput {
	return ucForm.EventInput{
		EventDate:         r.EventDate,
		EventName:         r.EventName,
		EventType:         r.EventType,
		Purpose:           r.Purpose,
		Description:       r.Description,
		EstimatedExpenses: r.EstimatedExpenses,
		Notes:             r.Notes,
	}
}

func (r goalReq) toInput() ucForm.GoalInput {
	return ucForm.GoalInput{Goal: r.Goal, MeasureTarget: r.MeasureTarget, DueDate: r.DueDate}
}

func (h *FormHandler) ListEvents(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	events, err := h.uc.ListEvents(c.Request().Context(), id, actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, events)
}

func (h *FormHandler) CreateEvent(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	e, err := h.uc.AddEvent(c.Request().Context(), id, req.toInput(), actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, e)
}

func (h *FormHandler) UpdateEvent(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	eventID, err := paramID(c, "eventId")
	if err != nil {
		return err
	}
	var req eventReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	e, err := h.uc.UpdateEvent(c.Request().Context(), id, eventID, req.toInput(), actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, e)
}

func (h *FormHandler) DeleteEvent(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	eventID, err := paramID(c, "eventId")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteEvent(c.Request().Context(), id, eventID, actor); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "event deleted"})
}

func (h *FormHandler) ListGoals(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	goals, err := h.uc.ListGoals(c.Request().Context(), id, actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, goals)
}

func (h *FormHandler) CreateGoal(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req goalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	g, err := h.uc.AddGoal(c.Request().Context(), id, req.toInput(), actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, g)
}

func (h *FormHandler) UpdateGoal(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	goalID, err := paramID(c, "goalId")
	if err != nil {
		return err
	}
	var req goalReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	g, err := h.uc.UpdateGoal(c.Request().Context(), id, goalID, req.toInput(), actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, g)
}

func (h *FormHandler) DeleteGoal(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	goalID, err := paramID(c, "goalId")
	if err != nil {
		return err
	}
	if err := h.uc.DeleteGoal(c.Request().Context(), id, goalID, actor); err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "goal deleted"})
}
