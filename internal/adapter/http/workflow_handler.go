package http

import (
	"net/http"

	"ministry-budget-api/internal/usecase/workflow"

	"github.com/labstack/echo/v4"
)

type WorkflowHandler struct{ uc *workflow.Usecase }

func NewWorkflowHandler(uc *workflow.Usecase) *WorkflowHandler { return &WorkflowHandler{uc: uc} }

type decideReq struct {
	Action   string `json:"action" validate:"required,oneof=approve reject"`
	Comments string `json:"comments"`
}

func (h *WorkflowHandler) SubmitForm(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	dto, err := h.uc.Submit(c.Request().Context(), id, actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *WorkflowHandler) DecideForm(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req decideReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Decide(c.Request().Context(), workflow.DecideInput{
		FormID:   id,
		Action:   req.Action,
		Comments: req.Comments,
	}, actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// CanEdit surfaces the permission evaluator's decision, reason included,
// so the UI can explain why editing is blocked.
func (h *WorkflowHandler) CanEdit(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	d, err := h.uc.CanEdit(c.Request().Context(), id, actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, d)
}
