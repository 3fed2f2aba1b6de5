package http

import (
	"net/http"
	"strconv"

	ucForm "ministry-budget-api/internal/usecase/form"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"
)

type FormHandler struct{ uc *ucForm.Usecase }

func NewFormHandler(uc *ucForm.Usecase) *FormHandler { return &FormHandler{uc: uc} }

type createFormReq struct {
	MinistryID uint64         `json:"ministry_id" validate:"required"`
	Sections   datatypes.JSON `json:"sections"`
}

type updateFormReq struct {
	Sections datatypes.JSON `json:"sections" validate:"required"`
}

func (h *FormHandler) CreateForm(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	var req createFormReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), ucForm.CreateInput{
		MinistryID: req.MinistryID,
		Sections:   req.Sections,
	}, actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *FormHandler) GetForm(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	dto, err := h.uc.Get(c.Request().Context(), id, actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *FormHandler) ListForms(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	dtos, err := h.uc.List(c.Request().Context(), actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *FormHandler) UpdateForm(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	var req updateFormReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Update(c.Request().Context(), ucForm.UpdateInput{FormID: id, Sections: req.Sections}, actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *FormHandler) AmendForm(c echo.Context) error {
	actor, err := requireActor(c)
	if err != nil {
		return err
	}
	id, err := paramID(c, "id")
	if err != nil {
		return err
	}
	dto, err := h.uc.Amend(c.Request().Context(), id, actor)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// NextNumber previews the next form number; defaults to the current year.
func (h *FormHandler) NextNumber(c echo.Context) error {
	if _, err := requireActor(c); err != nil {
		return err
	}
	year := 0
	if v := c.QueryParam("year"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid year query param"})
		}
		year = n
	}
	number, err := h.uc.NextNumber(c.Request().Context(), year)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"form_number": number})
}
