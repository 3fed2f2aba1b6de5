package http

import (
	"errors"
	"net/http"
	"strconv"

	domainForm "ministry-budget-api/internal/domain/form"
	"ministry-budget-api/internal/domain/user"

	"github.com/labstack/echo/v4"
)

// actorContextKey is where the actor middleware stores the resolved
// identity on the echo context.
const actorContextKey = "actor"

func SetActor(c echo.Context, a user.Actor) { c.Set(actorContextKey, a) }

func ActorFrom(c echo.Context) (user.Actor, bool) {
	a, ok := c.Get(actorContextKey).(user.Actor)
	return a, ok
}

func requireActor(c echo.Context) (user.Actor, error) {
	a, ok := ActorFrom(c)
	if !ok {
		return user.Actor{}, echo.NewHTTPError(http.StatusUnauthorized, "no authenticated actor")
	}
	return a, nil
}

func paramID(c echo.Context, name string) (uint64, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name+" path param")
	}
	return id, nil
}

// fail maps domain errors onto HTTP status codes. The error message is
// passed through so the caller sees the specific denial reason.
func fail(c echo.Context, err error) error {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, domainForm.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, domainForm.ErrForbidden):
		code = http.StatusForbidden
	case errors.Is(err, domainForm.ErrInvalidStage):
		code = http.StatusConflict
	case errors.Is(err, domainForm.ErrValidation):
		code = http.StatusBadRequest
	case errors.Is(err, domainForm.ErrConflict):
		code = http.StatusConflict
	}
	return c.JSON(code, ErrorResponse{Error: err.Error()})
}
