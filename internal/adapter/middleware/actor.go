// Package middleware carries the request-scoped concerns of the HTTP
// layer: actor resolution and idempotent replay of mutating requests.
package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	httpadp "ministry-budget-api/internal/adapter/http"
	"ministry-budget-api/internal/domain/ministry"
	"ministry-budget-api/internal/domain/user"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

// ActorHeader names the header carrying the authenticated user id. Token
// verification happens upstream (gateway); by the time a request reaches
// this service the id is trusted.
const ActorHeader = "X-Actor-Id"

// Actor loads the acting user and, for pillars, the ministries they
// oversee, and stores the resolved identity on the request context.
func Actor(users user.Repository, ministries ministry.Repository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get(ActorHeader))
			if raw == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing "+ActorHeader)
			}
			id, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || id == 0 {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid "+ActorHeader)
			}

			ctx := c.Request().Context()
			u, err := users.GetByID(ctx, id)
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return echo.NewHTTPError(http.StatusUnauthorized, "unknown actor")
				}
				return err
			}
			if !u.Active {
				return echo.NewHTTPError(http.StatusUnauthorized, "account is inactive")
			}

			actor := user.Actor{ID: u.ID, Role: u.Role}
			if u.Role == user.RolePillar {
				ms, err := ministries.ListByPillar(ctx, u.ID)
				if err != nil {
					return err
				}
				for _, m := range ms {
					actor.MinistryIDs = append(actor.MinistryIDs, m.ID)
				}
			}

			httpadp.SetActor(c, actor)
			return next(c)
		}
	}
}
