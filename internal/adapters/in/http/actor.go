package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"dentallab/internal/adapters/in/http/api"
	"dentallab/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	HeaderActorID   = "X-Actor-Id"
	HeaderActorRole = "X-Actor-Role"

	actorContextKey = "actor"
	roleClaim       = "role"
)

var (
	ErrIdentityMissing = errors.New("caller identity is missing")
	ErrIdentityInvalid = errors.New("caller identity is invalid")
)

// ActorMiddleware resolves the calling actor for every request. With a secret the actor comes
// from an HS256 bearer token (sub = actor id, role claim); without one it comes from the
// X-Actor-Id and X-Actor-Role headers. Requests without a usable identity get 401.
func ActorMiddleware(jwtSecret string) echo.MiddlewareFunc {
	secret := []byte(jwtSecret)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var (
				actor kernel.Actor
				err   error
			)
			if len(secret) > 0 {
				actor, err = actorFromToken(c.Request(), secret)
			} else {
				actor, err = actorFromHeaders(c.Request())
			}
			if err != nil {
				return c.JSON(http.StatusUnauthorized, api.Error{
					Code:    http.StatusUnauthorized,
					Message: err.Error(),
				})
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

func actorOf(c echo.Context) kernel.Actor {
	actor, _ := c.Get(actorContextKey).(kernel.Actor)
	return actor
}

func actorFromHeaders(r *http.Request) (kernel.Actor, error) {
	id := r.Header.Get(HeaderActorID)
	role := r.Header.Get(HeaderActorRole)
	if id == "" || role == "" {
		return kernel.Actor{}, ErrIdentityMissing
	}
	return newActor(id, role)
}

func actorFromToken(r *http.Request, secret []byte) (kernel.Actor, error) {
	raw, ok := strings.CutPrefix(r.Header.Get(echo.HeaderAuthorization), "Bearer ")
	if !ok || raw == "" {
		return kernel.Actor{}, ErrIdentityMissing
	}

	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", ErrIdentityInvalid, err)
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", ErrIdentityInvalid, err)
	}
	role, _ := claims[roleClaim].(string)
	return newActor(sub, role)
}

func newActor(rawID, rawRole string) (kernel.Actor, error) {
	value, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: actor id %q", ErrIdentityInvalid, rawID)
	}
	id, idErr := kernel.NewID(value)
	role, roleErr := kernel.ParseRole(rawRole)
	if err := errors.Join(idErr, roleErr); err != nil {
		return kernel.Actor{}, fmt.Errorf("%w: %w", ErrIdentityInvalid, err)
	}
	return kernel.NewActor(id, role)
}
