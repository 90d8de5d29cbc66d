package http

import (
	"net/http"
	"strconv"
	"time"

	"marketplace/internal/core/domain/model/actor"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	HeaderActorID   = "X-Actor-ID"
	HeaderActorRole = "X-Actor-Role"

	actorContextKey = "actor"
)

// authenticate trusts the identity headers set by the gateway. A missing or
// malformed id is 401. An unrecognised role still authenticates as actor.Unknown,
// which every operation forbids.
func authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		raw := c.Request().Header.Get(HeaderActorID)
		if raw == "" {
			return writeKind(c, http.StatusUnauthorized, kindUnauthenticated, HeaderActorID+" header is required")
		}
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeKind(c, http.StatusUnauthorized, kindUnauthenticated, HeaderActorID+" header is not a valid id")
		}

		a, err := actor.NewActor(id, actor.ParseRole(c.Request().Header.Get(HeaderActorRole)))
		if err != nil {
			return writeKind(c, http.StatusUnauthorized, kindUnauthenticated, err.Error())
		}

		c.Set(actorContextKey, a)
		return next(c)
	}
}

// actorFrom returns the zero Actor outside authenticated routes; the access
// policy rejects it as unauthenticated.
func actorFrom(c echo.Context) actor.Actor {
	a, _ := c.Get(actorContextKey).(actor.Actor)
	return a
}

// observe records request count and latency under the route template.
func (s *Server) observe(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		handler := c.Path()
		if handler == "" {
			handler = "unmatched"
		}
		status := strconv.Itoa(c.Response().Status)
		s.metrics.Requests.WithLabelValues(handler, status).Inc()
		s.metrics.LatencyMS.WithLabelValues(handler).Observe(float64(time.Since(start).Milliseconds()))
		return nil
	}
}
