package http

import (
	"net/http"

	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	kindUnauthenticated  = "unauthenticated"
	kindDuplicateRequest = "duplicate_request"
	kindBadRequest       = "bad_request"
)

var statusByKind = map[errs.Kind]int{
	errs.KindInvalidCart:          http.StatusBadRequest,
	errs.KindInvalidArgument:      http.StatusBadRequest,
	errs.KindForbidden:            http.StatusForbidden,
	errs.KindNotFound:             http.StatusNotFound,
	errs.KindStoreNotFound:        http.StatusNotFound,
	errs.KindSellerNotFound:       http.StatusNotFound,
	errs.KindInvalidState:         http.StatusConflict,
	errs.KindUpstreamNotification: http.StatusBadGateway,
	errs.KindInternal:             http.StatusInternalServerError,
}

// writeError maps err onto its kind. Internal errors are logged and answered with
// a generic message.
func (s *Server) writeError(c echo.Context, err error) error {
	kind := errs.KindOf(err)
	code, ok := statusByKind[kind]
	if !ok {
		code = http.StatusInternalServerError
	}

	message := err.Error()
	if kind == errs.KindInternal {
		s.logger.Error("request failed", "method", c.Request().Method, "path", c.Path(), "err", err)
		message = "internal error"
	}

	return c.JSON(code, Error{Code: code, Kind: string(kind), Message: message})
}

func writeKind(c echo.Context, code int, kind, message string) error {
	return c.JSON(code, Error{Code: code, Kind: kind, Message: message})
}
