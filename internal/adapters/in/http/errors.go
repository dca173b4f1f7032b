package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"fastfeet/internal/core/application/validation"
	"fastfeet/internal/generated/servers"
	"fastfeet/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const internalErrorMessage = "Internal server error"

// bindPayload decodes the JSON object in the request body and checks it
// against rules. Numbers are kept as json.Number so integer rules can tell
// 3 from 3.5. An empty body is an empty object.
func bindPayload(ctx echo.Context, rules validation.Rules) (validation.Payload, error) {
	body := map[string]any{}

	decoder := json.NewDecoder(ctx.Request().Body)
	decoder.UseNumber()
	if err := decoder.Decode(&body); err != nil && !errors.Is(err, io.EOF) {
		return validation.Payload{}, errs.NewValueIsInvalidErrorWithCause("request body must be a JSON object", err)
	}

	payload, fieldErr := validation.Validate(body, rules)
	if fieldErr != nil {
		return validation.Payload{}, fieldErr
	}
	return payload, nil
}

// statusFor maps an application error to its HTTP status. Lifecycle
// violations get transitionStatus because the endpoints disagree on it.
func statusFor(err error, transitionStatus int) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrentModification):
		return http.StatusConflict
	case errors.Is(err, errs.ErrInvalidTransition):
		return transitionStatus
	case errors.Is(err, errs.ErrReferenceNotFound),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(ctx echo.Context, err error, transitionStatus int) error {
	status := statusFor(err, transitionStatus)

	body := servers.Error{Error: err.Error()}

	var fieldErr *validation.FieldError
	if errors.As(err, &fieldErr) {
		body.Field = &fieldErr.Field
		body.Constraint = &fieldErr.Constraint
	}

	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		body = servers.Error{Error: internalErrorMessage}
	}

	return ctx.JSON(status, body)
}

// ErrorHandler renders errors that never reached a handler, such as
// unknown routes or malformed path parameters, in the API error shape.
func ErrorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := internalErrorMessage

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		status = httpErr.Code
		if m, ok := httpErr.Message.(string); ok {
			message = m
		} else {
			message = http.StatusText(status)
		}
	}

	if ctx.Request().Method == http.MethodHead {
		_ = ctx.NoContent(status)
		return
	}
	_ = ctx.JSON(status, servers.Error{Error: message})
}
