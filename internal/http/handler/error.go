package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"docdesk/internal/apperr"
	"docdesk/internal/http/middleware"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Detail carries backend diagnostics such as a script's stderr.
	Detail   string `json:"detail,omitempty"`
	ExitCode *int   `json:"exit_code,omitempty"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

var kindStatus = map[apperr.Kind]struct {
	status int
	code   string
}{
	apperr.KindNotFound:            {fiber.StatusNotFound, "NOT_FOUND"},
	apperr.KindInvalidFormat:       {fiber.StatusUnprocessableEntity, "INVALID_FORMAT"},
	apperr.KindToolUnavailable:     {fiber.StatusServiceUnavailable, "TOOL_UNAVAILABLE"},
	apperr.KindExecutionFailure:    {fiber.StatusBadGateway, "EXECUTION_FAILURE"},
	apperr.KindSerialization:       {fiber.StatusBadRequest, "SERIALIZATION_ERROR"},
	apperr.KindConstraintViolation: {fiber.StatusConflict, "CONSTRAINT_VIOLATION"},
}

// writeAppError maps a classified error onto a status code. Unclassified
// errors are reported as internal without their text.
func writeAppError(c *fiber.Ctx, err error) error {
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
	m, ok := kindStatus[ae.Kind]
	if !ok {
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}

	env := errorEnvelope{Code: m.code, Message: ae.Message, Detail: ae.Detail}
	if ae.Kind == apperr.KindExecutionFailure {
		code := ae.ExitCode
		env.ExitCode = &code
	}
	return c.Status(m.status).JSON(errorPayload{RequestID: requestIDFromCtx(c), Error: env})
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		} else if apperr.KindOf(err) != apperr.KindUnknown {
			return writeAppError(c, err)
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "PAYLOAD_TOO_LARGE", "request body too large")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
