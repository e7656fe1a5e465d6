package response

import "github.com/gofiber/fiber/v3"

// Envelope is the wire shape every endpoint returns: exactly one of Data or
// Error is set, and Metadata carries request-scoped extras such as result
// counts or pagination.
type Envelope struct {
	Success  bool           `json:"success"`
	Data     any            `json:"data,omitempty"`
	Error    *ErrorBody     `json:"error,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInternal     = "INTERNAL_ERROR"
)

func Success(c fiber.Ctx, status int, data any) error {
	return c.Status(normalizeStatus(status)).JSON(Envelope{Success: true, Data: data})
}

func SuccessWithMetadata(c fiber.Ctx, status int, data any, metadata map[string]any) error {
	return c.Status(normalizeStatus(status)).JSON(Envelope{Success: true, Data: data, Metadata: metadata})
}

func Error(c fiber.Ctx, status int, message string, details any) error {
	st := normalizeStatus(status)
	return c.Status(st).JSON(Envelope{
		Success: false,
		Error:   &ErrorBody{Code: codeForStatus(st), Message: message, Details: details},
	})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func codeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity:
		return CodeBadRequest
	case fiber.StatusUnauthorized:
		return CodeUnauthorized
	case fiber.StatusForbidden:
		return CodeForbidden
	case fiber.StatusNotFound:
		return CodeNotFound
	case fiber.StatusConflict:
		return CodeConflict
	default:
		return CodeInternal
	}
}
