// Package response renders the wire contract: every business outcome is a
// well-formed JSON object with a success flag. Failures carry exactly one
// human-readable message and never any internal detail.
package response

import "github.com/gofiber/fiber/v3"

const (
	MessageBadRequest          = "Bad request"
	MessageInvalidCredentials  = "Invalid username or password"
	MessageDuplicateAccount    = "Username or email already exists"
	MessageInternalServerError = "Something went wrong. Please try again."
)

type userEnvelope struct {
	Success bool `json:"success"`
	User    any  `json:"user"`
}

type okEnvelope struct {
	Success bool `json:"success"`
}

type failureEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// User responds with {"success":true,"user":...}.
func User(c fiber.Ctx, status int, user any) error {
	return c.Status(normalizeStatus(status)).JSON(userEnvelope{Success: true, User: user})
}

// OK responds with a bare {"success":true}.
func OK(c fiber.Ctx, status int) error {
	return c.Status(normalizeStatus(status)).JSON(okEnvelope{Success: true})
}

// Failure responds with {"success":false,"message":...}.
func Failure(c fiber.Ctx, status int, message string) error {
	st := normalizeStatus(status)
	if message == "" {
		message = DefaultMessageForStatus(st)
	}
	return c.Status(st).JSON(failureEnvelope{Success: false, Message: message})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageInvalidCredentials
	case fiber.StatusConflict:
		return MessageDuplicateAccount
	default:
		return MessageInternalServerError
	}
}
