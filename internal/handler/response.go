package handler

import (
	"errors"
	"strconv"

	"go-pos-ledger/internal/logger"
	"go-pos-ledger/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const msgInternal = "Something went wrong!"

var (
	ErrInvalidJSON  = apperror.Validation("Invalid JSON")
	ErrInvalidQuery = apperror.Validation("Invalid query parameters")
)

// statusOf maps an error kind onto the HTTP status returned to the client
func statusOf(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindValidation, apperror.KindBusinessRule:
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

// fail writes err as a {message} payload. Unclassified errors are logged and
// hidden behind a generic message.
func fail(c *fiber.Ctx, log *logrus.Logger, funcName string, err error) error {
	status := statusOf(err)
	if status == fiber.StatusInternalServerError {
		logger.LogError(log, "handler", funcName, c.Method()+" "+c.Path(), nil, err)
		return c.Status(status).JSON(fiber.Map{"message": msgInternal})
	}
	return c.Status(status).JSON(fiber.Map{"message": err.Error()})
}

func message(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": msg})
}

// parseID reads the :id param. Ids that are not integers match no record.
func parseID(c *fiber.Ctx, notFound error) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, notFound
	}
	return id, nil
}

// parseBody decodes a JSON body into out. An empty body leaves out untouched
// so presence checks report the missing fields.
func parseBody(c *fiber.Ctx, out any) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if err := c.BodyParser(out); err != nil {
		return ErrInvalidJSON
	}
	return nil
}

// ErrorHandler renders errors that escape a handler, including unknown routes
func ErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
		}
		return fail(c, log, "ErrorHandler", err)
	}
}

// Health reports liveness
// GET /api/health
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok", "message": "Server is running"})
}
