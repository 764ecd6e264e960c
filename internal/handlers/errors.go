package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"arenaserver/internal/apperrors"
	"arenaserver/internal/metrics"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	ErrorMessage string `json:"errorMessage"`
}

// ErrorHandler is the fiber error handler. It is the only place that writes
// the failure envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		kind := apperrors.KindForStatus(fiberErr.Code)
		metrics.RecordFailure(kind)
		log.Printf("[%v] %s %s -> %d (%s): %v", c.Locals("requestid"), c.Method(), c.Path(), fiberErr.Code, kind, err)
		return c.Status(fiberErr.Code).JSON(ErrorResponse{ErrorMessage: fiberErr.Message})
	}

	status, message := apperrors.Classify(err)
	kind := apperrors.KindOf(err)
	metrics.RecordFailure(kind)
	log.Printf("[%v] %s %s -> %d (%s): %v", c.Locals("requestid"), c.Method(), c.Path(), status, kind, err)
	return c.Status(status).JSON(ErrorResponse{ErrorMessage: message})
}

// parseBody decodes a JSON request body into out. A missing body leaves out at
// its zero value so that validation rejects it. A body not declared as JSON and
// unparseable JSON are malformed payloads; a value of the wrong JSON type is a
// validation failure.
func parseBody(c *fiber.Ctx, out interface{}) error {
	if len(c.Body()) == 0 {
		return nil
	}
	if !c.Is("json") {
		return apperrors.MalformedPayload(fmt.Errorf("unsupported content type %q", c.Get(fiber.HeaderContentType)))
	}

	if err := c.BodyParser(out); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return apperrors.Validation(err)
		}
		return apperrors.MalformedPayload(err)
	}
	return nil
}
