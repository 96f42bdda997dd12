package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"

	"matchmaker/internal/dataset"
	"matchmaker/internal/lookup"
	"matchmaker/internal/metrics"
	"matchmaker/internal/models"
	"matchmaker/internal/validation"
)

// CheckEmailHandler answers whether an email is in the record dataset.
type CheckEmailHandler struct {
	lookup    *lookup.Service
	validator *validation.Validator
}

// NewCheckEmailHandler creates a new API check-email handler.
func NewCheckEmailHandler(svc *lookup.Service, v *validation.Validator) *CheckEmailHandler {
	if v == nil {
		v = validation.New()
	}
	return &CheckEmailHandler{lookup: svc, validator: v}
}

// Check looks up the email in the request body.
// 200 when found, 404 when not found, 400 for a missing or malformed email,
// 500 when the dataset cannot be read.
func (h *CheckEmailHandler) Check(c fiber.Ctx) error {
	var req models.LookupRequest
	err := c.Bind().Body(&req)
	if err == nil {
		err = h.validator.Validate(&req)
	}
	if err != nil {
		metrics.RecordLookup(models.OutcomeInvalid)
		if !validation.IsValidationError(err) {
			slog.Debug("undecodable lookup request",
				"request_id", requestid.FromContext(c),
				"error", err,
			)
		}
		return jsonError(c, fiber.StatusBadRequest, validation.Message(err))
	}

	start := time.Now()
	found, err := h.lookup.Lookup(c.Context(), req.Email)
	if src := h.lookup.Source(); src != nil {
		metrics.ObserveLookupDuration(src.Name(), time.Since(start))
	}

	if err != nil {
		metrics.RecordLookup(models.OutcomeError)
		slog.Error("email lookup failed",
			"request_id", requestid.FromContext(c),
			"error", err,
		)
		if errors.Is(err, dataset.ErrUnavailable) {
			return jsonError(c, fiber.StatusInternalServerError, "dataset unavailable")
		}
		return jsonError(c, fiber.StatusInternalServerError, "failed to check email")
	}

	if !found {
		metrics.RecordLookup(models.OutcomeNotFound)
		return jsonSuccess(c, fiber.StatusNotFound, false)
	}

	metrics.RecordLookup(models.OutcomeFound)
	return jsonSuccess(c, fiber.StatusOK, true)
}

// MethodNotAllowed rejects every verb other than POST and names the allowed one.
func (h *CheckEmailHandler) MethodNotAllowed(c fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, fiber.MethodPost)
	return jsonError(c, fiber.StatusMethodNotAllowed, "Method "+c.Method()+" Not Allowed")
}
