package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/validador-doi/internal/application/document"
	"github.com/jhoicas/validador-doi/internal/application/dto"
	"github.com/jhoicas/validador-doi/internal/domain"
)

// DOIHandler maneja las peticiones HTTP del catálogo de documentos de identidad.
type DOIHandler struct {
	uc *document.UseCase
}

// NewDOIHandler construye el handler.
func NewDOIHandler(uc *document.UseCase) *DOIHandler {
	return &DOIHandler{uc: uc}
}

// ListTypes GET /api/doi/types
func (h *DOIHandler) ListTypes(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListTypes())
}

// GetType GET /api/doi/types/:type
func (h *DOIHandler) GetType(c *fiber.Ctx) error {
	typ, err := h.uc.GetType(c.Params("type"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(typ)
}

// ListContexts GET /api/doi/contexts
func (h *DOIHandler) ListContexts(c *fiber.Ctx) error {
	return c.JSON(h.uc.ListContexts())
}

// ListSuitableTypes GET /api/doi/contexts/:context/types
func (h *DOIHandler) ListSuitableTypes(c *fiber.Ctx) error {
	res, err := h.uc.ListSuitableTypes(c.Params("context"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// Sanitize POST /api/doi/sanitize
func (h *DOIHandler) Sanitize(c *fiber.Ctx) error {
	var in dto.SanitizeRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.uc.Sanitize(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// Validate POST /api/doi/validate
func (h *DOIHandler) Validate(c *fiber.Ctx) error {
	var in dto.ValidateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.uc.Validate(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// ValidateBatch POST /api/doi/validate/batch
func (h *DOIHandler) ValidateBatch(c *fiber.Ctx) error {
	var in dto.BatchValidateRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.uc.ValidateBatch(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

// ComputeCheckDigit POST /api/ruc/check-digit
func (h *DOIHandler) ComputeCheckDigit(c *fiber.Ctx) error {
	var in dto.CheckDigitRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	res, err := h.uc.ComputeCheckDigit(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(res)
}

func invalidBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrBatchTooLarge):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BATCH_TOO_LARGE", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}
