package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/onboarding-api/internal/application/dto"
	"github.com/jhoicas/onboarding-api/internal/domain"
	"github.com/jhoicas/onboarding-api/pkg/logger"
)

// writeError traduce errores de dominio a respuestas HTTP. Los 5xx se registran con el error completo.
// El orden importa: una plantilla ausente envuelve también ErrObjectNotFound y debe dar 503.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, code, msg := fiber.StatusInternalServerError, "INTERNAL", "error interno"
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		status, code, msg = fiber.StatusBadRequest, "VALIDATION", err.Error()
	case errors.Is(err, domain.ErrTemplateUnavailable):
		status, code, msg = fiber.StatusServiceUnavailable, "TEMPLATE_UNAVAILABLE", "Vertragsvorlage nicht verfügbar"
	case errors.Is(err, domain.ErrStorageWrite):
		status, code, msg = fiber.StatusBadGateway, "STORAGE_WRITE_FAILED", "Vertrag konnte nicht gespeichert werden: "+err.Error()
	case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrObjectNotFound):
		status, code, msg = fiber.StatusNotFound, "NOT_FOUND", "Kunde oder Vertrag nicht gefunden"
	case errors.Is(err, domain.ErrForbidden):
		status, code, msg = fiber.StatusForbidden, "FORBIDDEN", "acceso denegado"
	}
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Str("method", c.Method()).Int("status", status).Msg("petición fallida")
	}
	return c.Status(status).JSON(dto.ErrorResponse{Error: msg, Code: code})
}
