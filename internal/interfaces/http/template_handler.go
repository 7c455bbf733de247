package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/onboarding-api/internal/application/dto"
	"github.com/jhoicas/onboarding-api/internal/application/ports"
	"github.com/jhoicas/onboarding-api/internal/domain"
	"github.com/jhoicas/onboarding-api/pkg/logger"
)

// TemplateService operaciones sobre la plantilla PDF del contrato.
type TemplateService interface {
	Info(ctx context.Context) (*dto.TemplateInfoResponse, error)
	OpenRange(ctx context.Context, offset, length int64) (io.ReadCloser, *ports.ObjectAttrs, error)
	Replace(ctx context.Context, pdf []byte) (*dto.TemplateInfoResponse, error)
}

// TemplateHandler expone la plantilla del contrato (protegido).
type TemplateHandler struct {
	svc TemplateService
	log *logger.Logger
}

// NewTemplateHandler construye el handler.
func NewTemplateHandler(svc TemplateService, log *logger.Logger) *TemplateHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &TemplateHandler{svc: svc, log: log.Component("http.template")}
}

// Info godoc
// @Summary      Metadatos de la plantilla del contrato
// @Tags         contract-template
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.TemplateInfoResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/contract-template [get]
func (h *TemplateHandler) Info(c *fiber.Ctx) error {
	out, err := h.svc.Info(c.Context())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Content godoc
// @Summary      Contenido de la plantilla
// @Description  Devuelve el PDF completo o, con cabecera Range (bytes=a-b o bytes=a-), el tramo pedido con 206.
// @Tags         contract-template
// @Security     Bearer
// @Produce      application/pdf
// @Param        Range  header    string  false  "bytes=a-b"
// @Success      200    {file}    binary
// @Success      206    {file}    binary
// @Failure      416    {object}  dto.ErrorResponse
// @Failure      503    {object}  dto.ErrorResponse
// @Router       /api/contract-template/content [get]
func (h *TemplateHandler) Content(c *fiber.Ctx) error {
	offset, length, partial, err := parseByteRange(c.Get(fiber.HeaderRange))
	if err != nil {
		return c.Status(fiber.StatusRequestedRangeNotSatisfiable).JSON(dto.ErrorResponse{Error: err.Error(), Code: "INVALID_RANGE"})
	}
	rc, attrs, err := h.svc.OpenRange(c.Context(), offset, length)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusRequestedRangeNotSatisfiable).JSON(dto.ErrorResponse{Error: "rango fuera de la plantilla", Code: "INVALID_RANGE"})
		}
		return writeError(c, h.log, err)
	}

	n := attrs.Size - offset
	if length >= 0 && length < n {
		n = length
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderAcceptRanges, "bytes")
	if partial {
		c.Set(fiber.HeaderContentRange, fmt.Sprintf("bytes %d-%d/%d", offset, offset+n-1, attrs.Size))
		c.Status(fiber.StatusPartialContent)
	}
	// fasthttp cierra el stream al terminar la respuesta.
	return c.SendStream(rc, int(n))
}

// Replace godoc
// @Summary      Reemplazar la plantilla del contrato
// @Description  Cuerpo: PDF crudo. Debe tener al menos las páginas del layout. Solo admin.
// @Tags         contract-template
// @Security     Bearer
// @Accept       application/pdf
// @Produce      json
// @Success      200  {object}  dto.TemplateInfoResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/contract-template [put]
func (h *TemplateHandler) Replace(c *fiber.Ctx) error {
	// c.Body() se reutiliza entre peticiones.
	body := append([]byte(nil), c.Body()...)
	out, err := h.svc.Replace(c.Context(), body)
	if err != nil {
		return writeError(c, h.log, err)
	}
	h.log.Info().Str("user_id", GetUserID(c)).Str("template_key", out.Key).Msg("plantilla actualizada vía API")
	return c.JSON(out)
}

// parseByteRange interpreta "bytes=a-b" y "bytes=a-". Cabecera vacía = objeto completo (length -1).
// No soporta rangos múltiples ni sufijos (bytes=-n).
func parseByteRange(header string) (offset, length int64, partial bool, err error) {
	if header == "" {
		return 0, -1, false, nil
	}
	rng, ok := strings.CutPrefix(header, "bytes=")
	if !ok || strings.Contains(rng, ",") {
		return 0, 0, false, fmt.Errorf("rango no soportado: %q", header)
	}
	startStr, endStr, ok := strings.Cut(rng, "-")
	if !ok || startStr == "" {
		return 0, 0, false, fmt.Errorf("rango no soportado: %q", header)
	}
	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil || start < 0 {
		return 0, 0, false, fmt.Errorf("inicio de rango inválido: %q", header)
	}
	if endStr == "" {
		return start, -1, true, nil
	}
	end, err := strconv.ParseInt(endStr, 10, 64)
	if err != nil || end < start {
		return 0, 0, false, fmt.Errorf("fin de rango inválido: %q", header)
	}
	return start, end - start + 1, true, nil
}
