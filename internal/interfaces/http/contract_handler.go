package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/onboarding-api/internal/application/dto"
	"github.com/jhoicas/onboarding-api/pkg/logger"
)

// ContractGenerator genera el contrato PDF de un cliente.
type ContractGenerator interface {
	Generate(ctx context.Context, customerID string) (*dto.GenerateContractResponse, error)
}

// ContractCleaner elimina los contratos obsoletos de un cliente.
type ContractCleaner interface {
	Cleanup(ctx context.Context, customerID string) (*dto.CleanupContractsResponse, error)
}

// ContractQuery lectura de contratos generados.
type ContractQuery interface {
	ListContracts(ctx context.Context, customerID string) ([]*dto.ContractDocumentResponse, error)
	DownloadLatest(ctx context.Context, customerID string) (pdf []byte, fileName string, err error)
}

// ContractHandler maneja las peticiones HTTP de contratos (protegido).
type ContractHandler struct {
	generator ContractGenerator
	cleaner   ContractCleaner
	query     ContractQuery
	log       *logger.Logger
}

// NewContractHandler construye el handler.
func NewContractHandler(generator ContractGenerator, cleaner ContractCleaner, query ContractQuery, log *logger.Logger) *ContractHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ContractHandler{generator: generator, cleaner: cleaner, query: query, log: log.Component("http.contract")}
}

// Generate godoc
// @Summary      Generar contrato PDF del cliente
// @Description  Reúne los datos del onboarding, rellena la plantilla de 4 páginas y guarda el PDF
//               en contracts/<customerId>/Vertrag_<empresa>_<fecha>.pdf con su fila de metadatos.
// @Tags         contracts
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del cliente"
// @Success      200  {object}  dto.GenerateContractResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/contract [post]
func (h *ContractHandler) Generate(c *fiber.Ctx) error {
	out, err := h.generator.Generate(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Cleanup godoc
// @Summary      Eliminar contratos obsoletos
// @Description  Conserva solo el contrato más reciente del cliente. Best-effort: los fallos por
//               documento se registran y no abortan la limpieza.
// @Tags         contracts
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del cliente"
// @Success      200  {object}  dto.CleanupContractsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/contract/cleanup [post]
func (h *ContractHandler) Cleanup(c *fiber.Ctx) error {
	out, err := h.cleaner.Cleanup(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar contratos del cliente
// @Tags         contracts
// @Security     Bearer
// @Produce      json
// @Param        id   path      string  true  "ID del cliente"
// @Success      200  {array}   dto.ContractDocumentResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/contracts [get]
func (h *ContractHandler) List(c *fiber.Ctx) error {
	out, err := h.query.ListContracts(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Download godoc
// @Summary      Descargar el contrato vigente
// @Tags         contracts
// @Security     Bearer
// @Produce      application/pdf
// @Param        id   path      string  true  "ID del cliente"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id}/contract/download [get]
func (h *ContractHandler) Download(c *fiber.Ctx) error {
	pdf, fileName, err := h.query.DownloadLatest(c.Context(), c.Params("id"))
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	return c.Send(pdf)
}
