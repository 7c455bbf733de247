package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/onboarding-api/internal/application/dto"
	contractdomain "github.com/jhoicas/onboarding-api/internal/domain/contract"
	"github.com/jhoicas/onboarding-api/pkg/logger"
)

// GenerateContractUseCase genera el contrato PDF de un cliente a partir de la plantilla.
type GenerateContractUseCase struct {
	aggregator *Aggregator
	template   *TemplateSource
	layout     *contractdomain.Layout
	renderer   TemplateRenderer
	publisher  *Publisher
	log        *logger.Logger
	now        func() time.Time
}

// NewGenerateContractUseCase construye el caso de uso inyectando todas sus dependencias.
func NewGenerateContractUseCase(
	aggregator *Aggregator,
	template *TemplateSource,
	layout *contractdomain.Layout,
	renderer TemplateRenderer,
	publisher *Publisher,
	log *logger.Logger,
) *GenerateContractUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &GenerateContractUseCase{
		aggregator: aggregator,
		template:   template,
		layout:     layout,
		renderer:   renderer,
		publisher:  publisher,
		log:        log.Component("contract.generate"),
		now:        time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *GenerateContractUseCase) WithClock(now func() time.Time) *GenerateContractUseCase {
	uc.now = now
	return uc
}

// Generate agrega los datos, rellena la plantilla y publica el PDF.
//
// Retorna:
//   - domain.ErrNotFound            si el cliente no existe (no se escribe nada).
//   - domain.ErrTemplateUnavailable si la plantilla no se puede leer o no es un PDF válido.
//   - domain.ErrStorageWrite        si falla la subida o el registro de metadatos.
//
// Cada llamada crea una fila nueva; los contratos anteriores se eliminan con CleanupContractsUseCase.
func (uc *GenerateContractUseCase) Generate(ctx context.Context, customerID string) (*dto.GenerateContractResponse, error) {
	// ── 1. Agregar datos del cliente ──────────────────────────────────────────
	data, err := uc.aggregator.Load(ctx, customerID)
	if err != nil {
		return nil, err
	}

	// ── 2. Cargar plantilla ───────────────────────────────────────────────────
	tpl, err := uc.template.Load(ctx)
	if err != nil {
		uc.log.Error().Err(err).Str("customer_id", customerID).Str("template_key", uc.template.Key()).
			Msg("plantilla de contrato no disponible")
		return nil, err
	}

	// ── 3. Posicionar y dibujar ───────────────────────────────────────────────
	at := uc.now()
	placements := contractdomain.BuildPlacements(uc.layout, data, at)
	pdf, err := uc.renderer.Render(ctx, tpl, uc.layout, placements)
	if err != nil {
		return nil, fmt.Errorf("contract: renderizar: %w", err)
	}

	// ── 4. Publicar ───────────────────────────────────────────────────────────
	doc, err := uc.publisher.Publish(ctx, data.Customer, pdf, at)
	if err != nil {
		uc.log.Error().Err(err).Str("customer_id", customerID).Msg("no se pudo guardar el contrato")
		return nil, err
	}

	uc.log.Info().
		Str("customer_id", customerID).
		Str("document_id", doc.ID).
		Str("file_path", doc.FilePath).
		Int64("file_size", doc.FileSize).
		Int("placements", len(placements)).
		Msg("contrato generado")

	return &dto.GenerateContractResponse{
		Success:  true,
		FileName: doc.FileName,
		FilePath: doc.FilePath,
		Message:  "Vertrag erfolgreich erstellt",
	}, nil
}
