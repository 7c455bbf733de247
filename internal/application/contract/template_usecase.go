package contract

import (
	"context"
	"fmt"
	"io"

	"github.com/jhoicas/onboarding-api/internal/application/dto"
	"github.com/jhoicas/onboarding-api/internal/application/ports"
	"github.com/jhoicas/onboarding-api/internal/domain"
	contractdomain "github.com/jhoicas/onboarding-api/internal/domain/contract"
	"github.com/jhoicas/onboarding-api/internal/domain/entity"
	"github.com/jhoicas/onboarding-api/pkg/logger"
)

// maxTemplateSize tamaño máximo aceptado para una plantilla subida (10 MiB).
const maxTemplateSize = 10 << 20

// TemplateUseCase administra la plantilla PDF del contrato: consulta, lectura por rangos y reemplazo.
type TemplateUseCase struct {
	store     ports.ObjectStorage
	source    *TemplateSource
	layout    *contractdomain.Layout
	inspector TemplateInspector
	log       *logger.Logger
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(
	store ports.ObjectStorage,
	source *TemplateSource,
	layout *contractdomain.Layout,
	inspector TemplateInspector,
	log *logger.Logger,
) *TemplateUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &TemplateUseCase{
		store:     store,
		source:    source,
		layout:    layout,
		inspector: inspector,
		log:       log.Component("contract.template"),
	}
}

// Info metadatos de la plantilla vigente, incluido su número de páginas.
func (uc *TemplateUseCase) Info(ctx context.Context) (*dto.TemplateInfoResponse, error) {
	key := uc.source.Key()
	attrs, err := uc.store.Stat(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrTemplateUnavailable, key, err)
	}
	data, err := uc.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	pages, err := uc.inspector.PageCount(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTemplateUnavailable, err)
	}
	return &dto.TemplateInfoResponse{
		Key:       key,
		Size:      attrs.Size,
		Pages:     pages,
		UpdatedAt: attrs.Updated,
		URL:       uc.store.PublicURL(key),
	}, nil
}

// OpenRange abre la plantilla para lectura parcial (cabecera Range del cliente).
// length < 0 lee hasta el final. El caller cierra el lector.
func (uc *TemplateUseCase) OpenRange(ctx context.Context, offset, length int64) (io.ReadCloser, *ports.ObjectAttrs, error) {
	key := uc.source.Key()
	attrs, err := uc.store.Stat(ctx, key)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", domain.ErrTemplateUnavailable, key, err)
	}
	if offset < 0 || offset >= attrs.Size {
		return nil, nil, fmt.Errorf("%w: rango fuera del objeto (offset %d, tamaño %d)", domain.ErrInvalidInput, offset, attrs.Size)
	}
	rc, err := uc.store.OpenRangeReader(ctx, key, offset, length)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", domain.ErrTemplateUnavailable, key, err)
	}
	return rc, attrs, nil
}

// Replace valida y sustituye la plantilla. Debe ser un PDF legible con al menos las páginas
// que referencia el layout.
func (uc *TemplateUseCase) Replace(ctx context.Context, pdf []byte) (*dto.TemplateInfoResponse, error) {
	if len(pdf) == 0 {
		return nil, fmt.Errorf("%w: plantilla vacía", domain.ErrInvalidInput)
	}
	if len(pdf) > maxTemplateSize {
		return nil, fmt.Errorf("%w: plantilla supera %d bytes", domain.ErrInvalidInput, maxTemplateSize)
	}
	pages, err := uc.inspector.PageCount(ctx, pdf)
	if err != nil {
		return nil, fmt.Errorf("%w: PDF inválido: %w", domain.ErrInvalidInput, err)
	}
	if pages < uc.layout.Pages {
		return nil, fmt.Errorf("%w: la plantilla tiene %d páginas, se requieren %d", domain.ErrInvalidInput, pages, uc.layout.Pages)
	}

	key := uc.source.Key()
	if err := uc.store.Upload(ctx, key, pdf, entity.MimeTypePDF); err != nil {
		return nil, fmt.Errorf("%w: subir plantilla: %w", domain.ErrStorageWrite, err)
	}
	uc.log.Info().Str("template_key", key).Int("pages", pages).Int("size", len(pdf)).Msg("plantilla reemplazada")

	return &dto.TemplateInfoResponse{
		Key:   key,
		Size:  int64(len(pdf)),
		Pages: pages,
		URL:   uc.store.PublicURL(key),
	}, nil
}
