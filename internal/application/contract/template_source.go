package contract

import (
	"context"
	"fmt"

	"github.com/jhoicas/onboarding-api/internal/application/ports"
	"github.com/jhoicas/onboarding-api/internal/domain"
)

// TemplateSource carga la plantilla PDF desde el almacenamiento de objetos.
type TemplateSource struct {
	store ports.ObjectStorage
	key   string
}

// NewTemplateSource construye la fuente con la clave configurada (CONTRACT_TEMPLATE_KEY).
func NewTemplateSource(store ports.ObjectStorage, key string) *TemplateSource {
	return &TemplateSource{store: store, key: key}
}

// Key clave de la plantilla en el almacenamiento.
func (s *TemplateSource) Key() string { return s.key }

// Load descarga la plantilla. Cualquier fallo se reporta como domain.ErrTemplateUnavailable.
func (s *TemplateSource) Load(ctx context.Context) ([]byte, error) {
	data, err := s.store.Download(ctx, s.key)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrTemplateUnavailable, s.key, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: %s está vacía", domain.ErrTemplateUnavailable, s.key)
	}
	return data, nil
}
