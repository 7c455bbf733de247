// Package contract orquesta la generación del contrato PDF de onboarding: agrega los datos del
// cliente, rellena la plantilla, publica el artefacto y poda los contratos obsoletos.
package contract

import (
	"context"

	contractdomain "github.com/jhoicas/onboarding-api/internal/domain/contract"
)

// TemplateRenderer dibuja los textos posicionados sobre la plantilla y devuelve el PDF resultante.
// El documento de salida conserva las páginas de la plantilla (mismo número y tamaño).
type TemplateRenderer interface {
	Render(ctx context.Context, template []byte, layout *contractdomain.Layout, placements []contractdomain.Placement) ([]byte, error)
}

// TemplateInspector inspecciona un PDF sin modificarlo.
type TemplateInspector interface {
	// PageCount retorna el número de páginas o error si el PDF no es válido.
	PageCount(ctx context.Context, pdf []byte) (int, error)
}
