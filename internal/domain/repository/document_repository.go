package repository

import (
	"context"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
)

// DocumentRepository define el puerto de persistencia de metadatos de documentos.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.Document) error

	// ListByCustomerAndPrefix lista los documentos del tipo indicado cuyo nombre empieza por prefix,
	// del más reciente al más antiguo (created_at DESC, id DESC).
	ListByCustomerAndPrefix(ctx context.Context, customerID, documentType, prefix string) ([]*entity.Document, error)

	Delete(ctx context.Context, id string) error
}
