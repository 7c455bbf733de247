package contract

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/onboarding-api/internal/application/ports"
	"github.com/jhoicas/onboarding-api/internal/domain"
	contractdomain "github.com/jhoicas/onboarding-api/internal/domain/contract"
	"github.com/jhoicas/onboarding-api/internal/domain/entity"
	"github.com/jhoicas/onboarding-api/internal/domain/repository"
)

// Publisher guarda el PDF generado y registra su fila de metadatos.
type Publisher struct {
	store ports.ObjectStorage
	docs  repository.DocumentRepository
	newID func() string
}

// NewPublisher construye el publicador.
func NewPublisher(store ports.ObjectStorage, docs repository.DocumentRepository) *Publisher {
	return &Publisher{store: store, docs: docs, newID: uuid.NewString}
}

// Publish sube el PDF a contracts/<customerID>/Vertrag_<empresa>_<fecha>.pdf (sobrescribe si
// ya existe) e inserta la fila en documents con tipo "other".
// Los fallos se envuelven con domain.ErrStorageWrite. Si la subida tiene éxito y el insert falla
// queda un objeto huérfano que la limpieza no ve; no hay transacción entre ambos pasos.
func (p *Publisher) Publish(ctx context.Context, customer *entity.Customer, pdf []byte, at time.Time) (*entity.Document, error) {
	if customer == nil {
		return nil, fmt.Errorf("%w: cliente nil", domain.ErrInvalidInput)
	}
	fileName := contractdomain.FileName(customer.CompanyName, at)
	path := contractdomain.StoragePath(customer.ID, fileName)

	if err := p.store.Upload(ctx, path, pdf, entity.MimeTypePDF); err != nil {
		return nil, fmt.Errorf("%w: subir %s: %w", domain.ErrStorageWrite, path, err)
	}

	doc := &entity.Document{
		ID:           p.newID(),
		CustomerID:   customer.ID,
		DocumentType: entity.DocumentTypeOther,
		FileName:     fileName,
		FilePath:     path,
		FileSize:     int64(len(pdf)),
		MimeType:     entity.MimeTypePDF,
		CreatedAt:    at,
	}
	if err := p.docs.Create(ctx, doc); err != nil {
		return nil, fmt.Errorf("%w: registrar documento: %w", domain.ErrStorageWrite, err)
	}
	return doc, nil
}
