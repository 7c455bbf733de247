package contract

import (
	"context"
	"fmt"

	"github.com/jhoicas/onboarding-api/internal/application/dto"
	"github.com/jhoicas/onboarding-api/internal/application/ports"
	"github.com/jhoicas/onboarding-api/internal/domain"
	contractdomain "github.com/jhoicas/onboarding-api/internal/domain/contract"
	"github.com/jhoicas/onboarding-api/internal/domain/entity"
	"github.com/jhoicas/onboarding-api/internal/domain/repository"
)

// QueryUseCase lectura de los contratos generados (listado del dashboard y descarga).
type QueryUseCase struct {
	docs  repository.DocumentRepository
	store ports.ObjectStorage
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(docs repository.DocumentRepository, store ports.ObjectStorage) *QueryUseCase {
	return &QueryUseCase{docs: docs, store: store}
}

// ListContracts lista los contratos del cliente, del más reciente al más antiguo.
func (uc *QueryUseCase) ListContracts(ctx context.Context, customerID string) ([]*dto.ContractDocumentResponse, error) {
	docs, err := uc.list(ctx, customerID)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.ContractDocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, &dto.ContractDocumentResponse{
			ID:        d.ID,
			FileName:  d.FileName,
			FilePath:  d.FilePath,
			FileSize:  d.FileSize,
			MimeType:  d.MimeType,
			CreatedAt: d.CreatedAt,
			URL:       uc.store.PublicURL(d.FilePath),
		})
	}
	return out, nil
}

// DownloadLatest devuelve los bytes y el nombre del contrato vigente.
// domain.ErrNotFound si el cliente no tiene contratos o el objeto ya no existe.
func (uc *QueryUseCase) DownloadLatest(ctx context.Context, customerID string) (pdf []byte, fileName string, err error) {
	docs, err := uc.list(ctx, customerID)
	if err != nil {
		return nil, "", err
	}
	latest := contractdomain.PlanRetention(docs).Keep
	if latest == nil {
		return nil, "", domain.ErrNotFound
	}
	pdf, err = uc.store.Download(ctx, latest.FilePath)
	if err != nil {
		return nil, "", fmt.Errorf("contract: descargar %s: %w", latest.FilePath, err)
	}
	return pdf, latest.FileName, nil
}

func (uc *QueryUseCase) list(ctx context.Context, customerID string) ([]*entity.Document, error) {
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer id vacío", domain.ErrInvalidInput)
	}
	docs, err := uc.docs.ListByCustomerAndPrefix(ctx, customerID, entity.DocumentTypeOther, contractdomain.FilePrefix)
	if err != nil {
		return nil, fmt.Errorf("contract: listar contratos: %w", err)
	}
	return docs, nil
}
