package contract

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/jhoicas/onboarding-api/internal/application/dto"
	"github.com/jhoicas/onboarding-api/internal/application/ports"
	"github.com/jhoicas/onboarding-api/internal/domain"
	contractdomain "github.com/jhoicas/onboarding-api/internal/domain/contract"
	"github.com/jhoicas/onboarding-api/internal/domain/entity"
	"github.com/jhoicas/onboarding-api/internal/domain/repository"
	"github.com/jhoicas/onboarding-api/pkg/logger"
)

// CleanupContractsUseCase deja solo el contrato más reciente de cada cliente.
type CleanupContractsUseCase struct {
	docs  repository.DocumentRepository
	store ports.ObjectStorage
	log   *logger.Logger
}

// NewCleanupContractsUseCase construye el caso de uso.
func NewCleanupContractsUseCase(docs repository.DocumentRepository, store ports.ObjectStorage, log *logger.Logger) *CleanupContractsUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &CleanupContractsUseCase{docs: docs, store: store, log: log.Component("contract.cleanup")}
}

// Cleanup elimina objeto y fila de cada contrato obsoleto. Es best-effort:
//   - si falla el borrado del objeto, la fila se conserva (sigue apuntando al objeto) y se
//     reintenta en la siguiente limpieza;
//   - si falla el borrado de la fila, se registra y se sigue con el resto.
//
// Deleted cuenta solo los contratos eliminados por completo. Solo falla si no se pueden listar.
func (uc *CleanupContractsUseCase) Cleanup(ctx context.Context, customerID string) (*dto.CleanupContractsResponse, error) {
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer id vacío", domain.ErrInvalidInput)
	}
	docs, err := uc.docs.ListByCustomerAndPrefix(ctx, customerID, entity.DocumentTypeOther, contractdomain.FilePrefix)
	if err != nil {
		return nil, fmt.Errorf("contract: listar contratos: %w", err)
	}

	plan := contractdomain.PlanRetention(docs)
	deleted := 0
	referenced := map[string]bool{}
	if plan.Keep != nil {
		referenced[plan.Keep.FilePath] = true
	}
	for _, doc := range plan.Remove {
		if uc.removeOne(ctx, plan, doc) {
			deleted++
		} else {
			referenced[doc.FilePath] = true
		}
	}
	orphans := uc.sweepOrphans(ctx, customerID, plan, referenced)

	res := &dto.CleanupContractsResponse{
		Success:        true,
		Deleted:        deleted,
		OrphansDeleted: orphans,
		Message:        fmt.Sprintf("%d alte Verträge gelöscht", deleted),
	}
	if plan.Keep != nil {
		res.Kept = plan.Keep.FilePath
	}
	uc.log.Info().
		Str("customer_id", customerID).
		Int("obsolete", len(plan.Remove)).
		Int("deleted", deleted).
		Int("orphans_deleted", orphans).
		Msg("limpieza de contratos completada")
	return res, nil
}

// sweepOrphans borra los PDF bajo contracts/<customerID>/ que ninguna fila referencia
// (subida correcta seguida de un insert fallido). Solo toca objetos anteriores al contrato
// conservado: uno más nuevo puede ser una generación en curso cuyo insert aún no llegó.
func (uc *CleanupContractsUseCase) sweepOrphans(ctx context.Context, customerID string, plan contractdomain.RetentionPlan, referenced map[string]bool) int {
	if plan.Keep == nil {
		return 0
	}
	objects, err := uc.store.List(ctx, contractdomain.StoragePath(customerID, ""))
	if err != nil {
		uc.log.Warn().Err(err).Str("customer_id", customerID).Msg("no se pudieron listar los objetos del cliente")
		return 0
	}
	removed := 0
	for _, obj := range objects {
		if referenced[obj.Key] || !strings.HasPrefix(path.Base(obj.Key), contractdomain.FilePrefix) {
			continue
		}
		if !obj.Updated.Before(plan.Keep.CreatedAt) {
			continue
		}
		if err := uc.store.Delete(ctx, obj.Key); err != nil {
			uc.log.Warn().Err(err).Str("file_path", obj.Key).Msg("no se pudo borrar el objeto huérfano")
			continue
		}
		removed++
	}
	return removed
}

func (uc *CleanupContractsUseCase) removeOne(ctx context.Context, plan contractdomain.RetentionPlan, doc *entity.Document) bool {
	// Regenerado el mismo día: el objeto es el del contrato conservado, solo sobra la fila.
	if !plan.SharesObjectWithKept(doc) {
		if err := uc.store.Delete(ctx, doc.FilePath); err != nil {
			uc.log.Warn().Err(err).
				Str("document_id", doc.ID).
				Str("file_path", doc.FilePath).
				Msg("no se pudo borrar el objeto del contrato; se reintentará")
			return false
		}
	}
	if err := uc.docs.Delete(ctx, doc.ID); err != nil {
		uc.log.Warn().Err(err).
			Str("document_id", doc.ID).
			Str("file_path", doc.FilePath).
			Msg("no se pudo borrar la fila del contrato")
		return false
	}
	return true
}
