package repository

import (
	"context"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
)

// BeneficialOwnerRepository puerto de lectura de beneficiarios finales.
type BeneficialOwnerRepository interface {
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.BeneficialOwner, error)
}
