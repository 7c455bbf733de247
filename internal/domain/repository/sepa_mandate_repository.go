package repository

import (
	"context"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
)

// SepaMandateRepository puerto de lectura del mandato SEPA. (nil, nil) si no existe.
type SepaMandateRepository interface {
	GetByCustomer(ctx context.Context, customerID string) (*entity.SepaMandate, error)
}
