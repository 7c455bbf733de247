package repository

import (
	"context"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
)

// SignatureRepository puerto de lectura de la firma. (nil, nil) si no existe.
type SignatureRepository interface {
	GetByCustomer(ctx context.Context, customerID string) (*entity.Signature, error)
}
