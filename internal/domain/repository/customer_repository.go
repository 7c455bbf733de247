package repository

import (
	"context"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
)

// CustomerRepository define el puerto de lectura de clientes en onboarding.
// GetByID devuelve (nil, nil) si el cliente no existe.
type CustomerRepository interface {
	GetByID(ctx context.Context, id string) (*entity.Customer, error)
}
