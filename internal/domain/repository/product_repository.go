package repository

import (
	"context"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
)

// ProductRepository puerto de lectura de productos y comisiones contratadas.
type ProductRepository interface {
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.Product, error)
	// GetTransactionFees devuelve (nil, nil) si el cliente no tiene comisiones registradas.
	GetTransactionFees(ctx context.Context, customerID string) (*entity.TransactionFees, error)
}
