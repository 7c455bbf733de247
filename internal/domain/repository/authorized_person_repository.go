package repository

import (
	"context"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
)

// AuthorizedPersonRepository puerto de lectura de representantes autorizados.
type AuthorizedPersonRepository interface {
	// ListByCustomer devuelve los representantes en orden de inserción (slice vacío si no hay).
	ListByCustomer(ctx context.Context, customerID string) ([]*entity.AuthorizedPerson, error)
}
