package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
	"github.com/jhoicas/onboarding-api/internal/domain/repository"
)

var _ repository.BeneficialOwnerRepository = (*BeneficialOwnerRepo)(nil)

// BeneficialOwnerRepo lectura de beneficiarios finales.
type BeneficialOwnerRepo struct {
	q Querier
}

func NewBeneficialOwnerRepository(q Querier) *BeneficialOwnerRepo {
	return &BeneficialOwnerRepo{q: q}
}

// ListByCustomer beneficiarios del cliente en orden de alta. ownership_percentage es NUMERIC(5,2).
func (r *BeneficialOwnerRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.BeneficialOwner, error) {
	query := `
		SELECT id, customer_id, first_name, last_name, birth_date, COALESCE(nationality, ''),
		       COALESCE(ownership_percentage, 0), created_at
		FROM beneficial_owners
		WHERE customer_id = $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list beneficial owners: %w", err)
	}
	defer rows.Close()

	var list []*entity.BeneficialOwner
	for rows.Next() {
		var o entity.BeneficialOwner
		if err := rows.Scan(
			&o.ID, &o.CustomerID, &o.FirstName, &o.LastName, &o.BirthDate, &o.Nationality,
			&o.OwnershipPercentage, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan beneficial owner: %w", err)
		}
		list = append(list, &o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list beneficial owners: %w", err)
	}
	return list, nil
}
