package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
	"github.com/jhoicas/onboarding-api/internal/domain/repository"
)

var _ repository.SepaMandateRepository = (*SepaMandateRepo)(nil)

// SepaMandateRepo lectura del mandato SEPA (uno por cliente).
type SepaMandateRepo struct {
	q Querier
}

func NewSepaMandateRepository(q Querier) *SepaMandateRepo {
	return &SepaMandateRepo{q: q}
}

// GetByCustomer mandato más reciente del cliente; (nil, nil) si no hay.
func (r *SepaMandateRepo) GetByCustomer(ctx context.Context, customerID string) (*entity.SepaMandate, error) {
	query := `
		SELECT id, customer_id, iban, COALESCE(bic, ''), COALESCE(bank_name, ''),
		       COALESCE(account_holder, ''), COALESCE(mandate_reference, ''),
		       accepted, accepted_at, created_at
		FROM sepa_mandates
		WHERE customer_id = $1
		ORDER BY created_at DESC
		LIMIT 1`
	var m entity.SepaMandate
	err := r.q.QueryRow(ctx, query, customerID).Scan(
		&m.ID, &m.CustomerID, &m.IBAN, &m.BIC, &m.BankName,
		&m.AccountHolder, &m.MandateReference,
		&m.Accepted, &m.AcceptedAt, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sepa mandate: %w", err)
	}
	return &m, nil
}
