package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
	"github.com/jhoicas/onboarding-api/internal/domain/repository"
)

var _ repository.SignatureRepository = (*SignatureRepo)(nil)

// SignatureRepo lectura de la firma del cliente.
type SignatureRepo struct {
	q Querier
}

func NewSignatureRepository(q Querier) *SignatureRepo {
	return &SignatureRepo{q: q}
}

// GetByCustomer firma más reciente; (nil, nil) si el cliente aún no firmó.
func (r *SignatureRepo) GetByCustomer(ctx context.Context, customerID string) (*entity.Signature, error) {
	query := `
		SELECT id, customer_id, COALESCE(image_data, ''), signed_at,
		       terms_accepted, privacy_accepted, created_at
		FROM signatures
		WHERE customer_id = $1
		ORDER BY signed_at DESC
		LIMIT 1`
	var s entity.Signature
	err := r.q.QueryRow(ctx, query, customerID).Scan(
		&s.ID, &s.CustomerID, &s.ImageData, &s.SignedAt,
		&s.TermsAccepted, &s.PrivacyAccepted, &s.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get signature: %w", err)
	}
	return &s, nil
}
