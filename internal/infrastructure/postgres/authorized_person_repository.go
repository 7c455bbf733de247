package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
	"github.com/jhoicas/onboarding-api/internal/domain/repository"
)

var _ repository.AuthorizedPersonRepository = (*AuthorizedPersonRepo)(nil)

// AuthorizedPersonRepo lectura de representantes autorizados.
type AuthorizedPersonRepo struct {
	q Querier
}

// NewAuthorizedPersonRepository construye el adaptador.
func NewAuthorizedPersonRepository(q Querier) *AuthorizedPersonRepo {
	return &AuthorizedPersonRepo{q: q}
}

// ListByCustomer representantes del cliente en orden de alta.
func (r *AuthorizedPersonRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.AuthorizedPerson, error) {
	query := `
		SELECT id, customer_id, first_name, last_name, birth_date, COALESCE(birth_place, ''),
		       COALESCE(nationality, ''), COALESCE(street, ''), COALESCE(house_number, ''),
		       COALESCE(postal_code, ''), COALESCE(city, ''), COALESCE(country, ''),
		       COALESCE(id_document_type, ''), COALESCE(id_number, ''), id_issue_date,
		       COALESCE(id_authority, ''), COALESCE(email, ''), created_at
		FROM authorized_persons
		WHERE customer_id = $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list authorized persons: %w", err)
	}
	defer rows.Close()

	var list []*entity.AuthorizedPerson
	for rows.Next() {
		var p entity.AuthorizedPerson
		if err := rows.Scan(
			&p.ID, &p.CustomerID, &p.FirstName, &p.LastName, &p.BirthDate, &p.BirthPlace,
			&p.Nationality, &p.Street, &p.HouseNumber,
			&p.PostalCode, &p.City, &p.Country,
			&p.IDDocumentType, &p.IDNumber, &p.IDIssueDate,
			&p.IDAuthority, &p.Email, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan authorized person: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list authorized persons: %w", err)
	}
	return list, nil
}
