package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
	"github.com/jhoicas/onboarding-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// GetByID obtiene un cliente por ID. (nil, nil) si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id string) (*entity.Customer, error) {
	query := `
		SELECT id, company_name, COALESCE(legal_form, ''),
		       COALESCE(street, ''), COALESCE(house_number, ''), COALESCE(postal_code, ''),
		       COALESCE(city, ''), COALESCE(country, ''),
		       COALESCE(tax_number, ''), COALESCE(vat_id, ''),
		       COALESCE(register_court, ''), COALESCE(register_number, ''),
		       COALESCE(email, ''), COALESCE(phone, ''), status, created_at, updated_at
		FROM customers WHERE id = $1`
	var c entity.Customer
	var legalForm string
	err := r.q.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.CompanyName, &legalForm,
		&c.Street, &c.HouseNumber, &c.PostalCode,
		&c.City, &c.Country,
		&c.TaxNumber, &c.VATID,
		&c.RegisterCourt, &c.RegisterNumber,
		&c.Email, &c.Phone, &c.Status, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	c.LegalForm = entity.LegalForm(legalForm)
	return &c, nil
}
