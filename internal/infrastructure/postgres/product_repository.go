package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
	"github.com/jhoicas/onboarding-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo lectura de productos contratados y comisiones por transacción.
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// ListByCustomer productos del cliente en orden de alta. Importes NUMERIC(10,2) -> decimal.Decimal.
func (r *ProductRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Product, error) {
	query := `
		SELECT id, customer_id, product_type, quantity,
		       COALESCE(monthly_rent, 0), COALESCE(setup_fee, 0), created_at
		FROM products
		WHERE customer_id = $1
		ORDER BY created_at, id`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.CustomerID, &p.ProductType, &p.Quantity,
			&p.MonthlyRent, &p.SetupFee, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return list, nil
}

// GetTransactionFees comisiones del cliente; (nil, nil) si no tiene.
func (r *ProductRepo) GetTransactionFees(ctx context.Context, customerID string) (*entity.TransactionFees, error) {
	query := `
		SELECT id, customer_id, COALESCE(debit_card_rate, 0), COALESCE(credit_card_rate, 0),
		       COALESCE(fixed_fee, 0), created_at
		FROM transaction_fees
		WHERE customer_id = $1
		ORDER BY created_at DESC
		LIMIT 1`
	var f entity.TransactionFees
	err := r.q.QueryRow(ctx, query, customerID).Scan(
		&f.ID, &f.CustomerID, &f.DebitCardRate, &f.CreditCardRate, &f.FixedFee, &f.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction fees: %w", err)
	}
	return &f, nil
}
