package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product línea de precio contratada (terminal, licencia, etc.).
type Product struct {
	ID          string
	CustomerID  string
	ProductType string
	Quantity    int
	MonthlyRent decimal.Decimal
	SetupFee    decimal.Decimal
	CreatedAt   time.Time
}

// TransactionFees comisiones por transacción (como máximo un registro por cliente).
type TransactionFees struct {
	ID             string
	CustomerID     string
	DebitCardRate  decimal.Decimal // porcentaje
	CreditCardRate decimal.Decimal // porcentaje
	FixedFee       decimal.Decimal // EUR por transacción
	CreatedAt      time.Time
}
