package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// BeneficialOwner beneficiario final (wirtschaftlich Berechtigter).
type BeneficialOwner struct {
	ID                  string
	CustomerID          string
	FirstName           string
	LastName            string
	BirthDate           *time.Time
	Nationality         string
	OwnershipPercentage decimal.Decimal // 0..100
	CreatedAt           time.Time
}

// FullName nombre completo tal como se imprime.
func (o *BeneficialOwner) FullName() string {
	return joinNonEmpty(" ", o.FirstName, o.LastName)
}
