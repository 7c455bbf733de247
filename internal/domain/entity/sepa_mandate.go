package entity

import "time"

// SepaMandate mandato de domiciliación SEPA (como máximo uno por cliente).
type SepaMandate struct {
	ID               string
	CustomerID       string
	IBAN             string
	BIC              string
	BankName         string
	AccountHolder    string
	MandateReference string
	Accepted         bool
	AcceptedAt       *time.Time
	CreatedAt        time.Time
}
