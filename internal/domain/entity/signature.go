package entity

import "time"

// Signature firma electrónica capturada en el último paso del formulario.
type Signature struct {
	ID              string
	CustomerID      string
	ImageData       string // data URL PNG
	SignedAt        time.Time
	TermsAccepted   bool
	PrivacyAccepted bool
	CreatedAt       time.Time
}
