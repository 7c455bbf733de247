package entity

import "time"

// LegalForm forma jurídica de la empresa cliente.
type LegalForm string

// Formas jurídicas admitidas (deben coincidir con el CHECK de la tabla customers).
const (
	LegalFormGmbH              LegalForm = "gmbh"
	LegalFormAG                LegalForm = "ag"
	LegalFormEinzelunternehmen LegalForm = "einzelunternehmen"
	LegalFormOHG               LegalForm = "ohg"
	LegalFormKG                LegalForm = "kg"
	LegalFormUG                LegalForm = "ug"
	LegalFormAndere            LegalForm = "andere"
)

// Label devuelve el texto que se imprime en el contrato.
func (f LegalForm) Label() string {
	switch f {
	case LegalFormGmbH:
		return "GmbH"
	case LegalFormAG:
		return "AG"
	case LegalFormEinzelunternehmen:
		return "Einzelunternehmen"
	case LegalFormOHG:
		return "OHG"
	case LegalFormKG:
		return "KG"
	case LegalFormUG:
		return "UG (haftungsbeschränkt)"
	case LegalFormAndere:
		return "Andere"
	default:
		return string(f)
	}
}

// RequiresCommercialRegister indica si la forma jurídica exige inscripción en el Handelsregister.
func (f LegalForm) RequiresCommercialRegister() bool {
	switch f {
	case LegalFormGmbH, LegalFormAG, LegalFormOHG, LegalFormKG, LegalFormUG:
		return true
	default:
		return false
	}
}

// Estados del onboarding.
const (
	CustomerStatusDraft      = "draft"
	CustomerStatusInProgress = "in_progress"
	CustomerStatusSubmitted  = "submitted"
	CustomerStatusApproved   = "approved"
	CustomerStatusRejected   = "rejected"
)

// Customer empresa en proceso de onboarding (una por enlace mágico).
type Customer struct {
	ID             string
	CompanyName    string
	LegalForm      LegalForm
	Street         string
	HouseNumber    string
	PostalCode     string
	City           string
	Country        string
	TaxNumber      string // Steuernummer
	VATID          string // USt-IdNr.
	RegisterCourt  string // Registergericht
	RegisterNumber string // HRB/HRA
	Email          string
	Phone          string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
