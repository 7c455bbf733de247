package entity

import "time"

// AuthorizedPerson representante autorizado (vertretungsberechtigte Person) del cliente.
// Se devuelven en orden de inserción.
type AuthorizedPerson struct {
	ID             string
	CustomerID     string
	FirstName      string
	LastName       string
	BirthDate      *time.Time
	BirthPlace     string
	Nationality    string
	Street         string
	HouseNumber    string
	PostalCode     string
	City           string
	Country        string
	IDDocumentType string // personalausweis, reisepass
	IDNumber       string
	IDIssueDate    *time.Time
	IDAuthority    string
	Email          string
	CreatedAt      time.Time
}

// FullName nombre completo tal como se imprime.
func (p *AuthorizedPerson) FullName() string {
	return joinNonEmpty(" ", p.FirstName, p.LastName)
}
