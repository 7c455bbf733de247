package entity

import "time"

// Tipos de documento (deben coincidir con el CHECK de la tabla documents).
const (
	DocumentTypeIDFront            = "id_front"
	DocumentTypeIDBack             = "id_back"
	DocumentTypeCommercialRegister = "commercial_register"
	DocumentTypeOther              = "other"
)

// MimeTypePDF tipo MIME de los contratos generados.
const MimeTypePDF = "application/pdf"

// Document metadatos de un archivo guardado en el almacenamiento de objetos.
type Document struct {
	ID           string
	CustomerID   string
	DocumentType string
	FileName     string
	FilePath     string
	FileSize     int64
	MimeType     string
	CreatedAt    time.Time
}
