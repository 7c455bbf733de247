// Package contract contiene la lógica pura del contrato PDF de onboarding: nombre y ruta del
// artefacto, tabla de coordenadas de la plantilla, ubicación de cada campo y la regla
// "solo el contrato más reciente es válido".
package contract

import (
	"regexp"
	"strings"
	"time"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
)

// FilePrefix prefijo de los contratos generados (compatibilidad con el dashboard).
const FilePrefix = "Vertrag_"

// storageRoot carpeta raíz de los contratos dentro del almacenamiento.
const storageRoot = "contracts"

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// SanitizeCompanyName reemplaza cada carácter no alfanumérico ASCII por "_".
// Ej: "Acme & Co. GmbH" → "Acme___Co__GmbH".
func SanitizeCompanyName(name string) string {
	return nonAlphanumeric.ReplaceAllString(name, "_")
}

// FileName construye Vertrag_<empresa saneada>_<YYYY-MM-DD>.pdf con la fecha en UTC.
// El formato debe ser exacto: el dashboard y la limpieza dependen de él.
func FileName(companyName string, at time.Time) string {
	return FilePrefix + SanitizeCompanyName(companyName) + "_" + at.UTC().Format("2006-01-02") + ".pdf"
}

// StoragePath ruta determinista del contrato: contracts/<customerID>/<fileName>.
func StoragePath(customerID, fileName string) string {
	return storageRoot + "/" + customerID + "/" + fileName
}

// ShortID primeros 8 caracteres del identificador (referencia impresa en la página 1).
func ShortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// IsContract indica si el documento es un contrato generado.
func IsContract(doc *entity.Document) bool {
	return doc != nil &&
		doc.DocumentType == entity.DocumentTypeOther &&
		strings.HasPrefix(doc.FileName, FilePrefix)
}
