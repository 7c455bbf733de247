package contract_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/onboarding-api/internal/domain/contract"
	"github.com/jhoicas/onboarding-api/internal/domain/entity"
)

// El nombre del archivo debe ser exacto: el dashboard y la limpieza lo buscan por prefijo.
func TestFileName_VectorExacto(t *testing.T) {
	at := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "Vertrag_Acme___Co__GmbH_2025-01-15.pdf", contract.FileName("Acme & Co. GmbH", at))
}

func TestFileName_FechaEnUTC(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	// 00:30 del 16 en Berlín sigue siendo 15 en UTC.
	at := time.Date(2025, 1, 16, 0, 30, 0, 0, berlin)
	assert.Equal(t, "Vertrag_X_2025-01-15.pdf", contract.FileName("X", at))
}

func TestSanitizeCompanyName_NoASCIISeReemplaza(t *testing.T) {
	assert.Equal(t, "M_ller_Sohn_KG", contract.SanitizeCompanyName("Müller+Sohn KG"))
	assert.Equal(t, "", contract.SanitizeCompanyName(""))
}

func TestStoragePath(t *testing.T) {
	assert.Equal(t, "contracts/cust-1/Vertrag_A_2025-01-15.pdf",
		contract.StoragePath("cust-1", "Vertrag_A_2025-01-15.pdf"))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "3f2a9c1e", contract.ShortID("3f2a9c1e-7b4d-4c55-9e0a-1d2f3a4b5c6d"))
	assert.Equal(t, "abc", contract.ShortID("abc"))
}

func TestIsContract(t *testing.T) {
	assert.True(t, contract.IsContract(&entity.Document{DocumentType: entity.DocumentTypeOther, FileName: "Vertrag_A_2025-01-15.pdf"}))
	assert.False(t, contract.IsContract(&entity.Document{DocumentType: entity.DocumentTypeIDFront, FileName: "Vertrag_A.pdf"}))
	assert.False(t, contract.IsContract(&entity.Document{DocumentType: entity.DocumentTypeOther, FileName: "Gewerbeanmeldung.pdf"}))
	assert.False(t, contract.IsContract(nil))
}
