package contract_test

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/onboarding-api/internal/domain/contract"
	"github.com/jhoicas/onboarding-api/internal/domain/entity"
)

var generatedAt = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func defaultLayout(t *testing.T) *contract.Layout {
	t.Helper()
	l, err := contract.DefaultLayout()
	require.NoError(t, err)
	return l
}

func minimalData() *contract.ContractData {
	return &contract.ContractData{
		Customer: &entity.Customer{
			ID:          "3f2a9c1e-7b4d-4c55-9e0a-1d2f3a4b5c6d",
			CompanyName: "Acme & Co. GmbH",
			LegalForm:   entity.LegalFormGmbH,
			Street:      "Hauptstraße",
			HouseNumber: "5",
			PostalCode:  "10115",
			City:        "Berlin",
			Country:     "DE",
		},
	}
}

func byField(ps []contract.Placement) map[string]contract.Placement {
	m := make(map[string]contract.Placement, len(ps))
	for _, p := range ps {
		m[p.Field] = p
	}
	return m
}

func pagesOf(ps []contract.Placement) map[int]int {
	m := map[int]int{}
	for _, p := range ps {
		m[p.Page]++
	}
	return m
}

func TestBuildPlacements_SinDatosOpcionales_SoloPagina1(t *testing.T) {
	ps := contract.BuildPlacements(defaultLayout(t), minimalData(), generatedAt)

	pages := pagesOf(ps)
	assert.Greater(t, pages[1], 0)
	assert.Zero(t, pages[2])
	assert.Zero(t, pages[3])
	assert.Zero(t, pages[4])

	f := byField(ps)
	assert.Equal(t, "3f2a9c1e", f[contract.FieldCustomerRef].Text)
	assert.Equal(t, "15.01.2025", f[contract.FieldGeneratedOn].Text)
	assert.Equal(t, "GmbH", f[contract.FieldLegalForm].Text)
	assert.Equal(t, "Hauptstraße 5", f[contract.FieldCompanyStreet].Text)
	assert.Equal(t, "10115 Berlin", f[contract.FieldCompanyCity].Text)
	_, hasVAT := f[contract.FieldVATID]
	assert.False(t, hasVAT, "campo vacío no debe generar texto")
	_, hasRegister := f[contract.FieldCommercialRegister]
	assert.False(t, hasRegister)
}

func TestBuildPlacements_UnRepresentante_SegundoBloqueVacio(t *testing.T) {
	data := minimalData()
	data.AuthorizedPersons = []*entity.AuthorizedPerson{{FirstName: "Anna", LastName: "Schmidt", Nationality: "DE"}}

	f := byField(contract.BuildPlacements(defaultLayout(t), data, generatedAt))

	assert.Equal(t, "Anna Schmidt", f["authorized_person[0].name"].Text)
	for key := range f {
		assert.False(t, strings.HasPrefix(key, "authorized_person[1]"), "fila 2 debe quedar en blanco: %s", key)
	}
}

func TestBuildPlacements_DesplazaFilasPorStepY(t *testing.T) {
	l := defaultLayout(t)
	data := minimalData()
	data.AuthorizedPersons = []*entity.AuthorizedPerson{
		{FirstName: "Anna", LastName: "Schmidt"},
		{FirstName: "Ben", LastName: "Weber"},
	}

	f := byField(contract.BuildPlacements(l, data, generatedAt))
	step := l.Blocks[contract.BlockAuthorizedPerson].StepY
	assert.Equal(t, f["authorized_person[0].name"].Y+step, f["authorized_person[1].name"].Y)
}

func TestBuildPlacements_CuatroBeneficiarios_SoloTres(t *testing.T) {
	data := minimalData()
	for _, name := range []string{"A", "B", "C", "D"} {
		data.BeneficialOwners = append(data.BeneficialOwners, &entity.BeneficialOwner{
			FirstName:           name,
			LastName:            "Owner",
			OwnershipPercentage: decimal.NewFromInt(25),
		})
	}

	ps := contract.BuildPlacements(defaultLayout(t), data, generatedAt)
	f := byField(ps)

	assert.Equal(t, "C Owner", f["beneficial_owner[2].name"].Text)
	assert.Equal(t, "25,00 %", f["beneficial_owner[0].ownership"].Text)
	_, hasFourth := f["beneficial_owner[3].name"]
	assert.False(t, hasFourth, "el cuarto beneficiario se omite sin error")
}

func TestBuildPlacements_ProductosTruncadosACinco(t *testing.T) {
	data := minimalData()
	for i := 0; i < 7; i++ {
		data.Products = append(data.Products, &entity.Product{ProductType: "Terminal", Quantity: 1, MonthlyRent: decimal.RequireFromString("19.90")})
	}

	f := byField(contract.BuildPlacements(defaultLayout(t), data, generatedAt))
	assert.Equal(t, "19,90 €", f["product[4].monthly_rent"].Text)
	_, hasSixth := f["product[5].type"]
	assert.False(t, hasSixth)
}

func TestBuildPlacements_SepaIBANLargo(t *testing.T) {
	iban := "MT84MALT011000012345MTLCAST001S123"
	require.Len(t, iban, 34)
	data := minimalData()
	data.SepaMandate = &entity.SepaMandate{IBAN: iban, AccountHolder: "Acme GmbH", MandateReference: "M-1"}

	f := byField(contract.BuildPlacements(defaultLayout(t), data, generatedAt))
	assert.Equal(t, iban, f[contract.FieldSepaIBAN].Text)
	assert.Equal(t, 4, f[contract.FieldSepaIBAN].Page)
	assert.Equal(t, "15.01.2025", f[contract.FieldSepaDate].Text, "la fecha SEPA es la de generación")
}

func TestBuildPlacements_Firma_UsaPrimerRepresentante(t *testing.T) {
	data := minimalData()
	data.AuthorizedPersons = []*entity.AuthorizedPerson{
		{FirstName: "Anna", LastName: "Schmidt"},
		{FirstName: "Ben", LastName: "Weber"},
	}
	data.Signature = &entity.Signature{SignedAt: time.Date(2025, 1, 14, 16, 0, 0, 0, time.UTC)}

	f := byField(contract.BuildPlacements(defaultLayout(t), data, generatedAt))
	assert.Equal(t, "14.01.2025", f[contract.FieldSignatureDate].Text)
	assert.Equal(t, "Anna Schmidt", f[contract.FieldSignatureName].Text)
	assert.Equal(t, contract.SignatureDisclaimer, f[contract.FieldSignatureDisclaimer].Text)
}

func TestBuildPlacements_SinFirma_Pagina4Vacia(t *testing.T) {
	data := minimalData()
	data.AuthorizedPersons = []*entity.AuthorizedPerson{{FirstName: "Anna", LastName: "Schmidt"}}

	ps := contract.BuildPlacements(defaultLayout(t), data, generatedAt)
	assert.Zero(t, pagesOf(ps)[4])
}

func TestBuildPlacements_OrdenDeterminista(t *testing.T) {
	data := minimalData()
	data.SepaMandate = &entity.SepaMandate{IBAN: "DE89370400440532013000"}
	data.TransactionFees = &entity.TransactionFees{DebitCardRate: decimal.RequireFromString("0.39")}

	ps := contract.BuildPlacements(defaultLayout(t), data, generatedAt)
	for i := 1; i < len(ps); i++ {
		prev, cur := ps[i-1], ps[i]
		ordered := prev.Page < cur.Page ||
			(prev.Page == cur.Page && (prev.Y < cur.Y || (prev.Y == cur.Y && prev.X <= cur.X)))
		assert.True(t, ordered, "posición %d fuera de orden", i)
	}
}

func TestBuildPlacements_SinCliente_Nil(t *testing.T) {
	assert.Nil(t, contract.BuildPlacements(defaultLayout(t), &contract.ContractData{}, generatedAt))
}
