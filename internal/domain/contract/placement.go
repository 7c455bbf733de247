package contract

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
)

// Placement texto listo para dibujar en una página de la plantilla.
type Placement struct {
	Field    string // clave del layout; en bloques "<bloque>[<fila>].<campo>"
	Page     int
	X        float64
	Y        float64
	FontSize float64
	Text     string
}

// BuildPlacements traduce la vista agregada a textos posicionados según el layout.
//
// Reglas:
//   - Valores vacíos no generan texto (el hueco de la plantilla queda en blanco).
//   - Cada bloque se trunca a su "max" (2 representantes, 3 beneficiarios, 5 productos en el
//     layout por defecto); las filas sobrantes se omiten sin error.
//   - No se mide ni se corta el texto: un valor largo puede pisar el campo vecino.
//
// El resultado se ordena por página, y, x para que el renderizado sea determinista.
func BuildPlacements(l *Layout, data *ContractData, generatedAt time.Time) []Placement {
	if l == nil || data == nil || data.Customer == nil {
		return nil
	}
	b := &placementBuilder{layout: l}
	date := FormatDate(generatedAt.UTC())

	// ── Página 1: empresa ─────────────────────────────────────────────────────
	c := data.Customer
	b.field(FieldCustomerRef, ShortID(c.ID))
	b.field(FieldGeneratedOn, date)
	b.field(FieldCompanyName, c.CompanyName)
	if c.LegalForm != "" {
		b.field(FieldLegalForm, c.LegalForm.Label())
	}
	b.field(FieldVATID, c.VATID)
	b.field(FieldCommercialRegister, commercialRegister(c))
	b.field(FieldCompanyStreet, joinNonEmpty(" ", c.Street, c.HouseNumber))
	b.field(FieldCompanyCity, joinNonEmpty(" ", c.PostalCode, c.City))
	b.field(FieldCompanyCountry, c.Country)

	// ── Página 1: representantes autorizados ──────────────────────────────────
	for i := 0; i < b.rows(BlockAuthorizedPerson, len(data.AuthorizedPersons)); i++ {
		p := data.AuthorizedPersons[i]
		if p == nil {
			continue
		}
		b.blockField(BlockAuthorizedPerson, i, "name", p.FullName())
		b.blockField(BlockAuthorizedPerson, i, "birth", joinNonEmpty(", ", p.BirthPlace, formatDatePtr(p.BirthDate)))
		b.blockField(BlockAuthorizedPerson, i, "nationality", p.Nationality)
		b.blockField(BlockAuthorizedPerson, i, "street", joinNonEmpty(" ", p.Street, p.HouseNumber))
		b.blockField(BlockAuthorizedPerson, i, "city", joinNonEmpty(" ", p.PostalCode, p.City))
		b.blockField(BlockAuthorizedPerson, i, "id_number", p.IDNumber)
		b.blockField(BlockAuthorizedPerson, i, "id_issue_date", formatDatePtr(p.IDIssueDate))
		b.blockField(BlockAuthorizedPerson, i, "id_authority", p.IDAuthority)
		b.blockField(BlockAuthorizedPerson, i, "email", p.Email)
	}

	// ── Página 2: beneficiarios finales ───────────────────────────────────────
	for i := 0; i < b.rows(BlockBeneficialOwner, len(data.BeneficialOwners)); i++ {
		o := data.BeneficialOwners[i]
		if o == nil {
			continue
		}
		b.blockField(BlockBeneficialOwner, i, "name", o.FullName())
		b.blockField(BlockBeneficialOwner, i, "birth_date", formatDatePtr(o.BirthDate))
		b.blockField(BlockBeneficialOwner, i, "nationality", o.Nationality)
		b.blockField(BlockBeneficialOwner, i, "ownership", FormatPercent(o.OwnershipPercentage))
	}

	// ── Página 3: productos y comisiones ──────────────────────────────────────
	for i := 0; i < b.rows(BlockProduct, len(data.Products)); i++ {
		p := data.Products[i]
		if p == nil {
			continue
		}
		b.blockField(BlockProduct, i, "type", p.ProductType)
		b.blockField(BlockProduct, i, "quantity", strconv.Itoa(p.Quantity))
		b.blockField(BlockProduct, i, "monthly_rent", FormatEuro(p.MonthlyRent))
		b.blockField(BlockProduct, i, "setup_fee", FormatEuro(p.SetupFee))
	}
	if f := data.TransactionFees; f != nil {
		b.field(FieldFeeDebitCard, FormatPercent(f.DebitCardRate))
		b.field(FieldFeeCreditCard, FormatPercent(f.CreditCardRate))
		b.field(FieldFeeFixed, FormatEuro(f.FixedFee))
	}

	// ── Página 4: SEPA y firma ────────────────────────────────────────────────
	if m := data.SepaMandate; m != nil {
		b.field(FieldSepaAccountHolder, m.AccountHolder)
		b.field(FieldSepaIBAN, m.IBAN)
		b.field(FieldSepaBankName, m.BankName)
		b.field(FieldSepaBIC, m.BIC)
		b.field(FieldSepaDate, date)
		b.field(FieldSepaMandateReference, m.MandateReference)
	}
	if s := data.Signature; s != nil {
		b.field(FieldSignatureDate, FormatDate(s.SignedAt))
		if len(data.AuthorizedPersons) > 0 && data.AuthorizedPersons[0] != nil {
			b.field(FieldSignatureName, data.AuthorizedPersons[0].FullName())
		}
		b.field(FieldSignatureDisclaimer, SignatureDisclaimer)
	}

	sort.SliceStable(b.out, func(i, j int) bool {
		p, q := b.out[i], b.out[j]
		if p.Page != q.Page {
			return p.Page < q.Page
		}
		if p.Y != q.Y {
			return p.Y < q.Y
		}
		return p.X < q.X
	})
	return b.out
}

// commercialRegister "HRB 12345, Amtsgericht München" (vacío si no hay número).
func commercialRegister(c *entity.Customer) string {
	if strings.TrimSpace(c.RegisterNumber) == "" {
		return ""
	}
	return joinNonEmpty(", ", c.RegisterNumber, c.RegisterCourt)
}

type placementBuilder struct {
	layout *Layout
	out    []Placement
}

func (b *placementBuilder) field(key, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	pos, ok := b.layout.Fields[key]
	if !ok {
		return
	}
	b.out = append(b.out, Placement{
		Field:    key,
		Page:     pos.Page,
		X:        pos.X,
		Y:        pos.Y,
		FontSize: b.layout.sizeOf(pos),
		Text:     text,
	})
}

// rows número de filas a dibujar: min(n, max del bloque); 0 si el bloque no existe.
func (b *placementBuilder) rows(block string, n int) int {
	blk, ok := b.layout.Blocks[block]
	if !ok {
		return 0
	}
	if n > blk.Max {
		return blk.Max
	}
	return n
}

func (b *placementBuilder) blockField(block string, row int, key, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	blk := b.layout.Blocks[block]
	pos, ok := blk.Fields[key]
	if !ok {
		return
	}
	b.out = append(b.out, Placement{
		Field:    block + "[" + strconv.Itoa(row) + "]." + key,
		Page:     blk.Page,
		X:        pos.X,
		Y:        pos.Y + float64(row)*blk.StepY,
		FontSize: b.layout.sizeOf(pos),
		Text:     text,
	})
}
