// Package pdf contiene los adaptadores PDF del contrato de onboarding:
//
//   - TemplateBuilder genera una plantilla base de 4 páginas A4 (Maroto v2) con las etiquetas
//     de cada campo en las mismas coordenadas que el layout.
//   - OverlayRenderer rellena una plantilla existente escribiendo sobre ella (gofpdf + gofpdi).
//   - PDFCPUInspector valida plantillas y cuenta páginas (pdfcpu).
//
// Layout de la plantilla base:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  Händlervertrag                              Seite n von 4   │
//	│  1  Unternehmen + Vertretungsberechtigte (2 bloques)         │
//	│  2  Wirtschaftlich Berechtigte (tabla, 3 filas)              │
//	│  3  Produkte (tabla, 5 filas) + Transaktionsgebühren         │
//	│  4  SEPA-Lastschriftmandat + Unterschrift                    │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/page"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/onboarding-api/internal/domain/contract"
)

// ── Paleta y medidas ──────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const (
	marginMM = 10.0
	ptToMM   = 25.4 / 72
	labelX   = 60.0 // columna de etiquetas (pt)
	titleY   = 40.0
	rowH     = 4.0 // alto de una fila de texto (mm)
)

// mark texto fijo de la plantilla en coordenadas del layout (pt, origen arriba a la izquierda).
type mark struct {
	x, y  float64
	text  string
	size  float64
	bold  bool
	color *props.Color
}

// TemplateBuilder genera la plantilla base del contrato.
type TemplateBuilder struct{}

// NewTemplateBuilder construye el generador.
func NewTemplateBuilder() *TemplateBuilder { return &TemplateBuilder{} }

// Build genera la plantilla y devuelve sus bytes. Las páginas coinciden con layout.Pages.
func (b *TemplateBuilder) Build(layout *contract.Layout) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(marginMM).WithRightMargin(marginMM).
		WithTopMargin(marginMM).WithBottomMargin(marginMM).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: layout.Font.Size}).
		WithTitle("Händlervertrag", true).
		WithAuthor("Onboarding", true).
		Build()

	m := maroto.New(cfg)
	marks := templateMarks(layout)
	for p := 1; p <= layout.Pages; p++ {
		m.AddPages(page.New().Add(pageRows(marks[p])...))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar plantilla: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Contenido ─────────────────────────────────────────────────────────────────

var fieldLabels = map[string]string{
	contract.FieldCustomerRef:          "Kunden-Nr.:",
	contract.FieldGeneratedOn:          "Erstellt am:",
	contract.FieldCompanyName:          "Firma:",
	contract.FieldLegalForm:            "Rechtsform:",
	contract.FieldVATID:                "USt-IdNr.:",
	contract.FieldCommercialRegister:   "Handelsregister:",
	contract.FieldCompanyStreet:        "Straße, Nr.:",
	contract.FieldCompanyCity:          "PLZ, Ort:",
	contract.FieldCompanyCountry:       "Land:",
	contract.FieldFeeDebitCard:         "Debitkarten:",
	contract.FieldFeeCreditCard:        "Kreditkarten:",
	contract.FieldFeeFixed:             "Fixgebühr je Transaktion:",
	contract.FieldSepaAccountHolder:    "Kontoinhaber:",
	contract.FieldSepaIBAN:             "IBAN:",
	contract.FieldSepaBankName:         "Kreditinstitut:",
	contract.FieldSepaBIC:              "BIC:",
	contract.FieldSepaDate:             "Datum:",
	contract.FieldSepaMandateReference: "Mandatsreferenz:",
}

var blockLabels = map[string]map[string]string{
	contract.BlockAuthorizedPerson: {
		"name":          "Name:",
		"birth":         "Geburtsort, -datum:",
		"nationality":   "Staatsangehörigkeit:",
		"street":        "Straße, Nr.:",
		"city":          "PLZ, Ort:",
		"id_number":     "Ausweisnummer:",
		"id_issue_date": "Ausgestellt am:",
		"id_authority":  "Behörde:",
		"email":         "E-Mail:",
	},
	contract.BlockBeneficialOwner: {
		"name":        "Name",
		"birth_date":  "Geburtsdatum",
		"nationality": "Staatsang.",
		"ownership":   "Anteil",
	},
	contract.BlockProduct: {
		"type":         "Produkt",
		"quantity":     "Menge",
		"monthly_rent": "Miete / Monat",
		"setup_fee":    "Einrichtung",
	},
}

var pageTitles = map[int]string{
	1: "1. Angaben zum Unternehmen",
	2: "2. Wirtschaftlich Berechtigte",
	3: "3. Produkte und Konditionen",
	4: "4. SEPA-Lastschriftmandat",
}

// templateMarks reúne por página todos los textos fijos: cabecera, títulos y etiquetas.
func templateMarks(l *contract.Layout) map[int][]mark {
	out := make(map[int][]mark)
	add := func(page int, m mark) {
		if m.size == 0 {
			m.size = l.Font.Size
		}
		out[page] = append(out[page], m)
	}

	for p := 1; p <= l.Pages; p++ {
		add(p, mark{x: labelX, y: titleY, text: "Händlervertrag", size: 14, bold: true, color: colorPrimary})
		add(p, mark{x: 480, y: titleY, text: "Seite " + strconv.Itoa(p) + " von " + strconv.Itoa(l.Pages), size: 8, color: colorGray})
		if t, ok := pageTitles[p]; ok {
			add(p, mark{x: labelX, y: titleY + 60, text: t, size: 11, bold: true, color: colorPrimary})
		}
	}

	// Etiquetas de campos simples: a la izquierda del valor.
	for key, pos := range l.Fields {
		label, ok := fieldLabels[key]
		if !ok {
			continue
		}
		x := labelX
		if pos.X > 300 {
			x = pos.X - 70 // columna derecha (referencia y fecha)
		}
		add(pos.Page, mark{x: x, y: pos.Y, text: label, color: colorGray})
	}
	if pos, ok := l.Fields[contract.FieldFeeDebitCard]; ok {
		add(pos.Page, mark{x: labelX, y: pos.Y - 24, text: "Transaktionsgebühren", bold: true})
	}

	// Bloque de representantes: etiquetas por fila.
	if blk, ok := l.Blocks[contract.BlockAuthorizedPerson]; ok {
		for r := 0; r < blk.Max; r++ {
			offset := float64(r) * blk.StepY
			first := minY(blk.Fields)
			add(blk.Page, mark{x: labelX, y: first + offset - 18, text: "Vertretungsberechtigte Person " + strconv.Itoa(r+1), bold: true})
			for key, pos := range blk.Fields {
				if label, ok := blockLabels[contract.BlockAuthorizedPerson][key]; ok {
					add(blk.Page, mark{x: labelX, y: pos.Y + offset, text: label, color: colorGray})
				}
			}
		}
	}

	// Bloques tabulares: cabecera de columnas sobre la primera fila.
	for _, name := range []string{contract.BlockBeneficialOwner, contract.BlockProduct} {
		blk, ok := l.Blocks[name]
		if !ok {
			continue
		}
		headerY := minY(blk.Fields) - 16
		for key, pos := range blk.Fields {
			if label, ok := blockLabels[name][key]; ok {
				add(blk.Page, mark{x: pos.X, y: headerY, text: label, bold: true})
			}
		}
	}

	// Firma: rótulos bajo la línea de firma.
	if pos, ok := l.Fields[contract.FieldSignatureDate]; ok {
		add(pos.Page, mark{x: pos.X, y: pos.Y + 14, text: "Ort, Datum", size: 7, color: colorGray})
	}
	if pos, ok := l.Fields[contract.FieldSignatureName]; ok {
		add(pos.Page, mark{x: pos.X, y: pos.Y + 14, text: "Unterschrift Vertretungsberechtigte/r", size: 7, color: colorGray})
	}
	return out
}

func minY(fields map[string]contract.Position) float64 {
	first := -1.0
	for _, p := range fields {
		if first < 0 || p.Y < first {
			first = p.Y
		}
	}
	return first
}

// pageRows convierte las marcas de una página en filas de Maroto.
// Maroto coloca filas en flujo vertical: se intercalan filas vacías para llevar cada línea a su "y".
func pageRows(marks []mark) []core.Row {
	sort.SliceStable(marks, func(i, j int) bool {
		if marks[i].y != marks[j].y {
			return marks[i].y < marks[j].y
		}
		return marks[i].x < marks[j].x
	})

	var rows []core.Row
	cursor := marginMM
	for i := 0; i < len(marks); {
		y := marks[i].y
		j := i
		for j < len(marks) && marks[j].y == y {
			j++
		}
		// La "y" del layout es la línea base: la fila empieza una altura de letra más arriba.
		top := (y - marks[i].size) * ptToMM
		if gap := top - cursor; gap > 0 {
			rows = append(rows, row.New(gap))
			cursor += gap
		}
		components := make([]core.Component, 0, j-i)
		for _, m := range marks[i:j] {
			components = append(components, text.New(m.text, textProps(m)))
		}
		rows = append(rows, row.New(rowH).Add(col.New(12).Add(components...)))
		cursor += rowH
		i = j
	}
	return rows
}

func textProps(m mark) props.Text {
	p := props.Text{
		Size:  m.size,
		Left:  m.x*ptToMM - marginMM,
		Color: m.color,
	}
	if m.bold {
		p.Style = fontstyle.Bold
	}
	return p
}
