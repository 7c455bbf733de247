package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/phpdave11/gofpdf"
	"github.com/phpdave11/gofpdf/contrib/gofpdi"
	"golang.org/x/text/encoding/charmap"

	"github.com/jhoicas/onboarding-api/internal/domain"
	"github.com/jhoicas/onboarding-api/internal/domain/contract"
)

// OverlayRenderer implementa contract.TemplateRenderer: importa cada página de la plantilla como
// fondo (gofpdi) y escribe encima los textos posicionados (gofpdf, unidades en puntos).
type OverlayRenderer struct {
	inspector *PDFCPUInspector
}

// NewOverlayRenderer construye el renderer. El inspector valida la plantilla antes de importarla.
func NewOverlayRenderer(inspector *PDFCPUInspector) *OverlayRenderer {
	return &OverlayRenderer{inspector: inspector}
}

// Render devuelve un PDF con las mismas páginas y tamaños que la plantilla.
// Una plantilla ilegible o con menos páginas que el layout es domain.ErrTemplateUnavailable.
func (r *OverlayRenderer) Render(
	ctx context.Context,
	template []byte,
	layout *contract.Layout,
	placements []contract.Placement,
) (out []byte, err error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// gofpdi entra en pánico ante PDFs que no sabe leer; pdfcpu los rechaza antes,
	// pero un pánico no debe tumbar la petición.
	defer func() {
		if rec := recover(); rec != nil {
			out, err = nil, fmt.Errorf("%w: importar plantilla: %v", domain.ErrTemplateUnavailable, rec)
		}
	}()

	dims, err := r.inspector.PageDims(template)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrTemplateUnavailable, err)
	}
	if len(dims) < layout.Pages {
		return nil, fmt.Errorf("%w: la plantilla tiene %d páginas, el layout usa %d",
			domain.ErrTemplateUnavailable, len(dims), layout.Pages)
	}

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: dims[0].Width, Ht: dims[0].Height},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.SetCompression(true)
	doc.SetTextColor(0, 0, 0)

	byPage := groupByPage(placements)
	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(template))

	for i, d := range dims {
		pageNo := i + 1
		tpl := importer.ImportPageFromStream(doc, &rs, pageNo, "/MediaBox")
		doc.AddPageFormat("P", gofpdf.SizeType{Wd: d.Width, Ht: d.Height})
		importer.UseImportedTemplate(doc, tpl, 0, 0, d.Width, d.Height)

		for _, p := range byPage[pageNo] {
			doc.SetFont(layout.Font.Family, "", p.FontSize)
			doc.Text(p.X, p.Y, toWinAnsi(p.Text))
		}
	}

	if err := doc.Error(); err != nil {
		return nil, fmt.Errorf("pdf: componer contrato: %w", err)
	}
	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: serializar contrato: %w", err)
	}
	return buf.Bytes(), nil
}

func groupByPage(placements []contract.Placement) map[int][]contract.Placement {
	m := make(map[int][]contract.Placement)
	for _, p := range placements {
		m[p.Page] = append(m[p.Page], p)
	}
	return m
}

// toWinAnsi convierte a Windows-1252, la codificación de las fuentes estándar del PDF.
// Los caracteres sin representación (p. ej. letras cirílicas en un nombre) se imprimen como "?".
func toWinAnsi(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
		} else {
			b.WriteByte('?')
		}
	}
	return b.String()
}
