package pdf

import (
	"bytes"
	"context"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// PDFCPUInspector lee la estructura de un PDF con pdfcpu (sin modificarlo).
type PDFCPUInspector struct {
	conf *model.Configuration
}

// NewPDFCPUInspector construye el inspector con validación relajada: las plantillas suelen
// venir de editores que no cumplen la norma al pie de la letra.
func NewPDFCPUInspector() *PDFCPUInspector {
	// Sin directorio de configuración: el servicio corre con el sistema de archivos de solo lectura.
	api.DisableConfigDir()
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return &PDFCPUInspector{conf: conf}
}

// PageCount número de páginas del documento.
func (i *PDFCPUInspector) PageCount(ctx context.Context, pdf []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n, err := api.PageCount(bytes.NewReader(pdf), i.conf)
	if err != nil {
		return 0, fmt.Errorf("pdf: contar páginas: %w", err)
	}
	return n, nil
}

// PageDims tamaño de cada página en puntos.
func (i *PDFCPUInspector) PageDims(pdf []byte) ([]types.Dim, error) {
	dims, err := api.PageDims(bytes.NewReader(pdf), i.conf)
	if err != nil {
		return nil, fmt.Errorf("pdf: leer tamaños de página: %w", err)
	}
	return dims, nil
}
