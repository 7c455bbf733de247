package contract

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// SignatureDisclaimer texto fijo que marca la firma como electrónica.
const SignatureDisclaimer = "Dieses Dokument wurde elektronisch unterschrieben."

var germanPrinter = message.NewPrinter(language.German)

// FormatDate fecha en formato alemán (TT.MM.JJJJ).
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02.01.2006")
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return FormatDate(*t)
}

// FormatEuro importe con separadores alemanes: 1234.5 → "1.234,50 €".
func FormatEuro(d decimal.Decimal) string {
	return germanPrinter.Sprintf("%.2f €", d.Round(2).InexactFloat64())
}

// FormatPercent porcentaje con separadores alemanes: 25 → "25,00 %".
func FormatPercent(d decimal.Decimal) string {
	return germanPrinter.Sprintf("%.2f %%", d.Round(2).InexactFloat64())
}

func joinNonEmpty(sep string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, sep)
}
