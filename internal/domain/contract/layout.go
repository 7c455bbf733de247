package contract

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed layout.yaml
var defaultLayoutYAML []byte

// Claves de campos simples.
const (
	FieldCustomerRef          = "customer_ref"
	FieldGeneratedOn          = "generated_on"
	FieldCompanyName          = "company_name"
	FieldLegalForm            = "legal_form"
	FieldVATID                = "vat_id"
	FieldCommercialRegister   = "commercial_register"
	FieldCompanyStreet        = "company_street"
	FieldCompanyCity          = "company_city"
	FieldCompanyCountry       = "company_country"
	FieldFeeDebitCard         = "fee_debit_card"
	FieldFeeCreditCard        = "fee_credit_card"
	FieldFeeFixed             = "fee_fixed"
	FieldSepaAccountHolder    = "sepa_account_holder"
	FieldSepaIBAN             = "sepa_iban"
	FieldSepaBankName         = "sepa_bank_name"
	FieldSepaBIC              = "sepa_bic"
	FieldSepaDate             = "sepa_date"
	FieldSepaMandateReference = "sepa_mandate_reference"
	FieldSignatureDate        = "signature_date"
	FieldSignatureName        = "signature_name"
	FieldSignatureDisclaimer  = "signature_disclaimer"
)

// Claves de bloques repetidos.
const (
	BlockAuthorizedPerson = "authorized_person"
	BlockBeneficialOwner  = "beneficial_owner"
	BlockProduct          = "product"
)

// Position coordenada de un campo. Size = 0 usa el tamaño de fuente del layout.
type Position struct {
	Page int     `yaml:"page"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"`
}

// Block campos que se repiten por fila (personas, beneficiarios, productos).
type Block struct {
	Page   int                 `yaml:"page"`
	Max    int                 `yaml:"max"`
	StepY  float64             `yaml:"step_y"`
	Fields map[string]Position `yaml:"fields"`
}

// Font fuente única del contrato.
type Font struct {
	Family string  `yaml:"family"`
	Size   float64 `yaml:"size"`
}

// Layout tabla declarativa campo → {página, x, y, tamaño}.
type Layout struct {
	Pages  int                 `yaml:"pages"`
	Font   Font                `yaml:"font"`
	Fields map[string]Position `yaml:"fields"`
	Blocks map[string]Block    `yaml:"blocks"`
}

// DefaultLayout devuelve el layout embebido en el binario.
func DefaultLayout() (*Layout, error) {
	return LoadLayout(bytes.NewReader(defaultLayoutYAML))
}

// LoadLayoutFile lee un layout YAML desde disco (CONTRACT_LAYOUT_PATH).
func LoadLayoutFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("layout: abrir %s: %w", path, err)
	}
	defer f.Close()
	return LoadLayout(f)
}

// LoadLayout decodifica y valida un layout. Rechaza claves desconocidas para detectar erratas.
func LoadLayout(r io.Reader) (*Layout, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var l Layout
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("layout: decodificar: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate comprueba que todas las coordenadas caigan en páginas existentes.
func (l *Layout) Validate() error {
	var errs []error
	if l.Pages <= 0 {
		errs = append(errs, fmt.Errorf("pages debe ser > 0"))
	}
	if l.Font.Family == "" {
		errs = append(errs, fmt.Errorf("font.family es obligatorio"))
	}
	if l.Font.Size <= 0 {
		errs = append(errs, fmt.Errorf("font.size debe ser > 0"))
	}
	for key, p := range l.Fields {
		if p.Page < 1 || p.Page > l.Pages {
			errs = append(errs, fmt.Errorf("campo %s: página %d fuera de rango", key, p.Page))
		}
		if p.X < 0 || p.Y < 0 || p.Size < 0 {
			errs = append(errs, fmt.Errorf("campo %s: coordenadas negativas", key))
		}
	}
	for key, b := range l.Blocks {
		if b.Page < 1 || b.Page > l.Pages {
			errs = append(errs, fmt.Errorf("bloque %s: página %d fuera de rango", key, b.Page))
		}
		if b.Max < 0 {
			errs = append(errs, fmt.Errorf("bloque %s: max negativo", key))
		}
		for fk, p := range b.Fields {
			if p.X < 0 || p.Y < 0 || p.Size < 0 {
				errs = append(errs, fmt.Errorf("bloque %s campo %s: coordenadas negativas", key, fk))
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("layout inválido: %w", errors.Join(errs...))
	}
	return nil
}

// sizeOf tamaño efectivo de fuente de una posición.
func (l *Layout) sizeOf(p Position) float64 {
	if p.Size > 0 {
		return p.Size
	}
	return l.Font.Size
}
