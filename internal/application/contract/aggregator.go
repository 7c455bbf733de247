package contract

import (
	"context"
	"fmt"

	"github.com/jhoicas/onboarding-api/internal/domain"
	contractdomain "github.com/jhoicas/onboarding-api/internal/domain/contract"
	"github.com/jhoicas/onboarding-api/internal/domain/repository"
)

// Repositories agrupa los puertos de lectura que necesita el agregador.
type Repositories struct {
	Customers         repository.CustomerRepository
	AuthorizedPersons repository.AuthorizedPersonRepository
	BeneficialOwners  repository.BeneficialOwnerRepository
	SepaMandates      repository.SepaMandateRepository
	Signatures        repository.SignatureRepository
	Products          repository.ProductRepository
}

// Aggregator reúne en una sola vista todos los registros del cliente que aparecen en el contrato.
type Aggregator struct {
	repos Repositories
}

// NewAggregator construye el agregador.
func NewAggregator(repos Repositories) *Aggregator {
	return &Aggregator{repos: repos}
}

// Load lee secuencialmente cliente, representantes, beneficiarios, mandato SEPA, firma,
// productos y comisiones.
//
// Retorna:
//   - domain.ErrNotFound si el cliente no existe.
//   - error envuelto si falla cualquier consulta (una caída de la BD no se trata como "sin datos").
//
// Los registros opcionales ausentes quedan en nil o slice vacío.
func (a *Aggregator) Load(ctx context.Context, customerID string) (*contractdomain.ContractData, error) {
	if customerID == "" {
		return nil, fmt.Errorf("%w: customer id vacío", domain.ErrInvalidInput)
	}

	customer, err := a.repos.Customers.GetByID(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("contract: obtener cliente: %w", err)
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	data := &contractdomain.ContractData{Customer: customer}

	if data.AuthorizedPersons, err = a.repos.AuthorizedPersons.ListByCustomer(ctx, customerID); err != nil {
		return nil, fmt.Errorf("contract: obtener representantes: %w", err)
	}
	if data.BeneficialOwners, err = a.repos.BeneficialOwners.ListByCustomer(ctx, customerID); err != nil {
		return nil, fmt.Errorf("contract: obtener beneficiarios: %w", err)
	}
	if data.SepaMandate, err = a.repos.SepaMandates.GetByCustomer(ctx, customerID); err != nil {
		return nil, fmt.Errorf("contract: obtener mandato SEPA: %w", err)
	}
	if data.Signature, err = a.repos.Signatures.GetByCustomer(ctx, customerID); err != nil {
		return nil, fmt.Errorf("contract: obtener firma: %w", err)
	}
	if data.Products, err = a.repos.Products.ListByCustomer(ctx, customerID); err != nil {
		return nil, fmt.Errorf("contract: obtener productos: %w", err)
	}
	if data.TransactionFees, err = a.repos.Products.GetTransactionFees(ctx, customerID); err != nil {
		return nil, fmt.Errorf("contract: obtener comisiones: %w", err)
	}
	return data, nil
}
