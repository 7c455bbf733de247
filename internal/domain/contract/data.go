package contract

import "github.com/jhoicas/onboarding-api/internal/domain/entity"

// ContractData vista agregada de un cliente para rellenar el contrato.
// Solo Customer es obligatorio; el resto puede venir vacío o nil.
type ContractData struct {
	Customer          *entity.Customer
	AuthorizedPersons []*entity.AuthorizedPerson
	BeneficialOwners  []*entity.BeneficialOwner
	SepaMandate       *entity.SepaMandate
	Signature         *entity.Signature
	Products          []*entity.Product
	TransactionFees   *entity.TransactionFees
}
