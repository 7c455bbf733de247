package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
)

func TestLegalForm_Label(t *testing.T) {
	assert.Equal(t, "GmbH", entity.LegalFormGmbH.Label())
	assert.Equal(t, "UG (haftungsbeschränkt)", entity.LegalFormUG.Label())
	assert.Equal(t, "desconocida", entity.LegalForm("desconocida").Label(), "valores fuera del enum se imprimen tal cual")
}

func TestLegalForm_RequiresCommercialRegister(t *testing.T) {
	for _, f := range []entity.LegalForm{entity.LegalFormGmbH, entity.LegalFormAG, entity.LegalFormOHG, entity.LegalFormKG, entity.LegalFormUG} {
		assert.True(t, f.RequiresCommercialRegister(), string(f))
	}
	assert.False(t, entity.LegalFormEinzelunternehmen.RequiresCommercialRegister())
	assert.False(t, entity.LegalFormAndere.RequiresCommercialRegister())
}

func TestFullName_IgnoraPartesVacias(t *testing.T) {
	p := &entity.AuthorizedPerson{FirstName: "Anna", LastName: " "}
	assert.Equal(t, "Anna", p.FullName())

	o := &entity.BeneficialOwner{FirstName: "Jonas", LastName: "Weber"}
	assert.Equal(t, "Jonas Weber", o.FullName())
}
