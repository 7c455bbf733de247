package contract

import (
	"sort"

	"github.com/jhoicas/onboarding-api/internal/domain/entity"
)

// RetentionPlan resultado de reconciliar los contratos de un cliente:
// Keep es el más reciente, Remove el resto.
type RetentionPlan struct {
	Keep   *entity.Document
	Remove []*entity.Document
}

// PlanRetention calcula qué contratos sobran. No confía en el orden de entrada:
// ordena por created_at DESC y, a igualdad, por id DESC para que el resultado sea estable.
// Aplicarlo dos veces sobre el resultado no elimina nada más (idempotente).
func PlanRetention(docs []*entity.Document) RetentionPlan {
	candidates := make([]*entity.Document, 0, len(docs))
	for _, d := range docs {
		if d != nil {
			candidates = append(candidates, d)
		}
	}
	if len(candidates) == 0 {
		return RetentionPlan{}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return RetentionPlan{Keep: candidates[0], Remove: candidates[1:]}
}

// SharesObjectWithKept indica si doc apunta al mismo objeto que el contrato conservado.
// Ocurre al regenerar el mismo día: la ruta es determinista y la subida sobrescribe el objeto,
// así que solo debe borrarse la fila, nunca el archivo.
func (p RetentionPlan) SharesObjectWithKept(doc *entity.Document) bool {
	return p.Keep != nil && doc != nil && doc.FilePath == p.Keep.FilePath
}
