package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/onboarding-api/internal/domain"
	"github.com/jhoicas/onboarding-api/internal/domain/entity"
	"github.com/jhoicas/onboarding-api/internal/domain/repository"
)

var _ repository.DocumentRepository = (*DocumentRepo)(nil)

// DocumentRepo metadatos de archivos del cliente (tabla documents).
type DocumentRepo struct {
	q Querier
}

// NewDocumentRepository construye el adaptador. Pasar pool o tx (Querier).
func NewDocumentRepository(q Querier) *DocumentRepo {
	return &DocumentRepo{q: q}
}

// Create inserta la fila. domain.ErrNotFound si el cliente ya no existe (FK).
func (r *DocumentRepo) Create(ctx context.Context, doc *entity.Document) error {
	query := `
		INSERT INTO documents (id, customer_id, document_type, file_name, file_path, file_size, mime_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		doc.ID, doc.CustomerID, doc.DocumentType, doc.FileName, doc.FilePath, doc.FileSize, doc.MimeType, doc.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("insert document: %w", domain.ErrNotFound)
		}
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// ListByCustomerAndPrefix documentos del tipo indicado cuyo nombre empieza por prefix,
// del más reciente al más antiguo.
func (r *DocumentRepo) ListByCustomerAndPrefix(ctx context.Context, customerID, documentType, prefix string) ([]*entity.Document, error) {
	query := `
		SELECT id, customer_id, document_type, file_name, file_path, COALESCE(file_size, 0),
		       COALESCE(mime_type, ''), created_at
		FROM documents
		WHERE customer_id = $1 AND document_type = $2 AND file_name LIKE $3 ESCAPE '\'
		ORDER BY created_at DESC, id DESC`
	rows, err := r.q.Query(ctx, query, customerID, documentType, likePrefix(prefix))
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var list []*entity.Document
	for rows.Next() {
		var d entity.Document
		if err := rows.Scan(&d.ID, &d.CustomerID, &d.DocumentType, &d.FileName, &d.FilePath,
			&d.FileSize, &d.MimeType, &d.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan document: %w", err)
		}
		list = append(list, &d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return list, nil
}

// Delete elimina la fila. Borrar una fila inexistente no es error.
func (r *DocumentRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}

// likePrefix escapa los comodines de LIKE y añade "%": "Vertrag_" -> "Vertrag\_%".
func likePrefix(prefix string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(prefix) + "%"
}
