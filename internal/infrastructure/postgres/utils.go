package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// codeForeignKeyViolation SQLSTATE de violación de clave foránea.
const codeForeignKeyViolation = "23503"

// isForeignKeyViolation verifica si un error es una violación de clave foránea (23503),
// p. ej. registrar un documento de un cliente que ya no existe.
func isForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return strings.Contains(err.Error(), code)
}
