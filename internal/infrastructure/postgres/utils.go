package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE de PostgreSQL que el dominio distingue.
const codeUniqueViolation = "23505"

// isUniqueViolation indica si err es una violación de constraint UNIQUE
// (nombre de categoría/marca repetido, código de barras o email duplicado).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation
}
