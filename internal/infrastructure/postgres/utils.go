package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation detecta la violación de constraint único (23505) que los
// repos mapean a domain.ErrDuplicate. pgx/v5 siempre entrega los errores del
// servidor como *pgconn.PgError, no hace falta mirar el texto.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

const pgUniqueViolation = "23505"
