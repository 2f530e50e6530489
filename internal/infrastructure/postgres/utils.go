package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// Códigos SQLSTATE que los repositorios traducen a semántica de dominio.
const (
	sqlstateUniqueViolation = "23505" // unique_violation
	sqlstateInvalidTextRepr = "22P02" // invalid_text_representation
)

// hasSQLState detecta un código SQLSTATE aunque el error venga envuelto.
// El fallback por substring cubre capas intermedias que aplanan el error.
func hasSQLState(err error, code string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == code
	}
	return err != nil && strings.Contains(err.Error(), code)
}

// isUniqueViolation: choque contra una constraint única (ej. email repetido).
func isUniqueViolation(err error) bool {
	return hasSQLState(err, sqlstateUniqueViolation)
}

// isInvalidUUID: el texto no parsea como uuid. Un id malformado no puede
// referir a ninguna fila, así que las búsquedas lo tratan igual que
// "no existe" en lugar de propagarlo como fallo de infraestructura.
func isInvalidUUID(err error) bool {
	return hasSQLState(err, sqlstateInvalidTextRepr)
}
