package errors

import (
	stderrs "errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE classes we care about
const (
	sqlstateUniqueViolation = "23505"
	sqlstateNotNull         = "23502"
	sqlstateForeignKey      = "23503"
	sqlstateCheckViolation  = "23514"
)

// PgCode returns the SQLSTATE of err, or "" when err is not a pg error
func PgCode(err error) string {
	var pgErr *pgconn.PgError
	if stderrs.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolation reports whether err is a unique constraint violation
func IsUniqueViolation(err error) bool { return PgCode(err) == sqlstateUniqueViolation }

// FromPg classifies a postgres error into our taxonomy.
// Unique violations become DuplicateKey so callers can treat a lost
// insert race the same as a lookup hit; everything else is DB.
func FromPg(err error, msg string) error {
	if err == nil {
		return nil
	}
	switch PgCode(err) {
	case sqlstateUniqueViolation:
		return Wrap(err, ErrorCodeDuplicateKey, msg)
	case sqlstateNotNull, sqlstateForeignKey, sqlstateCheckViolation:
		return Wrap(err, ErrorCodeValidation, msg)
	default:
		return Wrap(err, ErrorCodeDB, msg)
	}
}
