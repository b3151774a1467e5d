package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// exclusion_violation: a constraint EXCLUDE de appointments barrou
// duas reservas online simultâneas para o mesmo horário.
const pgExclusionViolation = "23P01"

const pgUniqueViolation = "23505"

func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgExclusionViolation
}

func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
