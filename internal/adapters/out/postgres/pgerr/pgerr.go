// Package pgerr classifies PostgreSQL errors raised through gorm.
package pgerr

import (
	"errors"

	"dentallab/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation  = "23505"
	codeForeignKey       = "23503"
	codeLockNotAvailable = "55P03"
)

// IsUniqueViolation reports whether err is a unique violation of the named constraint or index.
func IsUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUniqueViolation && pgErr.ConstraintName == constraint
}

// IsForeignKeyViolation reports whether err violates the named foreign key.
func IsForeignKeyViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKey && pgErr.ConstraintName == constraint
}

// Contention turns a lock_timeout failure on resource into a retryable ContentionError.
// Other errors are returned unchanged.
func Contention(err error, resource string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == codeLockNotAvailable {
		return errs.NewContentionError(resource, err)
	}
	return err
}
