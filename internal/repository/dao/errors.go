package dao

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// Store-level constraint violations surfaced as typed errors. Raw postgres
// error codes never leave this package.
var (
	// ErrInvalidReference: an insert or update points at a row that does
	// not exist (foreign key violation on write).
	ErrInvalidReference = errors.New("a referenced record does not exist")

	// ErrRowReferenced: a delete target is still referenced by other rows
	// (foreign key violation on delete).
	ErrRowReferenced = errors.New("record is still referenced by other records")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation
}
