// Package repository contains data access logic separated from HTTP handlers.
// This file defines sentinel error values shared across repositories so that
// handlers can distinguish failure scenarios: ErrDuplicateFormNumber signals
// a business conflict on a form submission, ErrUserNotFound a failed login
// lookup. Anything else bubbling out of a repository is an infrastructure
// fault and handlers surface it as HTTP 500.
package repository

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
)

// ErrDuplicateFormNumber is returned when a create would reuse an existing
// form number within the same table. It is produced both by the fast-path
// existence check and by translating MySQL duplicate-key errors (1062), so
// concurrent creates racing past the check still collapse into the same
// outcome. Handlers translate this into an HTTP 400 response.
var ErrDuplicateFormNumber = errors.New("form number already exists")

// ErrUserNotFound is returned when no user row matches a login lookup.
// Handlers must fail closed and answer HTTP 401 without revealing whether
// the phone number or the password was wrong.
var ErrUserNotFound = errors.New("user not found")

// isDuplicateKey reports whether err is a MySQL duplicate-key violation
// (error 1062, ER_DUP_ENTRY). Driver errors are matched by type; anything
// else falls back to the error string so wrapped errors still match.
func isDuplicateKey(err error) bool {
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1062
	}
	return err != nil && strings.Contains(err.Error(), "1062")
}

// dupOrErr translates duplicate-key violations from an INSERT into
// ErrDuplicateFormNumber and passes every other error through. Both form
// repositories funnel their insert errors through this, so a create that
// races past the existence check still collapses into the same outcome as
// the fast path.
func dupOrErr(err error) error {
	if isDuplicateKey(err) {
		return ErrDuplicateFormNumber
	}
	return err
}
