package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
)

func dupEntryErr() *mysql.MySQLError {
	return &mysql.MySQLError{
		Number:   1062,
		SQLState: [5]byte{'2', '3', '0', '0', '0'},
		Message:  "Duplicate entry 'WHEEL-2025-001' for key 'uq_wheel_specifications_form_number'",
	}
}

func TestIsDuplicateKey(t *testing.T) {
	if !isDuplicateKey(dupEntryErr()) {
		t.Error("expected driver error 1062 to be recognized as duplicate key")
	}
	// Wrapped driver errors must still match.
	if !isDuplicateKey(fmt.Errorf("insert wheel spec: %w", dupEntryErr())) {
		t.Error("expected wrapped 1062 error to be recognized")
	}
	if isDuplicateKey(nil) {
		t.Error("nil is not a duplicate key error")
	}
	if isDuplicateKey(&mysql.MySQLError{Number: 1213, Message: "Deadlock found when trying to get lock"}) {
		t.Error("error 1213 must not be treated as duplicate key")
	}
	if isDuplicateKey(errors.New("dial tcp 127.0.0.1:3306: connection refused")) {
		t.Error("infrastructure errors must not be treated as duplicate key")
	}
}

func TestDupOrErr(t *testing.T) {
	// A unique-key violation from the INSERT itself must collapse into the
	// same sentinel the fast-path existence check produces, since two
	// concurrent creates can both pass that check before either commits.
	if err := dupOrErr(dupEntryErr()); !errors.Is(err, ErrDuplicateFormNumber) {
		t.Errorf("expected ErrDuplicateFormNumber, got %v", err)
	}

	other := errors.New("connection refused")
	if err := dupOrErr(other); err != other {
		t.Errorf("expected non-duplicate error passed through, got %v", err)
	}
	if err := dupOrErr(nil); err != nil {
		t.Errorf("expected nil passed through, got %v", err)
	}
}
