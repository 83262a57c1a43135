package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iliyamo/kpa-form-data/internal/model"
)

// BogieChecksheetRepo encapsulates all database queries related to bogie
// checksheet forms. The three nested blocks are serialized to JSON columns on
// write and deserialized on read; key order is not preserved but presence and
// values are.
type BogieChecksheetRepo struct {
	db *sql.DB
}

func NewBogieChecksheetRepo(db *sql.DB) *BogieChecksheetRepo { return &BogieChecksheetRepo{db: db} }

// ExistsByFormNumber reports whether a bogie checksheet with the given form
// number already exists. Bogie form numbers are a uniqueness domain of their
// own; the same string can coexist in wheel_specifications.
func (r *BogieChecksheetRepo) ExistsByFormNumber(ctx context.Context, formNumber string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM bogie_checksheets WHERE form_number = ? LIMIT 1",
		formNumber).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts a bogie checksheet and populates the record's ID, status and
// timestamps from the stored row. Like the wheel repository, the existence
// check is a fast path and 1062 from the unique key maps to the duplicate
// sentinel. The single INSERT keeps the write all-or-nothing.
func (r *BogieChecksheetRepo) Create(ctx context.Context, b *model.BogieChecksheet) error {
	exists, err := r.ExistsByFormNumber(ctx, b.FormNumber)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateFormNumber
	}

	details, err := json.Marshal(b.BogieDetails)
	if err != nil {
		return fmt.Errorf("marshal bogie details: %w", err)
	}
	checks, err := json.Marshal(b.BogieChecksheet)
	if err != nil {
		return fmt.Errorf("marshal bogie checksheet: %w", err)
	}
	bmbc, err := json.Marshal(b.BMBCChecksheet)
	if err != nil {
		return fmt.Errorf("marshal bmbc checksheet: %w", err)
	}

	const qInsert = `INSERT INTO bogie_checksheets (
		form_number, inspection_by, inspection_date,
		bogie_details, bogie_checksheet, bmbc_checksheet, status
	) VALUES (?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		b.FormNumber, b.InspectionBy, b.InspectionDate,
		details, checks, bmbc, "Saved")
	if err != nil {
		return dupOrErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)

	// Re-read the committed row for status and timestamps. A failure here
	// surfaces as an infrastructure error even though the row exists; a
	// retried submit is then answered with the duplicate conflict.
	stored, err := r.getByID(ctx, b.ID)
	if err != nil {
		return err
	}
	*b = *stored
	return nil
}

// GetByFormNumber fetches a bogie checksheet by form number, deserializing
// the nested blocks. Returns sql.ErrNoRows when absent.
func (r *BogieChecksheetRepo) GetByFormNumber(ctx context.Context, formNumber string) (*model.BogieChecksheet, error) {
	const q = `SELECT id, form_number, inspection_by, inspection_date,
		bogie_details, bogie_checksheet, bmbc_checksheet,
		status, created_at, updated_at
		FROM bogie_checksheets WHERE form_number = ? LIMIT 1`
	return r.scanOne(r.db.QueryRowContext(ctx, q, formNumber))
}

func (r *BogieChecksheetRepo) getByID(ctx context.Context, id uint64) (*model.BogieChecksheet, error) {
	const q = `SELECT id, form_number, inspection_by, inspection_date,
		bogie_details, bogie_checksheet, bmbc_checksheet,
		status, created_at, updated_at
		FROM bogie_checksheets WHERE id = ?`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

func (r *BogieChecksheetRepo) scanOne(row *sql.Row) (*model.BogieChecksheet, error) {
	b := new(model.BogieChecksheet)
	var details, checks, bmbc []byte
	if err := row.Scan(
		&b.ID, &b.FormNumber, &b.InspectionBy, &b.InspectionDate,
		&details, &checks, &bmbc,
		&b.Status, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(details, &b.BogieDetails); err != nil {
		return nil, fmt.Errorf("unmarshal bogie details: %w", err)
	}
	if err := json.Unmarshal(checks, &b.BogieChecksheet); err != nil {
		return nil, fmt.Errorf("unmarshal bogie checksheet: %w", err)
	}
	if err := json.Unmarshal(bmbc, &b.BMBCChecksheet); err != nil {
		return nil, fmt.Errorf("unmarshal bmbc checksheet: %w", err)
	}
	return b, nil
}
