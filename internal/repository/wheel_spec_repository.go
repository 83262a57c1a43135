package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/kpa-form-data/internal/model"
)

// WheelSpecRepo encapsulates all database queries related to wheel
// specification forms.
type WheelSpecRepo struct {
	db *sql.DB
}

func NewWheelSpecRepo(db *sql.DB) *WheelSpecRepo { return &WheelSpecRepo{db: db} }

// WheelSpecFilter carries the optional exact-match filters of the listing
// endpoint. Empty fields impose no constraint; supplied fields are combined
// with AND.
type WheelSpecFilter struct {
	FormNumber    string
	SubmittedBy   string
	SubmittedDate string
}

const wheelSpecColumns = `id, form_number, submitted_by, submitted_date,
	tread_diameter_new, last_shop_issue_size, condemning_dia, wheel_gauge,
	variation_same_axle, variation_same_bogie, variation_same_coach,
	wheel_profile, intermediate_wwp, bearing_seat_diameter,
	roller_bearing_outer_dia, roller_bearing_bore_dia, roller_bearing_width,
	axle_box_housing_bore_dia, wheel_disc_width,
	status, created_at, updated_at`

func scanWheelSpec(row interface{ Scan(...any) error }, s *model.WheelSpecification) error {
	return row.Scan(
		&s.ID, &s.FormNumber, &s.SubmittedBy, &s.SubmittedDate,
		&s.TreadDiameterNew, &s.LastShopIssueSize, &s.CondemningDia, &s.WheelGauge,
		&s.VariationSameAxle, &s.VariationSameBogie, &s.VariationSameCoach,
		&s.WheelProfile, &s.IntermediateWWP, &s.BearingSeatDiameter,
		&s.RollerBearingOuterDia, &s.RollerBearingBoreDia, &s.RollerBearingWidth,
		&s.AxleBoxHousingBoreDia, &s.WheelDiscWidth,
		&s.Status, &s.CreatedAt, &s.UpdatedAt)
}

// ExistsByFormNumber reports whether a wheel specification with the given
// form number already exists.
func (r *WheelSpecRepo) ExistsByFormNumber(ctx context.Context, formNumber string) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM wheel_specifications WHERE form_number = ? LIMIT 1",
		formNumber).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Create inserts a wheel specification and populates the record's ID, status
// and timestamps from the stored row. The duplicate check before the insert
// only produces a friendlier error early; the unique key on form_number is
// the real guarantee, so 1062 from the insert maps to the same sentinel.
// A single INSERT is all-or-nothing, no partial row can persist on failure.
func (r *WheelSpecRepo) Create(ctx context.Context, s *model.WheelSpecification) error {
	exists, err := r.ExistsByFormNumber(ctx, s.FormNumber)
	if err != nil {
		return err
	}
	if exists {
		return ErrDuplicateFormNumber
	}

	const qInsert = `INSERT INTO wheel_specifications (
		form_number, submitted_by, submitted_date,
		tread_diameter_new, last_shop_issue_size, condemning_dia, wheel_gauge,
		variation_same_axle, variation_same_bogie, variation_same_coach,
		wheel_profile, intermediate_wwp, bearing_seat_diameter,
		roller_bearing_outer_dia, roller_bearing_bore_dia, roller_bearing_width,
		axle_box_housing_bore_dia, wheel_disc_width, status
	) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`
	res, err := r.db.ExecContext(ctx, qInsert,
		s.FormNumber, s.SubmittedBy, s.SubmittedDate,
		s.TreadDiameterNew, s.LastShopIssueSize, s.CondemningDia, s.WheelGauge,
		s.VariationSameAxle, s.VariationSameBogie, s.VariationSameCoach,
		s.WheelProfile, s.IntermediateWWP, s.BearingSeatDiameter,
		s.RollerBearingOuterDia, s.RollerBearingBoreDia, s.RollerBearingWidth,
		s.AxleBoxHousingBoreDia, s.WheelDiscWidth, "Saved")
	if err != nil {
		return dupOrErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)

	// Follow-up SELECT to populate status default and DB-side timestamps.
	// The row is already committed here: if this read fails the caller sees
	// an infrastructure error while the record exists, and a retried submit
	// is answered with the duplicate conflict.
	const qSelect = "SELECT " + wheelSpecColumns + " FROM wheel_specifications WHERE id = ?"
	return scanWheelSpec(r.db.QueryRowContext(ctx, qSelect, s.ID), s)
}

// List returns all wheel specifications matching the filter, in storage
// order. An empty result is a valid outcome, not an error.
func (r *WheelSpecRepo) List(ctx context.Context, f WheelSpecFilter) ([]*model.WheelSpecification, error) {
	q := "SELECT " + wheelSpecColumns + " FROM wheel_specifications"
	var conds []string
	var args []any
	if f.FormNumber != "" {
		conds = append(conds, "form_number = ?")
		args = append(args, f.FormNumber)
	}
	if f.SubmittedBy != "" {
		conds = append(conds, "submitted_by = ?")
		args = append(args, f.SubmittedBy)
	}
	if f.SubmittedDate != "" {
		conds = append(conds, "submitted_date = ?")
		args = append(args, f.SubmittedDate)
	}
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*model.WheelSpecification
	for rows.Next() {
		s := new(model.WheelSpecification)
		if err := scanWheelSpec(rows, s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
