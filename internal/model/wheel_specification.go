package model

import "time"

// WheelSpecification mirrors the `wheel_specifications` table. One row per
// submitted wheel maintenance form. FormNumber is unique and must carry the
// WHEEL- prefix; SubmittedBy is a loose string reference to users.user_id
// (deliberately no foreign key). SubmittedDate is stored as a plain string
// because the external contract treats it as opaque text.
//
// The fifteen measurement columns hold free-text values such as
// "915 (900-1000)"; they are required at creation but the system does not
// interpret them.
type WheelSpecification struct {
	ID            uint64 // wheel_specifications.id
	FormNumber    string // wheel_specifications.form_number (unique)
	SubmittedBy   string // wheel_specifications.submitted_by
	SubmittedDate string // wheel_specifications.submitted_date

	TreadDiameterNew      string // tread_diameter_new
	LastShopIssueSize     string // last_shop_issue_size
	CondemningDia         string // condemning_dia
	WheelGauge            string // wheel_gauge
	VariationSameAxle     string // variation_same_axle
	VariationSameBogie    string // variation_same_bogie
	VariationSameCoach    string // variation_same_coach
	WheelProfile          string // wheel_profile
	IntermediateWWP       string // intermediate_wwp
	BearingSeatDiameter   string // bearing_seat_diameter
	RollerBearingOuterDia string // roller_bearing_outer_dia
	RollerBearingBoreDia  string // roller_bearing_bore_dia
	RollerBearingWidth    string // roller_bearing_width
	AxleBoxHousingBoreDia string // axle_box_housing_bore_dia
	WheelDiscWidth        string // wheel_disc_width

	Status    string    // wheel_specifications.status (defaults to "Saved")
	CreatedAt time.Time // wheel_specifications.created_at
	UpdatedAt time.Time // wheel_specifications.updated_at
}
