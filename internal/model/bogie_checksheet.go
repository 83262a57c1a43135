package model

import "time"

// BogieDetails is the first nested block of a bogie checksheet. All five
// fields are required at submission. The json tags define the key names used
// both on the wire and inside the serialized JSON column, so a stored block
// round-trips without any renaming.
type BogieDetails struct {
	BogieNo            string `json:"bogieNo"`
	MakerYearBuilt     string `json:"makerYearBuilt"`
	IncomingDivAndDate string `json:"incomingDivAndDate"`
	DeficitComponents  string `json:"deficitComponents"`
	DateOfIOH          string `json:"dateOfIOH"`
}

// BogieChecksheetFields is the component-condition block (five fields).
type BogieChecksheetFields struct {
	BogieFrameCondition      string `json:"bogieFrameCondition"`
	Bolster                  string `json:"bolster"`
	BolsterSuspensionBracket string `json:"bolsterSuspensionBracket"`
	LowerSpringSeat          string `json:"lowerSpringSeat"`
	AxleGuide                string `json:"axleGuide"`
}

// BMBCChecksheetFields is the brake-cylinder block (four fields).
type BMBCChecksheetFields struct {
	CylinderBody   string `json:"cylinderBody"`
	PistonTrunnion string `json:"pistonTrunnion"`
	AdjustingTube  string `json:"adjustingTube"`
	PlungerSpring  string `json:"plungerSpring"`
}

// BogieChecksheet mirrors the `bogie_checksheets` table. The three nested
// blocks are fixed-shape records serialized into JSON columns by the
// repository; they are never treated as free-form maps. InspectionBy is a
// loose string reference to users.user_id, like WheelSpecification.SubmittedBy.
// Bogie form numbers carry no prefix convention, unlike wheel specs.
type BogieChecksheet struct {
	ID             uint64 // bogie_checksheets.id
	FormNumber     string // bogie_checksheets.form_number (unique)
	InspectionBy   string // bogie_checksheets.inspection_by
	InspectionDate string // bogie_checksheets.inspection_date

	BogieDetails    BogieDetails          // bogie_details (JSON column)
	BogieChecksheet BogieChecksheetFields // bogie_checksheet (JSON column)
	BMBCChecksheet  BMBCChecksheetFields  // bmbc_checksheet (JSON column)

	Status    string    // bogie_checksheets.status (defaults to "Saved")
	CreatedAt time.Time // bogie_checksheets.created_at
	UpdatedAt time.Time // bogie_checksheets.updated_at
}
