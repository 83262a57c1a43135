// Request and response shapes for the form endpoints, plus their validation.
// The external contract is camelCase while storage is snake_case; the mapping
// between the two is declared once here (requestFieldChecks + the *FromModel
// constructors) instead of being rebuilt ad hoc inside each handler.
//
// Required fields in the incoming JSON are bound through pointers: a missing
// key stays nil and fails validation, while an explicit empty string is
// accepted. Required means the key must be present, not that its value is
// non-empty.
package handler

import (
	"fmt"
	"strings"

	"github.com/iliyamo/kpa-form-data/internal/model"
)

// envelope is the uniform {success, message, data} response wrapper.
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

// ----- wheel specifications -----

// wheelFieldsReq is the 15-field measurement block of a wheel specification
// submission.
type wheelFieldsReq struct {
	TreadDiameterNew      *string `json:"treadDiameterNew"`
	LastShopIssueSize     *string `json:"lastShopIssueSize"`
	CondemningDia         *string `json:"condemningDia"`
	WheelGauge            *string `json:"wheelGauge"`
	VariationSameAxle     *string `json:"variationSameAxle"`
	VariationSameBogie    *string `json:"variationSameBogie"`
	VariationSameCoach    *string `json:"variationSameCoach"`
	WheelProfile          *string `json:"wheelProfile"`
	IntermediateWWP       *string `json:"intermediateWWP"`
	BearingSeatDiameter   *string `json:"bearingSeatDiameter"`
	RollerBearingOuterDia *string `json:"rollerBearingOuterDia"`
	RollerBearingBoreDia  *string `json:"rollerBearingBoreDia"`
	RollerBearingWidth    *string `json:"rollerBearingWidth"`
	AxleBoxHousingBoreDia *string `json:"axleBoxHousingBoreDia"`
	WheelDiscWidth        *string `json:"wheelDiscWidth"`
}

type wheelSpecCreateReq struct {
	FormNumber    string          `json:"formNumber"`
	SubmittedBy   string          `json:"submittedBy"`
	SubmittedDate string          `json:"submittedDate"`
	Fields        *wheelFieldsReq `json:"fields"`
}

// Validate enforces the submission contract: WHEEL- prefixed form number,
// submitter and date present, and all 15 measurement fields present. The
// returned error names the offending field.
func (r *wheelSpecCreateReq) Validate() error {
	if r.FormNumber == "" || !strings.HasPrefix(r.FormNumber, "WHEEL-") {
		return fmt.Errorf("formNumber must start with WHEEL-")
	}
	if strings.TrimSpace(r.SubmittedBy) == "" {
		return fmt.Errorf("submittedBy is required")
	}
	if strings.TrimSpace(r.SubmittedDate) == "" {
		return fmt.Errorf("submittedDate is required")
	}
	if r.Fields == nil {
		return fmt.Errorf("fields is required")
	}
	for _, c := range r.Fields.checks() {
		if c.val == nil {
			return fmt.Errorf("fields.%s is required", c.name)
		}
	}
	return nil
}

type fieldCheck struct {
	name string
	val  *string
}

func (f *wheelFieldsReq) checks() []fieldCheck {
	return []fieldCheck{
		{"treadDiameterNew", f.TreadDiameterNew},
		{"lastShopIssueSize", f.LastShopIssueSize},
		{"condemningDia", f.CondemningDia},
		{"wheelGauge", f.WheelGauge},
		{"variationSameAxle", f.VariationSameAxle},
		{"variationSameBogie", f.VariationSameBogie},
		{"variationSameCoach", f.VariationSameCoach},
		{"wheelProfile", f.WheelProfile},
		{"intermediateWWP", f.IntermediateWWP},
		{"bearingSeatDiameter", f.BearingSeatDiameter},
		{"rollerBearingOuterDia", f.RollerBearingOuterDia},
		{"rollerBearingBoreDia", f.RollerBearingBoreDia},
		{"rollerBearingWidth", f.RollerBearingWidth},
		{"axleBoxHousingBoreDia", f.AxleBoxHousingBoreDia},
		{"wheelDiscWidth", f.WheelDiscWidth},
	}
}

// toModel converts a validated request into a storage record. Must only be
// called after Validate so the pointer derefs are safe.
func (r *wheelSpecCreateReq) toModel() *model.WheelSpecification {
	f := r.Fields
	return &model.WheelSpecification{
		FormNumber:            r.FormNumber,
		SubmittedBy:           r.SubmittedBy,
		SubmittedDate:         r.SubmittedDate,
		TreadDiameterNew:      *f.TreadDiameterNew,
		LastShopIssueSize:     *f.LastShopIssueSize,
		CondemningDia:         *f.CondemningDia,
		WheelGauge:            *f.WheelGauge,
		VariationSameAxle:     *f.VariationSameAxle,
		VariationSameBogie:    *f.VariationSameBogie,
		VariationSameCoach:    *f.VariationSameCoach,
		WheelProfile:          *f.WheelProfile,
		IntermediateWWP:       *f.IntermediateWWP,
		BearingSeatDiameter:   *f.BearingSeatDiameter,
		RollerBearingOuterDia: *f.RollerBearingOuterDia,
		RollerBearingBoreDia:  *f.RollerBearingBoreDia,
		RollerBearingWidth:    *f.RollerBearingWidth,
		AxleBoxHousingBoreDia: *f.AxleBoxHousingBoreDia,
		WheelDiscWidth:        *f.WheelDiscWidth,
	}
}

// wheelFieldsResp is the outbound measurement block.
type wheelFieldsResp struct {
	TreadDiameterNew      string `json:"treadDiameterNew"`
	LastShopIssueSize     string `json:"lastShopIssueSize"`
	CondemningDia         string `json:"condemningDia"`
	WheelGauge            string `json:"wheelGauge"`
	VariationSameAxle     string `json:"variationSameAxle"`
	VariationSameBogie    string `json:"variationSameBogie"`
	VariationSameCoach    string `json:"variationSameCoach"`
	WheelProfile          string `json:"wheelProfile"`
	IntermediateWWP       string `json:"intermediateWWP"`
	BearingSeatDiameter   string `json:"bearingSeatDiameter"`
	RollerBearingOuterDia string `json:"rollerBearingOuterDia"`
	RollerBearingBoreDia  string `json:"rollerBearingBoreDia"`
	RollerBearingWidth    string `json:"rollerBearingWidth"`
	AxleBoxHousingBoreDia string `json:"axleBoxHousingBoreDia"`
	WheelDiscWidth        string `json:"wheelDiscWidth"`
}

type wheelSpecItem struct {
	FormNumber    string          `json:"formNumber"`
	SubmittedBy   string          `json:"submittedBy"`
	SubmittedDate string          `json:"submittedDate"`
	Fields        wheelFieldsResp `json:"fields"`
	Status        string          `json:"status"`
}

func wheelSpecItemFromModel(m *model.WheelSpecification) wheelSpecItem {
	return wheelSpecItem{
		FormNumber:    m.FormNumber,
		SubmittedBy:   m.SubmittedBy,
		SubmittedDate: m.SubmittedDate,
		Fields: wheelFieldsResp{
			TreadDiameterNew:      m.TreadDiameterNew,
			LastShopIssueSize:     m.LastShopIssueSize,
			CondemningDia:         m.CondemningDia,
			WheelGauge:            m.WheelGauge,
			VariationSameAxle:     m.VariationSameAxle,
			VariationSameBogie:    m.VariationSameBogie,
			VariationSameCoach:    m.VariationSameCoach,
			WheelProfile:          m.WheelProfile,
			IntermediateWWP:       m.IntermediateWWP,
			BearingSeatDiameter:   m.BearingSeatDiameter,
			RollerBearingOuterDia: m.RollerBearingOuterDia,
			RollerBearingBoreDia:  m.RollerBearingBoreDia,
			RollerBearingWidth:    m.RollerBearingWidth,
			AxleBoxHousingBoreDia: m.AxleBoxHousingBoreDia,
			WheelDiscWidth:        m.WheelDiscWidth,
		},
		Status: m.Status,
	}
}

// ----- bogie checksheets -----

type bogieDetailsReq struct {
	BogieNo            *string `json:"bogieNo"`
	MakerYearBuilt     *string `json:"makerYearBuilt"`
	IncomingDivAndDate *string `json:"incomingDivAndDate"`
	DeficitComponents  *string `json:"deficitComponents"`
	DateOfIOH          *string `json:"dateOfIOH"`
}

type bogieChecksheetFieldsReq struct {
	BogieFrameCondition      *string `json:"bogieFrameCondition"`
	Bolster                  *string `json:"bolster"`
	BolsterSuspensionBracket *string `json:"bolsterSuspensionBracket"`
	LowerSpringSeat          *string `json:"lowerSpringSeat"`
	AxleGuide                *string `json:"axleGuide"`
}

type bmbcChecksheetFieldsReq struct {
	CylinderBody   *string `json:"cylinderBody"`
	PistonTrunnion *string `json:"pistonTrunnion"`
	AdjustingTube  *string `json:"adjustingTube"`
	PlungerSpring  *string `json:"plungerSpring"`
}

type bogieChecksheetCreateReq struct {
	FormNumber      string                    `json:"formNumber"`
	InspectionBy    string                    `json:"inspectionBy"`
	InspectionDate  string                    `json:"inspectionDate"`
	BogieDetails    *bogieDetailsReq          `json:"bogieDetails"`
	BogieChecksheet *bogieChecksheetFieldsReq `json:"bogieChecksheet"`
	BMBCChecksheet  *bmbcChecksheetFieldsReq  `json:"bmbcChecksheet"`
}

// Validate enforces presence of the three nested blocks and their fixed field
// sets. Bogie form numbers carry no prefix convention; only wheel
// specifications have one.
func (r *bogieChecksheetCreateReq) Validate() error {
	if strings.TrimSpace(r.FormNumber) == "" {
		return fmt.Errorf("formNumber is required")
	}
	if strings.TrimSpace(r.InspectionBy) == "" {
		return fmt.Errorf("inspectionBy is required")
	}
	if strings.TrimSpace(r.InspectionDate) == "" {
		return fmt.Errorf("inspectionDate is required")
	}
	if r.BogieDetails == nil {
		return fmt.Errorf("bogieDetails is required")
	}
	if r.BogieChecksheet == nil {
		return fmt.Errorf("bogieChecksheet is required")
	}
	if r.BMBCChecksheet == nil {
		return fmt.Errorf("bmbcChecksheet is required")
	}
	blocks := []struct {
		block  string
		checks []fieldCheck
	}{
		{"bogieDetails", []fieldCheck{
			{"bogieNo", r.BogieDetails.BogieNo},
			{"makerYearBuilt", r.BogieDetails.MakerYearBuilt},
			{"incomingDivAndDate", r.BogieDetails.IncomingDivAndDate},
			{"deficitComponents", r.BogieDetails.DeficitComponents},
			{"dateOfIOH", r.BogieDetails.DateOfIOH},
		}},
		{"bogieChecksheet", []fieldCheck{
			{"bogieFrameCondition", r.BogieChecksheet.BogieFrameCondition},
			{"bolster", r.BogieChecksheet.Bolster},
			{"bolsterSuspensionBracket", r.BogieChecksheet.BolsterSuspensionBracket},
			{"lowerSpringSeat", r.BogieChecksheet.LowerSpringSeat},
			{"axleGuide", r.BogieChecksheet.AxleGuide},
		}},
		{"bmbcChecksheet", []fieldCheck{
			{"cylinderBody", r.BMBCChecksheet.CylinderBody},
			{"pistonTrunnion", r.BMBCChecksheet.PistonTrunnion},
			{"adjustingTube", r.BMBCChecksheet.AdjustingTube},
			{"plungerSpring", r.BMBCChecksheet.PlungerSpring},
		}},
	}
	for _, b := range blocks {
		for _, c := range b.checks {
			if c.val == nil {
				return fmt.Errorf("%s.%s is required", b.block, c.name)
			}
		}
	}
	return nil
}

func (r *bogieChecksheetCreateReq) toModel() *model.BogieChecksheet {
	return &model.BogieChecksheet{
		FormNumber:     r.FormNumber,
		InspectionBy:   r.InspectionBy,
		InspectionDate: r.InspectionDate,
		BogieDetails: model.BogieDetails{
			BogieNo:            *r.BogieDetails.BogieNo,
			MakerYearBuilt:     *r.BogieDetails.MakerYearBuilt,
			IncomingDivAndDate: *r.BogieDetails.IncomingDivAndDate,
			DeficitComponents:  *r.BogieDetails.DeficitComponents,
			DateOfIOH:          *r.BogieDetails.DateOfIOH,
		},
		BogieChecksheet: model.BogieChecksheetFields{
			BogieFrameCondition:      *r.BogieChecksheet.BogieFrameCondition,
			Bolster:                  *r.BogieChecksheet.Bolster,
			BolsterSuspensionBracket: *r.BogieChecksheet.BolsterSuspensionBracket,
			LowerSpringSeat:          *r.BogieChecksheet.LowerSpringSeat,
			AxleGuide:                *r.BogieChecksheet.AxleGuide,
		},
		BMBCChecksheet: model.BMBCChecksheetFields{
			CylinderBody:   *r.BMBCChecksheet.CylinderBody,
			PistonTrunnion: *r.BMBCChecksheet.PistonTrunnion,
			AdjustingTube:  *r.BMBCChecksheet.AdjustingTube,
			PlungerSpring:  *r.BMBCChecksheet.PlungerSpring,
		},
	}
}
