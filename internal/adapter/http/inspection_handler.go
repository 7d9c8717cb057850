package http

import (
	"errors"
	"net/http"

	"crew-safety-backend/internal/usecase/form"
	inspectionUC "crew-safety-backend/internal/usecase/inspection"

	"github.com/labstack/echo/v4"
)

type InspectionHandler struct{ uc *inspectionUC.Usecase }

func NewInspectionHandler(uc *inspectionUC.Usecase) *InspectionHandler {
	return &InspectionHandler{uc: uc}
}

// createInspectionReq is the flat submission payload. Field-level rules
// (required, enum membership, conditional emptiness) live in the form
// schema; validator tags here only check structural shape.
type createInspectionReq struct {
	InspectionDate string `json:"inspection_date" validate:"required"`
	InspectedBy    string `json:"inspected_by"`
	CrewBranch     string `json:"crew_branch" validate:"omitempty,branchtoken"`
	CrewObserved   string `json:"crew_observed"`
	Department     string `json:"department"`

	SafetyCones string `json:"safety_cones"`

	LaddersPlacedSecured string `json:"ladders_placed_secured"`
	LadderLabelsVisible  string `json:"ladder_labels_visible"`
	LaddersUsedCorrectly string `json:"ladders_used_correctly"`
	LadderNotes          string `json:"ladder_notes"`

	PPEEyeProtection     string `json:"ppe_eye_protection"`
	PPEHearingProtection string `json:"ppe_hearing_protection"`
	PPEHandProtection    string `json:"ppe_hand_protection"`
	PPEFootProtection    string `json:"ppe_foot_protection"`
	PPEHeadProtection    string `json:"ppe_head_protection"`
	PPENotes             string `json:"ppe_notes"`

	MowersCondition       string `json:"mowers_condition"`
	BlowersCondition      string `json:"blowers_condition"`
	HedgeTrimmerCondition string `json:"hedge_trimmer_condition"`
	LineTrimmerCondition  string `json:"line_trimmer_condition"`
	GasTanksCondition     string `json:"gas_tanks_condition"`
	ToolsEquipmentNotes   string `json:"tools_equipment_notes"`

	FireExtinguisherCondition string `json:"fire_extinguisher_condition"`
	FirstAidKitCondition      string `json:"first_aid_kit_condition"`
	WaterJugCondition         string `json:"water_jug_condition"`
	WarningTriangleCondition  string `json:"warning_triangle_condition"`
	EmergencyEquipmentNotes   string `json:"emergency_equipment_notes"`

	DashClean              string `json:"dash_clean"`
	TireCondition          string `json:"tire_condition"`
	TruckClean             string `json:"truck_clean"`
	TarpWorking            string `json:"tarp_working"`
	InsideVehicleCondition string `json:"inside_vehicle_condition"`
	VehicleNotes           string `json:"vehicle_notes"`

	TrailerConnection  string `json:"trailer_connection"`
	TrailerBrakeAway   string `json:"trailer_brake_away"`
	TrailerChains      string `json:"trailer_chains"`
	TrailerLockPin     string `json:"trailer_lock_pin"`
	TrailerTires       string `json:"trailer_tires"`
	TrailerSecured     string `json:"trailer_secured"`
	TrailerCleanliness string `json:"trailer_cleanliness"`
	SpareTire          string `json:"spare_tire"`
	TrailerNotes       string `json:"trailer_notes"`

	ChemicalsStoredProperly string   `json:"chemicals_stored_properly"`
	ChemicalIssues          []string `json:"chemical_issues"`

	AdditionalNotes       string `json:"additional_notes"`
	ImmediateSafetyIssues string `json:"immediate_safety_issues"`
	SafetyIssueASAP       string `json:"safety_issue_asap"`
	FollowUpDate          string `json:"follow_up_date" validate:"omitempty,wiredate"`
	GooglePhotosLink      string `json:"google_photos_link" validate:"omitempty,url"`
}

func (r createInspectionReq) values() map[string]string {
	return map[string]string{
		"inspection_date": r.InspectionDate,
		"inspected_by":    r.InspectedBy,
		"crew_branch":     r.CrewBranch,
		"crew_observed":   r.CrewObserved,
		"department":      r.Department,

		"safety_cones": r.SafetyCones,

		"ladders_placed_secured": r.LaddersPlacedSecured,
		"ladder_labels_visible":  r.LadderLabelsVisible,
		"ladders_used_correctly": r.LaddersUsedCorrectly,
		"ladder_notes":           r.LadderNotes,

		"ppe_eye_protection":     r.PPEEyeProtection,
		"ppe_hearing_protection": r.PPEHearingProtection,
		"ppe_hand_protection":    r.PPEHandProtection,
		"ppe_foot_protection":    r.PPEFootProtection,
		"ppe_head_protection":    r.PPEHeadProtection,
		"ppe_notes":              r.PPENotes,

		"mowers_condition":        r.MowersCondition,
		"blowers_condition":       r.BlowersCondition,
		"hedge_trimmer_condition": r.HedgeTrimmerCondition,
		"line_trimmer_condition":  r.LineTrimmerCondition,
		"gas_tanks_condition":     r.GasTanksCondition,
		"tools_equipment_notes":   r.ToolsEquipmentNotes,

		"fire_extinguisher_condition": r.FireExtinguisherCondition,
		"first_aid_kit_condition":     r.FirstAidKitCondition,
		"water_jug_condition":         r.WaterJugCondition,
		"warning_triangle_condition":  r.WarningTriangleCondition,
		"emergency_equipment_notes":   r.EmergencyEquipmentNotes,

		"dash_clean":               r.DashClean,
		"tire_condition":           r.TireCondition,
		"truck_clean":              r.TruckClean,
		"tarp_working":             r.TarpWorking,
		"inside_vehicle_condition": r.InsideVehicleCondition,
		"vehicle_notes":            r.VehicleNotes,

		"trailer_connection":  r.TrailerConnection,
		"trailer_brake_away":  r.TrailerBrakeAway,
		"trailer_chains":      r.TrailerChains,
		"trailer_lock_pin":    r.TrailerLockPin,
		"trailer_tires":       r.TrailerTires,
		"trailer_secured":     r.TrailerSecured,
		"trailer_cleanliness": r.TrailerCleanliness,
		"spare_tire":          r.SpareTire,
		"trailer_notes":       r.TrailerNotes,

		"chemicals_stored_properly": r.ChemicalsStoredProperly,

		"additional_notes":        r.AdditionalNotes,
		"immediate_safety_issues": r.ImmediateSafetyIssues,
		"safety_issue_asap":       r.SafetyIssueASAP,
		"follow_up_date":          r.FollowUpDate,
		"google_photos_link":      r.GooglePhotosLink,
	}
}

func (h *InspectionHandler) Create(c echo.Context) error {
	var req createInspectionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	f := inspectionUC.NewForm()
	f.Apply(req.values(), map[string][]string{"chemical_issues": req.ChemicalIssues})

	res, err := h.uc.Submit(c.Request().Context(), f)
	if err != nil {
		return submitError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

// submitError maps submit failures onto status codes shared by both forms.
func submitError(c echo.Context, err error) error {
	var verr *form.ValidationError
	if errors.As(err, &verr) {
		details := make([]FieldError, 0, len(verr.Problems))
		for _, p := range verr.Problems {
			details = append(details, FieldError{Field: p.Field, Message: p.Message})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: details})
	}
	if errors.Is(err, form.ErrSubmitInFlight) || errors.Is(err, form.ErrAlreadySubmitted) {
		return c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not save submission"})
}
