package inspection

import "crew-safety-backend/internal/usecase/form"

// Enum token sets, field-group by field-group, exactly as the checklist
// offers them.
var (
	yesNo   = []string{"yes", "no"}
	yesNoNA = []string{"yes", "no", "na"}

	toolTokens      = []string{"good", "bad", "missing", "not-working", "needs-work"}
	emergencyTokens = []string{"good", "bad", "missing", "need-service"}
	vehicleTokens   = []string{"yes", "no", "good", "bad", "needs-work", "needs-attention"}
	trailerTokens   = []string{"good", "bad", "needs-work", "missing", "need"}

	chemicalIssueOptions = []string{"Containers are not Labeled", "Not Properly Stored", "NA", "Other"}
)

// Schema of the crew-inspection checklist, keyed by wire column name.
// Required flags follow the form: identity, safety cones, ladder and PPE
// items, chemical storage and the safety escalation flag are mandatory;
// condition grids and notes are not.
func newSchema() *form.Schema {
	fields := []form.Field{
		{Name: "inspection_date", Required: true},
		{Name: "inspected_by", Required: true},
		{Name: "crew_branch", Required: true},
		{Name: "crew_observed", Required: true},
		{Name: "department", Required: true},

		{Name: "safety_cones", Required: true, Enum: yesNoNA},

		{Name: "ladders_placed_secured", Required: true, Enum: yesNo},
		{Name: "ladder_labels_visible", Required: true, Enum: yesNo},
		{Name: "ladders_used_correctly", Required: true, Enum: yesNo},
		{Name: "ladder_notes"},

		{Name: "ppe_eye_protection", Required: true, Enum: yesNo},
		{Name: "ppe_hearing_protection", Required: true, Enum: yesNo},
		{Name: "ppe_hand_protection", Required: true, Enum: yesNo},
		{Name: "ppe_foot_protection", Required: true, Enum: yesNo},
		{Name: "ppe_head_protection", Required: true, Enum: yesNo},
		{Name: "ppe_notes"},

		{Name: "mowers_condition", Enum: toolTokens},
		{Name: "blowers_condition", Enum: toolTokens},
		{Name: "hedge_trimmer_condition", Enum: toolTokens},
		{Name: "line_trimmer_condition", Enum: toolTokens},
		{Name: "gas_tanks_condition", Enum: toolTokens},
		{Name: "tools_equipment_notes"},

		{Name: "fire_extinguisher_condition", Enum: emergencyTokens},
		{Name: "first_aid_kit_condition", Enum: emergencyTokens},
		{Name: "water_jug_condition", Enum: emergencyTokens},
		{Name: "warning_triangle_condition", Enum: emergencyTokens},
		{Name: "emergency_equipment_notes"},

		{Name: "dash_clean", Enum: vehicleTokens},
		{Name: "tire_condition", Enum: vehicleTokens},
		{Name: "truck_clean", Enum: vehicleTokens},
		{Name: "tarp_working", Enum: vehicleTokens},
		{Name: "inside_vehicle_condition", Enum: vehicleTokens},
		{Name: "vehicle_notes"},

		{Name: "trailer_connection", Enum: trailerTokens},
		{Name: "trailer_brake_away", Enum: trailerTokens},
		{Name: "trailer_chains", Enum: trailerTokens},
		{Name: "trailer_lock_pin", Enum: trailerTokens},
		{Name: "trailer_tires", Enum: trailerTokens},
		{Name: "trailer_secured", Enum: trailerTokens},
		{Name: "trailer_cleanliness", Enum: trailerTokens},
		{Name: "spare_tire", Enum: trailerTokens},
		{Name: "trailer_notes"},

		{Name: "chemicals_stored_properly", Required: true, Enum: yesNo},
		{Name: "chemical_issues", List: true, Options: chemicalIssueOptions},

		{Name: "additional_notes"},
		{Name: "safety_issue_asap", Required: true, Enum: yesNo},
		{Name: "immediate_safety_issues"},
		{Name: "follow_up_date"},
		{Name: "google_photos_link"},
	}

	resetOnChange := map[string]string{
		// Selecting a crew before its branch is structurally impossible; a
		// branch change always resets the crew selector.
		"crew_branch": "crew_observed",
	}
	clearWhen := []form.ConditionalClear{
		{Trigger: "chemicals_stored_properly", Value: "yes", Target: "chemical_issues"},
		{Trigger: "safety_issue_asap", Value: "no", Target: "immediate_safety_issues"},
	}
	return form.NewSchema(fields, resetOnChange, clearWhen)
}

var schema = newSchema()

// NewForm returns an empty crew-inspection form.
func NewForm() *form.Form { return form.New(schema) }
