package gatecheck

import "crew-safety-backend/internal/usecase/form"

var (
	yesNo = []string{"yes", "no"}
	// The gate-check grids add a service state and an n/a column.
	checkTokens = []string{"yes", "no", "needs service", "na"}
)

// Schema of the gate-check form, keyed by wire column name. Everything but
// email and the suggestions box is required.
func newSchema() *form.Schema {
	fields := []form.Field{
		{Name: "inspection_date", Required: true},
		{Name: "email"},
		{Name: "location", Required: true},
		{Name: "division", Required: true},
		{Name: "crew_number", Required: true},
		{Name: "driver_name", Required: true},

		{Name: "all_employees_have_ppe", Required: true, Enum: yesNo},

		{Name: "lights_working", Required: true, Enum: checkTokens},
		{Name: "mirrors_intact", Required: true, Enum: checkTokens},
		{Name: "license_plate_visible", Required: true, Enum: checkTokens},
		{Name: "registration_insurance_card", Required: true, Enum: checkTokens},

		{Name: "load_secured", Required: true, Enum: checkTokens},
		{Name: "trimmer_racks_locked", Required: true, Enum: checkTokens},
		{Name: "safety_pins_in_place", Required: true, Enum: checkTokens},
		{Name: "tires_inflated", Required: true, Enum: checkTokens},
		{Name: "spare_tire_available", Required: true, Enum: checkTokens},
		{Name: "chemical_labeled_secured", Required: true, Enum: checkTokens},

		{Name: "five_safety_cones", Required: true, Enum: yesNo},
		{Name: "first_aid_kit_fire_extinguisher", Required: true, Enum: yesNo},

		{Name: "inspected_by", Required: true},
		{Name: "additional_items"},
	}

	resetOnChange := map[string]string{
		"location": "crew_number",
	}
	return form.NewSchema(fields, resetOnChange, nil)
}

var schema = newSchema()

// NewForm returns an empty gate-check form.
func NewForm() *form.Form { return form.New(schema) }
