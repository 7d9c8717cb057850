package report

// Spec is the per-kind configuration of the engine: which row keys the
// filter dimensions read, the sortable column allow-list, and the CSV
// column contract.
type Spec struct {
	Kind           Kind
	FilenamePrefix string

	BranchKey     string
	DepartmentKey string
	InspectorKey  string
	CrewKey       string
	// SafetyKey is empty for kinds without a safety-alert dimension.
	SafetyKey string

	SortFields  map[string]FieldType
	DefaultSort SortState

	Columns []Column
}

var inspectionSpec = Spec{
	Kind:           KindInspections,
	FilenamePrefix: "inspection-reports",

	BranchKey:     "crew_branch",
	DepartmentKey: "department",
	InspectorKey:  "inspected_by",
	CrewKey:       "crew_observed",
	SafetyKey:     "safety_issue_asap",

	SortFields: map[string]FieldType{
		"inspection_date":   TypeDate,
		"created_at":        TypeDate,
		"follow_up_date":    TypeDate,
		"inspected_by":      TypeText,
		"crew_branch":       TypeBranch,
		"department":        TypeDepartment,
		"crew_observed":     TypeText,
		"safety_issue_asap": TypeSafety,
	},
	DefaultSort: SortState{Field: "inspection_date", Dir: Desc},

	Columns: []Column{
		{Header: "Inspection Date", Key: "inspection_date", Kind: ColDateTime},
		{Header: "Inspector", Key: "inspected_by", Kind: ColText},
		{Header: "Branch", Key: "crew_branch", Kind: ColBranch},
		{Header: "Crew Observed", Key: "crew_observed", Kind: ColText},
		{Header: "Department", Key: "department", Kind: ColDepartment},
		{Header: "Safety Cones", Key: "safety_cones", Kind: ColEnum},
		{Header: "Ladders Placed/Secured", Key: "ladders_placed_secured", Kind: ColEnum},
		{Header: "Ladder Labels Visible", Key: "ladder_labels_visible", Kind: ColEnum},
		{Header: "Ladders Used Correctly", Key: "ladders_used_correctly", Kind: ColEnum},
		{Header: "Ladder Notes", Key: "ladder_notes", Kind: ColText},
		{Header: "PPE Eye Protection", Key: "ppe_eye_protection", Kind: ColEnum},
		{Header: "PPE Hearing Protection", Key: "ppe_hearing_protection", Kind: ColEnum},
		{Header: "PPE Hand Protection", Key: "ppe_hand_protection", Kind: ColEnum},
		{Header: "PPE Foot Protection", Key: "ppe_foot_protection", Kind: ColEnum},
		{Header: "PPE Head Protection", Key: "ppe_head_protection", Kind: ColEnum},
		{Header: "PPE Notes", Key: "ppe_notes", Kind: ColText},
		{Header: "Mowers Condition", Key: "mowers_condition", Kind: ColEnum},
		{Header: "Blowers Condition", Key: "blowers_condition", Kind: ColEnum},
		{Header: "Hedge Trimmer Condition", Key: "hedge_trimmer_condition", Kind: ColEnum},
		{Header: "Line Trimmer Condition", Key: "line_trimmer_condition", Kind: ColEnum},
		{Header: "Gas Tanks Condition", Key: "gas_tanks_condition", Kind: ColEnum},
		{Header: "Tools/Equipment Notes", Key: "tools_equipment_notes", Kind: ColText},
		{Header: "Fire Extinguisher", Key: "fire_extinguisher_condition", Kind: ColEnum},
		{Header: "First Aid Kit", Key: "first_aid_kit_condition", Kind: ColEnum},
		{Header: "Water Jug", Key: "water_jug_condition", Kind: ColEnum},
		{Header: "Warning Triangle", Key: "warning_triangle_condition", Kind: ColEnum},
		{Header: "Emergency Equipment Notes", Key: "emergency_equipment_notes", Kind: ColText},
		{Header: "Dash Clean", Key: "dash_clean", Kind: ColEnum},
		{Header: "Tire Condition", Key: "tire_condition", Kind: ColEnum},
		{Header: "Truck Clean", Key: "truck_clean", Kind: ColEnum},
		{Header: "Tarp Working", Key: "tarp_working", Kind: ColEnum},
		{Header: "Inside Vehicle Condition", Key: "inside_vehicle_condition", Kind: ColEnum},
		{Header: "Vehicle Notes", Key: "vehicle_notes", Kind: ColText},
		{Header: "Trailer Connection", Key: "trailer_connection", Kind: ColEnum},
		{Header: "Trailer Brake Away", Key: "trailer_brake_away", Kind: ColEnum},
		{Header: "Trailer Chains", Key: "trailer_chains", Kind: ColEnum},
		{Header: "Trailer Lock Pin", Key: "trailer_lock_pin", Kind: ColEnum},
		{Header: "Trailer Tires", Key: "trailer_tires", Kind: ColEnum},
		{Header: "Trailer Secured", Key: "trailer_secured", Kind: ColEnum},
		{Header: "Trailer Cleanliness", Key: "trailer_cleanliness", Kind: ColEnum},
		{Header: "Spare Tire", Key: "spare_tire", Kind: ColEnum},
		{Header: "Trailer Notes", Key: "trailer_notes", Kind: ColText},
		{Header: "Chemicals Stored Properly", Key: "chemicals_stored_properly", Kind: ColEnum},
		{Header: "Chemical Issues", Key: "chemical_issues", Kind: ColList},
		{Header: "Additional Notes", Key: "additional_notes", Kind: ColText},
		{Header: "Safety Issue ASAP", Key: "safety_issue_asap", Kind: ColEnum},
		{Header: "Immediate Safety Issues", Key: "immediate_safety_issues", Kind: ColText},
		{Header: "Follow-Up Date", Key: "follow_up_date", Kind: ColDate},
		{Header: "Google Photos Link", Key: "google_photos_link", Kind: ColText},
		{Header: "Report ID", Key: "", Kind: ColID},
		{Header: "Created At", Key: "created_at", Kind: ColDateTime},
	},
}

var gateCheckSpec = Spec{
	Kind:           KindGateChecks,
	FilenamePrefix: "gate-check-reports",

	BranchKey:     "location",
	DepartmentKey: "division",
	InspectorKey:  "inspected_by",
	CrewKey:       "crew_number",

	SortFields: map[string]FieldType{
		"inspection_date": TypeDate,
		"created_at":      TypeDate,
		"inspected_by":    TypeText,
		"location":        TypeBranch,
		"division":        TypeText,
		"crew_number":     TypeText,
		"driver_name":     TypeText,
	},
	DefaultSort: SortState{Field: "inspection_date", Dir: Desc},

	Columns: []Column{
		{Header: "Inspection Date", Key: "inspection_date", Kind: ColDate},
		{Header: "Email", Key: "email", Kind: ColText},
		{Header: "Location", Key: "location", Kind: ColBranch},
		{Header: "Division", Key: "division", Kind: ColEnum},
		{Header: "Crew", Key: "crew_number", Kind: ColText},
		{Header: "Driver Name", Key: "driver_name", Kind: ColText},
		{Header: "All Employees Have PPE", Key: "all_employees_have_ppe", Kind: ColEnum},
		{Header: "Lights Working", Key: "lights_working", Kind: ColEnum},
		{Header: "Mirrors Intact", Key: "mirrors_intact", Kind: ColEnum},
		{Header: "License Plate Visible", Key: "license_plate_visible", Kind: ColEnum},
		{Header: "Registration/Insurance Card", Key: "registration_insurance_card", Kind: ColEnum},
		{Header: "Load Secured", Key: "load_secured", Kind: ColEnum},
		{Header: "Trimmer Racks Locked", Key: "trimmer_racks_locked", Kind: ColEnum},
		{Header: "Safety Pins in Place", Key: "safety_pins_in_place", Kind: ColEnum},
		{Header: "Tires Inflated", Key: "tires_inflated", Kind: ColEnum},
		{Header: "Spare Tire Available", Key: "spare_tire_available", Kind: ColEnum},
		{Header: "Chemical Labeled & Secured", Key: "chemical_labeled_secured", Kind: ColEnum},
		{Header: "5 Safety Cones", Key: "five_safety_cones", Kind: ColEnum},
		{Header: "First Aid Kit / Fire Extinguisher", Key: "first_aid_kit_fire_extinguisher", Kind: ColEnum},
		{Header: "Inspected By", Key: "inspected_by", Kind: ColText},
		{Header: "Additional Items", Key: "additional_items", Kind: ColText},
		{Header: "Report ID", Key: "", Kind: ColID},
		{Header: "Created At", Key: "created_at", Kind: ColDateTime},
	},
}

var specs = map[Kind]Spec{
	KindInspections: inspectionSpec,
	KindGateChecks:  gateCheckSpec,
}

// SpecFor returns the per-kind configuration; unknown kinds panic, they are
// a programming error.
func SpecFor(kind Kind) Spec {
	spec, ok := specs[kind]
	if !ok {
		panic("report: unknown kind " + string(kind))
	}
	return spec
}
