package inspection

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList is a multi-select issue list stored as a JSON array column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("StringList: unsupported source type")
}

// Inspection is one submitted crew-inspection checklist. Column names are a
// wire contract shared with the reporting view and CSV export; do not rename.
type Inspection struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	ReportID string `gorm:"size:32;column:report_id;uniqueIndex:ux_crew_inspections_report_id" json:"id"`

	InspectionDate time.Time `gorm:"column:inspection_date" json:"inspection_date"`
	InspectedBy    string    `gorm:"size:128;column:inspected_by" json:"inspected_by"`
	CrewBranch     string    `gorm:"size:64;column:crew_branch;index:idx_crew_inspections_branch" json:"crew_branch"`
	CrewObserved   string    `gorm:"size:128;column:crew_observed" json:"crew_observed"`
	Department     string    `gorm:"size:64;column:department" json:"department"`

	SafetyCones string `gorm:"size:16;column:safety_cones" json:"safety_cones"`

	LaddersPlacedSecured string `gorm:"size:16;column:ladders_placed_secured" json:"ladders_placed_secured"`
	LadderLabelsVisible  string `gorm:"size:16;column:ladder_labels_visible" json:"ladder_labels_visible"`
	LaddersUsedCorrectly string `gorm:"size:16;column:ladders_used_correctly" json:"ladders_used_correctly"`
	LadderNotes          string `gorm:"type:text;column:ladder_notes" json:"ladder_notes"`

	PPEEyeProtection     string `gorm:"size:16;column:ppe_eye_protection" json:"ppe_eye_protection"`
	PPEHearingProtection string `gorm:"size:16;column:ppe_hearing_protection" json:"ppe_hearing_protection"`
	PPEHandProtection    string `gorm:"size:16;column:ppe_hand_protection" json:"ppe_hand_protection"`
	PPEFootProtection    string `gorm:"size:16;column:ppe_foot_protection" json:"ppe_foot_protection"`
	PPEHeadProtection    string `gorm:"size:16;column:ppe_head_protection" json:"ppe_head_protection"`
	PPENotes             string `gorm:"type:text;column:ppe_notes" json:"ppe_notes"`

	MowersCondition       string `gorm:"size:16;column:mowers_condition" json:"mowers_condition"`
	BlowersCondition      string `gorm:"size:16;column:blowers_condition" json:"blowers_condition"`
	HedgeTrimmerCondition string `gorm:"size:16;column:hedge_trimmer_condition" json:"hedge_trimmer_condition"`
	LineTrimmerCondition  string `gorm:"size:16;column:line_trimmer_condition" json:"line_trimmer_condition"`
	GasTanksCondition     string `gorm:"size:16;column:gas_tanks_condition" json:"gas_tanks_condition"`
	ToolsEquipmentNotes   string `gorm:"type:text;column:tools_equipment_notes" json:"tools_equipment_notes"`

	FireExtinguisherCondition string `gorm:"size:16;column:fire_extinguisher_condition" json:"fire_extinguisher_condition"`
	FirstAidKitCondition      string `gorm:"size:16;column:first_aid_kit_condition" json:"first_aid_kit_condition"`
	WaterJugCondition         string `gorm:"size:16;column:water_jug_condition" json:"water_jug_condition"`
	WarningTriangleCondition  string `gorm:"size:16;column:warning_triangle_condition" json:"warning_triangle_condition"`
	EmergencyEquipmentNotes   string `gorm:"type:text;column:emergency_equipment_notes" json:"emergency_equipment_notes"`

	DashClean              string `gorm:"size:16;column:dash_clean" json:"dash_clean"`
	TireCondition          string `gorm:"size:16;column:tire_condition" json:"tire_condition"`
	TruckClean             string `gorm:"size:16;column:truck_clean" json:"truck_clean"`
	TarpWorking            string `gorm:"size:16;column:tarp_working" json:"tarp_working"`
	InsideVehicleCondition string `gorm:"size:16;column:inside_vehicle_condition" json:"inside_vehicle_condition"`
	VehicleNotes           string `gorm:"type:text;column:vehicle_notes" json:"vehicle_notes"`

	TrailerConnection  string `gorm:"size:16;column:trailer_connection" json:"trailer_connection"`
	TrailerBrakeAway   string `gorm:"size:16;column:trailer_brake_away" json:"trailer_brake_away"`
	TrailerChains      string `gorm:"size:16;column:trailer_chains" json:"trailer_chains"`
	TrailerLockPin     string `gorm:"size:16;column:trailer_lock_pin" json:"trailer_lock_pin"`
	TrailerTires       string `gorm:"size:16;column:trailer_tires" json:"trailer_tires"`
	TrailerSecured     string `gorm:"size:16;column:trailer_secured" json:"trailer_secured"`
	TrailerCleanliness string `gorm:"size:16;column:trailer_cleanliness" json:"trailer_cleanliness"`
	SpareTire          string `gorm:"size:16;column:spare_tire" json:"spare_tire"`
	TrailerNotes       string `gorm:"type:text;column:trailer_notes" json:"trailer_notes"`

	ChemicalsStoredProperly string     `gorm:"size:16;column:chemicals_stored_properly" json:"chemicals_stored_properly"`
	ChemicalIssues          StringList `gorm:"type:json;column:chemical_issues" json:"chemical_issues"`

	AdditionalNotes       string     `gorm:"type:text;column:additional_notes" json:"additional_notes"`
	ImmediateSafetyIssues string     `gorm:"type:text;column:immediate_safety_issues" json:"immediate_safety_issues"`
	SafetyIssueASAP       string     `gorm:"size:16;column:safety_issue_asap;index:idx_crew_inspections_safety" json:"safety_issue_asap"`
	FollowUpDate          *time.Time `gorm:"column:follow_up_date" json:"follow_up_date"`
	GooglePhotosLink      string     `gorm:"type:text;column:google_photos_link" json:"google_photos_link"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (Inspection) TableName() string { return "crew_inspections" }
