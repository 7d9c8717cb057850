package gatecheck

import "time"

// GateCheck is one vehicle gate-check submission. Column names are the wire
// contract consumed by the reporting view; preserve exactly.
type GateCheck struct {
	ID       uint64 `gorm:"primaryKey;column:id" json:"-"`
	ReportID string `gorm:"size:32;column:report_id;uniqueIndex:ux_gate_checks_report_id" json:"id"`

	InspectionDate time.Time `gorm:"column:inspection_date" json:"inspection_date"`
	Email          string    `gorm:"size:128;column:email" json:"email"`
	Location       string    `gorm:"size:64;column:location;index:idx_gate_checks_location" json:"location"`
	Division       string    `gorm:"size:64;column:division" json:"division"`
	CrewNumber     string    `gorm:"size:128;column:crew_number" json:"crew_number"`
	DriverName     string    `gorm:"size:128;column:driver_name" json:"driver_name"`

	AllEmployeesHavePPE string `gorm:"size:16;column:all_employees_have_ppe" json:"all_employees_have_ppe"`

	LightsWorking             string `gorm:"size:16;column:lights_working" json:"lights_working"`
	MirrorsIntact             string `gorm:"size:16;column:mirrors_intact" json:"mirrors_intact"`
	LicensePlateVisible       string `gorm:"size:16;column:license_plate_visible" json:"license_plate_visible"`
	RegistrationInsuranceCard string `gorm:"size:16;column:registration_insurance_card" json:"registration_insurance_card"`

	LoadSecured            string `gorm:"size:16;column:load_secured" json:"load_secured"`
	TrimmerRacksLocked     string `gorm:"size:16;column:trimmer_racks_locked" json:"trimmer_racks_locked"`
	SafetyPinsInPlace      string `gorm:"size:16;column:safety_pins_in_place" json:"safety_pins_in_place"`
	TiresInflated          string `gorm:"size:16;column:tires_inflated" json:"tires_inflated"`
	SpareTireAvailable     string `gorm:"size:16;column:spare_tire_available" json:"spare_tire_available"`
	ChemicalLabeledSecured string `gorm:"size:16;column:chemical_labeled_secured" json:"chemical_labeled_secured"`

	FiveSafetyCones             string `gorm:"size:16;column:five_safety_cones" json:"five_safety_cones"`
	FirstAidKitFireExtinguisher string `gorm:"size:16;column:first_aid_kit_fire_extinguisher" json:"first_aid_kit_fire_extinguisher"`

	InspectedBy     string `gorm:"size:128;column:inspected_by" json:"inspected_by"`
	AdditionalItems string `gorm:"type:text;column:additional_items" json:"additional_items"`

	CreatedAt time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (GateCheck) TableName() string { return "gate_checks" }
