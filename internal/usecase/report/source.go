package report

import (
	"context"
	"time"

	"crew-safety-backend/internal/domain/gatecheck"
	"crew-safety-backend/internal/domain/inspection"
)

// StoreSource adapts the two record repositories to the engine's Source.
type StoreSource struct {
	Inspections inspection.Repository
	GateChecks  gatecheck.Repository
}

func (s StoreSource) Rows(ctx context.Context, kind Kind) ([]Row, error) {
	switch kind {
	case KindInspections:
		recs, err := s.Inspections.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]Row, 0, len(recs))
		for i := range recs {
			rows = append(rows, inspectionRow(&recs[i]))
		}
		return rows, nil
	case KindGateChecks:
		recs, err := s.GateChecks.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]Row, 0, len(recs))
		for i := range recs {
			rows = append(rows, gateCheckRow(&recs[i]))
		}
		return rows, nil
	}
	panic("report: unknown kind " + string(kind))
}

func inspectionRow(rec *inspection.Inspection) Row {
	dates := map[string]time.Time{
		"inspection_date": rec.InspectionDate,
		"created_at":      rec.CreatedAt,
	}
	if rec.FollowUpDate != nil {
		dates["follow_up_date"] = *rec.FollowUpDate
	}
	return Row{
		ID: rec.ReportID,
		Fields: map[string]string{
			"inspected_by":  rec.InspectedBy,
			"crew_branch":   rec.CrewBranch,
			"crew_observed": rec.CrewObserved,
			"department":    rec.Department,

			"safety_cones": rec.SafetyCones,

			"ladders_placed_secured": rec.LaddersPlacedSecured,
			"ladder_labels_visible":  rec.LadderLabelsVisible,
			"ladders_used_correctly": rec.LaddersUsedCorrectly,
			"ladder_notes":           rec.LadderNotes,

			"ppe_eye_protection":     rec.PPEEyeProtection,
			"ppe_hearing_protection": rec.PPEHearingProtection,
			"ppe_hand_protection":    rec.PPEHandProtection,
			"ppe_foot_protection":    rec.PPEFootProtection,
			"ppe_head_protection":    rec.PPEHeadProtection,
			"ppe_notes":              rec.PPENotes,

			"mowers_condition":        rec.MowersCondition,
			"blowers_condition":       rec.BlowersCondition,
			"hedge_trimmer_condition": rec.HedgeTrimmerCondition,
			"line_trimmer_condition":  rec.LineTrimmerCondition,
			"gas_tanks_condition":     rec.GasTanksCondition,
			"tools_equipment_notes":   rec.ToolsEquipmentNotes,

			"fire_extinguisher_condition": rec.FireExtinguisherCondition,
			"first_aid_kit_condition":     rec.FirstAidKitCondition,
			"water_jug_condition":         rec.WaterJugCondition,
			"warning_triangle_condition":  rec.WarningTriangleCondition,
			"emergency_equipment_notes":   rec.EmergencyEquipmentNotes,

			"dash_clean":               rec.DashClean,
			"tire_condition":           rec.TireCondition,
			"truck_clean":              rec.TruckClean,
			"tarp_working":             rec.TarpWorking,
			"inside_vehicle_condition": rec.InsideVehicleCondition,
			"vehicle_notes":            rec.VehicleNotes,

			"trailer_connection":  rec.TrailerConnection,
			"trailer_brake_away":  rec.TrailerBrakeAway,
			"trailer_chains":      rec.TrailerChains,
			"trailer_lock_pin":    rec.TrailerLockPin,
			"trailer_tires":       rec.TrailerTires,
			"trailer_secured":     rec.TrailerSecured,
			"trailer_cleanliness": rec.TrailerCleanliness,
			"spare_tire":          rec.SpareTire,
			"trailer_notes":       rec.TrailerNotes,

			"chemicals_stored_properly": rec.ChemicalsStoredProperly,

			"additional_notes":        rec.AdditionalNotes,
			"immediate_safety_issues": rec.ImmediateSafetyIssues,
			"safety_issue_asap":       rec.SafetyIssueASAP,
			"google_photos_link":      rec.GooglePhotosLink,
		},
		Lists: map[string][]string{
			"chemical_issues": rec.ChemicalIssues,
		},
		Dates: dates,
	}
}

func gateCheckRow(rec *gatecheck.GateCheck) Row {
	return Row{
		ID: rec.ReportID,
		Fields: map[string]string{
			"email":       rec.Email,
			"location":    rec.Location,
			"division":    rec.Division,
			"crew_number": rec.CrewNumber,
			"driver_name": rec.DriverName,

			"all_employees_have_ppe": rec.AllEmployeesHavePPE,

			"lights_working":              rec.LightsWorking,
			"mirrors_intact":              rec.MirrorsIntact,
			"license_plate_visible":       rec.LicensePlateVisible,
			"registration_insurance_card": rec.RegistrationInsuranceCard,

			"load_secured":             rec.LoadSecured,
			"trimmer_racks_locked":     rec.TrimmerRacksLocked,
			"safety_pins_in_place":     rec.SafetyPinsInPlace,
			"tires_inflated":           rec.TiresInflated,
			"spare_tire_available":     rec.SpareTireAvailable,
			"chemical_labeled_secured": rec.ChemicalLabeledSecured,

			"five_safety_cones":               rec.FiveSafetyCones,
			"first_aid_kit_fire_extinguisher": rec.FirstAidKitFireExtinguisher,

			"inspected_by":     rec.InspectedBy,
			"additional_items": rec.AdditionalItems,
		},
		Dates: map[string]time.Time{
			"inspection_date": rec.InspectionDate,
			"created_at":      rec.CreatedAt,
		},
	}
}
