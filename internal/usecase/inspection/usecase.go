package inspection

import (
	"context"
	"fmt"
	"time"

	"crew-safety-backend/internal/domain/branch"
	"crew-safety-backend/internal/domain/inspection"
	"crew-safety-backend/internal/usecase/form"
	"crew-safety-backend/pkg/id"
)

type Usecase struct {
	repo   inspection.Repository
	crews  branch.CrewConfig
	policy form.PostSubmitPolicy
}

func NewUsecase(r inspection.Repository, crews branch.CrewConfig, policy form.PostSubmitPolicy) *Usecase {
	return &Usecase{repo: r, crews: crews, policy: policy}
}

// AvailableCrews is the dependent crew dropdown for the selected branch.
func (u *Usecase) AvailableCrews(branchToken string) []string {
	return branch.CrewsFor(branch.Canonical(branchToken), u.crews)
}

type SubmitResult struct {
	ReportID  string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	// Next tells the client what to do after a successful submit.
	Next string `json:"next,omitempty"`
}

// Submit validates the form and inserts one crew-inspection record. On a
// store failure the form returns to editing with its values preserved;
// while the insert is in flight a second Submit on the same form is
// rejected.
func (u *Usecase) Submit(ctx context.Context, f *form.Form) (*SubmitResult, error) {
	if probs := f.Validate(); len(probs) > 0 {
		return nil, &form.ValidationError{Problems: probs}
	}
	if err := f.BeginSubmit(); err != nil {
		return nil, err
	}

	rec, err := recordFromForm(f)
	if err != nil {
		f.FailSubmit()
		return nil, err
	}
	rec.ReportID = id.NewID32()

	if err := u.repo.Create(ctx, rec); err != nil {
		f.FailSubmit()
		return nil, err
	}
	f.CompleteSubmit()

	return &SubmitResult{
		ReportID:  rec.ReportID,
		CreatedAt: rec.CreatedAt,
		Next:      u.policy.Hint("/reports"),
	}, nil
}

// recordFromForm maps the flat form record onto the crew_inspections row.
func recordFromForm(f *form.Form) (*inspection.Inspection, error) {
	when, err := parseDateTime(f.Get("inspection_date"))
	if err != nil {
		return nil, fmt.Errorf("inspection_date: %w", err)
	}
	var followUp *time.Time
	if v := f.Get("follow_up_date"); v != "" {
		d, err := parseDate(v)
		if err != nil {
			return nil, fmt.Errorf("follow_up_date: %w", err)
		}
		followUp = &d
	}

	return &inspection.Inspection{
		InspectionDate: when,
		InspectedBy:    f.Get("inspected_by"),
		CrewBranch:     f.Get("crew_branch"),
		CrewObserved:   f.Get("crew_observed"),
		Department:     f.Get("department"),

		SafetyCones: f.Get("safety_cones"),

		LaddersPlacedSecured: f.Get("ladders_placed_secured"),
		LadderLabelsVisible:  f.Get("ladder_labels_visible"),
		LaddersUsedCorrectly: f.Get("ladders_used_correctly"),
		LadderNotes:          f.Get("ladder_notes"),

		PPEEyeProtection:     f.Get("ppe_eye_protection"),
		PPEHearingProtection: f.Get("ppe_hearing_protection"),
		PPEHandProtection:    f.Get("ppe_hand_protection"),
		PPEFootProtection:    f.Get("ppe_foot_protection"),
		PPEHeadProtection:    f.Get("ppe_head_protection"),
		PPENotes:             f.Get("ppe_notes"),

		MowersCondition:       f.Get("mowers_condition"),
		BlowersCondition:      f.Get("blowers_condition"),
		HedgeTrimmerCondition: f.Get("hedge_trimmer_condition"),
		LineTrimmerCondition:  f.Get("line_trimmer_condition"),
		GasTanksCondition:     f.Get("gas_tanks_condition"),
		ToolsEquipmentNotes:   f.Get("tools_equipment_notes"),

		FireExtinguisherCondition: f.Get("fire_extinguisher_condition"),
		FirstAidKitCondition:      f.Get("first_aid_kit_condition"),
		WaterJugCondition:         f.Get("water_jug_condition"),
		WarningTriangleCondition:  f.Get("warning_triangle_condition"),
		EmergencyEquipmentNotes:   f.Get("emergency_equipment_notes"),

		DashClean:              f.Get("dash_clean"),
		TireCondition:          f.Get("tire_condition"),
		TruckClean:             f.Get("truck_clean"),
		TarpWorking:            f.Get("tarp_working"),
		InsideVehicleCondition: f.Get("inside_vehicle_condition"),
		VehicleNotes:           f.Get("vehicle_notes"),

		TrailerConnection:  f.Get("trailer_connection"),
		TrailerBrakeAway:   f.Get("trailer_brake_away"),
		TrailerChains:      f.Get("trailer_chains"),
		TrailerLockPin:     f.Get("trailer_lock_pin"),
		TrailerTires:       f.Get("trailer_tires"),
		TrailerSecured:     f.Get("trailer_secured"),
		TrailerCleanliness: f.Get("trailer_cleanliness"),
		SpareTire:          f.Get("spare_tire"),
		TrailerNotes:       f.Get("trailer_notes"),

		ChemicalsStoredProperly: f.Get("chemicals_stored_properly"),
		ChemicalIssues:          f.GetList("chemical_issues"),

		AdditionalNotes:       f.Get("additional_notes"),
		ImmediateSafetyIssues: f.Get("immediate_safety_issues"),
		SafetyIssueASAP:       f.Get("safety_issue_asap"),
		FollowUpDate:          followUp,
		GooglePhotosLink:      f.Get("google_photos_link"),
	}, nil
}

// parseDateTime accepts the datetime-local wire format plus RFC3339 for
// clients that send zoned timestamps.
func parseDateTime(raw string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02T15:04", "2006-01-02T15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid datetime %q", raw)
}

func parseDate(raw string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", raw)
	}
	return t, nil
}
