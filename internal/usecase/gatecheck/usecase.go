package gatecheck

import (
	"context"
	"fmt"
	"time"

	"crew-safety-backend/internal/domain/branch"
	"crew-safety-backend/internal/domain/gatecheck"
	"crew-safety-backend/internal/usecase/form"
	"crew-safety-backend/pkg/id"
)

type Usecase struct {
	repo   gatecheck.Repository
	policy form.PostSubmitPolicy
}

func NewUsecase(r gatecheck.Repository, policy form.PostSubmitPolicy) *Usecase {
	return &Usecase{repo: r, policy: policy}
}

// AvailableCrews on the gate check is the full roster regardless of
// location.
func (u *Usecase) AvailableCrews() []string { return branch.AllCrews() }

type SubmitResult struct {
	ReportID  string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Next      string    `json:"next,omitempty"`
}

// Submit validates the form and inserts one gate-check record. Same
// lifecycle as crew inspections: in-flight guard, preserved state on
// failure, insert-once.
func (u *Usecase) Submit(ctx context.Context, f *form.Form) (*SubmitResult, error) {
	if probs := f.Validate(); len(probs) > 0 {
		return nil, &form.ValidationError{Problems: probs}
	}
	if err := f.BeginSubmit(); err != nil {
		return nil, err
	}

	when, err := time.Parse("2006-01-02", f.Get("inspection_date"))
	if err != nil {
		f.FailSubmit()
		return nil, fmt.Errorf("inspection_date: invalid date %q", f.Get("inspection_date"))
	}

	rec := &gatecheck.GateCheck{
		ReportID:       id.NewID32(),
		InspectionDate: when,
		Email:          f.Get("email"),
		Location:       f.Get("location"),
		Division:       f.Get("division"),
		CrewNumber:     f.Get("crew_number"),
		DriverName:     f.Get("driver_name"),

		AllEmployeesHavePPE: f.Get("all_employees_have_ppe"),

		LightsWorking:             f.Get("lights_working"),
		MirrorsIntact:             f.Get("mirrors_intact"),
		LicensePlateVisible:       f.Get("license_plate_visible"),
		RegistrationInsuranceCard: f.Get("registration_insurance_card"),

		LoadSecured:            f.Get("load_secured"),
		TrimmerRacksLocked:     f.Get("trimmer_racks_locked"),
		SafetyPinsInPlace:      f.Get("safety_pins_in_place"),
		TiresInflated:          f.Get("tires_inflated"),
		SpareTireAvailable:     f.Get("spare_tire_available"),
		ChemicalLabeledSecured: f.Get("chemical_labeled_secured"),

		FiveSafetyCones:             f.Get("five_safety_cones"),
		FirstAidKitFireExtinguisher: f.Get("first_aid_kit_fire_extinguisher"),

		InspectedBy:     f.Get("inspected_by"),
		AdditionalItems: f.Get("additional_items"),
	}

	if err := u.repo.Create(ctx, rec); err != nil {
		f.FailSubmit()
		return nil, err
	}
	f.CompleteSubmit()

	return &SubmitResult{
		ReportID:  rec.ReportID,
		CreatedAt: rec.CreatedAt,
		Next:      u.policy.Hint("/reports?view=gatechecks"),
	}, nil
}
