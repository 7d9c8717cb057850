package inspection

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"crew-safety-backend/internal/domain/branch"
	domain "crew-safety-backend/internal/domain/inspection"
	"crew-safety-backend/internal/testutil/storemock"
	"crew-safety-backend/internal/usecase/form"
)

var reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)

func validForm(t *testing.T) *form.Form {
	t.Helper()
	f := NewForm()
	f.Apply(map[string]string{
		"inspection_date": "2026-08-14T09:30",
		"inspected_by":    "Maria Lopez",
		"crew_branch":     "phx-north",
		"crew_observed":   "PHX_N_MAINT_Team 2",
		"department":      "maintenance",

		"safety_cones": "yes",

		"ladders_placed_secured": "yes",
		"ladder_labels_visible":  "yes",
		"ladders_used_correctly": "no",
		"ladder_notes":           "one ladder leaning on trailer",

		"ppe_eye_protection":     "yes",
		"ppe_hearing_protection": "yes",
		"ppe_hand_protection":    "yes",
		"ppe_foot_protection":    "yes",
		"ppe_head_protection":    "no",

		"mowers_condition": "good",

		"chemicals_stored_properly": "no",

		"safety_issue_asap":       "yes",
		"immediate_safety_issues": "missing hard hat on site",
		"follow_up_date":          "2026-08-21",
	}, map[string][]string{
		"chemical_issues": {"Not Properly Stored", "Other"},
	})
	return f
}

func TestSubmit_Success(t *testing.T) {
	ctx := context.Background()
	var saved *domain.Inspection
	repo := &storemock.InspectionRepo{
		CreateFn: func(_ context.Context, rec *domain.Inspection) error {
			saved = rec
			return nil
		},
	}
	uc := NewUsecase(repo, branch.DefaultCrewConfig(), form.PolicyRedirectReports)

	f := validForm(t)
	res, err := uc.Submit(ctx, f)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if saved == nil {
		t.Fatal("record not stored")
	}
	if !reHex32.MatchString(res.ReportID) {
		t.Errorf("ReportID = %q, want 32-char hex", res.ReportID)
	}
	if saved.ReportID != res.ReportID {
		t.Error("result and stored record disagree on report id")
	}
	if saved.CrewBranch != "phx-north" || saved.CrewObserved != "PHX_N_MAINT_Team 2" {
		t.Errorf("stored identity fields wrong: %+v", saved)
	}
	if saved.InspectionDate.Format("2006-01-02 15:04") != "2026-08-14 09:30" {
		t.Errorf("InspectionDate = %v", saved.InspectionDate)
	}
	if saved.FollowUpDate == nil || saved.FollowUpDate.Format("2006-01-02") != "2026-08-21" {
		t.Errorf("FollowUpDate = %v", saved.FollowUpDate)
	}
	if len(saved.ChemicalIssues) != 2 || saved.ChemicalIssues[0] != "Not Properly Stored" {
		t.Errorf("ChemicalIssues = %v", saved.ChemicalIssues)
	}
	if res.Next != "/reports" {
		t.Errorf("Next = %q, want /reports under redirect policy", res.Next)
	}
}

func TestSubmit_ValidationFailureKeepsFormEditable(t *testing.T) {
	repo := &storemock.InspectionRepo{
		CreateFn: func(context.Context, *domain.Inspection) error {
			t.Fatal("store must not be reached on validation failure")
			return nil
		},
	}
	uc := NewUsecase(repo, branch.DefaultCrewConfig(), form.PolicyNone)

	f := NewForm() // empty, fails required checks
	_, err := uc.Submit(context.Background(), f)
	var verr *form.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if f.Submitting() {
		t.Error("form must not be stuck submitting after a rejected submit")
	}
}

func TestSubmit_StoreFailureAllowsRetry(t *testing.T) {
	ctx := context.Background()
	calls := 0
	repo := &storemock.InspectionRepo{
		CreateFn: func(context.Context, *domain.Inspection) error {
			calls++
			if calls == 1 {
				return errors.New("connection reset")
			}
			return nil
		},
	}
	uc := NewUsecase(repo, branch.DefaultCrewConfig(), form.PolicyNone)

	f := validForm(t)
	if _, err := uc.Submit(ctx, f); err == nil {
		t.Fatal("first submit should surface the store error")
	}
	if f.Get("inspected_by") != "Maria Lopez" {
		t.Error("values must survive the failed submit")
	}
	if _, err := uc.Submit(ctx, f); err != nil {
		t.Fatalf("retry: %v", err)
	}
	if calls != 2 {
		t.Errorf("store calls = %d, want 2", calls)
	}
}

func TestSubmit_SecondSubmitRejected(t *testing.T) {
	ctx := context.Background()
	repo := &storemock.InspectionRepo{}
	uc := NewUsecase(repo, branch.DefaultCrewConfig(), form.PolicyNone)

	f := validForm(t)
	if _, err := uc.Submit(ctx, f); err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if _, err := uc.Submit(ctx, f); !errors.Is(err, form.ErrAlreadySubmitted) {
		t.Errorf("second submit = %v, want ErrAlreadySubmitted", err)
	}
}

func TestSubmit_BadDate(t *testing.T) {
	repo := &storemock.InspectionRepo{}
	uc := NewUsecase(repo, branch.DefaultCrewConfig(), form.PolicyNone)

	f := validForm(t)
	f.SetField("inspection_date", "14/08/2026")
	if _, err := uc.Submit(context.Background(), f); err == nil {
		t.Fatal("want error for unparseable inspection_date")
	}
	if f.Submitting() {
		t.Error("form must return to editing")
	}
}

func TestAvailableCrews(t *testing.T) {
	uc := NewUsecase(&storemock.InspectionRepo{}, branch.DefaultCrewConfig(), form.PolicyNone)

	crews := uc.AvailableCrews("Phoenix - North")
	if len(crews) == 0 {
		t.Fatal("legacy spelling should still resolve a roster")
	}
	found := false
	for _, c := range crews {
		if c == "PHX_ARBOR_Team 1" {
			found = true
		}
	}
	if !found {
		t.Error("pooled corporate crew missing from phx-north roster")
	}
}
