package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	gatecheckDomain "crew-safety-backend/internal/domain/gatecheck"
	inspectionDomain "crew-safety-backend/internal/domain/inspection"
	"crew-safety-backend/internal/testutil/storemock"
	"crew-safety-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

func reportFixtureSource() report.StoreSource {
	base := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	return report.StoreSource{
		Inspections: &storemock.InspectionRepo{
			ListAllFn: func(context.Context) ([]inspectionDomain.Inspection, error) {
				return []inspectionDomain.Inspection{
					{
						ReportID:        "r1",
						InspectionDate:  base.AddDate(0, 0, 2),
						InspectedBy:     "Maria Lopez",
						CrewBranch:      "Phoenix - North",
						CrewObserved:    "PHX_N_MAINT_Team 1",
						Department:      "maintenance",
						LadderNotes:     `He said "stop"`,
						SafetyIssueASAP: "yes",
						CreatedAt:       base.AddDate(0, 0, 2),
					},
					{
						ReportID:        "r2",
						InspectionDate:  base,
						InspectedBy:     "Ana Ruiz",
						CrewBranch:      "las-vegas",
						CrewObserved:    "LV_SPRAY",
						Department:      "spray-phc",
						SafetyIssueASAP: "no",
						CreatedAt:       base,
					},
				}, nil
			},
		},
		GateChecks: &storemock.GateCheckRepo{
			ListAllFn: func(context.Context) ([]gatecheckDomain.GateCheck, error) {
				return []gatecheckDomain.GateCheck{{
					ReportID:       "g1",
					InspectionDate: base,
					Location:       "las-vegas",
					Division:       "Maintenance",
					CrewNumber:     "LV_MAINT_Team 3",
					CreatedAt:      base,
				}}, nil
			},
		},
	}
}

func reportGET(t *testing.T, h *ReportHandler, kind, query string, export bool) *httptest.ResponseRecorder {
	t.Helper()
	e := newEcho()
	target := "/api/reports/" + kind
	if export {
		target += "/export"
	}
	if query != "" {
		target += "?" + query
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("kind")
	c.SetParamValues(kind)

	var err error
	if export {
		err = h.Export(c)
	} else {
		err = h.List(c)
	}
	if err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

type listResponse struct {
	Kind  string       `json:"kind"`
	Rows  []report.Row `json:"rows"`
	Total int          `json:"total"`
}

func TestReportList_AllRows(t *testing.T) {
	h := NewReportHandler(reportFixtureSource())
	rec := reportGET(t, h, "inspections", "", false)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	var res listResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if res.Total != 2 || len(res.Rows) != 2 {
		t.Fatalf("total = %d rows = %d", res.Total, len(res.Rows))
	}
	// Default sort is inspection date descending.
	if res.Rows[0].ID != "r1" {
		t.Errorf("first row = %s", res.Rows[0].ID)
	}
}

func TestReportList_BranchFilterNormalizes(t *testing.T) {
	h := NewReportHandler(reportFixtureSource())
	rec := reportGET(t, h, "inspections", "branch=phx-north", false)
	var res listResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	// The stored value is the legacy long form and must still match.
	if res.Total != 1 || res.Rows[0].ID != "r1" {
		t.Errorf("rows = %+v", res.Rows)
	}
}

func TestReportList_SortParams(t *testing.T) {
	h := NewReportHandler(reportFixtureSource())
	rec := reportGET(t, h, "inspections", "sort_by=inspected_by&sort_dir=asc", false)
	var res listResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Rows[0].ID != "r2" { // Ana Ruiz first
		t.Errorf("rows = %v, %v", res.Rows[0].ID, res.Rows[1].ID)
	}
}

func TestReportList_SortWithoutDirDefaultsAscending(t *testing.T) {
	h := NewReportHandler(reportFixtureSource())
	rec := reportGET(t, h, "inspections", "sort_by=inspected_by", false)
	var res listResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Rows[0].ID != "r2" { // Ana Ruiz first
		t.Errorf("rows = %v, %v", res.Rows[0].ID, res.Rows[1].ID)
	}
}

func TestReportList_SearchParam(t *testing.T) {
	h := NewReportHandler(reportFixtureSource())
	rec := reportGET(t, h, "inspections", "search=maria", false)
	var res listResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 || res.Rows[0].ID != "r1" {
		t.Errorf("rows = %+v", res.Rows)
	}
}

func TestReportList_UnknownKind(t *testing.T) {
	h := NewReportHandler(reportFixtureSource())
	rec := reportGET(t, h, "audits", "", false)
	if rec.Code != http.StatusNotFound {
		t.Errorf("code = %d", rec.Code)
	}
}

func TestReportList_GateChecks(t *testing.T) {
	h := NewReportHandler(reportFixtureSource())
	rec := reportGET(t, h, "gatechecks", "", false)
	var res listResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatal(err)
	}
	if res.Total != 1 || res.Rows[0].ID != "g1" {
		t.Errorf("rows = %+v", res.Rows)
	}
}

func TestReportExport_CSV(t *testing.T) {
	h := NewReportHandler(reportFixtureSource())
	rec := reportGET(t, h, "inspections", "", true)
	if rec.Code != http.StatusOK {
		t.Fatalf("code = %d", rec.Code)
	}
	if ct := rec.Header().Get(echo.HeaderContentType); ct != "text/csv;charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	cd := rec.Header().Get(echo.HeaderContentDisposition)
	if !strings.HasPrefix(cd, `attachment; filename="inspection-reports-`) || !strings.HasSuffix(cd, `.csv"`) {
		t.Errorf("content disposition = %q", cd)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "Inspection Date,Inspector,Branch,") {
		t.Errorf("header = %q", strings.SplitN(body, "\n", 2)[0])
	}
	if !strings.Contains(body, `"He said ""stop"""`) {
		t.Error("embedded quotes must be doubled inside a quoted cell")
	}
	if !strings.Contains(body, "PHX N") {
		t.Error("branch should render in display form")
	}
}

func TestReportExport_FilterApplies(t *testing.T) {
	h := NewReportHandler(reportFixtureSource())
	rec := reportGET(t, h, "inspections", "safety_alert=yes", true)
	body := rec.Body.String()
	if strings.Contains(body, "Ana Ruiz") {
		t.Error("filtered-out row leaked into the export")
	}
	if !strings.Contains(body, "Maria Lopez") {
		t.Error("matching row missing from the export")
	}
}

func TestReportList_StoreFailure(t *testing.T) {
	src := report.StoreSource{
		Inspections: &storemock.InspectionRepo{
			ListAllFn: func(context.Context) ([]inspectionDomain.Inspection, error) {
				return nil, context.DeadlineExceeded
			},
		},
	}
	h := NewReportHandler(src)
	rec := reportGET(t, h, "inspections", "", false)
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("code = %d", rec.Code)
	}
}
