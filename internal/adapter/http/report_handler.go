package http

import (
	"net/http"

	"crew-safety-backend/internal/usecase/report"

	"github.com/labstack/echo/v4"
)

type ReportHandler struct{ source report.Source }

func NewReportHandler(source report.Source) *ReportHandler {
	return &ReportHandler{source: source}
}

func firstQueryParam(c echo.Context, names ...string) string {
	for _, n := range names {
		if v := c.QueryParam(n); v != "" {
			return v
		}
	}
	return ""
}

func reportKind(c echo.Context) (report.Kind, bool) {
	switch c.Param("kind") {
	case string(report.KindInspections):
		return report.KindInspections, true
	case string(report.KindGateChecks):
		return report.KindGateChecks, true
	}
	return "", false
}

// engineFor builds a per-request engine with the query's filters and sort
// applied. Every request sees fresh data; the interactive state (expanded
// row) lives client-side.
func (h *ReportHandler) engineFor(c echo.Context, kind report.Kind) (*report.Engine, error) {
	eng := report.NewEngine(h.source, kind)
	if err := eng.Load(c.Request().Context()); err != nil {
		return nil, err
	}

	f := report.DefaultFilters()
	f.Search = c.QueryParam("search")
	// Gate checks call these dimensions location and division; both
	// spellings are accepted for either kind.
	if v := firstQueryParam(c, "branch", "location"); v != "" {
		f.Branch = v
	}
	if v := firstQueryParam(c, "department", "division"); v != "" {
		f.Department = v
	}
	if v := c.QueryParam("inspector"); v != "" {
		f.Inspector = v
	}
	if v := c.QueryParam("crew"); v != "" {
		f.Crew = v
	}
	if v := c.QueryParam("safety_alert"); v != "" {
		f.SafetyAlert = v
	}
	eng.SetFilters(f)

	if field := c.QueryParam("sort_by"); field != "" {
		dir := report.SortDir(c.QueryParam("sort_dir"))
		if dir == "" {
			dir = report.Asc
		}
		eng.SetSortState(report.SortState{Field: field, Dir: dir})
	}
	return eng, nil
}

// List returns the filtered, sorted rows of one record kind as JSON.
func (h *ReportHandler) List(c echo.Context) error {
	kind, ok := reportKind(c)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown report kind"})
	}
	eng, err := h.engineFor(c, kind)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load reports"})
	}
	rows := eng.Visible()
	if rows == nil {
		rows = []report.Row{}
	}
	return c.JSON(http.StatusOK, map[string]any{
		"kind":  kind,
		"rows":  rows,
		"total": len(rows),
		"sort":  eng.Sort(),
	})
}

// Export streams the same view as a CSV download.
func (h *ReportHandler) Export(c echo.Context) error {
	kind, ok := reportKind(c)
	if !ok {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "unknown report kind"})
	}
	eng, err := h.engineFor(c, kind)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not load reports"})
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+eng.Filename()+`"`)
	return c.Blob(http.StatusOK, "text/csv;charset=utf-8", []byte(eng.ExportCSV()))
}
