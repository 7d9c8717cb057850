package report

import (
	"strings"
	"time"

	"crew-safety-backend/internal/domain/branch"
)

// ColumnKind decides how a cell is rendered. Free-text and list cells are
// always quoted with embedded quotes doubled; enum tokens, formatted dates
// and ids are emitted bare. Downstream spreadsheets depend on the exact
// output, so the rendering is deliberate rather than minimal RFC 4180.
type ColumnKind int

const (
	ColText ColumnKind = iota
	ColEnum
	ColDate
	ColDateTime
	ColList
	ColBranch
	ColDepartment
	ColID
)

// Column is one CSV column: its fixed header label, the row key it reads,
// and how the cell renders. Order and headers are a compatibility contract.
type Column struct {
	Header string
	Key    string
	Kind   ColumnKind
}

// ToCSV renders the rows under the Spec's column contract: one header row,
// one row per record, "\n" separated.
func (spec Spec) ToCSV(rows []Row) string {
	var b strings.Builder
	for i, col := range spec.Columns {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(col.Header)
	}
	for _, r := range rows {
		b.WriteByte('\n')
		for i, col := range spec.Columns {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(renderCell(r, col))
		}
	}
	return b.String()
}

func renderCell(r Row, col Column) string {
	switch col.Kind {
	case ColText:
		return quote(r.Field(col.Key))
	case ColList:
		return quote(strings.Join(r.List(col.Key), "; "))
	case ColDate:
		t, ok := r.Date(col.Key)
		return FormatDate(t, ok)
	case ColDateTime:
		t, ok := r.Date(col.Key)
		return FormatDateTime(t, ok)
	case ColBranch:
		return branch.Display(r.Field(col.Key))
	case ColDepartment:
		return branch.DepartmentDisplay(r.Field(col.Key))
	case ColID:
		if col.Key == "" {
			return r.ID
		}
		return r.Field(col.Key)
	default:
		return r.Field(col.Key)
	}
}

// quote always wraps the value and doubles embedded quote characters, so
// `He said "stop"` renders as `"He said ""stop"""`.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// FormatDate renders a calendar date the way the report table shows it.
func FormatDate(t time.Time, ok bool) string {
	if !ok || t.IsZero() {
		return "N/A"
	}
	return t.Format("Jan 2, 2006")
}

// FormatDateTime renders a date with time, 12-hour clock.
func FormatDateTime(t time.Time, ok bool) string {
	if !ok || t.IsZero() {
		return "N/A"
	}
	return t.Format("Jan 2, 2006, 03:04 PM")
}
