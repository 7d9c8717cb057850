// Package report implements the reporting pipeline shared by crew
// inspections and gate checks: load everything of one kind, narrow it with
// a conjunction of filters plus free-text search, sort it stably, and
// project it as rows or CSV.
package report

import (
	"context"
	"time"
)

// Kind selects which checklist the engine is showing.
type Kind string

const (
	KindInspections Kind = "inspections"
	KindGateChecks  Kind = "gatechecks"
)

// Row is one loaded record flattened to its wire fields. Scalar values live
// in Fields, multi-select lists in Lists, parsed timestamps in Dates (a key
// absent from Dates means the record has no such date).
type Row struct {
	ID     string               `json:"id"`
	Fields map[string]string    `json:"fields"`
	Lists  map[string][]string  `json:"lists,omitempty"`
	Dates  map[string]time.Time `json:"dates"`
}

func (r Row) Field(key string) string { return r.Fields[key] }

func (r Row) List(key string) []string { return r.Lists[key] }

func (r Row) Date(key string) (time.Time, bool) {
	t, ok := r.Dates[key]
	return t, ok
}

// Source feeds the engine. The store adapter behind it is trusted to return
// records already ordered by created_at descending.
type Source interface {
	Rows(ctx context.Context, kind Kind) ([]Row, error)
}
