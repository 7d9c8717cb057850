package report

import (
	"context"
	"time"
)

// State is the lifecycle of one report view load.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Engine drives the reporting view for one kind at a time: it loads rows
// from a Source, applies the current filters and sort, and tracks which row
// is expanded. Engine is not safe for concurrent use.
type Engine struct {
	source Source

	kind    Kind
	spec    Spec
	state   State
	loadErr error

	rows     []Row
	filters  Filters
	sorts    map[Kind]SortState
	expanded string

	now func() time.Time
}

// NewEngine starts on the given kind in the loading state; call Load to
// fetch rows.
func NewEngine(source Source, kind Kind) *Engine {
	spec := SpecFor(kind)
	return &Engine{
		source:  source,
		kind:    kind,
		spec:    spec,
		state:   StateLoading,
		filters: DefaultFilters(),
		sorts:   map[Kind]SortState{kind: spec.DefaultSort},
		now:     time.Now,
	}
}

func (e *Engine) Kind() Kind   { return e.kind }
func (e *Engine) State() State { return e.state }

// Err returns the load error when the engine is in the error state.
func (e *Engine) Err() error { return e.loadErr }

// Load fetches rows for the current kind. On failure the engine enters the
// error state and keeps no partial data; Load can be called again to retry.
func (e *Engine) Load(ctx context.Context) error {
	e.state = StateLoading
	e.loadErr = nil
	rows, err := e.source.Rows(ctx, e.kind)
	if err != nil {
		e.rows = nil
		e.state = StateError
		e.loadErr = err
		return err
	}
	e.rows = rows
	e.state = StateReady
	return nil
}

// SwitchKind changes the active kind and reloads. Filters reset to their
// defaults and the expanded row collapses; the sort state of each kind is
// remembered and restored when switching back.
func (e *Engine) SwitchKind(ctx context.Context, kind Kind) error {
	if kind == e.kind {
		return nil
	}
	e.kind = kind
	e.spec = SpecFor(kind)
	if _, ok := e.sorts[kind]; !ok {
		e.sorts[kind] = e.spec.DefaultSort
	}
	e.filters = DefaultFilters()
	e.expanded = ""
	return e.Load(ctx)
}

func (e *Engine) Filters() Filters { return e.filters }

// SetFilters replaces the filter state. The expanded row collapses because
// it may no longer be visible.
func (e *Engine) SetFilters(f Filters) {
	e.filters = f
	e.expanded = ""
}

func (e *Engine) Sort() SortState { return e.sorts[e.kind] }

// SetSort sorts by the given field. Selecting the current field flips the
// direction; selecting a new field starts ascending. Fields outside the
// kind's sortable set are ignored.
func (e *Engine) SetSort(field string) {
	if _, ok := e.spec.SortFields[field]; !ok {
		return
	}
	cur := e.sorts[e.kind]
	if cur.Field == field {
		cur.Dir = cur.Dir.Flip()
	} else {
		cur = SortState{Field: field, Dir: Asc}
	}
	e.sorts[e.kind] = cur
}

// SetSortState replaces the current kind's sort wholesale, for callers that
// carry explicit sort state instead of the toggle interaction. Unknown
// fields and directions are ignored.
func (e *Engine) SetSortState(st SortState) {
	if _, ok := e.spec.SortFields[st.Field]; !ok {
		return
	}
	if st.Dir != Asc && st.Dir != Desc {
		return
	}
	e.sorts[e.kind] = st
}

// Visible returns the loaded rows after filtering and sorting. The slice is
// freshly allocated; callers may not mutate the rows.
func (e *Engine) Visible() []Row {
	if e.state != StateReady {
		return nil
	}
	rows := e.spec.Apply(e.rows, e.filters)
	return e.spec.Sort(rows, e.sorts[e.kind])
}

// ToggleExpanded expands the row with the given id, collapsing any other.
// Toggling the expanded row collapses it.
func (e *Engine) ToggleExpanded(id string) {
	if e.expanded == id {
		e.expanded = ""
		return
	}
	e.expanded = id
}

// Expanded returns the id of the expanded row, or "" when all collapsed.
func (e *Engine) Expanded() string { return e.expanded }

// Filename is the suggested name for a CSV download of the current kind.
func (e *Engine) Filename() string {
	return e.spec.FilenamePrefix + "-" + e.now().Format("2006-01-02") + ".csv"
}

// ExportCSV renders the currently visible rows as CSV.
func (e *Engine) ExportCSV() string {
	return e.spec.ToCSV(e.Visible())
}
