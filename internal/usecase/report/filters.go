package report

import (
	"strings"

	"crew-safety-backend/internal/domain/branch"
)

// FilterAll is the sentinel disabling a selector dimension.
const FilterAll = "all"

// Filters is the ephemeral filter state of one reporting session. For gate
// checks, Branch means location and Department means division; SafetyAlert
// only applies to crew inspections.
type Filters struct {
	Search      string
	Branch      string
	Department  string
	Inspector   string
	Crew        string
	SafetyAlert string
}

// DefaultFilters has every selector on the "all" sentinel and no search
// term.
func DefaultFilters() Filters {
	return Filters{
		Branch:      FilterAll,
		Department:  FilterAll,
		Inspector:   FilterAll,
		Crew:        FilterAll,
		SafetyAlert: FilterAll,
	}
}

// Apply keeps the rows passing every active dimension. Dimensions are
// independent predicates joined by AND; there is no OR across dimensions.
func (spec Spec) Apply(rows []Row, f Filters) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if spec.matches(r, f) {
			out = append(out, r)
		}
	}
	return out
}

func (spec Spec) matches(r Row, f Filters) bool {
	if !spec.matchesSearch(r, f.Search) {
		return false
	}
	// Branch/location equality is canonical: legacy long-form records and
	// short-token records name the same branch.
	if f.Branch != FilterAll && !branch.Equal(r.Field(spec.BranchKey), f.Branch) {
		return false
	}
	if f.Department != FilterAll && r.Field(spec.DepartmentKey) != f.Department {
		return false
	}
	if f.Inspector != FilterAll && r.Field(spec.InspectorKey) != f.Inspector {
		return false
	}
	if f.Crew != FilterAll && r.Field(spec.CrewKey) != f.Crew {
		return false
	}
	if spec.SafetyKey != "" && f.SafetyAlert != FilterAll && r.Field(spec.SafetyKey) != f.SafetyAlert {
		return false
	}
	return true
}

// matchesSearch is a case-insensitive substring match over inspector,
// department/division (raw and display), crew, and branch/location (raw and
// display).
func (spec Spec) matchesSearch(r Row, term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	haystacks := []string{
		r.Field(spec.InspectorKey),
		r.Field(spec.DepartmentKey),
		r.Field(spec.CrewKey),
		r.Field(spec.BranchKey),
		branch.Display(r.Field(spec.BranchKey)),
	}
	if spec.Kind == KindInspections {
		haystacks = append(haystacks, branch.DepartmentDisplay(r.Field(spec.DepartmentKey)))
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), term) {
			return true
		}
	}
	return false
}
