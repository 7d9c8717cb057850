package report

import (
	"sort"
	"strings"

	"crew-safety-backend/internal/domain/branch"
)

type SortDir string

const (
	Asc  SortDir = "asc"
	Desc SortDir = "desc"
)

func (d SortDir) Flip() SortDir {
	if d == Asc {
		return Desc
	}
	return Asc
}

// SortState is the active sort of one record kind; each kind keeps its own
// instance across kind switches.
type SortState struct {
	Field string
	Dir   SortDir
}

// FieldType drives the comparator for a sortable column.
type FieldType int

const (
	TypeText FieldType = iota
	TypeDate
	TypeBranch
	TypeDepartment
	// TypeSafety orders "yes" before "no" ascending so alerts surface first.
	TypeSafety
)

// Sort orders rows by the state's field and direction. The sort is stable:
// rows comparing equal keep their prior relative order.
func (spec Spec) Sort(rows []Row, st SortState) []Row {
	ft, ok := spec.SortFields[st.Field]
	if !ok {
		return rows
	}
	out := append([]Row(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		c := compare(out[i], out[j], st.Field, ft)
		if st.Dir == Desc {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compare(a, b Row, key string, ft FieldType) int {
	switch ft {
	case TypeDate:
		// A missing date sorts as the earliest possible instant.
		at, _ := a.Date(key)
		bt, _ := b.Date(key)
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		}
		return 0
	case TypeSafety:
		return safetyRank(a.Field(key)) - safetyRank(b.Field(key))
	case TypeBranch:
		return strings.Compare(strings.ToLower(branch.Display(a.Field(key))), strings.ToLower(branch.Display(b.Field(key))))
	case TypeDepartment:
		return strings.Compare(strings.ToLower(branch.DepartmentDisplay(a.Field(key))), strings.ToLower(branch.DepartmentDisplay(b.Field(key))))
	default:
		return strings.Compare(strings.ToLower(a.Field(key)), strings.ToLower(b.Field(key)))
	}
}

func safetyRank(v string) int {
	switch v {
	case "yes":
		return 0
	case "no":
		return 1
	}
	return 2
}
