// Package branch holds the static branch/location, department and crew
// tables shared by the crew-inspection and gate-check forms, plus the
// normalization used to compare historical records.
package branch

import "strings"

// Branch is the canonical short token stored by current forms.
type Branch string

const (
	PhxNorth     Branch = "phx-north"
	PhxSouthwest Branch = "phx-southwest"
	PhxSoutheast Branch = "phx-southeast"
	LasVegas     Branch = "las-vegas"
	Corporate    Branch = "corporate"
)

func All() []Branch {
	return []Branch{PhxSouthwest, PhxSoutheast, PhxNorth, LasVegas, Corporate}
}

func (b Branch) IsValid() bool {
	switch b {
	case PhxNorth, PhxSouthwest, PhxSoutheast, LasVegas, Corporate:
		return true
	}
	return false
}

// Older gate-check records stored the long-form label instead of the short
// token, and some exports carried the display abbreviation. All spellings of
// the same branch must compare equal, so every known variant maps to the
// canonical token here.
var aliases = map[string]Branch{
	"phx-north":           PhxNorth,
	"phoenix - north":     PhxNorth,
	"phx - north":         PhxNorth,
	"phx n":               PhxNorth,
	"phx-southwest":       PhxSouthwest,
	"phoenix - southwest": PhxSouthwest,
	"phx - southwest":     PhxSouthwest,
	"phx sw":              PhxSouthwest,
	"phx-southeast":       PhxSoutheast,
	"phoenix - southeast": PhxSoutheast,
	"phx - southeast":     PhxSoutheast,
	"phx se":              PhxSoutheast,
	"las-vegas":           LasVegas,
	"las vegas":           LasVegas,
	"corporate":           Corporate,
}

// Canonical resolves any known spelling (token, legacy long form, display
// abbreviation) to the canonical token. Unknown values pass through
// unchanged so filtering still works on exact match.
func Canonical(s string) Branch {
	key := strings.ToLower(strings.TrimSpace(s))
	if b, ok := aliases[key]; ok {
		return b
	}
	return Branch(s)
}

// Equal reports whether two stored branch values name the same branch after
// normalization.
func Equal(a, b string) bool {
	return Canonical(a) == Canonical(b)
}

var displayNames = map[Branch]string{
	PhxNorth:     "PHX N",
	PhxSouthwest: "PHX SW",
	PhxSoutheast: "PHX SE",
	LasVegas:     "Las Vegas",
	Corporate:    "Corporate",
}

// Display returns the report abbreviation for any known spelling, or the
// input unchanged for unknown values.
func Display(s string) string {
	if d, ok := displayNames[Canonical(s)]; ok {
		return d
	}
	return s
}

var longForms = map[Branch]string{
	PhxNorth:     "Phoenix - North",
	PhxSouthwest: "Phoenix - Southwest",
	PhxSoutheast: "Phoenix - Southeast",
	LasVegas:     "Las Vegas",
	Corporate:    "Corporate",
}

// LongForm returns the legacy long-form label for a canonical token.
func LongForm(b Branch) string {
	if l, ok := longForms[b]; ok {
		return l
	}
	return string(b)
}

// Departments on the crew-inspection form (token -> display label).
var departmentDisplay = map[string]string{
	"arbor":              "Arbor",
	"enhancements":       "Enhancements",
	"irrigation":         "Irrigation",
	"maintenance":        "Maintenance",
	"maintenance-onsite": "Maintenance Onsite",
	"overhead":           "Overhead",
	"spray-phc":          "Spray / PHC",
}

func DepartmentDisplay(token string) string {
	if d, ok := departmentDisplay[token]; ok {
		return d
	}
	return token
}

func Departments() []string {
	return []string{"arbor", "enhancements", "irrigation", "maintenance", "maintenance-onsite", "overhead", "spray-phc"}
}

// Divisions on the gate-check form are stored as display labels already.
func Divisions() []string {
	return []string{"Maintenance", "Enhancement", "Construction", "Admin", "Operations", "Snow"}
}
