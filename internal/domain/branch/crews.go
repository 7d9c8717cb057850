package branch

import "sort"

// crewsByBranch is the roster each branch's dependent crew dropdown offers.
var crewsByBranch = map[Branch][]string{
	LasVegas: {
		"LV_ARBOR_Team 1",
		"LV_ENHAN_Team 1",
		"LV_ENHAN_Team 2",
		"LV_IRR_Tech 1",
		"LV_IRR_Tech 2",
		"LV_IRR_Tech 3",
		"LV_MAINT_Onsite Cheyenne Corp",
		"LV_MAINT_Onsite Rainbow Creek HOA",
		"LV_MAINT_Onsite Spectrum",
		"LV_MAINT_Onsite_GoldenTriangle",
		"LV_MAINT_Onsite_Speedway",
		"LV_MAINT_Team 1",
		"LV_MAINT_Team 2",
		"LV_MAINT_Team 3",
		"LV_MAINT_Team 4",
		"LV_MAINT_Team 5",
		"LV_SPRAY",
	},
	PhxNorth: {
		"PHX_N_IRR_Tech 1",
		"PHX_N_IRR_Tech 2",
		"PHX_N_MAINT_Onsite Venu at Grayhawk",
		"PHX_N_MAINT_Team 1",
		"PHX_N_MAINT_Team 2",
		"PHX_N_MAINT_Team 3",
		"PHX_N_MAINT_Team 4",
		"PHX_N_MAINT_Team 5",
		"PHX_N_MAINT_Team 6",
	},
	PhxSoutheast: {
		"PHX_SE_IRR_Tech 1",
		"PHX_SE_IRR_Tech 2",
		"PHX_SE_IRR_Tech 3",
		"PHX_SE_MAINT_Onsite Portales",
		"PHX_SE_MAINT_Onsite Spectrum Falls",
		"PHX_SE_MAINT_Onsite Waypoint",
		"PHX_SE_MAINT_Team 1",
		"PHX_SE_MAINT_Team 2",
		"PHX_SE_MAINT_Team 3",
		"PHX_SE_MAINT_Team 4",
		"PHX_SE_MAINT_Team 5",
		"PHX_SE_MAINT_Team 6",
		"PHX_SE_MAINT_Team 7",
		"PHX_SE_MAINT_Team 8",
		"PHX_SE_MAINT_Team 9",
		"PHX_SE_OH Support",
	},
	PhxSouthwest: {
		"PHX_SW_IRR_Tech 1",
		"PHX_SW_IRR_Tech 2",
		"PHX_SW_IRR_Tech 4",
		"PHX_SW_MAINT_Onsite Waterview",
		"PHX_SW_MAINT_Onsite_Anchor Center",
		"PHX_SW_MAINT_Team 1",
		"PHX_SW_MAINT_Team 2",
		"PHX_SW_MAINT_Team 3",
		"PHX_SW_MAINT_Team 4",
		"PHX_SW_MAINT_Team 5",
		"PHX_SW_MAINT_Team 6",
		"PHX_SW_MAINT_Team 7",
	},
	Corporate: {
		"PHX_ARBOR_Supervisor",
		"PHX_ARBOR_Team 1",
		"PHX_ARBOR_Team 2 SouthWest",
		"PHX_ARBOR_Team 3 Stumps",
		"PHX_ARBOR_Team 4 SouthEast",
		"PHX_ARBOR_Team 5 SouthWest",
		"PHX_ARBOR_Team 6",
		"PHX_ENHAN_Field Supervisor",
		"PHX_ENHAN_Team 1",
		"PHX_ENHAN_Team 2",
		"PHX_ENHAN_Team 3",
		"PHX_OH_Risk and Fleet",
		"PHX_SPRAY_SE_Tech 1",
		"PHX_SPRAY_SW_Tech 2",
		"PHX_SPRAY_Tech 3",
		"PHX_SPRAY_Tech 4",
	},
}

// CrewConfig controls which branches pool the corporate roster into their
// own crew list. The pooling rule changed across form revisions, so it is
// data, not logic.
type CrewConfig struct {
	PoolCorporate map[Branch]bool
}

// DefaultCrewConfig matches the latest form revision: every Phoenix branch
// offers the corporate crews alongside its own; Las Vegas and Corporate do
// not pool.
func DefaultCrewConfig() CrewConfig {
	return CrewConfig{
		PoolCorporate: map[Branch]bool{
			PhxNorth:     true,
			PhxSoutheast: true,
			PhxSouthwest: true,
		},
	}
}

// CrewsFor returns the sorted crew list for a branch under the given
// pooling config. Empty branch yields an empty list (crew selection is
// disabled until a branch is chosen).
func CrewsFor(b Branch, cfg CrewConfig) []string {
	if b == "" {
		return nil
	}
	crews := append([]string(nil), crewsByBranch[Canonical(string(b))]...)
	if cfg.PoolCorporate[Canonical(string(b))] {
		crews = append(crews, crewsByBranch[Corporate]...)
	}
	sort.Strings(crews)
	return crews
}

// AllCrews returns the sorted union across every branch. The gate-check form
// offers the full roster regardless of location.
func AllCrews() []string {
	var crews []string
	for _, b := range All() {
		crews = append(crews, crewsByBranch[b]...)
	}
	sort.Strings(crews)
	return crews
}
