package http

import (
	"net/http"

	gatecheckUC "crew-safety-backend/internal/usecase/gatecheck"

	"github.com/labstack/echo/v4"
)

type GateCheckHandler struct{ uc *gatecheckUC.Usecase }

func NewGateCheckHandler(uc *gatecheckUC.Usecase) *GateCheckHandler {
	return &GateCheckHandler{uc: uc}
}

type createGateCheckReq struct {
	InspectionDate string `json:"inspection_date" validate:"required,wiredate"`
	Email          string `json:"email" validate:"omitempty,email"`
	Location       string `json:"location" validate:"omitempty,branchtoken"`
	Division       string `json:"division"`
	CrewNumber     string `json:"crew_number"`
	DriverName     string `json:"driver_name"`

	AllEmployeesHavePPE string `json:"all_employees_have_ppe"`

	LightsWorking             string `json:"lights_working"`
	MirrorsIntact             string `json:"mirrors_intact"`
	LicensePlateVisible       string `json:"license_plate_visible"`
	RegistrationInsuranceCard string `json:"registration_insurance_card"`

	LoadSecured            string `json:"load_secured"`
	TrimmerRacksLocked     string `json:"trimmer_racks_locked"`
	SafetyPinsInPlace      string `json:"safety_pins_in_place"`
	TiresInflated          string `json:"tires_inflated"`
	SpareTireAvailable     string `json:"spare_tire_available"`
	ChemicalLabeledSecured string `json:"chemical_labeled_secured"`

	FiveSafetyCones             string `json:"five_safety_cones"`
	FirstAidKitFireExtinguisher string `json:"first_aid_kit_fire_extinguisher"`

	InspectedBy     string `json:"inspected_by"`
	AdditionalItems string `json:"additional_items"`
}

func (r createGateCheckReq) values() map[string]string {
	return map[string]string{
		"inspection_date": r.InspectionDate,
		"email":           r.Email,
		"location":        r.Location,
		"division":        r.Division,
		"crew_number":     r.CrewNumber,
		"driver_name":     r.DriverName,

		"all_employees_have_ppe": r.AllEmployeesHavePPE,

		"lights_working":              r.LightsWorking,
		"mirrors_intact":              r.MirrorsIntact,
		"license_plate_visible":       r.LicensePlateVisible,
		"registration_insurance_card": r.RegistrationInsuranceCard,

		"load_secured":             r.LoadSecured,
		"trimmer_racks_locked":     r.TrimmerRacksLocked,
		"safety_pins_in_place":     r.SafetyPinsInPlace,
		"tires_inflated":           r.TiresInflated,
		"spare_tire_available":     r.SpareTireAvailable,
		"chemical_labeled_secured": r.ChemicalLabeledSecured,

		"five_safety_cones":               r.FiveSafetyCones,
		"first_aid_kit_fire_extinguisher": r.FirstAidKitFireExtinguisher,

		"inspected_by":     r.InspectedBy,
		"additional_items": r.AdditionalItems,
	}
}

func (h *GateCheckHandler) Create(c echo.Context) error {
	var req createGateCheckReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}

	f := gatecheckUC.NewForm()
	f.Apply(req.values(), nil)

	res, err := h.uc.Submit(c.Request().Context(), f)
	if err != nil {
		return submitError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}
