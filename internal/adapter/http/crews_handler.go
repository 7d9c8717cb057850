package http

import (
	"net/http"

	gatecheckUC "crew-safety-backend/internal/usecase/gatecheck"
	inspectionUC "crew-safety-backend/internal/usecase/inspection"

	"github.com/labstack/echo/v4"
)

// CrewsHandler serves the dependent crew dropdown. Inspections narrow the
// roster by branch (with corporate pooling); gate checks always see the
// full union.
type CrewsHandler struct {
	insp *inspectionUC.Usecase
	gate *gatecheckUC.Usecase
}

func NewCrewsHandler(insp *inspectionUC.Usecase, gate *gatecheckUC.Usecase) *CrewsHandler {
	return &CrewsHandler{insp: insp, gate: gate}
}

func (h *CrewsHandler) Crews(c echo.Context) error {
	switch kind := c.QueryParam("kind"); kind {
	case "", "inspection":
		b := c.QueryParam("branch")
		if b == "" {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "branch query parameter is required"})
		}
		crews := h.insp.AvailableCrews(b)
		if crews == nil {
			crews = []string{}
		}
		return c.JSON(http.StatusOK, map[string]any{"crews": crews})
	case "gatecheck":
		return c.JSON(http.StatusOK, map[string]any{"crews": h.gate.AvailableCrews()})
	default:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown kind"})
	}
}
