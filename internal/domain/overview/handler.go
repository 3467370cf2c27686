package overview

import (
	"errors"
	"net/http"

	"medimanager/internal/platform/httpx"
	"medimanager/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Get("/day-overview", dayOverviewHandler(svc, log))
}

// dayOverviewHandler godoc
// @Summary Resumen del día
// @Description Un elemento por medicamento registrado (aunque no tenga tomas), con las tomas del día y si al menos una fue confirmada. Sin date usa el día actual en UTC.
// @Tags day-overview
// @Produce json
// @Param Authorization header string true "Bearer <token>"
// @Param date query string false "Día YYYY-MM-DD (default: hoy UTC)"
// @Success 200 {object} DayOverview
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Router /api/day-overview [get]
func dayOverviewHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		out, err := svc.ForDate(r.Context(), r.URL.Query().Get("date"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			httpx.InternalError(w, r, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, out)
	}
}
