package intakes

import (
	"errors"
	"net/http"

	"medimanager/internal/platform/httpx"
	"medimanager/internal/platform/logger"
	"medimanager/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/intakes", func(ir chi.Router) {
		ir.Get("/", listIntakesHandler(svc, log))
		ir.Post("/", recordIntakeHandler(svc, log))
	})
}

// recordIntakeRequest es el cuerpo para registrar una toma.
type recordIntakeRequest struct {
	MedicationID string `json:"medicationId"`
	Date         string `json:"date"` // YYYY-MM-DD
	Time         string `json:"time"`
	Taken        *bool  `json:"taken"` // default true
	Notes        string `json:"notes"`
}

type intakeListResponse struct {
	Intakes []Intake `json:"intakes"`
}

// listIntakesHandler godoc
// @Summary Listar tomas
// @Description Devuelve las tomas en orden de registro. date filtra por día exacto (no rango).
// @Tags intakes
// @Produce json
// @Param Authorization header string true "Bearer <token>"
// @Param date query string false "Día YYYY-MM-DD"
// @Param medicationId query string false "ID del medicamento"
// @Success 200 {object} intakeListResponse
// @Failure 400 {object} httpx.ErrorResponse "date inválido"
// @Failure 401 {object} httpx.ErrorResponse
// @Router /api/intakes [get]
func listIntakesHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		items, err := svc.List(r.Context(), ListFilter{
			Date:         q.Get("date"),
			MedicationID: q.Get("medicationId"),
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				httpx.WriteError(w, http.StatusBadRequest, "date must be YYYY-MM-DD")
				return
			}
			httpx.InternalError(w, r, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, intakeListResponse{Intakes: items})
	}
}

// recordIntakeHandler godoc
// @Summary Registrar toma
// @Description medicationId y date son obligatorios. El medicamento tiene que existir al momento de registrar; su nombre queda copiado en la toma.
// @Tags intakes
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer <token>"
// @Param payload body recordIntakeRequest true "Datos de la toma"
// @Success 201 {object} Intake
// @Failure 400 {object} httpx.ErrorResponse "invalid json / medicationId y date obligatorios"
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 422 {object} httpx.ErrorResponse "medicationId no existe"
// @Router /api/intakes [post]
func recordIntakeHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recordIntakeRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		in, err := svc.Record(r.Context(), RecordInput{
			MedicationID: req.MedicationID,
			Date:         req.Date,
			Time:         req.Time,
			Taken:        req.Taken,
			Notes:        req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteError(w, http.StatusBadRequest, "medicationId and date (YYYY-MM-DD) are required")
			case errors.Is(err, ErrInvalidReference):
				httpx.WriteError(w, http.StatusUnprocessableEntity, err.Error())
			default:
				httpx.InternalError(w, r, log, err)
			}
			return
		}

		metrics.IntakeRecorded(in.Taken)
		httpx.WriteJSON(w, http.StatusCreated, in)
	}
}
