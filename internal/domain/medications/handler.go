package medications

import (
	"errors"
	"net/http"

	"medimanager/internal/platform/httpx"
	"medimanager/internal/platform/logger"
	"medimanager/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/medications", func(mr chi.Router) {
		mr.Get("/", listMedicationsHandler(svc, log))
		mr.Post("/", createMedicationHandler(svc, log))

		mr.Get("/{medicationID}", getMedicationHandler(svc, log))

		// PUT y PATCH comparten semántica de merge (campo ausente o null = no tocar).
		mr.Put("/{medicationID}", updateMedicationHandler(svc, log))
		mr.Patch("/{medicationID}", updateMedicationHandler(svc, log))

		mr.Delete("/{medicationID}", deleteMedicationHandler(svc, log))
	})
}

// createMedicationRequest es el cuerpo para registrar un medicamento.
type createMedicationRequest struct {
	Name   string   `json:"name"`
	Dosage string   `json:"dosage"`
	Times  []string `json:"times"`
	Notes  string   `json:"notes"`
}

// updateMedicationRequest: punteros para merge real, nil = no tocar.
// "times": [] limpia los horarios; "times": null los deja como estaban.
type updateMedicationRequest struct {
	Name   *string   `json:"name"`
	Dosage *string   `json:"dosage"`
	Times  *[]string `json:"times"`
	Notes  *string   `json:"notes"`
}

// medicationListResponse mantiene el envelope {"medications": [...]} que consume el frontend.
type medicationListResponse struct {
	Medications []Medication `json:"medications"`
}

// listMedicationsHandler godoc
// @Summary Listar medicamentos
// @Description Devuelve todos los medicamentos en orden de creación.
// @Tags medications
// @Produce json
// @Param Authorization header string true "Bearer <token>"
// @Success 200 {object} medicationListResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 500 {object} httpx.ErrorResponse
// @Router /api/medications [get]
func listMedicationsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			httpx.InternalError(w, r, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, medicationListResponse{Medications: items})
	}
}

// getMedicationHandler godoc
// @Summary Obtener medicamento
// @Tags medications
// @Produce json
// @Param Authorization header string true "Bearer <token>"
// @Param medicationID path string true "ID del medicamento"
// @Success 200 {object} Medication
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/medications/{medicationID} [get]
func getMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.GetByID(r.Context(), chi.URLParam(r, "medicationID"))
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		httpx.WriteJSON(w, http.StatusOK, m)
	}
}

// createMedicationHandler godoc
// @Summary Crear medicamento
// @Description name y dosage son obligatorios; times y notes opcionales.
// @Tags medications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer <token>"
// @Param payload body createMedicationRequest true "Datos del medicamento"
// @Success 201 {object} Medication
// @Failure 400 {object} httpx.ErrorResponse "invalid json / name y dosage obligatorios"
// @Failure 401 {object} httpx.ErrorResponse
// @Router /api/medications [post]
func createMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createMedicationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		m, err := svc.Create(r.Context(), CreateInput{
			Name:   req.Name,
			Dosage: req.Dosage,
			Times:  req.Times,
			Notes:  req.Notes,
		})
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		metrics.MedicationMutation("create")
		httpx.WriteJSON(w, http.StatusCreated, m)
	}
}

// updateMedicationHandler godoc
// @Summary Actualizar medicamento
// @Description Merge parcial: solo cambian los campos enviados. Un campo ausente o null conserva su valor.
// @Tags medications
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer <token>"
// @Param medicationID path string true "ID del medicamento"
// @Param payload body updateMedicationRequest true "Campos a cambiar"
// @Success 200 {object} Medication
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/medications/{medicationID} [put]
// @Router /api/medications/{medicationID} [patch]
func updateMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updateMedicationRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		m, err := svc.Update(r.Context(), chi.URLParam(r, "medicationID"), UpdateInput{
			Name:   req.Name,
			Dosage: req.Dosage,
			Times:  req.Times,
			Notes:  req.Notes,
		})
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		metrics.MedicationMutation("update")
		httpx.WriteJSON(w, http.StatusOK, m)
	}
}

// deleteMedicationHandler godoc
// @Summary Eliminar medicamento
// @Description Devuelve el registro eliminado. Las tomas ya registradas no se tocan.
// @Tags medications
// @Produce json
// @Param Authorization header string true "Bearer <token>"
// @Param medicationID path string true "ID del medicamento"
// @Success 200 {object} Medication
// @Failure 401 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /api/medications/{medicationID} [delete]
func deleteMedicationHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := svc.Delete(r.Context(), chi.URLParam(r, "medicationID"))
		if err != nil {
			writeServiceError(w, r, log, err)
			return
		}

		metrics.MedicationMutation("delete")
		httpx.WriteJSON(w, http.StatusOK, m)
	}
}

func writeServiceError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		httpx.WriteError(w, http.StatusBadRequest, "name and dosage are required")
	case errors.Is(err, ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	default:
		httpx.InternalError(w, r, log, err)
	}
}
