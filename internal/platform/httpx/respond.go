// Package httpx junta los helpers de request/response que comparten los handlers.
package httpx

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"medimanager/internal/platform/logger"
)

const maxBodyBytes = 1 << 20 // 1MB

var ErrInvalidJSON = errors.New("invalid json")

// ErrorResponse es el payload de todo error del API.
type ErrorResponse struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, ErrorResponse{Error: msg})
}

// InternalError loguea el detalle y responde un 500 genérico (no filtra internals al cliente).
func InternalError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	log.Error("request failed", map[string]any{
		"request_id": chimw.GetReqID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
		"error":      err,
	})
	WriteError(w, http.StatusInternalServerError, "internal error")
}

// DecodeJSON decodifica el body (máx 1MB). Body vacío o JSON inválido => ErrInvalidJSON.
func DecodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(v); err != nil {
		return ErrInvalidJSON
	}
	return nil
}
