package users

import (
	"errors"
	"net/http"

	"medimanager/internal/middleware"
	"medimanager/internal/platform/httpx"
	"medimanager/internal/platform/logger"
	"medimanager/internal/platform/metrics"
	"medimanager/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /login (público, con rate limit) y /logout.
// limit puede ser nil.
func RegisterRoutes(r chi.Router, svc *Service, sessions auth.SessionStore, limit func(http.Handler) http.Handler, log logger.Logger) {
	login := http.Handler(loginHandler(svc, sessions, log))
	if limit != nil {
		login = limit(login)
	}
	r.Method(http.MethodPost, "/login", login)
	r.Post("/logout", logoutHandler(sessions, log))
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type loginResponse struct {
	Token string    `json:"token"`
	User  loginUser `json:"user"`
}

// loginHandler godoc
// @Summary Login
// @Description Valida credenciales y devuelve un token opaco para usar como `Authorization: Bearer <token>`.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body loginRequest true "Credenciales"
// @Success 200 {object} loginResponse
// @Failure 400 {object} httpx.ErrorResponse "username y password obligatorios"
// @Failure 401 {object} httpx.ErrorResponse "credenciales inválidas"
// @Failure 429 {object} httpx.ErrorResponse
// @Router /api/login [post]
func loginHandler(svc *Service, sessions auth.SessionStore, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := httpx.DecodeJSON(r, &req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, err.Error())
			return
		}

		u, err := svc.Authenticate(r.Context(), req.Username, req.Password)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				httpx.WriteError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrInvalidCredentials):
				metrics.Login("rejected")
				httpx.WriteError(w, http.StatusUnauthorized, err.Error())
			default:
				httpx.InternalError(w, r, log, err)
			}
			return
		}

		token, err := sessions.Issue(r.Context(), auth.Claims{UserID: u.ID, Username: u.Username})
		if err != nil {
			httpx.InternalError(w, r, log, err)
			return
		}

		metrics.Login("ok")
		httpx.WriteJSON(w, http.StatusOK, loginResponse{
			Token: token,
			User:  loginUser{ID: u.ID, Username: u.Username},
		})
	}
}

// logoutHandler godoc
// @Summary Logout
// @Description Revoca el token del request.
// @Tags auth
// @Param Authorization header string true "Bearer <token>"
// @Success 204
// @Failure 401 {object} httpx.ErrorResponse
// @Router /api/logout [post]
func logoutHandler(sessions auth.SessionStore, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := middleware.BearerToken(r)
		if token == "" {
			httpx.WriteError(w, http.StatusUnauthorized, "missing or invalid authorization header")
			return
		}

		if err := sessions.Revoke(r.Context(), token); err != nil {
			httpx.InternalError(w, r, log, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
