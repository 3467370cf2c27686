package router

import (
	"net/http"

	"medimanager/internal/adapters/auth/sessions"
	mem "medimanager/internal/adapters/storage/memory"
	"medimanager/internal/adapters/storage/snapshotrepo"
	"medimanager/internal/domain/intakes"
	"medimanager/internal/domain/medications"
	"medimanager/internal/domain/overview"
	"medimanager/internal/domain/users"
	"medimanager/internal/middleware"
	"medimanager/internal/platform/httpx"
	"medimanager/internal/platform/logger"
	"medimanager/internal/platform/metrics"
	"medimanager/internal/ports/auth"
	"medimanager/internal/ports/storage"

	_ "medimanager/docs" // registra la doc de swagger

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

const AppName = "MediManager"

type Options struct {
	// Si es nil usa un store en memoria (tests / dev).
	Store storage.RecordStore

	// Si es nil usa sesiones en memoria sin expiración.
	Sessions auth.SessionStore

	Logger logger.Logger

	// DevMode acepta X-Debug-User-ID sin token.
	DevMode bool

	AllowedOrigins []string

	// LoginLimiter limita /api/login. Si es nil se arma con LoginRate/LoginBurst.
	LoginLimiter *middleware.RateLimiter
	LoginRate    float64
	LoginBurst   int

	DisableMetrics bool
	DisableSwagger bool
}

type healthResponse struct {
	Status string `json:"status"`
	App    string `json:"app"`
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	store := opts.Store
	if store == nil {
		store = mem.NewStore()
	}
	sess := opts.Sessions
	if sess == nil {
		sess = sessions.NewMemoryStore(0)
	}
	limiter := opts.LoginLimiter
	if limiter == nil {
		limiter = middleware.NewRateLimiter(opts.LoginRate, opts.LoginBurst, log)
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Recover(log))
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.CORS(opts.AllowedOrigins))
	if !opts.DisableMetrics {
		r.Use(metrics.Instrument)
	}

	r.Use(middleware.AuthContext(sess, opts.DevMode))
	r.Use(middleware.RequireAuth("/api/", "/api/health", "/api/login"))

	if !opts.DisableMetrics {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}
	if !opts.DisableSwagger {
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	// Repos sobre el record store
	medRepo := snapshotrepo.NewMedicationRepo(store)
	intakeRepo := snapshotrepo.NewIntakeRepo(store)
	userRepo := snapshotrepo.NewUserRepo(store)

	// Services por módulo
	medsSvc := medications.NewService(medRepo)
	intakesSvc := intakes.NewService(intakeRepo, medsSvc)
	overviewSvc := overview.NewService(medsSvc, intakesSvc)
	usersSvc := users.NewService(userRepo)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", healthHandler)

		users.RegisterRoutes(api, usersSvc, sess, limiter.Handler, log)
		medications.RegisterRoutes(api, medsSvc, log)
		intakes.RegisterRoutes(api, intakesSvc, log)
		overview.RegisterRoutes(api, overviewSvc, log)
	})

	return r
}

// healthHandler godoc
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} healthResponse
// @Router /api/health [get]
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", App: AppName})
}
