package api

import (
	"net/http"

	chimid "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"github.com/rs/zerolog"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/rohits-web03/fundbridge/docs"
	"github.com/rohits-web03/fundbridge/internal/api/handlers"
	"github.com/rohits-web03/fundbridge/internal/api/middleware"
	"github.com/rohits-web03/fundbridge/internal/config"
	"github.com/rohits-web03/fundbridge/internal/models"
)

func SetupRouter(h *handlers.Handler, cfg config.Config, log zerolog.Logger) (http.Handler, error) {
	authLimit, err := middleware.NewIPRateLimiter(cfg.RateLimitAuth)
	if err != nil {
		return nil, err
	}
	limited := func(fn http.HandlerFunc) http.Handler { return authLimit(fn) }

	var (
		public   = handlers.Public
		loggedIn = handlers.LoginRequired()
		student  = handlers.RoleRequired(models.RoleStudent, "/dashboard")
		investor = handlers.RoleRequired(models.RoleInvestor, "/dashboard")
	)

	mux := http.NewServeMux()

	// ---------- OPERATIONAL ----------
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("/docs/", httpSwagger.WrapHandler)
	if cfg.MetricsEnabled {
		mux.Handle("GET /metrics", promhttp.Handler())
	}

	// ---------- PUBLIC ROUTES ----------
	mux.HandleFunc("GET /{$}", h.Handle(public, h.Home))
	mux.HandleFunc("GET /register", h.Handle(public, h.RegisterPage))
	mux.Handle("POST /register", limited(h.Handle(public, h.Register)))
	mux.HandleFunc("GET /login", h.Handle(public, h.LoginPage))
	mux.Handle("POST /login", limited(h.Handle(public, h.Login)))
	mux.HandleFunc("GET /auth/google/login", h.Handle(public, h.GoogleLogin))
	mux.HandleFunc("GET /auth/google/callback", h.Handle(public, h.GoogleCallback))

	// ---------- PROTECTED ROUTES ----------
	mux.HandleFunc("GET /logout", h.Handle(loggedIn, h.Logout))
	mux.HandleFunc("GET /dashboard", h.Handle(loggedIn, h.Dashboard))
	mux.HandleFunc("GET /dashboard_student", h.Handle(student, h.DashboardStudent))
	mux.HandleFunc("GET /dashboard_investor", h.Handle(investor, h.DashboardInvestor))
	mux.HandleFunc("GET /projects", h.Handle(loggedIn, h.Projects))
	mux.HandleFunc("GET /project/{project_id}", h.Handle(loggedIn, h.ProjectDetail))

	addProject := handlers.RoleRequired(models.RoleStudent, "/projects")
	mux.HandleFunc("GET /add_project", h.Handle(addProject, h.AddProjectPage))
	mux.HandleFunc("POST /add_project", h.Handle(addProject, h.AddProject))
	mux.HandleFunc("GET /add_project/image_url", h.Handle(student, h.ProjectImageUpload))

	mux.HandleFunc("GET /send_message/{receiver_id}", h.Handle(loggedIn, h.SendMessagePage))
	mux.HandleFunc("POST /send_message/{receiver_id}", h.Handle(loggedIn, h.SendMessage))
	mux.HandleFunc("GET /messages", h.Handle(loggedIn, h.Messages))

	log.Debug().Msg("router initialized")

	var handler http.Handler = mux
	handler = cors.New(cfg.CorsOptions()).Handler(handler)
	handler = middleware.Secure(!cfg.IsProduction())(handler)
	if cfg.MetricsEnabled {
		handler = middleware.Metrics(mux)(handler)
	}
	handler = chimid.Recoverer(handler)
	handler = middleware.Logger(log)(handler)
	// forwarded headers are client controlled unless a proxy overwrites them
	if cfg.TrustProxy {
		handler = chimid.RealIP(handler)
	}
	handler = chimid.RequestID(handler)
	return handler, nil
}
