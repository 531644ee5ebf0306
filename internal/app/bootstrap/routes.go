// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	coordinatorfeature "github.com/dalemusser/internhub/internal/app/features/coordinator"
	errorsfeature "github.com/dalemusser/internhub/internal/app/features/errors"
	healthfeature "github.com/dalemusser/internhub/internal/app/features/health"
	homefeature "github.com/dalemusser/internhub/internal/app/features/home"
	internfeature "github.com/dalemusser/internhub/internal/app/features/intern"
	loginfeature "github.com/dalemusser/internhub/internal/app/features/login"
	logoutfeature "github.com/dalemusser/internhub/internal/app/features/logout"
	mentorfeature "github.com/dalemusser/internhub/internal/app/features/mentor"
	pendingfeature "github.com/dalemusser/internhub/internal/app/features/pending"
	signupfeature "github.com/dalemusser/internhub/internal/app/features/signup"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler for this WAFFLE app.
//
// WAFFLE calls this after configuration, the gateway client, and any
// Startup hooks have completed. InternHub initializes the template
// engine, applies session and CSRF middleware, and mounts feature
// routers for every screen: home, login, signup, logout, pending,
// coordinator, mentor, intern, and health.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// The guard reroutes a wrong-role user to their own landing page.
	// authz.LandingPath is the single role→landing mapping.
	sessionMgr.SetLandingResolver(authz.LandingPath)

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Gateway deadlines match the configured per-request timeout.
	timeouts.Configure(timeouts.Config{Medium: appCfg.APITimeout})

	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	// CSRF protection on every form post. The token travels as the
	// gorilla.csrf.Token hidden field in each template.
	r.Use(csrf.Protect([]byte(appCfg.CSRFKey),
		csrf.Secure(secure),
		csrf.Path("/")))

	// Global auth middleware: loads SessionUser into context if logged in.
	// This makes the current user available to all handlers via auth.CurrentUser(r).
	r.Use(sessionMgr.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Gateway, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Authentication
	loginHandler := loginfeature.NewHandler(deps.Gateway, sessionMgr, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	signupHandler := signupfeature.NewHandler(deps.Gateway, logger)
	r.Mount("/signup", signupfeature.Routes(signupHandler))

	logoutHandler := logoutfeature.NewHandler(sessionMgr, logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler, sessionMgr))

	// Holding page for accounts without an assigned role yet
	pendingHandler := pendingfeature.NewHandler(logger)
	r.Mount("/pending", pendingfeature.Routes(pendingHandler, sessionMgr))

	// Role-based dashboards
	coordinatorHandler := coordinatorfeature.NewHandler(deps.Gateway, sessionMgr, errLog, logger)
	r.Mount("/coordinator", coordinatorfeature.Routes(coordinatorHandler, sessionMgr))

	mentorHandler := mentorfeature.NewHandler(deps.Gateway, sessionMgr, errLog, logger)
	r.Mount("/mentor", mentorfeature.Routes(mentorHandler, sessionMgr))

	internHandler := internfeature.NewHandler(deps.Gateway, sessionMgr, errLog, logger)
	r.Mount("/intern", internfeature.Routes(internHandler, sessionMgr))

	return r, nil
}
