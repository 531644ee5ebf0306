// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, environment). AppConfig is everything specific to InternHub:
// where the internship REST service lives, and the keys that protect
// sessions and forms.
type AppConfig struct {
	// Internship service (the REST API that owns all data)
	APIBaseURL string        // service origin, e.g. http://localhost:4000
	APITimeout time.Duration // per-request client deadline

	// Session management
	SessionKey    string // secret for signing session cookies (strong in production)
	SessionName   string // cookie name (default: internhub-session)
	SessionDomain string // cookie domain (blank means current host)

	// CSRF protection
	CSRFKey string // 32-byte secret for form tokens
}
