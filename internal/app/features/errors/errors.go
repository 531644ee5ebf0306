// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title      string
	IsLoggedIn bool
	Role       string
	UserName   string
	Message    string
	BackURL    string
}

// ErrorLogger renders server-failure pages while keeping a console trace,
// so no failure is swallowed silently. Role mismatches never come through
// here; the guard reroutes those without rendering anything.
type ErrorLogger struct {
	Log *zap.Logger
}

// NewErrorLogger constructs an ErrorLogger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger}
}

// LogServerError logs the underlying error and renders a friendly page
// with the user-safe message.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.Log.Error(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	RenderError(w, r, userMsg, backURL)
}

// RenderError shows a friendly failure page with a message.
func RenderError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	role, name, _, signedIn := authz.UserCtx(r)
	if backURL == "" {
		backURL = "/"
	}

	data := pageData{
		Title:      "Something went wrong",
		IsLoggedIn: signedIn,
		Role:       role,
		UserName:   name,
		Message:    msg,
		BackURL:    backURL,
	}

	templates.Render(w, r, "error_page", data)
}
