// internal/app/features/intern/handler.go
package intern

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/features/errors"
	"github.com/dalemusser/internhub/internal/app/gateway"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler is the dependency container for the intern task screen.
type Handler struct {
	Gateway    *gateway.Client
	SessionMgr *auth.SessionManager
	ErrLog     *errors.ErrorLogger
	Log        *zap.Logger
}

// NewHandler constructs an intern Handler.
func NewHandler(gw *gateway.Client, sessionMgr *auth.SessionManager, errLog *errors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Gateway:    gw,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Log:        logger,
	}
}

// failGateway handles a gateway error on the intern screen. A rejected or
// expired token clears the session and returns the user to login;
// anything else renders the failure page.
func (h *Handler) failGateway(w http.ResponseWriter, r *http.Request, err error, logMsg, userMsg, backURL string) {
	if gateway.IsAuth(err) {
		if soErr := h.SessionMgr.SignOut(w, r); soErr != nil {
			h.Log.Error("session clear failed", zap.Error(soErr))
		}
		http.Redirect(w, r, "/login?notice=Your+session+has+expired.+Please+sign+in+again.", http.StatusSeeOther)
		return
	}
	h.ErrLog.LogServerError(w, r, logMsg, err, userMsg, backURL)
}
