// internal/app/features/coordinator/handler.go
package coordinator

import (
	"net/http"

	"github.com/dalemusser/internhub/internal/app/features/errors"
	"github.com/dalemusser/internhub/internal/app/gateway"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the coordinator feature.
// It holds the gateway client and logger so the various panels (user
// management, group assignment, group management) share the same core
// dependencies.
type Handler struct {
	Gateway    *gateway.Client
	SessionMgr *auth.SessionManager
	ErrLog     *errors.ErrorLogger
	Log        *zap.Logger
}

// NewHandler constructs a coordinator Handler. It is typically called from
// the bootstrap BuildHandler function.
func NewHandler(gw *gateway.Client, sessionMgr *auth.SessionManager, errLog *errors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Gateway:    gw,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Log:        logger,
	}
}

// failGateway handles a gateway error on a coordinator screen. A rejected
// or expired token clears the session and sends the user back to login;
// anything else renders the failure page with a way back.
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
