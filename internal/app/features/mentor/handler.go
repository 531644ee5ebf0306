// internal/app/features/mentor/handler.go
package mentor

import (
	"context"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/features/errors"
	"github.com/dalemusser/internhub/internal/app/gateway"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.uber.org/zap"
)

// Handler is the shared dependency container for the mentor feature:
// the group overview, task assignment, and progress screens.
type Handler struct {
	Gateway    *gateway.Client
	SessionMgr *auth.SessionManager
	ErrLog     *errors.ErrorLogger
	Log        *zap.Logger
}

// NewHandler constructs a mentor Handler.
func NewHandler(gw *gateway.Client, sessionMgr *auth.SessionManager, errLog *errors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Gateway:    gw,
		SessionMgr: sessionMgr,
		ErrLog:     errLog,
		Log:        logger,
	}
}

// failGateway handles a gateway error on a mentor screen. A rejected or
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

// findGroup locates one of the mentor's groups by record ID. The service
// only exposes the full per-mentor listing, so this filters it.
func (h *Handler) findGroup(ctx context.Context, token, id string) (*models.MentorGroup, error) {
	groups, err := h.Gateway.MentorGroupDetails(ctx, token)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == id {
			return &groups[i], nil
		}
	}
	return nil, nil
}
