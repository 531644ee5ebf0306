// internal/app/system/auth/auth.go
package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dalemusser/internhub/internal/domain/models"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Session constants                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	tokenKey = "token"
	userKey  = "user"
)

// SessionUser is the identity cached in the session cookie and injected
// into r.Context(). It mirrors models.UserSummary; role changes only take
// effect on re-login, so there is no per-request refetch.
type SessionUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Summary converts the cached identity back to the domain shape.
func (u *SessionUser) Summary() models.UserSummary {
	return models.UserSummary{ID: u.ID, FullName: u.Name, Email: u.Email, Role: models.Role(u.Role)}
}

type ctxKey string

const (
	currentUserKey ctxKey = "currentUser"
	bearerTokenKey ctxKey = "bearerToken"
)

// CurrentUser returns the signed-in user and a "found?" flag.
func CurrentUser(r *http.Request) (*SessionUser, bool) {
	u, ok := r.Context().Value(currentUserKey).(*SessionUser)
	return u, ok
}

// BearerToken returns the session's API token, or "" when signed out.
// Gateway calls on protected screens pass this through.
func BearerToken(r *http.Request) string {
	tok, _ := r.Context().Value(bearerTokenKey).(string)
	return tok
}

/*─────────────────────────────────────────────────────────────────────────────*
| SessionManager                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// SessionManager owns the signed session cookie: the durable client-side
// store for the bearer token and cached identity. Token and user travel in
// one cookie, written in a single save, so a session can never be half-set.
// Reads treat any decode failure or partial record as "absent" and clear
// the cookie (fail-safe, not fail-open).
type SessionManager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger

	// landingFor maps a role to its dashboard path. Set once at startup
	// (SetLandingResolver) so the guard can reroute a wrong-role user to
	// their own landing instead of a forbidden page.
	landingFor func(role string) string
}

// NewSessionManager builds the cookie store. The key must be ≥32 random
// chars in production; shorter keys are accepted with a warning so local
// dev stays friction-free.
func NewSessionManager(sessionKey, name, domain string, secure bool, logger *zap.Logger) (*SessionManager, error) {
	if sessionKey == "" {
		return nil, fmt.Errorf("session key is empty; provide ≥32 random chars")
	}
	if len(sessionKey) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(sessionKey)))
	}

	store := sessions.NewCookieStore([]byte(sessionKey))
	opts := &sessions.Options{
		Domain:   domain,
		Path:     "/",
		Secure:   secure,
		HttpOnly: true,
	}
	if secure {
		opts.SameSite = http.SameSiteNoneMode
	} else {
		opts.SameSite = http.SameSiteLaxMode
	}
	store.Options = opts

	logger.Info("session store initialized",
		zap.Bool("secure", secure),
		zap.String("domain", domain))

	return &SessionManager{store: store, name: name, log: logger}, nil
}

// Store exposes the underlying cookie store (logout needs its options).
func (m *SessionManager) Store() *sessions.CookieStore { return m.store }

// SetLandingResolver installs the role→landing mapping the guard uses for
// wrong-role redirects. Called once from bootstrap with authz.LandingPath.
func (m *SessionManager) SetLandingResolver(fn func(role string) string) {
	m.landingFor = fn
}

// GetSession fetches the named session, ignoring decode errors the way
// gorilla does (a fresh session is returned either way).
func (m *SessionManager) GetSession(r *http.Request) (*sessions.Session, error) {
	return m.store.Get(r, m.name)
}

// SignIn writes the token and identity into the session in one save. If
// the write fails, nothing is persisted: the caller re-renders the login
// form instead of leaving a partial session behind.
func (m *SessionManager) SignIn(w http.ResponseWriter, r *http.Request, token string, user models.UserSummary) error {
	sess, _ := m.store.Get(r, m.name)

	buf, err := json.Marshal(SessionUser{
		ID:    user.ID,
		Name:  user.FullName,
		Email: user.Email,
		Role:  string(user.Role),
	})
	if err != nil {
		return fmt.Errorf("encode session user: %w", err)
	}

	sess.Values[tokenKey] = token
	sess.Values[userKey] = string(buf)
	return sess.Save(r, w)
}

// SignOut expires the session cookie immediately.
func (m *SessionManager) SignOut(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, m.name)
	if opts := m.store.Options; opts != nil {
		sess.Options.Domain = opts.Domain
		sess.Options.Path = opts.Path
		sess.Options.Secure = opts.Secure
		sess.Options.HttpOnly = opts.HttpOnly
		sess.Options.SameSite = opts.SameSite
	}
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// sessionUser decodes the stored record. ok is false for any violation of
// the both-or-neither invariant: missing token, missing user, or a user
// blob that fails to decode.
func (m *SessionManager) sessionUser(sess *sessions.Session) (token string, user *SessionUser, ok bool) {
	token, _ = sess.Values[tokenKey].(string)
	raw, _ := sess.Values[userKey].(string)
	if token == "" || raw == "" {
		return "", nil, false
	}

	var u SessionUser
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.ID == "" {
		return "", nil, false
	}
	return token, &u, true
}

/*─────────────────────────────────────────────────────────────────────────────*
| Middleware                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

// LoadSessionUser injects the user and bearer token into context if the
// session is fully populated. A corrupted or half-set session is cleared
// on the spot and the request continues anonymous.
func (m *SessionManager) LoadSessionUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess, _ := m.store.Get(r, m.name)

		token, user, ok := m.sessionUser(sess)
		if !ok {
			if len(sess.Values) > 0 {
				// Invariant violation: treat as absent and force re-login.
				m.log.Warn("clearing corrupted session")
				if err := m.SignOut(w, r); err != nil {
					m.log.Error("session clear failed", zap.Error(err))
				}
			}
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), currentUserKey, user)
		ctx = context.WithValue(ctx, bearerTokenKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireSignedIn redirects anonymous requests to /login. The check runs
// on every navigation to a protected route; nothing is cached between
// requests.
func (m *SessionManager) RequireSignedIn(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r); !ok {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole renders the wrapped content only for the allowed roles.
// Anonymous requests go to /login. A signed-in user with a different role
// is silently rerouted to their own landing page: foreign content is never
// rendered and no "forbidden" page is shown.
func (m *SessionManager) RequireRole(allowed ...string) func(http.Handler) http.Handler {
	set := make(map[string]struct{}, len(allowed))
	for _, role := range allowed {
		set[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok := CurrentUser(r)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			if _, has := set[u.Role]; !has {
				dest := "/login"
				if m.landingFor != nil {
					dest = m.landingFor(u.Role)
				}
				http.Redirect(w, r, dest, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| Test helpers                                                                |
*─────────────────────────────────────────────────────────────────────────────*/

// WithTestUser injects a user (and a placeholder token) into the request
// context, bypassing the session middleware. Tests only.
func WithTestUser(r *http.Request, u *SessionUser) *http.Request {
	ctx := context.WithValue(r.Context(), currentUserKey, u)
	ctx = context.WithValue(ctx, bearerTokenKey, "test-token")
	return r.WithContext(ctx)
}

// WithTestToken overrides the bearer token in context. Tests only.
func WithTestToken(r *http.Request, token string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), bearerTokenKey, token))
}
