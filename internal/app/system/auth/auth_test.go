package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/domain/models"
	"go.uber.org/zap"
)

const testSessionKey = "0123456789abcdef0123456789abcdef"

func newManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager(testSessionKey, "internhub-test", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	sm.SetLandingResolver(authz.LandingPath)
	return sm
}

func TestNewSessionManagerRejectsEmptyKey(t *testing.T) {
	if _, err := auth.NewSessionManager("", "name", "", false, zap.NewNop()); err == nil {
		t.Fatal("expected error for empty session key")
	}
}

// carryCookies copies Set-Cookie headers from a response onto a fresh
// request, simulating the browser's next navigation.
func carryCookies(t *testing.T, rec *httptest.ResponseRecorder, target string) *http.Request {
	t.Helper()
	req := httptest.NewRequest("GET", target, nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return req
}

func TestSignInThenLoadSessionUser(t *testing.T) {
	sm := newManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	user := models.UserSummary{ID: "u1", FullName: "Grace", Email: "g@test.com", Role: "Mentor"}
	if err := sm.SignIn(rec, req, "tok-123", user); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	var gotUser *auth.SessionUser
	var gotToken string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = auth.CurrentUser(r)
		gotToken = auth.BearerToken(r)
	})

	req2 := carryCookies(t, rec, "/mentor")
	sm.LoadSessionUser(next).ServeHTTP(httptest.NewRecorder(), req2)

	if gotUser == nil {
		t.Fatal("LoadSessionUser did not inject the user")
	}
	if gotUser.ID != "u1" || gotUser.Role != "Mentor" || gotUser.Email != "g@test.com" {
		t.Errorf("injected user = %+v", gotUser)
	}
	if gotToken != "tok-123" {
		t.Errorf("bearer token = %q, want tok-123", gotToken)
	}
}

func TestSignOutClearsSession(t *testing.T) {
	sm := newManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	user := models.UserSummary{ID: "u1", FullName: "Grace", Role: "Intern"}
	if err := sm.SignIn(rec, req, "tok", user); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	req2 := carryCookies(t, rec, "/logout")
	rec2 := httptest.NewRecorder()
	if err := sm.SignOut(rec2, req2); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	cleared := false
	for _, c := range rec2.Result().Cookies() {
		if c.Name == "internhub-test" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("SignOut did not expire the session cookie")
	}
}

// A session holding a token but no user record violates the
// both-or-neither invariant and must read as signed out.
func TestPartialSessionTreatedAsAbsent(t *testing.T) {
	sm := newManager(t)

	req := httptest.NewRequest("GET", "/", nil)
	sess, err := sm.GetSession(req)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	sess.Values["token"] = "orphan-token"
	rec := httptest.NewRecorder()
	if err := sess.Save(req, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	sawUser := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawUser = auth.CurrentUser(r)
	})

	req2 := carryCookies(t, rec, "/")
	rec2 := httptest.NewRecorder()
	sm.LoadSessionUser(next).ServeHTTP(rec2, req2)

	if sawUser {
		t.Error("partial session was treated as signed in")
	}
	// The corrupted cookie is cleared on the spot.
	cleared := false
	for _, c := range rec2.Result().Cookies() {
		if c.Name == "internhub-test" && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("partial session cookie was not cleared")
	}
}

func TestCorruptedUserBlobTreatedAsAbsent(t *testing.T) {
	sm := newManager(t)

	req := httptest.NewRequest("GET", "/", nil)
	sess, _ := sm.GetSession(req)
	sess.Values["token"] = "tok"
	sess.Values["user"] = "{not-json"
	rec := httptest.NewRecorder()
	if err := sess.Save(req, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	sawUser := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, sawUser = auth.CurrentUser(r)
	})
	sm.LoadSessionUser(next).ServeHTTP(httptest.NewRecorder(), carryCookies(t, rec, "/"))

	if sawUser {
		t.Error("corrupted session was treated as signed in")
	}
}

func TestRequireSignedIn(t *testing.T) {
	sm := newManager(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	sm.RequireSignedIn(next).ServeHTTP(rec, httptest.NewRequest("GET", "/coordinator", nil))
	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
		t.Errorf("anonymous request: got %d -> %q, want 303 -> /login", rec.Code, rec.Header().Get("Location"))
	}

	rec = httptest.NewRecorder()
	req := auth.WithTestUser(httptest.NewRequest("GET", "/coordinator", nil),
		&auth.SessionUser{ID: "u1", Role: "Coordinator"})
	sm.RequireSignedIn(next).ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("signed-in request blocked: %d", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	sm := newManager(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	guard := sm.RequireRole("Coordinator")(next)

	t.Run("anonymous goes to login", func(t *testing.T) {
		rec := httptest.NewRecorder()
		guard.ServeHTTP(rec, httptest.NewRequest("GET", "/coordinator", nil))
		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/login" {
			t.Errorf("got %d -> %q", rec.Code, rec.Header().Get("Location"))
		}
	})

	t.Run("matching role passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := auth.WithTestUser(httptest.NewRequest("GET", "/coordinator", nil),
			&auth.SessionUser{ID: "u1", Role: "Coordinator"})
		guard.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("coordinator blocked from own area: %d", rec.Code)
		}
	})

	t.Run("wrong role reroutes to own landing", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := auth.WithTestUser(httptest.NewRequest("GET", "/coordinator", nil),
			&auth.SessionUser{ID: "u2", Role: "Intern"})
		guard.ServeHTTP(rec, req)
		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/intern" {
			t.Errorf("got %d -> %q, want 303 -> /intern", rec.Code, rec.Header().Get("Location"))
		}
	})

	t.Run("pending role reroutes to holding page", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := auth.WithTestUser(httptest.NewRequest("GET", "/coordinator", nil),
			&auth.SessionUser{ID: "u3", Role: "User"})
		guard.ServeHTTP(rec, req)
		if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/pending" {
			t.Errorf("got %d -> %q, want 303 -> /pending", rec.Code, rec.Header().Get("Location"))
		}
	})
}
