package coordinator_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/dalemusser/internhub/internal/app/features/coordinator"
	"github.com/dalemusser/internhub/internal/app/features/errors"
	"github.com/dalemusser/internhub/internal/app/system/auth"
	"github.com/dalemusser/internhub/internal/app/system/authz"
	"github.com/dalemusser/internhub/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T, u *testutil.Upstream) *coordinator.Handler {
	t.Helper()
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "internhub-test", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	sm.SetLandingResolver(authz.LandingPath)
	logger := zap.NewNop()
	return coordinator.NewHandler(u.Gateway(), sm, errors.NewErrorLogger(logger), logger)
}

// serveUsers registers the standard selection pools on the fake service.
func serveUsers(u *testutil.Upstream) {
	u.Handle("GET", "/getuser", func(w http.ResponseWriter, r *http.Request) {
		testutil.RespondJSON(w, []map[string]string{
			{"_id": "m1", "fullName": "Mel Mentor", "email": "mel@test.com", "userRole": "Mentor"},
			{"_id": "i1", "fullName": "Ada Intern", "email": "ada@test.com", "userRole": "Intern"},
			{"_id": "i2", "fullName": "Alan Intern", "email": "alan@test.com", "userRole": "Intern"},
		})
	})
}

// Declaring two slots but filling one must be rejected before the service
// sees a create request.
func TestHandleCreateGroupIncompleteSlots(t *testing.T) {
	u := testutil.NewUpstream(t)
	serveUsers(u)
	u.Handle("POST", "/addGroup", func(w http.ResponseWriter, r *http.Request) {
		testutil.RespondEnvelope(w, nil)
	})
	h := newTestHandler(t, u)

	rec := testutil.NewRecorder()
	req := testutil.NewFormRequest("/coordinator/groups", map[string]string{
		"groupId":      "G-1",
		"projectTitle": "Search Service",
		"projectType":  "fullStack",
		"groupMentor":  "m1",
		"numInterns":   "2",
		"member0":      "i1",
	})
	req = testutil.WithUser(req, testutil.CoordinatorUser())

	testutil.ServeQuiet(func() {
		h.HandleCreateGroup(rec.ResponseRecorder, req)
	})

	if u.Calls("POST", "/addGroup") != 0 {
		t.Error("incomplete form still reached the service")
	}
}

func TestHandleCreateGroupDuplicateInterns(t *testing.T) {
	u := testutil.NewUpstream(t)
	serveUsers(u)
	u.Handle("POST", "/addGroup", func(w http.ResponseWriter, r *http.Request) {
		testutil.RespondEnvelope(w, nil)
	})
	h := newTestHandler(t, u)

	rec := testutil.NewRecorder()
	req := testutil.NewFormRequest("/coordinator/groups", map[string]string{
		"groupId":      "G-1",
		"projectTitle": "Search Service",
		"projectType":  "fullStack",
		"groupMentor":  "m1",
		"numInterns":   "2",
		"member0":      "i1",
		"member1":      "i1",
	})
	req = testutil.WithUser(req, testutil.CoordinatorUser())

	testutil.ServeQuiet(func() {
		h.HandleCreateGroup(rec.ResponseRecorder, req)
	})

	if u.Calls("POST", "/addGroup") != 0 {
		t.Error("duplicate interns still reached the service")
	}
}

// A missing project title fails local validation before any submit.
func TestHandleCreateGroupMissingTitle(t *testing.T) {
	u := testutil.NewUpstream(t)
	serveUsers(u)
	u.Handle("POST", "/addGroup", func(w http.ResponseWriter, r *http.Request) {
		testutil.RespondEnvelope(w, nil)
	})
	h := newTestHandler(t, u)

	rec := testutil.NewRecorder()
	req := testutil.NewFormRequest("/coordinator/groups", map[string]string{
		"groupId":     "G-1",
		"projectType": "fullStack",
		"groupMentor": "m1",
		"numInterns":  "1",
		"member0":     "i1",
	})
	req = testutil.WithUser(req, testutil.CoordinatorUser())

	testutil.ServeQuiet(func() {
		h.HandleCreateGroup(rec.ResponseRecorder, req)
	})

	if u.Calls("POST", "/addGroup") != 0 {
		t.Error("text validation failure still reached the service")
	}
}

func TestHandleCreateGroupSuccess(t *testing.T) {
	u := testutil.NewUpstream(t)
	serveUsers(u)
	var got map[string]any
	u.Handle("POST", "/addGroup", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		testutil.RespondEnvelope(w, nil)
	})
	h := newTestHandler(t, u)

	rec := testutil.NewRecorder()
	req := testutil.NewFormRequest("/coordinator/groups", map[string]string{
		"groupId":      "G-1",
		"projectTitle": "Search Service",
		"projectType":  "fullStack",
		"groupMentor":  "m1",
		"numInterns":   "2",
		"member0":      "i1",
		"member1":      "i2",
	})
	req = testutil.WithUser(req, testutil.CoordinatorUser())

	testutil.ServeQuiet(func() {
		h.HandleCreateGroup(rec.ResponseRecorder, req)
	})

	if u.Calls("POST", "/addGroup") != 1 {
		t.Fatal("valid form did not reach the service")
	}
	ids, _ := got["userId"].([]any)
	if len(ids) != 3 || ids[0] != "m1" {
		t.Errorf("userId = %v, want [m1 i1 i2]", got["userId"])
	}
}

// The refresh action recomputes slots without submitting.
func TestHandleCreateGroupRefreshDoesNotSubmit(t *testing.T) {
	u := testutil.NewUpstream(t)
	serveUsers(u)
	u.Handle("POST", "/addGroup", func(w http.ResponseWriter, r *http.Request) {
		testutil.RespondEnvelope(w, nil)
	})
	h := newTestHandler(t, u)

	rec := testutil.NewRecorder()
	req := testutil.NewFormRequest("/coordinator/groups", map[string]string{
		"action":       "refresh",
		"groupId":      "G-1",
		"projectTitle": "Search Service",
		"projectType":  "fullStack",
		"groupMentor":  "m1",
		"numInterns":   "3",
		"member0":      "i1",
	})
	req = testutil.WithUser(req, testutil.CoordinatorUser())

	testutil.ServeQuiet(func() {
		h.HandleCreateGroup(rec.ResponseRecorder, req)
	})

	if u.Calls("POST", "/addGroup") != 0 {
		t.Error("refresh pass submitted the form")
	}
}

func TestHandleUpdateRole(t *testing.T) {
	u := testutil.NewUpstream(t)
	var got map[string]string
	u.Handle("PUT", "/addRoles", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		testutil.RespondEnvelope(w, nil)
	})
	h := newTestHandler(t, u)

	rec := testutil.NewRecorder()
	req := testutil.NewFormRequest("/coordinator/users/u1/role", map[string]string{
		"email":    "ada@test.com",
		"userRole": "Mentor",
	})
	req = testutil.WithUser(req, testutil.CoordinatorUser())
	req = testutil.WithChiURLParam(req, "id", "u1")

	h.HandleUpdateRole(rec.ResponseRecorder, req)

	rec.AssertRedirectPrefix(t, "/coordinator/users?notice=")
	if got["email"] != "ada@test.com" || got["userRole"] != "Mentor" {
		t.Errorf("payload = %+v", got)
	}
}

func TestHandleUpdateRoleInvalidRole(t *testing.T) {
	u := testutil.NewUpstream(t)
	u.Handle("PUT", "/addRoles", func(w http.ResponseWriter, r *http.Request) {
		testutil.RespondEnvelope(w, nil)
	})
	h := newTestHandler(t, u)

	rec := testutil.NewRecorder()
	req := testutil.NewFormRequest("/coordinator/users/u1/role", map[string]string{
		"email":    "ada@test.com",
		"userRole": "Overlord",
	})
	req = testutil.WithUser(req, testutil.CoordinatorUser())
	req = testutil.WithChiURLParam(req, "id", "u1")

	h.HandleUpdateRole(rec.ResponseRecorder, req)

	rec.AssertRedirectPrefix(t, "/coordinator/users?notice=")
	if u.Calls("PUT", "/addRoles") != 0 {
		t.Error("unknown role still reached the service")
	}
}

// A full edit replaces name, email, and role through the management
// endpoint and returns to the table.
func TestHandleEditUserSuccess(t *testing.T) {
	u := testutil.NewUpstream(t)
	var got map[string]string
	u.Handle("PUT", "/manageUsers/{id}", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		testutil.RespondEnvelope(w, nil)
	})
	h := newTestHandler(t, u)

	rec := testutil.NewRecorder()
	req := testutil.NewFormRequest("/coordinator/users/u1/edit", map[string]string{
		"fullName": "Ada Lovelace",
		"email":    "ada@test.com",
		"userRole": "Mentor",
	})
	req = testutil.WithUser(req, testutil.CoordinatorUser())
	req = testutil.WithChiURLParam(req, "id", "u1")

	h.HandleEditUser(rec.ResponseRecorder, req)

	rec.AssertRedirectPrefix(t, "/coordinator/users?notice=")
	if u.Calls("PUT", "/manageUsers/{id}") != 1 {
		t.Fatal("edit did not reach the service")
	}
	if got["_id"] != "u1" || got["fullName"] != "Ada Lovelace" || got["userRole"] != "Mentor" {
		t.Errorf("payload = %+v", got)
	}
}

func TestHandleEditUserInvalidEmail(t *testing.T) {
	u := testutil.NewUpstream(t)
	u.Handle("PUT", "/manageUsers/{id}", func(w http.ResponseWriter, r *http.Request) {
		testutil.RespondEnvelope(w, nil)
	})
	h := newTestHandler(t, u)

	rec := testutil.NewRecorder()
	req := testutil.NewFormRequest("/coordinator/users/u1/edit", map[string]string{
		"fullName": "Ada Lovelace",
		"email":    "not-an-address",
		"userRole": "Mentor",
	})
	req = testutil.WithUser(req, testutil.CoordinatorUser())
	req = testutil.WithChiURLParam(req, "id", "u1")

	testutil.ServeQuiet(func() {
		h.HandleEditUser(rec.ResponseRecorder, req)
	})

	if u.Calls("PUT", "/manageUsers/{id}") != 0 {
		t.Error("invalid email still reached the service")
	}
}

func TestHandleEditUserUnknownRole(t *testing.T) {
	u := testutil.NewUpstream(t)
	u.Handle("PUT", "/manageUsers/{id}", func(w http.ResponseWriter, r *http.Request) {
		testutil.RespondEnvelope(w, nil)
	})
	h := newTestHandler(t, u)

	rec := testutil.NewRecorder()
	req := testutil.NewFormRequest("/coordinator/users/u1/edit", map[string]string{
		"fullName": "Ada Lovelace",
		"email":    "ada@test.com",
		"userRole": "Overlord",
	})
	req = testutil.WithUser(req, testutil.CoordinatorUser())
	req = testutil.WithChiURLParam(req, "id", "u1")

	testutil.ServeQuiet(func() {
		h.HandleEditUser(rec.ResponseRecorder, req)
	})

	if u.Calls("PUT", "/manageUsers/{id}") != 0 {
		t.Error("unknown role still reached the service")
	}
}

func TestServeRoleAssignmentsFetchesRegister(t *testing.T) {
	u := testutil.NewUpstream(t)
	u.Handle("GET", "/addRoles", func(w http.ResponseWriter, r *http.Request) {
		testutil.RespondJSON(w, []map[string]string{
			{"id": "a1", "name": "Ada", "email": "ada@test.com", "role": "Intern"},
		})
	})
	h := newTestHandler(t, u)

	rec := testutil.NewRecorder()
	req := testutil.NewAuthenticatedRequest(http.MethodGet, "/coordinator/roles", testutil.CoordinatorUser())

	testutil.ServeQuiet(func() {
		h.ServeRoleAssignments(rec.ResponseRecorder, req)
	})

	if u.Calls("GET", "/addRoles") != 1 {
		t.Error("role screen did not fetch the register")
	}
}

func TestHandleDeleteRoleAssignment(t *testing.T) {
	u := testutil.NewUpstream(t)
	u.Handle("DELETE", "/addRoles/{id}", func(w http.ResponseWriter, r *http.Request) {
		testutil.RespondEnvelope(w, nil)
	})
	h := newTestHandler(t, u)

	rec := testutil.NewRecorder()
	req := testutil.NewFormRequest("/coordinator/roles/a1/delete", nil)
	req = testutil.WithUser(req, testutil.CoordinatorUser())
	req = testutil.WithChiURLParam(req, "id", "a1")

	h.HandleDeleteRoleAssignment(rec.ResponseRecorder, req)

	rec.AssertRedirectPrefix(t, "/coordinator/roles?notice=")
	if u.Calls("DELETE", "/addRoles/{id}") != 1 {
		t.Error("assignment delete did not reach the service")
	}
}

func TestHandleDeleteUser(t *testing.T) {
	u := testutil.NewUpstream(t)
	u.Handle("DELETE", "/deleteUser/{id}", func(w http.ResponseWriter, r *http.Request) {
		testutil.RespondEnvelope(w, nil)
	})
	h := newTestHandler(t, u)

	rec := testutil.NewRecorder()
	req := testutil.NewFormRequest("/coordinator/users/u1/delete", nil)
	req = testutil.WithUser(req, testutil.CoordinatorUser())
	req = testutil.WithChiURLParam(req, "id", "u1")

	h.HandleDeleteUser(rec.ResponseRecorder, req)

	rec.AssertRedirectPrefix(t, "/coordinator/users?notice=")
	if u.Calls("DELETE", "/deleteUser/{id}") != 1 {
		t.Error("delete did not reach the service")
	}
}

func TestHandleDeleteGroup(t *testing.T) {
	u := testutil.NewUpstream(t)
	u.Handle("DELETE", "/deleteGroup/{id}", func(w http.ResponseWriter, r *http.Request) {
		testutil.RespondEnvelope(w, nil)
	})
	h := newTestHandler(t, u)

	rec := testutil.NewRecorder()
	req := testutil.NewFormRequest("/coordinator/groups/g1/delete", nil)
	req = testutil.WithUser(req, testutil.CoordinatorUser())
	req = testutil.WithChiURLParam(req, "id", "g1")

	h.HandleDeleteGroup(rec.ResponseRecorder, req)

	rec.AssertRedirectPrefix(t, "/coordinator/groups?notice=")
	if u.Calls("DELETE", "/deleteGroup/{id}") != 1 {
		t.Error("group delete did not reach the service")
	}
}

// A full-replacement edit sends membership, mentor, and metadata together.
func TestHandleEditGroupSuccess(t *testing.T) {
	u := testutil.NewUpstream(t)
	serveUsers(u)
	var got map[string]any
	u.Handle("PUT", "/updateGroup", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&got)
		testutil.RespondEnvelope(w, nil)
	})
	h := newTestHandler(t, u)

	rec := testutil.NewRecorder()
	req := testutil.NewFormRequest("/coordinator/groups/rec1/edit", map[string]string{
		"groupId":      "G-1",
		"projectTitle": "Search Service v2",
		"projectType":  "react",
		"groupMentor":  "m1",
		"numInterns":   "1",
		"member0":      "i2",
	})
	req = testutil.WithUser(req, testutil.CoordinatorUser())
	req = testutil.WithChiURLParam(req, "id", "rec1")

	h.HandleEditGroup(rec.ResponseRecorder, req)

	rec.AssertRedirectPrefix(t, "/coordinator/groups?notice=")
	if got["_id"] != "rec1" || got["projectTitle"] != "Search Service v2" {
		t.Errorf("payload = %+v", got)
	}
	ids, _ := got["userId"].([]any)
	if len(ids) != 2 || ids[0] != "m1" || ids[1] != "i2" {
		t.Errorf("userId = %v", got["userId"])
	}
}
