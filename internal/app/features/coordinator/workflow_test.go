package coordinator

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/internhub/internal/domain/models"
)

func user(id, name string, role models.Role) models.UserSummary {
	return models.UserSummary{ID: id, FullName: name, Role: role}
}

func TestSplitByRole(t *testing.T) {
	users := []models.UserSummary{
		user("c1", "Cora", models.RoleCoordinator),
		user("m1", "Mel", models.RoleMentor),
		user("i1", "Ira", models.RoleIntern),
		user("p1", "Pat", models.RoleUser),
	}

	mentors, interns := splitByRole(users)
	if len(mentors) != 1 || mentors[0].ID != "m1" {
		t.Errorf("mentors = %+v", mentors)
	}
	if len(interns) != 1 || interns[0].ID != "i1" {
		t.Errorf("interns = %+v", interns)
	}
}

// A slot's option list excludes interns claimed by other slots but always
// keeps the slot's own current selection.
func TestBuildSlotsExcludesOtherSelections(t *testing.T) {
	interns := []models.UserSummary{
		user("i1", "Ada", models.RoleIntern),
		user("i2", "Alan", models.RoleIntern),
		user("i3", "Edsger", models.RoleIntern),
	}
	form := groupForm{NumInterns: 2, Members: []string{"i1", "i2"}}

	slots := buildSlots(form, interns)
	if len(slots) != 2 {
		t.Fatalf("slots = %d", len(slots))
	}

	ids := func(opts []models.UserSummary) []string {
		var out []string
		for _, o := range opts {
			out = append(out, o.ID)
		}
		return out
	}

	// Slot 0 keeps i1 (own value), offers i3, hides i2.
	got0 := ids(slots[0].Options)
	if strings.Join(got0, ",") != "i1,i3" {
		t.Errorf("slot 0 options = %v", got0)
	}
	// Slot 1 keeps i2, offers i3, hides i1.
	got1 := ids(slots[1].Options)
	if strings.Join(got1, ",") != "i2,i3" {
		t.Errorf("slot 1 options = %v", got1)
	}
	if slots[0].Selected != "i1" || slots[1].Selected != "i2" {
		t.Errorf("selections = %q, %q", slots[0].Selected, slots[1].Selected)
	}
}

func TestValidateSelections(t *testing.T) {
	mentors := []models.UserSummary{user("m1", "Mel", models.RoleMentor)}
	interns := []models.UserSummary{
		user("i1", "Ada", models.RoleIntern),
		user("i2", "Alan", models.RoleIntern),
	}

	tests := []struct {
		name   string
		form   groupForm
		wantOK bool
	}{
		{"complete form", groupForm{MentorID: "m1", NumInterns: 2, Members: []string{"i1", "i2"}}, true},
		{"single slot", groupForm{MentorID: "m1", NumInterns: 1, Members: []string{"i2"}}, true},
		{"no mentor", groupForm{NumInterns: 1, Members: []string{"i1"}}, false},
		{"unknown mentor", groupForm{MentorID: "ghost", NumInterns: 1, Members: []string{"i1"}}, false},
		{"declared two filled one", groupForm{MentorID: "m1", NumInterns: 2, Members: []string{"i1", ""}}, false},
		{"duplicate intern", groupForm{MentorID: "m1", NumInterns: 2, Members: []string{"i1", "i1"}}, false},
		{"non-intern member", groupForm{MentorID: "m1", NumInterns: 1, Members: []string{"m1"}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := validateSelections(tt.form, mentors, interns)
			if ok := msg == ""; ok != tt.wantOK {
				t.Errorf("validateSelections = %q, wantOK=%v", msg, tt.wantOK)
			}
		})
	}
}

func formRequest(values url.Values) *groupForm {
	req := httptest.NewRequest("POST", "/coordinator/groups", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.ParseForm()
	f := parseGroupForm(req)
	return &f
}

// Lowering the declared count truncates trailing member selections.
func TestParseGroupFormTruncates(t *testing.T) {
	f := formRequest(url.Values{
		"groupId":     {"G-1"},
		"numInterns":  {"1"},
		"member0":     {"i1"},
		"member1":     {"i2"},
		"member2":     {"i3"},
		"groupMentor": {"m1"},
	})

	if f.NumInterns != 1 {
		t.Errorf("NumInterns = %d", f.NumInterns)
	}
	if len(f.Members) != 1 || f.Members[0] != "i1" {
		t.Errorf("Members = %v, want the first slot only", f.Members)
	}
}

func TestParseGroupFormClampsCount(t *testing.T) {
	for raw, want := range map[string]int{"0": 1, "-3": 1, "9": 3, "junk": 1, "2": 2} {
		f := formRequest(url.Values{"numInterns": {raw}})
		if f.NumInterns != want {
			t.Errorf("numInterns %q parsed to %d, want %d", raw, f.NumInterns, want)
		}
	}
}

// The composite userId list is always [mentor, members...].
func TestGroupPayloadOrdering(t *testing.T) {
	f := groupForm{
		GroupID:      "G-1",
		ProjectTitle: "Search",
		ProjectType:  "react",
		MentorID:     "m1",
		NumInterns:   2,
		Members:      []string{"i1", "i2"},
	}

	g := f.group("rec9")
	if g.ID != "rec9" || g.MentorID != "m1" {
		t.Errorf("group = %+v", g)
	}
	if strings.Join(g.UserIDs, ",") != "m1,i1,i2" {
		t.Errorf("UserIDs = %v", g.UserIDs)
	}
	if strings.Join(g.MemberIDs, ",") != "i1,i2" {
		t.Errorf("MemberIDs = %v", g.MemberIDs)
	}
}
