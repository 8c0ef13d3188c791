package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"user", RoleUser, false},
		{"admin", RoleAdmin, false},
		{"therapist", RoleTherapist, false},
		{"", RoleUser, false}, // registration default
		{"superadmin", "", true},
		{"Admin", "", true},
	}

	for _, tt := range tests {
		got, err := ParseRole(tt.input)
		if tt.wantErr {
			if err != ErrInvalidRole {
				t.Errorf("ParseRole(%q) error = %v, want ErrInvalidRole", tt.input, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseRole(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleUser, RoleAdmin, RoleTherapist} {
		if !r.Valid() {
			t.Errorf("%q should be valid", r)
		}
	}
	for _, r := range []Role{"", "guest", "ADMIN"} {
		if r.Valid() {
			t.Errorf("%q should not be valid", r)
		}
	}
}

func TestUserJSONOmitsPasswordHash(t *testing.T) {
	u := User{Name: "Test", Email: "test@example.com", PasswordHash: "bcrypt-secret"}
	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "bcrypt-secret") {
		t.Error("password hash leaked into JSON output")
	}
}

func TestNewUserDefaults(t *testing.T) {
	prefs, progress, sub := NewUserDefaults()

	if !prefs.Notifications.Email || !prefs.Notifications.Push {
		t.Error("email and push notifications should default on")
	}
	if prefs.Notifications.SMS {
		t.Error("sms notifications should default off")
	}
	if !prefs.Privacy.ProfileVisible {
		t.Error("profile should default visible")
	}

	if progress.CompletedPrograms == nil || progress.Achievements == nil || progress.FavoriteCategories == nil {
		t.Error("progress slices should be initialized, not nil")
	}

	if sub.Plan != MembershipFree || sub.Status != "active" {
		t.Errorf("subscription defaults = %s/%s, want free/active", sub.Plan, sub.Status)
	}
}
