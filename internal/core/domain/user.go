package domain

import (
	"errors"
	"time"
)

// Role is the functional permission class of a user. It is deliberately a
// closed enumeration: every access-control decision matches against the
// constants below, so adding a role forces a review of all gates.
type Role string

const (
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
	RoleTherapist Role = "therapist"
)

// ParseRole converts a raw string into a Role. An empty string defaults to
// RoleUser (the registration default); anything else unknown is rejected.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleUser, RoleAdmin, RoleTherapist:
		return Role(s), nil
	case "":
		return RoleUser, nil
	}
	return "", ErrInvalidRole
}

// Valid reports whether the role is one of the known constants.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin, RoleTherapist:
		return true
	}
	return false
}

// Membership is the content-access tier, independent from Role.
type Membership string

const (
	MembershipFree    Membership = "free"
	MembershipPremium Membership = "premium"
	MembershipPro     Membership = "pro"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrForbidden          = errors.New("access forbidden")
)

// NotificationPrefs controls which channels the user accepts messages on.
type NotificationPrefs struct {
	Email bool `json:"email" bson:"email"`
	SMS   bool `json:"sms" bson:"sms"`
	Push  bool `json:"push" bson:"push"`
}

// PrivacyPrefs controls what other members can see.
type PrivacyPrefs struct {
	ProfileVisible  bool `json:"profile_visible" bson:"profile_visible"`
	ProgressVisible bool `json:"progress_visible" bson:"progress_visible"`
}

// Preferences groups per-user settings.
type Preferences struct {
	Notifications NotificationPrefs `json:"notifications" bson:"notifications"`
	Privacy       PrivacyPrefs      `json:"privacy" bson:"privacy"`
}

// Progress tracks listening activity. Counters are best-effort and never
// negative.
type Progress struct {
	TotalSessions      int      `json:"total_sessions" bson:"total_sessions"`
	CurrentStreak      int      `json:"current_streak" bson:"current_streak"`
	ListeningMinutes   int      `json:"listening_minutes" bson:"listening_minutes"`
	CompletedPrograms  []string `json:"completed_programs" bson:"completed_programs"`
	FavoriteCategories []string `json:"favorite_categories" bson:"favorite_categories"`
	Achievements       []string `json:"achievements" bson:"achievements"`
}

// Subscription is the billing sub-record embedded in the user document.
type Subscription struct {
	Plan      Membership `json:"plan" bson:"plan"`
	Status    string     `json:"status" bson:"status"` // active, inactive, cancelled, expired
	StartDate *time.Time `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty" bson:"end_date,omitempty"`
	AutoRenew bool       `json:"auto_renew" bson:"auto_renew"`
}

// User models an account holder. The password is only ever stored as a
// bcrypt hash and is never serialized to clients.
type User struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Email         string       `json:"email"`
	PasswordHash  string       `json:"-"`
	Role          Role         `json:"role"`
	Membership    Membership   `json:"membership_level"`
	Phone         string       `json:"phone,omitempty"`
	ProfileImage  string       `json:"profile_image,omitempty"`
	EmailVerified bool         `json:"is_email_verified"`
	Preferences   Preferences  `json:"preferences"`
	Progress      Progress     `json:"progress"`
	Subscription  Subscription `json:"subscription"`
	LastLogin     *time.Time   `json:"last_login,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// NewUserDefaults returns the preference/progress/subscription sub-records
// applied to every freshly registered account.
func NewUserDefaults() (Preferences, Progress, Subscription) {
	prefs := Preferences{
		Notifications: NotificationPrefs{Email: true, Push: true},
		Privacy:       PrivacyPrefs{ProfileVisible: true},
	}
	progress := Progress{
		CompletedPrograms:  []string{},
		FavoriteCategories: []string{},
		Achievements:       []string{},
	}
	sub := Subscription{Plan: MembershipFree, Status: "active"}
	return prefs, progress, sub
}
