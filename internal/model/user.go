package model

import "strings"

const (
	RoleSoulWinner  = "soul_winner"
	RoleParishAdmin = "parish_admin"
	RoleAreaAdmin   = "area_admin"
	RoleZonalAdmin  = "zonal_admin"
	RoleSuperAdmin  = "super_admin"
)

// AdminRoles lists every role with admin-level access, in ascending scope.
var AdminRoles = []string{RoleParishAdmin, RoleAreaAdmin, RoleZonalAdmin, RoleSuperAdmin}

// User represents the authenticated user's profile as returned by the API.
// The API has historically sent ids under either "id" or "_id", so both are
// kept and NormalizeID reconciles them.
type User struct {
	ID             string `json:"id,omitempty"`
	MongoID        string `json:"_id,omitempty"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Role           string `json:"role"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	ZonalID        string `json:"zonalId,omitempty"`
	AreaID         string `json:"areaId,omitempty"`
	ParishID       string `json:"parishId,omitempty"`
	IsValidated    bool   `json:"isValidated,omitempty"`
}

// NormalizeID populates ID from the legacy "_id" field when the modern
// field is absent.
func (u *User) NormalizeID() {
	if u.ID == "" {
		u.ID = u.MongoID
	}
}

// IsZero reports whether the user carries no identifying information at all.
func (u User) IsZero() bool {
	return u.ID == "" && u.MongoID == "" && u.Name == "" && u.Email == ""
}

// NormalizeRole maps a role string to its canonical form: lowercase with
// underscore word separators. The API has sent both "zonal-admin" and
// "zonal_admin" over time; both must compare equal.
func NormalizeRole(role string) string {
	return strings.ToLower(strings.ReplaceAll(role, "-", "_"))
}

// SignupRequest is the payload for POST /auth/signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	ZonalID  string `json:"zonalId,omitempty"`
	AreaID   string `json:"areaId,omitempty"`
	ParishID string `json:"parishId,omitempty"`
}

// LoginRequest is the payload for POST /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
