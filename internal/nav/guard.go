package nav

import "followup_tracker/internal/model"

// HasRole reports whether userRole matches any of the allowed roles after
// canonical normalization. A super admin passes every check regardless of
// the allow-list. This gates what the UI offers, nothing more: real
// enforcement lives server-side.
func HasRole(userRole string, allowed ...string) bool {
	normalized := model.NormalizeRole(userRole)
	if normalized == "" {
		return false
	}
	if normalized == model.RoleSuperAdmin {
		return true
	}
	for _, role := range allowed {
		if model.NormalizeRole(role) == normalized {
			return true
		}
	}
	return false
}

// IsAdmin reports whether the role carries any admin-level access.
func IsAdmin(userRole string) bool {
	return HasRole(userRole, model.AdminRoles...)
}
