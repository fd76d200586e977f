package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"followup_tracker/internal/model"
)

func TestHasRole_HyphenAndUnderscoreEqual(t *testing.T) {
	assert.True(t, HasRole("zonal-admin", model.RoleZonalAdmin))
	assert.True(t, HasRole("zonal_admin", "zonal-admin"))
	assert.True(t, HasRole("Zonal-Admin", model.RoleZonalAdmin))
}

func TestHasRole_SoulWinnerFailsAdminChecks(t *testing.T) {
	assert.False(t, HasRole(model.RoleSoulWinner, model.AdminRoles...))
	assert.False(t, HasRole(model.RoleSoulWinner, model.RoleParishAdmin))
}

func TestHasRole_SuperAdminPassesEverything(t *testing.T) {
	assert.True(t, HasRole(model.RoleSuperAdmin, model.RoleParishAdmin))
	assert.True(t, HasRole("super-admin", model.RoleZonalAdmin))
	assert.True(t, HasRole(model.RoleSuperAdmin), "even an empty allow-list")
}

func TestHasRole_EmptyRole(t *testing.T) {
	assert.False(t, HasRole("", model.RoleParishAdmin))
}

func TestHasRole_ExactMatchOnly(t *testing.T) {
	assert.False(t, HasRole(model.RoleAreaAdmin, model.RoleParishAdmin, model.RoleZonalAdmin))
	assert.True(t, HasRole(model.RoleAreaAdmin, model.RoleParishAdmin, model.RoleAreaAdmin))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin("parish-admin"))
	assert.True(t, IsAdmin(model.RoleSuperAdmin))
	assert.False(t, IsAdmin(model.RoleSoulWinner))
	assert.False(t, IsAdmin(""))
}
