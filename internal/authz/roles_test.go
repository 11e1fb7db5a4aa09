package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleValid(t *testing.T) {
	for _, role := range AllRoles() {
		assert.True(t, role.Valid(), "role %s should be valid", role)
	}

	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestRoleDisplayName(t *testing.T) {
	tests := []struct {
		role     Role
		expected string
	}{
		{RoleAdmin, "Administrator"},
		{RoleExecutive, "Executive"},
		{RolePaidMember, "Paid Member"},
		{RoleProductCompany, "Product Company"},
		{RoleUniversity, "University"},
		{RoleFreeMember, "Free Member"},
		{Role("mystery"), "mystery"},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.role.DisplayName())
		})
	}
}

func TestCapabilityTable(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		cap      Capability
		expected bool
	}{
		{"admin downloads framework", RoleAdmin, CapDownloadFramework, true},
		{"admin manages users", RoleAdmin, CapManageUsers, true},
		{"executive uploads whitepaper", RoleExecutive, CapUploadWhitepaper, true},
		{"executive cannot upload product", RoleExecutive, CapUploadProduct, false},
		{"paid member downloads framework", RolePaidMember, CapDownloadFramework, true},
		{"paid member cannot upload whitepaper", RolePaidMember, CapUploadWhitepaper, false},
		{"product company uploads product", RoleProductCompany, CapUploadProduct, true},
		{"university uploads whitepaper", RoleUniversity, CapUploadWhitepaper, true},
		{"free member has no download", RoleFreeMember, CapDownloadFramework, false},
		{"free member has no uploads", RoleFreeMember, CapUploadProduct, false},
		{"unknown role has nothing", Role("superuser"), CapDownloadFramework, false},
		{"empty role has nothing", Role(""), CapManageUsers, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Can(tt.role, tt.cap))
		})
	}
}

func TestNonAdminsCannotManage(t *testing.T) {
	for _, role := range AllRoles() {
		if role == RoleAdmin {
			continue
		}
		assert.False(t, Can(role, CapManageUsers), "role %s must not manage users", role)
		assert.False(t, Can(role, CapManageContent), "role %s must not manage content", role)
	}
}

func TestCapabilities(t *testing.T) {
	assert.Len(t, Capabilities(RoleAdmin), 5)
	assert.Empty(t, Capabilities(RoleFreeMember))
	assert.Nil(t, Capabilities(Role("unknown")))

	caps := Capabilities(RoleProductCompany)
	assert.Contains(t, caps, CapDownloadFramework)
	assert.Contains(t, caps, CapUploadProduct)
	assert.NotContains(t, caps, CapUploadWhitepaper)
}
