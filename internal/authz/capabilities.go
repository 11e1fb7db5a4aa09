package authz

// Capability identifies a gated client action.
type Capability string

const (
	CapDownloadFramework Capability = "download_framework"
	CapUploadWhitepaper  Capability = "upload_whitepaper"
	CapUploadProduct     Capability = "upload_product"
	CapManageUsers       Capability = "manage_users"
	CapManageContent     Capability = "manage_content"
)

// capabilityTable is the single source of truth for role permissions.
// An absent role (or an unknown role string from the server) has no
// capabilities at all.
var capabilityTable = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapDownloadFramework: true,
		CapUploadWhitepaper:  true,
		CapUploadProduct:     true,
		CapManageUsers:       true,
		CapManageContent:     true,
	},
	RoleExecutive: {
		CapDownloadFramework: true,
		CapUploadWhitepaper:  true,
	},
	RolePaidMember: {
		CapDownloadFramework: true,
	},
	RoleProductCompany: {
		CapDownloadFramework: true,
		CapUploadProduct:     true,
	},
	RoleUniversity: {
		CapDownloadFramework: true,
		CapUploadWhitepaper:  true,
	},
	RoleFreeMember: {},
}

// Can reports whether the role grants the capability.
func Can(role Role, cap Capability) bool {
	caps, ok := capabilityTable[role]
	if !ok {
		return false
	}
	return caps[cap]
}

// Capabilities returns every capability the role grants.
func Capabilities(role Role) []Capability {
	caps, ok := capabilityTable[role]
	if !ok {
		return nil
	}

	var granted []Capability
	for _, c := range []Capability{CapDownloadFramework, CapUploadWhitepaper, CapUploadProduct, CapManageUsers, CapManageContent} {
		if caps[c] {
			granted = append(granted, c)
		}
	}
	return granted
}
