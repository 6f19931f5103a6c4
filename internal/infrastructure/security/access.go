package security

// RoleName identifies a privilege a bearer token may carry.
type RoleName string

const RoleOrdering RoleName = "ordering"

// AccessManager decides whether a bearer token grants a role. Token
// verification belongs to the company identity platform; this service only
// consumes the verdict.
type AccessManager interface {
	CheckUserPrivileges(token string, role RoleName) bool
}

// StaticAccessManager is the in-process stand-in used until the identity
// integration lands: any non-empty token is granted the ordering role.
type StaticAccessManager struct{}

var _ AccessManager = (*StaticAccessManager)(nil)

func NewStaticAccessManager() *StaticAccessManager {
	return &StaticAccessManager{}
}

func (m *StaticAccessManager) CheckUserPrivileges(token string, role RoleName) bool {
	return token != "" && role == RoleOrdering
}
