package security

import "testing"

func TestStaticAccessManager(t *testing.T) {
	access := NewStaticAccessManager()

	tests := []struct {
		name  string
		token string
		role  RoleName
		want  bool
	}{
		{"ordering role with token", "some-token", RoleOrdering, true},
		{"ordering role without token", "", RoleOrdering, false},
		{"unknown role with token", "some-token", RoleName("billing"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := access.CheckUserPrivileges(tt.token, tt.role); got != tt.want {
				t.Fatalf("CheckUserPrivileges(%q, %q) = %v, want %v", tt.token, tt.role, got, tt.want)
			}
		})
	}
}
