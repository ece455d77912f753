package model

import (
	"testing"
)

func TestUser_IsAdmin(t *testing.T) {
	tests := []struct {
		name     string
		roles    []string
		expected bool
	}{
		{"no roles", []string{}, false},
		{"plain user", []string{"ROLE_USER"}, false},
		{"admin", []string{"ROLE_ADMIN"}, true},
		{"super admin", []string{"ROLE_SUPER_ADMIN"}, true},
		{"mixed", []string{"ROLE_USER", "ROLE_ADMIN"}, true},
	}

	for _, test := range tests {
		user := &User{Username: "tester", Roles: test.roles}
		if result := user.IsAdmin(); result != test.expected {
			t.Errorf("IsAdmin() for %s = %v, expected %v", test.name, result, test.expected)
		}
	}
}

func TestUser_IsAdmin_NilReceiver(t *testing.T) {
	var user *User
	if user.IsAdmin() {
		t.Error("IsAdmin() on nil user should be false")
	}
}

func TestHasAnyRole(t *testing.T) {
	if HasAnyRole([]string{"ROLE_USER"}, AdminRoles) {
		t.Error("ROLE_USER should not intersect admin roles")
	}
	if !HasAnyRole([]string{"ROLE_SUPER_ADMIN"}, AdminRoles) {
		t.Error("ROLE_SUPER_ADMIN should intersect admin roles")
	}
	if HasAnyRole(nil, AdminRoles) {
		t.Error("empty role set should not intersect admin roles")
	}
}
