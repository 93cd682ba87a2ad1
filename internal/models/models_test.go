package models

import "testing"

func TestUserPasswordRoundTrip(t *testing.T) {
	var user User
	if err := user.SetPassword("s3cret-pass"); err != nil {
		t.Fatalf("SetPassword() error = %v", err)
	}

	if user.PasswordHash == "s3cret-pass" {
		t.Error("SetPassword() stored the plaintext")
	}

	if !user.CheckPassword("s3cret-pass") {
		t.Error("CheckPassword() rejected the original password")
	}

	if user.CheckPassword("wrong-pass") {
		t.Error("CheckPassword() accepted a wrong password")
	}
}

func TestUserRoleValid(t *testing.T) {
	tests := []struct {
		role UserRole
		want bool
	}{
		{RoleHost, true},
		{RoleListener, true},
		{UserRole("Admin"), false},
		{UserRole(""), false},
	}

	for _, tt := range tests {
		if got := tt.role.Valid(); got != tt.want {
			t.Errorf("Valid(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestValidRating(t *testing.T) {
	tests := []struct {
		rating int
		want   bool
	}{
		{0, true},
		{5, true},
		{3, true},
		{-1, false},
		{6, false},
	}

	for _, tt := range tests {
		if got := ValidRating(tt.rating); got != tt.want {
			t.Errorf("ValidRating(%d) = %v, want %v", tt.rating, got, tt.want)
		}
	}
}
