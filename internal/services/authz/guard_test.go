package authz

import "testing"

func TestIsOwner(t *testing.T) {
	tests := []struct {
		name     string
		callerID uint
		ownerID  uint
		want     bool
	}{
		{"owner matches", 1, 1, true},
		{"different user", 2, 1, false},
		{"anonymous caller", 0, 1, false},
		{"both zero never owns", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsOwner(tt.callerID, tt.ownerID); got != tt.want {
				t.Errorf("IsOwner(%d, %d) = %v, want %v", tt.callerID, tt.ownerID, got, tt.want)
			}
		})
	}
}
