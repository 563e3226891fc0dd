package authz

import "testing"

func TestCanMutate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		actorID   string
		actorRole string
		ownerID   string
		want      bool
	}{
		{"owner may mutate", "u1", "user", "u1", true},
		{"stranger may not", "u1", "user", "u2", false},
		{"admin may mutate anything", "u1", "admin", "u2", true},
		{"admin may mutate own", "u1", "admin", "u1", true},
		{"id comparison is canonical", "  U1 ", "user", "u1", true},
		{"empty actor id never matches empty owner", "", "user", "", false},
		{"empty actor id with admin role still passes", "", "admin", "u2", true},
		{"role is exact, not prefixed", "u1", "administrator", "u2", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanMutate(tt.actorID, tt.actorRole, tt.ownerID); got != tt.want {
				t.Fatalf("CanMutate(%q, %q, %q) = %v, want %v",
					tt.actorID, tt.actorRole, tt.ownerID, got, tt.want)
			}
		})
	}
}
