package cache

import "testing"

func TestSafeKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"Star Wars", "Star_Wars"},
		{"a:b", "a_b"},
		{"plain", "plain"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := safeKey(tt.in); got != tt.want {
			t.Errorf("safeKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
