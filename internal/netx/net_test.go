package netx

import "testing"

func TestHostOf(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"10.0.0.1:5555", "10.0.0.1"},
		{"[::1]:50051", "::1"},
		{"localhost:80", "localhost"},
		{"bufconn", "bufconn"},
		{"[::1]", "::1"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := HostOf(tt.in); got != tt.want {
			t.Errorf("HostOf(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
