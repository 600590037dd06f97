package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	serverFlags := []string{"-a", "-s", "-b"}

	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate values",
			args:    []string{"-a", ":50051", "-x", "1", "-s", "secret"},
			allowed: serverFlags,
			want:    []string{"-a", ":50051", "-s", "secret"},
		},
		{
			name:    "equals form",
			args:    []string{"-b=postgres", "--config=alt.json"},
			allowed: serverFlags,
			want:    []string{"-b=postgres"},
		},
		{
			name:    "unknown flags and positionals ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: serverFlags,
			want:    []string{},
		},
		{
			name:    "trailing flag without value",
			args:    []string{"-s"},
			allowed: serverFlags,
			want:    []string{"-s"},
		},
		{
			name:    "next dash token is not a value",
			args:    []string{"-s", "-a", ":1"},
			allowed: serverFlags,
			want:    []string{"-s", "-a", ":1"},
		},
		{
			name:    "repeated flag keeps order",
			args:    []string{"-b", "redis", "-b", "memory"},
			allowed: serverFlags,
			want:    []string{"-b", "redis", "-b", "memory"},
		},
		{
			name:    "empty",
			args:    nil,
			allowed: serverFlags,
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"short", []string{"-c", "/etc/sk.json"}, "/etc/sk.json"},
		{"long", []string{"-config", "/etc/sk.json"}, "/etc/sk.json"},
		{"double dash equals", []string{"--config=/etc/sk.json"}, "/etc/sk.json"},
		{"mixed with server flags", []string{"-a", ":1", "-c", "sk.json", "-s", "x"}, "sk.json"},
		{"absent", []string{"-a", ":1"}, ""},
		{"last wins", []string{"-c", "1.json", "-config", "2.json"}, "2.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, JsonConfigFlags(tt.args))
		})
	}
}
