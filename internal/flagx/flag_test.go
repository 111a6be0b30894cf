package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name         string
		args         []string
		allowedFlags []string
		want         []string
	}{
		{
			name:         "short flag with separate value",
			args:         []string{"-c", "aroma.yaml", "-s", "memory"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-c", "aroma.yaml"},
		},
		{
			name:         "flag with equals",
			args:         []string{"-config=aroma.json", "-s", "memory"},
			allowedFlags: []string{"-c", "-config"},
			want:         []string{"-config=aroma.json"},
		},
		{
			name:         "order preserved",
			args:         []string{"-m", "menu.yaml", "-s", "redis", "-x", "1"},
			allowedFlags: []string{"-s", "-m"},
			want:         []string{"-m", "menu.yaml", "-s", "redis"},
		},
		{
			name:         "unknown flags ignored",
			args:         []string{"-x", "1", "--y=2", "positional"},
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
		{
			name:         "flag without value at end",
			args:         []string{"-c"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "flag followed by another flag",
			args:         []string{"-c", "-s"},
			allowedFlags: []string{"-c"},
			want:         []string{"-c"},
		},
		{
			name:         "empty input",
			args:         nil,
			allowedFlags: []string{"-c"},
			want:         []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FilterArgs(tt.args, tt.allowedFlags)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "short", args: []string{"-c", "a.yaml"}, want: "a.yaml"},
		{name: "long", args: []string{"-config", "b.json", "-s", "memory"}, want: "b.json"},
		{name: "equals", args: []string{"-config=c.json"}, want: "c.json"},
		{name: "absent", args: []string{"-s", "memory"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ConfigFileFlag(tt.args))
		})
	}
}
