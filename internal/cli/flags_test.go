package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandMultiValueFlags(t *testing.T) {
	fs := newRootCmd(&options{}).Flags()

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "single values untouched",
			args: []string{"-i", "error", "-e", "info"},
			want: []string{"-i", "error", "-e", "info"},
		},
		{
			name: "several values after a short flag",
			args: []string{"-i", "error", "warn", "fatal"},
			want: []string{"-i", "error", "--inc", "warn", "--inc", "fatal"},
		},
		{
			name: "several values after long flags",
			args: []string{"--exc", "debug", "trace", "--sec", "5", "10"},
			want: []string{"--exc", "debug", "--exc", "trace", "--sec", "5", "--sec", "10"},
		},
		{
			name: "equals form keeps collecting",
			args: []string{"--inc=error", "warn"},
			want: []string{"--inc=error", "--inc", "warn"},
		},
		{
			name: "attached short value keeps collecting",
			args: []string{"-ierror", "info", "-e", "debug"},
			want: []string{"-ierror", "--inc", "info", "-e", "debug"},
		},
		{
			name: "other flags end the run",
			args: []string{"-i", "error", "-d", "logs", "--verbose"},
			want: []string{"-i", "error", "-d", "logs", "--verbose"},
		},
		{
			name: "double dash stops expansion",
			args: []string{"-i", "error", "--", "warn"},
			want: []string{"-i", "error", "--", "warn"},
		},
		{
			name: "lone dash is a value",
			args: []string{"-i", "a", "-"},
			want: []string{"-i", "a", "--inc", "-"},
		},
		{
			name: "subcommand outside a run",
			args: []string{"clean", "-d", "logs"},
			want: []string{"clean", "-d", "logs"},
		},
		{
			name: "empty",
			args: []string{},
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, expandMultiValueFlags(tt.args, fs))
		})
	}
}

func TestLookupMultiValue(t *testing.T) {
	fs := newRootCmd(&options{}).Flags()

	f, hasValue := lookupMultiValue(fs, "-s")
	if assert.NotNil(t, f) {
		assert.Equal(t, "sec", f.Name)
	}
	assert.False(t, hasValue)

	f, hasValue = lookupMultiValue(fs, "--exc=x")
	if assert.NotNil(t, f) {
		assert.Equal(t, "exc", f.Name)
	}
	assert.True(t, hasValue)

	f, _ = lookupMultiValue(fs, "--strict")
	assert.Nil(t, f)

	f, hasValue = lookupMultiValue(fs, "-ierror")
	if assert.NotNil(t, f) {
		assert.Equal(t, "inc", f.Name)
	}
	assert.True(t, hasValue)

	f, _ = lookupMultiValue(fs, "-dlogs")
	assert.Nil(t, f)
}
