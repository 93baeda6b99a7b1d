package cmd

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/hupe1980/bitreg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	color.NoColor = true

	var out bytes.Buffer
	c := NewRootCmd()
	c.SetOut(&out)
	c.SetErr(&out)
	c.SetArgs(args)
	err := c.Execute()
	return out.String(), err
}

func TestSetCmd(t *testing.T) {
	out, err := run(t, "set", "1", "3", "5", "2", "65")
	require.NoError(t, err)

	assert.Contains(t, out, "width:    8\n")
	assert.Contains(t, out, "value:    46\n")
	assert.Contains(t, out, "binary:   00101110\n")
	assert.Contains(t, out, "on:       [1 2 3 5] (4)\n")
	assert.Contains(t, out, "activity: [1 2 3 5]\n")
}

func TestClearCmd(t *testing.T) {
	out, err := run(t, "--width", "16", "clear", "0", "15", "99")
	require.NoError(t, err)

	assert.Contains(t, out, "width:    16\n")
	assert.Contains(t, out, "value:    32766\n")
	assert.Contains(t, out, "binary:   0111111111111110\n")
	assert.Contains(t, out, "activity: []\n")
}

func TestQueryCmd(t *testing.T) {
	out, err := run(t, "query", "--on", "3,5", "-w", "32", "3", "4", "5", "40")
	require.NoError(t, err)

	assert.Contains(t, out, "hits:     [3 5]\n")
	assert.Contains(t, out, "value:    40\n")
	assert.Contains(t, out, "activity: [3 5]\n")
}

func TestMaxCmd(t *testing.T) {
	tests := []struct {
		width string
		value string
	}{
		{"8", "255"},
		{"16", "65535"},
		{"32", "4294967295"},
		{"64", "18446744073709551615"},
		{"128", "340282366920938463463374607431768211455"},
	}

	for _, tt := range tests {
		t.Run(tt.width, func(t *testing.T) {
			out, err := run(t, "max", "--width", tt.width)
			require.NoError(t, err)
			assert.Contains(t, out, "value:    "+tt.value+"\n")
		})
	}
}

func TestInvalidInput(t *testing.T) {
	t.Run("width", func(t *testing.T) {
		_, err := run(t, "set", "--width", "24", "1")
		assert.ErrorIs(t, err, bitreg.ErrUnsupportedWidth)
	})

	t.Run("negative index", func(t *testing.T) {
		_, err := run(t, "set", "--", "-1")
		assert.Error(t, err)
	})

	t.Run("missing args", func(t *testing.T) {
		_, err := run(t, "set")
		assert.Error(t, err)
	})
}
