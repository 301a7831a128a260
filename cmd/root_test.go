package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := fmt.Sprintf(`
[logs]
level = "error"

[calendar]
horizon_days = 2
first_slot_hour = 9
last_slot_hour = 11
slot_duration_minutes = 60
slot_capacity = 1

[storage]
driver = "csv"
file = %q
`, filepath.Join(dir, "calendar.csv"))
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_GenerateBookShow(t *testing.T) {
	cfg := writeConfig(t)

	out, err := execute(t, "--config", cfg, "generate")
	require.NoError(t, err)
	assert.Contains(t, out, "Generated 6 slots (3 per day)")

	out, err = execute(t, "--config", cfg, "book", "slot", "2", "--vehicle", "KA01AB1234", "--type", "Car")
	require.NoError(t, err)
	assert.Contains(t, out, "Booking confirmed for KA01AB1234 (Slot ID: 2)")

	// Емкость 1: повторное бронирование отклоняется
	_, err = execute(t, "--config", cfg, "book", "slot", "2", "--vehicle", "KA01AB9999")
	assert.Error(t, err)

	out, err = execute(t, "--config", cfg, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "KA01AB1234")

	out, err = execute(t, "--config", cfg, "available", "--limit", "10")
	require.NoError(t, err)
	assert.NotContains(t, out, "\n2\t")
}

func TestCLI_MissingCalendar(t *testing.T) {
	cfg := writeConfig(t)

	_, err := execute(t, "--config", cfg, "show")
	assert.Error(t, err)
}

func TestCLI_InvalidSlotID(t *testing.T) {
	cfg := writeConfig(t)

	_, err := execute(t, "--config", cfg, "book", "slot", "abc", "--vehicle", "V1")
	assert.ErrorContains(t, err, "invalid slot id")
}
