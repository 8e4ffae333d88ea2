package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFile_EmbeddedWorld(t *testing.T) {
	v := &WorldValidator{}
	err := v.validateFile(filepath.Join("..", "..", "pkg", "scenario", "worlds", "dream_forest.yaml"))

	require.NoError(t, err)
	assert.Empty(t, v.warnings)
}

func TestValidateFile_Names(t *testing.T) {
	tests := []struct {
		filename    string
		expectError string
	}{
		{filename: "world.json", expectError: "must have .yaml extension"},
		{filename: "My-World.yaml", expectError: "must be lowercase snake_case"},
		{filename: "missing_world.yaml", expectError: "failed to read file"},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			v := &WorldValidator{}
			err := v.validateFile(filepath.Join(t.TempDir(), tt.filename))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectError)
		})
	}
}

func TestValidateFile_ExperimentalPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "x.cellar.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Cellar
start: stairs
locations:
  stairs:
    name: Stairs
`), 0o600))

	v := &WorldValidator{}
	assert.NoError(t, v.validateFile(path))
}

func TestValidateData(t *testing.T) {
	tests := []struct {
		name             string
		content          string
		expectErrors     []string
		expectWarnings   []string
		expectNoWarnings bool
	}{
		{
			name: "valid two-way world",
			content: `
name: Cellar
start: stairs
locations:
  stairs:
    name: Stairs
    exits:
      south: vault
  vault:
    name: Vault
    sound: drip.wav
    exits:
      north: stairs
`,
			expectNoWarnings: true,
		},
		{
			name: "unknown field",
			content: `
name: Cellar
start: stairs
locations:
  stairs:
    name: Stairs
    smell: damp
`,
			expectErrors: []string{"strict YAML"},
		},
		{
			name: "bad ids and exits",
			content: `
name: Cellar
start: Stairs
locations:
  Stairs:
    name: Stairs
    exits:
      up: attic
      east: attic
`,
			expectErrors: []string{
				"start 'Stairs' should be lowercase snake_case",
				"location ID 'Stairs' should be lowercase snake_case",
				"exit 'up'",
				"unknown location 'attic'",
			},
		},
		{
			name: "missing start and duplicate names",
			content: `
name: Cellar
start: attic
locations:
  stairs:
    name: Dark room
  vault:
    name: DARK ROOM
`,
			expectErrors: []string{
				"start 'attic' is not a location",
				"share the name",
			},
		},
		{
			name: "sound must be a file name",
			content: `
name: Cellar
start: stairs
locations:
  stairs:
    name: Stairs
    sound: ../secret.wav
`,
			expectErrors: []string{"must be a file name"},
		},
		{
			name: "no locations",
			content: `
name: Empty
start: nowhere
`,
			expectErrors: []string{"world has no locations"},
		},
		{
			name: "one-way and unreachable",
			content: `
name: Cellar
start: stairs
locations:
  stairs:
    name: Stairs
    exits:
      south: vault
  vault:
    name: Vault
  attic:
    name: Attic
`,
			expectWarnings: []string{
				"exit south from stairs to vault has no way back north",
				"location attic cannot be reached from stairs",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &WorldValidator{}
			err := v.validateData("test.yaml", []byte(tt.content))

			if len(tt.expectErrors) > 0 {
				require.Error(t, err)
				for _, want := range tt.expectErrors {
					assert.Contains(t, err.Error(), want)
				}
				return
			}
			require.NoError(t, err)

			joined := strings.Join(v.warnings, "\n")
			for _, want := range tt.expectWarnings {
				assert.Contains(t, joined, want)
			}
			if tt.expectNoWarnings {
				assert.Empty(t, v.warnings)
			}
		})
	}
}

func TestIsValidID(t *testing.T) {
	for _, id := range []string{"a", "dark_forest", "room2"} {
		assert.True(t, isValidID(id), id)
	}
	for _, id := range []string{"", "Dark", "dark-forest", "_a", "a_", "2room"} {
		assert.False(t, isValidID(id), id)
	}
}
