package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rileyhilliard/wslgit/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetValue(t *testing.T) {
	tests := []struct {
		name         string
		initialYAML  string
		key          string
		value        string
		wantContains []string
		wantMissing  []string
	}{
		{
			name:         "new file",
			key:          "default_dist",
			value:        "Ubuntu",
			wantContains: []string{"default_dist: Ubuntu"},
		},
		{
			name:         "append key and keep comments",
			initialYAML:  "# my wslgit settings\nmount_root: /mnt/\n",
			key:          "output_converter",
			value:        "mount",
			wantContains: []string{"# my wslgit settings", "mount_root: /mnt/", "output_converter: mount"},
		},
		{
			name:         "replace existing value",
			initialYAML:  "default_dist: Debian # work machine\n",
			key:          "default_dist",
			value:        "Ubuntu",
			wantContains: []string{"default_dist: Ubuntu"},
			wantMissing:  []string{"Debian"},
		},
		{
			name:         "empty file",
			initialYAML:  "",
			key:          "debug",
			value:        "true",
			wantContains: []string{`debug: "true"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "wslgit", "config.yaml")
			if tt.initialYAML != "" || tt.name == "empty file" {
				require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
				require.NoError(t, os.WriteFile(path, []byte(tt.initialYAML), 0644))
			}

			require.NoError(t, SetValue(path, tt.key, tt.value))

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			for _, want := range tt.wantContains {
				assert.Contains(t, string(data), want)
			}
			for _, missing := range tt.wantMissing {
				assert.NotContains(t, string(data), missing)
			}
		})
	}
}

func TestSetValue_RoundTripsThroughLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	require.NoError(t, SetValue(path, "mount_root", "/abc"))
	require.NoError(t, SetValue(path, "default_dist", "Alpine"))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "/abc/", cfg.MountRoot)
	assert.Equal(t, "Alpine", cfg.DefaultDist)
}

func TestSetValue_Errors(t *testing.T) {
	dir := t.TempDir()

	err := SetValue(filepath.Join(dir, "c.yaml"), "hosts", "x")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrConfig))

	list := filepath.Join(dir, "list.yaml")
	require.NoError(t, os.WriteFile(list, []byte("- a\n- b\n"), 0644))
	assert.Error(t, SetValue(list, "debug", "1"))

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("a: [\n"), 0644))
	assert.Error(t, SetValue(bad, "debug", "1"))
}
