package Config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(NewViper(), "")

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "", cfg.Manifest)
	assert.Equal(t, logrus.InfoLevel, cfg.Level())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gostore.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\nmanifest: decls.yaml\nformat: json\n"), 0o644))

	cfg, err := Load(NewViper(), path)

	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, cfg.Level())
	assert.Equal(t, "decls.yaml", cfg.Manifest)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("GOSTORE_MANIFEST", "from-env.yaml")
	t.Setenv("GOSTORE_LOG_LEVEL", "warn")

	cfg, err := Load(NewViper(), "")

	require.NoError(t, err)
	assert.Equal(t, "from-env.yaml", cfg.Manifest)
	assert.Equal(t, logrus.WarnLevel, cfg.Level())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(NewViper(), filepath.Join(t.TempDir(), "missing.yaml"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{LogLevel: "info", Format: "text"}, false},
		{"json", Config{LogLevel: "error", Format: "json"}, false},
		{"unknown level", Config{LogLevel: "loud", Format: "text"}, true},
		{"unknown format", Config{LogLevel: "info", Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidConfig)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
