package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 6, cfg.Server.DefaultPageSize)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.False(t, cfg.TestMode)
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	yaml := `
server:
  port: 8081
  default_page_size: 4
notification:
  workers: 5
mail:
  enabled: true
  host: smtp.example.org
  from: clinic@example.org
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, 4, cfg.Server.DefaultPageSize)
	assert.Equal(t, 5, cfg.Notification.Workers)
	assert.True(t, cfg.Mail.Enabled)
	assert.Equal(t, "clinic@example.org", cfg.Mail.From)
}

func TestLoadConfigPlatformEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TEST", "true")
	t.Setenv("DATABASE_URL", "postgres://u:p@db/clinic")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.True(t, cfg.TestMode)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.False(t, cfg.Mail.Enabled)
	assert.Equal(t, "postgres://u:p@db/clinic", cfg.Database.URL)
}

func TestLoadConfigAnyTestValue(t *testing.T) {
	for _, value := range []string{"yes", "1x", "0"} {
		t.Run(value, func(t *testing.T) {
			t.Setenv("TEST", value)

			cfg, err := LoadConfig(t.TempDir())
			require.NoError(t, err)
			assert.True(t, cfg.TestMode)
			assert.Equal(t, "sqlite", cfg.Database.Driver)
		})
	}
}

func TestValidate(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	bad := *cfg
	bad.Database.Driver = "mysql"
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Server.MaxPageSize = 1
	assert.Error(t, bad.Validate())

	bad = *cfg
	bad.Mail.Enabled = true
	bad.Mail.Host = ""
	assert.Error(t, bad.Validate())
}
