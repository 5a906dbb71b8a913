package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `{
  "env": "test",
  "port": "9090",
  "database": {"host": "db", "user": "checkout", "password": "secret", "database": "checkouts"},
  "embedded": {"unsupported_payment_methods": ["paypal"]},
  "brands": {
    "default": "Acme",
    "entries": [
      {"site": "Acme", "site_url": "https://acme.example.com", "logo_url": "https://acme.example.com/logo.svg"},
      {"site": "Northwind", "site_url": "https://northwind.example.com", "aliases": ["nw"]}
    ]
  },
  "tracking": {"archive": false}
}`

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), []byte(content), 0o600))
	return dir
}

func TestReadConfig(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	dir := writeConfig(t, "test", testConfig)

	cfg, err := readConfig(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "checkout-service", cfg.ServiceName)
	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "disable", cfg.Database.SSLMode)
	assert.Equal(t, []string{"paypal"}, cfg.Embedded.UnsupportedPaymentMethods)
	assert.Equal(t, 256, cfg.Tracking.Buffer)
	assert.True(t, cfg.Tracking.Publish)
	assert.False(t, cfg.Tracking.Archive)
	assert.Equal(t, 10, cfg.Subscriber.Workers)
	require.Len(t, cfg.Brands.Entries, 2)
	assert.Equal(t, []string{"nw"}, cfg.Brands.Entries[1].Aliases)
}

func TestReadConfig_EnvironmentOverrides(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	t.Setenv("CHECKOUT_PORT", "7070")
	t.Setenv("CHECKOUT_DATABASE_HOST", "postgres.internal")
	dir := writeConfig(t, "test", testConfig)

	cfg, err := readConfig(viper.New(), dir)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Port)
	assert.Equal(t, "postgres.internal", cfg.Database.Host)
}

func TestReadConfig_MissingFile(t *testing.T) {
	t.Setenv("ENVIRONMENT", "staging")
	dir := writeConfig(t, "test", testConfig)

	_, err := readConfig(viper.New(), dir)
	assert.Error(t, err)
}

func TestConfig_GetDatabaseURL(t *testing.T) {
	cfg := &Config{Database: Database{
		Host:     "db",
		Port:     5432,
		User:     "checkout",
		Password: "secret",
		Database: "checkouts",
		SSLMode:  "disable",
	}}
	assert.Equal(t, "postgres://checkout:secret@db:5432/checkouts?sslmode=disable", cfg.GetDatabaseURL())

	cfg.Database.URL = "postgres://override"
	assert.Equal(t, "postgres://override", cfg.GetDatabaseURL())
}

func TestConfig_BrandCatalog(t *testing.T) {
	t.Setenv("ENVIRONMENT", "test")
	cfg, err := readConfig(viper.New(), writeConfig(t, "test", testConfig))
	require.NoError(t, err)

	brands := cfg.BrandCatalog()

	assert.Equal(t, "Northwind", brands.Resolve("nw").Site)
	assert.Equal(t, "https://acme.example.com/logo.svg", brands.Resolve("unknown").LogoURL)
}
