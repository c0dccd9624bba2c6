package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-match-engine/internal/scoring"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	ttl, err := cfg.TTL()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)
	assert.Equal(t, "general", cfg.DefaultIndustry)
	assert.Equal(t, 1000, cfg.CacheCapacity)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeTempConfig(t, `{"default_industry":"software","cache_ttl":"30m"}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "software", cfg.DefaultIndustry)
	ttl, err := cfg.TTL()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, ttl)

	// Unset fields keep their defaults.
	assert.Equal(t, 10, cfg.MaxSuggestions)
	assert.Equal(t, 1000, cfg.CacheCapacity)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadBadJSON(t *testing.T) {
	path := writeTempConfig(t, `{not json`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidateRejectsBadTTL(t *testing.T) {
	cfg := Default()
	cfg.CacheTTL = "soon"
	require.Error(t, cfg.Validate())

	cfg.CacheTTL = "-5m"
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsNegativeFields(t *testing.T) {
	cfg := Default()
	cfg.MaxSuggestions = -1
	require.Error(t, cfg.Validate())

	cfg = Default()
	cfg.CacheCapacity = -1
	require.Error(t, cfg.Validate())
}

func TestValidateRejectsMissingDataFiles(t *testing.T) {
	cfg := Default()
	cfg.CatalogPath = "/nonexistent/catalogs.json"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "catalog file not found")

	cfg = Default()
	cfg.LexiconPath = "/nonexistent/phrases.json"
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "lexicon file not found")
}

func TestValidateChecksScoringOverride(t *testing.T) {
	bad := scoring.DefaultConfig()
	bad.Free.Keyword = 0.9

	cfg := Default()
	cfg.Scoring = &bad
	require.Error(t, cfg.Validate())

	good := scoring.DefaultConfig()
	cfg.Scoring = &good
	require.NoError(t, cfg.Validate())
}

func TestScoringConfigFallsBack(t *testing.T) {
	cfg := Default()
	assert.Equal(t, scoring.DefaultConfig(), cfg.ScoringConfig())

	custom := scoring.DefaultConfig()
	custom.FreeFloor = 30
	cfg.Scoring = &custom
	assert.Equal(t, custom, cfg.ScoringConfig())
}
