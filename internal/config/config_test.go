package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "owlexplain.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
ontology_dir = "onts"
max_explanations_per_inference = 3
concurrency = 8
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "onts", cfg.OntologyDir)
	assert.Equal(t, 3, cfg.MaxExplanationsPerInference)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, Default().OutputDir, cfg.OutputDir)
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "owlexplain.toml")
	require.NoError(t, os.WriteFile(path, []byte("not = [valid"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestRegisterFlagsOverridesConfig(t *testing.T) {
	cfg := Default()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(flags, DefaultFlags(), &cfg)

	require.NoError(t, flags.Parse([]string{"--concurrency=16", "--ontology-timeout=5m"}))
	assert.Equal(t, 16, cfg.Concurrency)
	assert.Equal(t, 5*time.Minute, cfg.OntologyTimeout)
}
