package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CROWDTRAIN_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "crowdtrain.v1", cfg.Snapshot.Key)
	require.Equal(t, "contrib-1", cfg.Identity.ContributorID)
	require.Equal(t, "client-demo", cfg.Identity.ClientID)
	require.NotEmpty(t, cfg.Database.Path)
	require.NotEmpty(t, cfg.UI.DateFormat)
}

func TestLoadReadsConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	body := "[identity]\ncontributor_name = \"Test Contributor\"\n\n[database]\npath = \"/tmp/ct.db\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("CROWDTRAIN_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Test Contributor", cfg.Identity.ContributorName)
	require.Equal(t, "/tmp/ct.db", cfg.Database.Path)
	// untouched keys keep defaults
	require.Equal(t, "crowdtrain.v1", cfg.Snapshot.Key)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("CROWDTRAIN_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	cfg.Identity.ContributorName = "Renamed"
	require.NoError(t, Save(cfg))

	again, err := Load()
	require.NoError(t, err)
	require.Equal(t, "Renamed", again.Identity.ContributorName)
}
