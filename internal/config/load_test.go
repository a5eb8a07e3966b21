package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := Default()
	cfg.Storage = "local-lvm"
	cfg.Network.Address = "192.168.1.100"
	cfg.Network.Netmask = "24"
	cfg.Network.Gateway = "192.168.1.1"
	return cfg
}

func TestWriteAndLoadFile_RoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "lxc-odoo.yaml")

	want := validConfig()
	want.VMID = 205
	want.Hostname = "erp"
	require.NoError(t, WriteFile(want, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	got, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadFile_PartialFileKeepsDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "partial.yaml")
	data := `
vmid: 150
network:
  address: 10.0.0.50
  netmask: "24"
  gateway: 10.0.0.1
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 150, cfg.VMID)
	assert.Equal(t, DefaultHostname, cfg.Hostname)
	assert.Equal(t, DefaultMemoryMB, cfg.MemoryMB)
	assert.Equal(t, DefaultOdooVersion, cfg.Odoo.Version)
	assert.Equal(t, "10.0.0.50", cfg.Network.Address)
}

func TestLoadFile_InvalidValuesRejected(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "bad.yaml")
	data := `
vmid: 42
network:
  address: 10.0.0.50
  netmask: "24"
  gateway: 10.0.0.1
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "vmid")
}

func TestLoadFile_MissingFile(t *testing.T) {
	t.Parallel()
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFile_MalformedYAML(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "malformed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("vmid: [unclosed"), 0o600))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
