package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/config"
)

func validResult() *Result {
	return &Result{
		VMID:         "105",
		Hostname:     "odoo-prod",
		RootPassword: "s3cret",
		Memory:       "8192",
		Disk:         "40",
		Cores:        "4",
		Address:      "192.168.1.105",
		Netmask:      "24",
		Gateway:      "192.168.1.1",
		DNSServers:   "9.9.9.9,1.1.1.1",
		DBUser:       "odoo18",
		DBPassword:   "admin2025",
	}
}

func TestBuildConfig(t *testing.T) {
	t.Parallel()

	cfg, err := BuildConfig(validResult(), "local-lvm")
	require.NoError(t, err)

	assert.Equal(t, 105, cfg.VMID)
	assert.Equal(t, "odoo-prod", cfg.Hostname)
	assert.Equal(t, "s3cret", cfg.RootPassword)
	assert.Equal(t, 8192, cfg.MemoryMB)
	assert.Equal(t, 40, cfg.DiskGB)
	assert.Equal(t, 4, cfg.Cores)
	assert.Equal(t, "local-lvm", cfg.Storage)
	assert.Equal(t, "192.168.1.105", cfg.Network.Address)
	assert.Equal(t, "24", cfg.Network.Netmask)
	assert.Equal(t, "192.168.1.1", cfg.Network.Gateway)
	assert.False(t, cfg.Network.PublicIP)
	assert.Equal(t, "odoo18", cfg.Odoo.DBUser)
	assert.Equal(t, "admin2025", cfg.Odoo.DBPassword)
	assert.Equal(t, config.DefaultOdooVersion, cfg.Odoo.Version)
}

func TestBuildConfigPublicIP(t *testing.T) {
	t.Parallel()

	result := validResult()
	result.PublicIP = true
	result.Address = "203.0.113.10"
	result.Netmask = "32"
	result.Gateway = "203.0.113.1"
	result.MACAddress = "AA:BB:CC:DD:EE:FF"

	cfg, err := BuildConfig(result, "local")
	require.NoError(t, err)
	assert.True(t, cfg.Network.PublicIP)
	assert.Equal(t, "32", cfg.Network.Netmask)
	assert.Equal(t, "AA:BB:CC:DD:EE:FF", cfg.Network.MACAddress)
}

func TestBuildConfigRejectsBadNumbers(t *testing.T) {
	t.Parallel()

	result := validResult()
	result.Memory = "lots"
	_, err := BuildConfig(result, "local")
	assert.Error(t, err)
}

func TestBuildConfigRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	result := validResult()
	result.VMID = "99" // below the accepted range
	_, err := BuildConfig(result, "local")
	assert.Error(t, err)
}

func TestNewResultSeedsDefaults(t *testing.T) {
	t.Parallel()

	result := newResult(Options{})
	assert.Equal(t, "100", result.VMID)
	assert.Equal(t, config.DefaultHostname, result.Hostname)
	assert.Equal(t, "4096", result.Memory)
	assert.Equal(t, config.DefaultDNSServers, result.DNSServers)
	assert.Equal(t, config.DefaultDBUser, result.DBUser)
}
