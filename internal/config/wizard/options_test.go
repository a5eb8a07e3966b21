package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/platform/proxmox"
)

func TestStorageLabel(t *testing.T) {
	t.Parallel()

	s := proxmox.Storage{
		Name:  "local-lvm",
		Total: 100 << 30,
		Used:  21 << 30,
		Avail: 79 << 30,
	}
	assert.Equal(t, "local-lvm (79.00 GB free of 100.00 GB, 21.00% used)", StorageLabel(s))
}

func TestStorageOptions(t *testing.T) {
	t.Parallel()

	storages := []proxmox.Storage{
		{Name: "local", Total: 10 << 30, Avail: 5 << 30, Used: 5 << 30},
		{Name: "local-lvm", Total: 20 << 30, Avail: 20 << 30},
	}
	opts := StorageOptions(storages)
	require.Len(t, opts, 2)
	assert.Equal(t, "local", opts[0].Value)
	assert.Equal(t, "local-lvm", opts[1].Value)
	assert.Contains(t, opts[0].Key, "local (")
}
