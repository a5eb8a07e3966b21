package wizard

import (
	"fmt"
	"strconv"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/config"
)

// BuildConfig turns the wizard answers into a validated Config. The storage
// backend is selected separately and threaded in by the caller.
func BuildConfig(result *Result, storage string) (*config.Config, error) {
	vmid, err := strconv.Atoi(result.VMID)
	if err != nil {
		return nil, fmt.Errorf("container id: %w", err)
	}
	memory, err := strconv.Atoi(result.Memory)
	if err != nil {
		return nil, fmt.Errorf("memory: %w", err)
	}
	disk, err := strconv.Atoi(result.Disk)
	if err != nil {
		return nil, fmt.Errorf("disk: %w", err)
	}
	cores, err := strconv.Atoi(result.Cores)
	if err != nil {
		return nil, fmt.Errorf("cores: %w", err)
	}

	cfg := config.Default()
	cfg.VMID = vmid
	cfg.Hostname = result.Hostname
	cfg.RootPassword = result.RootPassword
	cfg.MemoryMB = memory
	cfg.DiskGB = disk
	cfg.Cores = cores
	cfg.Storage = storage
	cfg.Network = config.Network{
		PublicIP:   result.PublicIP,
		Address:    result.Address,
		Netmask:    result.Netmask,
		Gateway:    result.Gateway,
		DNSServers: result.DNSServers,
		MACAddress: result.MACAddress,
	}
	cfg.Odoo.DBUser = result.DBUser
	cfg.Odoo.DBPassword = result.DBPassword

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
