// Package wizard collects the provisioning parameters interactively.
//
// Answers are gathered group by group (container, network, application) as
// raw strings validated against the same patterns the answers file uses,
// then built into a config.Config.
package wizard

import (
	"context"
	"fmt"
	"strconv"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/config"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/netutil"
)

// Result holds the raw answers from the interactive wizard.
type Result struct {
	// Container
	VMID         string
	Hostname     string
	RootPassword string
	Memory       string
	Disk         string
	Cores        string

	// Network
	PublicIP   bool
	Address    string
	Netmask    string
	Gateway    string
	DNSServers string
	MACAddress string

	// Application
	DBUser     string
	DBPassword string

	// GenerateSSHKey opts into key-based root access.
	GenerateSSHKey bool
}

// Options configure a wizard run.
type Options struct {
	// Defaults pre-fill the prompts. Nil means config.Default().
	Defaults *config.Config
	// NetDefaults seed the local-network prompts from the host's state.
	NetDefaults netutil.Defaults
}

// Run walks the operator through all prompt groups.
func Run(ctx context.Context, opts Options) (*Result, error) {
	result := newResult(opts)

	if err := runContainerGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("container configuration: %w", err)
	}
	if err := runNetworkGroup(ctx, result, opts.NetDefaults); err != nil {
		return nil, fmt.Errorf("network configuration: %w", err)
	}
	if err := runOdooGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("odoo configuration: %w", err)
	}
	if err := runSSHGroup(ctx, result); err != nil {
		return nil, fmt.Errorf("ssh access: %w", err)
	}

	return result, nil
}

// newResult seeds the answers with defaults so every prompt shows an
// editable suggestion.
func newResult(opts Options) *Result {
	defaults := opts.Defaults
	if defaults == nil {
		defaults = config.Default()
	}

	dns := defaults.Network.DNSServers
	if dns == "" {
		dns = config.DefaultDNSServers
	}

	return &Result{
		VMID:         strconv.Itoa(defaults.VMID),
		Hostname:     defaults.Hostname,
		RootPassword: defaults.RootPassword,
		Memory:       strconv.Itoa(defaults.MemoryMB),
		Disk:         strconv.Itoa(defaults.DiskGB),
		Cores:        strconv.Itoa(defaults.Cores),
		DNSServers:   dns,
		DBUser:       defaults.Odoo.DBUser,
		DBPassword:   defaults.Odoo.DBPassword,
	}
}
