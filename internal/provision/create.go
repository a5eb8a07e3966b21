package provision

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/installer"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/platform/proxmox"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/ui"
)

// CreatePhase downloads the OS template if needed, creates the container,
// and for publicly addressed containers replaces the generated network
// config with a routed /32 setup.
type CreatePhase struct{}

// Name implements Phase.
func (p *CreatePhase) Name() string { return "Create container" }

// Run implements Phase.
func (p *CreatePhase) Run(ctx *Context) error {
	cfg := ctx.Config

	if err := p.ensureTemplate(ctx); err != nil {
		return err
	}

	opts := proxmox.CreateOpts{
		VMID:       cfg.VMID,
		Storage:    cfg.Storage,
		Template:   proxmox.DefaultTemplate,
		Hostname:   cfg.Hostname,
		Password:   cfg.RootPassword,
		DiskGB:     cfg.DiskGB,
		MemoryMB:   cfg.MemoryMB,
		Cores:      cfg.Cores,
		IPAddress:  cfg.Network.Address,
		Netmask:    cfg.Network.Netmask,
		Gateway:    cfg.Network.Gateway,
		DNSServers: cfg.Network.DNSServers,
		SSHKeyFile: ctx.SSHKeyFile,
	}
	if cfg.Network.PublicIP {
		opts.MACAddress = cfg.Network.MACAddress
	}

	ui.Infof("Creating container %d (%s)...", cfg.VMID, cfg.Hostname)
	if err := ctx.Client.CreateContainer(ctx, opts); err != nil {
		return err
	}
	ui.Successf("Container %d created", cfg.VMID)

	if cfg.Network.PublicIP {
		if err := p.configurePublicNetwork(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (p *CreatePhase) ensureTemplate(ctx *Context) error {
	has, err := ctx.Client.HasTemplate(ctx, ctx.Config.Storage, proxmox.DefaultTemplate)
	if err != nil {
		return err
	}
	if has {
		return nil
	}

	ui.Infof("Template %s not found, downloading...", proxmox.DefaultTemplate)
	if err := ctx.Client.UpdateTemplateIndex(ctx); err != nil {
		return err
	}
	if err := ctx.Client.DownloadTemplate(ctx, ctx.Config.Storage, proxmox.DefaultTemplate); err != nil {
		return err
	}
	ui.Successf("Template downloaded")
	return nil
}

// configurePublicNetwork pushes a netplan file that binds the public /32
// and routes everything through the on-link gateway, replacing the config
// generated at creation time.
func (p *CreatePhase) configurePublicNetwork(ctx *Context) error {
	cfg := ctx.Config

	netplan := installer.Netplan{
		Address:    cfg.Network.Address,
		Gateway:    cfg.Network.Gateway,
		DNSServers: cfg.Network.DNSServers,
	}
	rendered, err := netplan.Render()
	if err != nil {
		return err
	}

	local := filepath.Join(ctx.WorkDir, "01-netcfg.yaml")
	if err := os.WriteFile(local, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("failed to write netplan config: %w", err)
	}

	vmid := cfg.VMID
	if err := ctx.Client.Push(ctx, vmid, local, "/etc/netplan/01-netcfg.yaml"); err != nil {
		return err
	}
	if _, err := ctx.Client.Exec(ctx, vmid, "chmod", "644", "/etc/netplan/01-netcfg.yaml"); err != nil {
		return err
	}
	// Drop the config pct generated so it cannot shadow ours.
	if _, err := ctx.Client.Exec(ctx, vmid, "sh", "-c", "rm -f /etc/netplan/10-*.yaml"); err != nil {
		return err
	}
	if _, err := ctx.Client.Exec(ctx, vmid, "netplan", "apply"); err != nil {
		ui.Warningf("netplan apply failed, network may need a container restart: %v", err)
	}

	ui.Successf("Public network configured (%s/32 via %s)", cfg.Network.Address, cfg.Network.Gateway)
	return nil
}
