package wizard

import (
	"context"

	"github.com/charmbracelet/huh"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/config"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/netutil"
)

// runContainerGroup prompts for the container's identity and resources.
func runContainerGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Container ID").
				Description("Numeric id between 100 and 999").
				Value(&result.VMID).
				Validate(config.ValidateVMID),
			huh.NewInput().
				Title("Hostname").
				Description("Letters, digits and hyphens").
				Value(&result.Hostname).
				Validate(config.ValidateHostname),
			huh.NewInput().
				Title("Root password").
				EchoMode(huh.EchoModePassword).
				Value(&result.RootPassword).
				Validate(config.ValidateRequired),
			huh.NewInput().
				Title("RAM (MB)").
				Description("2048 MB minimum recommended").
				Value(&result.Memory).
				Validate(config.ValidateNumber),
			huh.NewInput().
				Title("Disk (GB)").
				Description("10 GB minimum recommended").
				Value(&result.Disk).
				Validate(config.ValidateNumber),
			huh.NewInput().
				Title("CPU cores").
				Value(&result.Cores).
				Validate(config.ValidateNumber),
		).Title("Container"),
	).RunWithContext(ctx)
}

// runNetworkGroup prompts for addressing, branching between local bridged
// addressing and /32 public addressing.
func runNetworkGroup(ctx context.Context, result *Result, defaults netutil.Defaults) error {
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Use a public IP address?").
				Description("Public addresses are routed as a single /32 and need the provider-assigned MAC").
				Value(&result.PublicIP),
		).Title("Network"),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	if result.PublicIP {
		return runPublicNetworkGroup(ctx, result, defaults)
	}
	return runLocalNetworkGroup(ctx, result, defaults)
}

func runPublicNetworkGroup(ctx context.Context, result *Result, defaults netutil.Defaults) error {
	result.Netmask = "32"
	if result.Gateway == "" {
		result.Gateway = defaults.Gateway
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Public IP address").
				Value(&result.Address).
				Validate(config.ValidateIPv4),
			huh.NewInput().
				Title("Gateway").
				Value(&result.Gateway).
				Validate(config.ValidateIPv4),
			huh.NewInput().
				Title("DNS servers").
				Description("Comma-separated").
				Value(&result.DNSServers).
				Validate(config.ValidateRequired),
			huh.NewInput().
				Title("MAC address").
				Description("Required for public addressing, e.g. AA:BB:CC:DD:EE:FF").
				Value(&result.MACAddress).
				Validate(config.ValidateMAC),
		).Title("Public addressing"),
	).RunWithContext(ctx)
}

func runLocalNetworkGroup(ctx context.Context, result *Result, defaults netutil.Defaults) error {
	if result.Address == "" {
		result.Address = defaults.SuggestedIP
	}
	if result.Netmask == "" {
		result.Netmask = defaults.Netmask
	}
	if result.Gateway == "" {
		result.Gateway = defaults.Gateway
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("IP address").
				Value(&result.Address).
				Validate(config.ValidateIPv4),
			huh.NewInput().
				Title("Netmask (CIDR bits)").
				Value(&result.Netmask).
				Validate(config.ValidateNumber),
			huh.NewInput().
				Title("Gateway").
				Value(&result.Gateway).
				Validate(config.ValidateIPv4),
			huh.NewInput().
				Title("DNS servers").
				Description("Comma-separated").
				Value(&result.DNSServers).
				Validate(config.ValidateRequired),
		).Title("Local addressing"),
	).RunWithContext(ctx)
}

// runOdooGroup prompts for the database credentials baked into the install
// script. The Odoo version itself is pinned by the deployment.
func runOdooGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Odoo database user").
				Description("Also used as the in-container system user").
				Value(&result.DBUser).
				Validate(config.ValidateDBUser),
			huh.NewInput().
				Title("Odoo database password").
				EchoMode(huh.EchoModePassword).
				Value(&result.DBPassword).
				Validate(config.ValidateRequired),
		).Title("Odoo"),
	).RunWithContext(ctx)
}

// runSSHGroup asks whether to generate a key pair for root access.
func runSSHGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Generate an SSH key pair for container root access?").
				Description("The public key is injected at creation; the private key is kept on the host").
				Value(&result.GenerateSSHKey),
		).Title("SSH access"),
	).RunWithContext(ctx)
}
