// Package config defines the provisioning parameters collected from the
// operator, their defaults, and their validation rules.
package config

// Config holds everything needed to create the container and install Odoo
// inside it. It is built incrementally by the interactive wizard or loaded
// from an answers file written by `init`.
type Config struct {
	// Container
	VMID         int    `yaml:"vmid"`
	Hostname     string `yaml:"hostname"`
	RootPassword string `yaml:"root_password"`
	MemoryMB     int    `yaml:"memory_mb"`
	DiskGB       int    `yaml:"disk_gb"`
	Cores        int    `yaml:"cores"`

	// Storage is the selected backend. Empty until chosen interactively or
	// provided in the answers file.
	Storage string `yaml:"storage,omitempty"`

	Network Network `yaml:"network"`
	Odoo    Odoo    `yaml:"odoo"`

	// SSHPublicKey is an optional authorized_keys line injected into the
	// container at creation time.
	SSHPublicKey string `yaml:"ssh_public_key,omitempty"`
}

// Network holds the container's net0 parameters.
type Network struct {
	// PublicIP switches to /32 public addressing with an on-link default
	// route and a mandatory MAC address.
	PublicIP   bool   `yaml:"public_ip"`
	Address    string `yaml:"address"`
	Netmask    string `yaml:"netmask"`
	Gateway    string `yaml:"gateway"`
	DNSServers string `yaml:"dns_servers"`
	MACAddress string `yaml:"mac_address,omitempty"`
}

// Odoo holds the application-level parameters baked into the install script.
type Odoo struct {
	Version    string `yaml:"version"`
	DBUser     string `yaml:"db_user"`
	DBPassword string `yaml:"db_password"`
}

// Defaults offered by the wizard.
const (
	DefaultVMID         = 100
	DefaultHostname     = "odoo-server"
	DefaultRootPassword = "Cambiame123"
	DefaultMemoryMB     = 4096
	DefaultDiskGB       = 20
	DefaultCores        = 2
	DefaultDNSServers   = "9.9.9.9,1.1.1.1"
	DefaultOdooVersion  = "18.0"
	DefaultDBUser       = "odoo18"
	DefaultDBPassword   = "admin2025"
)

// Default returns a Config pre-filled with the wizard defaults.
func Default() *Config {
	return &Config{
		VMID:         DefaultVMID,
		Hostname:     DefaultHostname,
		RootPassword: DefaultRootPassword,
		MemoryMB:     DefaultMemoryMB,
		DiskGB:       DefaultDiskGB,
		Cores:        DefaultCores,
		Network: Network{
			DNSServers: DefaultDNSServers,
		},
		Odoo: Odoo{
			Version:    DefaultOdooVersion,
			DBUser:     DefaultDBUser,
			DBPassword: DefaultDBPassword,
		},
	}
}
