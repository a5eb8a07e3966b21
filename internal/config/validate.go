package config

import (
	"fmt"
	"regexp"
	"strconv"
)

// Input patterns. These gate both the wizard prompts and answers-file
// validation, so a config that passes here maps directly onto valid pct
// arguments.
var (
	// vmidPattern accepts exactly three digits with a nonzero leading digit,
	// i.e. the 100-999 range.
	vmidPattern     = regexp.MustCompile(`^[1-9][0-9]{2}$`)
	hostnamePattern = regexp.MustCompile(`^[a-zA-Z0-9][-a-zA-Z0-9]*$`)
	numberPattern   = regexp.MustCompile(`^[0-9]+$`)
	ipv4Pattern     = regexp.MustCompile(`^[0-9]+\.[0-9]+\.[0-9]+\.[0-9]+$`)
	macPattern      = regexp.MustCompile(`^([0-9A-Fa-f]{2}[:-]){5}[0-9A-Fa-f]{2}$`)
	dbUserPattern   = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
)

// ValidateVMID checks a container id: three digits, 100-999.
func ValidateVMID(s string) error {
	if !vmidPattern.MatchString(s) {
		return fmt.Errorf("container id must be a number between 100 and 999")
	}
	return nil
}

// ValidateHostname checks a container hostname.
func ValidateHostname(s string) error {
	if !hostnamePattern.MatchString(s) {
		return fmt.Errorf("hostname must start with a letter or digit and contain only letters, digits and hyphens")
	}
	return nil
}

// ValidateNumber checks a positive decimal input (memory, disk, cores,
// netmask bits).
func ValidateNumber(s string) error {
	if !numberPattern.MatchString(s) {
		return fmt.Errorf("value must be a number")
	}
	return nil
}

// ValidateIPv4 checks a dotted-quad address.
func ValidateIPv4(s string) error {
	if !ipv4Pattern.MatchString(s) {
		return fmt.Errorf("value must be an IPv4 address")
	}
	return nil
}

// ValidateMAC checks a colon- or hyphen-separated MAC address.
func ValidateMAC(s string) error {
	if !macPattern.MatchString(s) {
		return fmt.Errorf("value must be a valid MAC address")
	}
	return nil
}

// ValidateDBUser checks a PostgreSQL role name.
func ValidateDBUser(s string) error {
	if !dbUserPattern.MatchString(s) {
		return fmt.Errorf("database user must start with a lowercase letter and contain only lowercase letters, digits, underscores and hyphens")
	}
	return nil
}

// ValidateRequired rejects empty input.
func ValidateRequired(s string) error {
	if s == "" {
		return fmt.Errorf("a value is required")
	}
	return nil
}

// Validate checks the full configuration. Storage may legitimately be empty
// (it is selected interactively), so it is not required here.
func (c *Config) Validate() error {
	if err := ValidateVMID(strconv.Itoa(c.VMID)); err != nil {
		return fmt.Errorf("vmid: %w", err)
	}
	if err := ValidateHostname(c.Hostname); err != nil {
		return fmt.Errorf("hostname: %w", err)
	}
	if err := ValidateRequired(c.RootPassword); err != nil {
		return fmt.Errorf("root_password: %w", err)
	}
	if c.MemoryMB <= 0 {
		return fmt.Errorf("memory_mb must be positive")
	}
	if c.DiskGB <= 0 {
		return fmt.Errorf("disk_gb must be positive")
	}
	if c.Cores <= 0 {
		return fmt.Errorf("cores must be positive")
	}

	if err := c.Network.validate(); err != nil {
		return fmt.Errorf("network: %w", err)
	}
	if err := c.Odoo.validate(); err != nil {
		return fmt.Errorf("odoo: %w", err)
	}
	return nil
}

func (n *Network) validate() error {
	if err := ValidateIPv4(n.Address); err != nil {
		return fmt.Errorf("address: %w", err)
	}
	if err := ValidateNumber(n.Netmask); err != nil {
		return fmt.Errorf("netmask: %w", err)
	}
	if err := ValidateIPv4(n.Gateway); err != nil {
		return fmt.Errorf("gateway: %w", err)
	}
	if err := ValidateRequired(n.DNSServers); err != nil {
		return fmt.Errorf("dns_servers: %w", err)
	}
	if n.PublicIP {
		// Public addressing routes a single /32 through the bridge and needs
		// the provider-assigned MAC.
		if n.Netmask != "32" {
			return fmt.Errorf("public addressing requires a /32 netmask")
		}
		if err := ValidateMAC(n.MACAddress); err != nil {
			return fmt.Errorf("mac_address: %w", err)
		}
	}
	return nil
}

func (o *Odoo) validate() error {
	if err := ValidateRequired(o.Version); err != nil {
		return fmt.Errorf("version: %w", err)
	}
	if err := ValidateDBUser(o.DBUser); err != nil {
		return fmt.Errorf("db_user: %w", err)
	}
	if err := ValidateRequired(o.DBPassword); err != nil {
		return fmt.Errorf("db_password: %w", err)
	}
	return nil
}
