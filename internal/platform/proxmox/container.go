package proxmox

import (
	"fmt"
	"strconv"
)

// CreateOpts holds all parameters for creating an LXC container.
type CreateOpts struct {
	VMID     int
	Storage  string
	Template string
	Hostname string
	Password string

	DiskGB   int
	MemoryMB int
	Cores    int

	// Network (net0, bridged on vmbr0)
	IPAddress  string
	Netmask    string
	Gateway    string
	MACAddress string // set only for public addressing
	DNSServers string

	// SSHKeyFile optionally points at an authorized_keys file injected at
	// creation time.
	SSHKeyFile string
}

// Args assembles the pct create argument list. Containers are created
// unprivileged with nesting enabled, set to start on creation and on boot.
func (o CreateOpts) Args() []string {
	args := []string{
		"create", strconv.Itoa(o.VMID),
		fmt.Sprintf("%s:vztmpl/%s", o.Storage, o.Template),
		"-hostname", o.Hostname,
		"-password", o.Password,
		"-ostype", "ubuntu",
		"-rootfs", fmt.Sprintf("%s:%d", o.Storage, o.DiskGB),
		"-memory", strconv.Itoa(o.MemoryMB),
		"-cores", strconv.Itoa(o.Cores),
		"-net0", o.net0(),
		"-onboot", "1",
		"-start", "1",
		"-unprivileged", "1",
		"-features", "nesting=1",
		"-nameserver", o.DNSServers,
	}
	if o.SSHKeyFile != "" {
		args = append(args, "-ssh-public-keys", o.SSHKeyFile)
	}
	return args
}

func (o CreateOpts) net0() string {
	net := fmt.Sprintf("name=eth0,bridge=vmbr0,ip=%s/%s,gw=%s", o.IPAddress, o.Netmask, o.Gateway)
	if o.MACAddress != "" {
		net += ",hwaddr=" + o.MACAddress
	}
	return net
}
