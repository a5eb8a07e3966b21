package proxmox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func localOpts() CreateOpts {
	return CreateOpts{
		VMID:       100,
		Storage:    "local-lvm",
		Template:   DefaultTemplate,
		Hostname:   "odoo-server",
		Password:   "secret",
		DiskGB:     20,
		MemoryMB:   4096,
		Cores:      2,
		IPAddress:  "192.168.1.100",
		Netmask:    "24",
		Gateway:    "192.168.1.1",
		DNSServers: "9.9.9.9,1.1.1.1",
	}
}

func TestCreateOpts_Args_Local(t *testing.T) {
	t.Parallel()
	args := localOpts().Args()
	line := strings.Join(args, " ")

	assert.Equal(t, "create", args[0])
	assert.Equal(t, "100", args[1])
	assert.Equal(t, "local-lvm:vztmpl/"+DefaultTemplate, args[2])
	assert.Contains(t, line, "-hostname odoo-server")
	assert.Contains(t, line, "-rootfs local-lvm:20")
	assert.Contains(t, line, "-memory 4096")
	assert.Contains(t, line, "-cores 2")
	assert.Contains(t, line, "-net0 name=eth0,bridge=vmbr0,ip=192.168.1.100/24,gw=192.168.1.1")
	assert.Contains(t, line, "-onboot 1")
	assert.Contains(t, line, "-start 1")
	assert.Contains(t, line, "-unprivileged 1")
	assert.Contains(t, line, "-features nesting=1")
	assert.Contains(t, line, "-nameserver 9.9.9.9,1.1.1.1")
	assert.NotContains(t, line, "hwaddr")
	assert.NotContains(t, line, "ssh-public-keys")
}

func TestCreateOpts_Args_PublicIP(t *testing.T) {
	t.Parallel()
	opts := localOpts()
	opts.IPAddress = "203.0.113.10"
	opts.Netmask = "32"
	opts.MACAddress = "AA:BB:CC:DD:EE:FF"

	line := strings.Join(opts.Args(), " ")
	assert.Contains(t, line, "ip=203.0.113.10/32")
	assert.Contains(t, line, "hwaddr=AA:BB:CC:DD:EE:FF")
}

func TestCreateOpts_Args_SSHKey(t *testing.T) {
	t.Parallel()
	opts := localOpts()
	opts.SSHKeyFile = "/tmp/authorized_keys"

	args := opts.Args()
	assert.Equal(t, "/tmp/authorized_keys", args[len(args)-1])
	assert.Equal(t, "-ssh-public-keys", args[len(args)-2])
}
