// Package netutil inspects the host's routing state to suggest container
// network defaults.
package netutil

import (
	"context"
	"fmt"
	"net"
	"strings"
)

// Defaults are the suggested values for the wizard's local-network prompts.
type Defaults struct {
	SuggestedIP string
	Netmask     string
	Gateway     string
}

// Fallback is used when the host's own configuration cannot be read. Every
// probe on the way there is best-effort.
var Fallback = Defaults{
	SuggestedIP: "192.168.1.100",
	Netmask:     "24",
	Gateway:     "192.168.1.1",
}

// outputter runs a command and returns its stdout. Satisfied by
// proxmox.Runner.
type outputter interface {
	Output(ctx context.Context, name string, args ...string) (string, error)
}

// Detect derives defaults from the host's default route and the address of
// the interface carrying it. The suggested container address reuses the
// host's /24 with a .100 final octet.
func Detect(ctx context.Context, run outputter) Defaults {
	route, err := run.Output(ctx, "ip", "route", "show", "default")
	if err != nil {
		return Fallback
	}

	iface, gateway := ParseDefaultRoute(route)
	if iface == "" {
		return Fallback
	}

	addrs, err := run.Output(ctx, "ip", "-o", "-f", "inet", "addr", "show", iface)
	if err != nil {
		return Fallback
	}

	cidr := ParseInterfaceCIDR(addrs)
	if cidr == "" {
		return Fallback
	}

	suggested, mask, ok := suggestFromCIDR(cidr)
	if !ok {
		return Fallback
	}

	d := Defaults{SuggestedIP: suggested, Netmask: mask, Gateway: gateway}
	if d.Gateway == "" {
		d.Gateway = Fallback.Gateway
	}
	return d
}

// ParseDefaultRoute extracts the interface and gateway from the first line
// of `ip route show default` output
// ("default via 192.168.1.1 dev eth0 proto dhcp ...").
func ParseDefaultRoute(out string) (iface, gateway string) {
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	fields := strings.Fields(line)
	for i := 0; i < len(fields)-1; i++ {
		switch fields[i] {
		case "via":
			gateway = fields[i+1]
		case "dev":
			iface = fields[i+1]
		}
	}
	return iface, gateway
}

// ParseInterfaceCIDR extracts the first inet address from one-line
// `ip -o -f inet addr show <dev>` output
// ("2: eth0    inet 192.168.1.23/24 brd 192.168.1.255 ...").
func ParseInterfaceCIDR(out string) string {
	line, _, _ := strings.Cut(strings.TrimSpace(out), "\n")
	fields := strings.Fields(line)
	for i := 0; i < len(fields)-1; i++ {
		if fields[i] == "inet" {
			return fields[i+1]
		}
	}
	return ""
}

// suggestFromCIDR turns the host's own address into a suggestion for the
// container: same network, .100 host octet.
func suggestFromCIDR(cidr string) (suggested, mask string, ok bool) {
	addr, mask, found := strings.Cut(cidr, "/")
	if !found {
		return "", "", false
	}

	ip := net.ParseIP(addr)
	if ip == nil {
		return "", "", false
	}
	v4 := ip.To4()
	if v4 == nil {
		return "", "", false
	}

	return fmt.Sprintf("%d.%d.%d.100", v4[0], v4[1], v4[2]), mask, true
}
