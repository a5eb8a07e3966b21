package installer

import (
	"bytes"
	"fmt"
	"text/template"
)

// Netplan holds the values for the public-IP network configuration pushed
// into the container. A public address is routed as a single /32 with an
// on-link route to the gateway, which is how hosting providers hand out
// additional addresses on a bridge.
type Netplan struct {
	Address    string
	Gateway    string
	DNSServers string
}

// Render produces the netplan YAML.
func (n Netplan) Render() (string, error) {
	var buf bytes.Buffer
	if err := netplanTemplate.Execute(&buf, n); err != nil {
		return "", fmt.Errorf("failed to render netplan config: %w", err)
	}
	return buf.String(), nil
}

var netplanTemplate = template.Must(template.New("netplan").Parse(netplanConfig))

const netplanConfig = `# Static public IP configuration, generated by lxc-odoo-deploy
network:
  ethernets:
    eth0:
      addresses: ['{{.Address}}/32']
      gateway4: {{.Gateway}}
      nameservers:
        addresses: [{{.DNSServers}}]
      routes:
      - scope: link
        to: {{.Gateway}}/32
        via: 0.0.0.0
  version: 2
`
