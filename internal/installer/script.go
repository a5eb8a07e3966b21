// Package installer renders the artifacts executed inside the container:
// the Odoo install script (which in turn emits the Odoo configuration and
// systemd unit) and the netplan file used for public addressing.
package installer

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
)

// Script holds the parameters baked into the generated install script.
type Script struct {
	// Version is the Odoo branch to clone and install.
	Version string
	// DBUser doubles as the PostgreSQL role and the Odoo system user.
	DBUser string
	// DBPassword is the PostgreSQL role password.
	DBPassword string
	// Modules are the custom addon names already staged under
	// /tmp/custom_modules inside the container.
	Modules []string
}

// HasModules reports whether a custom-modules block should be emitted.
func (s Script) HasModules() bool {
	return len(s.Modules) > 0
}

// AddonsPath is the addons_path value written into the Odoo configuration.
// The custom_addons entry appears only when custom modules are installed.
func (s Script) AddonsPath() string {
	if s.HasModules() {
		return "/opt/odoo18/addons,/opt/odoo18/custom_addons"
	}
	return "/opt/odoo18/addons"
}

// ModuleList renders the module names as a space-separated quoted list for
// the script's for-loop.
func (s Script) ModuleList() string {
	quoted := make([]string, len(s.Modules))
	for i, m := range s.Modules {
		quoted[i] = fmt.Sprintf("%q", m)
	}
	return strings.Join(quoted, " ")
}

// Render produces the install script.
func (s Script) Render() (string, error) {
	var buf bytes.Buffer
	if err := scriptTemplate.Execute(&buf, s); err != nil {
		return "", fmt.Errorf("failed to render install script: %w", err)
	}
	return buf.String(), nil
}

var scriptTemplate = template.Must(template.New("install").Parse(installScript))

const installScript = `#!/bin/bash
# Odoo {{.Version}} install script, generated by lxc-odoo-deploy
info() { echo "[INFO] $1"; }
success() { echo "[SUCCESS] $1"; }
warning() { echo "[WARNING] $1"; }
error() { echo "[ERROR] $1"; }
progress() { echo "[PROGRESS] $1"; }

info "Updating system..."
apt-get update && DEBIAN_FRONTEND=noninteractive apt-get upgrade -y
success "System updated"

info "Installing dependencies..."
progress "Installing system packages (1/5)"
apt-get install -y openssh-server fail2ban python3-pip python3-dev libxml2-dev libxslt1-dev zlib1g-dev libsasl2-dev
progress "Installing development libraries (2/5)"
apt-get install -y libldap2-dev build-essential libssl-dev libffi-dev default-libmysqlclient-dev libjpeg-dev libpq-dev
progress "Installing image processing libraries (3/5)"
apt-get install -y libjpeg8-dev liblcms2-dev libblas-dev libatlas-base-dev
progress "Installing Node.js and npm (4/5)"
apt-get install -y npm git postgresql python3-venv
progress "Configuring fail2ban and Node.js (5/5)"
systemctl enable fail2ban
ln -sf /usr/bin/nodejs /usr/bin/node
npm install -g less less-plugin-clean-css
apt-get install -y node-less
success "Dependencies installed"

info "Configuring PostgreSQL..."
su - postgres -c "createuser --createdb --username postgres --no-createrole --superuser --pwprompt {{.DBUser}} << EOF
{{.DBPassword}}
{{.DBPassword}}
EOF"
success "PostgreSQL configured"

info "Creating Odoo system user..."
adduser --system --home=/opt/odoo18 --group {{.DBUser}}
success "System user created"

info "Cloning Odoo repository..."
progress "Downloading Odoo source (this can take several minutes)..."
su - {{.DBUser}} -s /bin/bash -c "git clone https://www.github.com/odoo/odoo --depth 1 --branch {{.Version}} --single-branch ."
success "Odoo repository cloned"

info "Installing Python dependencies..."
python3 -m venv /opt/odoo18/venv
cd /opt/odoo18/
progress "Installing Python requirements into the virtualenv (this can take several minutes)..."
/opt/odoo18/venv/bin/pip install wheel
/opt/odoo18/venv/bin/pip install -r requirements.txt
success "Python dependencies installed"

info "Installing wkhtmltopdf..."
apt-get install -y xfonts-75dpi xfonts-base
cd /tmp
progress "Downloading wkhtmltopdf..."
wget -q https://github.com/wkhtmltopdf/packaging/releases/download/0.12.6.1-2/wkhtmltox_0.12.6.1-2.jammy_amd64.deb
progress "Installing wkhtmltopdf package..."
dpkg -i wkhtmltox_0.12.6.1-2.jammy_amd64.deb || apt-get install -f -y
success "wkhtmltopdf installed"
{{if .HasModules}}
info "Installing custom modules..."
mkdir -p /opt/odoo18/custom_addons
chown {{.DBUser}}: /opt/odoo18/custom_addons

for module in {{.ModuleList}}; do
    progress "Installing module: $module"
    cp -r /tmp/custom_modules/$module /opt/odoo18/custom_addons/
done

chown -R {{.DBUser}}: /opt/odoo18/custom_addons/
success "Custom modules installed"
{{end}}
info "Configuring Odoo..."
mkdir -p /var/log/odoo
progress "Writing configuration file..."
cat > /etc/odoo18.conf << EOL
[options]
; admin_passwd = admin
db_host = localhost
db_port = 5432
db_user = {{.DBUser}}
db_password = {{.DBPassword}}
addons_path = {{.AddonsPath}}
default_productivity_apps = True
logfile = /var/log/odoo/odoo18.log
EOL

chown {{.DBUser}}: /etc/odoo18.conf
chmod 640 /etc/odoo18.conf
chown {{.DBUser}}:root /var/log/odoo
progress "Writing systemd unit..."

cat > /etc/systemd/system/odoo18.service << EOL
[Unit]
Description=Odoo {{.Version}}
After=network.target postgresql.service

[Service]
Type=simple
User={{.DBUser}}
ExecStart=/opt/odoo18/venv/bin/python3 /opt/odoo18/odoo-bin -c /etc/odoo18.conf

[Install]
WantedBy=default.target
EOL

chmod 755 /etc/systemd/system/odoo18.service
progress "Reloading systemd and starting Odoo..."
systemctl daemon-reload
systemctl start odoo18.service
systemctl enable odoo18.service

success "Odoo {{.Version}} installation completed"
`
