// Package main is the entry point for the lxc-odoo-deploy CLI.
//
// lxc-odoo-deploy provisions an LXC container on a Proxmox VE host and
// installs Odoo with PostgreSQL inside it, either interactively or from a
// previously saved answers file.
//
// Commands: create, init, doctor, version, completion.
//
// For detailed usage information, run:
//
//	lxc-odoo-deploy --help
package main

import (
	"fmt"
	"os"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/cmd/lxc-odoo-deploy/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
