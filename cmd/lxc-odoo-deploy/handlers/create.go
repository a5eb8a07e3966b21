// Package handlers implements the command workflows behind the CLI.
package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/config"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/config/wizard"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/modules"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/netutil"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/platform/proxmox"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/provision"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/ui"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/util/keygen"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/util/prerequisites"
)

// Factory function variables for create - can be replaced in tests.
var (
	geteuid = os.Geteuid

	// create only needs the required tools; doctor reports the optional
	// ones too via checkTools.
	checkRequired = prerequisites.CheckDefault

	checkTools = prerequisites.CheckAll

	newClient = func() (*proxmox.Client, proxmox.Runner, error) {
		run := proxmox.NewRunner()
		client, err := proxmox.NewClient(run)
		return client, run, err
	}

	runWizard = wizard.Run

	selectStorage = wizard.SelectStorage

	confirm = wizard.Confirm

	detectNetDefaults = netutil.Detect

	discoverModules = modules.Discover

	generateKey = keygen.Generate

	runPhases = provision.RunPhases
)

// CreateOptions carries the create command's flags.
type CreateOptions struct {
	// ConfigPath, when set, replays an answers file instead of the wizard.
	ConfigPath string
	// ModulesDir is scanned for custom Odoo addons.
	ModulesDir string
	// Yes skips confirmation prompts.
	Yes bool
}

// Create handles the create command.
//
// The workflow:
//  1. Checks root privileges and host tooling
//  2. Discovers custom addons
//  3. Selects a storage backend and enables the needed content types
//  4. Collects parameters (wizard or answers file)
//  5. Creates the container, waits for it, transfers addons, installs Odoo
//  6. Prints how to reach the new instance
func Create(ctx context.Context, opts CreateOptions) error {
	printBanner()

	if geteuid() != 0 {
		return fmt.Errorf("create must run as root on the Proxmox VE host")
	}

	if err := ensurePrerequisites(ctx, opts.Yes); err != nil {
		return err
	}

	client, run, err := newClient()
	if err != nil {
		return err
	}

	mods, err := collectModules(ctx, opts)
	if err != nil {
		return err
	}

	workDir, err := os.MkdirTemp("", "lxc-odoo-deploy-*")
	if err != nil {
		return fmt.Errorf("failed to create working directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	cfg, sshKeyPath, err := buildDeployment(ctx, client, run, opts)
	if err != nil {
		return err
	}

	printSummary(cfg, mods)
	if !opts.Yes {
		ok, err := confirm(ctx, "Proceed with the deployment?", true)
		if err != nil {
			return err
		}
		if !ok {
			ui.Infof("Aborted, nothing was created")
			return nil
		}
	}

	pctx := provision.NewContext(ctx, cfg, client, workDir)
	pctx.Modules = mods
	pctx.ModulesDir = opts.ModulesDir
	if cfg.SSHPublicKey != "" {
		keyFile := filepath.Join(workDir, "authorized_keys")
		if err := os.WriteFile(keyFile, []byte(cfg.SSHPublicKey+"\n"), 0o600); err != nil {
			return fmt.Errorf("failed to stage ssh key: %w", err)
		}
		pctx.SSHKeyFile = keyFile
	}

	if err := runPhases(pctx, provision.Phases()); err != nil {
		return err
	}

	printAccess(cfg, sshKeyPath)
	return nil
}

func printBanner() {
	ui.Banner(
		"LXC Odoo Deploy",
		"Proxmox VE container provisioning with Odoo "+config.DefaultOdooVersion,
	)
}

// ensurePrerequisites verifies the host tooling and, interactively, offers
// to install the missing Debian packages.
func ensurePrerequisites(ctx context.Context, yes bool) error {
	results := checkRequired()
	if !results.HasErrors() {
		return nil
	}

	ui.Warningf("Missing tools: %s", strings.Join(results.MissingNames(), ", "))

	pkgs := results.MissingPackages()
	if len(pkgs) == 0 || yes || !ui.IsTerminal() {
		return results.Error()
	}

	ok, err := confirm(ctx, fmt.Sprintf("Install missing packages (%s) now?", strings.Join(pkgs, ", ")), true)
	if err != nil {
		return err
	}
	if !ok {
		return results.Error()
	}

	run := proxmox.NewRunner()
	args := append([]string{"install", "-y"}, pkgs...)
	if _, err := run.Output(ctx, "apt-get", args...); err != nil {
		return fmt.Errorf("failed to install packages: %w", err)
	}

	if results = checkRequired(); results.HasErrors() {
		return results.Error()
	}
	ui.Successf("Prerequisites installed")
	return nil
}

// collectModules scans the addons directory and asks whether to ship what it
// found.
func collectModules(ctx context.Context, opts CreateOptions) ([]string, error) {
	if opts.ModulesDir == "" {
		return nil, nil
	}

	mods, err := discoverModules(opts.ModulesDir)
	if err != nil {
		return nil, err
	}
	if len(mods) == 0 {
		ui.Warningf("No custom addons found under %s", opts.ModulesDir)
		if opts.Yes {
			return nil, nil
		}
		ok, err := confirm(ctx, "Continue without custom addons?", true)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, fmt.Errorf("deployment aborted, add your addons under %s and retry", opts.ModulesDir)
		}
		return nil, nil
	}

	ui.Group("Custom addons found")
	for _, name := range mods {
		ui.Item(name, opts.ModulesDir)
	}

	if opts.Yes {
		return mods, nil
	}
	ok, err := confirm(ctx, fmt.Sprintf("Install these %d addon(s)?", len(mods)), true)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return mods, nil
}

// buildDeployment produces the validated configuration, either from the
// answers file or interactively, with the storage backend resolved and its
// content types enabled. It returns the path of a generated private key,
// if any.
func buildDeployment(ctx context.Context, client *proxmox.Client, run proxmox.Runner, opts CreateOptions) (*config.Config, string, error) {
	if opts.ConfigPath != "" {
		cfg, err := config.LoadFile(opts.ConfigPath)
		if err != nil {
			return nil, "", err
		}
		storage, err := resolveStorage(ctx, client, cfg.Storage, opts.Yes)
		if err != nil {
			return nil, "", err
		}
		cfg.Storage = storage
		return cfg, "", nil
	}

	if !ui.IsTerminal() {
		return nil, "", fmt.Errorf("no terminal available, use --config to run non-interactively")
	}

	storage, err := resolveStorage(ctx, client, "", opts.Yes)
	if err != nil {
		return nil, "", err
	}

	result, err := runWizard(ctx, wizard.Options{
		NetDefaults: detectNetDefaults(ctx, run),
	})
	if err != nil {
		return nil, "", err
	}

	cfg, err := wizard.BuildConfig(result, storage)
	if err != nil {
		return nil, "", err
	}

	var keyPath string
	if result.GenerateSSHKey {
		pair, err := generateKey(keygen.DefaultBits)
		if err != nil {
			return nil, "", err
		}
		keyPath, err = pair.Write(".", cfg.Hostname+"_id_rsa")
		if err != nil {
			return nil, "", err
		}
		cfg.SSHPublicKey = strings.TrimSpace(string(pair.PublicKey))
		ui.Successf("SSH key pair generated")
	}

	return cfg, keyPath, nil
}

// resolveStorage picks the storage backend (interactively when name is
// empty) and makes sure it accepts container root filesystems and
// templates. Enabling a missing content type changes host configuration,
// so it is confirmed first unless yes is set.
func resolveStorage(ctx context.Context, client *proxmox.Client, name string, yes bool) (string, error) {
	storages, err := client.Storages(ctx)
	if err != nil {
		return "", err
	}
	if len(storages) == 0 {
		return "", fmt.Errorf("no storage backends found on this node")
	}

	if name == "" {
		if name, err = selectStorage(ctx, storages); err != nil {
			return "", err
		}
	}

	for _, contentType := range []string{proxmox.ContentRootDir, proxmox.ContentTemplate} {
		storage, ok := proxmox.FindStorage(storages, name)
		if !ok {
			return "", fmt.Errorf("storage %q not found on this node", name)
		}
		if storage.Supports(contentType) {
			continue
		}

		ui.Warningf("Storage %s does not support %s content", name, contentType)
		if !yes {
			ok, err := confirm(ctx, fmt.Sprintf("Enable %s content on storage %s?", contentType, name), true)
			if err != nil {
				return "", err
			}
			if !ok {
				return "", fmt.Errorf("storage %q cannot hold %s content, deployment aborted", name, contentType)
			}
		}

		ui.Infof("Enabling %s content on storage %s", contentType, name)
		if err := client.SetStorageContent(ctx, name, storage.ContentWith(contentType)); err != nil {
			return "", err
		}
		if storages, err = client.Storages(ctx); err != nil {
			return "", err
		}
	}

	return name, nil
}

func printSummary(cfg *config.Config, mods []string) {
	ui.Section("Deployment summary")
	ui.Group("Container")
	ui.Item("VMID", strconv.Itoa(cfg.VMID))
	ui.Item("Hostname", cfg.Hostname)
	ui.Item("Resources", fmt.Sprintf("%d MB RAM, %d GB disk, %d cores", cfg.MemoryMB, cfg.DiskGB, cfg.Cores))
	ui.Item("Storage", cfg.Storage)

	ui.Group("Network")
	mode := "local bridge"
	if cfg.Network.PublicIP {
		mode = "routed public IP"
	}
	ui.Item("Mode", mode)
	ui.Item("Address", cfg.Network.Address+"/"+cfg.Network.Netmask)
	ui.Item("Gateway", cfg.Network.Gateway)
	ui.Item("DNS", cfg.Network.DNSServers)
	if cfg.Network.MACAddress != "" {
		ui.Item("MAC", cfg.Network.MACAddress)
	}

	ui.Group("Odoo")
	ui.Item("Version", cfg.Odoo.Version)
	ui.Item("DB user", cfg.Odoo.DBUser)
	if len(mods) > 0 {
		ui.Item("Custom addons", strings.Join(mods, ", "))
	}
}

func printAccess(cfg *config.Config, sshKeyPath string) {
	ui.Section("Access")
	ui.Item("Web", fmt.Sprintf("http://%s:8069", cfg.Network.Address))
	ui.Item("SSH", "ssh root@"+cfg.Network.Address)
	ui.Item("Console", fmt.Sprintf("pct enter %d", cfg.VMID))
	ui.Item("Database user", cfg.Odoo.DBUser)
	if sshKeyPath != "" {
		ui.Notef("Private key written to %s, move it somewhere safe", sshKeyPath)
	}
	ui.Notef("First login creates the Odoo database, use the master password from /etc/odoo18.conf")
}
