package handlers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/config"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/config/wizard"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/netutil"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/platform/proxmox"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/ui"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/util/keygen"
)

// Factory function variables for init - can be replaced in tests.
var (
	fileExists = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}

	runInitWizard = wizard.Run

	writeConfig = config.WriteFile
)

// Init runs the configuration wizard and writes the answers to a file.
//
// The storage backend is not part of the answers file by default since it
// is host-specific. When the command runs on a Proxmox host the backend
// can be picked here too, otherwise it is selected at create time.
func Init(ctx context.Context, outputPath string) error {
	if fileExists(outputPath) {
		ui.Warningf("%s already exists and will be overwritten", outputPath)
	}

	ui.Banner(
		"LXC Odoo Deploy",
		"Answers file wizard",
	)

	run := proxmox.NewRunner()

	result, err := runInitWizard(ctx, wizard.Options{
		NetDefaults: netutil.Detect(ctx, run),
	})
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	storage, err := pickStorageIfAvailable(ctx, run)
	if err != nil {
		return err
	}

	cfg, err := wizard.BuildConfig(result, storage)
	if err != nil {
		return err
	}

	var keyPath string
	if result.GenerateSSHKey {
		pair, err := generateKey(keygen.DefaultBits)
		if err != nil {
			return err
		}
		// The private key lives next to the answers file so a later replay
		// of the file has its other half at hand.
		keyPath, err = pair.Write(filepath.Dir(outputPath), cfg.Hostname+"_id_rsa")
		if err != nil {
			return err
		}
		cfg.SSHPublicKey = strings.TrimSpace(string(pair.PublicKey))
		ui.Successf("SSH key pair generated")
	}

	if err := writeConfig(cfg, outputPath); err != nil {
		return err
	}

	ui.Successf("Answers saved to %s", outputPath)
	if keyPath != "" {
		ui.Notef("Private key written to %s, move it somewhere safe", keyPath)
	}
	if storage == "" {
		ui.Notef("No storage backend selected, create will ask for one")
	}
	ui.Notef("Replay with: lxc-odoo-deploy create --config %s --yes", outputPath)
	return nil
}

// pickStorageIfAvailable offers the storage selector when the Proxmox
// tooling answers, and quietly skips it otherwise so the wizard also works
// off-host.
func pickStorageIfAvailable(ctx context.Context, run proxmox.Runner) (string, error) {
	client, err := proxmox.NewClient(run)
	if err != nil {
		return "", nil
	}
	storages, err := client.Storages(ctx)
	if err != nil || len(storages) == 0 {
		return "", nil
	}

	ok, err := wizard.Confirm(ctx, "Pick the storage backend now?", true)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", nil
	}
	return wizard.SelectStorage(ctx, storages)
}
