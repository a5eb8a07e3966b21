package wizard

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/samber/lo"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/platform/proxmox"
)

// StorageOptions builds select options from the host's storage backends,
// labelled with capacity information.
func StorageOptions(storages []proxmox.Storage) []huh.Option[string] {
	return lo.Map(storages, func(s proxmox.Storage, _ int) huh.Option[string] {
		return huh.NewOption(StorageLabel(s), s.Name)
	})
}

// StorageLabel renders one backend for the storage selector.
func StorageLabel(s proxmox.Storage) string {
	return fmt.Sprintf("%s (%s free of %s, %s used)",
		s.Name, proxmox.FormatSize(s.Avail), proxmox.FormatSize(s.Total), s.UsedPercent())
}

// SelectStorage prompts for the backend to hold the container root
// filesystem and template.
func SelectStorage(ctx context.Context, storages []proxmox.Storage) (string, error) {
	var selected string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Storage backend").
				Description("Must support container root filesystems and templates, or be configurable to").
				Options(StorageOptions(storages)...).
				Value(&selected),
		).Title("Storage"),
	).RunWithContext(ctx)
	if err != nil {
		return "", err
	}
	return selected, nil
}

// Confirm asks a yes/no question with the given default.
func Confirm(ctx context.Context, title string, def bool) (bool, error) {
	answer := def
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Value(&answer),
		),
	).RunWithContext(ctx)
	if err != nil {
		return false, err
	}
	return answer, nil
}
