package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/platform/proxmox"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/ui"
)

// DoctorStatus is the host diagnostic report.
type DoctorStatus struct {
	Node     string          `json:"node,omitempty"`
	Root     bool            `json:"root"`
	Tools    []ToolStatus    `json:"tools"`
	Storages []StorageStatus `json:"storages,omitempty"`
	// StorageError is set when the storage listing failed, typically off a
	// Proxmox host.
	StorageError string `json:"storageError,omitempty"`
	Ready        bool   `json:"ready"`
}

// ToolStatus reports one host tool.
type ToolStatus struct {
	Name     string `json:"name"`
	Required bool   `json:"required"`
	Found    bool   `json:"found"`
	Path     string `json:"path,omitempty"`
	Version  string `json:"version,omitempty"`
}

// StorageStatus reports one storage backend's container fitness.
type StorageStatus struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Containers bool   `json:"containers"`
	Templates  bool   `json:"templates"`
	Free       string `json:"free"`
	Total      string `json:"total"`
}

// Doctor handles the doctor command.
func Doctor(ctx context.Context, jsonOutput bool) error {
	status := gatherStatus(ctx)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(status)
	}

	printStatus(status)
	if !status.Ready {
		return fmt.Errorf("host is not ready for a deployment")
	}
	return nil
}

func gatherStatus(ctx context.Context) *DoctorStatus {
	status := &DoctorStatus{
		Root: geteuid() == 0,
	}

	results := checkTools()
	for _, r := range results.Results {
		status.Tools = append(status.Tools, ToolStatus{
			Name:     r.Tool.Name,
			Required: r.Tool.Required,
			Found:    r.Found,
			Path:     r.Path,
			Version:  r.Version,
		})
	}

	status.Ready = status.Root && !results.HasErrors()

	client, _, err := newClient()
	if err != nil {
		status.StorageError = err.Error()
		status.Ready = false
		return status
	}
	status.Node = client.Node()

	storages, err := client.Storages(ctx)
	if err != nil {
		status.StorageError = err.Error()
		status.Ready = false
		return status
	}

	for _, s := range storages {
		containers := s.Supports(proxmox.ContentRootDir)
		templates := s.Supports(proxmox.ContentTemplate)
		status.Storages = append(status.Storages, StorageStatus{
			Name:       s.Name,
			Type:       s.Type,
			Containers: containers,
			Templates:  templates,
			Free:       proxmox.FormatSize(s.Avail),
			Total:      proxmox.FormatSize(s.Total),
		})
	}
	// Content types can be enabled during create, so missing support is
	// informational as long as any backend exists.
	if len(status.Storages) == 0 {
		status.Ready = false
	}

	return status
}

func printStatus(status *DoctorStatus) {
	ui.Section("Host diagnostics")

	ui.Group("Privileges")
	if status.Root {
		ui.Item("root", "yes")
	} else {
		ui.Item("root", "no (create requires root)")
	}

	ui.Group("Tools")
	for _, tool := range status.Tools {
		switch {
		case tool.Found && tool.Version != "":
			ui.Item(tool.Name, tool.Version)
		case tool.Found:
			ui.Item(tool.Name, tool.Path)
		case tool.Required:
			ui.Item(tool.Name, "MISSING (required)")
		default:
			ui.Item(tool.Name, "missing (optional)")
		}
	}

	ui.Group("Storage")
	if status.StorageError != "" {
		ui.Item("error", status.StorageError)
	}
	for _, s := range status.Storages {
		detail := fmt.Sprintf("%s, %s free of %s", s.Type, s.Free, s.Total)
		if s.Containers && s.Templates {
			detail += ", containers+templates"
		}
		ui.Item(s.Name, detail)
	}

	if status.Ready {
		ui.Successf("Host is ready for a deployment")
	} else {
		ui.Errorf("Host is not ready, fix the items above")
	}
}
