package proxmox

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// DefaultTemplate is the base OS template containers are created from.
const DefaultTemplate = "ubuntu-24.04-standard_24.04-2_amd64.tar.zst"

// HasTemplate reports whether the storage backend already holds the given
// template image.
func (c *Client) HasTemplate(ctx context.Context, storage, template string) (bool, error) {
	path := fmt.Sprintf("/nodes/%s/storage/%s/content", c.node, storage)
	out, err := c.run.Output(ctx, "pvesh", "get", path, "--output-format=json")
	if err != nil {
		return false, fmt.Errorf("failed to list storage %q content: %w", storage, err)
	}

	type volume struct {
		Volid string `json:"volid"`
	}
	var volumes []volume
	if err := json.Unmarshal([]byte(out), &volumes); err != nil {
		return false, fmt.Errorf("failed to decode storage %q content: %w", storage, err)
	}

	return lo.SomeBy(volumes, func(v volume) bool {
		return strings.HasSuffix(v.Volid, template)
	}), nil
}

// UpdateTemplateIndex refreshes the appliance template index.
func (c *Client) UpdateTemplateIndex(ctx context.Context) error {
	if _, err := c.run.Output(ctx, "pveam", "update"); err != nil {
		return fmt.Errorf("failed to update template index: %w", err)
	}
	return nil
}

// DownloadTemplate fetches a template image into the storage backend.
func (c *Client) DownloadTemplate(ctx context.Context, storage, template string) error {
	if _, err := c.run.Output(ctx, "pveam", "download", storage, template); err != nil {
		return fmt.Errorf("failed to download template %q: %w", template, err)
	}
	return nil
}
