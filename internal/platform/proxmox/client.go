package proxmox

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

// Client drives the Proxmox VE host tooling for one node.
type Client struct {
	run  Runner
	node string
}

// NewClient builds a client for the local node. The node name is the host's
// hostname, which is what pvesh paths are keyed on.
func NewClient(run Runner) (*Client, error) {
	node, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("failed to determine node name: %w", err)
	}
	return &Client{run: run, node: node}, nil
}

// NewClientForNode builds a client for an explicit node name. Used by tests.
func NewClientForNode(run Runner, node string) *Client {
	return &Client{run: run, node: node}
}

// Node returns the node name the client operates on.
func (c *Client) Node() string {
	return c.node
}

// Storages queries the node's storage backends.
func (c *Client) Storages(ctx context.Context) ([]Storage, error) {
	out, err := c.run.Output(ctx, "pvesh", "get", "/nodes/"+c.node+"/storage", "--output-format=json")
	if err != nil {
		return nil, fmt.Errorf("failed to query node storage: %w", err)
	}

	var storages []Storage
	if err := json.Unmarshal([]byte(out), &storages); err != nil {
		return nil, fmt.Errorf("failed to decode storage listing: %w", err)
	}
	return storages, nil
}

// SetStorageContent replaces the content-type list of a storage backend.
func (c *Client) SetStorageContent(ctx context.Context, storage, content string) error {
	if _, err := c.run.Output(ctx, "pvesh", "set", "/storage/"+storage, "--content", content); err != nil {
		return fmt.Errorf("failed to update storage %q content: %w", storage, err)
	}
	return nil
}

// CreateContainer creates (and starts) a container from the given options.
func (c *Client) CreateContainer(ctx context.Context, opts CreateOpts) error {
	if _, err := c.run.Output(ctx, "pct", opts.Args()...); err != nil {
		return fmt.Errorf("failed to create container %d: %w", opts.VMID, err)
	}
	return nil
}

// Push copies a local file into the container filesystem.
func (c *Client) Push(ctx context.Context, vmid int, localPath, remotePath string) error {
	if _, err := c.run.Output(ctx, "pct", "push", strconv.Itoa(vmid), localPath, remotePath); err != nil {
		return fmt.Errorf("failed to push %s into container %d: %w", localPath, vmid, err)
	}
	return nil
}

// Exec runs a command inside the container and returns its output.
func (c *Client) Exec(ctx context.Context, vmid int, command ...string) (string, error) {
	args := append([]string{"exec", strconv.Itoa(vmid), "--"}, command...)
	out, err := c.run.Output(ctx, "pct", args...)
	if err != nil {
		return "", fmt.Errorf("container %d: %w", vmid, err)
	}
	return out, nil
}

// ExecStream runs a command inside the container, streaming its combined
// output line by line.
func (c *Client) ExecStream(ctx context.Context, vmid int, onLine func(string), command ...string) error {
	args := append([]string{"exec", strconv.Itoa(vmid), "--"}, command...)
	if err := c.run.Stream(ctx, onLine, "pct", args...); err != nil {
		return fmt.Errorf("container %d: %w", vmid, err)
	}
	return nil
}

// Status returns the container's current status string ("running",
// "stopped", ...). Errors are expected while the container is still coming
// up, so callers typically treat them as "not ready yet".
func (c *Client) Status(ctx context.Context, vmid int) (string, error) {
	path := fmt.Sprintf("/nodes/%s/lxc/%d/status/current", c.node, vmid)
	out, err := c.run.Output(ctx, "pvesh", "get", path, "--output-format=json")
	if err != nil {
		return "", err
	}

	var status struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal([]byte(out), &status); err != nil {
		return "", fmt.Errorf("failed to decode container status: %w", err)
	}
	return status.Status, nil
}

// Ping reports whether the container can reach target. Used as a
// connectivity probe; failures are not errors.
func (c *Client) Ping(ctx context.Context, vmid int, target string) bool {
	_, err := c.Exec(ctx, vmid, "ping", "-c", "1", target)
	return err == nil
}
