package proxmox

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Storages(t *testing.T) {
	t.Parallel()
	run := NewFakeRunner()
	run.Responses["pvesh get /nodes/pve/storage --output-format=json"] =
		`[{"storage":"local","content":"vztmpl","total":10,"used":5,"avail":5}]`

	c := NewClientForNode(run, "pve")
	storages, err := c.Storages(context.Background())

	require.NoError(t, err)
	require.Len(t, storages, 1)
	assert.Equal(t, "local", storages[0].Name)
}

func TestClient_Storages_CommandFailure(t *testing.T) {
	t.Parallel()
	run := NewFakeRunner()
	run.Errors["pvesh get /nodes/pve/storage --output-format=json"] = errors.New("no route to host")

	c := NewClientForNode(run, "pve")
	_, err := c.Storages(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query node storage")
}

func TestClient_SetStorageContent(t *testing.T) {
	t.Parallel()
	run := NewFakeRunner()
	run.Responses["pvesh set /storage/local --content vztmpl,rootdir"] = ""

	c := NewClientForNode(run, "pve")
	require.NoError(t, c.SetStorageContent(context.Background(), "local", "vztmpl,rootdir"))
	assert.Equal(t, []string{"pvesh set /storage/local --content vztmpl,rootdir"}, run.Calls)
}

func TestClient_HasTemplate(t *testing.T) {
	t.Parallel()
	run := NewFakeRunner()
	run.Responses["pvesh get /nodes/pve/storage/local/content --output-format=json"] =
		`[{"volid":"local:vztmpl/` + DefaultTemplate + `"},{"volid":"local:iso/other.iso"}]`

	c := NewClientForNode(run, "pve")

	has, err := c.HasTemplate(context.Background(), "local", DefaultTemplate)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = c.HasTemplate(context.Background(), "local", "debian-12-standard.tar.zst")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestClient_DownloadTemplate(t *testing.T) {
	t.Parallel()
	run := NewFakeRunner()
	run.Responses["pveam update"] = ""
	run.Responses["pveam download local "+DefaultTemplate] = ""

	c := NewClientForNode(run, "pve")
	require.NoError(t, c.UpdateTemplateIndex(context.Background()))
	require.NoError(t, c.DownloadTemplate(context.Background(), "local", DefaultTemplate))
}

func TestClient_Status(t *testing.T) {
	t.Parallel()
	run := NewFakeRunner()
	run.Responses["pvesh get /nodes/pve/lxc/100/status/current --output-format=json"] =
		`{"status":"running","uptime":42}`

	c := NewClientForNode(run, "pve")
	status, err := c.Status(context.Background(), 100)

	require.NoError(t, err)
	assert.Equal(t, "running", status)
}

func TestClient_Exec_ArgumentShape(t *testing.T) {
	t.Parallel()
	run := NewFakeRunner()
	run.Responses["pct exec 100 -- chmod 644 /etc/netplan/01-netcfg.yaml"] = ""

	c := NewClientForNode(run, "pve")
	_, err := c.Exec(context.Background(), 100, "chmod", "644", "/etc/netplan/01-netcfg.yaml")

	require.NoError(t, err)
}

func TestClient_Ping(t *testing.T) {
	t.Parallel()
	run := NewFakeRunner()
	run.Responses["pct exec 100 -- ping -c 1 8.8.8.8"] = "1 received"

	c := NewClientForNode(run, "pve")
	assert.True(t, c.Ping(context.Background(), 100, "8.8.8.8"))

	run.Errors["pct exec 100 -- ping -c 1 8.8.8.8"] = errors.New("network unreachable")
	assert.False(t, c.Ping(context.Background(), 100, "8.8.8.8"))
}

func TestClient_ExecStream(t *testing.T) {
	t.Parallel()
	run := NewFakeRunner()
	run.StreamLines["pct exec 100 -- bash /root/odoo_install.sh"] = []string{
		"[INFO] Updating system...",
		"[SUCCESS] System updated",
	}

	c := NewClientForNode(run, "pve")
	var lines []string
	err := c.ExecStream(context.Background(), 100, func(l string) { lines = append(lines, l) },
		"bash", "/root/odoo_install.sh")

	require.NoError(t, err)
	assert.Len(t, lines, 2)
}
