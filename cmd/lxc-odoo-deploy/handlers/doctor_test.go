package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/platform/proxmox"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/util/prerequisites"
)

func TestGatherStatusReady(t *testing.T) {
	saveAndRestoreCreateFactories(t)
	geteuid = func() int { return 0 }
	checkTools = func() *prerequisites.CheckResults {
		return &prerequisites.CheckResults{
			Results: []prerequisites.CheckResult{
				{Tool: prerequisites.Tool{Name: "pvesh", Required: true}, Found: true, Path: "/usr/bin/pvesh"},
				{Tool: prerequisites.Tool{Name: "pct", Required: true}, Found: true, Path: "/usr/bin/pct", Version: "pct 8.0"},
			},
		}
	}

	run := proxmox.NewFakeRunner()
	run.Responses["pvesh get /nodes/pve/storage --output-format=json"] = storagesJSON()
	newClient = fakeClient(run)

	status := gatherStatus(context.Background())
	assert.True(t, status.Ready)
	assert.True(t, status.Root)
	assert.Equal(t, "pve", status.Node)
	require.Len(t, status.Storages, 1)
	assert.True(t, status.Storages[0].Containers)
	assert.True(t, status.Storages[0].Templates)
	assert.Equal(t, "80.00 GB", status.Storages[0].Free)
}

func TestGatherStatusMissingTool(t *testing.T) {
	saveAndRestoreCreateFactories(t)
	geteuid = func() int { return 0 }
	checkTools = func() *prerequisites.CheckResults {
		missing := prerequisites.Tool{Name: "pct", Required: true}
		return &prerequisites.CheckResults{
			Results: []prerequisites.CheckResult{{Tool: missing}},
			Missing: []prerequisites.Tool{missing},
		}
	}

	run := proxmox.NewFakeRunner()
	run.Responses["pvesh get /nodes/pve/storage --output-format=json"] = storagesJSON()
	newClient = fakeClient(run)

	status := gatherStatus(context.Background())
	assert.False(t, status.Ready)
}

func TestGatherStatusStorageError(t *testing.T) {
	saveAndRestoreCreateFactories(t)
	geteuid = func() int { return 0 }
	checkTools = func() *prerequisites.CheckResults { return &prerequisites.CheckResults{} }

	run := proxmox.NewFakeRunner() // no responses, listing fails
	newClient = fakeClient(run)

	status := gatherStatus(context.Background())
	assert.False(t, status.Ready)
	assert.NotEmpty(t, status.StorageError)
}

func TestGatherStatusClientError(t *testing.T) {
	saveAndRestoreCreateFactories(t)
	geteuid = func() int { return 0 }
	checkTools = func() *prerequisites.CheckResults { return &prerequisites.CheckResults{} }
	newClient = func() (*proxmox.Client, proxmox.Runner, error) {
		return nil, nil, errors.New("pvesh: command not found")
	}

	status := gatherStatus(context.Background())
	assert.False(t, status.Ready)
	assert.Equal(t, "pvesh: command not found", status.StorageError)
}

func TestDoctorJSONOutput(t *testing.T) {
	saveAndRestoreCreateFactories(t)
	geteuid = func() int { return 0 }
	checkTools = func() *prerequisites.CheckResults { return &prerequisites.CheckResults{} }

	run := proxmox.NewFakeRunner()
	run.Responses["pvesh get /nodes/pve/storage --output-format=json"] = storagesJSON()
	newClient = fakeClient(run)

	status := gatherStatus(context.Background())
	data, err := json.Marshal(status)
	require.NoError(t, err)

	var decoded DoctorStatus
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, status.Ready, decoded.Ready)
	assert.Equal(t, "pve", decoded.Node)
}
