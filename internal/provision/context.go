package provision

import (
	"context"
	"time"

	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/config"
	"github.com/C3i-Servicios-Informaticos/c3i-lxc-odoo-deploy/internal/platform/proxmox"
)

const (
	// DefaultPollAttempts bounds the readiness wait after creation.
	DefaultPollAttempts = 30
	// DefaultPollInterval separates readiness probes.
	DefaultPollInterval = 5 * time.Second

	// DefaultWebWaitTimeout bounds the post-install wait for the Odoo
	// web port.
	DefaultWebWaitTimeout = 2 * time.Minute

	// PingTarget is the address probed to confirm outbound connectivity.
	PingTarget = "8.8.8.8"
)

// Context carries the shared dependencies and state of a deployment run.
// It is built once by the caller and threaded through every phase.
type Context struct {
	context.Context

	Config *config.Config
	Client *proxmox.Client

	// Modules lists the custom addon names found under ModulesDir.
	Modules    []string
	ModulesDir string

	// WorkDir holds rendered files and archives before they are pushed
	// into the container. The caller owns its lifecycle.
	WorkDir string

	// SSHKeyFile optionally points at an authorized_keys file injected
	// into the container at creation time.
	SSHKeyFile string

	PollAttempts   int
	PollInterval   time.Duration
	WebWaitTimeout time.Duration
}

// NewContext builds a deployment context with default polling behavior.
func NewContext(ctx context.Context, cfg *config.Config, client *proxmox.Client, workDir string) *Context {
	return &Context{
		Context:        ctx,
		Config:         cfg,
		Client:         client,
		WorkDir:        workDir,
		PollAttempts:   DefaultPollAttempts,
		PollInterval:   DefaultPollInterval,
		WebWaitTimeout: DefaultWebWaitTimeout,
	}
}
