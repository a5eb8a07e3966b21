// Package proxmox wraps the Proxmox VE host tooling (pvesh, pct, pveam)
// behind a small client.
//
// The host exposes no stable Go API for local node management, so every
// operation shells out to the stock CLIs and parses their JSON output where
// available. All invocations go through the Runner seam so tests can script
// command results without a Proxmox host.
package proxmox
