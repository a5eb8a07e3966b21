// Package provision runs the container deployment as a sequence of phases:
// create the container, wait for it to come up, transfer custom addons,
// run the installer. Phases share a Context and report through the ui
// package.
package provision
