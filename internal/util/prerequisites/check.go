// Package prerequisites checks for the host tools the installer shells out to.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"
)

// Tool represents a host tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// Package is the Debian package providing the tool, used for the
	// apt-based remediation offer.
	Package string
}

// DefaultTools returns the tools the provisioning workflow depends on.
// pvesh and pct are part of every Proxmox VE install; curl is used by the
// template download machinery.
func DefaultTools() []Tool {
	return []Tool{
		{
			Name:        "pvesh",
			Required:    true,
			Description: "Required for querying node storage and container status",
			Package:     "pve-manager",
		},
		{
			Name:        "pct",
			Required:    true,
			Description: "Required for creating and managing LXC containers",
			Package:     "pve-container",
		},
		{
			Name:        "curl",
			Required:    true,
			Description: "Required by the template download tooling",
			Package:     "curl",
		},
	}
}

// OptionalTools returns tools that are useful but not required.
func OptionalTools() []Tool {
	return []Tool{
		{
			Name:        "pveam",
			Required:    false,
			Description: "Appliance template manager, used to fetch the Ubuntu template",
			Package:     "pve-manager",
		},
	}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool    Tool
	Found   bool
	Path    string
	Version string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// MissingNames returns the names of all missing tools.
func (r *CheckResults) MissingNames() []string {
	names := make([]string, 0, len(r.Missing))
	for _, tool := range r.Missing {
		names = append(names, tool.Name)
	}
	return names
}

// MissingPackages returns the deduplicated Debian packages that would
// provide the missing tools.
func (r *CheckResults) MissingPackages() []string {
	seen := map[string]bool{}
	var pkgs []string
	for _, tool := range r.Missing {
		if tool.Package == "" || seen[tool.Package] {
			continue
		}
		seen[tool.Package] = true
		pkgs = append(pkgs, tool.Package)
	}
	return pkgs
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.Description))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// Check verifies that the specified tools are available.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := exec.LookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
			// Try to get version (best effort)
			result.Version = getToolVersion(tool.Name)
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}

// CheckDefault checks the default required tools.
func CheckDefault() *CheckResults {
	return Check(DefaultTools())
}

// CheckAll checks all tools (default + optional).
func CheckAll() *CheckResults {
	defaults := DefaultTools()
	optional := OptionalTools()
	all := make([]Tool, 0, len(defaults)+len(optional))
	all = append(all, defaults...)
	all = append(all, optional...)
	return Check(all)
}

// getToolVersion attempts to get the version of a tool.
// Returns empty string if version cannot be determined.
func getToolVersion(name string) string {
	versionFlags := []string{"--version", "version", "-v"}

	for _, flag := range versionFlags {
		// #nosec G204 - name comes from trusted Tool definitions, not user input
		cmd := exec.Command(name, flag)
		output, err := cmd.Output()
		if err == nil {
			lines := strings.Split(string(output), "\n")
			if len(lines) > 0 {
				return strings.TrimSpace(lines[0])
			}
		}
	}

	return ""
}
