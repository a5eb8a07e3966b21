package proxmox

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external commands. It is the only seam between the client
// and the host; tests substitute a scripted implementation.
type Runner interface {
	// Output runs a command and returns its trimmed stdout. A non-zero exit
	// yields an error carrying the command line and stderr.
	Output(ctx context.Context, name string, args ...string) (string, error)

	// Stream runs a command and invokes onLine for every line of combined
	// stdout/stderr while the command executes.
	Stream(ctx context.Context, onLine func(string), name string, args ...string) error
}

type execRunner struct{}

// NewRunner returns a Runner backed by os/exec.
func NewRunner() Runner {
	return execRunner{}
}

func (execRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	// #nosec G204 - command names and arguments come from trusted internal call sites
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return "", fmt.Errorf("%s: %s: %w", commandLine(name, args), detail, err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (execRunner) Stream(ctx context.Context, onLine func(string), name string, args ...string) error {
	// #nosec G204 - command names and arguments come from trusted internal call sites
	cmd := exec.CommandContext(ctx, name, args...)

	// Merge stdout and stderr into one pipe so progress lines interleave in
	// execution order.
	pr, pw, err := os.Pipe()
	if err != nil {
		return fmt.Errorf("failed to create output pipe: %w", err)
	}
	cmd.Stdout = pw
	cmd.Stderr = pw

	if err := cmd.Start(); err != nil {
		_ = pr.Close()
		_ = pw.Close()
		return fmt.Errorf("%s: %w", commandLine(name, args), err)
	}
	// The child holds its own copy of the write end.
	_ = pw.Close()

	scanner := bufio.NewScanner(pr)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		onLine(scanner.Text())
	}
	_ = pr.Close()

	if err := cmd.Wait(); err != nil {
		return fmt.Errorf("%s: %w", commandLine(name, args), err)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read command output: %w", err)
	}
	return nil
}

func commandLine(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
