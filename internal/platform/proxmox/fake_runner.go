package proxmox

import (
	"context"
	"fmt"
	"strings"
)

// FakeRunner is a scripted Runner for tests. Responses are keyed on the full
// command line; unmatched commands fail unless a Default is set.
type FakeRunner struct {
	// Responses maps "name arg1 arg2 ..." to canned stdout.
	Responses map[string]string
	// Errors maps command lines to forced failures.
	Errors map[string]error
	// StreamLines maps command lines to lines delivered via Stream.
	StreamLines map[string][]string
	// Default, when non-empty, answers any unmatched Output call.
	Default string

	// Calls records every command line executed, in order.
	Calls []string
}

// NewFakeRunner returns an empty scripted runner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		Responses:   map[string]string{},
		Errors:      map[string]error{},
		StreamLines: map[string][]string{},
	}
}

// Output implements Runner.
func (f *FakeRunner) Output(_ context.Context, name string, args ...string) (string, error) {
	line := commandLine(name, args)
	f.Calls = append(f.Calls, line)

	if err, ok := f.Errors[line]; ok {
		return "", err
	}
	if out, ok := f.Responses[line]; ok {
		return out, nil
	}
	if f.Default != "" {
		return f.Default, nil
	}
	return "", fmt.Errorf("unexpected command: %s", line)
}

// Stream implements Runner.
func (f *FakeRunner) Stream(_ context.Context, onLine func(string), name string, args ...string) error {
	line := commandLine(name, args)
	f.Calls = append(f.Calls, line)

	if err, ok := f.Errors[line]; ok {
		return err
	}
	for _, l := range f.StreamLines[line] {
		onLine(l)
	}
	return nil
}

// CalledWith reports whether any recorded command line contains substr.
func (f *FakeRunner) CalledWith(substr string) bool {
	for _, call := range f.Calls {
		if strings.Contains(call, substr) {
			return true
		}
	}
	return false
}
