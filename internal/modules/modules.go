// Package modules discovers and packages local Odoo addon modules for
// transfer into the container.
package modules

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// manifestFile marks a directory as an Odoo module.
const manifestFile = "__manifest__.py"

// DefaultDir is the modules directory name looked up next to the binary's
// working directory.
const DefaultDir = "modules"

// Discover returns the Odoo modules under dir, sorted by name. A module is
// any immediate subdirectory containing a __manifest__.py. A missing
// directory yields no modules and no error: custom modules are optional.
func Discover(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read modules directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, entry.Name(), manifestFile)); err == nil {
			names = append(names, entry.Name())
		}
	}

	sort.Strings(names)
	return names, nil
}

// Archive writes a gzipped tarball of the module directory dir/name to
// destPath. Entries are stored relative to dir, so extracting the archive
// under a target directory recreates <target>/<name>/...
func Archive(dir, name, destPath string) (err error) {
	root := filepath.Join(dir, name)
	if _, err := os.Stat(root); err != nil {
		return fmt.Errorf("module %q: %w", name, err)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create archive: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close archive: %w", cerr)
		}
	}()

	gzw := gzip.NewWriter(out)
	tw := tar.NewWriter(gzw)

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		// Modules are plain file trees; anything else is skipped.
		if !info.Mode().IsRegular() && !info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)

		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		// #nosec G304 - path comes from walking the operator's modules dir
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(tw, f)
		return err
	})
	if walkErr != nil {
		return fmt.Errorf("failed to archive module %q: %w", name, walkErr)
	}

	if err := tw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	if err := gzw.Close(); err != nil {
		return fmt.Errorf("failed to finalize archive: %w", err)
	}
	return nil
}
