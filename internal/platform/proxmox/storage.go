package proxmox

import (
	"fmt"
	"strings"

	"github.com/c2h5oh/datasize"
	"github.com/samber/lo"
)

// Content types a storage backend can be configured to hold.
const (
	// ContentRootDir marks support for container root filesystems.
	ContentRootDir = "rootdir"
	// ContentTemplate marks support for OS templates.
	ContentTemplate = "vztmpl"
)

// Storage describes one storage backend as reported by
// `pvesh get /nodes/<node>/storage`.
type Storage struct {
	Name    string `json:"storage"`
	Type    string `json:"type"`
	Content string `json:"content"`
	Total   uint64 `json:"total"`
	Used    uint64 `json:"used"`
	Avail   uint64 `json:"avail"`
}

// Supports reports whether the backend is configured for the given content
// type.
func (s Storage) Supports(contentType string) bool {
	if s.Content == "" {
		return false
	}
	return lo.Contains(strings.Split(s.Content, ","), contentType)
}

// ContentWith returns the backend's content value with contentType appended,
// suitable for SetStorageContent.
func (s Storage) ContentWith(contentType string) string {
	if s.Content == "" {
		return contentType
	}
	return s.Content + "," + contentType
}

// UsedPercent formats the backend's used-space ratio. Backends that report
// no capacity (e.g. disabled or unscanned) yield "N/A" rather than a
// division by zero.
func (s Storage) UsedPercent() string {
	if s.Total == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.2f%%", float64(s.Used)*100/float64(s.Total))
}

// FormatSize renders a byte count in whole-GB form, e.g. "20.00 GB".
func FormatSize(bytes uint64) string {
	return fmt.Sprintf("%.2f GB", datasize.ByteSize(bytes).GBytes())
}

// FindStorage returns the backend with the given name.
func FindStorage(storages []Storage, name string) (Storage, bool) {
	return lo.Find(storages, func(s Storage) bool { return s.Name == name })
}

// StorageNames returns the backend names in listing order.
func StorageNames(storages []Storage) []string {
	return lo.Map(storages, func(s Storage, _ int) string { return s.Name })
}
