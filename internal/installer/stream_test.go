package installer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		line    string
		level   Level
		message string
	}{
		{"[INFO] Updating system...", LevelInfo, "Updating system..."},
		{"[SUCCESS] System updated", LevelSuccess, "System updated"},
		{"[WARNING] low disk space", LevelWarning, "low disk space"},
		{"[ERROR] clone failed", LevelError, "clone failed"},
		{"[PROGRESS] Installing system packages (1/5)", LevelProgress, "Installing system packages (1/5)"},
		{"  [INFO] indented tag", LevelInfo, "indented tag"},
		{"plain apt output", LevelRaw, "plain apt output"},
		{"", LevelRaw, ""},
		{"[INFO]no space after tag", LevelRaw, "[INFO]no space after tag"},
	}

	for _, tt := range tests {
		level, message := Classify(tt.line)
		assert.Equal(t, tt.level, level, "line %q", tt.line)
		assert.Equal(t, tt.message, message, "line %q", tt.line)
	}
}
