package installer

import "strings"

// Level classifies a line of install script output.
type Level int

// Levels, in the order the script's helper functions emit them.
const (
	LevelRaw Level = iota
	LevelInfo
	LevelSuccess
	LevelWarning
	LevelError
	LevelProgress
)

var prefixes = []struct {
	tag   string
	level Level
}{
	{"[INFO] ", LevelInfo},
	{"[SUCCESS] ", LevelSuccess},
	{"[WARNING] ", LevelWarning},
	{"[ERROR] ", LevelError},
	{"[PROGRESS] ", LevelProgress},
}

// Classify splits an install script output line into its level and message.
// Lines without a recognized tag come back as LevelRaw with the original
// (trimmed) text.
func Classify(line string) (Level, string) {
	trimmed := strings.TrimSpace(line)
	for _, p := range prefixes {
		if strings.HasPrefix(trimmed, p.tag) {
			return p.level, strings.TrimPrefix(trimmed, p.tag)
		}
	}
	return LevelRaw, trimmed
}
