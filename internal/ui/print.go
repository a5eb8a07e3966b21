// Package ui provides styled console output for the installer CLI.
//
// Output falls into a small set of levels (info, success, warning, error,
// progress) plus framed section headings and labelled items for summaries.
// Errors go to stderr, everything else to stdout.
package ui

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// frameWidth is the inner width of section and banner frames.
const frameWidth = 65

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Infof prints an informational message.
func Infof(format string, a ...any) {
	fmt.Printf("%s %s\n", infoStyle.Render("[INFO]"), fmt.Sprintf(format, a...))
}

// Successf prints a success message.
func Successf(format string, a ...any) {
	fmt.Printf("%s %s\n", successStyle.Render("[SUCCESS]"), fmt.Sprintf(format, a...))
}

// Warningf prints a warning message.
func Warningf(format string, a ...any) {
	fmt.Printf("%s %s\n", warningStyle.Render("[WARNING]"), fmt.Sprintf(format, a...))
}

// Errorf prints an error message to stderr.
func Errorf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorStyle.Render("[ERROR]"), fmt.Sprintf(format, a...))
}

// Progressf prints a progress message from a long-running step.
func Progressf(format string, a ...any) {
	fmt.Printf("%s %s\n", progressStyle.Render("[PROGRESS]"), fmt.Sprintf(format, a...))
}

// Section prints a framed section heading.
func Section(title string) {
	rule := strings.Repeat("═", frameWidth)
	fmt.Println()
	fmt.Println(sectionStyle.Render("╔" + rule + "╗"))
	fmt.Println(sectionStyle.Render("  " + title))
	fmt.Println(sectionStyle.Render("╚" + rule + "╝"))
}

// Banner prints a framed banner with each line centered.
func Banner(lines ...string) {
	rule := strings.Repeat("═", frameWidth)
	fmt.Println(bannerStyle.Render("╔" + rule + "╗"))
	for _, line := range lines {
		fmt.Println(bannerStyle.Render("║" + center(line, frameWidth) + "║"))
	}
	fmt.Println(bannerStyle.Render("╚" + rule + "╝"))
}

// Group prints a bold group heading for summary blocks.
func Group(title string) {
	fmt.Println(groupStyle.Render(title + ":"))
}

// Item prints a labelled value under a group heading.
func Item(label, value string) {
	fmt.Printf("  %s %s %s\n", groupStyle.Render("•"), label, valueStyle.Render(value))
}

// Notef prints an operator note.
func Notef(format string, a ...any) {
	fmt.Println(noteStyle.Render(fmt.Sprintf(format, a...)))
}

// Dimf prints de-emphasized text.
func Dimf(format string, a ...any) {
	fmt.Println(dimStyle.Render(fmt.Sprintf(format, a...)))
}

// center pads s with spaces to width. Longer strings are returned as-is.
func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
