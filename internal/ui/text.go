package ui

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// Formatter applies semantic formatting to text.
type Formatter struct {
	color  *color.Color
	prefix string
	suffix string
}

// Semantic formatters for CLI output. When colors are unavailable the
// formatter falls back to its text decoration instead.
var (
	// Success marks successful outcomes ("✓").
	Success = Formatter{color: color.New(color.FgGreen)}
	// Error marks failures ("✗").
	Error = Formatter{color: color.New(color.FgRed)}
	// Info marks hints and follow-up instructions ("→").
	Info = Formatter{color: color.New(color.FgCyan)}
	// Code marks commands the user can run.
	Code = Formatter{color: color.New(color.FgYellow), prefix: "`", suffix: "`"}
	// Path marks file paths.
	Path = Formatter{color: color.New(color.FgBlue)}
	// Highlight marks user-provided values such as field names.
	Highlight = Formatter{color: color.New(color.FgMagenta), prefix: "'", suffix: "'"}
)

// Sprint formats the arguments and returns the resulting string.
func (f Formatter) Sprint(a ...interface{}) string {
	text := fmt.Sprint(a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// Sprintf formats according to a format specifier and returns the resulting string.
func (f Formatter) Sprintf(format string, a ...interface{}) string {
	text := fmt.Sprintf(format, a...)
	if noColor() {
		return f.prefix + text + f.suffix
	}
	return f.color.Sprint(text)
}

// EnsureNewline ensures the string ends with a newline character.
func EnsureNewline(s string) string {
	if len(s) == 0 || s[len(s)-1] != '\n' {
		return s + "\n"
	}
	return s
}

// noColor returns true if color output should be disabled.
func noColor() bool {
	// Respect NO_COLOR (https://no-color.org/).
	if _, exists := os.LookupEnv("NO_COLOR"); exists {
		return true
	}
	// Also respect fatih/color's own terminal detection.
	return color.NoColor
}
