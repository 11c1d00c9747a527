// Package ui provides semantic text formatting for CLI output.
//
// Formatters render with color when the terminal supports it and fall
// back to plain text decorations (backticks for commands, quotes for
// values) when NO_COLOR is set or the terminal is dumb.
//
//	ui.Code.Sprint("printvault init")   // commands
//	ui.Path.Sprint("config.json")       // file paths
//	ui.Success.Sprint("✓")              // success indicators
//	ui.Error.Sprint("✗")                // error indicators
//	ui.Info.Sprint("→")                 // informational hints
package ui
