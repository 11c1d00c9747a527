// Package logger provides leveled logging for Printvault CLI commands.
//
// The logger supports verbosity levels controlled by command-line flags:
//
//   - --verbose: shows info messages
//   - --debug: shows all messages including debug details
//
// Without flags only warnings and errors are shown.
//
// Commands create a logger in their PersistentPreRun and pass it down to
// the store components, which take it as an explicit constructor
// parameter rather than reaching for a global.
package logger
