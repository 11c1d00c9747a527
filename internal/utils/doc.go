// Package utils provides small terminal helpers shared by the CLI
// commands, chiefly no-echo secret input via golang.org/x/term with a
// plain-stdin fallback for non-interactive use.
package utils
