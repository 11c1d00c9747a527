// Package configs manages the CLI's own settings, as opposed to the
// configuration document the store manages for its host.
//
// Settings are stored in TOML at <user-config-dir>/printvault/settings.toml
// and carry:
//
//   - An install UUID, generated on first run, used to attribute audit
//     log entries.
//   - An optional data_dir override; when unset, key material and the
//     configuration document live under the platform data directory
//     (XDG_DATA_HOME or ~/.local/share on Unix).
//
// Global path settings are initialized at startup in UserPrintvaultSettings.
// ResolveDataDir applies the precedence flag > settings file > default.
package configs
