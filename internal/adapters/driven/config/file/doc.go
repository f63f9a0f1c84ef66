// Package file persists application configuration as TOML in the
// gardenlog config directory.
package file
