// Package file provides file-based implementations of driven port
// interfaces. These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//
// Settings resolves the typed configuration consumed by the wiring
// layer from a ConfigStore plus environment overrides.
package file
