// Package cli defines the Cobra command tree for the aocgen CLI. Each file
// registers one top-level command with the root command. Commands delegate to
// internal packages for the actual work and only handle flag parsing, config
// precedence and output formatting.
package cli
