// Package config manages user-level settings stored at ~/.aocgen/config.yaml
// and the AOCGEN_* environment overrides. It also loads an optional .env file
// from the project root so per-project overrides can sit next to aocgen.yaml.
package config
