// Package orchestrator wires the generation pipeline: raw values are
// sanitized, assembled against the registry, frozen into a placeholder map and
// walked onto a fresh destination tree. Nothing touches the filesystem until
// the configuration is known to be valid.
package orchestrator
