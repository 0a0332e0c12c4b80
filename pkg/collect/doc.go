// Package collect turns non-interactive inputs (a JSON document, CLI flags, an
// answers file) into raw configuration values. Nothing here validates or
// sanitizes; values are passed through as supplied.
package collect
