// Package schema declares the typed configuration fields a theme scaffold
// accepts. A Registry is an immutable, explicitly constructed value: callers
// build one with New (or Default for the built-in block theme fields) and pass
// it by reference to the validator, assembler, sanitizer and collectors. Field
// order is significant for staged prompting and for every export format
// (JSON, YAML and an OpenAPI 3 object schema).
package schema
