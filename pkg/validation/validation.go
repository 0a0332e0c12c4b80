// Package validation checks candidate configuration values against their
// schema descriptors. Validate is a pure function used identically for values
// that came from prompts, JSON, answers files or CLI flags.
package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"slices"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/goliatone/go-themegen/pkg/schema"
)

var (
	semverPattern  = regexp.MustCompile(`^\d+\.\d+\.\d+(-[a-zA-Z0-9.-]+)?$`)
	versionPattern = regexp.MustCompile(`^\d+\.\d+(\.\d+)?$`)
)

// Result captures the outcome of validating a whole configuration. Errors
// come from required fields and gate generation; warnings come from optional
// fields and are advisory.
type Result struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate returns every constraint value violates. A required field with an
// empty value yields a single violation and skips the remaining checks; an
// optional empty value is always accepted.
func Validate(key, value string, field schema.Field) []string {
	if value == "" {
		if field.Required {
			return []string{fmt.Sprintf("%s is required", key)}
		}
		return nil
	}

	var violations []string
	violations = append(violations, checkConstraints(key, value, field)...)

	switch field.Type {
	case schema.FieldTypeString, schema.FieldTypeSlug, schema.FieldTypeName, schema.FieldTypeLicense:
		// constraint checks above cover string-like types
	case schema.FieldTypeURL:
		violations = append(violations, checkURL(key, value)...)
	case schema.FieldTypeSemver:
		if !semverPattern.MatchString(value) {
			violations = append(violations, fmt.Sprintf("%s must be valid semver (e.g., 1.0.0)", key))
		}
	case schema.FieldTypeVersion:
		if !versionPattern.MatchString(value) {
			violations = append(violations, fmt.Sprintf("%s must be a valid version (e.g., 6.0 or 8.0.0)", key))
		}
	default:
		violations = append(violations, fmt.Sprintf("%s has unsupported type %q", key, field.Type))
	}

	return violations
}

func checkConstraints(key, value string, field schema.Field) []string {
	var violations []string

	re, err := field.Regexp()
	if err != nil {
		violations = append(violations, fmt.Sprintf("%s has an invalid pattern: %v", key, err))
	} else if re != nil && !re.MatchString(value) {
		violations = append(violations, fmt.Sprintf("%s must match pattern: %s", key, field.Pattern))
	}

	length := utf8.RuneCountInString(value)
	if field.MinLength > 0 && length < field.MinLength {
		violations = append(violations, fmt.Sprintf("%s must be at least %d characters", key, field.MinLength))
	}
	if field.MaxLength > 0 && length > field.MaxLength {
		violations = append(violations, fmt.Sprintf("%s must be at most %d characters", key, field.MaxLength))
	}
	if len(field.Enum) > 0 && !slices.Contains(field.Enum, value) {
		violations = append(violations, fmt.Sprintf("%s must be one of: %s", key, strings.Join(field.Enum, ", ")))
	}

	return violations
}

func checkURL(key, value string) []string {
	parsed, err := url.Parse(value)
	if err != nil || !parsed.IsAbs() || (parsed.Opaque == "" && parsed.Host == "") {
		return []string{fmt.Sprintf("%s must be a valid URL", key)}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return []string{fmt.Sprintf("%s must use http or https protocol", key)}
	}
	return nil
}

// ValidateValues validates every registry field against values, in
// declaration order. Missing keys validate as empty strings. Keys the registry
// does not declare are reported as warnings in sorted order.
func ValidateValues(reg *schema.Registry, values map[string]string) Result {
	result := Result{Errors: []string{}, Warnings: []string{}}

	for _, field := range reg.Fields() {
		violations := Validate(field.Key, values[field.Key], field)
		if len(violations) == 0 {
			continue
		}
		if field.Required {
			result.Errors = append(result.Errors, violations...)
		} else {
			result.Warnings = append(result.Warnings, violations...)
		}
	}

	result.Warnings = append(result.Warnings, UnknownKeys(reg, values)...)
	result.Valid = len(result.Errors) == 0
	return result
}

// UnknownKeys returns one warning per key the registry does not declare.
func UnknownKeys(reg *schema.Registry, values map[string]string) []string {
	var unknown []string
	for key := range values {
		if !reg.Has(key) {
			unknown = append(unknown, key)
		}
	}
	sort.Strings(unknown)

	out := make([]string, 0, len(unknown))
	for _, key := range unknown {
		out = append(out, fmt.Sprintf("%s is not a recognized field and was ignored", key))
	}
	return out
}

// ValidateStage validates only the fields declared for stage, returning the
// violations of its required fields.
func ValidateStage(reg *schema.Registry, stage int, values map[string]string) []string {
	var errs []string
	for _, field := range reg.Stage(stage) {
		if !field.Required {
			continue
		}
		errs = append(errs, Validate(field.Key, values[field.Key], field)...)
	}
	return errs
}
