package schema

import (
	"fmt"
	"regexp"
)

// FieldType is the closed set of value kinds a field may declare.
type FieldType string

const (
	FieldTypeString  FieldType = "string"
	FieldTypeURL     FieldType = "url"
	FieldTypeSemver  FieldType = "semver"
	FieldTypeVersion FieldType = "version"
	FieldTypeSlug    FieldType = "slug"
	FieldTypeName    FieldType = "name"
	FieldTypeLicense FieldType = "license"
)

// Valid reports whether t is one of the declared field types.
func (t FieldType) Valid() bool {
	switch t {
	case FieldTypeString, FieldTypeURL, FieldTypeSemver, FieldTypeVersion,
		FieldTypeSlug, FieldTypeName, FieldTypeLicense:
		return true
	default:
		return false
	}
}

// Field describes a single configurable value. Length bounds count runes and
// are ignored when zero. Default is nil when the field has no default.
type Field struct {
	Key         string    `json:"key" yaml:"key"`
	Stage       int       `json:"stage" yaml:"stage"`
	Required    bool      `json:"required" yaml:"required"`
	Type        FieldType `json:"type" yaml:"type"`
	Pattern     string    `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MinLength   int       `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	MaxLength   int       `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	Enum        []string  `json:"enum,omitempty" yaml:"enum,omitempty"`
	Description string    `json:"description" yaml:"description"`
	Example     string    `json:"example,omitempty" yaml:"example,omitempty"`
	Default     *string   `json:"default" yaml:"default"`

	re *regexp.Regexp
}

// HasDefault reports whether the field carries a non-nil default.
func (f Field) HasDefault() bool {
	return f.Default != nil
}

// DefaultValue returns the default or an empty string when none is declared.
func (f Field) DefaultValue() string {
	if f.Default == nil {
		return ""
	}
	return *f.Default
}

// Regexp returns the compiled pattern, or nil when the field has none. Fields
// obtained from a Registry are compiled once; hand-built fields compile on
// demand.
func (f Field) Regexp() (*regexp.Regexp, error) {
	if f.re != nil {
		return f.re, nil
	}
	if f.Pattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(f.Pattern)
	if err != nil {
		return nil, fmt.Errorf("schema: field %q pattern: %w", f.Key, err)
	}
	return re, nil
}

// Stage groups fields presented together during interactive collection.
type Stage struct {
	Number int    `json:"number" yaml:"number"`
	Title  string `json:"title" yaml:"title"`
}

// StringPtr is a convenience for declaring defaults inline.
func StringPtr(v string) *string {
	return &v
}

func cloneField(f Field) Field {
	out := f
	if len(f.Enum) > 0 {
		out.Enum = append([]string(nil), f.Enum...)
	}
	if f.Default != nil {
		out.Default = StringPtr(*f.Default)
	}
	return out
}
