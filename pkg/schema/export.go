package schema

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

// MarshalJSON renders the registry as an object keyed by field, preserving
// declaration order.
func (r *Registry) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, field := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field.Key)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(field)
		if err != nil {
			return nil, fmt.Errorf("schema: marshal field %q: %w", field.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML renders the registry as an ordered list of fields.
func (r *Registry) MarshalYAML() (any, error) {
	return r.Fields(), nil
}

// OpenAPISchema exports the registry as an OpenAPI 3 object schema. Required
// fields, patterns, length bounds, enums and defaults carry over; the stage
// and field type travel as x-stage / x-field-type extensions.
func (r *Registry) OpenAPISchema() *openapi3.Schema {
	obj := openapi3.NewObjectSchema()
	obj.Title = "Theme configuration"
	if obj.Properties == nil {
		obj.Properties = make(openapi3.Schemas, len(r.fields))
	}

	for _, field := range r.fields {
		prop := openapi3.NewStringSchema()
		prop.Description = field.Description
		prop.Pattern = field.Pattern
		if field.MinLength > 0 {
			prop.MinLength = uint64(field.MinLength)
		}
		if field.MaxLength > 0 {
			maxLen := uint64(field.MaxLength)
			prop.MaxLength = &maxLen
		}
		for _, allowed := range field.Enum {
			prop.Enum = append(prop.Enum, allowed)
		}
		if field.Default != nil {
			prop.Default = *field.Default
		}
		if field.Example != "" {
			prop.Example = field.Example
		}
		switch field.Type {
		case FieldTypeURL:
			prop.Format = "uri"
		case FieldTypeSemver, FieldTypeVersion:
			prop.Format = string(field.Type)
		}
		prop.Extensions = map[string]any{
			"x-stage":      field.Stage,
			"x-field-type": string(field.Type),
		}

		obj.Properties[field.Key] = openapi3.NewSchemaRef("", prop)
		if field.Required {
			obj.Required = append(obj.Required, field.Key)
		}
	}

	return obj
}
