package schema

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strings"
)

// ErrUnknownField is returned when a lookup names a key the registry does not
// declare.
var ErrUnknownField = errors.New("schema: unknown field")

// Registry holds an ordered, immutable set of field descriptors. The zero
// value is not usable; construct registries with New or Default.
type Registry struct {
	fields []Field
	index  map[string]int
	stages []Stage
}

// New validates the supplied fields and returns a registry preserving their
// declaration order. Stage titles are optional; stages referenced by fields
// without a title are listed as "Stage N".
func New(stages []Stage, fields []Field) (*Registry, error) {
	if len(fields) == 0 {
		return nil, errors.New("schema: at least one field is required")
	}

	r := &Registry{
		fields: make([]Field, 0, len(fields)),
		index:  make(map[string]int, len(fields)),
	}

	titles := make(map[int]string, len(stages))
	for _, stage := range stages {
		if stage.Number < 1 {
			return nil, fmt.Errorf("schema: stage %d must be positive", stage.Number)
		}
		titles[stage.Number] = strings.TrimSpace(stage.Title)
	}

	for _, raw := range fields {
		field := cloneField(raw)
		if err := checkField(field); err != nil {
			return nil, err
		}
		if _, exists := r.index[field.Key]; exists {
			return nil, fmt.Errorf("schema: duplicate field %q", field.Key)
		}
		if field.Pattern != "" {
			re, err := regexp.Compile(field.Pattern)
			if err != nil {
				return nil, fmt.Errorf("schema: field %q pattern: %w", field.Key, err)
			}
			field.re = re
		}
		r.index[field.Key] = len(r.fields)
		r.fields = append(r.fields, field)
		if _, ok := titles[field.Stage]; !ok {
			titles[field.Stage] = ""
		}
	}

	numbers := make([]int, 0, len(titles))
	for n := range titles {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)
	for _, n := range numbers {
		title := titles[n]
		if title == "" {
			title = fmt.Sprintf("Stage %d", n)
		}
		r.stages = append(r.stages, Stage{Number: n, Title: title})
	}

	return r, nil
}

// MustNew panics when New fails. Useful for package-level fixtures in tests.
func MustNew(stages []Stage, fields []Field) *Registry {
	r, err := New(stages, fields)
	if err != nil {
		panic(err)
	}
	return r
}

func checkField(f Field) error {
	if strings.TrimSpace(f.Key) == "" {
		return errors.New("schema: field key is required")
	}
	if !f.Type.Valid() {
		return fmt.Errorf("schema: field %q has unsupported type %q", f.Key, f.Type)
	}
	if f.Stage < 1 {
		return fmt.Errorf("schema: field %q stage must be positive", f.Key)
	}
	if f.MinLength < 0 || f.MaxLength < 0 {
		return fmt.Errorf("schema: field %q length bounds must not be negative", f.Key)
	}
	if f.MaxLength > 0 && f.MinLength > f.MaxLength {
		return fmt.Errorf("schema: field %q minLength exceeds maxLength", f.Key)
	}
	if f.Required && f.Default != nil {
		return fmt.Errorf("schema: required field %q must not declare a default", f.Key)
	}
	if f.Default != nil && len(f.Enum) > 0 && !slices.Contains(f.Enum, *f.Default) {
		return fmt.Errorf("schema: field %q default %q is not an allowed value", f.Key, *f.Default)
	}
	return nil
}

// Field returns the descriptor registered under key.
func (r *Registry) Field(key string) (Field, error) {
	idx, ok := r.index[key]
	if !ok {
		return Field{}, fmt.Errorf("%w: %q", ErrUnknownField, key)
	}
	return cloneField(r.fields[idx]), nil
}

// Has reports whether key is declared.
func (r *Registry) Has(key string) bool {
	_, ok := r.index[key]
	return ok
}

// Fields returns every descriptor in declaration order.
func (r *Registry) Fields() []Field {
	out := make([]Field, len(r.fields))
	for i, f := range r.fields {
		out[i] = cloneField(f)
	}
	return out
}

// Keys returns the field keys in declaration order.
func (r *Registry) Keys() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Key
	}
	return out
}

// Stage returns the fields declared for stage n, in declaration order. An
// unknown stage yields an empty slice.
func (r *Registry) Stage(n int) []Field {
	var out []Field
	for _, f := range r.fields {
		if f.Stage == n {
			out = append(out, cloneField(f))
		}
	}
	return out
}

// Stages lists the stages in ascending order.
func (r *Registry) Stages() []Stage {
	return append([]Stage(nil), r.stages...)
}
