package collect

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-themegen/pkg/config"
)

// FromFile loads an answers file holding a flat object of field values. JSON
// is tried first, YAML second.
func FromFile(fsys afero.Fs, path string) (config.Values, error) {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("collect: read answers %s: %w", path, err)
	}
	return parseAnswers(data, path)
}

func parseAnswers(data []byte, source string) (config.Values, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("collect: answers file %s is empty", source)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		doc = nil
		if yerr := yaml.Unmarshal(data, &doc); yerr != nil || doc == nil {
			return nil, fmt.Errorf("collect: parse %s: invalid JSON or YAML", source)
		}
	}

	values, err := fromMap(doc)
	if err != nil {
		return nil, fmt.Errorf("collect: answers %s: %w", source, err)
	}
	return values, nil
}
