package collect

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/goliatone/go-themegen/pkg/config"
	"github.com/goliatone/go-themegen/pkg/schema"
)

// RegisterFlags declares one string flag per registry field on fs. Fields
// whose name is already taken on fs are left alone.
func RegisterFlags(fs *pflag.FlagSet, reg *schema.Registry) {
	for _, field := range reg.Fields() {
		if fs.Lookup(field.Key) != nil {
			continue
		}
		usage := field.Description
		if field.Example != "" {
			usage = fmt.Sprintf("%s (e.g. %s)", usage, field.Example)
		}
		fs.String(field.Key, "", usage)
	}
}

// FromFlags returns the registry fields explicitly set on fs. Flags left at
// their zero value stay absent.
func FromFlags(fs *pflag.FlagSet, reg *schema.Registry) config.Values {
	values := config.Values{}
	for _, key := range reg.Keys() {
		flag := fs.Lookup(key)
		if flag == nil || !flag.Changed {
			continue
		}
		values[key] = flag.Value.String()
	}
	return values
}

// ParseArgs parses --key value and --key=value pairs for every registry field.
// Unrecognized flags and positional arguments are ignored.
func ParseArgs(args []string, reg *schema.Registry) (config.Values, error) {
	fs := pflag.NewFlagSet("themegen", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	RegisterFlags(fs, reg)

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("collect: parse flags: %w", err)
	}
	return FromFlags(fs, reg), nil
}
