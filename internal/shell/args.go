package shell

import (
	"fmt"
	"strconv"
	"strings"

	"moodplay/pkg/moodtypes"
)

// ArgOptions holds option values parsed from a shell line. It implements moodtypes.Options.
type ArgOptions map[string]interface{}

// String returns a string option.
func (a ArgOptions) String(name string) (string, bool) {
	v, ok := a[name].(string)
	return v, ok
}

// Int returns an integer option.
func (a ArgOptions) Int(name string) (int, bool) {
	v, ok := a[name].(int)
	return v, ok
}

// Bool returns a boolean option.
func (a ArgOptions) Bool(name string) (bool, bool) {
	v, ok := a[name].(bool)
	return v, ok
}

// ParseArgs parses shell words against a command's option declarations.
//
// Words of the form key=value set the named option. A bare word naming a boolean
// option sets it to true. Any other word fills the next string option not yet set,
// in declaration order.
func ParseArgs(specs []moodtypes.OptionSpec, args []string) (ArgOptions, error) {
	byName := make(map[string]moodtypes.OptionSpec, len(specs))
	for _, spec := range specs {
		byName[spec.Name] = spec
	}

	opts := ArgOptions{}
	for _, arg := range args {
		if arg == "" {
			continue
		}

		if key, value, ok := strings.Cut(arg, "="); ok {
			spec, known := byName[key]
			if !known {
				return nil, fmt.Errorf("unknown option: %s", key)
			}
			v, err := convert(spec, value)
			if err != nil {
				return nil, err
			}
			opts[key] = v
			continue
		}

		if spec, known := byName[arg]; known && spec.Type == moodtypes.OptionBoolean {
			opts[arg] = true
			continue
		}

		filled := false
		for _, spec := range specs {
			if spec.Type != moodtypes.OptionString {
				continue
			}
			if _, set := opts[spec.Name]; set {
				continue
			}
			opts[spec.Name] = arg
			filled = true
			break
		}
		if !filled {
			return nil, fmt.Errorf("unexpected argument: %s", arg)
		}
	}

	for _, spec := range specs {
		if _, set := opts[spec.Name]; spec.Required && !set {
			return nil, fmt.Errorf("missing required option: %s", spec.Name)
		}
	}
	return opts, nil
}

func convert(spec moodtypes.OptionSpec, value string) (interface{}, error) {
	switch spec.Type {
	case moodtypes.OptionInteger:
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("option %s must be a whole number", spec.Name)
		}
		if spec.MinValue != 0 && n < spec.MinValue {
			return nil, fmt.Errorf("option %s must be at least %d", spec.Name, spec.MinValue)
		}
		if spec.MaxValue != 0 && n > spec.MaxValue {
			return nil, fmt.Errorf("option %s must be at most %d", spec.Name, spec.MaxValue)
		}
		return n, nil
	case moodtypes.OptionBoolean:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("option %s must be true or false", spec.Name)
		}
		return b, nil
	default:
		return value, nil
	}
}
