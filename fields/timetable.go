// SPDX-License-Identifier: MIT

package fields

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// TimeTable maps a mesh file base name to the physical duration of one
// raw timestep.
type TimeTable map[string]float64

// LoadTimeTable decodes a timestep table. The input may be JSON or YAML;
// values may be numbers or numeric strings.
func LoadTimeTable(r io.Reader) (TimeTable, error) {
	raw := make(map[string]any)
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if err == io.EOF {
			return TimeTable{}, nil
		}
		return nil, fmt.Errorf("fields: decode time table: %w", err)
	}
	out := make(TimeTable, len(raw))
	for name, v := range raw {
		switch x := v.(type) {
		case int:
			out[name] = float64(x)
		case float64:
			out[name] = x
		case string:
			f, err := strconv.ParseFloat(x, 64)
			if err != nil {
				return nil, fmt.Errorf("fields: time table entry %q: %w", name, err)
			}
			out[name] = f
		default:
			return nil, fmt.Errorf("fields: time table entry %q has type %T", name, v)
		}
	}
	return out, nil
}

// Step returns the rescaling factor for base, if present.
func (tt TimeTable) Step(base string) (float64, bool) {
	f, ok := tt[base]
	return f, ok
}
