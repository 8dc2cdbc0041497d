package placement

import (
	"fmt"
	"sort"
	"strings"
)

// FilterSpecs keeps the specs whose names appear in names, matched
// case-insensitively and preserving spec order. Names that match
// nothing are an error so a typo never silently shrinks the run. An
// empty filter keeps everything.
func FilterSpecs(specs []ApplicationSpec, names []string) ([]ApplicationSpec, error) {
	if len(names) == 0 {
		return specs, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		key := strings.ToLower(strings.TrimSpace(n))
		if key == "" {
			continue
		}
		wanted[key] = false
	}

	filtered := make([]ApplicationSpec, 0, len(specs))
	for _, spec := range specs {
		key := strings.ToLower(spec.Name)
		if _, ok := wanted[key]; ok {
			wanted[key] = true
			filtered = append(filtered, spec)
		}
	}

	var unknown []string
	for name, matched := range wanted {
		if !matched {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return nil, fmt.Errorf("no configured application matches: %s", strings.Join(unknown, ", "))
	}
	return filtered, nil
}
