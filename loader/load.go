// Package loader reads schedule files: YAML documents mapping schedule names
// to four-field expressions under a top-level "schedules" key.
package loader

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/petal-labs/cronspec"
)

// File is the on-disk layout of a schedule file.
type File struct {
	Schedules map[string]string `yaml:"schedules"`
}

// Diagnostic reports one invalid entry in a schedule file.
type Diagnostic struct {
	Name string
	Expr string
	Err  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s (%q): %v", d.Name, d.Expr, d.Err)
}

// DiagnosticError wraps per-entry validation diagnostics as an error.
type DiagnosticError struct {
	Diagnostics []Diagnostic
}

func (e *DiagnosticError) Error() string {
	if len(e.Diagnostics) == 1 {
		return fmt.Sprintf("invalid schedule %s", e.Diagnostics[0])
	}
	return fmt.Sprintf("%d invalid schedules (first: %s)", len(e.Diagnostics), e.Diagnostics[0])
}

// Load reads a schedule file and parses every entry. On success it returns
// the schedules keyed by name. If any entry fails, it returns a
// *DiagnosticError listing every failure by name, in name order.
func Load(path string) (map[string]*cronspec.Schedule, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path from caller
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses schedule file content. See Load.
func Parse(data []byte) (map[string]*cronspec.Schedule, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}
	if len(file.Schedules) == 0 {
		return nil, fmt.Errorf("no schedules defined")
	}

	names := make([]string, 0, len(file.Schedules))
	for name := range file.Schedules {
		names = append(names, name)
	}
	sort.Strings(names)

	schedules := make(map[string]*cronspec.Schedule, len(names))
	var diags []Diagnostic
	for _, name := range names {
		expr := file.Schedules[name]
		s, err := cronspec.Parse(expr)
		if err != nil {
			diags = append(diags, Diagnostic{Name: name, Expr: expr, Err: err})
			continue
		}
		schedules[name] = s
	}

	if len(diags) > 0 {
		return nil, &DiagnosticError{Diagnostics: diags}
	}
	return schedules, nil
}
