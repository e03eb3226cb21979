package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/checkpress-dev/checkpress/internal/model"
)

// LoadFile reads a single YAML template file.
func LoadFile(path string) (t model.Template, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("reading template %s: %w", path, err)
	}
	return Parse(data)
}

// LoadDir reads every *.yaml / *.yml file in dir, in name order. A
// missing directory yields no templates.
func LoadDir(dir string) ([]model.Template, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading template dir: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if ext == ".yaml" || ext == ".yml" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var templates []model.Template
	for _, name := range names {
		t, err := LoadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		templates = append(templates, t)
	}
	return templates, nil
}
