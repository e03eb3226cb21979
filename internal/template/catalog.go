// Package template holds named check templates and tracks the active
// one. Templates are immutable once loaded; the catalog is the only
// mutable state in the core and expects a single-threaded host.
package template

import (
	_ "embed"
	"fmt"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/checkpress-dev/checkpress/internal/model"
)

//go:embed default_tw_bank.yaml
var defaultTemplateYAML []byte

// Catalog is an in-memory template registry with one active template.
type Catalog struct {
	templates map[string]model.Template
	order     []string
	activeID  string
}

// NewCatalog creates a catalog seeded with the bundled default
// template followed by any extras. The first template added becomes
// active.
func NewCatalog(extra ...model.Template) *Catalog {
	c := &Catalog{templates: make(map[string]model.Template)}

	def, err := Parse(defaultTemplateYAML)
	if err != nil {
		// The bundled template is compiled in; a parse failure is a
		// packaging mistake, not a runtime condition.
		panic(fmt.Sprintf("bundled template: %v", err))
	}
	c.Add(def)

	for _, t := range extra {
		c.Add(t)
	}
	return c
}

// All returns every template in insertion order.
func (c *Catalog) All() []model.Template {
	out := make([]model.Template, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.templates[id])
	}
	return out
}

// Active returns the active template.
func (c *Catalog) Active() (model.Template, bool) {
	t, ok := c.templates[c.activeID]
	return t, ok
}

// SetActive switches the active template by id. An unknown id is a
// no-op; the current active template is returned either way.
func (c *Catalog) SetActive(id string) (model.Template, bool) {
	if _, ok := c.templates[id]; ok {
		c.activeID = id
	}
	return c.Active()
}

// Add registers a template, replacing any existing one with the same
// id. A template without an id is assigned one. The first template
// ever added becomes active.
func (c *Catalog) Add(t model.Template) {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if _, exists := c.templates[t.ID]; !exists {
		c.order = append(c.order, t.ID)
	}
	c.templates[t.ID] = t
	if c.activeID == "" {
		c.activeID = t.ID
	}
}

// Parse decodes a YAML template document.
func Parse(data []byte) (model.Template, error) {
	var t model.Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return model.Template{}, fmt.Errorf("parsing template: %w", err)
	}
	if len(t.Fields) == 0 {
		return model.Template{}, fmt.Errorf("template %q declares no fields", t.ID)
	}
	return t, nil
}
