package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/checkpress-dev/checkpress/internal/model"
)

func testTemplate(id, label string) model.Template {
	return model.Template{
		ID:    id,
		Label: label,
		Page:  model.PageGeometry{Unit: model.UnitMillimeter, Width: 100, Height: 50},
		Font:  model.FontSpec{Family: "serif", Size: 4},
		Fields: []model.Field{
			{Key: "payee", X: 5, Y: 10},
		},
	}
}

func TestNewCatalog_BundledDefault(t *testing.T) {
	c := NewCatalog()

	all := c.All()
	require.Len(t, all, 1)
	assert.Equal(t, "default_tw_bank", all[0].ID)

	active, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, "default_tw_bank", active.ID)
	assert.NotEmpty(t, active.Fields)
}

func TestCatalog_FirstAddedStaysActive(t *testing.T) {
	c := NewCatalog(testTemplate("a", "A"), testTemplate("b", "B"))

	assert.Len(t, c.All(), 3)
	active, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, "default_tw_bank", active.ID)
}

func TestCatalog_SetActive(t *testing.T) {
	c := NewCatalog(testTemplate("a", "A"))

	active, ok := c.SetActive("a")
	require.True(t, ok)
	assert.Equal(t, "a", active.ID)

	// Unknown ids are a no-op, never an error.
	active, ok = c.SetActive("nope")
	require.True(t, ok)
	assert.Equal(t, "a", active.ID)
}

func TestCatalog_AddReplacesByID(t *testing.T) {
	c := NewCatalog()
	c.Add(testTemplate("a", "first"))
	c.Add(testTemplate("a", "second"))

	assert.Len(t, c.All(), 2)
	got, ok := c.SetActive("a")
	require.True(t, ok)
	assert.Equal(t, "second", got.Label)
}

func TestCatalog_AddAssignsMissingID(t *testing.T) {
	c := NewCatalog(testTemplate("", "anonymous"))

	all := c.All()
	require.Len(t, all, 2)
	assert.NotEmpty(t, all[1].ID)
	assert.NotEqual(t, all[0].ID, all[1].ID)
}

func TestParse_RejectsFieldlessTemplate(t *testing.T) {
	_, err := Parse([]byte("id: empty\nlabel: Empty\n"))
	assert.Error(t, err)

	_, err = Parse([]byte("{not yaml"))
	assert.Error(t, err)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()

	one := `
id: one
label: One
page: {unit: mm, width: 100, height: 50}
font: {family: serif, size: 4}
fields:
  - key: payee
    x: 5
    y: 10
`
	two := `
id: two
label: Two
page: {unit: px, width: 800, height: 400}
font: {family: sans-serif, size: 14}
fields:
  - static: fixed
    x: 1
    y: 2
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b_two.yml"), []byte(two), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a_one.yaml"), []byte(one), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	templates, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, templates, 2)
	assert.Equal(t, "one", templates[0].ID)
	assert.Equal(t, "two", templates[1].ID)
	require.NotNil(t, templates[1].Fields[0].Static)
	assert.Equal(t, "fixed", *templates[1].Fields[0].Static)
}

func TestLoadDir_Missing(t *testing.T) {
	templates, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, templates)
}
