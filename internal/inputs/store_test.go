package inputs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_MissingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "inputs.yaml"))
	require.NoError(t, err)
	assert.Empty(t, s.Get("any"))
}

func TestStore_SetSaveReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.yaml")

	s, err := Open(path)
	require.NoError(t, err)
	s.Set("default_tw_bank", "check_no", "AB1234567")
	s.Set("default_tw_bank", "check_no", "AB7654321") // last write wins
	s.Set("other", "check_no", "XY0000001")
	require.NoError(t, s.Save())

	s2, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"check_no": "AB7654321"}, s2.Get("default_tw_bank"))
	assert.Equal(t, map[string]string{"check_no": "XY0000001"}, s2.Get("other"))
	assert.Empty(t, s2.Get("unknown"))
}

func TestGet_ReturnsCopy(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "inputs.yaml"))
	require.NoError(t, err)
	s.Set("t", "k", "v")

	got := s.Get("t")
	got["k"] = "mutated"
	assert.Equal(t, "v", s.Get("t")["k"])
}

func TestOpen_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	_, err := Open(path)
	assert.Error(t, err)
}
