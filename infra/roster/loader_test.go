package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mholweger/dualmeet/core/swimtime"
)

func TestLoad(t *testing.T) {
	doc := `{
		"team": "Central High",
		"athletes": {
			"Alice": {"50 free": "22.10", "100 free": "48.90"},
			"Bob": {"50 free": "21.90", "100 fly": "DNS"}
		}
	}`
	path := filepath.Join(t.TempDir(), "roster.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	team, m, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Central High", team)
	require.Equal(t, 2, m.Len())
	require.InDelta(t, 21.90, m.Time("Bob", "50 free"), 1e-9)
	require.False(t, swimtime.IsValid(m.Time("Bob", "100 fly")))

	ranked := m.EventTimes("50 free")
	require.Equal(t, "Bob", ranked[0].Athlete)
	require.Equal(t, "Alice", ranked[1].Athlete)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
}

func TestLoadBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))
	_, _, err := Load(path)
	require.Error(t, err)
}

// Map iteration must not leak into athlete discovery order.
func TestMatrixOrderDeterministic(t *testing.T) {
	f := File{Athletes: map[string]map[string]string{
		"Zoe":   {"50 free": "22.00"},
		"Amy":   {"50 free": "22.00"},
		"Milly": {"50 free": "22.00"},
	}}
	for i := 0; i < 10; i++ {
		m := f.Matrix()
		ranked := m.EventTimes("50 free")
		require.Equal(t, []string{"Amy", "Milly", "Zoe"},
			[]string{ranked[0].Athlete, ranked[1].Athlete, ranked[2].Athlete})
	}
}
