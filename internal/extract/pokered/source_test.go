package pokered_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/warpgraph/internal/extract/pokered"
	"github.com/cory-johannsen/warpgraph/internal/mapdata"
)

// writeCorpus lays out a small on-disk corpus: two towns with mutual warps
// and a connection, plus an interior map with no warp section.
func writeCorpus(t *testing.T) (constantsFile, objectsDir, headersDir string) {
	t.Helper()
	root := t.TempDir()
	objectsDir = filepath.Join(root, "objects")
	headersDir = filepath.Join(root, "headers")
	require.NoError(t, os.MkdirAll(objectsDir, 0755))
	require.NoError(t, os.MkdirAll(headersDir, 0755))

	constantsFile = filepath.Join(root, "map_constants.asm")
	require.NoError(t, os.WriteFile(constantsFile, []byte(`
	const_def
	map_const PALLET_TOWN,   10, 9
	map_const VIRIDIAN_CITY, 20, 18
	map_const OAKS_LAB,      5, 6
`), 0644))

	files := map[string]string{
		filepath.Join(objectsDir, "PalletTown.asm"): `
	def_warp_events
	warp_event 5, 5, OAKS_LAB, 1
	def_bg_events
`,
		filepath.Join(objectsDir, "OaksLab.asm"): `
	def_warp_events
	warp_event 2, 11, PALLET_TOWN, 1
	def_object_events
`,
		filepath.Join(objectsDir, "ViridianCity.asm"): `
	def_object_events
`,
		filepath.Join(headersDir, "PalletTown.asm"): `
	connection north, ViridianCity, VIRIDIAN_CITY, -5
`,
		filepath.Join(headersDir, "ViridianCity.asm"): `
	connection south, PalletTown, PALLET_TOWN, 5
`,
	}
	for path, content := range files {
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	}
	return constantsFile, objectsDir, headersDir
}

func TestSourceLoad(t *testing.T) {
	constantsFile, objectsDir, headersDir := writeCorpus(t)
	src := pokered.NewSource(constantsFile, objectsDir, headersDir)

	corpus, warnings, err := src.Load()
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, mapdata.MapID(0), corpus.IDs["PALLET_TOWN"])
	assert.Equal(t, mapdata.MapID(2), corpus.IDs["OAKS_LAB"])

	require.Contains(t, corpus.Warps, mapdata.MapID(0))
	require.Contains(t, corpus.Warps, mapdata.MapID(2))
	// ViridianCity has no warp section, so it holds no entry at all.
	assert.NotContains(t, corpus.Warps, mapdata.MapID(1))

	require.Contains(t, corpus.Connections, mapdata.MapID(0))
	require.Contains(t, corpus.Connections, mapdata.MapID(1))
}

func TestSourceLoadUnknownFilenameWarns(t *testing.T) {
	constantsFile, objectsDir, headersDir := writeCorpus(t)
	require.NoError(t, os.WriteFile(filepath.Join(objectsDir, "GlitchCity.asm"), []byte(`
	def_warp_events
	warp_event 0, 0, PALLET_TOWN, 1
	def_bg_events
`), 0644))

	src := pokered.NewSource(constantsFile, objectsDir, headersDir)
	corpus, warnings, err := src.Load()
	require.NoError(t, err)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "GLITCH_CITY")
	// The rest of the corpus still loaded.
	assert.Contains(t, corpus.Warps, mapdata.MapID(0))
}

func TestSourceLoadMissingConstantsFatal(t *testing.T) {
	_, objectsDir, headersDir := writeCorpus(t)
	src := pokered.NewSource(filepath.Join(t.TempDir(), "nope.asm"), objectsDir, headersDir)
	_, _, err := src.Load()
	assert.Error(t, err)
}

func TestSourceLoadMissingDirFatal(t *testing.T) {
	constantsFile, objectsDir, _ := writeCorpus(t)
	src := pokered.NewSource(constantsFile, objectsDir, filepath.Join(t.TempDir(), "nope"))
	_, _, err := src.Load()
	assert.Error(t, err)
}

func TestSourceLoadNonASMFilesIgnored(t *testing.T) {
	constantsFile, objectsDir, headersDir := writeCorpus(t)
	require.NoError(t, os.WriteFile(filepath.Join(objectsDir, "README.md"), []byte("notes"), 0644))

	src := pokered.NewSource(constantsFile, objectsDir, headersDir)
	_, warnings, err := src.Load()
	require.NoError(t, err)
	assert.Empty(t, warnings)
}
