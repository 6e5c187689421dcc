// Package pokered parses the pokered asm source layout: the map constants
// file, per-map object files, and per-map header files.
package pokered

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cory-johannsen/warpgraph/internal/extract"
	"github.com/cory-johannsen/warpgraph/internal/mapdata"
)

var _ extract.Source = (*Source)(nil)

// Source implements extract.Source for the pokered repository layout:
//
//	constants/map_constants.asm  <- map_const definitions
//	data/maps/objects/           <- one asm file per map (warp events)
//	data/maps/headers/           <- one asm file per map (connections)
type Source struct {
	constantsFile string
	objectsDir    string
	headersDir    string
}

// NewSource constructs a Source over the three corpus locations.
func NewSource(constantsFile, objectsDir, headersDir string) *Source {
	return &Source{
		constantsFile: constantsFile,
		objectsDir:    objectsDir,
		headersDir:    headersDir,
	}
}

// Load parses the constants table, then every map object and header file in
// ascending filename order. Enumeration order is fixed so repeated runs
// produce identical artifacts and warning sequences. Files whose normalized
// name has no entry in the constants table are skipped with a warning; a
// listed file that cannot be read is fatal.
//
// Postcondition: returns a Corpus whose Warps and Connections only contain
// maps with at least one record.
func (s *Source) Load() (*mapdata.Corpus, []string, error) {
	ids, dims, err := LoadConstants(s.constantsFile)
	if err != nil {
		return nil, nil, err
	}

	corpus := &mapdata.Corpus{
		IDs:         ids,
		Dimensions:  dims,
		Warps:       make(map[mapdata.MapID][]mapdata.WarpEvent),
		Connections: make(map[mapdata.MapID][]mapdata.Connection),
	}
	var warnings []string

	objectFiles, err := asmFiles(s.objectsDir)
	if err != nil {
		return nil, nil, err
	}
	for _, path := range objectFiles {
		constant := FilenameToConstant(filepath.Base(path))
		id, ok := ids[constant]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("no map ID found for %s (%s)", constant, filepath.Base(path)))
			continue
		}
		warps, err := LoadWarpEvents(path)
		if err != nil {
			return nil, nil, err
		}
		if len(warps) > 0 {
			corpus.Warps[id] = warps
		}
	}

	headerFiles, err := asmFiles(s.headersDir)
	if err != nil {
		return nil, nil, err
	}
	for _, path := range headerFiles {
		constant := FilenameToConstant(filepath.Base(path))
		id, ok := ids[constant]
		if !ok {
			warnings = append(warnings, fmt.Sprintf("no map ID found for %s (%s)", constant, filepath.Base(path)))
			continue
		}
		connections, err := LoadConnections(path)
		if err != nil {
			return nil, nil, err
		}
		if len(connections) > 0 {
			corpus.Connections[id] = connections
		}
	}

	return corpus, warnings, nil
}

// asmFiles lists the .asm files in dir. os.ReadDir already sorts entries by
// filename, which is the enumeration order the pipeline depends on.
func asmFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".asm") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}
