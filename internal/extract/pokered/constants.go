package pokered

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/cory-johannsen/warpgraph/internal/mapdata"
)

var mapConstRe = regexp.MustCompile(`^\s*map_const\s+(\w+),\s+(\d+),\s+(\d+)`)

// ParseConstants folds over the constants stream and returns the name→id and
// name→dimensions tables. Ids are assigned sequentially within a definition
// block; a const_def line restarts the counter at 0. Lines matching neither
// grammar are ignored. The LAST_MAP sentinel is always present in the id
// table and never in the dimension table.
//
// Postcondition: returns non-nil maps; the id map contains LAST_MAP → 255.
func ParseConstants(r io.Reader) (map[string]mapdata.MapID, map[string]mapdata.Dimensions, error) {
	ids := make(map[string]mapdata.MapID)
	dims := make(map[string]mapdata.Dimensions)

	counter := mapdata.MapID(0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if m := mapConstRe.FindStringSubmatch(line); m != nil {
			width, _ := strconv.Atoi(m[2])
			height, _ := strconv.Atoi(m[3])
			ids[m[1]] = counter
			dims[m[1]] = mapdata.Dimensions{Width: width, Height: height}
			counter++
			continue
		}
		if strings.Contains(line, "const_def") {
			counter = 0
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("scanning constants: %w", err)
	}

	ids[mapdata.LastMapName] = mapdata.LastMapID

	return ids, dims, nil
}

// LoadConstants reads and parses the constants file at path. A missing or
// unreadable file is a configuration error and aborts the run.
func LoadConstants(path string) (map[string]mapdata.MapID, map[string]mapdata.Dimensions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening constants file %s: %w", path, err)
	}
	defer f.Close()

	ids, dims, err := ParseConstants(f)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing constants file %s: %w", path, err)
	}
	return ids, dims, nil
}
