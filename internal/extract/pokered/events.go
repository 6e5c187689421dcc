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

var warpEventRe = regexp.MustCompile(`^\s*warp_event\s+(\d+),\s+(\d+),\s+(\w+),\s+(\d+)`)

// ParseWarpEvents extracts the warp events from a map object stream. Lines
// before the def_warp_events marker are ignored; scanning stops entirely at
// the first def_bg_events or def_object_events marker. File order is
// preserved: warp ids elsewhere in the corpus are 1-based positions in the
// returned slice. A stream with no warp section yields an empty slice.
func ParseWarpEvents(r io.Reader) ([]mapdata.WarpEvent, error) {
	var warps []mapdata.WarpEvent
	inWarpSection := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		if strings.Contains(line, "def_warp_events") {
			inWarpSection = true
			continue
		}
		if !inWarpSection {
			continue
		}
		if strings.Contains(line, "def_bg_events") || strings.Contains(line, "def_object_events") {
			break
		}

		m := warpEventRe.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		x, _ := strconv.Atoi(m[1])
		y, _ := strconv.Atoi(m[2])
		warpID, _ := strconv.Atoi(m[4])
		warps = append(warps, mapdata.WarpEvent{
			X:          x,
			Y:          y,
			DestMap:    m[3],
			DestWarpID: warpID,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning warp events: %w", err)
	}

	return warps, nil
}

// LoadWarpEvents reads and parses the map object file at path.
func LoadWarpEvents(path string) ([]mapdata.WarpEvent, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map object file %s: %w", path, err)
	}
	defer f.Close()

	warps, err := ParseWarpEvents(f)
	if err != nil {
		return nil, fmt.Errorf("parsing map object file %s: %w", path, err)
	}
	return warps, nil
}
