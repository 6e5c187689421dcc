package pokered

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/cory-johannsen/warpgraph/internal/mapdata"
)

var connectionRe = regexp.MustCompile(`^\s*connection\s+(north|south|east|west),\s+(\w+),\s+(\w+),\s+(-?\d+)`)

// ParseConnections extracts the edge connections from a map header stream.
// The whole stream is scanned; there are no section delimiters. The second
// capture is the human-readable label and is discarded in favor of the
// constant-cased destination name.
func ParseConnections(r io.Reader) ([]mapdata.Connection, error) {
	var connections []mapdata.Connection

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := connectionRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		offset, _ := strconv.Atoi(m[4])
		connections = append(connections, mapdata.Connection{
			Direction: mapdata.Direction(m[1]),
			DestMap:   m[3],
			Offset:    offset,
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning connections: %w", err)
	}

	return connections, nil
}

// LoadConnections reads and parses the map header file at path.
func LoadConnections(path string) ([]mapdata.Connection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening map header file %s: %w", path, err)
	}
	defer f.Close()

	connections, err := ParseConnections(f)
	if err != nil {
		return nil, fmt.Errorf("parsing map header file %s: %w", path, err)
	}
	return connections, nil
}
