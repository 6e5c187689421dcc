// Package mapdata provides the map corpus model: constants, warp events, and
// edge connections.
package mapdata

// MapID is the numeric identifier assigned to a map by its position in the
// constants definition block.
type MapID int

// LastMapID is the sentinel id meaning "no fixed destination". It carries no
// dimensions and must never be resolved to coordinates.
const LastMapID MapID = 0xFF

// LastMapName is the symbolic name of the sentinel map constant.
const LastMapName = "LAST_MAP"

// Dimensions holds a map's width and height in tiles.
type Dimensions struct {
	Width  int
	Height int
}

// Direction represents a compass direction for an overworld connection.
type Direction string

// The four connection directions.
const (
	North Direction = "north"
	South Direction = "south"
	East  Direction = "east"
	West  Direction = "west"
)

// SpansWidth reports whether a connection in this direction runs along the
// horizontal edge of a map, so coordinate overlap is computed over x.
// East/west connections run along the vertical edge and overlap over y.
func (d Direction) SpansWidth() bool {
	return d == North || d == South
}

// WarpEvent is a single scripted transition point inside a map. DestMap is
// the unresolved symbolic constant of the destination; DestWarpID is a
// 1-based index into the destination map's own warp list.
type WarpEvent struct {
	X          int
	Y          int
	DestMap    string
	DestWarpID int
}

// Connection is a contiguous edge-adjacency between two maps. DestMap is the
// unresolved symbolic constant; Offset shifts source coordinates into the
// destination's coordinate space.
type Connection struct {
	Direction Direction
	DestMap   string
	Offset    int
}

// Corpus is the fully parsed source set: the constants table plus every
// map's warp events and connections, keyed by resolved map id. Warp slices
// preserve file order because warp ids reference positions in them.
type Corpus struct {
	IDs         map[string]MapID
	Dimensions  map[string]Dimensions
	Warps       map[MapID][]WarpEvent
	Connections map[MapID][]Connection
}

// NameByID returns the symbolic name registered for the given id, excluding
// the sentinel. When several names share an id (a second const_def block
// restarted the counter) the lexicographically smallest wins, keeping the
// lookup deterministic.
func (c *Corpus) NameByID(id MapID) (string, bool) {
	best := ""
	for name, nid := range c.IDs {
		if nid != id || name == LastMapName {
			continue
		}
		if best == "" || name < best {
			best = name
		}
	}
	return best, best != ""
}
