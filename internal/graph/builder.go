package graph

import (
	"sort"

	"go.uber.org/zap"

	"github.com/cory-johannsen/warpgraph/internal/mapdata"
)

// Stats holds the builder's diagnostic counters.
type Stats struct {
	// WarpTransitions is the number of directed keys holding a warp after
	// the warp pass.
	WarpTransitions int
	// ConnectionWrites counts directed key writes performed by the
	// connection pass. Each qualifying boundary coordinate writes both
	// directed keys, so this exceeds the number of distinct overworld
	// pairs.
	ConnectionWrites int
	// Warnings is the number of records skipped for resolution failures.
	Warnings int
}

// Builder resolves a parsed corpus into a TransitionGraph. Resolution
// failures are logged as warnings and the offending record skipped; the
// builder never aborts on bad records.
type Builder struct {
	policy Policy
	logger *zap.Logger
}

// NewBuilder constructs a Builder.
//
// Precondition: logger must be non-nil.
func NewBuilder(policy Policy, logger *zap.Logger) *Builder {
	return &Builder{policy: policy, logger: logger}
}

// Build runs the two resolution passes, warps first then connections, and
// returns the populated graph with its counters. The pass order is
// observable: when a pair is reachable both ways the overwrite policy
// decides which kind survives.
func (b *Builder) Build(corpus *mapdata.Corpus) (*TransitionGraph, Stats) {
	g := New(b.policy)
	var stats Stats

	b.resolveWarps(corpus, g, &stats)
	stats.WarpTransitions = g.CountKind(KindWarp)
	b.resolveConnections(corpus, g, &stats)

	return g, stats
}

func (b *Builder) resolveWarps(corpus *mapdata.Corpus, g *TransitionGraph, stats *Stats) {
	for _, srcID := range sortedIDs(corpus.Warps) {
		for _, warp := range corpus.Warps[srcID] {
			destID, ok := corpus.IDs[warp.DestMap]
			if !ok {
				b.logger.Warn("unknown destination map",
					zap.String("dest_map", warp.DestMap),
					zap.Int("source_map_id", int(srcID)))
				stats.Warnings++
				continue
			}

			// LAST_MAP warps have no fixed destination.
			if destID == mapdata.LastMapID {
				continue
			}

			destWarps, ok := corpus.Warps[destID]
			if !ok {
				b.logger.Warn("no warp data for destination map",
					zap.String("dest_map", warp.DestMap),
					zap.Int("dest_map_id", int(destID)))
				stats.Warnings++
				continue
			}

			// Warp ids are 1-indexed.
			destIdx := warp.DestWarpID - 1
			if destIdx < 0 || destIdx >= len(destWarps) {
				b.logger.Warn("invalid warp id",
					zap.Int("warp_id", warp.DestWarpID),
					zap.String("dest_map", warp.DestMap),
					zap.Int("dest_warp_count", len(destWarps)))
				stats.Warnings++
				continue
			}

			g.Record(srcID, destID, KindWarp)
		}
	}
}

func (b *Builder) resolveConnections(corpus *mapdata.Corpus, g *TransitionGraph, stats *Stats) {
	for _, srcID := range sortedIDs(corpus.Connections) {
		srcName, ok := corpus.NameByID(srcID)
		if !ok {
			b.logger.Warn("no name found for map id", zap.Int("map_id", int(srcID)))
			stats.Warnings++
			continue
		}
		srcDims, ok := corpus.Dimensions[srcName]
		if !ok {
			b.logger.Warn("no dimensions found for map",
				zap.String("map", srcName), zap.Int("map_id", int(srcID)))
			stats.Warnings++
			continue
		}

		for _, conn := range corpus.Connections[srcID] {
			destID, ok := corpus.IDs[conn.DestMap]
			if !ok {
				b.logger.Warn("unknown destination map",
					zap.String("dest_map", conn.DestMap),
					zap.String("source_map", srcName))
				stats.Warnings++
				continue
			}
			destDims, ok := corpus.Dimensions[conn.DestMap]
			if !ok {
				b.logger.Warn("no dimensions found for destination map",
					zap.String("dest_map", conn.DestMap))
				stats.Warnings++
				continue
			}

			// Walk the shared boundary and record the pair once per
			// coordinate that lands inside the destination.
			span := srcDims.Height
			limit := destDims.Height
			if conn.Direction.SpansWidth() {
				span = srcDims.Width
				limit = destDims.Width
			}
			for c := 0; c < span; c++ {
				destCoord := c + conn.Offset
				if destCoord < 0 || destCoord >= limit {
					continue
				}
				g.Record(srcID, destID, KindOverworld)
				stats.ConnectionWrites += 2
			}
		}
	}
}

// sortedIDs returns the map ids in ascending order so pass output, and with
// it warning order, is reproducible across runs.
func sortedIDs[V any](m map[mapdata.MapID]V) []mapdata.MapID {
	ids := make([]mapdata.MapID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
