package graph

import (
	"encoding/json"
	"fmt"

	"github.com/cory-johannsen/warpgraph/internal/mapdata"
)

// mapInfo mirrors the map_info artifact layout. Field order matches the
// sorted-key output of the artifact's consumers.
type mapInfo struct {
	MapDimensions map[string]dimensionsJSON `json:"map_dimensions"`
	MapIDs        map[string]int            `json:"map_ids"`
}

type dimensionsJSON struct {
	Height int `json:"height"`
	Width  int `json:"width"`
}

// MarshalTransitions renders the transition graph as indented JSON with
// lexicographically sorted keys. Output is byte-identical for equal graphs.
func MarshalTransitions(g *TransitionGraph) ([]byte, error) {
	data, err := json.MarshalIndent(g.Transitions(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialising transitions: %w", err)
	}
	return data, nil
}

// MarshalMapInfo renders the constants table as the map_info artifact:
// name→id and name→dimensions mappings, keys sorted. The sentinel appears
// in map_ids but never in map_dimensions.
func MarshalMapInfo(corpus *mapdata.Corpus) ([]byte, error) {
	info := mapInfo{
		MapDimensions: make(map[string]dimensionsJSON, len(corpus.Dimensions)),
		MapIDs:        make(map[string]int, len(corpus.IDs)),
	}
	for name, id := range corpus.IDs {
		info.MapIDs[name] = int(id)
	}
	for name, dims := range corpus.Dimensions {
		info.MapDimensions[name] = dimensionsJSON{Height: dims.Height, Width: dims.Width}
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serialising map info: %w", err)
	}
	return data, nil
}
