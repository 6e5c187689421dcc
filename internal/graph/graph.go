// Package graph builds and serializes the undirected map transition graph.
package graph

import (
	"fmt"
	"sort"

	"github.com/cory-johannsen/warpgraph/internal/mapdata"
)

// Kind classifies how two maps are reachable from each other.
type Kind string

// The two transition kinds.
const (
	KindWarp      Kind = "warp"
	KindOverworld Kind = "overworld"
)

// Policy decides the winner when a map pair is written more than once with
// different kinds. The connection pass runs after the warp pass, so under
// PolicyLastWriteWins a pair that is both warp- and overworld-adjacent ends
// up "overworld".
type Policy string

// Supported overwrite policies.
const (
	PolicyLastWriteWins Policy = "last-write-wins"
	PolicyKeepExisting  Policy = "keep-existing"
)

// ParsePolicy converts a configuration string into a Policy.
//
// Postcondition: returns a valid Policy or a non-nil error.
func ParsePolicy(s string) (Policy, error) {
	switch Policy(s) {
	case PolicyLastWriteWins, PolicyKeepExisting:
		return Policy(s), nil
	default:
		return "", fmt.Errorf("unknown overwrite policy %q", s)
	}
}

// TransitionGraph is the symmetric keyed transition map. Every recorded pair
// occupies two directed keys, "[a]-[b]" and "[b]-[a]", always written
// together with the same kind.
type TransitionGraph struct {
	policy      Policy
	transitions map[string]Kind
}

// New constructs an empty TransitionGraph governed by the given policy.
func New(policy Policy) *TransitionGraph {
	return &TransitionGraph{
		policy:      policy,
		transitions: make(map[string]Kind),
	}
}

// PairKey renders the directed key for a source/destination id pair.
func PairKey(src, dest mapdata.MapID) string {
	return fmt.Sprintf("[%d]-[%d]", src, dest)
}

// Record writes both directed keys for the pair (a, b) with the given kind,
// subject to the graph's overwrite policy. Under PolicyKeepExisting an
// already-recorded pair is left untouched.
func (g *TransitionGraph) Record(a, b mapdata.MapID, kind Kind) {
	key1 := PairKey(a, b)
	key2 := PairKey(b, a)
	if g.policy == PolicyKeepExisting {
		if _, exists := g.transitions[key1]; exists {
			return
		}
	}
	g.transitions[key1] = kind
	g.transitions[key2] = kind
}

// Kind returns the recorded kind for the pair (a, b), if any.
func (g *TransitionGraph) Kind(a, b mapdata.MapID) (Kind, bool) {
	kind, ok := g.transitions[PairKey(a, b)]
	return kind, ok
}

// Len returns the number of directed keys, twice the number of distinct
// pairs.
func (g *TransitionGraph) Len() int {
	return len(g.transitions)
}

// CountKind returns the number of directed keys recorded with the given
// kind.
func (g *TransitionGraph) CountKind(kind Kind) int {
	n := 0
	for _, k := range g.transitions {
		if k == kind {
			n++
		}
	}
	return n
}

// Keys returns all directed keys in lexicographic order.
func (g *TransitionGraph) Keys() []string {
	keys := make([]string, 0, len(g.transitions))
	for key := range g.transitions {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Transitions returns a copy of the underlying keyed map.
func (g *TransitionGraph) Transitions() map[string]Kind {
	out := make(map[string]Kind, len(g.transitions))
	for key, kind := range g.transitions {
		out[key] = kind
	}
	return out
}
