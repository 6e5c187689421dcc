package pokered_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/cory-johannsen/warpgraph/internal/extract/pokered"
)

func TestFilenameToConstant(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"PalletTown", "PALLET_TOWN"},
		{"Route1", "ROUTE_1"},
		{"MtMoon1F", "MT_MOON_1F"},
		{"Route2Gate", "ROUTE_2_GATE"},
		{"SilphCo1F", "SILPH_CO_1F"},
		{"SilphCo11F", "SILPH_CO_11F"},
		{"CeruleanCave2F", "CERULEAN_CAVE_2F"},
		{"PokemonTower1F", "POKEMON_TOWER_1F"},
		{"UndergroundPathNorthSouth", "UNDERGROUND_PATH_NORTH_SOUTH"},
		{"Route16FlyHouse", "ROUTE_16_FLY_HOUSE"},
		{"ViridianCity", "VIRIDIAN_CITY"},
		{"SSAnne1F", "SS_ANNE_1F"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, pokered.FilenameToConstant(tc.in), "input %q", tc.in)
	}
}

func TestFilenameToConstantStripsExtension(t *testing.T) {
	assert.Equal(t, "PALLET_TOWN", pokered.FilenameToConstant("PalletTown.asm"))
}

func TestFilenameToConstantFloorNumbersStayJoined(t *testing.T) {
	// 1F-style floor suffixes keep the digit and the F together; further
	// trailing words still split.
	assert.Equal(t, "MT_MOON_B1F", pokered.FilenameToConstant("MtMoonB1F"))
	assert.Equal(t, "POKEMON_MANSION_1F_ROOMS", pokered.FilenameToConstant("PokemonMansion1FRooms"))
}

func TestFilenameToConstantIdempotentOnFilenames(t *testing.T) {
	// Map filenames are CamelCase words and digit runs with optional F floor
	// suffixes; a digit never directly precedes a lowercase letter. Over
	// that domain a second pass is a no-op: the first pass leaves digits
	// adjacent only to underscores, other digits, or F.
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`([A-Z][a-z]{0,8}|[0-9]{1,2}F?){1,5}`).Draw(t, "name")
		once := pokered.FilenameToConstant(name)
		twice := pokered.FilenameToConstant(once)
		if twice != once {
			t.Fatalf("not idempotent for %q: %q -> %q", name, once, twice)
		}
	})
}

func TestFilenameToConstantDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[A-Z][a-z]{1,8}([A-Z][a-z]{1,8}){0,3}[0-9]{0,2}F?`).Draw(t, "name")
		first := pokered.FilenameToConstant(name)
		for i := 0; i < 3; i++ {
			if again := pokered.FilenameToConstant(name); again != first {
				t.Fatalf("unstable output for %q: %q vs %q", name, first, again)
			}
		}
	})
}

func TestFilenameToConstantOutputAlphabet(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[A-Za-z0-9]{1,20}`).Draw(t, "name")
		out := pokered.FilenameToConstant(name)
		for _, r := range out {
			if r != '_' && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
				t.Fatalf("unexpected rune %q in %q (from %q)", r, out, name)
			}
		}
	})
}
