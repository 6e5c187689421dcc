package pokered

import (
	"regexp"
	"strings"
)

// The boundary rules below run in a fixed order; a later rule must never
// re-split a separator an earlier rule inserted. Rule 4 deliberately skips
// F so floor suffixes like 1F and B2F stay joined, and rules 5–6 then
// re-introduce the separator for the cases that do split (1FRooms, 16Fly).
var (
	lowerBoundaryRe   = regexp.MustCompile(`([a-z])([A-Z0-9])`)
	acronymBoundaryRe = regexp.MustCompile(`([A-Z]+)([A-Z][a-z])`)
	lowerDigitRe      = regexp.MustCompile(`([a-z])([0-9])`)
	digitLetterRe     = regexp.MustCompile(`([0-9])([A-CEG-Z])`)
	floorSuffixRe     = regexp.MustCompile(`([0-9]F)([A-Z])`)
	digitFlyRe        = regexp.MustCompile(`([0-9])(Fly)`)
)

// FilenameToConstant converts a map source filename (without extension) into
// the upper-snake-case constant expected in the constants table, e.g.
// "PalletTown" → "PALLET_TOWN", "MtMoon1F" → "MT_MOON_1F". It is a pure
// best-effort transform: the result may not exist in the table, which the
// caller treats as an unresolvable map.
func FilenameToConstant(name string) string {
	s := strings.TrimSuffix(name, ".asm")
	s = lowerBoundaryRe.ReplaceAllString(s, "${1}_${2}")
	s = acronymBoundaryRe.ReplaceAllString(s, "${1}_${2}")
	s = lowerDigitRe.ReplaceAllString(s, "${1}_${2}")
	s = digitLetterRe.ReplaceAllString(s, "${1}_${2}")
	s = floorSuffixRe.ReplaceAllString(s, "${1}_${2}")
	s = digitFlyRe.ReplaceAllString(s, "${1}_${2}")
	return strings.ToUpper(s)
}
