package cover

// Creature size categories on an ordered integer scale. The upgrade rule
// (see the sfrpg ruleset) compares tokens by rank, where each step is one
// size category.
var sizeRanks = map[string]int{
	"tiny":       0,
	"small":      1,
	"medium":     2,
	"large":      3,
	"huge":       4,
	"gargantuan": 5,
}

var sizeLabels = []string{"tiny", "small", "medium", "large", "huge", "gargantuan"}

// defaultSizeRank is assumed when a size label is unknown.
const defaultSizeRank = 2 // medium

// SizeRank maps a size label to its rank. Unknown labels rank as medium.
func SizeRank(label string) int {
	if r, ok := sizeRanks[label]; ok {
		return r
	}
	return defaultSizeRank
}

// SizeLabel maps a rank back to its label, clamping out-of-range ranks.
func SizeLabel(rank int) string {
	if rank < 0 {
		rank = 0
	}
	if rank >= len(sizeLabels) {
		rank = len(sizeLabels) - 1
	}
	return sizeLabels[rank]
}
