package gacha

// Roulette constants
const (
	// RouletteCutoff caps the roll so that a weight of 10000 is a certain win.
	RouletteCutoff = 10000

	// FillerWeight is the flat weight of the 3-star bucket.
	FillerWeight = 10000

	// EventChanceMax is the upper bound of the 1..100 featured roll.
	EventChanceMax = 100
)

// Batch sizes accepted by DoPulls
const (
	PullsSingle = 1
	PullsTen    = 10
)

// Rarities
const (
	Rarity3 = 3
	Rarity4 = 4
	Rarity5 = 5
)

// Sub-pool indices
const (
	Pool1 = 1
	Pool2 = 2
)

// Default item lists of the reference game. Functions hand out fresh copies so that no
// banner can alias these arrays.
var (
	defaultFallbackItems3 = [...]int{11301, 11302, 11306, 12301, 12302, 12305, 13303, 14301, 14302, 14304, 15301, 15302, 15304}

	defaultFallbackItems4Pool1 = [...]int{1014, 1020, 1023, 1024, 1025, 1027, 1031, 1032, 1034, 1036, 1039, 1043, 1044, 1045, 1048, 1053, 1055, 1056, 1064}
	defaultFallbackItems4Pool2 = [...]int{11401, 11402, 11403, 11405, 12401, 12402, 12403, 12405, 13401, 13407, 14401, 14402, 14403, 14409, 15401, 15402, 15403, 15405}

	defaultFallbackItems5Pool1 = [...]int{1003, 1016, 1042, 1035, 1041}
	defaultFallbackItems5Pool2 = [...]int{11501, 11502, 12501, 12502, 13502, 13505, 14501, 14502, 15501, 15502}
)

// DefaultFallbackItems3 returns the reference 3-star filler list.
func DefaultFallbackItems3() []int { return append([]int(nil), defaultFallbackItems3[:]...) }

// DefaultFallbackItems4Pool1 returns the reference 4-star character pool.
func DefaultFallbackItems4Pool1() []int { return append([]int(nil), defaultFallbackItems4Pool1[:]...) }

// DefaultFallbackItems4Pool2 returns the reference 4-star weapon pool.
func DefaultFallbackItems4Pool2() []int { return append([]int(nil), defaultFallbackItems4Pool2[:]...) }

// DefaultFallbackItems5Pool1 returns the reference 5-star character pool.
func DefaultFallbackItems5Pool1() []int { return append([]int(nil), defaultFallbackItems5Pool1[:]...) }

// DefaultFallbackItems5Pool2 returns the reference 5-star weapon pool.
func DefaultFallbackItems5Pool2() []int { return append([]int(nil), defaultFallbackItems5Pool2[:]...) }

// emptyPoolDefault is used when both fallback sub-pools of a rarity are empty. Never empty.
func emptyPoolDefault(rarity int) []int {
	if rarity == Rarity5 {
		return defaultFallbackItems5Pool2[:]
	}
	return defaultFallbackItems4Pool2[:]
}
