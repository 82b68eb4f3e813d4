package progression

// Level curve thresholds. The curve is front-loaded: early levels come fast,
// then growth flattens to a fixed 500 XP per level.
const (
	level2XP = 100
	level3XP = 250
	level4XP = 500
	stepXP   = 500 // XP per level beyond level 4
)

// LevelFor returns the level for a cumulative XP total. It is monotonic
// non-decreasing in xp.
func LevelFor(xp int) int {
	switch {
	case xp < level2XP:
		return 1
	case xp < level3XP:
		return 2
	case xp < level4XP:
		return 3
	default:
		return 4 + (xp-level4XP)/stepXP
	}
}

// XPForLevel returns the minimum XP at which the given level is reached.
// Level 1 starts at zero.
func XPForLevel(level int) int {
	switch {
	case level <= 1:
		return 0
	case level == 2:
		return level2XP
	case level == 3:
		return level3XP
	default:
		return level4XP + (level-4)*stepXP
	}
}

// XPToNextLevel returns how much XP is missing until the next level
func XPToNextLevel(xp int) int {
	return XPForLevel(LevelFor(xp)+1) - xp
}
