package progression

import "testing"

func TestLevelForBoundaries(t *testing.T) {
	cases := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{249, 2},
		{250, 3},
		{499, 3},
		{500, 4},
		{999, 4},
		{1000, 5},
		{1499, 5},
		{1500, 6},
	}

	for _, c := range cases {
		if got := LevelFor(c.xp); got != c.want {
			t.Errorf("LevelFor(%d) = %d, want %d", c.xp, got, c.want)
		}
	}
}

func TestLevelForMonotonic(t *testing.T) {
	prev := LevelFor(0)
	for xp := 1; xp <= 5000; xp++ {
		cur := LevelFor(xp)
		if cur < prev {
			t.Fatalf("LevelFor decreased at xp=%d: %d -> %d", xp, prev, cur)
		}
		prev = cur
	}
}

func TestXPForLevelRoundTrip(t *testing.T) {
	for level := 1; level <= 12; level++ {
		minXP := XPForLevel(level)
		if got := LevelFor(minXP); got != level {
			t.Errorf("LevelFor(XPForLevel(%d)=%d) = %d", level, minXP, got)
		}
		if level > 1 {
			if got := LevelFor(minXP - 1); got != level-1 {
				t.Errorf("LevelFor(%d) = %d, want %d", minXP-1, got, level-1)
			}
		}
	}
}

func TestXPToNextLevel(t *testing.T) {
	if got := XPToNextLevel(90); got != 10 {
		t.Errorf("XPToNextLevel(90) = %d, want 10", got)
	}
	if got := XPToNextLevel(500); got != 500 {
		t.Errorf("XPToNextLevel(500) = %d, want 500", got)
	}
}
