package leveling

import "testing"

func TestXPRequiredForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 100},
		{2, 200},
		{5, 500},
		{0, 100},  // clamped to level 1
		{-3, 100}, // clamped to level 1
	}
	for _, tt := range tests {
		if got := XPRequiredForLevel(tt.level); got != tt.want {
			t.Errorf("XPRequiredForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestCumulativeXPForLevel(t *testing.T) {
	tests := []struct {
		level int
		want  int
	}{
		{1, 0},
		{2, 100},
		{3, 300},
		{4, 600},
		{10, 4500},
	}
	for _, tt := range tests {
		if got := CumulativeXPForLevel(tt.level); got != tt.want {
			t.Errorf("CumulativeXPForLevel(%d) = %d, want %d", tt.level, got, tt.want)
		}
	}
}

func TestLevelFromTotalXP_Boundaries(t *testing.T) {
	// The lower edge of each level is inclusive.
	for level := 1; level <= 50; level++ {
		edge := CumulativeXPForLevel(level)
		if got := LevelFromTotalXP(edge); got != level {
			t.Errorf("LevelFromTotalXP(%d) = %d, want %d", edge, got, level)
		}
		if got := LevelFromTotalXP(edge - 1); level > 1 && got != level-1 {
			t.Errorf("LevelFromTotalXP(%d) = %d, want %d", edge-1, got, level-1)
		}
	}
}

func TestLevelFromTotalXP_Samples(t *testing.T) {
	tests := []struct {
		totalXP int
		want    int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{299, 2},
		{300, 3},
		{-10, 1}, // negative input clamps to 1
	}
	for _, tt := range tests {
		if got := LevelFromTotalXP(tt.totalXP); got != tt.want {
			t.Errorf("LevelFromTotalXP(%d) = %d, want %d", tt.totalXP, got, tt.want)
		}
	}
}

func TestXPProgress_Invariant(t *testing.T) {
	// 0 <= CurrentIntoLevel < NeededForNextLevel across a dense range.
	for xp := 0; xp <= 20000; xp++ {
		p := XPProgress(xp)
		if p.CurrentIntoLevel < 0 || p.CurrentIntoLevel >= p.NeededForNextLevel {
			t.Fatalf("XPProgress(%d) = %+v violates invariant", xp, p)
		}
	}
}

func TestXPProgress_Samples(t *testing.T) {
	p := XPProgress(150)
	if p.CurrentIntoLevel != 50 {
		t.Errorf("CurrentIntoLevel = %d, want 50", p.CurrentIntoLevel)
	}
	if p.NeededForNextLevel != 200 {
		t.Errorf("NeededForNextLevel = %d, want 200", p.NeededForNextLevel)
	}

	p = XPProgress(0)
	if p.CurrentIntoLevel != 0 || p.NeededForNextLevel != 100 {
		t.Errorf("XPProgress(0) = %+v, want {0 100}", p)
	}
}
