package quest

import "testing"

func TestStockMessages_Shape(t *testing.T) {
	m := NewStockMessages()

	// Selection is random; assert shape only.
	for i := 0; i < 20; i++ {
		if m.Praise() == "" {
			t.Fatal("empty praise message")
		}
		if m.Consolation() == "" {
			t.Fatal("empty consolation message")
		}
	}
}

func TestStockMessages_DefaultHintPerSkill(t *testing.T) {
	m := NewStockMessages()
	for _, skill := range AllSkills() {
		if m.DefaultHint(skill) == "" {
			t.Errorf("no default hint for skill %q", skill)
		}
	}
	if m.DefaultHint(Skill("algebra")) == "" {
		t.Error("unknown skill should still get a generic hint")
	}
}

func TestKnownSkillAndDifficulty(t *testing.T) {
	for _, s := range AllSkills() {
		if !KnownSkill(s) {
			t.Errorf("KnownSkill(%q) = false", s)
		}
	}
	if KnownSkill("calculus") {
		t.Error("KnownSkill accepted an unknown tag")
	}
	if !KnownDifficulty(DifficultyEasy) || !KnownDifficulty(DifficultyMedium) {
		t.Error("known difficulties rejected")
	}
	if KnownDifficulty("hard") {
		t.Error("KnownDifficulty accepted an unknown tag")
	}
}
