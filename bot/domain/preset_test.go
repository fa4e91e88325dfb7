package domain_test

import (
	"testing"

	"skirmish/bot/domain"
)

func TestPresetByName_KnownPresets(t *testing.T) {
	for _, name := range []string{"easy", "normal", "hard", "hardcore"} {
		p, ok := domain.PresetByName(name)
		if !ok {
			t.Fatalf("preset %q not found", name)
		}
		if p.Name != name {
			t.Fatalf("preset name mismatch: got %q, want %q", p.Name, name)
		}
		if p.ScanInterval <= 0 {
			t.Fatalf("preset %q has non-positive scan interval", name)
		}
	}
}

func TestPresetByName_Unknown(t *testing.T) {
	if _, ok := domain.PresetByName("impossible"); ok {
		t.Fatal("unknown preset should not be found")
	}
}

// Advanced設定は最高難易度だけが持つ
func TestPresets_AdvancedOnlyOnHardcore(t *testing.T) {
	for _, name := range domain.PresetNames() {
		p, _ := domain.PresetByName(name)
		hasAdvanced := p.Advanced != nil
		if hasAdvanced != (name == "hardcore") {
			t.Fatalf("preset %q: advanced config presence = %v", name, hasAdvanced)
		}
	}
}

func TestPresets_DifficultyOrdering(t *testing.T) {
	easy, _ := domain.PresetByName("easy")
	hardcore, _ := domain.PresetByName("hardcore")

	if easy.ScanInterval <= hardcore.ScanInterval {
		t.Fatal("easy should scan slower than hardcore")
	}
	if easy.ReactionDelay[0] <= hardcore.ReactionDelay[1] {
		t.Fatal("easy should react slower than hardcore")
	}
	if hardcore.AttackDuration != 0 {
		t.Fatal("hardcore should never auto-disengage")
	}
	if easy.AttackDuration == 0 {
		t.Fatal("easy should auto-disengage")
	}
}
