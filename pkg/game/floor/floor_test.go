package floor

import (
	"testing"

	"dungen/pkg/game/config"
)

func TestForLevel_Themes(t *testing.T) {
	if got := ForLevel(1).Theme; got != Sewers {
		t.Errorf("ForLevel(1).Theme = %v, want Sewers", got)
	}
	if got := ForLevel(0).Level; got != 1 {
		t.Errorf("ForLevel(0).Level = %d, want 1", got)
	}
	if got := ForLevel(TotalFloors).Theme; got != Abyss {
		t.Errorf("final floor theme = %v, want Abyss", got)
	}
	for level := 1; level < TotalFloors; level++ {
		if ForLevel(level).Theme == Abyss {
			t.Errorf("level %d uses the final theme early", level)
		}
	}
}

func TestFloorName(t *testing.T) {
	// No translations are loaded, so gotext returns the message id
	if got := ForLevel(1).Name(); got != "The Sewers" {
		t.Errorf("ForLevel(1).Name() = %q, want %q", got, "The Sewers")
	}
	if got := Theme(42).Name(); got != "Unknown Depths" {
		t.Errorf("Theme(42).Name() = %q, want %q", got, "Unknown Depths")
	}
}

func TestTune_FirstFloorUnchanged(t *testing.T) {
	cfg := config.Default()
	if got := Tune(cfg, 1); got != cfg {
		t.Errorf("Tune(cfg, 1) = %+v, want %+v", got, cfg)
	}
}

func TestTune_DeeperFloors(t *testing.T) {
	base := config.Default()
	prev := base
	for level := 2; level <= TotalFloors; level++ {
		cfg := Tune(base, level)
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Tune(level %d) is invalid: %v", level, err)
		}
		if cfg.Floor != level {
			t.Errorf("level %d: Floor = %d", level, cfg.Floor)
		}
		if cfg.MainPathLength.Min <= prev.MainPathLength.Min {
			t.Errorf("level %d: main path min %d did not grow", level, cfg.MainPathLength.Min)
		}
		if cfg.StartingPoints < prev.StartingPoints || cfg.StartingPoints > 0.5 {
			t.Errorf("level %d: starting points %v", level, cfg.StartingPoints)
		}
		prev = cfg
	}
	if !Tune(base, TotalFloors).PopulateExit {
		t.Error("final floor does not populate the exit")
	}
}
