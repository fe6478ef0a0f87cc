package wator

import "testing"

func TestParametersSnapshotReflectsConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Fish = 77
	world := MustNew(cfg)

	snapshot := world.Parameters()
	if len(snapshot.Groups) == 0 {
		t.Fatal("expected parameter groups")
	}

	found := false
	for _, group := range snapshot.Groups {
		for _, p := range group.Params {
			if p.Key == "fish" {
				found = true
				if p.Value != "77" {
					t.Fatalf("expected fish parameter 77, got %q", p.Value)
				}
			}
		}
	}
	if !found {
		t.Fatal("fish parameter missing from snapshot")
	}
}

func TestSetIntParameterClampsAndApplies(t *testing.T) {
	world := MustNew(DefaultConfig())

	if !world.SetIntParameter("fish_fertility", 3) {
		t.Fatal("expected fish fertility to be adjustable")
	}
	if got, _ := world.IntParameter("fish_fertility"); got != 3 {
		t.Fatalf("expected fertility 3, got %d", got)
	}

	if !world.SetIntParameter("shark_energy", 0) {
		t.Fatal("expected setter to clamp values below min")
	}
	if got, _ := world.IntParameter("shark_energy"); got != 1 {
		t.Fatalf("expected shark energy to clamp to 1, got %d", got)
	}

	if world.SetIntParameter("does_not_exist", 5) {
		t.Fatal("unknown keys must be rejected")
	}
}

func TestControlsCoverSettableKeys(t *testing.T) {
	world := MustNew(DefaultConfig())
	for _, ctrl := range world.ParameterControls() {
		if _, ok := world.IntParameter(ctrl.Key); !ok {
			t.Fatalf("control %q has no readable parameter", ctrl.Key)
		}
		if !world.SetIntParameter(ctrl.Key, 5) {
			t.Fatalf("control %q has no settable parameter", ctrl.Key)
		}
	}
}
