package wator

import (
	"strconv"

	"wa-tor/internal/core"
)

func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Populations",
			Params: []core.Parameter{
				intParam("fish", "Fish", params.Fish),
				intParam("sharks", "Sharks", params.Sharks),
			},
		},
		{
			Name: "Fish Rules",
			Params: []core.Parameter{
				intParam("fish_energy", "Fish initial energy", params.FishEnergy),
				intParam("fish_fertility", "Fish fertility threshold", params.FishFertility),
			},
		},
		{
			Name: "Shark Rules",
			Params: []core.Parameter{
				intParam("shark_energy", "Shark initial energy", params.SharkEnergy),
				intParam("shark_fertility", "Shark fertility threshold", params.SharkFertility),
				intParam("shark_energy_from_fish", "Energy per fish eaten", params.SharkEnergyFromFish),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the tunables the HUD may adjust. Population
// counts apply on the next reset; rule values apply immediately.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		intControl("fish", "Fish", 0),
		intControl("sharks", "Sharks", 0),
		intControl("fish_energy", "Fish energy", 1),
		intControl("shark_energy", "Shark energy", 1),
		intControl("fish_fertility", "Fish fertility", 1),
		intControl("shark_fertility", "Shark fertility", 1),
		intControl("shark_energy_from_fish", "Energy per fish", 0),
	}
}

// SetIntParameter updates a single tunable by key, clamping to its minimum.
func (w *World) SetIntParameter(key string, value int) bool {
	clampMin := func(v, min int) int {
		if v < min {
			return min
		}
		return v
	}
	switch key {
	case "fish":
		w.cfg.Params.Fish = clampMin(value, 0)
	case "sharks":
		w.cfg.Params.Sharks = clampMin(value, 0)
	case "fish_energy":
		w.cfg.Params.FishEnergy = clampMin(value, 1)
	case "shark_energy":
		w.cfg.Params.SharkEnergy = clampMin(value, 1)
	case "fish_fertility":
		w.cfg.Params.FishFertility = clampMin(value, 1)
	case "shark_fertility":
		w.cfg.Params.SharkFertility = clampMin(value, 1)
	case "shark_energy_from_fish":
		w.cfg.Params.SharkEnergyFromFish = clampMin(value, 0)
	default:
		return false
	}
	return true
}

// IntParameter reads a single tunable by key.
func (w *World) IntParameter(key string) (int, bool) {
	switch key {
	case "fish":
		return w.cfg.Params.Fish, true
	case "sharks":
		return w.cfg.Params.Sharks, true
	case "fish_energy":
		return w.cfg.Params.FishEnergy, true
	case "shark_energy":
		return w.cfg.Params.SharkEnergy, true
	case "fish_fertility":
		return w.cfg.Params.FishFertility, true
	case "shark_fertility":
		return w.cfg.Params.SharkFertility, true
	case "shark_energy_from_fish":
		return w.cfg.Params.SharkEnergyFromFish, true
	}
	return 0, false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func intControl(key, label string, min int) core.ParameterControl {
	return core.ParameterControl{
		Key:    key,
		Label:  label,
		Type:   core.ParamTypeInt,
		Step:   1,
		Min:    float64(min),
		HasMin: true,
	}
}
