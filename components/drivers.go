package components

import (
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/yohamta/donburi"
)

// AnimationDriversData holds the smoothed animator parameters.
type AnimationDriversData struct {
	motion.Drivers
}

// ByName returns a driver value by its animator parameter name.
func (d *AnimationDriversData) ByName(name string) (float64, bool) {
	for id, n := range cfg.DriverNames {
		if n == name {
			return d.Value(id), true
		}
	}
	return 0, false
}

// Named returns every driver value keyed by animator parameter name.
func (d *AnimationDriversData) Named() map[string]float64 {
	out := make(map[string]float64, len(cfg.DriverNames))
	for id, n := range cfg.DriverNames {
		out[n] = d.Value(id)
	}
	return out
}

var AnimationDrivers = donburi.NewComponentType[AnimationDriversData]()
