package systems

import (
	"github.com/pthm-cable/flurry/config"
	"github.com/pthm-cable/flurry/motion"
)

// PaletteFor returns the body color palette for cfg.
func PaletteFor(cfg *config.Config) motion.Palette {
	pal := motion.DefaultPalette
	if cfg.Flurry.ColorCycle > 0 {
		pal.CycleTime = cfg.Flurry.ColorCycle
	}
	return pal
}
