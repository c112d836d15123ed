package config

import "sort"

// Presets mirror the algorithm selector of the original UI: a few
// loop orders with a story, plus blocked variants.
var presets = map[string]func(*Config){
	"row-major": func(c *Config) {
		c.Algorithm = "naive"
		c.Order = "ijk"
	},
	"col-major": func(c *Config) {
		c.Algorithm = "naive"
		c.Order = "jik"
	},
	// k outermost: C is updated as a sum of rank-1 outer products.
	"outer-product": func(c *Config) {
		c.Algorithm = "naive"
		c.Order = "kij"
	},
	// A element held across the inner j sweep.
	"hoisted-a": func(c *Config) {
		c.Algorithm = "naive"
		c.Order = "ikj"
	},
	"cache-blocked": func(c *Config) {
		c.Algorithm = "tiled"
		c.TileM, c.TileN, c.TileK = 4, 4, 4
		c.Outer, c.Inner = "ijk", "ijk"
	},
	"tensor-core": func(c *Config) {
		c.Algorithm = "tiled"
		c.TileM, c.TileN, c.TileK = 4, 4, 4
		c.Outer, c.Inner = "kij", "ijk"
	},
}

// GetPreset returns a default config with the named preset applied,
// or nil if the preset does not exist.
func GetPreset(name string) *Config {
	apply, ok := presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
