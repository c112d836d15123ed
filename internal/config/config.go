package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/matcube/internal/space"
)

const (
	DefaultDim   = 12
	DefaultOrder = "ijk"
	DefaultTile  = 4
	DefaultSpeed = 4
	DefaultSeed  = 1
)

type Config struct {
	M         int    `yaml:"m"`
	N         int    `yaml:"n"`
	K         int    `yaml:"k"`
	Algorithm string `yaml:"algorithm"` // naive | tiled
	Order     string `yaml:"order"`     // naive loop order
	TileM     int    `yaml:"tile_m"`
	TileN     int    `yaml:"tile_n"`
	TileK     int    `yaml:"tile_k"`
	Outer     string `yaml:"outer_order"` // tiled outer loop order
	Inner     string `yaml:"inner_order"` // tiled inner loop order
	Speed     int    `yaml:"speed"`       // steps consumed per playback tick
	Seed      int64  `yaml:"seed"`        // operand fill seed
}

func DefaultConfig() *Config {
	return &Config{
		M:         DefaultDim,
		N:         DefaultDim,
		K:         DefaultDim,
		Algorithm: "naive",
		Order:     DefaultOrder,
		TileM:     DefaultTile,
		TileN:     DefaultTile,
		TileK:     DefaultTile,
		Outer:     DefaultOrder,
		Inner:     DefaultOrder,
		Speed:     DefaultSpeed,
		Seed:      DefaultSeed,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Dims() space.Dims {
	return space.Dims{M: c.M, N: c.N, K: c.K}
}
