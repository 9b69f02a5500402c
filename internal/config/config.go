// Package config loads scenario settings from an hjson file.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hjson/hjson-go/v4"
)

type Config struct {
	Logger  Logger  `json:"logger"`
	Grid    Grid    `json:"grid"`
	Voronoi Voronoi `json:"voronoi"`
	Player  Player  `json:"player"`
	Agent   Agent   `json:"agent"`
}

type Logger struct {
	Level        string `json:"level"`
	TrackLine    bool   `json:"trackLine"`
	TrackThread  bool   `json:"trackThread"`
	EnableFile   bool   `json:"enableFile"`
	DisableColor bool   `json:"disableColor"`
	EnableJson   bool   `json:"enableJson"`
}

type Grid struct {
	Rows     int     `json:"rows"`
	Cols     int     `json:"cols"`
	CellSize float64 `json:"cellSize"`
	OriginX  float64 `json:"originX"`
	OriginY  float64 `json:"originY"`
	// Walls lists [row, col] pairs blocked at startup.
	Walls [][2]int `json:"walls"`
	// ObstaclesFile is an optional GeoJSON file whose polygons block cells.
	ObstaclesFile string `json:"obstaclesFile"`
}

type Voronoi struct {
	Size      int     `json:"size"`
	Jitter    float64 `json:"jitter"`
	Scale     float64 `json:"scale"`
	Seed      int64   `json:"seed"`
	Threshold float64 `json:"threshold"`
}

type Player struct {
	Speed float64 `json:"speed"`
	Size  float64 `json:"size"`
}

type Agent struct {
	Speed     float64 `json:"speed"`
	Size      float64 `json:"size"`
	Threshold float64 `json:"threshold"`
	StartX    float64 `json:"startX"`
	StartY    float64 `json:"startY"`
}

// Default returns the classic chase settings: a 16x16 board of
// 50 unit cells, a player moving 15 units per key press and an enemy.
func Default() *Config {
	return &Config{
		Logger: Logger{
			Level:     "INFO",
			TrackLine: true,
		},
		Grid: Grid{
			Rows:     16,
			Cols:     16,
			CellSize: 50,
		},
		Voronoi: Voronoi{
			Size:      15,
			Jitter:    0.5,
			Scale:     50,
			Seed:      1,
			Threshold: 0.75,
		},
		Player: Player{
			Speed: 15,
			Size:  30,
		},
		Agent: Agent{
			Speed:     2,
			Size:      30,
			Threshold: 3,
			StartX:    775,
			StartY:    25,
		},
	}
}

// Load reads an hjson file over the defaults. Keys absent from the file keep
// their default value.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes hjson text over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := hjson.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		errs = append(errs, fmt.Errorf("grid: rows and cols must be positive, got %dx%d", c.Grid.Rows, c.Grid.Cols))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid: cellSize must be positive, got %v", c.Grid.CellSize))
	}
	for _, w := range c.Grid.Walls {
		if w[0] < 0 || w[0] >= c.Grid.Rows || w[1] < 0 || w[1] >= c.Grid.Cols {
			errs = append(errs, fmt.Errorf("grid: wall %v outside %dx%d", w, c.Grid.Rows, c.Grid.Cols))
		}
	}
	if c.Voronoi.Size <= 0 {
		errs = append(errs, fmt.Errorf("voronoi: size must be positive, got %d", c.Voronoi.Size))
	}
	if c.Voronoi.Scale <= 0 {
		errs = append(errs, fmt.Errorf("voronoi: scale must be positive, got %v", c.Voronoi.Scale))
	}
	if c.Player.Speed <= 0 {
		errs = append(errs, fmt.Errorf("player: speed must be positive, got %v", c.Player.Speed))
	}
	if c.Agent.Speed <= 0 {
		errs = append(errs, fmt.Errorf("agent: speed must be positive, got %v", c.Agent.Speed))
	}
	if c.Agent.Threshold <= 0 {
		errs = append(errs, fmt.Errorf("agent: threshold must be positive, got %v", c.Agent.Threshold))
	}
	return errors.Join(errs...)
}
